package dialogue

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/susuregis/Chatbot/internal/model"
)

// Тексты бота. Клиенты ресторана говорят по-португальски.
const (
	msgGreeting = "👋 Olá! Bem-vindo ao Restaurante da Suelennn!\n\n" +
		"Como posso te ajudar hoje?\n" +
		"- /agendar: Reservar uma mesa\n" +
		"- /cardapio: Ver nosso cardápio\n" +
		"- /frete: Ver o frete\n" +
		"- /info: Ver informações do restaurante\n" +
		"- /sair: Encerrar atendimento"
	msgInfo = "📍 *Informações do Restaurante:*\n\n" +
		"- Horário: 18h às 23h\n" +
		"- Endereço: Rua das Flores, 123\n" +
		"- Reservas com 30 minutos de tolerância\n" +
		"- 5 mesas por horário."
	msgGoodbye  = "👋 Atendimento encerrado. Obrigado pela visita!"
	msgFallback = "❓ Desculpe, não entendi. Use /start para ver as opções."

	msgAskName      = "Qual é o seu nome?"
	msgAskPartySize = "Quantas pessoas?"
	msgAskDate      = "Qual a data? (formato: 29/05)"
	msgAskTime      = "Qual o horário? (ex: 20h)"
	msgSlotFull     = "❌ Todas as mesas para esse horário estão reservadas."
	msgReserveError = "⚠️ Não foi possível registrar a reserva agora. Tente novamente mais tarde."

	msgAskNeighborhood     = "📍 Qual o bairro para entrega?"
	msgUnknownNeighborhood = "❌ Não entregamos nesse bairro. Por favor, informe outro bairro."
	msgFeeError            = "⚠️ Erro ao consultar o frete."
	msgUnknownDish         = "❌ Prato não encontrado. Por favor, informe um prato válido."
	msgMenuError           = "⚠️ Erro ao consultar o cardápio."
	msgMenuUnavailable     = "❌ Erro ao acessar o cardápio."
	msgConfirmAgain        = "Por favor, responda com 'sim' ou 'não'. Confirma o pedido?"
	msgOrderConfirmed      = "✅ Pedido confirmado! Seu pedido será preparado e chegará dentro de 50 minutos. Obrigado!"
	msgOrderCancelled      = "❌ Pedido cancelado."
	msgOrderError          = "⚠️ Não foi possível registrar o pedido. Tente novamente mais tarde."
	msgSessionError        = "⚠️ Erro interno. Tente novamente em instantes."

	unknownCustomer = "Não informado"
)

// mainKeyboard: клавиатура главного меню.
var mainKeyboard = [][]string{
	{"/agendar", "/cardapio"},
	{"/frete", "/info", "/sair"},
}

var (
	yesAnswers = map[string]bool{"sim": true, "s": true, "confirmar": true}
	noAnswers  = map[string]bool{"não": true, "nao": true, "n": true, "cancelar": true}
)

func money(v float64) string {
	return fmt.Sprintf("R$%.2f", v)
}

func title(s string) string {
	return cases.Title(language.BrazilianPortuguese).String(s)
}

func reservationConfirmed(r *model.Reservation) string {
	return fmt.Sprintf("✅ Reserva confirmada para %s, %s pessoas, dia %s às %s.", r.Name, r.PartySize, r.Date, r.Time)
}

func neighborhoodAccepted(neighborhood string) string {
	return fmt.Sprintf("✅ Entregamos no bairro *%s*.\nAgora, qual prato você deseja?", title(neighborhood))
}

func dishQuote(s *model.Session) string {
	return fmt.Sprintf("🍽️ *%s* - %s\n🚚 Frete para *%s* - %s\n💰 *Total*: %s\n\n"+
		"Por favor, envie seu endereço completo para a entrega.",
		s.Dish, money(s.Price), title(s.Neighborhood), money(s.Fee), money(s.Total))
}

func orderSummary(s *model.Session) string {
	return fmt.Sprintf("📍 Endereço: %s\n🍽️ Pedido: %s\n💰 Total a pagar: %s\n\nConfirma o pedido? (sim/não)",
		s.Address, s.Dish, money(s.Total))
}

// renderMenu выводит меню по категориям в исходном порядке.
func renderMenu(menu model.Menu) string {
	var b strings.Builder
	b.WriteString("📋 *Cardápio:*\n")
	for _, c := range menu {
		fmt.Fprintf(&b, "\n🍽️ *%s*\n", c.Name)
		for _, item := range c.Items {
			fmt.Fprintf(&b, "%s - %s\n", item.Name, money(item.Price))
		}
	}
	return b.String()
}

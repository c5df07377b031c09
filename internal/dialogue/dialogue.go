// Package dialogue реализует сценарий разговора с клиентом: бронирование столика,
// заказ доставки, показ меню и информации о ресторане.
//
// Диалог устроен как линейный конечный автомат: следующее состояние определяется текущим
// состоянием сессии и видом входящего сообщения (команда или текст).
package dialogue

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/susuregis/Chatbot/internal/model"
	"github.com/susuregis/Chatbot/internal/service"
	"github.com/susuregis/Chatbot/internal/session"
)

// Команды бота.
const (
	CmdStart    = "start"
	CmdReserve  = "agendar"
	CmdMenu     = "cardapio"
	CmdDelivery = "frete"
	CmdInfo     = "info"
	CmdQuit     = "sair"
)

// Input представляет входящее сообщение пользователя.
type Input struct {
	ChatID      int64
	Command     string // имя команды без "/", пусто для обычного текста
	Text        string
	DisplayName string // имя пользователя в мессенджере
}

// Reply представляет ответ бота.
type Reply struct {
	Text     string
	Markdown bool
	Keyboard [][]string
}

// Reservations бронирует столики.
type Reservations interface {
	Reserve(ctx context.Context, name, partySize, date, hour string) (*model.Reservation, error)
}

// Delivery оформляет заказы на доставку.
type Delivery interface {
	Menu(ctx context.Context) (model.Menu, error)
	FeeFor(ctx context.Context, neighborhood string) (float64, bool, error)
	FindDish(ctx context.Context, name string) (model.MenuItem, bool, error)
	PlaceOrder(ctx context.Context, order *model.Order) error
}

// Dialogue ведет разговоры с пользователями. Сообщения одного пользователя должны
// обрабатываться последовательно.
type Dialogue struct {
	sessions     session.Store
	reservations Reservations
	delivery     Delivery
	log          logrus.FieldLogger
}

// New создает обработчик диалогов.
func New(sessions session.Store, reservations Reservations, delivery Delivery, log logrus.FieldLogger) *Dialogue {
	return &Dialogue{
		sessions:     sessions,
		reservations: reservations,
		delivery:     delivery,
		log:          log,
	}
}

// outcome: результат одного шага: ответы и признак завершения диалога.
type outcome struct {
	replies []Reply
	end     bool
}

func say(text string) outcome {
	return outcome{replies: []Reply{{Text: text}}}
}

func sayMarkdown(text string) outcome {
	return outcome{replies: []Reply{{Text: text, Markdown: true}}}
}

func finish(text string) outcome {
	return outcome{replies: []Reply{{Text: text}}, end: true}
}

// Handle обрабатывает одно сообщение и возвращает ответы бота.
func (d *Dialogue) Handle(ctx context.Context, in Input) []Reply {
	log := d.log.WithField("chat_id", in.ChatID)

	sess, err := d.sessions.Get(ctx, in.ChatID)
	if err != nil {
		log.WithError(err).Error("не удалось загрузить сессию")
		return []Reply{{Text: msgSessionError}}
	}
	if sess == nil {
		sess = model.NewSession(in.ChatID)
	}
	log = log.WithField("state", sess.State.String())

	out := d.step(ctx, log, sess, in)

	if out.end {
		if err := d.sessions.Delete(ctx, in.ChatID); err != nil {
			log.WithError(err).Error("не удалось удалить сессию")
		}
	} else if err := d.sessions.Save(ctx, sess); err != nil {
		log.WithError(err).Error("не удалось сохранить сессию")
	}
	return out.replies
}

func (d *Dialogue) step(ctx context.Context, log logrus.FieldLogger, sess *model.Session, in Input) outcome {
	// /start и /sair работают в любом состоянии
	switch in.Command {
	case CmdStart:
		*sess = *model.NewSession(sess.ChatID)
		return outcome{replies: []Reply{{Text: msgGreeting, Keyboard: mainKeyboard}}}
	case CmdQuit:
		return finish(msgGoodbye)
	}

	if sess.State == model.StateMenu {
		return d.onMenu(ctx, log, sess, in.Command)
	}
	if in.Command != "" || strings.TrimSpace(in.Text) == "" {
		return d.fallback(sess)
	}

	text := strings.TrimSpace(in.Text)
	switch sess.State {
	case model.StateCollectName:
		sess.Name = text
		sess.State = model.StateCollectPartySize
		return say(msgAskPartySize)
	case model.StateCollectPartySize:
		sess.PartySize = text
		sess.State = model.StateCollectDate
		return say(msgAskDate)
	case model.StateCollectDate:
		sess.Date = text
		sess.State = model.StateCollectTime
		return say(msgAskTime)
	case model.StateCollectTime:
		return d.onTime(ctx, log, sess, text)
	case model.StateCollectNeighborhood:
		return d.onNeighborhood(ctx, log, sess, text)
	case model.StateCollectDish:
		return d.onDish(ctx, log, sess, text)
	case model.StateCollectAddress:
		sess.Address = text
		sess.State = model.StateConfirm
		return say(orderSummary(sess))
	case model.StateConfirm:
		return d.onConfirm(ctx, log, sess, text, in.DisplayName)
	default:
		log.Warn("неизвестное состояние сессии")
		return d.fallback(sess)
	}
}

func (d *Dialogue) fallback(sess *model.Session) outcome {
	*sess = *model.NewSession(sess.ChatID)
	return say(msgFallback)
}

func (d *Dialogue) onMenu(ctx context.Context, log logrus.FieldLogger, sess *model.Session, command string) outcome {
	switch command {
	case CmdReserve:
		*sess = *model.NewSession(sess.ChatID)
		sess.State = model.StateCollectName
		return say(msgAskName)
	case CmdDelivery:
		*sess = *model.NewSession(sess.ChatID)
		sess.State = model.StateCollectNeighborhood
		return say(msgAskNeighborhood)
	case CmdMenu:
		menu, err := d.delivery.Menu(ctx)
		if err != nil {
			log.WithError(err).Error("меню недоступно")
			return say(msgMenuUnavailable)
		}
		return sayMarkdown(renderMenu(menu))
	case CmdInfo:
		return sayMarkdown(msgInfo)
	default:
		return d.fallback(sess)
	}
}

func (d *Dialogue) onTime(ctx context.Context, log logrus.FieldLogger, sess *model.Session, hour string) outcome {
	sess.Time = hour
	reservation, err := d.reservations.Reserve(ctx, sess.Name, sess.PartySize, sess.Date, sess.Time)
	switch {
	case errors.Is(err, model.ErrSlotFull):
		log.WithField("slot", sess.Date+" "+sess.Time).Info("слот заполнен")
		return finish(msgSlotFull)
	case err != nil:
		log.WithError(err).Error("не удалось создать бронирование")
		return finish(msgReserveError)
	}
	log.WithField("row", reservation.ID).Info("бронирование создано")
	return finish(reservationConfirmed(reservation))
}

func (d *Dialogue) onNeighborhood(ctx context.Context, log logrus.FieldLogger, sess *model.Session, text string) outcome {
	fee, ok, err := d.delivery.FeeFor(ctx, text)
	if err != nil {
		log.WithError(err).Error("не удалось получить стоимость доставки")
		return finish(msgFeeError)
	}
	if !ok {
		return say(msgUnknownNeighborhood)
	}
	sess.Neighborhood = model.NormalizeNeighborhood(text)
	sess.Fee = fee
	sess.State = model.StateCollectDish
	return sayMarkdown(neighborhoodAccepted(sess.Neighborhood))
}

func (d *Dialogue) onDish(ctx context.Context, log logrus.FieldLogger, sess *model.Session, text string) outcome {
	item, ok, err := d.delivery.FindDish(ctx, text)
	if err != nil {
		log.WithError(err).Error("не удалось получить меню")
		return finish(msgMenuError)
	}
	if !ok {
		return say(msgUnknownDish)
	}
	sess.Dish = item.Name
	sess.Price = item.Price
	sess.Total = service.Total(item.Price, sess.Fee)
	sess.State = model.StateCollectAddress
	return sayMarkdown(dishQuote(sess))
}

func (d *Dialogue) onConfirm(ctx context.Context, log logrus.FieldLogger, sess *model.Session, text, displayName string) outcome {
	answer := strings.ToLower(text)
	switch {
	case yesAnswers[answer]:
		order := &model.Order{
			Name:         customerName(sess.Name, displayName),
			Dish:         sess.Dish,
			Price:        sess.Price,
			Neighborhood: sess.Neighborhood,
			Fee:          sess.Fee,
			Address:      sess.Address,
		}
		if err := d.delivery.PlaceOrder(ctx, order); err != nil {
			log.WithError(err).Error("не удалось сохранить заказ")
			return finish(msgOrderError)
		}
		log.WithFields(logrus.Fields{"row": order.ID, "total": order.Total}).Info("заказ оформлен")
		return finish(msgOrderConfirmed)
	case noAnswers[answer]:
		return finish(msgOrderCancelled)
	default:
		return say(msgConfirmAgain)
	}
}

func customerName(sessionName, displayName string) string {
	if sessionName != "" {
		return sessionName
	}
	if name := strings.TrimSpace(displayName); name != "" {
		return name
	}
	return unknownCustomer
}

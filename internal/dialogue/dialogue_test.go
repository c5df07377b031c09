package dialogue

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/susuregis/Chatbot/internal/catalog"
	"github.com/susuregis/Chatbot/internal/model"
	"github.com/susuregis/Chatbot/internal/service"
	"github.com/susuregis/Chatbot/internal/session"
)

const chatID = int64(1001)

type memReservations struct {
	rows      []model.Reservation
	createErr error
}

func (m *memReservations) List(ctx context.Context) ([]model.Reservation, error) {
	return m.rows, nil
}

func (m *memReservations) CountActive(ctx context.Context, date, hour string) (int, error) {
	n := 0
	for _, r := range m.rows {
		if r.IsActive() && r.SameSlot(date, hour) {
			n++
		}
	}
	return n, nil
}

func (m *memReservations) Create(ctx context.Context, r *model.Reservation) error {
	if m.createErr != nil {
		return m.createErr
	}
	r.ID = len(m.rows) + 2
	m.rows = append(m.rows, *r)
	return nil
}

func (m *memReservations) UpdateStatus(ctx context.Context, id int, status string) error {
	return nil
}

type memOrders struct {
	orders []model.Order
	err    error
}

func (m *memOrders) Create(ctx context.Context, o *model.Order) error {
	if m.err != nil {
		return m.err
	}
	m.orders = append(m.orders, *o)
	return nil
}

type staticCatalog struct {
	err error
}

func (c staticCatalog) Menu(ctx context.Context) (model.Menu, error) {
	if c.err != nil {
		return nil, c.err
	}
	return catalog.DefaultMenu(), nil
}

func (c staticCatalog) Fees(ctx context.Context) (model.FeeTable, error) {
	if c.err != nil {
		return nil, c.err
	}
	return catalog.DefaultFees(), nil
}

type harness struct {
	d            *Dialogue
	sessions     *session.MemoryStore
	reservations *memReservations
	orders       *memOrders
}

func newHarness(t *testing.T, cat service.Catalog) *harness {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	h := &harness{
		sessions:     session.NewMemoryStore(30 * time.Minute),
		reservations: &memReservations{},
		orders:       &memOrders{},
	}
	h.d = New(
		h.sessions,
		service.NewReservationService(h.reservations, 5),
		service.NewDeliveryService(cat, h.orders),
		log,
	)
	return h
}

func (h *harness) command(t *testing.T, cmd string) []Reply {
	t.Helper()
	return h.d.Handle(context.Background(), Input{ChatID: chatID, Command: cmd, Text: "/" + cmd, DisplayName: "Ana Souza"})
}

func (h *harness) text(t *testing.T, text string) []Reply {
	t.Helper()
	return h.d.Handle(context.Background(), Input{ChatID: chatID, Text: text, DisplayName: "Ana Souza"})
}

func (h *harness) state(t *testing.T) model.State {
	t.Helper()
	sess, err := h.sessions.Get(context.Background(), chatID)
	require.NoError(t, err)
	if sess == nil {
		return -1
	}
	return sess.State
}

func single(t *testing.T, replies []Reply) Reply {
	t.Helper()
	require.Len(t, replies, 1)
	return replies[0]
}

func TestStart_ShowsGreetingWithKeyboard(t *testing.T) {
	h := newHarness(t, staticCatalog{})

	r := single(t, h.command(t, CmdStart))
	assert.Contains(t, r.Text, "Bem-vindo")
	assert.Equal(t, mainKeyboard, r.Keyboard)
	assert.Equal(t, model.StateMenu, h.state(t))
}

func TestReservationFlow_Confirms(t *testing.T) {
	h := newHarness(t, staticCatalog{})

	h.command(t, CmdStart)
	assert.Equal(t, msgAskName, single(t, h.command(t, CmdReserve)).Text)
	assert.Equal(t, model.StateCollectName, h.state(t))

	assert.Equal(t, msgAskPartySize, single(t, h.text(t, "Ana")).Text)
	assert.Equal(t, model.StateCollectPartySize, h.state(t))

	assert.Equal(t, msgAskDate, single(t, h.text(t, "4")).Text)
	assert.Equal(t, model.StateCollectDate, h.state(t))

	assert.Equal(t, msgAskTime, single(t, h.text(t, "29/05")).Text)
	assert.Equal(t, model.StateCollectTime, h.state(t))

	r := single(t, h.text(t, "20h"))
	assert.Equal(t, "✅ Reserva confirmada para Ana, 4 pessoas, dia 29/05 às 20h.", r.Text)

	require.Len(t, h.reservations.rows, 1)
	row := h.reservations.rows[0]
	assert.Equal(t, "Ana", row.Name)
	assert.Equal(t, "4", row.PartySize)
	assert.Equal(t, "29/05", row.Date)
	assert.Equal(t, "20h", row.Time)
	assert.Equal(t, model.StatusReserved, row.Status)
	assert.Equal(t, model.State(-1), h.state(t), "сессия удаляется после завершения")
}

func TestReservationFlow_SlotFull(t *testing.T) {
	h := newHarness(t, staticCatalog{})
	for i := 0; i < 5; i++ {
		h.reservations.rows = append(h.reservations.rows, model.Reservation{
			ID: i + 2, Date: "29/05", Time: "20h", Status: model.StatusReserved,
		})
	}

	h.command(t, CmdReserve)
	h.text(t, "Ana")
	h.text(t, "4")
	h.text(t, "29/05")
	r := single(t, h.text(t, "20h"))

	assert.Equal(t, msgSlotFull, r.Text)
	assert.Len(t, h.reservations.rows, 5)
	assert.Equal(t, model.State(-1), h.state(t))
}

func TestReservationFlow_StoreFailure(t *testing.T) {
	h := newHarness(t, staticCatalog{})
	h.reservations.createErr = errors.New("quota exceeded")

	h.command(t, CmdReserve)
	h.text(t, "Ana")
	h.text(t, "4")
	h.text(t, "29/05")
	r := single(t, h.text(t, "20h"))

	assert.Equal(t, msgReserveError, r.Text)
	assert.Equal(t, model.State(-1), h.state(t))
}

func TestDeliveryFlow_Confirms(t *testing.T) {
	h := newHarness(t, staticCatalog{})

	assert.Equal(t, msgAskNeighborhood, single(t, h.command(t, CmdDelivery)).Text)
	assert.Equal(t, model.StateCollectNeighborhood, h.state(t))

	r := single(t, h.text(t, "JARDIM"))
	assert.True(t, r.Markdown)
	assert.Equal(t, "✅ Entregamos no bairro *Jardim*.\nAgora, qual prato você deseja?", r.Text)
	assert.Equal(t, model.StateCollectDish, h.state(t))

	r = single(t, h.text(t, "feijoada"))
	assert.Equal(t, "🍽️ *Feijoada* - R$38.00\n🚚 Frete para *Jardim* - R$8.00\n💰 *Total*: R$46.00\n\n"+
		"Por favor, envie seu endereço completo para a entrega.", r.Text)
	assert.Equal(t, model.StateCollectAddress, h.state(t))

	r = single(t, h.text(t, "Rua das Palmeiras, 45"))
	assert.Equal(t, "📍 Endereço: Rua das Palmeiras, 45\n🍽️ Pedido: Feijoada\n💰 Total a pagar: R$46.00\n\n"+
		"Confirma o pedido? (sim/não)", r.Text)
	assert.Equal(t, model.StateConfirm, h.state(t))

	r = single(t, h.text(t, "talvez"))
	assert.Equal(t, msgConfirmAgain, r.Text)
	assert.Equal(t, model.StateConfirm, h.state(t))

	r = single(t, h.text(t, "Sim"))
	assert.Equal(t, msgOrderConfirmed, r.Text)
	assert.Equal(t, model.State(-1), h.state(t))

	require.Len(t, h.orders.orders, 1)
	order := h.orders.orders[0]
	assert.Equal(t, "Ana Souza", order.Name)
	assert.Equal(t, "Feijoada", order.Dish)
	assert.Equal(t, 38.0, order.Price)
	assert.Equal(t, "jardim", order.Neighborhood)
	assert.Equal(t, 8.0, order.Fee)
	assert.Equal(t, 46.0, order.Total)
	assert.Equal(t, "Rua das Palmeiras, 45", order.Address)
	assert.Equal(t, model.OrderStatusPending, order.Status)
}

func TestDeliveryFlow_RepromptsUnknownNeighborhoodAndDish(t *testing.T) {
	h := newHarness(t, staticCatalog{})
	h.command(t, CmdDelivery)

	assert.Equal(t, msgUnknownNeighborhood, single(t, h.text(t, "Copacabana")).Text)
	assert.Equal(t, model.StateCollectNeighborhood, h.state(t))

	h.text(t, "Vila Nova")
	assert.Equal(t, model.StateCollectDish, h.state(t))

	assert.Equal(t, msgUnknownDish, single(t, h.text(t, "Lasanha")).Text)
	assert.Equal(t, model.StateCollectDish, h.state(t))

	r := single(t, h.text(t, "SUCO DE LARANJA"))
	assert.Contains(t, r.Text, "💰 *Total*: R$19.00")
}

func TestDeliveryFlow_Declined(t *testing.T) {
	h := newHarness(t, staticCatalog{})
	h.command(t, CmdDelivery)
	h.text(t, "centro")
	h.text(t, "Bruschetta")
	h.text(t, "Rua A, 1")

	assert.Equal(t, msgOrderCancelled, single(t, h.text(t, "não")).Text)
	assert.Empty(t, h.orders.orders)
	assert.Equal(t, model.State(-1), h.state(t))
}

func TestDeliveryFlow_CatalogUnavailable(t *testing.T) {
	h := newHarness(t, staticCatalog{err: errors.New("connection refused")})
	h.command(t, CmdDelivery)

	assert.Equal(t, msgFeeError, single(t, h.text(t, "centro")).Text)
	assert.Equal(t, model.State(-1), h.state(t))

	assert.Equal(t, msgMenuUnavailable, single(t, h.command(t, CmdMenu)).Text)
}

func TestDeliveryFlow_OrderStoreFailure(t *testing.T) {
	h := newHarness(t, staticCatalog{})
	h.orders.err = errors.New("quota exceeded")
	h.command(t, CmdDelivery)
	h.text(t, "centro")
	h.text(t, "Feijoada")
	h.text(t, "Rua A, 1")

	assert.Equal(t, msgOrderError, single(t, h.text(t, "s")).Text)
	assert.Equal(t, model.State(-1), h.state(t))
}

func TestMenuAndInfo(t *testing.T) {
	h := newHarness(t, staticCatalog{})

	r := single(t, h.command(t, CmdMenu))
	assert.True(t, r.Markdown)
	assert.Equal(t, "📋 *Cardápio:*\n"+
		"\n🍽️ *Entrada*\nBruschetta - R$12.00\n"+
		"\n🍽️ *Prato Principal*\nFeijoada - R$38.00\n"+
		"\n🍽️ *Bebida*\nSuco de Laranja - R$7.00\n"+
		"\n🍽️ *Sobremesa*\nMousse de Maracujá - R$10.00\n", r.Text)
	assert.Equal(t, model.StateMenu, h.state(t))

	r = single(t, h.command(t, CmdInfo))
	assert.Equal(t, msgInfo, r.Text)
	assert.Equal(t, model.StateMenu, h.state(t))
}

func TestFallbacks(t *testing.T) {
	h := newHarness(t, staticCatalog{})

	assert.Equal(t, msgFallback, single(t, h.text(t, "oi")).Text)
	assert.Equal(t, model.StateMenu, h.state(t))

	assert.Equal(t, msgFallback, single(t, h.command(t, "pizza")).Text)

	// команда посреди сценария возвращает в меню
	h.command(t, CmdReserve)
	h.text(t, "Ana")
	assert.Equal(t, msgFallback, single(t, h.command(t, CmdInfo)).Text)
	assert.Equal(t, model.StateMenu, h.state(t))

	// пустое сообщение (фото, стикер) тоже
	h.command(t, CmdDelivery)
	assert.Equal(t, msgFallback, single(t, h.text(t, "")).Text)
	assert.Equal(t, model.StateMenu, h.state(t))
}

func TestQuitEndsSessionFromAnyState(t *testing.T) {
	h := newHarness(t, staticCatalog{})
	h.command(t, CmdDelivery)
	h.text(t, "centro")

	assert.Equal(t, msgGoodbye, single(t, h.command(t, CmdQuit)).Text)
	assert.Equal(t, model.State(-1), h.state(t))
}

func TestStartResetsSession(t *testing.T) {
	h := newHarness(t, staticCatalog{})
	h.command(t, CmdReserve)
	h.text(t, "Ana")

	h.command(t, CmdStart)
	sess, err := h.sessions.Get(context.Background(), chatID)
	require.NoError(t, err)
	assert.Equal(t, model.StateMenu, sess.State)
	assert.Empty(t, sess.Name)
}

func TestCustomerName(t *testing.T) {
	assert.Equal(t, "Ana", customerName("Ana", "Ana Souza"))
	assert.Equal(t, "Ana Souza", customerName("", " Ana Souza "))
	assert.Equal(t, unknownCustomer, customerName("", ""))
}

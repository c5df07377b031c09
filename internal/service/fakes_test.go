package service

import (
	"context"
	"sync"

	"github.com/susuregis/Chatbot/internal/model"
)

// fakeReservationStore хранит бронирования в памяти для тестов.
type fakeReservationStore struct {
	mu           sync.Mutex
	reservations []model.Reservation
	listErr      error
	createErr    error
	updateErr    map[int]error
	updates      map[int]string
}

func (f *fakeReservationStore) List(ctx context.Context) ([]model.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]model.Reservation(nil), f.reservations...), nil
}

func (f *fakeReservationStore) CountActive(ctx context.Context, date, hour string) (int, error) {
	all, err := f.List(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, r := range all {
		if r.IsActive() && r.SameSlot(date, hour) {
			n++
		}
	}
	return n, nil
}

func (f *fakeReservationStore) Create(ctx context.Context, r *model.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	r.ID = len(f.reservations) + 2
	f.reservations = append(f.reservations, *r)
	return nil
}

func (f *fakeReservationStore) UpdateStatus(ctx context.Context, id int, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.updateErr[id]; err != nil {
		return err
	}
	if f.updates == nil {
		f.updates = map[int]string{}
	}
	f.updates[id] = status
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			f.reservations[i].Status = status
		}
	}
	return nil
}

type fakeOrderStore struct {
	orders []model.Order
	err    error
}

func (f *fakeOrderStore) Create(ctx context.Context, o *model.Order) error {
	if f.err != nil {
		return f.err
	}
	o.ID = len(f.orders) + 1
	f.orders = append(f.orders, *o)
	return nil
}

type fakeCatalog struct {
	menu    model.Menu
	fees    model.FeeTable
	menuErr error
	feesErr error
}

func (f *fakeCatalog) Menu(ctx context.Context) (model.Menu, error) {
	return f.menu, f.menuErr
}

func (f *fakeCatalog) Fees(ctx context.Context) (model.FeeTable, error) {
	return f.fees, f.feesErr
}

func slotReservations(date, hour, status string, n int) []model.Reservation {
	out := make([]model.Reservation, n)
	for i := range out {
		out[i] = model.Reservation{ID: i + 2, Name: "Cliente", PartySize: "2", Date: date, Time: hour, Status: status}
	}
	return out
}

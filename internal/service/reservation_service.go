package service

import (
	"context"
	"fmt"
	"time"

	"github.com/susuregis/Chatbot/internal/model"
	"github.com/susuregis/Chatbot/internal/repository"
)

// DefaultSlotCapacity: число столиков на один слот (дата + время).
const DefaultSlotCapacity = 5

// ReservationService содержит бизнес-логику бронирования столиков.
//
// Проверка вместимости и вставка выполняются как два отдельных обращения к хранилищу без транзакции:
// два одновременных бронирования последнего столика могут пройти оба.
type ReservationService struct {
	store    repository.ReservationStore
	capacity int
	now      func() time.Time
}

// NewReservationService создает новый сервис бронирований.
func NewReservationService(store repository.ReservationStore, capacity int) *ReservationService {
	if capacity <= 0 {
		capacity = DefaultSlotCapacity
	}
	return &ReservationService{store: store, capacity: capacity, now: time.Now}
}

// Reserve бронирует столик, если в слоте есть место. Возвращает model.ErrSlotFull,
// когда слот заполнен.
func (s *ReservationService) Reserve(ctx context.Context, name, partySize, date, hour string) (*model.Reservation, error) {
	count, err := s.store.CountActive(ctx, date, hour)
	if err != nil {
		return nil, fmt.Errorf("не удалось проверить свободные столики: %w", err)
	}
	if count >= s.capacity {
		return nil, model.ErrSlotFull
	}

	reservation := &model.Reservation{
		Name:      name,
		PartySize: partySize,
		Date:      date,
		Time:      hour,
		Status:    model.StatusReserved,
		CreatedAt: s.now(),
	}
	if err := s.store.Create(ctx, reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

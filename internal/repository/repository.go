package repository

import (
	"context"

	"github.com/susuregis/Chatbot/internal/model"
)

// ReservationStore описывает хранилище бронирований столиков.
type ReservationStore interface {
	// List возвращает все бронирования в порядке добавления.
	List(ctx context.Context) ([]model.Reservation, error)
	// CountActive возвращает число активных бронирований на дату и время.
	CountActive(ctx context.Context, date, hour string) (int, error)
	// Create добавляет бронирование и заполняет его ID.
	Create(ctx context.Context, reservation *model.Reservation) error
	// UpdateStatus меняет статус бронирования с указанным ID.
	UpdateStatus(ctx context.Context, id int, status string) error
}

// OrderStore описывает хранилище заказов на доставку. Заказы только добавляются.
type OrderStore interface {
	Create(ctx context.Context, order *model.Order) error
}

// TimestampLayout задает формат метки времени в строках таблицы (ДД/ММ/ГГГГ ЧЧ:ММ:СС).
const TimestampLayout = "02/01/2006 15:04:05"

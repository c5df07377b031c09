package repository

import (
	"context"
	"fmt"

	"github.com/susuregis/Chatbot/internal/model"

	"github.com/jmoiron/sqlx"
)

// ReservationRepository хранит бронирования в PostgreSQL.
type ReservationRepository struct {
	db *sqlx.DB
}

// NewReservationRepository создает новый репозиторий для бронирований.
func NewReservationRepository(db *sqlx.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// List возвращает все бронирования.
func (r *ReservationRepository) List(ctx context.Context) ([]model.Reservation, error) {
	reservations := []model.Reservation{}
	query := `SELECT id, name, party_size, slot_date, slot_time, status, created_at FROM reservations ORDER BY id`
	if err := r.db.SelectContext(ctx, &reservations, query); err != nil {
		return nil, fmt.Errorf("ошибка при получении списка бронирований: %w", err)
	}
	return reservations, nil
}

// CountActive возвращает число активных бронирований на дату и время.
func (r *ReservationRepository) CountActive(ctx context.Context, date, hour string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM reservations WHERE slot_date=$1 AND slot_time=$2 AND status=$3`
	if err := r.db.GetContext(ctx, &count, query, date, hour, model.StatusReserved); err != nil {
		return 0, fmt.Errorf("не удалось посчитать бронирования: %w", err)
	}
	return count, nil
}

// Create создает новое бронирование.
func (r *ReservationRepository) Create(ctx context.Context, reservation *model.Reservation) error {
	query := `INSERT INTO reservations (name, party_size, slot_date, slot_time, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		reservation.Name, reservation.PartySize, reservation.Date, reservation.Time,
		reservation.Status, reservation.CreatedAt,
	).Scan(&reservation.ID)
	if err != nil {
		return fmt.Errorf("не удалось создать бронирование: %w", err)
	}
	return nil
}

// UpdateStatus обновляет статус бронирования.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE reservations SET status=$1 WHERE id=$2", status, id)
	if err != nil {
		return fmt.Errorf("не удалось обновить статус бронирования: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/susuregis/Chatbot/internal/model"
)

// Столбцы листа бронирований: Nome, Pessoas, Data, Hora, Status, Timestamp.
const (
	resColName = iota
	resColPartySize
	resColDate
	resColTime
	resColStatus
	resColCreatedAt
)

const (
	reservationLastCol   = "F"
	reservationStatusCol = "E"
)

// номер строки берется из ответа API, например 'Agendamentos'!A7:F7
var updatedRowRe = regexp.MustCompile(`![A-Z]+(\d+)`)

// SheetsReservationRepository хранит бронирования на листе Google Sheets.
// ID бронирования равен номеру строки листа.
type SheetsReservationRepository struct {
	db  *SheetsDB
	tab string
	loc *time.Location
}

// NewSheetsReservationRepository создает репозиторий бронирований поверх листа tab.
func NewSheetsReservationRepository(db *SheetsDB, tab string, loc *time.Location) *SheetsReservationRepository {
	if loc == nil {
		loc = time.Local
	}
	return &SheetsReservationRepository{db: db, tab: tab, loc: loc}
}

// List возвращает все бронирования листа.
func (r *SheetsReservationRepository) List(ctx context.Context) ([]model.Reservation, error) {
	rows, err := r.db.rows(ctx, r.tab, reservationLastCol)
	if err != nil {
		return nil, err
	}
	reservations := make([]model.Reservation, 0, len(rows))
	for i, row := range rows {
		res := model.Reservation{
			ID:        i + 2, // данные начинаются со второй строки
			Name:      cell(row, resColName),
			PartySize: cell(row, resColPartySize),
			Date:      cell(row, resColDate),
			Time:      cell(row, resColTime),
			Status:    cell(row, resColStatus),
		}
		if ts := cell(row, resColCreatedAt); ts != "" {
			if created, err := time.ParseInLocation(TimestampLayout, ts, r.loc); err == nil {
				res.CreatedAt = created
			}
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}

// CountActive считает активные бронирования на дату и время перебором всего листа.
func (r *SheetsReservationRepository) CountActive(ctx context.Context, date, hour string) (int, error) {
	reservations, err := r.List(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, res := range reservations {
		if res.IsActive() && res.SameSlot(date, hour) {
			count++
		}
	}
	return count, nil
}

// Create дописывает бронирование в конец листа.
func (r *SheetsReservationRepository) Create(ctx context.Context, reservation *model.Reservation) error {
	resp, err := r.db.appendRow(ctx, r.tab, []interface{}{
		reservation.Name,
		reservation.PartySize,
		reservation.Date,
		reservation.Time,
		reservation.Status,
		reservation.CreatedAt.In(r.loc).Format(TimestampLayout),
	})
	if err != nil {
		return fmt.Errorf("не удалось создать бронирование: %w", err)
	}
	if resp.Updates != nil {
		if m := updatedRowRe.FindStringSubmatch(resp.Updates.UpdatedRange); m != nil {
			reservation.ID, _ = strconv.Atoi(m[1])
		}
	}
	return nil
}

// UpdateStatus перезаписывает ячейку статуса в строке id.
func (r *SheetsReservationRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	if id < 2 {
		return fmt.Errorf("некорректный номер строки бронирования: %d", id)
	}
	if err := r.db.updateCell(ctx, r.tab, fmt.Sprintf("%s%d", reservationStatusCol, id), status); err != nil {
		return fmt.Errorf("не удалось обновить статус бронирования: %w", err)
	}
	return nil
}

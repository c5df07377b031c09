package model

import (
	"errors"
	"time"
)

// Статусы бронирования столика (значения совпадают с тем, что пишется в таблицу).
const (
	StatusReserved  = "reservado"
	StatusCancelled = "cancelado"
)

// ErrSlotFull возвращается, когда на дату и время уже занято максимальное число столиков.
var ErrSlotFull = errors.New("все столики на это время заняты")

// Reservation представляет бронирование столика.
type Reservation struct {
	ID        int       `db:"id"`         // номер строки в таблице или первичный ключ в БД
	Name      string    `db:"name"`       // имя клиента
	PartySize string    `db:"party_size"` // количество гостей в том виде, как его ввел клиент
	Date      string    `db:"slot_date"`  // дата в формате ДД/ММ
	Time      string    `db:"slot_time"`  // время, например "20h"
	Status    string    `db:"status"`     // "reservado" или "cancelado"
	CreatedAt time.Time `db:"created_at"`
}

// SameSlot сообщает, относится ли бронирование к указанному слоту (дата + время).
func (r Reservation) SameSlot(date, hour string) bool {
	return r.Date == date && r.Time == hour
}

// IsActive сообщает, занимает ли бронирование столик.
func (r Reservation) IsActive() bool {
	return r.Status == StatusReserved
}

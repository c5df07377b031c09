package model

import "time"

// OrderStatusPending: статус нового заказа на доставку.
const OrderStatusPending = "pendente"

// Order представляет заказ на доставку.
type Order struct {
	ID           int       `db:"id"`
	Name         string    `db:"name"`
	Dish         string    `db:"dish"`
	Price        float64   `db:"price"`
	Neighborhood string    `db:"neighborhood"`
	Fee          float64   `db:"fee"`
	Total        float64   `db:"total"`
	Address      string    `db:"address"`
	CreatedAt    time.Time `db:"created_at"`
	Status       string    `db:"status"`
}

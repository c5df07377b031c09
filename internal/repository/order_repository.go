package repository

import (
	"context"
	"fmt"

	"github.com/susuregis/Chatbot/internal/model"

	"github.com/jmoiron/sqlx"
)

// OrderRepository хранит заказы на доставку в PostgreSQL.
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository создает новый репозиторий заказов.
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create сохраняет заказ и заполняет его ID.
func (r *OrderRepository) Create(ctx context.Context, order *model.Order) error {
	query := `INSERT INTO orders (name, dish, price, neighborhood, fee, total, address, created_at, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		order.Name, order.Dish, order.Price, order.Neighborhood, order.Fee,
		order.Total, order.Address, order.CreatedAt, order.Status,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("не удалось сохранить заказ: %w", err)
	}
	return nil
}

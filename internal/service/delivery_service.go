package service

import (
	"context"
	"fmt"
	"time"

	"github.com/susuregis/Chatbot/internal/model"
	"github.com/susuregis/Chatbot/internal/repository"
)

// Catalog описывает источник меню и таблицы доставки.
type Catalog interface {
	Menu(ctx context.Context) (model.Menu, error)
	Fees(ctx context.Context) (model.FeeTable, error)
}

// DeliveryService отвечает за расчет и оформление заказов на доставку.
type DeliveryService struct {
	catalog Catalog
	orders  repository.OrderStore
	now     func() time.Time
}

// NewDeliveryService создает сервис доставки.
func NewDeliveryService(catalog Catalog, orders repository.OrderStore) *DeliveryService {
	return &DeliveryService{catalog: catalog, orders: orders, now: time.Now}
}

// Menu возвращает актуальное меню.
func (s *DeliveryService) Menu(ctx context.Context) (model.Menu, error) {
	menu, err := s.catalog.Menu(ctx)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить меню: %w", err)
	}
	return menu, nil
}

// FeeFor ищет стоимость доставки в район. ok=false, если туда не доставляют.
func (s *DeliveryService) FeeFor(ctx context.Context, neighborhood string) (fee float64, ok bool, err error) {
	fees, err := s.catalog.Fees(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("не удалось получить стоимость доставки: %w", err)
	}
	fee, ok = fees.Lookup(neighborhood)
	return fee, ok, nil
}

// FindDish ищет блюдо в меню. ok=false, если блюда нет.
func (s *DeliveryService) FindDish(ctx context.Context, name string) (item model.MenuItem, ok bool, err error) {
	menu, err := s.Menu(ctx)
	if err != nil {
		return model.MenuItem{}, false, err
	}
	item, ok = menu.FindDish(name)
	return item, ok, nil
}

// Total возвращает итоговую сумму заказа: цена блюда плюс доставка.
func Total(price, fee float64) float64 {
	return price + fee
}

// PlaceOrder сохраняет подтвержденный заказ со статусом "pendente".
func (s *DeliveryService) PlaceOrder(ctx context.Context, order *model.Order) error {
	order.Total = Total(order.Price, order.Fee)
	order.Status = model.OrderStatusPending
	order.CreatedAt = s.now()
	if err := s.orders.Create(ctx, order); err != nil {
		return err
	}
	return nil
}

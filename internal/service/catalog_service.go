package service

import "github.com/susuregis/Chatbot/internal/model"

// CatalogService отдает неизменяемые меню и таблицу доставки.
type CatalogService struct {
	menu model.Menu
	fees model.FeeTable
}

// NewCatalogService создает сервис со статическими таблицами.
func NewCatalogService(menu model.Menu, fees model.FeeTable) *CatalogService {
	return &CatalogService{menu: menu, fees: fees}
}

// Menu возвращает меню по категориям.
func (s *CatalogService) Menu() model.Menu {
	return s.menu
}

// Fees возвращает стоимость доставки по районам.
func (s *CatalogService) Fees() model.FeeTable {
	return s.fees
}

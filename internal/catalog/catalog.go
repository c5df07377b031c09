// Package catalog содержит статическое меню ресторана и таблицу доставки,
// а также HTTP-клиент для сервиса, который их отдает.
package catalog

import "github.com/susuregis/Chatbot/internal/model"

// DefaultMenu возвращает меню ресторана.
func DefaultMenu() model.Menu {
	return model.Menu{
		{Name: "Entrada", Items: []model.MenuItem{
			{Name: "Bruschetta", Description: "Pão com tomate", Price: 12.00},
		}},
		{Name: "Prato Principal", Items: []model.MenuItem{
			{Name: "Feijoada", Description: "Completa com arroz e farofa", Price: 38.00},
		}},
		{Name: "Bebida", Items: []model.MenuItem{
			{Name: "Suco de Laranja", Description: "Natural", Price: 7.00},
		}},
		{Name: "Sobremesa", Items: []model.MenuItem{
			{Name: "Mousse de Maracujá", Description: "Com chantilly", Price: 10.00},
		}},
	}
}

// DefaultFees возвращает стоимость доставки по районам.
func DefaultFees() model.FeeTable {
	return model.FeeTable{
		"centro":    10.00,
		"jardim":    8.00,
		"vila nova": 12.00,
		"planalto":  15.00,
	}
}

package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/susuregis/Chatbot/internal/model"
)

// SheetsOrderRepository дописывает заказы на лист Google Sheets.
type SheetsOrderRepository struct {
	db  *SheetsDB
	tab string
	loc *time.Location
}

// NewSheetsOrderRepository создает репозиторий заказов поверх листа tab.
func NewSheetsOrderRepository(db *SheetsDB, tab string, loc *time.Location) *SheetsOrderRepository {
	if loc == nil {
		loc = time.Local
	}
	return &SheetsOrderRepository{db: db, tab: tab, loc: loc}
}

// Create дописывает строку Nome, Prato, Preco, Bairro, Frete, Total, Endereco, Timestamp, Status.
func (r *SheetsOrderRepository) Create(ctx context.Context, order *model.Order) error {
	resp, err := r.db.appendRow(ctx, r.tab, []interface{}{
		order.Name,
		order.Dish,
		order.Price,
		order.Neighborhood,
		order.Fee,
		order.Total,
		order.Address,
		order.CreatedAt.In(r.loc).Format(TimestampLayout),
		order.Status,
	})
	if err != nil {
		return fmt.Errorf("не удалось сохранить заказ: %w", err)
	}
	if resp.Updates != nil {
		if m := updatedRowRe.FindStringSubmatch(resp.Updates.UpdatedRange); m != nil {
			order.ID, _ = strconv.Atoi(m[1])
		}
	}
	return nil
}

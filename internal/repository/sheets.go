package repository

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsDB представляет тонкую обертку над Google Sheets API для работы с листами как с таблицами.
// Первая строка каждого листа содержит заголовок, данные начинаются со второй.
type SheetsDB struct {
	values        *sheets.SpreadsheetsValuesService
	spreadsheetID string
}

// NewSheetsDB подключается к таблице spreadsheetID. Учетные данные передаются через opts
// (например, option.WithCredentialsFile).
func NewSheetsDB(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*SheetsDB, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("не указан идентификатор таблицы")
	}
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать клиент Google Sheets: %w", err)
	}
	return &SheetsDB{values: svc.Spreadsheets.Values, spreadsheetID: spreadsheetID}, nil
}

// a1 строит диапазон в нотации A1 с экранированным именем листа.
func a1(tab, cells string) string {
	return fmt.Sprintf("'%s'!%s", strings.ReplaceAll(tab, "'", "''"), cells)
}

// rows читает строки данных листа (без заголовка) до столбца lastCol включительно.
func (db *SheetsDB) rows(ctx context.Context, tab, lastCol string) ([][]interface{}, error) {
	resp, err := db.values.Get(db.spreadsheetID, a1(tab, "A2:"+lastCol)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать лист %s: %w", tab, err)
	}
	return resp.Values, nil
}

// appendRow дописывает строку в конец листа. Значения пишутся как есть (RAW),
// чтобы "29/05" не превращалась в дату.
func (db *SheetsDB) appendRow(ctx context.Context, tab string, row []interface{}) (*sheets.AppendValuesResponse, error) {
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	resp, err := db.values.Append(db.spreadsheetID, a1(tab, "A1"), vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("не удалось добавить строку в лист %s: %w", tab, err)
	}
	return resp, nil
}

// updateCell записывает одно значение в ячейку.
func (db *SheetsDB) updateCell(ctx context.Context, tab, cell string, value interface{}) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{{value}}}
	_, err := db.values.Update(db.spreadsheetID, a1(tab, cell), vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("не удалось обновить ячейку %s листа %s: %w", cell, tab, err)
	}
	return nil
}

// cell возвращает значение ячейки строки как строку; отсутствующие хвостовые ячейки считаются пустыми.
func cell(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[i]))
}

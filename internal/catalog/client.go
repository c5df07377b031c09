package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/susuregis/Chatbot/internal/model"
)

// Client читает меню и таблицу доставки из HTTP-сервиса.
// Ответы не кэшируются: каждый вызов делает отдельный запрос.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient создает клиент для сервиса по адресу baseURL (например, http://127.0.0.1:8000).
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Menu запрашивает GET /cardapio.
func (c *Client) Menu(ctx context.Context) (model.Menu, error) {
	var menu model.Menu
	if err := c.get(ctx, "/cardapio", &menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// Fees запрашивает GET /frete.
func (c *Client) Fees(ctx context.Context) (model.FeeTable, error) {
	fees := model.FeeTable{}
	if err := c.get(ctx, "/frete", &fees); err != nil {
		return nil, err
	}
	return fees, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("некорректный запрос %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("сервис меню недоступен: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("не удалось прочитать ответ %s: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("сервис меню вернул %d на %s", resp.StatusCode, path)
	}
	if err := sonic.Unmarshal(body, out); err != nil {
		return fmt.Errorf("некорректный ответ %s: %w", path, err)
	}
	return nil
}

package handler

import (
	"net/http"

	"github.com/susuregis/Chatbot/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler структурирует зависимости сервисов для обработки HTTP-запросов.
type Handler struct {
	CatalogService *service.CatalogService
}

// NewHandler создает новый Handler с внедрением зависимостей (сервисов).
func NewHandler(cs *service.CatalogService) *Handler {
	return &Handler{CatalogService: cs}
}

// GetMenu обработчик для GET /cardapio - возвращает меню по категориям.
func (h *Handler) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, h.CatalogService.Menu())
}

// GetFees обработчик для GET /frete - возвращает стоимость доставки по районам.
func (h *Handler) GetFees(c *gin.Context) {
	c.JSON(http.StatusOK, h.CatalogService.Fees())
}

// Health обработчик для GET /health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

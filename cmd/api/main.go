package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/susuregis/Chatbot/internal/catalog"
	"github.com/susuregis/Chatbot/internal/config"
	"github.com/susuregis/Chatbot/internal/handler"
	"github.com/susuregis/Chatbot/internal/logger"
	"github.com/susuregis/Chatbot/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info").Fatalf("Не удалось загрузить конфигурацию: %v", err)
	}
	log := logger.New(cfg.LogLevel)

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Меню и стоимость доставки неизменны во время работы
	catalogService := service.NewCatalogService(catalog.DefaultMenu(), catalog.DefaultFees())
	h := handler.NewHandler(catalogService)
	router := handler.NewRouter(h, log)

	srv := &http.Server{
		Addr:    ":" + cfg.APIPort,
		Handler: router,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Info("Получен сигнал завершения")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.WithError(err).Error("Ошибка остановки сервера")
		}
	}()

	log.WithField("port", cfg.APIPort).Info("Сервис меню запущен")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}

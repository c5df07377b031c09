package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata" // зона America/Sao_Paulo в минимальных образах

	"github.com/susuregis/Chatbot/internal/bot"
	"github.com/susuregis/Chatbot/internal/catalog"
	"github.com/susuregis/Chatbot/internal/config"
	"github.com/susuregis/Chatbot/internal/dialogue"
	"github.com/susuregis/Chatbot/internal/logger"
	"github.com/susuregis/Chatbot/internal/repository"
	"github.com/susuregis/Chatbot/internal/scheduler"
	"github.com/susuregis/Chatbot/internal/service"
	"github.com/susuregis/Chatbot/internal/session"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info").Fatalf("Не удалось загрузить конфигурацию: %v", err)
	}
	log := logger.New(cfg.LogLevel)
	if err := cfg.ValidateBot(); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Хранилище бронирований и заказов
	reservations, orders, closeStore := openStore(ctx, cfg, log)
	defer closeStore()

	// Сессии диалогов
	var sessions session.Store
	if cfg.RedisURL != "" {
		redisStore, err := session.NewRedisStore(ctx, cfg.RedisURL, cfg.RedisPassword, cfg.SessionTimeout)
		if err != nil {
			log.Fatalf("Не удалось подключиться к Redis: %v", err)
		}
		defer redisStore.Close()
		sessions = redisStore
		log.Info("Сессии хранятся в Redis")
	} else {
		memStore := session.NewMemoryStore(cfg.SessionTimeout)
		go memStore.StartCleanupRoutine(ctx, cfg.SessionTimeout)
		sessions = memStore
	}

	// Сервисы
	menuClient := catalog.NewClient(cfg.MenuAPIURL, cfg.MenuAPITimeout)
	reservationService := service.NewReservationService(reservations, cfg.SlotCapacity)
	deliveryService := service.NewDeliveryService(menuClient, orders)
	expiryService := service.NewExpiryService(reservations, cfg.GracePeriod, cfg.Location, log)

	// Отмена просроченных бронирований
	go scheduler.Every(ctx, cfg.SweepInterval, func(ctx context.Context) {
		if _, err := expiryService.Sweep(ctx); err != nil {
			log.WithError(err).Error("Проход по бронированиям завершился ошибкой")
		}
	})

	// Инициализация Telegram Bot API
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("Ошибка инициализации бота: %v", err)
	}
	api.Debug = cfg.BotDebug
	log.Infof("Запущен бот %s", api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Info("Получен сигнал завершения")
		api.StopReceivingUpdates()
		cancel()
	}()

	conversation := dialogue.New(sessions, reservationService, deliveryService, log)
	bot.New(api, conversation, log).Run(ctx, updates)
}

// openStore подключает хранилище, выбранное в STORE_BACKEND.
func openStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (repository.ReservationStore, repository.OrderStore, func()) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db, err := repository.NewPostgresDB(cfg.DB.DSN())
		if err != nil {
			log.Fatalf("DB connection failed: %v", err)
		}
		if err := repository.Migrate(db, "migrations", log); err != nil {
			log.WithError(err).Warn("Миграции не применены")
		}
		log.Info("Бронирования и заказы хранятся в PostgreSQL")
		return repository.NewReservationRepository(db), repository.NewOrderRepository(db), func() { db.Close() }
	default:
		sheetsDB, err := repository.NewSheetsDB(ctx, cfg.Sheets.SpreadsheetID,
			option.WithCredentialsFile(cfg.Sheets.CredentialsFile))
		if err != nil {
			log.Fatalf("Не удалось подключиться к Google Sheets: %v", err)
		}
		log.WithField("spreadsheet", cfg.Sheets.SpreadsheetID).Info("Бронирования и заказы хранятся в Google Sheets")
		return repository.NewSheetsReservationRepository(sheetsDB, cfg.Sheets.ReservationsTab, cfg.Location),
			repository.NewSheetsOrderRepository(sheetsDB, cfg.Sheets.OrdersTab, cfg.Location),
			func() {}
	}
}

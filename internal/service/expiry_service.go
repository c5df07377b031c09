package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/susuregis/Chatbot/internal/model"
	"github.com/susuregis/Chatbot/internal/repository"
)

// DefaultGracePeriod: сколько ждем гостя после времени брони.
const DefaultGracePeriod = 30 * time.Minute

// Допустимые форматы "дата время". Год в таблицу не пишется.
var slotLayouts = []string{
	"2/1 15h",
	"2/1 15h04",
	"2/1 15:04",
}

// ParseSlot переводит дату (ДД/ММ) и время (20h, 20h30, 20:30) бронирования в момент времени
// текущего года в зоне loc.
func ParseSlot(date, hour string, now time.Time, loc *time.Location) (time.Time, error) {
	value := strings.TrimSpace(date) + " " + strings.ToLower(strings.TrimSpace(hour))
	for _, layout := range slotLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return time.Date(now.In(loc).Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("не удалось разобрать дату %q", value)
}

// SweepResult содержит итог одного прохода.
type SweepResult struct {
	Checked   int
	Cancelled int
	Skipped   int
	Failed    int
}

// ExpiryService отменяет бронирования, на которые гости не пришли.
type ExpiryService struct {
	store repository.ReservationStore
	grace time.Duration
	loc   *time.Location
	log   logrus.FieldLogger
	now   func() time.Time
}

// NewExpiryService создает сервис отмены просроченных бронирований.
func NewExpiryService(store repository.ReservationStore, grace time.Duration, loc *time.Location, log logrus.FieldLogger) *ExpiryService {
	if grace <= 0 {
		grace = DefaultGracePeriod
	}
	if loc == nil {
		loc = time.Local
	}
	return &ExpiryService{store: store, grace: grace, loc: loc, log: log, now: time.Now}
}

// Sweep проходит по всем активным бронированиям и отменяет те, чье время прошло больше
// чем на grace. Строки с неразборчивой датой пропускаются, повторов нет.
func (s *ExpiryService) Sweep(ctx context.Context) (SweepResult, error) {
	var result SweepResult
	log := s.log.WithField("sweep_id", uuid.NewString())

	reservations, err := s.store.List(ctx)
	if err != nil {
		return result, fmt.Errorf("не удалось получить бронирования: %w", err)
	}

	now := s.now()
	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}
		result.Checked++

		slot, err := ParseSlot(res.Date, res.Time, now, s.loc)
		if err != nil {
			result.Skipped++
			log.WithError(err).WithField("row", res.ID).Warn("бронирование пропущено")
			continue
		}
		if now.Sub(slot) <= s.grace {
			continue
		}

		if err := s.store.UpdateStatus(ctx, res.ID, model.StatusCancelled); err != nil {
			result.Failed++
			log.WithError(err).WithField("row", res.ID).Error("не удалось отменить бронирование")
			continue
		}
		result.Cancelled++
		log.WithFields(logrus.Fields{
			"row":  res.ID,
			"name": res.Name,
			"slot": res.Date + " " + res.Time,
		}).Info("бронирование отменено по истечении времени")
	}

	log.WithFields(logrus.Fields{
		"checked":   result.Checked,
		"cancelled": result.Cancelled,
		"skipped":   result.Skipped,
		"failed":    result.Failed,
	}).Debug("проход завершен")
	return result, nil
}

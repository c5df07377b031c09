// Package scheduler запускает фоновые задачи по таймеру.
package scheduler

import (
	"context"
	"time"
)

// Every вызывает job каждые interval, пока не отменен ctx. Первый запуск через interval.
// Вызовы job не перекрываются: следующий тик ждет завершения предыдущего.
func Every(ctx context.Context, interval time.Duration, job func(ctx context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			job(ctx)
		}
	}
}

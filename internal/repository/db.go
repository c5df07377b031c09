package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL драйвер
	"github.com/sirupsen/logrus"
)

// NewPostgresDB открывает соединение с PostgreSQL.
func NewPostgresDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к базе данных: %w", err)
	}
	return db, nil
}

// Migrate применяет *.sql из каталога dir в алфавитном порядке, каждый файл в своей транзакции.
// Ошибка одного файла не останавливает остальные.
func Migrate(db *sqlx.DB, dir string, log logrus.FieldLogger) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return fmt.Errorf("не удалось найти миграции: %w", err)
	}
	sort.Strings(files)
	for _, file := range files {
		if err := applyMigration(db, file); err != nil {
			log.WithError(err).WithField("file", file).Error("миграция завершилась ошибкой")
			continue
		}
		log.WithField("file", file).Info("миграция применена")
	}
	return nil
}

func applyMigration(db *sqlx.DB, file string) error {
	content, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("не удалось начать транзакцию: %w", err)
	}
	if _, err := tx.Exec(string(content)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

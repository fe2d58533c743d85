package migrations

import (
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

// Run применяет все миграции из папки db/migrations, включая посевные данные.
func Run(dsn string) error {
	db, err := goose.OpenDBWithDriver("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, "db/migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

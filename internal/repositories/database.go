package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/tiaraclaudya/inventory-service/internal/config"

	"github.com/lib/pq"
)

// Repositories owns the connection pool and the typed repositories built on
// it. Constructed once at process start and injected; Close drains the pool
// on shutdown.
type Repositories struct {
	DB       *sql.DB
	Product  ProductRepository
	Category CategoryRepository
}

func New(cfg *config.Config) (*Repositories, error) {

	db, err := sql.Open("postgres", cfg.Database.GetDSN())

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repositories{
		DB:       db,
		Product:  NewProductRepo(db),
		Category: NewCategoryRepo(db),
	}, nil
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation. Pre-insert existence checks give the clean message; the
// constraint is the safety net for the check-then-act race.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

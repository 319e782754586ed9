package health

import (
	"fmt"
	"time"

	"github.com/tiaraclaudya/inventory-service/internal/config"

	"github.com/hellofresh/health-go/v5"
	healthHTTP "github.com/hellofresh/health-go/v5/checks/http"
	healthPostgres "github.com/hellofresh/health-go/v5/checks/postgres"
)

// NewHealthHandler builds the readiness probe: the store and the user
// service are the only two dependencies this service has.
func NewHealthHandler(cfg *config.Config) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "inventory-service",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "database",
				Timeout:   3 * time.Second,
				SkipOnErr: false,
				Check: healthPostgres.New(healthPostgres.Config{
					DSN: cfg.Database.GetDSN(),
				}),
			},
			health.Config{
				Name:    "user-service",
				Timeout: cfg.UserService.Timeout,
				// The proxy layer degrades gracefully when the user
				// service is down, so readiness is not gated on it.
				SkipOnErr: true,
				Check: healthHTTP.New(healthHTTP.Config{
					URL: cfg.UserService.BaseURL + "/health",
				}),
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

package helper

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"riverstay/config"
	"riverstay/infras/postgres"
	"riverstay/shared/password"
	"riverstay/shared/timezone"
)

// SeedAdmin creates the bootstrap admin account from the ADMIN_* environment
// configuration. It is a no-op when the email already exists, so it is safe
// to run on every deploy.
func SeedAdmin(ctx context.Context, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		return fmt.Errorf("admin email and password are required")
	}

	db := postgres.CreatePostgresWriteConn(*cfg)
	defer db.Close()

	hashed, err := password.Hash(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	now := timezone.Now()

	result, err := db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password, is_admin, created_at, modified_at, created_by, modified_by)
		 VALUES ($1, $2, $3, $4, TRUE, $5, $5, $6, $6)
		 ON CONFLICT (email) DO NOTHING`,
		uuid.NewString(), cfg.Admin.Name, cfg.Admin.Email, hashed, now, cfg.Admin.Email,
	)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		log.Info().Str("email", cfg.Admin.Email).Msg("Admin user already exists, nothing to do")

		return nil
	}

	log.Info().Str("email", cfg.Admin.Email).Msg("Admin user created successfully")

	return nil
}

package settings

import (
	"context"
	"database/sql"

	"go-frameshop/internal/database"
)

type SettingsRepository interface {
	GetAll(ctx context.Context) (map[string]string, error)
	// UpdateMany upserts all pairs in one transaction; either every setting
	// is written or none are.
	UpdateMany(ctx context.Context, pairs map[string]string) error
}

type SettingsRepositoryImpl struct {
	db *sql.DB
}

func NewSettingsRepository(pg *database.PostgresDB) SettingsRepository {
	return &SettingsRepositoryImpl{db: pg.DB}
}

func (r *SettingsRepositoryImpl) GetAll(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT setting_key, COALESCE(setting_value, '') FROM settings`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		settings[key] = value
	}
	return settings, rows.Err()
}

func (r *SettingsRepositoryImpl) UpdateMany(ctx context.Context, pairs map[string]string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for key, value := range pairs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO settings (setting_key, setting_value)
			VALUES ($1, $2)
			ON CONFLICT (setting_key) DO UPDATE
			SET setting_value = EXCLUDED.setting_value, updated_at = NOW()`,
			key, value); err != nil {
			return err
		}
	}

	return tx.Commit()
}

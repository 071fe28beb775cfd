package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/apperrors"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/model"
)

// SettingRepository provides data access methods for the app_setting table.
type SettingRepository struct {
	db *sql.DB
}

// NewSettingRepository creates a new SettingRepository with the provided database connection.
func NewSettingRepository(db *sql.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSettingOnKey retrieves a setting by its key.
func (r *SettingRepository) GetSettingOnKey(key string) (model.Setting, error) {
	query := `
          SELECT id, "key", value, encrypted, updated_at
          FROM app_setting
          WHERE "key" = ?
      `
	var s model.Setting
	var updatedAt sql.NullTime

	err := r.db.QueryRow(query, key).Scan(
		&s.ID,
		&s.Key,
		&s.Value,
		&s.Encrypted,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Setting{}, apperrors.ErrSettingNotFound
	}
	if err != nil {
		return model.Setting{}, fmt.Errorf("failed to query setting: %w", err)
	}

	s.UpdatedAt = updatedAt.Time
	return s, nil
}

// UpsertSetting inserts or replaces the value for a key.
func (r *SettingRepository) UpsertSetting(s *model.Setting) error {
	query := `
          INSERT INTO app_setting (id, "key", value, encrypted, updated_at)
          VALUES (?, ?, ?, ?, ?)
          ON CONFLICT("key") DO UPDATE SET
              value = excluded.value,
              encrypted = excluded.encrypted,
              updated_at = excluded.updated_at
      `

	_, err := r.db.Exec(query, s.ID, s.Key, s.Value, s.Encrypted, formatDateTime(time.Now()))
	if err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}

	return nil
}

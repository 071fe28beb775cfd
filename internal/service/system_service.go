package service

import (
	"database/sql"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/database"
)

// Version is the application version, overridable at build time via
// -ldflags "-X .../internal/service.Version=x.y.z".
var Version = "dev"

// SystemService handles system-related operations
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{
		db: db,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion returns the application version string.
func (s *SystemService) CheckVersion() string {
	return Version
}

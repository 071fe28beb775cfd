package service_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/apperrors"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/repository"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/service"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/testutil"
)

// base64url-encoded 32-byte fernet key. Never use outside tests.
const testEncryptionKey = "cw_0x689RpI-jtRR7oE8h_eQsKImvJapLeSbXpwF4e4="

func TestSettingService_Get(t *testing.T) {
	t.Run("round-trips a plain value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingService(t, db, "")

		if err := svc.Set("org.name", "Koperasi Sejahtera", false); err != nil {
			t.Fatalf("Set() returned unexpected error: %v", err)
		}

		value, err := svc.Get("org.name")
		if err != nil {
			t.Fatalf("Get() returned unexpected error: %v", err)
		}
		if value != "Koperasi Sejahtera" {
			t.Errorf("Expected 'Koperasi Sejahtera', got %q", value)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingService(t, db, "")

		_, err := svc.Get("missing")
		if !errors.Is(err, apperrors.ErrSettingNotFound) {
			t.Errorf("Expected ErrSettingNotFound, got %v", err)
		}
	})

	t.Run("set replaces the cached value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingService(t, db, "")

		if err := svc.Set("org.name", "First", false); err != nil {
			t.Fatalf("Set() returned unexpected error: %v", err)
		}
		if _, err := svc.Get("org.name"); err != nil {
			t.Fatalf("Get() returned unexpected error: %v", err)
		}

		if err := svc.Set("org.name", "Second", false); err != nil {
			t.Fatalf("Set() returned unexpected error: %v", err)
		}

		value, err := svc.Get("org.name")
		if err != nil {
			t.Fatalf("Get() returned unexpected error: %v", err)
		}
		if value != "Second" {
			t.Errorf("Expected 'Second', got %q", value)
		}
	})

	t.Run("invalidate cache forces a database read", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingService(t, db, "")

		if err := svc.Set("org.name", "Cached", false); err != nil {
			t.Fatalf("Set() returned unexpected error: %v", err)
		}
		if _, err := svc.Get("org.name"); err != nil {
			t.Fatalf("Get() returned unexpected error: %v", err)
		}

		// Out-of-band write the service cannot see through its cache.
		if _, err := db.Exec(`UPDATE app_setting SET value = 'Fresh' WHERE "key" = 'org.name'`); err != nil {
			t.Fatalf("Failed to update setting: %v", err)
		}

		value, err := svc.Get("org.name")
		if err != nil {
			t.Fatalf("Get() returned unexpected error: %v", err)
		}
		if value != "Cached" {
			t.Errorf("Expected stale 'Cached' before invalidation, got %q", value)
		}

		svc.InvalidateCache()

		value, err = svc.Get("org.name")
		if err != nil {
			t.Fatalf("Get() returned unexpected error: %v", err)
		}
		if value != "Fresh" {
			t.Errorf("Expected 'Fresh' after invalidation, got %q", value)
		}
	})
}

// TestSettingService_Encryption tests fernet-encrypted settings.
//
// WHY: Credentials like SMTP passwords live in app_setting; the stored value
// must be a fernet token, never the plaintext.
func TestSettingService_Encryption(t *testing.T) {
	t.Run("encrypted value round-trips", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingService(t, db, testEncryptionKey)

		if err := svc.Set("smtp.password", "s3cret", true); err != nil {
			t.Fatalf("Set() returned unexpected error: %v", err)
		}

		value, err := svc.Get("smtp.password")
		if err != nil {
			t.Fatalf("Get() returned unexpected error: %v", err)
		}
		if value != "s3cret" {
			t.Errorf("Expected 's3cret', got %q", value)
		}
	})

	t.Run("plaintext never reaches the database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingService(t, db, testEncryptionKey)

		if err := svc.Set("smtp.password", "s3cret", true); err != nil {
			t.Fatalf("Set() returned unexpected error: %v", err)
		}

		var stored string
		if err := db.QueryRow(`SELECT value FROM app_setting WHERE "key" = 'smtp.password'`).Scan(&stored); err != nil {
			t.Fatalf("Failed to read stored setting: %v", err)
		}

		if strings.Contains(stored, "s3cret") {
			t.Error("Expected stored value to be encrypted, found plaintext")
		}
	})

	t.Run("encrypting without a key is rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingService(t, db, "")

		if err := svc.Set("smtp.password", "s3cret", true); err == nil {
			t.Fatal("Expected error when encrypting without a key, got nil")
		}
	})

	t.Run("reading an encrypted setting without a key is rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		writer := testutil.NewTestSettingService(t, db, testEncryptionKey)
		if err := writer.Set("smtp.password", "s3cret", true); err != nil {
			t.Fatalf("Set() returned unexpected error: %v", err)
		}

		reader := testutil.NewTestSettingService(t, db, "")
		if _, err := reader.Get("smtp.password"); err == nil {
			t.Fatal("Expected error when reading encrypted setting without a key, got nil")
		}
	})

	t.Run("malformed encryption key is rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		_, err := service.NewSettingService(repository.NewSettingRepository(db), "not-a-key")
		if err == nil {
			t.Fatal("Expected error for malformed encryption key, got nil")
		}
	})
}

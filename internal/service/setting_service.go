package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/google/uuid"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/model"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/repository"
)

// SettingProvider is the configuration-provider contract consumed by
// services that read stored settings. Cache invalidation is an explicit part
// of the contract rather than an ambient global.
type SettingProvider interface {
	Get(key string) (string, error)
	Set(key, value string, encrypted bool) error
	InvalidateCache()
}

// SettingService reads and writes app settings through a small in-process
// cache. Encrypted settings are stored as fernet tokens; the decrypted value
// never touches the cache or the database.
type SettingService struct {
	settingRepo *repository.SettingRepository
	keys        []*fernet.Key

	mu    sync.RWMutex
	cache map[string]string
}

// NewSettingService creates a new SettingService. encryptionKey is a
// base64-encoded fernet key; it may be empty when no encrypted settings are
// used.
func NewSettingService(settingRepo *repository.SettingRepository, encryptionKey string) (*SettingService, error) {
	var keys []*fernet.Key
	if encryptionKey != "" {
		var err error
		keys, err = fernet.DecodeKeys(encryptionKey)
		if err != nil {
			return nil, fmt.Errorf("invalid settings encryption key: %w", err)
		}
	}

	return &SettingService{
		settingRepo: settingRepo,
		keys:        keys,
		cache:       make(map[string]string),
	}, nil
}

// Get returns the plaintext value for a key, consulting the cache first.
// Encrypted settings are decrypted on every read and never cached.
func (s *SettingService) Get(key string) (string, error) {
	s.mu.RLock()
	if value, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return value, nil
	}
	s.mu.RUnlock()

	setting, err := s.settingRepo.GetSettingOnKey(key)
	if err != nil {
		return "", err
	}

	if setting.Encrypted {
		if len(s.keys) == 0 {
			return "", fmt.Errorf("setting %s is encrypted but no encryption key is configured", key)
		}
		plaintext := fernet.VerifyAndDecrypt([]byte(setting.Value), 0, s.keys)
		if plaintext == nil {
			return "", fmt.Errorf("failed to decrypt setting %s", key)
		}
		return string(plaintext), nil
	}

	s.mu.Lock()
	s.cache[key] = setting.Value
	s.mu.Unlock()

	return setting.Value, nil
}

// Set stores a value for a key, encrypting it when requested, and drops the
// key from the cache.
func (s *SettingService) Set(key, value string, encrypted bool) error {
	stored := value

	if encrypted {
		if len(s.keys) == 0 {
			return fmt.Errorf("cannot encrypt setting %s: no encryption key is configured", key)
		}
		token, err := fernet.EncryptAndSign([]byte(value), s.keys[0])
		if err != nil {
			return fmt.Errorf("failed to encrypt setting %s: %w", key, err)
		}
		stored = string(token)
	}

	setting := &model.Setting{
		ID:        uuid.New().String(),
		Key:       key,
		Value:     stored,
		Encrypted: encrypted,
		UpdatedAt: time.Now().UTC(),
	}

	if err := s.settingRepo.UpsertSetting(setting); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()

	return nil
}

// InvalidateCache drops every cached value.
func (s *SettingService) InvalidateCache() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

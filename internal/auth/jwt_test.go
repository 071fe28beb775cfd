package auth

import (
	"errors"
	"testing"
	"time"
)

func TestJWTManager(t *testing.T) {
	t.Run("generate and validate round trip", func(t *testing.T) {
		manager := NewJWTManager("test-secret", time.Hour)

		token, err := manager.Generate("actor-1", "Treasurer")
		if err != nil {
			t.Fatalf("Generate() returned unexpected error: %v", err)
		}

		claims, err := manager.Validate(token)
		if err != nil {
			t.Fatalf("Validate() returned unexpected error: %v", err)
		}

		if claims.ActorID != "actor-1" {
			t.Errorf("Expected actor ID actor-1, got %s", claims.ActorID)
		}
		if claims.Name != "Treasurer" {
			t.Errorf("Expected name Treasurer, got %s", claims.Name)
		}
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		manager := NewJWTManager("test-secret", -time.Minute)

		token, err := manager.Generate("actor-1", "Treasurer")
		if err != nil {
			t.Fatalf("Generate() returned unexpected error: %v", err)
		}

		_, err = manager.Validate(token)
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		manager := NewJWTManager("test-secret", time.Hour)
		other := NewJWTManager("other-secret", time.Hour)

		token, err := other.Generate("actor-1", "Treasurer")
		if err != nil {
			t.Fatalf("Generate() returned unexpected error: %v", err)
		}

		_, err = manager.Validate(token)
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		manager := NewJWTManager("test-secret", time.Hour)

		_, err := manager.Validate("not.a.token")
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})
}

package application

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adipranaya/demo-dashboard-api/internal/infrastructure/secrets"
)

// ErrSecretUnavailable indicates the login key could not be resolved or parsed.
var ErrSecretUnavailable = errors.New("login secret unavailable")

// AuthService produces a deterministic keyed digest of a username:
// HMAC-SHA256 over the username bytes, keyed with the encryptionKey field of
// the secret payload, hex encoded.
//
// FailClosed controls what happens when the secret cannot be resolved:
// when true (the default policy) Authenticate returns ErrSecretUnavailable;
// when false it falls back to an empty key, reproducing the upstream
// behavior this service replaces.
type AuthService struct {
	Secrets      secrets.Provider
	SecretID     string
	FetchTimeout time.Duration
	FailClosed   bool
	Logger       *logrus.Logger
}

func NewAuthService(provider secrets.Provider, secretID string, fetchTimeout time.Duration, failClosed bool, logger *logrus.Logger) *AuthService {
	return &AuthService{
		Secrets:      provider,
		SecretID:     secretID,
		FetchTimeout: fetchTimeout,
		FailClosed:   failClosed,
		Logger:       logger,
	}
}

// Authenticate returns the lower-case hex digest for the username. The same
// (username, key) pair always yields the same digest.
func (s *AuthService) Authenticate(ctx context.Context, username string) (string, error) {
	key, err := s.encryptionKey(ctx)
	if err != nil {
		if s.FailClosed {
			return "", err
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("login key unavailable, falling back to empty key")
		}
		key = nil
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(username))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

func (s *AuthService) encryptionKey(ctx context.Context) ([]byte, error) {
	if s.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.FetchTimeout)
		defer cancel()
	}

	raw, ok := s.Secrets.Fetch(ctx, s.SecretID)
	if !ok {
		return nil, ErrSecretUnavailable
	}

	var payload struct {
		EncryptionKey string `json:"encryptionKey"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("secret_id", s.SecretID).Error("secret payload is not valid JSON")
		}
		return nil, ErrSecretUnavailable
	}
	return []byte(payload.EncryptionKey), nil
}

package secrets

import (
	"context"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// EnvProvider reads secrets from environment variables, for local
// development and tests. The id "login-key" maps to SECRET_LOGIN_KEY.
type EnvProvider struct {
	Logger *logrus.Logger
}

func NewEnvProvider(logger *logrus.Logger) *EnvProvider {
	return &EnvProvider{Logger: logger}
}

var _ Provider = (*EnvProvider)(nil)

func (p *EnvProvider) Fetch(_ context.Context, id string) (string, bool) {
	v, ok := os.LookupEnv(envKey(id))
	if !ok && p.Logger != nil {
		p.Logger.WithField("secret_id", id).Warn("secret not set in environment")
	}
	return v, ok
}

func envKey(id string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - ('a' - 'A')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, id)
	return "SECRET_" + mapped
}

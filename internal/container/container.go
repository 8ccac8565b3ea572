package container

import (
	"github.com/sirupsen/logrus"

	"github.com/adipranaya/demo-dashboard-api/config"
	"github.com/adipranaya/demo-dashboard-api/internal/application"
	repo "github.com/adipranaya/demo-dashboard-api/internal/domain/repository"
	"github.com/adipranaya/demo-dashboard-api/internal/infrastructure/secrets"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg       *config.Config
	logger    *logrus.Logger
	directory repo.UserDirectory
	metrics   *application.Metrics
	provider  secrets.Provider
)

func SetConfig(c *config.Config)        { cfg = c }
func GetConfig() *config.Config         { return cfg }
func SetLogger(l *logrus.Logger)        { logger = l }
func GetLogger() *logrus.Logger         { return logger }
func SetDirectory(d repo.UserDirectory) { directory = d }
func GetDirectory() repo.UserDirectory  { return directory }
func SetMetrics(m *application.Metrics) { metrics = m }
func GetMetrics() *application.Metrics  { return metrics }
func SetSecrets(p secrets.Provider)     { provider = p }
func GetSecrets() secrets.Provider      { return provider }

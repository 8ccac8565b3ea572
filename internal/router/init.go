package router

import (
	"github.com/adipranaya/demo-dashboard-api/internal/application"
	"github.com/adipranaya/demo-dashboard-api/internal/container"
	handlers "github.com/adipranaya/demo-dashboard-api/internal/interface/http"
	"github.com/adipranaya/demo-dashboard-api/internal/router/modules"
)

func buildDirectoryModule() *modules.DirectoryModule {
	service := application.NewDirectoryService(container.GetDirectory(), container.GetLogger())
	handler := handlers.NewDirectoryHandler(service, container.GetLogger())
	return modules.NewDirectoryModule(handler)
}

func buildLoginModule() *modules.LoginModule {
	cfg := container.GetConfig()
	auth := application.NewAuthService(
		container.GetSecrets(),
		cfg.LoginSecretID,
		cfg.SecretFetchTimeout,
		cfg.LoginFailClosed,
		container.GetLogger(),
	)
	return modules.NewLoginModule(handlers.NewLoginHandler(auth, container.GetLogger()))
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	r.Add(buildDirectoryModule())
	r.Add(buildLoginModule())
	r.Add(modules.NewQuoteModule(handlers.NewQuoteHandler(application.NewQuoteService())))
	r.Add(modules.NewSystemModule(handlers.NewSystemHandler(container.GetMetrics(), container.GetConfig().AppName)))
}

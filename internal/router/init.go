package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/ghardekho-api/internal/application"
	"github.com/oksasatya/ghardekho-api/internal/container"
	"github.com/oksasatya/ghardekho-api/internal/infrastructure/notify"
	"github.com/oksasatya/ghardekho-api/internal/infrastructure/search"
	handlers "github.com/oksasatya/ghardekho-api/internal/interface/http"
	"github.com/oksasatya/ghardekho-api/internal/interface/middleware"
	"github.com/oksasatya/ghardekho-api/internal/router/modules"
	mailtpl "github.com/oksasatya/ghardekho-api/pkg/mailer/templates"
)

// apiLimitPerMinute caps all /api traffic per client IP, on top of the
// per-route limits set by each module.
const apiLimitPerMinute = 600

type moduleDeps struct {
	Auth     *application.AuthService
	Property *application.PropertyService
	Saved    *application.SavedPropertyService
	AuthMW   gin.HandlerFunc
}

func buildDeps() moduleDeps {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	repos := container.GetRepos()

	notifier := application.NopNotifier
	if cfg.MailEnabled() && container.GetRabbitPub() != nil {
		notifier = notify.NewEmailNotifier(container.GetRabbitPub(), mailtpl.Brand{
			CompanyName: cfg.CompanyName,
			AppName:     cfg.AppName,
			AppURL:      cfg.AppURL,
		})
	}

	var searcher application.PropertySearcher
	if es := container.GetES(); es != nil {
		searcher = search.NewPropertyIndex(es, cfg.ESPropertiesIndex, logger)
	}

	authSvc := application.NewAuthService(repos.Users, container.GetJWT(), cfg.BcryptCost, notifier, logger)
	return moduleDeps{
		Auth:     authSvc,
		Property: application.NewPropertyService(repos.Properties, repos.Users, searcher, notifier, logger),
		Saved:    application.NewSavedPropertyService(repos.Saved, repos.Properties, logger),
		AuthMW:   middleware.Auth(authSvc, cfg.AuthVerifyUserExists),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	d := buildDeps()

	r.Use(middleware.RateLimit(container.GetRedis(), apiLimitPerMinute, time.Minute, middleware.KeyByIPForAPI(), middleware.AllowPrivateIP()))

	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(cfg.AppName, cfg.StoreDriver)))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(d.Auth, logger), d.AuthMW))
	r.Add(modules.NewPropertyModule(handlers.NewPropertyHandler(d.Property, logger), d.AuthMW))
	r.Add(modules.NewSavedPropertyModule(handlers.NewSavedPropertyHandler(d.Saved, logger), d.AuthMW))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}

package app

import (
	"fmt"
	"strings"

	"talent-match/internal/config"
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/delivery/http/routes"
	"talent-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the dependency container and the HTTP app on top of it.
// The returned cleanup flushes the history recorder and closes the pool.
func Bootstrap(cfg config.Config, container *Container) (*App, func() error, error) {
	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	accessLog := middleware.NewAccessLogMiddleware(container.Logger)
	errMw := middleware.NewErrorMiddleware()
	f.Use(accessLog.Middleware())
	f.Use(errMw.Middleware())

	authMw := middleware.NewAuthMiddleware(container.JWT)

	routes.Register(f, routes.Deps{
		Health:    handler.NewHealthHandler(container.DB, container.Cache, container.Hub),
		Auth:      handler.NewAuthHandler(container.AuthUC),
		Role:      handler.NewRoleHandler(container.RoleUC),
		Match:     handler.NewMatchHandler(container.MatchingUC, container.RankingUC),
		Dashboard: handler.NewDashboardHandler(container.OrganizationUC),
		UserSkill: handler.NewUserSkillHandler(container.UserSkillUC),
		WS:        ws.NewHandler(container.Hub, container.Logger),
		AuthMw:    authMw,
	})

	app := &App{Fiber: f, Container: container}
	return app, container.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}

package routes

import (
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps are the wired handlers the route table mounts. The container owns
// construction; this package only decides URL shape and which groups sit
// behind auth.
type Deps struct {
	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	Role      *handler.RoleHandler
	Match     *handler.MatchHandler
	Dashboard *handler.DashboardHandler
	UserSkill *handler.UserSkillHandler
	WS        *ws.Handler

	AuthMw *middleware.AuthMiddleware
}

func Register(app *fiber.App, d Deps) {
	if app == nil {
		return
	}

	if d.Health != nil {
		d.Health.RegisterRoutes(app)
	}
	if d.WS != nil {
		app.Get("/ws/matches", d.WS.HandleMatchesWS)
	}

	api := app.Group("/api")
	registerV1(api.Group("/v1"), d)
}

func registerV1(r fiber.Router, d Deps) {
	if d.Auth != nil {
		d.Auth.RegisterRoutes(r)
	}

	protected := r
	if d.AuthMw != nil {
		protected = r.Group("", d.AuthMw.Middleware())
	}

	if d.Role != nil {
		d.Role.RegisterRoutes(protected)
	}
	if d.Match != nil {
		d.Match.RegisterRoutes(protected)
	}
	if d.Dashboard != nil {
		d.Dashboard.RegisterRoutes(protected)
	}
	if d.UserSkill != nil {
		d.UserSkill.RegisterRoutes(protected)
	}
}

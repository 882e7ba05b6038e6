package http

import (
	"log/slog"
	"os"

	"github.com/clockwise-hq/timeclock-backend-go/internal/config"
	"github.com/clockwise-hq/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/clockwise-hq/timeclock-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	timesheetHandler TimesheetHandler,
	userHandler UserHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
				r.Get("/callback/google", authHandler.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/me", userHandler.Me)

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/status", attendanceHandler.Status)
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)
				r.Post("/break/start", attendanceHandler.StartBreak)
				r.Post("/break/end", attendanceHandler.EndBreak)
				r.Post("/unavailable/start", attendanceHandler.StartUnavailable)
				r.Post("/unavailable/end", attendanceHandler.EndUnavailable)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", leaveHandler.ListMine)
				r.Post("/", leaveHandler.Submit)
				r.Get("/summary", leaveHandler.Summary)
				r.Delete("/{id}", leaveHandler.Cancel)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/admin", func(r chi.Router) {
					r.Route("/leaves", func(r chi.Router) {
						r.Get("/", leaveHandler.ListAll)
						r.Patch("/{id}/review", leaveHandler.Review)
					})

					r.Route("/timesheets", func(r chi.Router) {
						r.Get("/", timesheetHandler.Report)
						r.Get("/summary", timesheetHandler.Summary)
					})

					r.Route("/users", func(r chi.Router) {
						r.Get("/", userHandler.List)
						r.Post("/", userHandler.Create)
						r.Get("/{id}", userHandler.Get)
						r.Put("/{id}", userHandler.Update)
						r.Delete("/{id}", userHandler.Deactivate)
					})
				})
			})
		})
	})
	return r
}

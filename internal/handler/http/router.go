package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/fieldtrack/fieldsales-backend-go/internal/handler/http/middleware"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtSvc jwt.Service,
	authHandler AuthHandler,
	accountHandler AccountHandler,
	activityHandler ActivityHandler,
	statsHandler StatsHandler,
	reviewHandler ReviewHandler,
	targetHandler TargetHandler,
	teamHandler TeamHandler,
	notificationHandler NotificationHandler,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "fieldsales-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtSvc.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtSvc.JWTAuth()))

			r.Get("/stats/me", statsHandler.GetMyStats)

			r.Route("/accounts", func(r chi.Router) {
				r.Get("/", accountHandler.List)
				r.Post("/", accountHandler.Create)
				r.Route("/{accountID}", func(r chi.Router) {
					r.Get("/", accountHandler.GetByID)
					r.Put("/", accountHandler.Update)
					r.Delete("/", accountHandler.Delete)
				})
			})

			r.Route("/visits", func(r chi.Router) {
				r.Get("/", activityHandler.ListVisits)
				r.Post("/", activityHandler.LogVisit)
			})

			r.Route("/sheet-sales", func(r chi.Router) {
				r.Get("/", activityHandler.ListSheetSales)
				r.Post("/", activityHandler.SubmitSheetSale)
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Get("/", activityHandler.ListExpenses)
				r.Post("/", activityHandler.SubmitExpense)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", activityHandler.CheckIn)
				r.Post("/check-out", activityHandler.CheckOut)
			})

			r.Get("/targets/me/progress", targetHandler.GetMyProgress)

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Post("/{notificationID}/read", notificationHandler.MarkRead)
			})

			// Manager only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManager)

				r.Get("/stats/users/{userID}", statsHandler.GetUserStats)
				r.Get("/stats/team", statsHandler.GetTeamStats)
				r.Get("/stats/heatmap", statsHandler.GetHeatmap)

				r.Route("/targets/{userID}", func(r chi.Router) {
					r.Get("/", targetHandler.Get)
					r.Put("/", targetHandler.Upsert)
					r.Get("/progress", targetHandler.GetProgress)
				})

				r.Route("/review", func(r chi.Router) {
					r.Get("/pending", reviewHandler.GetPending)
					r.Post("/items/{itemID}/approve", reviewHandler.Approve)
					r.Post("/items/{itemID}/reject", reviewHandler.Reject)
				})

				r.Route("/team/roster", func(r chi.Router) {
					r.Get("/", teamHandler.GetRoster)
					r.Post("/refresh", teamHandler.RefreshRoster)
				})
			})
		})
	})
	return r
}

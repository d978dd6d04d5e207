package routes

import (
	"net/http"

	_ "github.com/Dosada05/league-simulator/docs"
	"github.com/Dosada05/league-simulator/handlers"
	"github.com/Dosada05/league-simulator/middleware"
	"github.com/Dosada05/league-simulator/models"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	League     *handlers.LeagueHandler
	Simulation *handlers.SimulationHandler
	WebSocket  *handlers.WebSocketHandler
}

func SetupRoutes(router chi.Router, allowedOrigins []string, tokens middleware.TokenParser, h Handlers) {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	router.Get("/ws/league", h.WebSocket.ServeWs)

	router.Post("/auth/token", h.Auth.Login)

	router.Route("/leagues", func(r chi.Router) {
		r.Get("/", h.League.ListLeagues)
		r.Get("/{region}/teams/{teamID}", h.League.GetTeam)
	})

	router.Route("/simulations", func(r chi.Router) {
		r.Get("/", h.Simulation.ListRuns)
		r.Get("/{runID}", h.Simulation.GetRun)
		r.Get("/{runID}/standings", h.Simulation.GetRunStandings)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(tokens))
			r.Use(middleware.Authorize(string(models.RoleAdmin)))

			r.Post("/series", h.Simulation.PlaySeries)
			r.Post("/years", h.Simulation.RunYear)
		})
	})
}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/TereBts/studystar/internal/service"
)

type Server struct {
	mx                  *chi.Mux
	userService         service.UserServiceI
	goalsService        service.GoalsServiceI
	sessionsService     service.SessionsServiceI
	statsService        service.StatsServiceI
	freezeService       service.FreezeServiceI
	achievementsService service.AchievementsServiceI
	jwtService          JWTServiceI
}

type ServicesList struct {
	UserService         service.UserServiceI
	GoalsService        service.GoalsServiceI
	SessionsService     service.SessionsServiceI
	StatsService        service.StatsServiceI
	FreezeService       service.FreezeServiceI
	AchievementsService service.AchievementsServiceI
	JwtService          JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:                  chi.NewMux(),
		userService:         servicesOptions.UserService,
		goalsService:        servicesOptions.GoalsService,
		sessionsService:     servicesOptions.SessionsService,
		statsService:        servicesOptions.StatsService,
		freezeService:       servicesOptions.FreezeService,
		achievementsService: servicesOptions.AchievementsService,
		jwtService:          servicesOptions.JwtService,
	}
}

func (s *Server) Run(address string) error {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Post("/sessions", s.LogSession)
			r.Get("/stats", s.GetStats)
			r.Post("/freeze", s.FreezeNow)
			r.Get("/goals", s.GetGoals)
			r.Get("/goals/{id}/progress", s.GetGoalProgress)
		})
	})
	return http.ListenAndServe(address, s.mx)
}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/momentum/internal/service"
)

type Server struct {
	mx             *chi.Mux
	contentService service.ContentServiceI
	scoreService   service.ScoreServiceI
	jwtService     JWTServiceI
}

type ServicesList struct {
	ContentService service.ContentServiceI
	ScoreService   service.ScoreServiceI
	JwtService     JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:             chi.NewMux(),
		contentService: servicesOptions.ContentService,
		scoreService:   servicesOptions.ScoreService,
		jwtService:     servicesOptions.JwtService,
	}
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.AuthMiddleware)
		r.Use(s.LoggerExtensionMiddleware)
		r.Post("/habits/daily", s.SaveDailyHabits)
		r.Post("/habits/{name}/complete", s.CompleteHabit)
		r.Post("/habits/{name}/refresh", s.RefreshCoreHabit)
		r.Post("/actions/{name}", s.RecordAction)
		r.Post("/days", s.SubmitContent)
		r.Get("/days", s.GetRecentDays)
		r.Get("/days/{bucket}", s.GetDay)
		r.Delete("/days/{bucket}", s.DeleteDay)
		r.Get("/score/total", s.GetCumulativeTotal)
		r.Get("/score/level", s.GetLevel)
		r.Get("/score/{bucket}", s.GetPointsBreakdown)
		r.Get("/score/{bucket}/core", s.GetCoreHabitStatus)
	})
}

func (s *Server) Run(addr string) error {
	s.routes()
	return http.ListenAndServe(addr, s.mx)
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/watchearn/watchearn/docs"
	authhandlers "github.com/watchearn/watchearn/internal/handlers/auth"
	deposithandlers "github.com/watchearn/watchearn/internal/handlers/deposits"
	filehandlers "github.com/watchearn/watchearn/internal/handlers/files"
	planhandlers "github.com/watchearn/watchearn/internal/handlers/plans"
	withdrawalhandlers "github.com/watchearn/watchearn/internal/handlers/withdrawals"
	"github.com/watchearn/watchearn/internal/service"
	"github.com/watchearn/watchearn/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
}

type DepositHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type PlanHandler interface {
	CompleteRound(w http.ResponseWriter, r *http.Request)
	AllProgress(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type FileHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	Serve(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	DepositHandler    DepositHandler
	PlanHandler       PlanHandler
	WithdrawalHandler WithdrawalHandler
	FileHandler       FileHandler

	sessions auth.SessionChecker
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		DepositHandler:    deposithandlers.New(s.DepositService),
		PlanHandler:       planhandlers.New(s.PlanService),
		WithdrawalHandler: withdrawalhandlers.New(s.WithdrawalService),
		FileHandler:       filehandlers.New(s.FileService),
		sessions:          s.AuthService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})
		r.Get("/files/{id}", h.FileHandler.Serve)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.sessions))
			r.Get("/auth/profile", h.AuthHandler.Profile)
			r.Route("/deposits", func(r chi.Router) {
				r.Post("/", h.DepositHandler.Submit)
				r.Get("/history", h.DepositHandler.History)
			})
			r.Route("/plans", func(r chi.Router) {
				r.Post("/complete-round", h.PlanHandler.CompleteRound)
				r.Get("/progress", h.PlanHandler.AllProgress)
			})
			r.Route("/withdrawals", func(r chi.Router) {
				r.Post("/", h.WithdrawalHandler.Submit)
				r.Get("/history", h.WithdrawalHandler.History)
			})
			r.Post("/uploads", h.FileHandler.Upload)
		})
	})

	return r
}

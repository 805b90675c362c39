package handlers

import (
	"net/http"

	_ "github.com/agrofount/agrofount-credit/docs"
	authhandlers "github.com/agrofount/agrofount-credit/internal/handlers/auth"
	credithandlers "github.com/agrofount/agrofount-credit/internal/handlers/credit"
	wallethandlers "github.com/agrofount/agrofount-credit/internal/handlers/wallet"
	"github.com/agrofount/agrofount-credit/internal/service"
	"github.com/agrofount/agrofount-credit/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	TopUp(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	Freeze(w http.ResponseWriter, r *http.Request)
}

type CreditHandler interface {
	RequestCredit(w http.ResponseWriter, r *http.Request)
	DecideCredit(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	GetAllRequests(w http.ResponseWriter, r *http.Request)
	GetDisbursements(w http.ResponseWriter, r *http.Request)
	CheckEligibility(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	WalletHandler WalletHandler
	CreditHandler CreditHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		WalletHandler: wallethandlers.New(s.WalletService),
		CreditHandler: credithandlers.New(s.FacilityService, s.EligibilityService),
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
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetWallet)
				r.Post("/topup", h.WalletHandler.TopUp)
				r.Get("/transactions", h.WalletHandler.GetTransactions)
			})
			r.Route("/credit", func(r chi.Router) {
				r.Post("/request", h.CreditHandler.RequestCredit)
				r.Get("/requests", h.CreditHandler.GetMyRequests)
				r.Get("/requests/{id}/disbursements", h.CreditHandler.GetDisbursements)
				r.Get("/eligibility", h.CreditHandler.CheckEligibility)
			})
		})
	})
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AuthMiddleware, auth.AdminMiddleware)
		r.Post("/credit/decide", h.CreditHandler.DecideCredit)
		r.Get("/credit/requests", h.CreditHandler.GetAllRequests)
		r.Post("/wallet/freeze", h.WalletHandler.Freeze)
	})

	return r
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/salonhq/loyalty/docs"
	cancellationhandlers "github.com/salonhq/loyalty/internal/handlers/cancellations"
	ledgerhandlers "github.com/salonhq/loyalty/internal/handlers/ledger"
	referralhandlers "github.com/salonhq/loyalty/internal/handlers/referrals"
	rewardhandlers "github.com/salonhq/loyalty/internal/handlers/rewards"
	"github.com/salonhq/loyalty/internal/service"
	"github.com/salonhq/loyalty/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=handlers_mock.go -package=handlers

type LedgerHandler interface {
	CreditAppointment(w http.ResponseWriter, r *http.Request)
	CreditPurchase(w http.ResponseWriter, r *http.Request)
	CheckMilestone(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type ReferralHandler interface {
	ProcessReferral(w http.ResponseWriter, r *http.Request)
	ProcessFirstVisitBonus(w http.ResponseWriter, r *http.Request)
}

type RewardHandler interface {
	Redeem(w http.ResponseWriter, r *http.Request)
	ApplyReward(w http.ResponseWriter, r *http.Request)
	GetRewards(w http.ResponseWriter, r *http.Request)
}

type CancellationHandler interface {
	ProcessCancellation(w http.ResponseWriter, r *http.Request)
	IsBlocked(w http.ResponseWriter, r *http.Request)
	LiftBlock(w http.ResponseWriter, r *http.Request)
	ApplyVoucher(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	LedgerHandler       LedgerHandler
	ReferralHandler     ReferralHandler
	RewardHandler       RewardHandler
	CancellationHandler CancellationHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		LedgerHandler:       ledgerhandlers.New(s.LedgerService),
		ReferralHandler:     referralhandlers.New(s.ReferralService),
		RewardHandler:       rewardhandlers.New(s.RedemptionService),
		CancellationHandler: cancellationhandlers.New(s.CancellationService),
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
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/loyalty", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Route("/credits", func(r chi.Router) {
			r.Post("/appointment", h.LedgerHandler.CreditAppointment)
			r.Post("/purchase", h.LedgerHandler.CreditPurchase)
		})
		r.Post("/milestones/check", h.LedgerHandler.CheckMilestone)

		r.Route("/referrals", func(r chi.Router) {
			r.Post("/", h.ReferralHandler.ProcessReferral)
			r.Post("/first-visit", h.ReferralHandler.ProcessFirstVisitBonus)
		})

		r.Post("/redemptions", h.RewardHandler.Redeem)
		r.Post("/rewards/apply", h.RewardHandler.ApplyReward)

		r.Post("/cancellations", h.CancellationHandler.ProcessCancellation)
		r.Post("/vouchers/apply", h.CancellationHandler.ApplyVoucher)
		r.Post("/blocks/{blockID}/lift", h.CancellationHandler.LiftBlock)

		r.Route("/customers/{customerID}", func(r chi.Router) {
			r.Get("/balance", h.LedgerHandler.GetBalance)
			r.Get("/transactions", h.LedgerHandler.GetTransactions)
			r.Get("/rewards", h.RewardHandler.GetRewards)
			r.Get("/blocked", h.CancellationHandler.IsBlocked)
		})
	})

	return r
}

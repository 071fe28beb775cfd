package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/handlers"
	custommiddleware "github.com/dkurnia/Cooperative-Estate-Backend/internal/api/middleware"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/auth"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/config"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router. Read endpoints are open;
// every mutating endpoint requires an operator token so audit events carry
// the actor identity.
func NewRouter(
	systemService *service.SystemService,
	memberService *service.MemberService,
	transactionService *service.TransactionService,
	policyService *service.PolicyService,
	distributionService *service.DistributionService,
	feeService *service.FeeService,
	settingService service.SettingProvider,
	jwtManager *auth.JWTManager,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(custommiddleware.Metrics)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	requireAuth := custommiddleware.RequireAuth(jwtManager)

	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/member", func(r chi.Router) {
			memberHandler := handlers.NewMemberHandler(memberService)
			r.Get("/", memberHandler.Members)
			r.With(requireAuth).Post("/", memberHandler.CreateMember)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", memberHandler.GetMember)
				r.Get("/savings", memberHandler.MemberSavings)
			})
		})

		r.Route("/transaction", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(transactionService)
			r.Get("/", transactionHandler.Transactions)
			r.With(requireAuth).Post("/", transactionHandler.CreateTransaction)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", transactionHandler.GetTransaction)
			})
		})

		r.Route("/policy", func(r chi.Router) {
			policyHandler := handlers.NewPolicyHandler(policyService)
			r.Get("/", policyHandler.Policies)
			r.With(requireAuth).Post("/", policyHandler.CreatePolicy)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", policyHandler.GetPolicy)
				r.With(requireAuth).Post("/activate", policyHandler.ActivatePolicy)
			})
		})

		r.Route("/distribution", func(r chi.Router) {
			distributionHandler := handlers.NewDistributionHandler(distributionService)
			r.Get("/", distributionHandler.Distributions)
			r.With(requireAuth).Post("/", distributionHandler.CreateDistribution)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", distributionHandler.GetDistribution)
				r.Get("/allocations", distributionHandler.Allocations)
				r.Get("/eligibility", distributionHandler.Eligibility)
				r.Get("/summary", distributionHandler.Summary)
				r.With(requireAuth).Post("/calculate", distributionHandler.CalculateAllocations)
				r.With(requireAuth).Post("/approve", distributionHandler.ApproveDistribution)
				r.With(requireAuth).Post("/payout", distributionHandler.Payout)
			})
		})

		r.Route("/fee", func(r chi.Router) {
			feeHandler := handlers.NewFeeHandler(feeService)
			r.Route("/schedule", func(r chi.Router) {
				r.Get("/", feeHandler.Schedules)
				r.With(requireAuth).Post("/", feeHandler.CreateSchedule)
			})
			r.Route("/invoice", func(r chi.Router) {
				r.Get("/", feeHandler.Invoices)
				r.With(requireAuth).Post("/generate", feeHandler.GenerateInvoices)
				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.With(requireAuth).Post("/pay", feeHandler.PayInvoice)
				})
			})
		})

		r.Route("/setting", func(r chi.Router) {
			settingHandler := handlers.NewSettingHandler(settingService)
			r.Use(requireAuth)
			r.Post("/cache/invalidate", settingHandler.InvalidateCache)
			r.Get("/{key}", settingHandler.GetSetting)
			r.Put("/{key}", settingHandler.UpdateSetting)
		})
	})

	return r
}

package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/hmdvk2-glitch/psi-federal-sub000/api/handler"
)

type Handlers struct {
	Auth          *apiHandler.AuthHandler
	Admin         *apiHandler.AdminHandler
	Customer      *apiHandler.CustomerHandler
	Transaction   *apiHandler.TransactionHandler
	TransferCodes *apiHandler.TransferCodesHandler
	Marketing     *apiHandler.MarketingHandler
	Health        *apiHandler.HealthHandler
}

type Middleware func(fasthttp.RequestHandler) fasthttp.RequestHandler

func New(handlers Handlers, auth, admin Middleware) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Auth routes
	r.POST("/api/v1/auth/admin/login", handlers.Auth.AdminLogin)
	r.POST("/api/v1/auth/customer/login", handlers.Auth.CustomerLogin)
	r.GET("/api/v1/auth/me", auth(handlers.Auth.Me))
	r.POST("/api/v1/auth/logout", auth(handlers.Auth.Logout))

	// Public marketing surface
	r.GET("/api/v1/offers", handlers.Marketing.ListOffers)
	r.POST("/api/v1/leads", handlers.Marketing.SubmitLead)

	// Authenticated customer-facing routes
	r.POST("/api/v1/transfer-codes/validate", auth(handlers.TransferCodes.Validate))
	r.GET("/api/v1/customers/{id}/transactions", auth(handlers.Transaction.ListForCustomer))

	// Back-office routes
	gate := func(h fasthttp.RequestHandler) fasthttp.RequestHandler {
		return auth(admin(h))
	}

	r.GET("/api/v1/admin/customers", gate(handlers.Customer.List))
	r.POST("/api/v1/admin/customers", gate(handlers.Customer.Create))
	r.GET("/api/v1/admin/customers/{id}", gate(handlers.Customer.Get))
	r.PUT("/api/v1/admin/customers/{id}", gate(handlers.Customer.Update))
	r.PATCH("/api/v1/admin/customers/{id}/password", gate(handlers.Customer.UpdatePassword))
	r.PATCH("/api/v1/admin/customers/{id}/status", gate(handlers.Customer.UpdateStatus))

	r.POST("/api/v1/admin/transactions", gate(handlers.Transaction.Create))
	r.PATCH("/api/v1/admin/transactions/{id}", gate(handlers.Transaction.Amend))

	r.GET("/api/v1/admin/transfer-codes", gate(handlers.TransferCodes.Get))
	r.PUT("/api/v1/admin/transfer-codes", gate(handlers.TransferCodes.Save))

	r.POST("/api/v1/admin/offers", gate(handlers.Marketing.CreateOffer))
	r.PUT("/api/v1/admin/offers/{id}", gate(handlers.Marketing.UpdateOffer))
	r.DELETE("/api/v1/admin/offers/{id}", gate(handlers.Marketing.DeleteOffer))

	r.GET("/api/v1/admin/leads", gate(handlers.Marketing.ListLeads))
	r.PATCH("/api/v1/admin/leads/{id}/status", gate(handlers.Marketing.UpdateLeadStatus))

	r.GET("/api/v1/admin/admins", gate(handlers.Admin.List))
	r.POST("/api/v1/admin/admins", gate(handlers.Admin.Provision))
	r.PATCH("/api/v1/admin/admins/{id}/password", gate(handlers.Admin.ResetPassword))
	r.PATCH("/api/v1/admin/admins/{id}/role", gate(handlers.Admin.ChangeRole))

	return r
}

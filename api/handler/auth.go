package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/hmdvk2-glitch/psi-federal-sub000/api/transport"
	sessionUC "github.com/hmdvk2-glitch/psi-federal-sub000/usecase/session"
)

type AuthHandler struct {
	baseHandler
	uc *sessionUC.Service
}

func NewAuthHandler(uc *sessionUC.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		baseHandler: newBaseHandler(logger),
		uc:          uc,
	}
}

// @Summary Admin login
// @Tags auth
// @Router /api/v1/auth/admin/login [post]
func (h *AuthHandler) AdminLogin(ctx *fasthttp.RequestCtx) {
	var req transport.AdminLoginRequest
	if !h.decode(ctx, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		h.respondInvalid(ctx, "email and password are required")
		return
	}

	admin, token, err := h.uc.LoginAdmin(req.Email, req.Password)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"admin": admin,
		"token": token,
	})
}

// @Summary Customer login
// @Tags auth
// @Router /api/v1/auth/customer/login [post]
func (h *AuthHandler) CustomerLogin(ctx *fasthttp.RequestCtx) {
	var req transport.CustomerLoginRequest
	if !h.decode(ctx, &req) {
		return
	}
	if req.Identifier == "" || req.Password == "" {
		h.respondInvalid(ctx, "identifier and password are required")
		return
	}

	customer, token, err := h.uc.LoginCustomer(req.Identifier, req.Password)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"customer":   customer,
		"restricted": !customer.IsActive(),
		"token":      token,
	})
}

// @Summary Current identity
// @Tags auth
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(ctx *fasthttp.RequestCtx) {
	admin, err := h.uc.CurrentAdmin()
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if admin != nil {
		h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{"role": "admin", "admin": admin})
		return
	}

	customer, err := h.uc.CurrentCustomer()
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if customer != nil {
		h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{"role": "customer", "customer": customer})
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{"role": nil})
}

// @Summary Logout
// @Tags auth
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(ctx *fasthttp.RequestCtx) {
	if err := h.uc.Logout(); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, nil)
}

package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/hmdvk2-glitch/psi-federal-sub000/api/transport"
	"github.com/hmdvk2-glitch/psi-federal-sub000/domain"
	sessionUC "github.com/hmdvk2-glitch/psi-federal-sub000/usecase/session"
)

type AdminHandler struct {
	baseHandler
	uc *sessionUC.Service
}

func NewAdminHandler(uc *sessionUC.Service, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		baseHandler: newBaseHandler(logger),
		uc:          uc,
	}
}

// @Summary List admins
// @Tags admins
// @Router /api/v1/admin/admins [get]
func (h *AdminHandler) List(ctx *fasthttp.RequestCtx) {
	admins, err := h.uc.Admins()
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, admins)
}

// @Summary Provision an admin
// @Tags admins
// @Router /api/v1/admin/admins [post]
func (h *AdminHandler) Provision(ctx *fasthttp.RequestCtx) {
	var req transport.ProvisionAdminRequest
	if !h.decode(ctx, &req) {
		return
	}

	admin, err := h.uc.ProvisionAdmin(sessionUC.ProvisionAdminInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.AdminRole(req.Role),
		Name:     req.Name,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, admin)
}

// @Summary Reset an admin password
// @Tags admins
// @Router /api/v1/admin/admins/{id}/password [patch]
func (h *AdminHandler) ResetPassword(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	var req transport.PasswordRequest
	if !h.decode(ctx, &req) {
		return
	}

	admin, err := h.uc.ResetAdminPassword(id, req.Password)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, admin)
}

// @Summary Change an admin role
// @Tags admins
// @Router /api/v1/admin/admins/{id}/role [patch]
func (h *AdminHandler) ChangeRole(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	var req transport.AdminRoleRequest
	if !h.decode(ctx, &req) {
		return
	}

	admin, err := h.uc.ChangeAdminRole(id, domain.AdminRole(req.Role))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, admin)
}

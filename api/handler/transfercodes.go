package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/hmdvk2-glitch/psi-federal-sub000/api/transport"
	"github.com/hmdvk2-glitch/psi-federal-sub000/domain"
	sessionUC "github.com/hmdvk2-glitch/psi-federal-sub000/usecase/session"
	vaultUC "github.com/hmdvk2-glitch/psi-federal-sub000/usecase/vault"
)

type TransferCodesHandler struct {
	baseHandler
	uc      *vaultUC.Service
	session *sessionUC.Service
}

func NewTransferCodesHandler(uc *vaultUC.Service, session *sessionUC.Service, logger *zap.Logger) *TransferCodesHandler {
	return &TransferCodesHandler{
		baseHandler: newBaseHandler(logger),
		uc:          uc,
		session:     session,
	}
}

// @Summary Current approval codes
// @Tags transfer-codes
// @Router /api/v1/admin/transfer-codes [get]
func (h *TransferCodesHandler) Get(ctx *fasthttp.RequestCtx) {
	codes, err := h.uc.Get()
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"codes":   codes,
		"default": codes.IsDefault(),
	})
}

// @Summary Save approval codes
// @Tags transfer-codes
// @Router /api/v1/admin/transfer-codes [put]
func (h *TransferCodesHandler) Save(ctx *fasthttp.RequestCtx) {
	var req transport.TransferCodesRequest
	if !h.decode(ctx, &req) {
		return
	}

	updatedBy := "unknown"
	if admin, err := h.session.CurrentAdmin(); err == nil && admin != nil {
		updatedBy = admin.Email
	}

	codes, err := h.uc.Save(req.COT, req.Tax, req.IRS, updatedBy)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, codes)
}

// @Summary Validate a submitted approval code
// @Tags transfer-codes
// @Router /api/v1/transfer-codes/validate [post]
func (h *TransferCodesHandler) Validate(ctx *fasthttp.RequestCtx) {
	var req transport.ValidateCodeRequest
	if !h.decode(ctx, &req) {
		return
	}
	kind := domain.CodeType(req.Type)
	if !kind.Valid() {
		h.respondInvalid(ctx, "type must be cot, tax or irs")
		return
	}

	ok, err := h.uc.Validate(kind, req.Value)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]bool{"valid": ok})
}

package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/hmdvk2-glitch/psi-federal-sub000/api/transport"
	"github.com/hmdvk2-glitch/psi-federal-sub000/domain"
	ledgerUC "github.com/hmdvk2-glitch/psi-federal-sub000/usecase/ledger"
)

type CustomerHandler struct {
	baseHandler
	uc *ledgerUC.Service
}

func NewCustomerHandler(uc *ledgerUC.Service, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		baseHandler: newBaseHandler(logger),
		uc:          uc,
	}
}

// @Summary List customers
// @Tags customers
// @Router /api/v1/admin/customers [get]
func (h *CustomerHandler) List(ctx *fasthttp.RequestCtx) {
	customers, err := h.uc.Customers()
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, customers)
}

// @Summary Create customer
// @Tags customers
// @Router /api/v1/admin/customers [post]
func (h *CustomerHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.CreateCustomerRequest
	if !h.decode(ctx, &req) {
		return
	}

	customer, err := h.uc.CreateCustomer(ledgerUC.CreateCustomerInput{
		AccountNumber: req.AccountNumber,
		FullName:      req.FullName,
		Email:         req.Email,
		Password:      req.Password,
		Balance:       req.Balance,
		Photo:         req.Photo,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, customer)
}

// @Summary Get customer by id or account number
// @Tags customers
// @Router /api/v1/admin/customers/{id} [get]
func (h *CustomerHandler) Get(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	customer, err := h.uc.CustomerByID(id)
	if err != nil && domain.IsDomainError(err, domain.ErrCodeNotFound) {
		customer, err = h.uc.CustomerByAccountNumber(id)
	}
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, customer)
}

// @Summary Update customer profile fields
// @Tags customers
// @Router /api/v1/admin/customers/{id} [put]
func (h *CustomerHandler) Update(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	var req transport.UpdateCustomerRequest
	if !h.decode(ctx, &req) {
		return
	}

	customer, err := h.uc.UpdateCustomer(id, ledgerUC.UpdateCustomerInput{
		FullName: req.FullName,
		Email:    req.Email,
		Photo:    req.Photo,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, customer)
}

// @Summary Reset customer password
// @Tags customers
// @Router /api/v1/admin/customers/{id}/password [patch]
func (h *CustomerHandler) UpdatePassword(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	var req transport.PasswordRequest
	if !h.decode(ctx, &req) {
		return
	}

	customer, err := h.uc.UpdateCustomerPassword(id, req.Password)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, customer)
}

// @Summary Set customer status
// @Tags customers
// @Router /api/v1/admin/customers/{id}/status [patch]
func (h *CustomerHandler) UpdateStatus(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	var req transport.CustomerStatusRequest
	if !h.decode(ctx, &req) {
		return
	}

	customer, err := h.uc.SetCustomerStatus(id, domain.CustomerStatus(req.Status))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, customer)
}

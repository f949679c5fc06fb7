package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/hmdvk2-glitch/psi-federal-sub000/api/transport"
	"github.com/hmdvk2-glitch/psi-federal-sub000/domain"
	ledgerUC "github.com/hmdvk2-glitch/psi-federal-sub000/usecase/ledger"
)

type TransactionHandler struct {
	baseHandler
	uc *ledgerUC.Service
}

func NewTransactionHandler(uc *ledgerUC.Service, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		baseHandler: newBaseHandler(logger),
		uc:          uc,
	}
}

// @Summary Record a transaction
// @Tags transactions
// @Router /api/v1/admin/transactions [post]
func (h *TransactionHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.CreateTransactionRequest
	if !h.decode(ctx, &req) {
		return
	}

	input := ledgerUC.CreateTransactionInput{
		CustomerID:     req.CustomerID,
		Type:           domain.TransactionType(req.Type),
		Amount:         req.Amount,
		ChargesApplied: req.ChargesApplied,
		Description:    req.Description,
		Status:         req.Status,
		TransactionID:  req.TransactionID,
		SenderName:     req.SenderName,
		SenderBank:     req.SenderBank,
		SenderAccount:  req.SenderAccount,
	}
	if req.Date != "" {
		parsed, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			h.respondInvalid(ctx, "date must be RFC 3339")
			return
		}
		input.Date = parsed
	}

	tx, err := h.uc.CreateTransaction(input)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, tx)
}

// @Summary Amend clerical transaction metadata
// @Tags transactions
// @Router /api/v1/admin/transactions/{id} [patch]
func (h *TransactionHandler) Amend(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	var req transport.AmendTransactionRequest
	if !h.decode(ctx, &req) {
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			h.respondInvalid(ctx, "date must be RFC 3339")
			return
		}
		date = parsed
	}

	tx, err := h.uc.AmendTransaction(id, req.TransactionID, date)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, tx)
}

// @Summary List a customer's transactions
// @Tags transactions
// @Router /api/v1/customers/{id}/transactions [get]
func (h *TransactionHandler) ListForCustomer(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	// The customer must exist; an empty ledger is a valid answer, a bad id
	// is not.
	if _, err := h.uc.CustomerByID(id); err != nil {
		h.respondError(ctx, err)
		return
	}

	txs, err := h.uc.TransactionsForCustomer(id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, txs)
}

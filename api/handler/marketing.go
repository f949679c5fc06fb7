package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/hmdvk2-glitch/psi-federal-sub000/api/transport"
	"github.com/hmdvk2-glitch/psi-federal-sub000/domain"
	marketingUC "github.com/hmdvk2-glitch/psi-federal-sub000/usecase/marketing"
)

type MarketingHandler struct {
	baseHandler
	uc *marketingUC.Service
}

func NewMarketingHandler(uc *marketingUC.Service, logger *zap.Logger) *MarketingHandler {
	return &MarketingHandler{
		baseHandler: newBaseHandler(logger),
		uc:          uc,
	}
}

// @Summary List offers, optionally for one page channel
// @Tags marketing
// @Router /api/v1/offers [get]
func (h *MarketingHandler) ListOffers(ctx *fasthttp.RequestCtx) {
	channel := string(ctx.QueryArgs().Peek("channel"))
	offers, err := h.uc.Offers(channel)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, offers)
}

// @Summary Create offer
// @Tags marketing
// @Router /api/v1/admin/offers [post]
func (h *MarketingHandler) CreateOffer(ctx *fasthttp.RequestCtx) {
	input, ok := h.parseOffer(ctx)
	if !ok {
		return
	}
	offer, err := h.uc.CreateOffer(input)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, offer)
}

// @Summary Update offer
// @Tags marketing
// @Router /api/v1/admin/offers/{id} [put]
func (h *MarketingHandler) UpdateOffer(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	input, ok := h.parseOffer(ctx)
	if !ok {
		return
	}
	offer, err := h.uc.UpdateOffer(id, input)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, offer)
}

// @Summary Retract offer
// @Tags marketing
// @Router /api/v1/admin/offers/{id} [delete]
func (h *MarketingHandler) DeleteOffer(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	if err := h.uc.DeleteOffer(id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Submit a lead
// @Tags marketing
// @Router /api/v1/leads [post]
func (h *MarketingHandler) SubmitLead(ctx *fasthttp.RequestCtx) {
	var req transport.LeadRequest
	if !h.decode(ctx, &req) {
		return
	}

	lead, err := h.uc.SubmitLead(marketingUC.SubmitLeadInput{
		OfferID: req.OfferID,
		Type:    req.Type,
		Data:    req.Data,
		Metadata: domain.LeadMetadata{
			SourcePage: req.SourcePage,
			Client:     req.Client,
		},
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, lead)
}

// @Summary List leads
// @Tags marketing
// @Router /api/v1/admin/leads [get]
func (h *MarketingHandler) ListLeads(ctx *fasthttp.RequestCtx) {
	leads, err := h.uc.Leads()
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, leads)
}

// @Summary Advance lead status
// @Tags marketing
// @Router /api/v1/admin/leads/{id}/status [patch]
func (h *MarketingHandler) UpdateLeadStatus(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	var req transport.LeadStatusRequest
	if !h.decode(ctx, &req) {
		return
	}

	lead, err := h.uc.UpdateLeadStatus(id, domain.LeadStatus(req.Status))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, lead)
}

func (h *MarketingHandler) parseOffer(ctx *fasthttp.RequestCtx) (marketingUC.OfferInput, bool) {
	var req transport.OfferRequest
	if !h.decode(ctx, &req) {
		return marketingUC.OfferInput{}, false
	}

	input := marketingUC.OfferInput{
		Type:         req.Type,
		Title:        req.Title,
		Description:  req.Description,
		Value:        req.Value,
		Eligibility:  req.Eligibility,
		CTALabel:     req.CTALabel,
		CTATarget:    req.CTATarget,
		Status:       domain.OfferStatus(req.Status),
		PageChannels: req.PageChannels,
		Banner:       req.Banner,
		Icon:         req.Icon,
	}
	if req.StartsAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.StartsAt)
		if err != nil {
			h.respondInvalid(ctx, "startsAt must be RFC 3339")
			return input, false
		}
		input.StartsAt = parsed
	}
	if req.EndsAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.EndsAt)
		if err != nil {
			h.respondInvalid(ctx, "endsAt must be RFC 3339")
			return input, false
		}
		input.EndsAt = &parsed
	}
	return input, true
}

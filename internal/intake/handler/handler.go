// Package handler exposes the public intake endpoints.
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tradedesk_backend/internal/catalog"
	"tradedesk_backend/internal/intake/service"
	"tradedesk_backend/internal/intake/transport"
	"tradedesk_backend/platform/httpkit"
	"tradedesk_backend/platform/logger"
	"tradedesk_backend/platform/phone"
	"tradedesk_backend/platform/sanitize"
	"tradedesk_backend/platform/validator"
)

const (
	msgInvalidPayload = "Invalid submission"
	msgRateLimited    = "Too many requests from your network, please retry in a minute"
	msgReceived       = "Thank you! Your catalog is on its way to your inbox."
	msgRecorded       = "Thank you! Your purchase has been recorded."
)

// Limiter is the rate-limit capability owned by the intake handler.
type Limiter interface {
	Allow(key string) bool
}

// Handler validates inbound submissions and hands them to the pipeline.
type Handler struct {
	pipeline *service.Service
	val      *validator.Validator
	limiter  Limiter
	log      *logger.Logger
}

// New creates the intake handler.
func New(pipeline *service.Service, val *validator.Validator, limiter Limiter, log *logger.Logger) *Handler {
	return &Handler{pipeline: pipeline, val: val, limiter: limiter, log: log}
}

// RegisterRoutes registers the public intake routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/quote", h.SubmitQuote)
	rg.POST("/purchase", h.SubmitPurchase)
	rg.GET("/categories", h.Categories)
}

// Categories returns the product category names the intake form offers.
// Read-only static data, so it sits outside the intake submission limit.
func (h *Handler) Categories(c *gin.Context) {
	httpkit.OK(c, transport.CategoriesResponse{Categories: catalog.Categories()})
}

// SubmitQuote accepts a sales-quote request.
func (h *Handler) SubmitQuote(c *gin.Context) {
	if !h.allow(c) {
		return
	}

	var req transport.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidPayload, nil)
		return
	}

	// A populated honeypot means a bot: answer success with zero side
	// effects so the detection is never revealed.
	if req.Website != "" {
		h.log.HoneypotTriggered(c.ClientIP(), c.Request.URL.Path)
		httpkit.OK(c, transport.SubmitResponse{Status: "ok", Message: msgReceived})
		return
	}

	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidPayload, validator.FieldErrors(err))
		return
	}

	sub := transport.Submission{
		Kind:            transport.KindQuote,
		Name:            sanitize.Text(req.Name),
		Phone:           phone.NormalizeE164(req.Phone),
		Email:           req.Email,
		CustomerType:    req.CustomerType,
		ProductCategory: sanitize.Text(req.ProductCategory),
		ProductRef:      req.ProductRef,
		Items:           sanitize.Text(req.Items),
		Quantity:        req.Quantity,
		Delivery:        req.Delivery,
		Notes:           sanitize.Text(req.Notes),
		ReceivedAt:      time.Now(),
	}

	if err := h.pipeline.Process(c.Request.Context(), sub); err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, transport.SubmitResponse{Status: "ok", Message: msgReceived})
}

// SubmitPurchase accepts a post-purchase record.
func (h *Handler) SubmitPurchase(c *gin.Context) {
	if !h.allow(c) {
		return
	}

	var req transport.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidPayload, nil)
		return
	}

	if req.Website != "" {
		h.log.HoneypotTriggered(c.ClientIP(), c.Request.URL.Path)
		httpkit.OK(c, transport.SubmitResponse{Status: "ok", Message: msgRecorded})
		return
	}

	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidPayload, validator.FieldErrors(err))
		return
	}

	sub := transport.Submission{
		Kind:             transport.KindPurchase,
		Name:             sanitize.Text(req.Name),
		Phone:            phone.NormalizeE164(req.Phone),
		Email:            req.Email,
		CustomerType:     req.CustomerType,
		ProductCategory:  sanitize.Text(req.ProductCategory),
		ProductRef:       req.ProductRef,
		Items:            sanitize.Text(req.Items),
		Quantity:         req.Quantity,
		Address:          sanitize.Text(req.Address),
		InvoiceNumber:    sanitize.Text(req.InvoiceNumber),
		PurchaseDate:     req.PurchaseDate,
		PreferredContact: req.PreferredContact,
		Notes:            sanitize.Text(req.Notes),
		ReceivedAt:       time.Now(),
	}

	if err := h.pipeline.Process(c.Request.Context(), sub); err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, transport.SubmitResponse{Status: "ok", Message: msgRecorded})
}

func (h *Handler) allow(c *gin.Context) bool {
	ip := c.ClientIP()
	if h.limiter.Allow(ip) {
		return true
	}
	h.log.RateLimitExceeded(ip, c.Request.URL.Path)
	httpkit.Error(c, http.StatusTooManyRequests, msgRateLimited, nil)
	return false
}

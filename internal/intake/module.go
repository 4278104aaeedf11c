package intake

import (
	"time"

	"tradedesk_backend/internal/intake/handler"
	"tradedesk_backend/internal/intake/service"
	"tradedesk_backend/platform/logger"
	"tradedesk_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Intake submissions are capped per source IP: 5 per fixed 60s window.
const (
	intakeWindow = 60 * time.Second
	intakeLimit  = 5
)

// Module wires the intake bounded context.
type Module struct {
	handler *handler.Handler
}

// NewModule creates the intake module around the pipeline collaborators.
func NewModule(enricher service.Enricher, builder service.DocumentBuilder, mail service.Mailer, ledger service.LedgerAppender, val *validator.Validator, log *logger.Logger) *Module {
	pipeline := service.New(enricher, builder, mail, ledger, log)
	limiter := NewFixedWindowLimiter(intakeLimit, intakeWindow)
	return &Module{handler: handler.New(pipeline, val, limiter, log)}
}

// RegisterRoutes registers the module's public routes.
func (m *Module) RegisterRoutes(rg *gin.RouterGroup) {
	m.handler.RegisterRoutes(rg)
}

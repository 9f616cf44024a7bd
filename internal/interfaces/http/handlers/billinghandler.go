package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beaconhq/beacon/internal/application/billing/usecases"
	"github.com/beaconhq/beacon/internal/interfaces/http/middleware"
	"github.com/beaconhq/beacon/internal/shared/logger"
	"github.com/beaconhq/beacon/internal/shared/utils"
)

// maxWebhookBytes caps the accepted webhook payload size.
const maxWebhookBytes = 1 << 20

type BillingHandler struct {
	createCheckoutUC *usecases.CreateCheckoutUseCase
	handleWebhookUC  *usecases.HandleWebhookUseCase
	logger           logger.Interface
}

func NewBillingHandler(
	createCheckoutUC *usecases.CreateCheckoutUseCase,
	handleWebhookUC *usecases.HandleWebhookUseCase,
	logger logger.Interface,
) *BillingHandler {
	return &BillingHandler{
		createCheckoutUC: createCheckoutUC,
		handleWebhookUC:  handleWebhookUC,
		logger:           logger,
	}
}

type CreateCheckoutRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Plan        string `json:"plan" binding:"required,oneof=starter growth premium"`
}

func (h *BillingHandler) CreateCheckout(c *gin.Context) {
	var req CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create checkout", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createCheckoutUC.Execute(c.Request.Context(), usecases.CreateCheckoutCommand{
		OrganizationID: middleware.OrganizationID(c),
		CompanyName:    req.CompanyName,
		Plan:           req.Plan,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"checkout_url": result.CheckoutURL})
}

// HandleWebhook receives payment-processor events. The raw body is needed
// for signature verification, so it is read before any parsing.
func (h *BillingHandler) HandleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBytes))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read webhook payload")
		return
	}

	result, err := h.handleWebhookUC.Execute(c.Request.Context(), usecases.HandleWebhookCommand{
		Payload:         payload,
		SignatureHeader: c.GetHeader("Stripe-Signature"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"event_type": result.EventType,
		"handled":    result.Handled,
		"duplicate":  result.Duplicate,
	})
}

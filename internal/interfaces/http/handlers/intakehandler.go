package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beaconhq/beacon/internal/application/intake/usecases"
	"github.com/beaconhq/beacon/internal/interfaces/http/middleware"
	"github.com/beaconhq/beacon/internal/shared/logger"
	"github.com/beaconhq/beacon/internal/shared/utils"
)

// maxIntakeBytes caps the accepted capture document size.
const maxIntakeBytes = 4 << 20

type IntakeHandler struct {
	saveIntakeUC   *usecases.SaveIntakeUseCase
	ingestIntakeUC *usecases.IngestIntakeUseCase
	logger         logger.Interface
}

func NewIntakeHandler(
	saveIntakeUC *usecases.SaveIntakeUseCase,
	ingestIntakeUC *usecases.IngestIntakeUseCase,
	logger logger.Interface,
) *IntakeHandler {
	return &IntakeHandler{
		saveIntakeUC:   saveIntakeUC,
		ingestIntakeUC: ingestIntakeUC,
		logger:         logger,
	}
}

// SaveIntake stores the raw capture document verbatim. The body is the
// document itself, not a wrapper object.
func (h *IntakeHandler) SaveIntake(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxIntakeBytes+1))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read request body")
		return
	}
	if len(body) > maxIntakeBytes {
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "intake document too large")
		return
	}
	if !json.Valid(body) {
		utils.ErrorResponse(c, http.StatusBadRequest, "intake document must be valid JSON")
		return
	}

	result, err := h.saveIntakeUC.Execute(c.Request.Context(), usecases.SaveIntakeCommand{
		OrganizationID: middleware.OrganizationID(c),
		CompanyID:      c.Param("id"),
		RomaData:       body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	status := http.StatusOK
	message := "intake updated"
	if result.Created {
		status = http.StatusCreated
		message = "intake created"
	}
	utils.SuccessResponse(c, status, message, gin.H{
		"company_id": result.Intake.CompanyID(),
		"updated_at": result.Intake.UpdatedAt(),
	})
}

// IngestIntake reconciles the stored document into the company profile,
// reviews, and media gallery.
func (h *IntakeHandler) IngestIntake(c *gin.Context) {
	result, err := h.ingestIntakeUC.Execute(c.Request.Context(), usecases.IngestIntakeCommand{
		OrganizationID: middleware.OrganizationID(c),
		CompanyID:      c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "intake ingested", gin.H{
		"fields_updated":       result.FieldsUpdated,
		"reviews_materialized": result.ReviewsMaterialized,
		"media_materialized":   result.MediaMaterialized,
		"degraded_assets":      result.DegradedAssets,
	})
}

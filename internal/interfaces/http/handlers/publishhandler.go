package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beaconhq/beacon/internal/application/publish/usecases"
	"github.com/beaconhq/beacon/internal/interfaces/http/middleware"
	"github.com/beaconhq/beacon/internal/shared/logger"
	"github.com/beaconhq/beacon/internal/shared/utils"
)

type PublishHandler struct {
	publishCompanyUC *usecases.PublishCompanyUseCase
	syncOrgUC        *usecases.SyncOrganizationUseCase
	logger           logger.Interface
}

func NewPublishHandler(
	publishCompanyUC *usecases.PublishCompanyUseCase,
	syncOrgUC *usecases.SyncOrganizationUseCase,
	logger logger.Interface,
) *PublishHandler {
	return &PublishHandler{
		publishCompanyUC: publishCompanyUC,
		syncOrgUC:        syncOrgUC,
		logger:           logger,
	}
}

func (h *PublishHandler) PublishCompany(c *gin.Context) {
	result, err := h.publishCompanyUC.Execute(c.Request.Context(), usecases.PublishCompanyCommand{
		OrganizationID: middleware.OrganizationID(c),
		CompanyID:      c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "company published", gin.H{
		"status":    result.Status,
		"remote_id": result.RemoteID,
		"slug":      result.Slug,
	})
}

func (h *PublishHandler) SyncOrganization(c *gin.Context) {
	result, err := h.syncOrgUC.Execute(c.Request.Context(), usecases.SyncOrganizationCommand{
		OrganizationID: middleware.OrganizationID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "organization synced", result)
}

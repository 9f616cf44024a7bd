package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beaconhq/beacon/internal/application/company/usecases"
	"github.com/beaconhq/beacon/internal/domain/company"
	"github.com/beaconhq/beacon/internal/interfaces/http/middleware"
	"github.com/beaconhq/beacon/internal/shared/logger"
	"github.com/beaconhq/beacon/internal/shared/utils"
)

type CompanyHandler struct {
	createCompanyUC *usecases.CreateCompanyUseCase
	getCompanyUC    *usecases.GetCompanyUseCase
	listCompaniesUC *usecases.ListCompaniesUseCase
	updateCompanyUC *usecases.UpdateCompanyUseCase
	logger          logger.Interface
}

func NewCompanyHandler(
	createCompanyUC *usecases.CreateCompanyUseCase,
	getCompanyUC *usecases.GetCompanyUseCase,
	listCompaniesUC *usecases.ListCompaniesUseCase,
	updateCompanyUC *usecases.UpdateCompanyUseCase,
	logger logger.Interface,
) *CompanyHandler {
	return &CompanyHandler{
		createCompanyUC: createCompanyUC,
		getCompanyUC:    getCompanyUC,
		listCompaniesUC: listCompaniesUC,
		updateCompanyUC: updateCompanyUC,
		logger:          logger,
	}
}

type CreateCompanyRequest struct {
	Name    string  `json:"name" binding:"required"`
	Plan    string  `json:"plan" binding:"required,oneof=starter growth premium"`
	Website *string `json:"website"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}

type UpdateCompanyRequest struct {
	Name        *string           `json:"name"`
	Website     *string           `json:"website"`
	Phone       *string           `json:"phone"`
	Email       *string           `json:"email"`
	Address     *string           `json:"address"`
	City        *string           `json:"city"`
	State       *string           `json:"state"`
	Zip         *string           `json:"zip"`
	Tagline     *string           `json:"tagline"`
	About       *string           `json:"about"`
	PricingInfo *string           `json:"pricing_info"`
	AISummary   *string           `json:"ai_summary"`
	Badges      []string          `json:"badges"`
	SocialLinks map[string]string `json:"social_links"`
	Status      *string           `json:"status" binding:"omitempty,oneof=PENDING NEW IN_PROGRESS ONBOARDED"`
}

func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create company", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createCompanyUC.Execute(c.Request.Context(), usecases.CreateCompanyCommand{
		OrganizationID: middleware.OrganizationID(c),
		Name:           req.Name,
		Plan:           req.Plan,
		Website:        req.Website,
		Phone:          req.Phone,
		Email:          req.Email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, NewCompanyDTO(result.Company), "company created")
}

func (h *CompanyHandler) GetCompany(c *gin.Context) {
	result, err := h.getCompanyUC.Execute(c.Request.Context(), usecases.GetCompanyCommand{
		OrganizationID: middleware.OrganizationID(c),
		CompanyID:      c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewCompanyDTO(result.Company))
}

func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listCompaniesUC.Execute(c.Request.Context(), usecases.ListCompaniesCommand{
		OrganizationID: middleware.OrganizationID(c),
		Pagination:     pagination,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"companies":   NewCompanyDTOs(result.Companies),
		"total":       result.Total,
		"page":        pagination.Page,
		"page_size":   pagination.PageSize,
		"total_pages": utils.TotalPages(result.Total, pagination.PageSize),
	})
}

func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update company", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateCompanyUC.Execute(c.Request.Context(), usecases.UpdateCompanyCommand{
		OrganizationID: middleware.OrganizationID(c),
		CompanyID:      c.Param("id"),
		Profile: company.ProfileFields{
			Name:        req.Name,
			Website:     req.Website,
			Phone:       req.Phone,
			Email:       req.Email,
			Address:     req.Address,
			City:        req.City,
			State:       req.State,
			Zip:         req.Zip,
			Tagline:     req.Tagline,
			About:       req.About,
			PricingInfo: req.PricingInfo,
		},
		Status:      req.Status,
		AISummary:   req.AISummary,
		Badges:      req.Badges,
		SocialLinks: req.SocialLinks,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "company updated", gin.H{
		"company":        NewCompanyDTO(result.Company),
		"fields_updated": result.FieldsUpdated,
	})
}

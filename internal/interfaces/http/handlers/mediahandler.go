package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	mediausecases "github.com/beaconhq/beacon/internal/application/media/usecases"
	reviewusecases "github.com/beaconhq/beacon/internal/application/review/usecases"
	"github.com/beaconhq/beacon/internal/domain/media"
	"github.com/beaconhq/beacon/internal/domain/review"
	"github.com/beaconhq/beacon/internal/interfaces/http/middleware"
	"github.com/beaconhq/beacon/internal/shared/id"
	"github.com/beaconhq/beacon/internal/shared/logger"
	"github.com/beaconhq/beacon/internal/shared/utils"
)

type MediaHandler struct {
	listMediaUC   *mediausecases.ListMediaUseCase
	tagMediaUC    *mediausecases.TagMediaUseCase
	listReviewsUC *reviewusecases.ListReviewsUseCase
	logger        logger.Interface
}

func NewMediaHandler(
	listMediaUC *mediausecases.ListMediaUseCase,
	tagMediaUC *mediausecases.TagMediaUseCase,
	listReviewsUC *reviewusecases.ListReviewsUseCase,
	logger logger.Interface,
) *MediaHandler {
	return &MediaHandler{
		listMediaUC:   listMediaUC,
		tagMediaUC:    tagMediaUC,
		listReviewsUC: listReviewsUC,
		logger:        logger,
	}
}

type MediaItemDTO struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	FileURL   string    `json:"file_url"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags,omitempty"`
	Status    string    `json:"status"`
	Priority  int       `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newMediaItemDTO(m *media.MediaItem) MediaItemDTO {
	return MediaItemDTO{
		ID:        m.ID(),
		CompanyID: m.CompanyID(),
		FileURL:   m.FileURL(),
		Category:  m.Category().String(),
		Tags:      m.Tags(),
		Status:    m.Status().String(),
		Priority:  m.Priority(),
		CreatedAt: m.CreatedAt(),
		UpdatedAt: m.UpdatedAt(),
	}
}

type ReviewDTO struct {
	ID         string  `json:"id"`
	Platform   string  `json:"platform,omitempty"`
	Author     string  `json:"author,omitempty"`
	Rating     float64 `json:"rating"`
	Text       string  `json:"text,omitempty"`
	ReviewDate *string `json:"review_date,omitempty"`
	URL        *string `json:"url,omitempty"`
}

func newReviewDTO(r *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:         r.ID(),
		Platform:   r.Platform(),
		Author:     r.Author(),
		Rating:     r.Rating(),
		Text:       r.Text(),
		ReviewDate: r.ReviewDate(),
		URL:        r.URL(),
	}
}

type TagMediaRequest struct {
	Tags     []string `json:"tags"`
	Status   *string  `json:"status" binding:"omitempty,oneof=pending active"`
	Priority *int     `json:"priority"`
}

func (h *MediaHandler) ListMedia(c *gin.Context) {
	result, err := h.listMediaUC.Execute(c.Request.Context(), mediausecases.ListMediaCommand{
		OrganizationID: middleware.OrganizationID(c),
		CompanyID:      c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dtos := make([]MediaItemDTO, 0, len(result.Items))
	for _, item := range result.Items {
		dtos = append(dtos, newMediaItemDTO(item))
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"media": dtos})
}

func (h *MediaHandler) TagMedia(c *gin.Context) {
	mediaID := c.Param("mediaId")
	if !id.IsValid(mediaID) {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid media id")
		return
	}

	var req TagMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for tag media", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.tagMediaUC.Execute(c.Request.Context(), mediausecases.TagMediaCommand{
		OrganizationID: middleware.OrganizationID(c),
		CompanyID:      c.Param("id"),
		MediaID:        mediaID,
		Tags:           req.Tags,
		Status:         req.Status,
		Priority:       req.Priority,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "media updated", gin.H{
		"media":        newMediaItemDTO(result.MediaItem),
		"logo_updated": result.LogoUpdated,
	})
}

func (h *MediaHandler) ListReviews(c *gin.Context) {
	result, err := h.listReviewsUC.Execute(c.Request.Context(), reviewusecases.ListReviewsCommand{
		OrganizationID: middleware.OrganizationID(c),
		CompanyID:      c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dtos := make([]ReviewDTO, 0, len(result.Reviews))
	for _, r := range result.Reviews {
		dtos = append(dtos, newReviewDTO(r))
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"reviews": dtos})
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/beaconhq/beacon/internal/shared/logger"
)

func TestTagMedia_MalformedIDRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewMediaHandler(nil, nil, nil, logger.NewLogger())

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodPut, "/companies/c1/media/bad%20id!/tags", nil)
	ctx.Params = gin.Params{
		{Key: "id", Value: "c1"},
		{Key: "mediaId", Value: "bad id!"},
	}

	handler.TagMedia(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sky_take_out/internal/core/ports/services"
	"github.com/SscSPs/sky_take_out/internal/dto"
	"github.com/SscSPs/sky_take_out/internal/middleware"
	"github.com/gin-gonic/gin"
)

// maxUploadSize bounds the multipart file accepted by the upload endpoint.
const maxUploadSize = 10 << 20

// commonHandler serves endpoints shared by every admin page.
type commonHandler struct {
	uploadService portssvc.UploadSvc
}

func newCommonHandler(us portssvc.UploadSvc) *commonHandler {
	return &commonHandler{uploadService: us}
}

func registerCommonRoutes(rg *gin.RouterGroup, uploadService portssvc.UploadSvc, extra ...gin.HandlerFunc) {
	h := newCommonHandler(uploadService)

	common := rg.Group("/common")
	{
		common.POST("/upload", append(extra, h.upload)...)
	}
}

// upload godoc
// @Summary Upload a file
// @Description Stores an image in object storage and returns its public URL
// @Tags common
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or oversized file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 503 {object} dto.ErrorResponse "Object storage not configured"
// @Security BearerAuth
// @Router /common/upload [post]
func (h *commonHandler) upload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if h.uploadService == nil {
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "file upload is not configured"})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize+(1<<20))
	fh, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Upload without file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "multipart field 'file' is required"})
		return
	}
	if fh.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "file too large"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		respondError(c, err, "Failed to read uploaded file")
		return
	}
	defer f.Close()

	url, err := h.uploadService.Upload(c.Request.Context(), fh.Filename, f, fh.Size, fh.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, err, "File upload failed")
		return
	}
	c.JSON(http.StatusOK, dto.UploadResponse{URL: url})
}

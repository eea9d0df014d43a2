package handlers

import (
	"context"
	"errors"

	"kobis-search/internal/services"
	"kobis-search/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// WorkbookPresigner issues upload URLs for catalog workbooks.
type WorkbookPresigner interface {
	GeneratePresignedURL(ctx context.Context, filename string) (*services.PresignedUpload, error)
}

type UploadHandler struct {
	presigner WorkbookPresigner
	logger    *logrus.Logger
}

// NewUploadHandler accepts a nil presigner when object storage is not
// configured; uploads then answer 503.
func NewUploadHandler(presigner WorkbookPresigner, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		presigner: presigner,
		logger:    logger,
	}
}

// GetPresignedURL godoc
// @Summary Get presigned URL for a catalog workbook upload
// @Description Generate a presigned PUT URL for uploading a KOBIS .xlsx export to object storage. The returned object key is passed to the loader.
// @Tags Upload
// @Produce json
// @Param filename query string true "Workbook filename (.xlsx)"
// @Success 200 {object} utils.StandardResponse{data=services.PresignedUpload}
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Failure 503 {object} utils.StandardResponse
// @Router /upload/presign [get]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	if h.presigner == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Object storage is not configured")
	}

	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	upload, err := h.presigner.GeneratePresignedURL(c.UserContext(), filename)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedWorkbook) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.WithError(err).Error("Failed to generate presigned URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate presigned URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Presigned URL generated successfully", upload)
}

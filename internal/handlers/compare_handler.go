package handlers

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Sehar1999/applicant-tracking-system/internal/middlewares"
	"github.com/Sehar1999/applicant-tracking-system/internal/models"
	"github.com/Sehar1999/applicant-tracking-system/internal/services"
)

type CompareHandler struct {
	comparisonService services.ComparisonService
	maxFileSize       int64
}

func NewCompareHandler(comparisonService services.ComparisonService, maxFileSize int64) *CompareHandler {
	return &CompareHandler{
		comparisonService: comparisonService,
		maxFileSize:       maxFileSize,
	}
}

// HandleCompare handles POST /api/files/compare. Multipart fields:
// jobDescription (optional text), jobDescriptionId (optional), fileIds
// (repeated stored-document references), files (repeated binary uploads).
func (h *CompareHandler) HandleCompare(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)
	if user == nil {
		return fail(c, fiber.StatusUnauthorized, "Authentication required")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "failed to parse multipart form")
	}

	req := services.ComparisonRequest{
		JobDescription: c.FormValue("jobDescription"),
	}

	if raw := strings.TrimSpace(c.FormValue("jobDescriptionId")); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid job description id")
		}
		jdID := uint(id)
		req.JobDescriptionID = &jdID
	}

	for _, raw := range form.Value["fileIds"] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseUint(part, 10, 32)
			if err != nil {
				return fail(c, fiber.StatusBadRequest, fmt.Sprintf("Invalid file id: %s", part))
			}
			req.FileIDs = append(req.FileIDs, uint(id))
		}
	}

	for _, fileHeader := range form.File["files"] {
		contentType := fileHeader.Header.Get("Content-Type")
		if !isParsableContentType(contentType) {
			return fail(c, fiber.StatusBadRequest,
				fmt.Sprintf("File %s is not supported. Only PDF and Word documents are allowed.", fileHeader.Filename))
		}

		if fileHeader.Size > h.maxFileSize {
			return fail(c, fiber.StatusBadRequest,
				fmt.Sprintf("File %s too large. Max size: %d bytes", fileHeader.Filename, h.maxFileSize))
		}

		src, err := fileHeader.Open()
		if err != nil {
			return fail(c, fiber.StatusBadRequest, fmt.Sprintf("Failed to read file %s", fileHeader.Filename))
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return fail(c, fiber.StatusBadRequest, fmt.Sprintf("Failed to read file %s", fileHeader.Filename))
		}

		req.Uploads = append(req.Uploads, services.RawUpload{
			Filename:    fileHeader.Filename,
			ContentType: contentType,
			Data:        data,
		})
	}

	report, err := h.comparisonService.Compare(c.Context(), user, req)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			return fail(c, fiber.StatusBadRequest, validationErr.Message)
		}
		return fail(c, fiber.StatusInternalServerError, "File comparison failed")
	}

	return c.JSON(models.APIResponse{
		Success: true,
		Message: "Job is done",
		Data:    report,
	})
}

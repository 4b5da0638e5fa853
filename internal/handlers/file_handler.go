package handlers

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Sehar1999/applicant-tracking-system/internal/middlewares"
	"github.com/Sehar1999/applicant-tracking-system/internal/models"
	"github.com/Sehar1999/applicant-tracking-system/internal/repositories"
	"github.com/Sehar1999/applicant-tracking-system/internal/services"
)

type FileHandler struct {
	attachmentRepo repositories.AttachmentRepository
	blobStore      services.BlobStore
	maxFileSize    int64
}

func NewFileHandler(
	attachmentRepo repositories.AttachmentRepository,
	blobStore services.BlobStore,
	maxFileSize int64,
) *FileHandler {
	return &FileHandler{
		attachmentRepo: attachmentRepo,
		blobStore:      blobStore,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /api/files/upload
func (h *FileHandler) HandleUpload(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)
	if user == nil {
		return fail(c, fiber.StatusUnauthorized, "Authentication required")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "No file provided")
	}

	fileType := c.FormValue("fileType")
	if fileType != models.FileTypeCV && fileType != models.FileTypeProfile {
		return fail(c, fiber.StatusBadRequest, `Invalid file type. Must be "cv" or "profile"`)
	}

	data, contentType, err := h.readUpload(fileHeader)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	if fileType == models.FileTypeCV && !isParsableContentType(contentType) {
		return fail(c, fiber.StatusBadRequest, "Only PDF and Word documents are allowed for CV uploads")
	}
	if !isAllowedUploadContentType(contentType) {
		return fail(c, fiber.StatusBadRequest, "Invalid file type. Only images, PDF, and Word documents are allowed.")
	}

	locator, err := h.blobStore.Put(c.Context(), data, user.ID)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, fmt.Sprintf("Failed to save file: %v", err))
	}

	attachment := &models.Attachment{
		FileURL:        locator,
		FileType:       fileType,
		AttachableID:   user.ID,
		AttachableType: models.AttachableTypeUser,
		UploadedAt:     time.Now(),
	}
	if err := h.attachmentRepo.Create(attachment); err != nil {
		// Drop the blob if the record could not be written
		if delErr := h.blobStore.Delete(c.Context(), locator); delErr != nil {
			log.Printf("⚠️  Failed to clean up blob %s: %v\n", locator, delErr)
		}
		return fail(c, fiber.StatusInternalServerError, "Failed to save file record")
	}

	return c.JSON(models.APIResponse{
		Success: true,
		Message: "File uploaded successfully",
		Data: models.UploadData{
			ID:         attachment.ID,
			FileURL:    attachment.FileURL,
			FileType:   attachment.FileType,
			UploadedAt: attachment.UploadedAt,
		},
	})
}

// HandleUpdateProfilePicture handles PUT /api/files/profile-picture. A new
// upload replaces the previous record's locator instead of creating a second
// profile attachment.
func (h *FileHandler) HandleUpdateProfilePicture(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)
	if user == nil {
		return fail(c, fiber.StatusUnauthorized, "Authentication required")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "No file provided")
	}

	data, contentType, err := h.readUpload(fileHeader)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	if !strings.HasPrefix(contentType, "image/") {
		return fail(c, fiber.StatusBadRequest, "Only image files are allowed for profile pictures")
	}

	existing, findErr := h.attachmentRepo.FindProfile(user.ID)

	locator, err := h.blobStore.Put(c.Context(), data, user.ID)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Profile picture update failed")
	}

	if findErr == nil {
		// Best-effort removal of the previous blob
		if err := h.blobStore.Delete(c.Context(), existing.FileURL); err != nil {
			log.Printf("⚠️  Failed to delete old profile picture blob: %v\n", err)
		}
		if err := h.attachmentRepo.UpdateFileURL(existing.ID, locator); err != nil {
			return fail(c, fiber.StatusInternalServerError, "Profile picture update failed")
		}
	} else {
		attachment := &models.Attachment{
			FileURL:        locator,
			FileType:       models.FileTypeProfile,
			AttachableID:   user.ID,
			AttachableType: models.AttachableTypeUser,
			UploadedAt:     time.Now(),
		}
		if err := h.attachmentRepo.Create(attachment); err != nil {
			return fail(c, fiber.StatusInternalServerError, "Profile picture update failed")
		}
	}

	return c.JSON(models.APIResponse{
		Success: true,
		Message: "Profile picture updated successfully",
		Data: fiber.Map{
			"profilePicture": locator,
		},
	})
}

// HandleMyFiles handles GET /api/files/my-files
func (h *FileHandler) HandleMyFiles(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)
	if user == nil {
		return fail(c, fiber.StatusUnauthorized, "Authentication required")
	}

	attachments, err := h.attachmentRepo.ListOwned(user.ID, models.FileTypeCV)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to retrieve files")
	}

	return c.JSON(models.APIResponse{
		Success: true,
		Message: "Files fetched successfully",
		Data:    attachments,
	})
}

// HandleFetch handles GET /api/files/fetch/:fileId, proxying the blob back to
// the client. The stored object has no extension, so the content type comes
// from sniffing the bytes.
func (h *FileHandler) HandleFetch(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)
	if user == nil {
		return fail(c, fiber.StatusUnauthorized, "Authentication required")
	}

	id, err := parseIDParam(c, "fileId")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid file id")
	}

	attachment, err := h.attachmentRepo.FindOwnedAny(id, user.ID)
	if err != nil {
		return fail(c, fiber.StatusNotFound, "File not found")
	}

	data, err := h.blobStore.Get(c.Context(), attachment.FileURL)
	if err != nil {
		return fail(c, fiber.StatusNotFound, "File not found in storage")
	}

	contentType := fiber.MIMEOctetStream
	ext := ""
	if format := services.DetectFormat(data); format != services.FormatUnknown {
		contentType = format.ContentType()
		ext = "." + format.String()
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%d%s"`, attachment.ID, ext))
	return c.Send(data)
}

// HandleDelete handles DELETE /api/files/:fileId. The database record is the
// source of truth; blob deletion is best-effort and never blocks it.
func (h *FileHandler) HandleDelete(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)
	if user == nil {
		return fail(c, fiber.StatusUnauthorized, "Authentication required")
	}

	id, err := parseIDParam(c, "fileId")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid file id")
	}

	attachment, err := h.attachmentRepo.FindOwnedAny(id, user.ID)
	if err != nil {
		return fail(c, fiber.StatusNotFound, "File not found")
	}

	if err := h.blobStore.Delete(c.Context(), attachment.FileURL); err != nil {
		log.Printf("⚠️  Failed to delete blob %s: %v\n", attachment.FileURL, err)
	}

	if err := h.attachmentRepo.Delete(attachment.ID); err != nil {
		return fail(c, fiber.StatusInternalServerError, "File deletion failed")
	}

	return c.JSON(models.APIResponse{
		Success: true,
		Message: "File deleted successfully",
	})
}

// readUpload buffers a multipart file, enforcing the size limit and returning
// the declared content type.
func (h *FileHandler) readUpload(fileHeader *multipart.FileHeader) ([]byte, string, error) {
	if fileHeader.Size > h.maxFileSize {
		return nil, "", fmt.Errorf("File too large. Max size: %d bytes", h.maxFileSize)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read uploaded file")
	}

	return data, fileHeader.Header.Get("Content-Type"), nil
}

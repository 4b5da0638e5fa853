package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Sehar1999/applicant-tracking-system/internal/middlewares"
	"github.com/Sehar1999/applicant-tracking-system/internal/models"
	"github.com/Sehar1999/applicant-tracking-system/internal/repositories"
)

type JobHandler struct {
	jdRepo repositories.JobDescriptionRepository
}

func NewJobHandler(jdRepo repositories.JobDescriptionRepository) *JobHandler {
	return &JobHandler{jdRepo: jdRepo}
}

type jobDescriptionRequest struct {
	Description string `json:"description"`
}

// HandleCreate handles POST /api/jobs
func (h *JobHandler) HandleCreate(c *fiber.Ctx) error {
	user, err := h.requireRecruiter(c)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	var req jobDescriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return fail(c, fiber.StatusBadRequest, "Job description content is required")
	}

	jd := &models.JobDescription{
		Description: description,
		UserID:      user.ID,
	}
	if err := h.jdRepo.Create(jd); err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to create job description")
	}

	return c.Status(fiber.StatusCreated).JSON(models.APIResponse{
		Success: true,
		Message: "Job description created successfully",
		Data:    jd,
	})
}

// HandleList handles GET /api/jobs
func (h *JobHandler) HandleList(c *fiber.Ctx) error {
	user, err := h.requireRecruiter(c)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	jds, err := h.jdRepo.ListOwned(user.ID)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch job descriptions")
	}

	return c.JSON(models.APIResponse{
		Success: true,
		Message: "Job descriptions fetched successfully",
		Data:    jds,
	})
}

// HandleGet handles GET /api/jobs/:id
func (h *JobHandler) HandleGet(c *fiber.Ctx) error {
	user, err := h.requireRecruiter(c)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid job description id")
	}

	jd, err := h.jdRepo.FindOwned(id, user.ID)
	if err != nil {
		return fail(c, fiber.StatusNotFound, "Job description not found")
	}

	return c.JSON(models.APIResponse{
		Success: true,
		Message: "Job description fetched successfully",
		Data:    jd,
	})
}

// HandleUpdate handles PUT /api/jobs/:id
func (h *JobHandler) HandleUpdate(c *fiber.Ctx) error {
	user, err := h.requireRecruiter(c)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid job description id")
	}

	var req jobDescriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return fail(c, fiber.StatusBadRequest, "Job description content is required")
	}

	jd, err := h.jdRepo.FindOwned(id, user.ID)
	if err != nil {
		return fail(c, fiber.StatusNotFound, "Job description not found")
	}

	jd.Description = description
	if err := h.jdRepo.Update(jd); err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to update job description")
	}

	return c.JSON(models.APIResponse{
		Success: true,
		Message: "Job description updated successfully",
		Data:    jd,
	})
}

// HandleDelete handles DELETE /api/jobs/:id
func (h *JobHandler) HandleDelete(c *fiber.Ctx) error {
	user, err := h.requireRecruiter(c)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid job description id")
	}

	jd, err := h.jdRepo.FindOwned(id, user.ID)
	if err != nil {
		return fail(c, fiber.StatusNotFound, "Job description not found")
	}

	if err := h.jdRepo.Delete(jd.ID); err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to delete job description")
	}

	return c.JSON(models.APIResponse{
		Success: true,
		Message: "Job description deleted successfully",
	})
}

// requireRecruiter returns (nil, nil) after writing the response when the
// requester is missing or not a recruiter.
func (h *JobHandler) requireRecruiter(c *fiber.Ctx) (*models.User, error) {
	user := middlewares.CurrentUser(c)
	if user == nil {
		return nil, fail(c, fiber.StatusUnauthorized, "Authentication required")
	}

	if !user.IsRecruiter() {
		return nil, fail(c, fiber.StatusForbidden, "Only recruiters can manage job descriptions")
	}

	return user, nil
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

package donations

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mascotassj/backend/internal/dto"
	"github.com/mascotassj/backend/internal/middleware"
	"github.com/mascotassj/backend/internal/moderation"
	"github.com/mascotassj/backend/internal/storage"
)

type CampaignHandler struct {
	service *CampaignService
}

func NewCampaignHandler(service *CampaignService) *CampaignHandler {
	return &CampaignHandler{service: service}
}

// Submit accepts a multipart form with the campaign fields and one image file.
func (h *CampaignHandler) Submit(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	goal, _ := strconv.ParseInt(c.FormValue("goal_amount"), 10, 64)
	in := SubmitInput{
		Title:        c.FormValue("title"),
		Beneficiary:  c.FormValue("beneficiary"),
		Description:  c.FormValue("description"),
		GoalAmount:   goal,
		BankAccount:  c.FormValue("bank_account"),
		ContactName:  c.FormValue("contact_name"),
		ContactPhone: c.FormValue("contact_phone"),
	}

	img, err := formImage(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "An image file is required",
		})
	}

	campaign, err := h.service.Submit(c.Context(), &userID, in, img)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(campaign)
}

// List serves the public listing of approved campaigns.
func (h *CampaignHandler) List(c *fiber.Ctx) error {
	campaigns, err := h.service.ListPublic()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch campaigns",
		})
	}
	return c.JSON(fiber.Map{"campaigns": campaigns})
}

// Mine lists the caller's own submissions in any state.
func (h *CampaignHandler) Mine(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	campaigns, err := h.service.ListMine(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch campaigns",
		})
	}
	return c.JSON(fiber.Map{"campaigns": campaigns})
}

// AdminList serves raw rows to the review panel, pending by default.
func (h *CampaignHandler) AdminList(c *fiber.Ctx) error {
	status := moderation.Status(c.Query("status", string(moderation.StatusPending)))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	if limit > 100 {
		limit = 100
	}

	campaigns, total, err := h.service.ListByStatus(status, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"campaigns": campaigns,
		"total":     total,
		"limit":     limit,
		"offset":    offset,
	})
}

func (h *CampaignHandler) Approve(c *fiber.Ctx) error {
	reviewerID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid campaign ID",
		})
	}

	if err := h.service.Approve(id, reviewerID); err != nil {
		if errors.Is(err, ErrCampaignNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to approve campaign",
		})
	}

	return c.JSON(fiber.Map{"message": "Campaign approved"})
}

func (h *CampaignHandler) Reject(c *fiber.Ctx) error {
	reviewerID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid campaign ID",
		})
	}

	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.BodyParser(&req) // reason is optional; an empty body is fine

	if err := h.service.Reject(id, reviewerID, req.Reason); err != nil {
		if errors.Is(err, ErrCampaignNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to reject campaign",
		})
	}

	return c.JSON(fiber.Map{"message": "Campaign rejected"})
}

func (h *CampaignHandler) Remove(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid campaign ID",
		})
	}

	if err := h.service.Remove(id); err != nil {
		if errors.Is(err, ErrCampaignNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to remove campaign",
		})
	}

	return c.JSON(fiber.Map{"message": "Campaign removed"})
}

// UpdateRaised sets the collected amount shown on the public progress bar.
func (h *CampaignHandler) UpdateRaised(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid campaign ID",
		})
	}

	var req struct {
		RaisedAmount int64 `json:"raised_amount"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.service.UpdateRaised(id, req.RaisedAmount); err != nil {
		if errors.Is(err, ErrCampaignNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Raised amount updated"})
}

func formImage(c *fiber.Ctx) (*storage.File, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	return &storage.File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	}, nil
}

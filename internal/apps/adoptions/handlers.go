package adoptions

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

type ListingHandler struct {
	service *ListingService
}

func NewListingHandler(service *ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

// Submit accepts a multipart form with the listing fields and one image file.
func (h *ListingHandler) Submit(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	in := SubmitInput{
		PetName:      c.FormValue("pet_name"),
		Species:      c.FormValue("species"),
		Breed:        c.FormValue("breed"),
		Gender:       c.FormValue("gender"),
		Color:        c.FormValue("color"),
		AgeYears:     parseOptionalInt(c.FormValue("age_years")),
		Size:         c.FormValue("size"),
		Description:  c.FormValue("description"),
		Vaccinated:   parseBool(c.FormValue("vaccinated")),
		Sterilized:   parseBool(c.FormValue("sterilized")),
		Location:     c.FormValue("location"),
		ContactName:  c.FormValue("contact_name"),
		ContactPhone: c.FormValue("contact_phone"),
	}

	img, err := formImage(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "An image file is required",
		})
	}

	listing, err := h.service.Submit(c.Context(), &userID, in, img)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(listing)
}

// List serves the public listing of approved adoptions.
func (h *ListingHandler) List(c *fiber.Ctx) error {
	listings, err := h.service.ListPublic()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch listings",
		})
	}
	return c.JSON(fiber.Map{"listings": listings})
}

// Mine lists the caller's own submissions in any state.
func (h *ListingHandler) Mine(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	listings, err := h.service.ListMine(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch listings",
		})
	}
	return c.JSON(fiber.Map{"listings": listings})
}

// AdminList serves raw rows to the review panel, pending by default.
func (h *ListingHandler) AdminList(c *fiber.Ctx) error {
	status := moderation.Status(c.Query("status", string(moderation.StatusPending)))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	if limit > 100 {
		limit = 100
	}

	listings, total, err := h.service.ListByStatus(status, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"listings": listings,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
	})
}

func (h *ListingHandler) Approve(c *fiber.Ctx) error {
	reviewerID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid listing ID",
		})
	}

	if err := h.service.Approve(id, reviewerID); err != nil {
		if errors.Is(err, ErrListingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to approve listing",
		})
	}

	return c.JSON(fiber.Map{"message": "Listing approved"})
}

func (h *ListingHandler) Reject(c *fiber.Ctx) error {
	reviewerID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid listing ID",
		})
	}

	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.BodyParser(&req) // reason is optional; an empty body is fine

	if err := h.service.Reject(id, reviewerID, req.Reason); err != nil {
		if errors.Is(err, ErrListingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to reject listing",
		})
	}

	return c.JSON(fiber.Map{"message": "Listing rejected"})
}

func (h *ListingHandler) Remove(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid listing ID",
		})
	}

	if err := h.service.Remove(id); err != nil {
		if errors.Is(err, ErrListingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to remove listing",
		})
	}

	return c.JSON(fiber.Map{"message": "Listing removed"})
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

func parseOptionalInt(raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

func parseBool(raw string) bool {
	b, _ := strconv.ParseBool(raw)
	return b
}

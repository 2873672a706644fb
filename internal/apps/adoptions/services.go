package adoptions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mascotassj/backend/internal/moderation"
	"github.com/mascotassj/backend/internal/storage"
	"github.com/mascotassj/backend/internal/validation"
	"gorm.io/gorm"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrImageRequired   = errors.New("an image file is required")
)

type ListingService struct {
	db       *gorm.DB
	store    storage.Store
	filter   *moderation.ContentFilter
	cityName string
}

func NewListingService(db *gorm.DB, store storage.Store, filter *moderation.ContentFilter, cityName string) *ListingService {
	return &ListingService{db: db, store: store, filter: filter, cityName: cityName}
}

func (s *ListingService) Submit(ctx context.Context, submitterID *uuid.UUID, in SubmitInput, img *storage.File) (*AdoptionListing, error) {
	if img == nil || img.Body == nil {
		return nil, ErrImageRequired
	}
	if img.Size > storage.MaxImageSize {
		return nil, errors.New("image exceeds the 10MB limit")
	}
	if !storage.ValidImageType(img.ContentType) {
		return nil, errors.New("unsupported image type")
	}

	required := map[string]string{
		"pet_name":      in.PetName,
		"species":       in.Species,
		"breed":         in.Breed,
		"gender":        in.Gender,
		"color":         in.Color,
		"location":      in.Location,
		"contact_name":  in.ContactName,
		"contact_phone": in.ContactPhone,
	}
	for field, value := range required {
		if _, ok := validation.Required(value); !ok {
			return nil, fmt.Errorf("%s is required", field)
		}
	}

	if ok, reason := s.filter.Check(in.Description); !ok {
		return nil, errors.New(s.filter.RejectionMessage(reason))
	}

	id := uuid.New()
	key := "adoptions/" + id.String() + storage.ImageExt(img.Name)

	imageURL, err := s.store.Upload(ctx, key, img.ContentType, img.Body)
	if err != nil {
		return nil, fmt.Errorf("image upload failed: %w", err)
	}

	listing := AdoptionListing{
		ID:           id,
		PetName:      strings.TrimSpace(in.PetName),
		Species:      strings.TrimSpace(in.Species),
		Breed:        strings.TrimSpace(in.Breed),
		Gender:       strings.TrimSpace(in.Gender),
		Color:        strings.TrimSpace(in.Color),
		AgeYears:     in.AgeYears,
		Size:         validation.Optional(in.Size),
		Description:  validation.Optional(in.Description),
		Vaccinated:   in.Vaccinated,
		Sterilized:   in.Sterilized,
		Location:     strings.TrimSpace(in.Location),
		ContactName:  strings.TrimSpace(in.ContactName),
		ContactPhone: strings.TrimSpace(in.ContactPhone),
		ImageURL:     imageURL,
		Review: moderation.Review{
			Status:      moderation.StatusPending,
			SubmittedBy: submitterID,
			SubmittedAt: time.Now().UTC(),
		},
	}

	if err := s.db.Create(&listing).Error; err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			slog.Error("failed to clean up image after insert failure", "key", key, "error", delErr)
		}
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}
	return &listing, nil
}

func (s *ListingService) ListPublic() ([]PublicListing, error) {
	var listings []AdoptionListing
	err := s.db.Where("status = ?", moderation.StatusApproved).
		Order("submitted_at DESC").
		Find(&listings).Error
	if err != nil {
		return []PublicListing{}, fmt.Errorf("failed to list adoptions: %w", err)
	}

	views := make([]PublicListing, len(listings))
	for i := range listings {
		views[i] = s.toPublicListing(&listings[i])
	}
	return views, nil
}

func (s *ListingService) ListByStatus(status moderation.Status, limit, offset int) ([]AdoptionListing, int64, error) {
	if !status.Valid() {
		return nil, 0, fmt.Errorf("invalid status %q", status)
	}

	var listings []AdoptionListing
	var total int64

	query := s.db.Model(&AdoptionListing{}).Where("status = ?", status)
	query.Count(&total)

	err := query.Order("submitted_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&listings).Error
	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

func (s *ListingService) ListMine(userID uuid.UUID) ([]AdoptionListing, error) {
	var listings []AdoptionListing
	err := s.db.Where("submitted_by = ?", userID).
		Order("submitted_at DESC").
		Find(&listings).Error
	return listings, err
}

func (s *ListingService) Approve(id, reviewerID uuid.UUID) error {
	result := s.db.Model(&AdoptionListing{}).
		Where("id = ?", id).
		Updates(moderation.ApproveUpdates(reviewerID, time.Now().UTC()))
	if result.Error != nil {
		return fmt.Errorf("failed to approve listing: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

func (s *ListingService) Reject(id, reviewerID uuid.UUID, reason string) error {
	result := s.db.Model(&AdoptionListing{}).
		Where("id = ?", id).
		Updates(moderation.RejectUpdates(reviewerID, reason, time.Now().UTC()))
	if result.Error != nil {
		return fmt.Errorf("failed to reject listing: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

func (s *ListingService) Remove(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&AdoptionListing{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove listing: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

func (s *ListingService) toPublicListing(l *AdoptionListing) PublicListing {
	description := ""
	if l.Description != nil {
		description = *l.Description
	}
	return PublicListing{
		ID:           l.ID,
		PetName:      l.PetName,
		Species:      l.Species,
		Breed:        l.Breed,
		Gender:       l.Gender,
		Color:        l.Color,
		AgeYears:     l.AgeYears,
		Size:         l.Size,
		Description:  description,
		Vaccinated:   l.Vaccinated,
		Sterilized:   l.Sterilized,
		Location:     PrefixCity(l.Location, s.cityName),
		ImageURL:     l.ImageURL,
		ContactName:  l.ContactName,
		ContactPhone: l.ContactPhone,
		SubmittedAt:  l.SubmittedAt,
	}
}

// PrefixCity prepends the city name to a neighborhood-level location unless
// the submitter already included it.
func PrefixCity(location, city string) string {
	if city == "" {
		return location
	}
	if strings.Contains(strings.ToLower(location), strings.ToLower(city)) {
		return location
	}
	return city + ", " + location
}

package donations

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
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrImageRequired    = errors.New("an image file is required")
)

type CampaignService struct {
	db     *gorm.DB
	store  storage.Store
	filter *moderation.ContentFilter
}

func NewCampaignService(db *gorm.DB, store storage.Store, filter *moderation.ContentFilter) *CampaignService {
	return &CampaignService{db: db, store: store, filter: filter}
}

func (s *CampaignService) Submit(ctx context.Context, submitterID *uuid.UUID, in SubmitInput, img *storage.File) (*DonationCampaign, error) {
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
		"title":         in.Title,
		"beneficiary":   in.Beneficiary,
		"description":   in.Description,
		"bank_account":  in.BankAccount,
		"contact_name":  in.ContactName,
		"contact_phone": in.ContactPhone,
	}
	for field, value := range required {
		if _, ok := validation.Required(value); !ok {
			return nil, fmt.Errorf("%s is required", field)
		}
	}
	if in.GoalAmount <= 0 {
		return nil, errors.New("goal_amount must be greater than zero")
	}

	for _, text := range []string{in.Title, in.Description} {
		if ok, reason := s.filter.Check(text); !ok {
			return nil, errors.New(s.filter.RejectionMessage(reason))
		}
	}

	id := uuid.New()
	key := "campaigns/" + id.String() + storage.ImageExt(img.Name)

	imageURL, err := s.store.Upload(ctx, key, img.ContentType, img.Body)
	if err != nil {
		return nil, fmt.Errorf("image upload failed: %w", err)
	}

	campaign := DonationCampaign{
		ID:           id,
		Title:        strings.TrimSpace(in.Title),
		Beneficiary:  strings.TrimSpace(in.Beneficiary),
		Description:  strings.TrimSpace(in.Description),
		GoalAmount:   in.GoalAmount,
		BankAccount:  strings.TrimSpace(in.BankAccount),
		ContactName:  strings.TrimSpace(in.ContactName),
		ContactPhone: strings.TrimSpace(in.ContactPhone),
		ImageURL:     imageURL,
		Review: moderation.Review{
			Status:      moderation.StatusPending,
			SubmittedBy: submitterID,
			SubmittedAt: time.Now().UTC(),
		},
	}

	if err := s.db.Create(&campaign).Error; err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			slog.Error("failed to clean up image after insert failure", "key", key, "error", delErr)
		}
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}
	return &campaign, nil
}

func (s *CampaignService) ListPublic() ([]PublicCampaign, error) {
	var campaigns []DonationCampaign
	err := s.db.Where("status = ?", moderation.StatusApproved).
		Order("submitted_at DESC").
		Find(&campaigns).Error
	if err != nil {
		return []PublicCampaign{}, fmt.Errorf("failed to list campaigns: %w", err)
	}

	views := make([]PublicCampaign, len(campaigns))
	for i := range campaigns {
		views[i] = toPublicCampaign(&campaigns[i])
	}
	return views, nil
}

func (s *CampaignService) ListByStatus(status moderation.Status, limit, offset int) ([]DonationCampaign, int64, error) {
	if !status.Valid() {
		return nil, 0, fmt.Errorf("invalid status %q", status)
	}

	var campaigns []DonationCampaign
	var total int64

	query := s.db.Model(&DonationCampaign{}).Where("status = ?", status)
	query.Count(&total)

	err := query.Order("submitted_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&campaigns).Error
	if err != nil {
		return nil, 0, err
	}
	return campaigns, total, nil
}

func (s *CampaignService) ListMine(userID uuid.UUID) ([]DonationCampaign, error) {
	var campaigns []DonationCampaign
	err := s.db.Where("submitted_by = ?", userID).
		Order("submitted_at DESC").
		Find(&campaigns).Error
	return campaigns, err
}

func (s *CampaignService) Approve(id, reviewerID uuid.UUID) error {
	result := s.db.Model(&DonationCampaign{}).
		Where("id = ?", id).
		Updates(moderation.ApproveUpdates(reviewerID, time.Now().UTC()))
	if result.Error != nil {
		return fmt.Errorf("failed to approve campaign: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCampaignNotFound
	}
	return nil
}

func (s *CampaignService) Reject(id, reviewerID uuid.UUID, reason string) error {
	result := s.db.Model(&DonationCampaign{}).
		Where("id = ?", id).
		Updates(moderation.RejectUpdates(reviewerID, reason, time.Now().UTC()))
	if result.Error != nil {
		return fmt.Errorf("failed to reject campaign: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCampaignNotFound
	}
	return nil
}

func (s *CampaignService) Remove(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&DonationCampaign{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove campaign: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCampaignNotFound
	}
	return nil
}

// UpdateRaised records how much the campaign has collected so far. Admins
// update this by hand since donations arrive out of band via bank transfer.
func (s *CampaignService) UpdateRaised(id uuid.UUID, amount int64) error {
	if amount < 0 {
		return errors.New("raised_amount cannot be negative")
	}
	result := s.db.Model(&DonationCampaign{}).
		Where("id = ?", id).
		Update("raised_amount", amount)
	if result.Error != nil {
		return fmt.Errorf("failed to update raised amount: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCampaignNotFound
	}
	return nil
}

func toPublicCampaign(c *DonationCampaign) PublicCampaign {
	return PublicCampaign{
		ID:            c.ID,
		Title:         c.Title,
		Beneficiary:   c.Beneficiary,
		Description:   c.Description,
		GoalAmount:    c.GoalAmount,
		RaisedAmount:  c.RaisedAmount,
		PercentFunded: PercentFunded(c.RaisedAmount, c.GoalAmount),
		BankAccount:   c.BankAccount,
		ContactName:   c.ContactName,
		ContactPhone:  c.ContactPhone,
		ImageURL:      c.ImageURL,
		SubmittedAt:   c.SubmittedAt,
	}
}

// PercentFunded is capped at 100 so the progress bar never overflows.
func PercentFunded(raised, goal int64) int {
	if goal <= 0 {
		return 0
	}
	pct := int(raised * 100 / goal)
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

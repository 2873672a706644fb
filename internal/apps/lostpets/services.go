package lostpets

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
	ErrReportNotFound = errors.New("report not found")
	ErrImageRequired  = errors.New("an image file is required")
)

// ReportService handles lost-pet report submission, listing and moderation.
type ReportService struct {
	db     *gorm.DB
	store  storage.Store
	filter *moderation.ContentFilter
}

func NewReportService(db *gorm.DB, store storage.Store, filter *moderation.ContentFilter) *ReportService {
	return &ReportService{db: db, store: store, filter: filter}
}

// Submit validates the form, uploads the image and inserts a pending report.
// Upload failure aborts before any insert; insert failure deletes the
// uploaded image so no orphan blob survives.
func (s *ReportService) Submit(ctx context.Context, submitterID *uuid.UUID, in SubmitInput, img *storage.File) (*LostPetReport, error) {
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
		"pet_name":           in.PetName,
		"species":            in.Species,
		"breed":              in.Breed,
		"gender":             in.Gender,
		"color":              in.Color,
		"last_seen_location": in.LastSeenLocation,
		"contact_name":       in.ContactName,
		"contact_phone":      in.ContactPhone,
	}
	for field, value := range required {
		if _, ok := validation.Required(value); !ok {
			return nil, fmt.Errorf("%s is required", field)
		}
	}
	if in.LastSeenAt.IsZero() {
		return nil, errors.New("last_seen_at is required")
	}

	for _, text := range []string{in.Description, in.DistinctiveMarks} {
		if ok, reason := s.filter.Check(text); !ok {
			return nil, errors.New(s.filter.RejectionMessage(reason))
		}
	}

	id := uuid.New()
	key := "lost-pets/" + id.String() + storage.ImageExt(img.Name)

	imageURL, err := s.store.Upload(ctx, key, img.ContentType, img.Body)
	if err != nil {
		return nil, fmt.Errorf("image upload failed: %w", err)
	}

	report := LostPetReport{
		ID:               id,
		PetName:          strings.TrimSpace(in.PetName),
		Species:          strings.TrimSpace(in.Species),
		Breed:            strings.TrimSpace(in.Breed),
		Gender:           strings.TrimSpace(in.Gender),
		Color:            strings.TrimSpace(in.Color),
		AgeYears:         in.AgeYears,
		DistinctiveMarks: validation.Optional(in.DistinctiveMarks),
		Description:      validation.Optional(in.Description),
		LastSeenLocation: strings.TrimSpace(in.LastSeenLocation),
		LastSeenAt:       in.LastSeenAt,
		ContactName:      strings.TrimSpace(in.ContactName),
		ContactPhone:     strings.TrimSpace(in.ContactPhone),
		ImageURL:         imageURL,
		Review: moderation.Review{
			Status:      moderation.StatusPending,
			SubmittedBy: submitterID,
			SubmittedAt: time.Now().UTC(),
		},
	}

	if err := s.db.Create(&report).Error; err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			slog.Error("failed to clean up image after insert failure", "key", key, "error", delErr)
		}
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return &report, nil
}

// ListPublic returns approved reports, newest first, mapped to the display
// shape. On query failure the list is empty alongside the error so callers
// never render partial data.
func (s *ReportService) ListPublic() ([]PublicReport, error) {
	var reports []LostPetReport
	err := s.db.Where("status = ?", moderation.StatusApproved).
		Order("submitted_at DESC").
		Find(&reports).Error
	if err != nil {
		return []PublicReport{}, fmt.Errorf("failed to list reports: %w", err)
	}

	now := time.Now()
	views := make([]PublicReport, len(reports))
	for i := range reports {
		views[i] = toPublicReport(&reports[i], now)
	}
	return views, nil
}

// ListByStatus returns raw rows for the admin review panel.
func (s *ReportService) ListByStatus(status moderation.Status, limit, offset int) ([]LostPetReport, int64, error) {
	if !status.Valid() {
		return nil, 0, fmt.Errorf("invalid status %q", status)
	}

	var reports []LostPetReport
	var total int64

	query := s.db.Model(&LostPetReport{}).Where("status = ?", status)
	query.Count(&total)

	err := query.Order("submitted_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// ListMine returns the caller's own submissions in any state.
func (s *ReportService) ListMine(userID uuid.UUID) ([]LostPetReport, error) {
	var reports []LostPetReport
	err := s.db.Where("submitted_by = ?", userID).
		Order("submitted_at DESC").
		Find(&reports).Error
	return reports, err
}

// Approve marks the report approved and records the reviewer. Re-approving
// converges to the same row state; prior status is not checked.
func (s *ReportService) Approve(id, reviewerID uuid.UUID) error {
	result := s.db.Model(&LostPetReport{}).
		Where("id = ?", id).
		Updates(moderation.ApproveUpdates(reviewerID, time.Now().UTC()))
	if result.Error != nil {
		return fmt.Errorf("failed to approve report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}

// Reject marks the report rejected with an optional trimmed reason. Also
// serves to take down an approved report.
func (s *ReportService) Reject(id, reviewerID uuid.UUID, reason string) error {
	result := s.db.Model(&LostPetReport{}).
		Where("id = ?", id).
		Updates(moderation.RejectUpdates(reviewerID, reason, time.Now().UTC()))
	if result.Error != nil {
		return fmt.Errorf("failed to reject report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}

// Remove soft-deletes a report so it disappears from every listing,
// including the admin panel. Distinct from rejection in the audit trail.
func (s *ReportService) Remove(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&LostPetReport{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}

func toPublicReport(r *LostPetReport, now time.Time) PublicReport {
	return PublicReport{
		ID:               r.ID,
		PetName:          r.PetName,
		Species:          r.Species,
		Breed:            r.Breed,
		Gender:           r.Gender,
		Color:            r.Color,
		AgeYears:         r.AgeYears,
		Description:      joinDescription(r.Description, r.DistinctiveMarks),
		LastSeenLocation: r.LastSeenLocation,
		LastSeenLabel:    TimeSinceLabel(r.LastSeenAt, now),
		ImageURL:         r.ImageURL,
		ContactName:      r.ContactName,
		ContactPhone:     r.ContactPhone,
		SubmittedAt:      r.SubmittedAt,
	}
}

func joinDescription(description, marks *string) string {
	parts := make([]string, 0, 2)
	if description != nil {
		parts = append(parts, *description)
	}
	if marks != nil {
		parts = append(parts, "Señas particulares: "+*marks)
	}
	return strings.Join(parts, " ")
}

// TimeSinceLabel buckets the elapsed time since the pet was last seen into a
// Spanish display label.
func TimeSinceLabel(from, now time.Time) string {
	elapsed := now.Sub(from)
	if elapsed < 0 {
		elapsed = 0
	}

	minutes := int(elapsed.Minutes())
	hours := int(elapsed.Hours())
	days := hours / 24
	months := days / 30

	switch {
	case minutes < 1:
		return "Hace menos de un minuto"
	case minutes == 1:
		return "Hace 1 minuto"
	case minutes < 60:
		return fmt.Sprintf("Hace %d minutos", minutes)
	case hours == 1:
		return "Hace 1 hora"
	case hours < 24:
		return fmt.Sprintf("Hace %d horas", hours)
	case days == 1:
		return "Hace 1 día"
	case days < 30:
		return fmt.Sprintf("Hace %d días", days)
	case months == 1:
		return "Hace 1 mes"
	default:
		return fmt.Sprintf("Hace %d meses", months)
	}
}

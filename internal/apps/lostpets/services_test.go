package lostpets

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mascotassj/backend/internal/moderation"
	"github.com/mascotassj/backend/internal/storage"
	"github.com/mascotassj/backend/internal/testutil"
)

type fakeStore struct {
	uploads   []string
	deletes   []string
	uploadErr error
}

func (f *fakeStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads = append(f.uploads, key)
	return "https://cdn.example.com/" + key, nil
}

func (f *fakeStore) Delete(ctx context.Context, key string) error {
	f.deletes = append(f.deletes, key)
	return nil
}

func testImage() *storage.File {
	return &storage.File{
		Name:        "photo.jpg",
		ContentType: "image/jpeg",
		Size:        1024,
		Body:        strings.NewReader("not a real jpeg"),
	}
}

func validInput() SubmitInput {
	return SubmitInput{
		PetName:          "Luna",
		Species:          "Perro",
		Breed:            "Mestizo",
		Gender:           "Hembra",
		Color:            "Marrón",
		Description:      "Muy cariñosa, tiene collar rojo",
		LastSeenLocation: "Plaza 25 de Mayo",
		LastSeenAt:       time.Now().Add(-2 * time.Hour),
		ContactName:      "María",
		ContactPhone:     "264-555-0101",
	}
}

func TestSubmitValidation(t *testing.T) {
	service := NewReportService(nil, &fakeStore{}, moderation.NewContentFilter())
	submitter := uuid.New()

	t.Run("missing image", func(t *testing.T) {
		_, err := service.Submit(context.Background(), &submitter, validInput(), nil)
		if !errors.Is(err, ErrImageRequired) {
			t.Errorf("err = %v, want ErrImageRequired", err)
		}
	})

	t.Run("oversized image", func(t *testing.T) {
		img := testImage()
		img.Size = storage.MaxImageSize + 1
		_, err := service.Submit(context.Background(), &submitter, validInput(), img)
		if err == nil || !strings.Contains(err.Error(), "10MB") {
			t.Errorf("err = %v, want size error", err)
		}
	})

	t.Run("unsupported type", func(t *testing.T) {
		img := testImage()
		img.ContentType = "application/pdf"
		_, err := service.Submit(context.Background(), &submitter, validInput(), img)
		if err == nil || !strings.Contains(err.Error(), "unsupported") {
			t.Errorf("err = %v, want type error", err)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		in := validInput()
		in.PetName = "   "
		_, err := service.Submit(context.Background(), &submitter, in, testImage())
		if err == nil || !strings.Contains(err.Error(), "pet_name") {
			t.Errorf("err = %v, want pet_name required error", err)
		}
	})

	t.Run("missing last seen date", func(t *testing.T) {
		in := validInput()
		in.LastSeenAt = time.Time{}
		_, err := service.Submit(context.Background(), &submitter, in, testImage())
		if err == nil || !strings.Contains(err.Error(), "last_seen_at") {
			t.Errorf("err = %v, want last_seen_at required error", err)
		}
	})

	t.Run("filtered description", func(t *testing.T) {
		in := validInput()
		in.Description = "ver fotos en https://fotos.example.com"
		_, err := service.Submit(context.Background(), &submitter, in, testImage())
		if err == nil || !strings.Contains(err.Error(), "links") {
			t.Errorf("err = %v, want url rejection", err)
		}
	})

	t.Run("upload failure aborts before insert", func(t *testing.T) {
		store := &fakeStore{uploadErr: errors.New("bucket unavailable")}
		svc := NewReportService(nil, store, moderation.NewContentFilter())
		_, err := svc.Submit(context.Background(), &submitter, validInput(), testImage())
		if err == nil || !strings.Contains(err.Error(), "upload failed") {
			t.Errorf("err = %v, want upload error", err)
		}
		if len(store.deletes) != 0 {
			t.Errorf("deletes = %v, want none", store.deletes)
		}
	})
}

func TestJoinDescription(t *testing.T) {
	desc := "Perrita mestiza"
	marks := "cicatriz en la oreja"

	tests := []struct {
		name        string
		description *string
		marks       *string
		want        string
	}{
		{"both", &desc, &marks, "Perrita mestiza Señas particulares: cicatriz en la oreja"},
		{"description only", &desc, nil, "Perrita mestiza"},
		{"marks only", nil, &marks, "Señas particulares: cicatriz en la oreja"},
		{"neither", nil, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinDescription(tt.description, tt.marks); got != tt.want {
				t.Errorf("joinDescription() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTimeSinceLabel(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"seconds", 30 * time.Second, "Hace menos de un minuto"},
		{"future clamps to zero", -time.Hour, "Hace menos de un minuto"},
		{"one minute", 90 * time.Second, "Hace 1 minuto"},
		{"minutes", 45 * time.Minute, "Hace 45 minutos"},
		{"one hour", 1*time.Hour + 10*time.Minute, "Hace 1 hora"},
		{"hours", 13 * time.Hour, "Hace 13 horas"},
		{"one day", 30 * time.Hour, "Hace 1 día"},
		{"days", 5 * 24 * time.Hour, "Hace 5 días"},
		{"one month", 35 * 24 * time.Hour, "Hace 1 mes"},
		{"months", 95 * 24 * time.Hour, "Hace 3 meses"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeSinceLabel(now.Add(-tt.elapsed), now); got != tt.want {
				t.Errorf("TimeSinceLabel(-%v) = %q, want %q", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestModerationFlow(t *testing.T) {
	db := testutil.DB(t, &LostPetReport{})
	store := &fakeStore{}
	service := NewReportService(db, store, moderation.NewContentFilter())
	submitter := uuid.New()
	reviewer := uuid.New()

	report, err := service.Submit(context.Background(), &submitter, validInput(), testImage())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if report.Status != moderation.StatusPending {
		t.Fatalf("new report status = %q, want pending", report.Status)
	}

	// Pending reports are invisible publicly.
	public, err := service.ListPublic()
	if err != nil {
		t.Fatalf("ListPublic failed: %v", err)
	}
	if len(public) != 0 {
		t.Fatalf("public listing has %d reports before approval", len(public))
	}

	// But visible to the submitter.
	mine, err := service.ListMine(submitter)
	if err != nil {
		t.Fatalf("ListMine failed: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("ListMine returned %d reports, want 1", len(mine))
	}

	if err := service.Approve(report.ID, reviewer); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	public, _ = service.ListPublic()
	if len(public) != 1 {
		t.Fatalf("public listing has %d reports after approval, want 1", len(public))
	}

	// Approving again converges to the same state.
	if err := service.Approve(report.ID, reviewer); err != nil {
		t.Fatalf("re-Approve failed: %v", err)
	}

	// Rejecting an approved report takes it down.
	if err := service.Reject(report.ID, reviewer, "dato de contacto inválido"); err != nil {
		t.Fatalf("Reject failed: %v", err)
	}

	public, _ = service.ListPublic()
	if len(public) != 0 {
		t.Fatalf("public listing has %d reports after rejection, want 0", len(public))
	}

	var stored LostPetReport
	if err := db.First(&stored, "id = ?", report.ID).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if stored.Status != moderation.StatusRejected {
		t.Errorf("status = %q, want rejected", stored.Status)
	}
	if stored.RejectionReason == nil || *stored.RejectionReason != "dato de contacto inválido" {
		t.Errorf("rejection reason = %v, want recorded", stored.RejectionReason)
	}

	// Re-approval clears the rejection reason.
	if err := service.Approve(report.ID, reviewer); err != nil {
		t.Fatalf("Approve after reject failed: %v", err)
	}
	if err := db.First(&stored, "id = ?", report.ID).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if stored.RejectionReason != nil {
		t.Errorf("rejection reason = %q after re-approval, want nil", *stored.RejectionReason)
	}

	// Remove hides the report everywhere, including from the owner.
	if err := service.Remove(report.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	mine, _ = service.ListMine(submitter)
	if len(mine) != 0 {
		t.Errorf("ListMine returned %d reports after removal, want 0", len(mine))
	}

	// Moderation on a removed report reports not found.
	if err := service.Approve(report.ID, reviewer); !errors.Is(err, ErrReportNotFound) {
		t.Errorf("Approve after removal err = %v, want ErrReportNotFound", err)
	}
}

func TestListByStatusRejectsUnknown(t *testing.T) {
	service := NewReportService(nil, &fakeStore{}, moderation.NewContentFilter())
	_, _, err := service.ListByStatus(moderation.Status("bogus"), 20, 0)
	if err == nil || !strings.Contains(err.Error(), "invalid status") {
		t.Errorf("err = %v, want invalid status error", err)
	}
}

func TestModerateMissingReport(t *testing.T) {
	db := testutil.DB(t, &LostPetReport{})
	service := NewReportService(db, &fakeStore{}, moderation.NewContentFilter())

	for name, fn := range map[string]func() error{
		"approve": func() error { return service.Approve(uuid.New(), uuid.New()) },
		"reject":  func() error { return service.Reject(uuid.New(), uuid.New(), "") },
		"remove":  func() error { return service.Remove(uuid.New()) },
	} {
		if err := fn(); !errors.Is(err, ErrReportNotFound) {
			t.Errorf("%s on missing id err = %v, want ErrReportNotFound", name, err)
		}
	}
}

package donations

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/mascotassj/backend/internal/moderation"
	"github.com/mascotassj/backend/internal/storage"
	"github.com/mascotassj/backend/internal/testutil"
)

type fakeStore struct{}

func (fakeStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	return "https://cdn.example.com/" + key, nil
}

func (fakeStore) Delete(ctx context.Context, key string) error { return nil }

func testImage() *storage.File {
	return &storage.File{
		Name:        "photo.webp",
		ContentType: "image/webp",
		Size:        4096,
		Body:        strings.NewReader("not a real webp"),
	}
}

func validInput() SubmitInput {
	return SubmitInput{
		Title:        "Cirugía para Toby",
		Beneficiary:  "Toby",
		Description:  "Necesita una cirugía de cadera tras un accidente",
		GoalAmount:   500000,
		BankAccount:  "alias.toby.vet",
		ContactName:  "Ana",
		ContactPhone: "264-555-0303",
	}
}

func TestPercentFunded(t *testing.T) {
	tests := []struct {
		name   string
		raised int64
		goal   int64
		want   int
	}{
		{"zero raised", 0, 100000, 0},
		{"half", 50000, 100000, 50},
		{"rounds down", 999, 100000, 0},
		{"full", 100000, 100000, 100},
		{"overfunded caps at 100", 150000, 100000, 100},
		{"zero goal", 50000, 0, 0},
		{"negative raised", -1, 100000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentFunded(tt.raised, tt.goal); got != tt.want {
				t.Errorf("PercentFunded(%d, %d) = %d, want %d", tt.raised, tt.goal, got, tt.want)
			}
		})
	}
}

func TestSubmitValidation(t *testing.T) {
	service := NewCampaignService(nil, fakeStore{}, moderation.NewContentFilter())
	submitter := uuid.New()

	t.Run("missing goal", func(t *testing.T) {
		in := validInput()
		in.GoalAmount = 0
		_, err := service.Submit(context.Background(), &submitter, in, testImage())
		if err == nil || !strings.Contains(err.Error(), "goal_amount") {
			t.Errorf("err = %v, want goal_amount error", err)
		}
	})

	t.Run("negative goal", func(t *testing.T) {
		in := validInput()
		in.GoalAmount = -100
		_, err := service.Submit(context.Background(), &submitter, in, testImage())
		if err == nil || !strings.Contains(err.Error(), "goal_amount") {
			t.Errorf("err = %v, want goal_amount error", err)
		}
	})

	t.Run("missing bank account", func(t *testing.T) {
		in := validInput()
		in.BankAccount = ""
		_, err := service.Submit(context.Background(), &submitter, in, testImage())
		if err == nil || !strings.Contains(err.Error(), "bank_account") {
			t.Errorf("err = %v, want bank_account error", err)
		}
	})

	t.Run("filtered title", func(t *testing.T) {
		in := validInput()
		in.Title = "gran estafa solidaria"
		_, err := service.Submit(context.Background(), &submitter, in, testImage())
		if err == nil || !strings.Contains(err.Error(), "inappropriate") {
			t.Errorf("err = %v, want language rejection", err)
		}
	})
}

func TestCampaignLifecycle(t *testing.T) {
	db := testutil.DB(t, &DonationCampaign{})
	service := NewCampaignService(db, fakeStore{}, moderation.NewContentFilter())
	submitter := uuid.New()
	reviewer := uuid.New()

	campaign, err := service.Submit(context.Background(), &submitter, validInput(), testImage())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if campaign.RaisedAmount != 0 {
		t.Fatalf("new campaign raised = %d, want 0", campaign.RaisedAmount)
	}

	if err := service.Approve(campaign.ID, reviewer); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	if err := service.UpdateRaised(campaign.ID, 250000); err != nil {
		t.Fatalf("UpdateRaised failed: %v", err)
	}
	if err := service.UpdateRaised(campaign.ID, -1); err == nil {
		t.Error("UpdateRaised accepted a negative amount")
	}

	public, err := service.ListPublic()
	if err != nil {
		t.Fatalf("ListPublic failed: %v", err)
	}
	if len(public) != 1 {
		t.Fatalf("public campaign count = %d, want 1", len(public))
	}
	if public[0].PercentFunded != 50 {
		t.Errorf("percent funded = %d, want 50", public[0].PercentFunded)
	}

	if err := service.UpdateRaised(uuid.New(), 1); !errors.Is(err, ErrCampaignNotFound) {
		t.Errorf("UpdateRaised on missing id err = %v, want ErrCampaignNotFound", err)
	}
}

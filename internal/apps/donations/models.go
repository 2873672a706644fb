package donations

import (
	"time"

	"github.com/google/uuid"
	"github.com/mascotassj/backend/internal/moderation"
	"gorm.io/gorm"
)

// DonationCampaign is a fundraiser for a pet in need, usually veterinary
// costs. Amounts are in whole pesos.
type DonationCampaign struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title        string    `gorm:"size:150;not null" json:"title"`
	Beneficiary  string    `gorm:"size:100;not null" json:"beneficiary"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	GoalAmount   int64     `gorm:"not null" json:"goal_amount"`
	RaisedAmount int64     `gorm:"not null;default:0" json:"raised_amount"`
	BankAccount  string    `gorm:"size:100;not null" json:"bank_account"`
	ContactName  string    `gorm:"size:100;not null" json:"contact_name"`
	ContactPhone string    `gorm:"size:30;not null" json:"contact_phone"`
	ImageURL     string    `gorm:"size:500;not null" json:"image_url"`

	moderation.Review `gorm:"embedded"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (DonationCampaign) TableName() string { return "donation_campaigns" }

// --- DTO types embedded in this package ---

type SubmitInput struct {
	Title        string
	Beneficiary  string
	Description  string
	GoalAmount   int64
	BankAccount  string
	ContactName  string
	ContactPhone string
}

// PublicCampaign is the display shape for the public donations page.
type PublicCampaign struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Beneficiary   string    `json:"beneficiary"`
	Description   string    `json:"description"`
	GoalAmount    int64     `json:"goal_amount"`
	RaisedAmount  int64     `json:"raised_amount"`
	PercentFunded int       `json:"percent_funded"`
	BankAccount   string    `json:"bank_account"`
	ContactName   string    `json:"contact_name"`
	ContactPhone  string    `json:"contact_phone"`
	ImageURL      string    `json:"image_url"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

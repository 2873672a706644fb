package lostpets

import (
	"time"

	"github.com/google/uuid"
	"github.com/mascotassj/backend/internal/moderation"
	"gorm.io/gorm"
)

// LostPetReport is a community report of a missing pet. New reports are
// pending until an admin reviews them; only approved reports reach the public
// listing.
type LostPetReport struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PetName          string    `gorm:"size:100;not null" json:"pet_name"`
	Species          string    `gorm:"size:50;not null" json:"species"`
	Breed            string    `gorm:"size:100;not null" json:"breed"`
	Gender           string    `gorm:"size:20;not null" json:"gender"`
	Color            string    `gorm:"size:100;not null" json:"color"`
	AgeYears         *int      `json:"age_years,omitempty"`
	DistinctiveMarks *string   `gorm:"size:500" json:"distinctive_marks,omitempty"`
	Description      *string   `gorm:"type:text" json:"description,omitempty"`
	LastSeenLocation string    `gorm:"size:255;not null" json:"last_seen_location"`
	LastSeenAt       time.Time `gorm:"not null" json:"last_seen_at"`
	ContactName      string    `gorm:"size:100;not null" json:"contact_name"`
	ContactPhone     string    `gorm:"size:30;not null" json:"contact_phone"`
	ImageURL         string    `gorm:"size:500;not null" json:"image_url"`

	moderation.Review `gorm:"embedded"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (LostPetReport) TableName() string { return "lost_pet_reports" }

// --- DTO types embedded in this package ---

// SubmitInput is the parsed submission form. Required fields are re-checked
// in the service; the form is not trusted.
type SubmitInput struct {
	PetName          string
	Species          string
	Breed            string
	Gender           string
	Color            string
	AgeYears         *int
	DistinctiveMarks string
	Description      string
	LastSeenLocation string
	LastSeenAt       time.Time
	ContactName      string
	ContactPhone     string
}

// PublicReport is the display shape served to the public listing. Moderation
// fields are omitted; inclusion implies approval.
type PublicReport struct {
	ID               uuid.UUID `json:"id"`
	PetName          string    `json:"pet_name"`
	Species          string    `json:"species"`
	Breed            string    `json:"breed"`
	Gender           string    `json:"gender"`
	Color            string    `json:"color"`
	AgeYears         *int      `json:"age_years,omitempty"`
	Description      string    `json:"description"`
	LastSeenLocation string    `json:"last_seen_location"`
	LastSeenLabel    string    `json:"last_seen_label"`
	ImageURL         string    `json:"image_url"`
	ContactName      string    `json:"contact_name"`
	ContactPhone     string    `json:"contact_phone"`
	SubmittedAt      time.Time `json:"submitted_at"`
}

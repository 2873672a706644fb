package adoptions

import (
	"time"

	"github.com/google/uuid"
	"github.com/mascotassj/backend/internal/moderation"
	"gorm.io/gorm"
)

// AdoptionListing is a pet offered for adoption.
type AdoptionListing struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PetName      string    `gorm:"size:100;not null" json:"pet_name"`
	Species      string    `gorm:"size:50;not null" json:"species"`
	Breed        string    `gorm:"size:100;not null" json:"breed"`
	Gender       string    `gorm:"size:20;not null" json:"gender"`
	Color        string    `gorm:"size:100;not null" json:"color"`
	AgeYears     *int      `json:"age_years,omitempty"`
	Size         *string   `gorm:"size:20" json:"size,omitempty"`
	Description  *string   `gorm:"type:text" json:"description,omitempty"`
	Vaccinated   bool      `gorm:"default:false" json:"vaccinated"`
	Sterilized   bool      `gorm:"default:false" json:"sterilized"`
	Location     string    `gorm:"size:255;not null" json:"location"`
	ContactName  string    `gorm:"size:100;not null" json:"contact_name"`
	ContactPhone string    `gorm:"size:30;not null" json:"contact_phone"`
	ImageURL     string    `gorm:"size:500;not null" json:"image_url"`

	moderation.Review `gorm:"embedded"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (AdoptionListing) TableName() string { return "adoption_listings" }

// --- DTO types embedded in this package ---

type SubmitInput struct {
	PetName      string
	Species      string
	Breed        string
	Gender       string
	Color        string
	AgeYears     *int
	Size         string
	Description  string
	Vaccinated   bool
	Sterilized   bool
	Location     string
	ContactName  string
	ContactPhone string
}

// PublicListing is the display shape for the public adoption page. Location
// is prefixed with the city name so listings read consistently.
type PublicListing struct {
	ID           uuid.UUID `json:"id"`
	PetName      string    `json:"pet_name"`
	Species      string    `json:"species"`
	Breed        string    `json:"breed"`
	Gender       string    `json:"gender"`
	Color        string    `json:"color"`
	AgeYears     *int      `json:"age_years,omitempty"`
	Size         *string   `json:"size,omitempty"`
	Description  string    `json:"description"`
	Vaccinated   bool      `json:"vaccinated"`
	Sterilized   bool      `json:"sterilized"`
	Location     string    `json:"location"`
	ImageURL     string    `json:"image_url"`
	ContactName  string    `json:"contact_name"`
	ContactPhone string    `json:"contact_phone"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

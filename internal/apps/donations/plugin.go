package donations

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mascotassj/backend/internal/config"
	"github.com/mascotassj/backend/internal/moderation"
	"github.com/mascotassj/backend/internal/storage"
	"gorm.io/gorm"
)

type Plugin struct {
	store  storage.Store
	filter *moderation.ContentFilter
}

func New(store storage.Store, filter *moderation.ContentFilter) *Plugin {
	return &Plugin{store: store, filter: filter}
}

func (p *Plugin) ID() string { return "donations" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{
		&DonationCampaign{},
	}
}

func (p *Plugin) RegisterPublicRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewCampaignHandler(NewCampaignService(db, p.store, p.filter))

	router.Get("/campaigns", handler.List)
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewCampaignHandler(NewCampaignService(db, p.store, p.filter))

	router.Post("/campaigns", handler.Submit)
	router.Get("/campaigns/mine", handler.Mine)
}

func (p *Plugin) RegisterAdminRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewCampaignHandler(NewCampaignService(db, p.store, p.filter))

	router.Get("/campaigns", handler.AdminList)
	router.Put("/campaigns/:id/approve", handler.Approve)
	router.Put("/campaigns/:id/reject", handler.Reject)
	router.Put("/campaigns/:id/raised", handler.UpdateRaised)
	router.Delete("/campaigns/:id", handler.Remove)
}

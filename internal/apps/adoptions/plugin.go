package adoptions

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

func (p *Plugin) ID() string { return "adoptions" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{
		&AdoptionListing{},
	}
}

func (p *Plugin) RegisterPublicRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewListingHandler(NewListingService(db, p.store, p.filter, cfg.CityName))

	router.Get("/adoptions", handler.List)
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewListingHandler(NewListingService(db, p.store, p.filter, cfg.CityName))

	router.Post("/adoptions", handler.Submit)
	router.Get("/adoptions/mine", handler.Mine)
}

func (p *Plugin) RegisterAdminRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewListingHandler(NewListingService(db, p.store, p.filter, cfg.CityName))

	router.Get("/adoptions", handler.AdminList)
	router.Put("/adoptions/:id/approve", handler.Approve)
	router.Put("/adoptions/:id/reject", handler.Reject)
	router.Delete("/adoptions/:id", handler.Remove)
}

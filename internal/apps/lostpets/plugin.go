package lostpets

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

func (p *Plugin) ID() string { return "lostpets" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{
		&LostPetReport{},
	}
}

func (p *Plugin) RegisterPublicRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewReportHandler(NewReportService(db, p.store, p.filter))

	router.Get("/lost-pets", handler.List)
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewReportHandler(NewReportService(db, p.store, p.filter))

	router.Post("/lost-pets", handler.Submit)
	router.Get("/lost-pets/mine", handler.Mine)
}

func (p *Plugin) RegisterAdminRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewReportHandler(NewReportService(db, p.store, p.filter))

	router.Get("/lost-pets", handler.AdminList)
	router.Put("/lost-pets/:id/approve", handler.Approve)
	router.Put("/lost-pets/:id/reject", handler.Reject)
	router.Delete("/lost-pets/:id", handler.Remove)
}

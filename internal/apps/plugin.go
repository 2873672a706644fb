package apps

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mascotassj/backend/internal/config"
	"gorm.io/gorm"
)

// Plugin defines the interface every content domain must implement.
type Plugin interface {
	// ID returns the unique domain identifier.
	ID() string

	// Models returns the list of GORM model pointers for AutoMigrate.
	Models() []interface{}

	// RegisterRoutes mounts authenticated routes (submission, own
	// submissions) on the given Fiber group. JWT middleware is already
	// applied.
	RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config)
}

// PublicPlugin extends Plugin with unauthenticated routes (approved
// listings).
type PublicPlugin interface {
	Plugin

	// RegisterPublicRoutes mounts public routes on the given Fiber group.
	RegisterPublicRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config)
}

// AdminPlugin extends Plugin with moderation route registration.
type AdminPlugin interface {
	Plugin

	// RegisterAdminRoutes mounts admin-only routes on the given Fiber group.
	// The group has both JWT and Admin middleware applied.
	RegisterAdminRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config)
}

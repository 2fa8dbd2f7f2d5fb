// Package api exposes the JSON REST surface over the content stores.
package api

import (
	"time"

	"gorm.io/gorm"

	"inkwell/cache"
	"inkwell/config"
	"inkwell/database"
)

type API struct {
	posts      *database.PostStore
	categories *database.CategoryStore
	users      *database.UserStore
	contacts   *database.ContactStore
	cache      *cache.Cache
	cfg        *config.Config
	started    time.Time
}

func New(db *gorm.DB, c *cache.Cache, cfg *config.Config) *API {
	return &API{
		posts:      database.NewPostStore(db),
		categories: database.NewCategoryStore(db),
		users:      database.NewUserStore(db),
		contacts:   database.NewContactStore(db),
		cache:      c,
		cfg:        cfg,
		started:    time.Now(),
	}
}

package web

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/rook-computer/starfield/internal/raster"
	"github.com/rook-computer/starfield/internal/starfield"
)

const defaultRenderTTL = 10 * time.Minute

// RenderedImage is an encoded starfield kept so the image a user saw is the
// one they download.
type RenderedImage struct {
	ID      string
	Seed    uint64
	Width   int
	Height  int
	Format  raster.Format
	Config  starfield.Config
	Summary starfield.Summary
	Data    []byte
}

// RenderCache keeps encoded renders in memory for a limited time.
type RenderCache struct {
	items *gocache.Cache
}

func NewRenderCache(ttl time.Duration) *RenderCache {
	if ttl <= 0 {
		ttl = defaultRenderTTL
	}
	return &RenderCache{items: gocache.New(ttl, 2*ttl)}
}

func (c *RenderCache) Put(img RenderedImage) {
	c.items.Set(img.ID, img, gocache.DefaultExpiration)
}

func (c *RenderCache) Get(id string) (RenderedImage, bool) {
	v, ok := c.items.Get(id)
	if !ok {
		return RenderedImage{}, false
	}
	img, ok := v.(RenderedImage)
	return img, ok
}

func (c *RenderCache) Len() int { return c.items.ItemCount() }

package web

import (
	"testing"
	"time"
)

func TestRenderCache(t *testing.T) {
	c := NewRenderCache(time.Minute)
	c.Put(RenderedImage{ID: "a", Seed: 1, Data: []byte{1, 2}})

	got, ok := c.Get("a")
	if !ok || got.Seed != 1 || len(got.Data) != 2 {
		t.Fatalf("Get(a) = %+v, %v", got, ok)
	}
	if _, ok := c.Get("b"); ok {
		t.Error("Get(b) found a missing entry")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d", c.Len())
	}
}

func TestRenderCacheExpires(t *testing.T) {
	c := NewRenderCache(20 * time.Millisecond)
	c.Put(RenderedImage{ID: "a"})
	time.Sleep(40 * time.Millisecond)
	if _, ok := c.Get("a"); ok {
		t.Error("entry survived its TTL")
	}
}

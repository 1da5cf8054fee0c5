package assets

// Cache holds loaded textures by key.
type Cache struct {
	textures map[string]*Texture
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{textures: make(map[string]*Texture)}
}

// Texture returns the texture stored under key.
func (c *Cache) Texture(key string) (*Texture, bool) {
	t, ok := c.textures[key]
	return t, ok
}

// Size returns the frame size of a texture in world units.
// Physics uses it to size bodies created from a texture key.
func (c *Cache) Size(key string) (w, h float64, ok bool) {
	t, ok := c.textures[key]
	if !ok {
		return 0, 0, false
	}
	return float64(t.FrameWidth), float64(t.FrameHeight), true
}

// Len returns the number of loaded textures.
func (c *Cache) Len() int {
	return len(c.textures)
}

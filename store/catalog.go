package store

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/cedarlux/cedar_lux_site/backend/models"
)

// Catalog owns the ordered property list. Newest listings come first. Every
// mutation rewrites the full snapshot through the durable store before
// returning; a failed write is logged and the in-memory state stands.
type Catalog struct {
	mu    sync.Mutex
	db    DurableStore
	props []models.Property
}

// NewCatalog loads the persisted catalog, falling back to seed when the key
// is absent or the stored blob does not parse.
func NewCatalog(db DurableStore, seed []models.Property) *Catalog {
	c := &Catalog{db: db}

	var saved []models.Property
	ok, err := db.Load(PropertiesKey, &saved)
	if err != nil {
		log.Warn().Err(err).Msg("Stored property catalog unreadable, using seed listings")
	}
	if err == nil && ok {
		c.props = saved
	} else {
		c.props = make([]models.Property, len(seed))
		for i, p := range seed {
			c.props[i] = p.Clone()
		}
	}
	return c
}

// All returns a copy of the catalog in order.
func (c *Catalog) All() []models.Property {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Property, len(c.props))
	for i, p := range c.props {
		out[i] = p.Clone()
	}
	return out
}

// Get returns the property with the given id.
func (c *Catalog) Get(id string) (models.Property, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.props {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return models.Property{}, ErrNotFound
}

// Add prepends a listing. A missing id gets a generated one; a
// caller-supplied id is accepted as-is unless it collides with an existing
// record. Returns the stored record.
func (c *Catalog) Add(p models.Property) (models.Property, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	} else {
		for _, existing := range c.props {
			if existing.ID == p.ID {
				return models.Property{}, ErrDuplicateID
			}
		}
	}

	c.props = append([]models.Property{p.Clone()}, c.props...)
	c.persist()
	return p, nil
}

// Update replaces every field of the record matching p.ID, keeping its
// position. Returns ErrNotFound when no record matches; it never inserts.
func (c *Catalog) Update(p models.Property) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.props {
		if existing.ID == p.ID {
			c.props[i] = p.Clone()
			c.persist()
			return nil
		}
	}
	return ErrNotFound
}

// Delete removes the record with the given id. Deleting an absent id is a
// no-op; confirmation is a UI concern.
func (c *Catalog) Delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.props {
		if existing.ID == id {
			c.props = append(c.props[:i], c.props[i+1:]...)
			c.persist()
			return
		}
	}
}

// persist writes the full snapshot. Callers hold the lock, which keeps
// writes to the key in issue order.
func (c *Catalog) persist() {
	if err := c.db.Save(PropertiesKey, c.props); err != nil {
		log.Error().Err(err).Msg("Failed to persist property catalog")
	}
}

package store

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/cedarlux/cedar_lux_site/backend/models"
)

// Settings owns the site-wide configuration singleton.
//
// Loading merges rather than replaces: the persisted blob is decoded onto a
// copy of the defaults, so a field added in a later release keeps its default
// value when an older blob omits it instead of coming back zeroed.
type Settings struct {
	mu  sync.Mutex
	db  DurableStore
	cur models.SiteSettings
}

func NewSettings(db DurableStore, defaults models.SiteSettings) *Settings {
	s := &Settings{db: db, cur: defaults.Clone()}

	merged := defaults.Clone()
	ok, err := db.Load(SettingsKey, &merged)
	if err != nil {
		log.Warn().Err(err).Msg("Stored site settings unreadable, using defaults")
		return s
	}
	if ok {
		s.cur = merged
	}
	return s
}

// Get returns a copy of the current settings record.
func (s *Settings) Get() models.SiteSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.Clone()
}

// Replace overwrites the whole record and persists it. The admin save action
// submits an entire edited copy, so there is no field-level merge here.
func (s *Settings) Replace(next models.SiteSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = next.Clone()
	s.persist()
}

// AddActivity appends an activity, generating an id when absent, and returns
// the stored entry.
func (s *Settings) AddActivity(a models.Activity) models.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	s.cur.Activities = append(s.cur.Activities, a)
	s.persist()
	return a
}

// UpdateActivity merges the non-nil patch fields into the activity with the
// given id, preserving list order.
func (s *Settings) UpdateActivity(id string, patch models.ActivityPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.cur.Activities {
		if a.ID != id {
			continue
		}
		if patch.Icon != nil {
			a.Icon = *patch.Icon
		}
		if patch.Title != nil {
			a.Title = *patch.Title
		}
		if patch.Description != nil {
			a.Description = *patch.Description
		}
		if patch.Highlights != nil {
			a.Highlights = append([]string(nil), *patch.Highlights...)
		}
		s.cur.Activities[i] = a
		s.persist()
		return nil
	}
	return ErrNotFound
}

// RemoveActivity deletes the activity with the given id; absent ids are a
// no-op.
func (s *Settings) RemoveActivity(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.cur.Activities {
		if a.ID == id {
			s.cur.Activities = append(s.cur.Activities[:i], s.cur.Activities[i+1:]...)
			s.persist()
			return
		}
	}
}

// AddLocalSpot appends a local spot, generating an id when absent, and
// returns the stored entry.
func (s *Settings) AddLocalSpot(spot models.LocalSpot) models.LocalSpot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if spot.ID == "" {
		spot.ID = uuid.NewString()
	}
	s.cur.LocalSpots = append(s.cur.LocalSpots, spot)
	s.persist()
	return spot
}

// UpdateLocalSpot merges the non-nil patch fields into the spot with the
// given id, preserving list order.
func (s *Settings) UpdateLocalSpot(id string, patch models.LocalSpotPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, spot := range s.cur.LocalSpots {
		if spot.ID != id {
			continue
		}
		if patch.Category != nil {
			spot.Category = *patch.Category
		}
		if patch.Title != nil {
			spot.Title = *patch.Title
		}
		if patch.Description != nil {
			spot.Description = *patch.Description
		}
		if patch.Image != nil {
			spot.Image = *patch.Image
		}
		if patch.IsFeatured != nil {
			spot.IsFeatured = *patch.IsFeatured
		}
		s.cur.LocalSpots[i] = spot
		s.persist()
		return nil
	}
	return ErrNotFound
}

// RemoveLocalSpot deletes the spot with the given id; absent ids are a no-op.
func (s *Settings) RemoveLocalSpot(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, spot := range s.cur.LocalSpots {
		if spot.ID == id {
			s.cur.LocalSpots = append(s.cur.LocalSpots[:i], s.cur.LocalSpots[i+1:]...)
			s.persist()
			return
		}
	}
}

func (s *Settings) persist() {
	if err := s.db.Save(SettingsKey, s.cur); err != nil {
		log.Error().Err(err).Msg("Failed to persist site settings")
	}
}

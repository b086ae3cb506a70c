package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cedarlux/cedar_lux_site/backend/models"
)

func TestSettingsDefaultsWhenAbsent(t *testing.T) {
	settings := NewSettings(NewMemStore(), models.DefaultSettings())

	got := settings.Get()
	assert.Equal(t, "Cedar Lux Properties", got.CompanyName)
	assert.Len(t, got.Activities, 3)
}

func TestSettingsMergeOnLoad(t *testing.T) {
	mem := NewMemStore()
	// A blob written by an older release that knows only two fields.
	mem.Put(SettingsKey, []byte(`{"companyName":"Custom Co","phone":"555-0000"}`))

	settings := NewSettings(mem, models.DefaultSettings())
	got := settings.Get()

	assert.Equal(t, "Custom Co", got.CompanyName)
	assert.Equal(t, "555-0000", got.Phone)
	// Fields absent from the old blob keep their defaults.
	assert.Equal(t, "Crafting Legacies on the Waterfront.", got.HeroHeadline)
	assert.Len(t, got.Neighborhoods, 5)
}

func TestSettingsCorruptBlobFallsBackToDefaults(t *testing.T) {
	mem := NewMemStore()
	mem.Put(SettingsKey, []byte("]["))

	settings := NewSettings(mem, models.DefaultSettings())
	assert.Equal(t, "Cedar Lux Properties", settings.Get().CompanyName)
}

func TestSettingsReplaceRoundTrip(t *testing.T) {
	mem := NewMemStore()

	edited := models.DefaultSettings()
	edited.CompanyName = "Lakeview Legacy Homes"
	edited.Neighborhoods = []string{"Long Cove"}
	edited.ExternalScripts = "<script>console.log('hi')</script>"

	settings := NewSettings(mem, models.DefaultSettings())
	settings.Replace(edited)

	reloaded := NewSettings(mem, models.DefaultSettings())
	assert.Equal(t, edited, reloaded.Get())
}

func TestSettingsExternalScriptsReplacedWholesale(t *testing.T) {
	settings := NewSettings(NewMemStore(), models.DefaultSettings())

	first := settings.Get()
	first.ExternalScripts = "<script src=\"a.js\"></script>"
	settings.Replace(first)

	second := settings.Get()
	second.ExternalScripts = "<script src=\"b.js\"></script>"
	settings.Replace(second)

	assert.Equal(t, "<script src=\"b.js\"></script>", settings.Get().ExternalScripts)
}

func TestActivityAddGeneratesID(t *testing.T) {
	settings := NewSettings(NewMemStore(), models.DefaultSettings())

	stored := settings.AddActivity(models.Activity{Icon: models.IconAnchor, Title: "Marina Days"})
	assert.NotEmpty(t, stored.ID)

	got := settings.Get().Activities
	require.Len(t, got, 4)
	assert.Equal(t, "Marina Days", got[3].Title)
}

func TestActivityPatchMergesPartialFields(t *testing.T) {
	settings := NewSettings(NewMemStore(), models.DefaultSettings())

	title := "Water Sports Redux"
	err := settings.UpdateActivity("1", models.ActivityPatch{Title: &title})
	require.NoError(t, err)

	got := settings.Get().Activities
	assert.Equal(t, "Water Sports Redux", got[0].Title)
	// Untouched fields survive the patch.
	assert.Equal(t, models.IconWaves, got[0].Icon)
	assert.Equal(t, []string{"Private Boat Slips", "Sunset Cruising"}, got[0].Highlights)
	// Untouched entries keep their order.
	assert.Equal(t, "2", got[1].ID)
	assert.Equal(t, "3", got[2].ID)
}

func TestActivityPatchUnknownID(t *testing.T) {
	settings := NewSettings(NewMemStore(), models.DefaultSettings())

	title := "Ghost"
	err := settings.UpdateActivity("missing", models.ActivityPatch{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActivityRemovePreservesOrder(t *testing.T) {
	settings := NewSettings(NewMemStore(), models.DefaultSettings())

	settings.RemoveActivity("2")
	got := settings.Get().Activities
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	// Removing again is a no-op.
	settings.RemoveActivity("2")
	assert.Len(t, settings.Get().Activities, 2)
}

func TestLocalSpotHelpers(t *testing.T) {
	settings := NewSettings(NewMemStore(), models.DefaultSettings())

	stored := settings.AddLocalSpot(models.LocalSpot{Category: models.CategoryAttraction, Title: "Purtis Creek State Park"})
	assert.NotEmpty(t, stored.ID)

	featured := true
	err := settings.UpdateLocalSpot(stored.ID, models.LocalSpotPatch{IsFeatured: &featured})
	require.NoError(t, err)

	spots := settings.Get().LocalSpots
	require.Len(t, spots, 4)
	assert.True(t, spots[3].IsFeatured)
	assert.Equal(t, models.CategoryAttraction, spots[3].Category)

	settings.RemoveLocalSpot(stored.ID)
	assert.Len(t, settings.Get().LocalSpots, 3)
}

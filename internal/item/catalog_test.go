package item

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamedesigns/lootcrate/internal/domain"
)

func writeCatalogFile(t *testing.T, config Config) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "items.json")
	data, err := json.Marshal(config)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func fullTierItems() []Def {
	return []Def{
		{InternalName: "rusty_dagger", DisplayName: "Rusty Dagger", Rarity: "COMMON", BaseValue: 10},
		{InternalName: "oak_shortbow", Rarity: "UNCOMMON", BaseValue: 20},
		{InternalName: "runed_blade", DisplayName: "Runed Blade", Rarity: "RARE", BaseValue: 40},
		{InternalName: "stormcaller_staff", DisplayName: "Stormcaller Staff", Rarity: "EPIC", BaseValue: 80},
		{InternalName: "crown_of_dawn", DisplayName: "Crown of Dawn", Rarity: "LEGENDARY", BaseValue: 200},
	}
}

func TestLoadCatalog(t *testing.T) {
	path := writeCatalogFile(t, Config{Version: "1.0", Items: fullTierItems()})

	cat, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cat.Len())

	tpl, err := cat.ByName("runed_blade")
	require.NoError(t, err)
	assert.Equal(t, domain.RarityRare, tpl.Rarity)
	assert.Equal(t, 40, tpl.BaseValue)

	for _, tier := range domain.Rarities {
		assert.NotEmpty(t, cat.ByRarity(tier), "tier %s must have templates", tier)
	}
}

func TestLoadCatalog_DisplayNameFallback(t *testing.T) {
	path := writeCatalogFile(t, Config{Version: "1.0", Items: fullTierItems()})

	cat, err := LoadCatalog(path)
	require.NoError(t, err)

	tpl, err := cat.ByName("oak_shortbow")
	require.NoError(t, err)
	assert.Equal(t, "Oak Shortbow", tpl.DisplayName)
}

func TestLoadCatalog_SchemaRejectsBadRarity(t *testing.T) {
	items := fullTierItems()
	items[0].Rarity = "MYTHIC"
	path := writeCatalogFile(t, Config{Version: "1.0", Items: items})

	_, err := LoadCatalog(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestValidate_DuplicateNames(t *testing.T) {
	items := append(fullTierItems(), Def{InternalName: "rusty_dagger", Rarity: "COMMON", BaseValue: 5})

	loader := NewLoader()
	err := loader.Validate(&Config{Version: "1.0", Items: items})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateInternalName)
}

func TestValidate_UncoveredTier(t *testing.T) {
	items := fullTierItems()[:4] // drop Legendary

	loader := NewLoader()
	err := loader.Validate(&Config{Version: "1.0", Items: items})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LEGENDARY")
}

func TestValidate_NoItems(t *testing.T) {
	loader := NewLoader()
	err := loader.Validate(&Config{Version: "1.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgNoItemsDefined)
}

func TestByName_NotFound(t *testing.T) {
	path := writeCatalogFile(t, Config{Version: "1.0", Items: fullTierItems()})
	cat, err := LoadCatalog(path)
	require.NoError(t, err)

	_, err = cat.ByName("excalibur")
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestShippedCatalogLoads(t *testing.T) {
	// The repo's own catalog must stay loadable
	root, err := os.Getwd()
	require.NoError(t, err)
	path := filepath.Join(root, "..", "..", "configs", "items.json")

	cat, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Greater(t, cat.Len(), 0)
}

package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gamedesigns/lootcrate/internal/domain"
	"github.com/gamedesigns/lootcrate/internal/validation"
)

// Sentinel errors for the catalog loader
var (
	ErrDuplicateInternalName = errors.New("duplicate internal name")

	ErrInvalidCatalog = errors.New("invalid catalog")
)

// Schema paths
const (
	ItemsSchemaPath = "configs/schemas/items.schema.json"
)

// Config represents the JSON catalog of item templates
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

// Def represents a single item template definition in the JSON
type Def struct {
	InternalName string `json:"internal_name"`
	DisplayName  string `json:"display_name,omitempty"`
	Description  string `json:"description,omitempty"`
	Rarity       string `json:"rarity"`
	BaseValue    int    `json:"base_value"`
}

// Catalog is the immutable template registry built from a validated Config.
// Loot box generation samples templates from it by rarity tier.
type Catalog struct {
	byName   map[string]domain.ItemTemplate
	byRarity map[domain.Rarity][]domain.ItemTemplate
}

// Loader handles loading and validating the item catalog
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	Build(config *Config) (*Catalog, error)
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
	titler          cases.Caser
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(),
		titler:          cases.Title(language.English),
	}
}

// Load reads and parses an items JSON file
func (l *catalogLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}

	// Validate against schema first
	if err := l.schemaValidator.ValidateBytes(data, ItemsSchemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}

	return &config, nil
}

// Validate checks the catalog for semantic errors the schema cannot express
func (l *catalogLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, ErrMsgCatalogNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, ErrMsgNoItemsDefined)
	}

	internalNames := make(map[string]bool, len(config.Items))

	for i := range config.Items {
		def := &config.Items[i]
		if err := l.validateDef(i, def, internalNames); err != nil {
			return err
		}
	}

	// Every tier needs at least one template or generation cannot fill
	// a box's content pool for that tier
	seen := make(map[domain.Rarity]bool)
	for i := range config.Items {
		seen[domain.Rarity(config.Items[i].Rarity)] = true
	}
	for _, tier := range domain.Rarities {
		if !seen[tier] {
			return fmt.Errorf(ErrFmtTierUncovered, ErrInvalidCatalog, tier)
		}
	}

	return nil
}

func (l *catalogLoader) validateDef(index int, def *Def, internalNames map[string]bool) error {
	if def.InternalName == "" {
		return fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidCatalog, index)
	}

	if internalNames[def.InternalName] {
		return fmt.Errorf("%w: '%s'", ErrDuplicateInternalName, def.InternalName)
	}
	internalNames[def.InternalName] = true

	if !domain.Rarity(def.Rarity).Valid() {
		return fmt.Errorf(ErrFmtItemBadRarity, ErrInvalidCatalog, def.InternalName, def.Rarity)
	}

	if def.BaseValue <= 0 {
		return fmt.Errorf(ErrFmtItemNonPositiveValue, ErrInvalidCatalog, def.InternalName)
	}

	return nil
}

// Build converts a validated Config into a Catalog
func (l *catalogLoader) Build(config *Config) (*Catalog, error) {
	if err := l.Validate(config); err != nil {
		return nil, err
	}

	cat := &Catalog{
		byName:   make(map[string]domain.ItemTemplate, len(config.Items)),
		byRarity: make(map[domain.Rarity][]domain.ItemTemplate),
	}

	for _, def := range config.Items {
		tpl := domain.ItemTemplate{
			InternalName: def.InternalName,
			DisplayName:  def.DisplayName,
			Description:  def.Description,
			Rarity:       domain.Rarity(def.Rarity),
			BaseValue:    def.BaseValue,
		}
		if tpl.DisplayName == "" {
			// Fall back to a title-cased form of the internal name
			tpl.DisplayName = l.titler.String(strings.ReplaceAll(def.InternalName, "_", " "))
		}

		cat.byName[tpl.InternalName] = tpl
		cat.byRarity[tpl.Rarity] = append(cat.byRarity[tpl.Rarity], tpl)
	}

	return cat, nil
}

// LoadCatalog is the convenience path used at bootstrap: read, validate, build
func LoadCatalog(path string) (*Catalog, error) {
	loader := NewLoader()
	config, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	return loader.Build(config)
}

// ByName returns the template with the given internal name
func (c *Catalog) ByName(name string) (domain.ItemTemplate, error) {
	tpl, ok := c.byName[name]
	if !ok {
		return domain.ItemTemplate{}, fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, name)
	}
	return tpl, nil
}

// ByRarity returns all templates of the given tier
func (c *Catalog) ByRarity(r domain.Rarity) []domain.ItemTemplate {
	return c.byRarity[r]
}

// Len returns the number of templates in the catalog
func (c *Catalog) Len() int {
	return len(c.byName)
}

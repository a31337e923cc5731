package item

// Error message constants
const (
	ErrMsgReadCatalogFailed  = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog: %w"
	ErrMsgCatalogNil         = "catalog is nil"
	ErrMsgNoItemsDefined     = "no items defined"

	ErrFmtItemAtIndexEmpty     = "%w: item at index %d has empty internal_name"
	ErrFmtItemBadRarity        = "%w: item '%s' has unknown rarity '%s'"
	ErrFmtItemNonPositiveValue = "%w: item '%s' has non-positive base_value"
	ErrFmtTierUncovered        = "%w: no templates defined for tier %s"
)

package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Loot box errors
	ErrMsgBoxNotFound    = "loot box not found"
	ErrMsgNoBoxAvailable = "no loot box available"
	ErrMsgPoolAtCapacity = "pool at capacity"

	// Inventory errors
	ErrMsgItemNotInInventory = "item not in inventory"

	// Catalog errors
	ErrMsgTemplateNotFound = "item template not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Player errors
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	// Loot box errors
	ErrBoxNotFound    = errors.New(ErrMsgBoxNotFound)
	ErrNoBoxAvailable = errors.New(ErrMsgNoBoxAvailable)

	// ErrPoolAtCapacity marks a generation no-op, not a failure.
	// Callers treat it as informational.
	ErrPoolAtCapacity = errors.New(ErrMsgPoolAtCapacity)

	// Inventory errors
	ErrItemNotInInventory = errors.New(ErrMsgItemNotInInventory)

	// Catalog errors
	ErrTemplateNotFound = errors.New(ErrMsgTemplateNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

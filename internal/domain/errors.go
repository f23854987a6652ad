package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Shop errors
	ErrMsgNoShop            = "you can't shop here"
	ErrMsgNoSuchItem        = "no such item"
	ErrMsgNotForSale        = "that item is not for sale here"
	ErrMsgInvalidQuantity   = "invalid quantity"
	ErrMsgCannotAfford      = "cannot afford"
	ErrMsgInsufficientStock = "insufficient stock"
	ErrMsgTemplateMissing   = "item template missing"
	ErrMsgNotInterested     = "shop is not interested"
	ErrMsgWorthless         = "item is worthless"

	// Persistence errors
	ErrMsgStubNotFound = "persistent stub not found"
	ErrMsgRoomNotFound = "room not found"

	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNoShop            = errors.New(ErrMsgNoShop)
	ErrNoSuchItem        = errors.New(ErrMsgNoSuchItem)
	ErrNotForSale        = errors.New(ErrMsgNotForSale)
	ErrInvalidQuantity   = errors.New(ErrMsgInvalidQuantity)
	ErrCannotAfford      = errors.New(ErrMsgCannotAfford)
	ErrInsufficientStock = errors.New(ErrMsgInsufficientStock)
	ErrTemplateMissing   = errors.New(ErrMsgTemplateMissing)
	ErrNotInterested     = errors.New(ErrMsgNotInterested)
	ErrWorthless         = errors.New(ErrMsgWorthless)

	ErrStubNotFound = errors.New(ErrMsgStubNotFound)
	ErrRoomNotFound = errors.New(ErrMsgRoomNotFound)

	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"vgb/internal/errors"
)

// ErrSlotNotFound is returned when a slot has never been written or was removed.
// Absence is a valid state; callers fall back to defaults.
var ErrSlotNotFound = errors.New("slot not found")

// Slot names one value in the persistent key-value store.
type Slot string

const (
	// SlotAPIEndpoint holds the Catalog API base URL override.
	SlotAPIEndpoint Slot = "vgb_api"
	// SlotToken holds the session's auth token.
	SlotToken Slot = "vgb_token"
	// SlotUser holds the JSON-serialized user profile.
	SlotUser Slot = "vgb_user"
)

// SlotStore is the persistent key-value store. Each slot is independently
// readable, writable and removable.
type SlotStore interface {
	// Get returns the slot value or ErrSlotNotFound.
	Get(ctx context.Context, slot Slot) (string, error)

	// Set writes the slot value.
	Set(ctx context.Context, slot Slot, value string) error

	// Remove deletes the slot. Removing an absent slot is not an error.
	Remove(ctx context.Context, slot Slot) error
}

// Package repository declares persistence boundaries owned by the domain.
package repository

import (
	"context"
	"errors"

	"github.com/bnema/dumber-addons/internal/domain/entity"
)

// ErrAddonNotFound is returned when no record exists for an addon id.
var ErrAddonNotFound = errors.New("addon not found")

// AddonRecord is the persisted state of an addon.
type AddonRecord struct {
	ID                       string
	Name                     string
	Version                  string
	AllowedInPrivateBrowsing bool
	Metadata                 entity.AddonMetadata
	UpdatedAt                int64 // Unix timestamp in seconds
}

// AddonRepository defines operations for addon persistence.
type AddonRepository interface {
	// Get returns the record for an addon id, or ErrAddonNotFound.
	Get(ctx context.Context, id string) (*AddonRecord, error)

	// Save creates or updates a record.
	Save(ctx context.Context, record *AddonRecord) error

	// SetAllowedInPrivateBrowsing updates the private browsing flag, creating
	// the record from the addon when it does not exist yet.
	SetAllowedInPrivateBrowsing(ctx context.Context, addon entity.Addon, allowed bool) error

	// ListAllowedInPrivateBrowsing returns every addon allowed in private browsing.
	ListAllowedInPrivateBrowsing(ctx context.Context) ([]*AddonRecord, error)
}

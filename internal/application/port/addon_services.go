package port

import (
	"context"

	"github.com/bnema/dumber-addons/internal/domain/entity"
)

// AddonMetadataProvider loads descriptive data for an addon.
type AddonMetadataProvider interface {
	// FetchMetadata invokes onSuccess at most once. Failures are logged, not returned.
	FetchMetadata(ctx context.Context, addon entity.Addon, onSuccess func(entity.AddonMetadata))
}

// PrivateBrowsingAllowlist controls whether an addon runs in private browsing.
type PrivateBrowsingAllowlist interface {
	// SetAllowedInPrivateBrowsing invokes exactly one of onSuccess (with the
	// updated addon) or onError.
	SetAllowedInPrivateBrowsing(
		ctx context.Context,
		addon entity.Addon,
		allowed bool,
		onSuccess func(addon entity.Addon),
		onError func(err error),
	)
}

// AppInfo provides the application name and version used in user-facing text.
type AppInfo interface {
	Name() string
	Version() string
}

// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dumber-addons/internal/application/port"
	"github.com/bnema/dumber-addons/internal/domain/entity"
	"github.com/bnema/dumber-addons/internal/domain/repository"
	"github.com/bnema/dumber-addons/internal/logging"
)

// ManageAddonsUseCase persists addon metadata and the private browsing allow-list.
type ManageAddonsUseCase struct {
	addonRepo repository.AddonRepository
}

// NewManageAddonsUseCase creates a new addon management use case.
func NewManageAddonsUseCase(addonRepo repository.AddonRepository) *ManageAddonsUseCase {
	return &ManageAddonsUseCase{addonRepo: addonRepo}
}

// RecordInstalled stores an installed addon along with its listing metadata.
// The private browsing flag of an existing record is preserved.
func (uc *ManageAddonsUseCase) RecordInstalled(ctx context.Context, addon entity.Addon, meta entity.AddonMetadata) error {
	log := logging.FromContext(ctx)

	allowed := addon.AllowedInPrivateBrowsing
	existing, err := uc.addonRepo.Get(ctx, addon.ID)
	switch {
	case err == nil:
		allowed = existing.AllowedInPrivateBrowsing
	case !errors.Is(err, repository.ErrAddonNotFound):
		return fmt.Errorf("failed to load addon: %w", err)
	}

	meta.AddonID = addon.ID
	record := &repository.AddonRecord{
		ID:                       addon.ID,
		Name:                     addon.Name,
		Version:                  addon.Version,
		AllowedInPrivateBrowsing: allowed,
		Metadata:                 meta,
	}
	if err := uc.addonRepo.Save(ctx, record); err != nil {
		return fmt.Errorf("failed to save addon: %w", err)
	}

	log.Debug().Str("addon_id", addon.ID).Msg("addon recorded")
	return nil
}

// SetAllowedInPrivateBrowsing updates the allow-list and reports the updated
// addon through onSuccess, or the failure through onError.
func (uc *ManageAddonsUseCase) SetAllowedInPrivateBrowsing(
	ctx context.Context,
	addon entity.Addon,
	allowed bool,
	onSuccess func(entity.Addon),
	onError func(error),
) {
	log := logging.FromContext(ctx)

	if err := uc.addonRepo.SetAllowedInPrivateBrowsing(ctx, addon, allowed); err != nil {
		log.Error().Err(err).Str("addon_id", addon.ID).Msg("failed to update private browsing access")
		if onError != nil {
			onError(fmt.Errorf("failed to update private browsing access: %w", err))
		}
		return
	}

	addon.AllowedInPrivateBrowsing = allowed
	log.Info().Str("addon_id", addon.ID).Bool("allowed", allowed).Msg("private browsing access updated")

	if onSuccess != nil {
		onSuccess(addon)
	}
}

// FetchMetadata looks up stored metadata for an addon. onSuccess is not
// called when nothing is stored or the lookup fails.
func (uc *ManageAddonsUseCase) FetchMetadata(ctx context.Context, addon entity.Addon, onSuccess func(entity.AddonMetadata)) {
	log := logging.FromContext(ctx)

	record, err := uc.addonRepo.Get(ctx, addon.ID)
	if err != nil {
		if !errors.Is(err, repository.ErrAddonNotFound) {
			log.Warn().Err(err).Str("addon_id", addon.ID).Msg("failed to fetch addon metadata")
		}
		return
	}

	meta := record.Metadata
	meta.AddonID = addon.ID
	if onSuccess != nil {
		onSuccess(meta)
	}
}

// ListAllowedInPrivateBrowsing returns the addons on the private browsing allow-list.
func (uc *ManageAddonsUseCase) ListAllowedInPrivateBrowsing(ctx context.Context) ([]entity.Addon, error) {
	records, err := uc.addonRepo.ListAllowedInPrivateBrowsing(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list private browsing addons: %w", err)
	}

	addons := make([]entity.Addon, 0, len(records))
	for _, r := range records {
		addons = append(addons, entity.Addon{
			ID:                       r.ID,
			Name:                     r.Name,
			Version:                  r.Version,
			Installed:                true,
			AllowedInPrivateBrowsing: r.AllowedInPrivateBrowsing,
		})
	}
	return addons, nil
}

var (
	_ port.PrivateBrowsingAllowlist = (*ManageAddonsUseCase)(nil)
	_ port.AddonMetadataProvider    = (*ManageAddonsUseCase)(nil)
)

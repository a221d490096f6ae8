package dialog

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/dumber-addons/internal/application/port"
	"github.com/bnema/dumber-addons/internal/domain/entity"
	"github.com/bnema/dumber-addons/internal/logging"
)

// PermissionsDialog asks the user to accept or reject an addon's permissions.
// Callbacks can be swapped while the dialog is on screen.
type PermissionsDialog struct {
	addon       entity.Addon
	forOptional bool

	mu         sync.Mutex
	onPositive func(addon entity.Addon)
	onNegative func(addon entity.Addon)
}

func (d *PermissionsDialog) Tag() port.DialogTag          { return port.PermissionsDialogTag }
func (d *PermissionsDialog) Addon() entity.Addon          { return d.addon }
func (d *PermissionsDialog) ForOptionalPermissions() bool { return d.forOptional }

// SetOnPositive replaces the accept callback.
func (d *PermissionsDialog) SetOnPositive(fn func(addon entity.Addon)) {
	d.mu.Lock()
	d.onPositive = fn
	d.mu.Unlock()
}

// SetOnNegative replaces the reject callback.
func (d *PermissionsDialog) SetOnNegative(fn func(addon entity.Addon)) {
	d.mu.Lock()
	d.onNegative = fn
	d.mu.Unlock()
}

func (d *PermissionsDialog) view(_ context.Context) View {
	v := View{
		Tag:        port.PermissionsDialogTag,
		Items:      entity.LocalizePermissions(d.addon.Permissions),
		Cancelable: true,
	}

	if d.forOptional {
		v.Title = fmt.Sprintf("%s requests additional permissions", d.addon.Name)
		v.Message = "It wants to:"
		v.PositiveLabel = "Allow"
		v.NegativeLabel = "Deny"
	} else {
		v.Title = fmt.Sprintf("Add %s?", d.addon.Name)
		v.Message = "It requires your permission to:"
		v.PositiveLabel = "Add"
		v.NegativeLabel = "Cancel"
	}

	return v
}

func (d *PermissionsDialog) resolve(ctx context.Context, r Response) {
	d.mu.Lock()
	fn := d.onNegative
	if r.Positive {
		fn = d.onPositive
	}
	d.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("addon_id", d.addon.ID).
		Bool("accepted", r.Positive).
		Bool("optional", d.forOptional).
		Msg("permissions dialog answered")

	if fn != nil {
		fn(d.addon)
	}
}

var _ port.AddonPermissionsDialog = (*PermissionsDialog)(nil)

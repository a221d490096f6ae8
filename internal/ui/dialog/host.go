// Package dialog provides the addon dialogs and the host that attaches them by tag.
package dialog

import (
	"context"
	"sync"

	"github.com/bnema/dumber-addons/internal/application/port"
	"github.com/bnema/dumber-addons/internal/domain/entity"
	"github.com/bnema/dumber-addons/internal/logging"
)

// View is what a Surface renders for one dialog.
type View struct {
	Tag     port.DialogTag
	Title   string
	Message string
	// Items are rendered as a bulleted list below the message.
	Items []string

	// ToggleLabel enables a checkbox when non-empty.
	ToggleLabel string

	PositiveLabel string
	// NegativeLabel is empty for single-button dialogs.
	NegativeLabel string

	Cancelable      bool
	CenteredButtons bool
}

// Response is the user's answer to a View.
type Response struct {
	Positive bool
	ToggleOn bool
}

// Surface renders dialogs. Present must not block; respond is called once,
// from any goroutine, when the user answers.
type Surface interface {
	Present(ctx context.Context, view View, respond func(Response))
}

// presentable is implemented by every dialog the host can attach.
type presentable interface {
	port.AddonDialog
	view(ctx context.Context) View
	resolve(ctx context.Context, r Response)
}

// Host keeps track of attached dialogs. It outlives the coordinators that use it,
// so a dialog left on screen can be found again after a restart.
type Host struct {
	surface Surface

	mu       sync.Mutex
	attached map[port.DialogTag]port.AddonDialog
}

// NewHost creates a dialog host rendering on surface.
func NewHost(surface Surface) *Host {
	return &Host{
		surface:  surface,
		attached: make(map[port.DialogTag]port.AddonDialog),
	}
}

// Show attaches and presents the dialog. It returns false when the tag is taken.
func (h *Host) Show(ctx context.Context, d port.AddonDialog) bool {
	log := logging.FromContext(ctx)

	p, ok := d.(presentable)
	if !ok {
		log.Error().Str("tag", string(d.Tag())).Msg("dialog cannot be presented by this host")
		return false
	}

	h.mu.Lock()
	if _, taken := h.attached[d.Tag()]; taken {
		h.mu.Unlock()
		log.Debug().Str("tag", string(d.Tag())).Msg("dialog already attached, ignoring show")
		return false
	}
	h.attached[d.Tag()] = d
	h.mu.Unlock()

	log.Debug().Str("tag", string(d.Tag())).Str("addon_id", d.Addon().ID).Msg("showing dialog")

	h.surface.Present(ctx, p.view(ctx), func(r Response) {
		h.detach(d)
		p.resolve(ctx, r)
	})
	return true
}

// Find returns the attached dialog for tag, or nil.
func (h *Host) Find(tag port.DialogTag) port.AddonDialog {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.attached[tag]
}

// ShowAlert presents an informational dialog that is not tracked by tag.
func (h *Host) ShowAlert(ctx context.Context, spec port.AlertSpec) {
	button := spec.Button
	if button == "" {
		button = "OK"
	}

	logging.FromContext(ctx).Debug().Str("title", spec.Title).Msg("showing alert")

	h.surface.Present(ctx, View{
		Title:           spec.Title,
		Message:         spec.Message,
		PositiveLabel:   button,
		Cancelable:      spec.Cancelable,
		CenteredButtons: spec.CenteredButtons,
	}, func(Response) {})
}

// NewPermissionsDialog implements port.AddonDialogHost.
func (h *Host) NewPermissionsDialog(
	addon entity.Addon,
	forOptionalPermissions bool,
	onPositive func(addon entity.Addon),
	onNegative func(addon entity.Addon),
) port.AddonPermissionsDialog {
	return &PermissionsDialog{
		addon:       addon,
		forOptional: forOptionalPermissions,
		onPositive:  onPositive,
		onNegative:  onNegative,
	}
}

// NewInstalledDialog implements port.AddonDialogHost.
func (h *Host) NewInstalledDialog(
	addon entity.Addon,
	metadata port.AddonMetadataProvider,
	onDismissed func(),
	onConfirm func(addon entity.Addon, allowInPrivateBrowsing bool),
) port.AddonDialog {
	return &InstalledDialog{
		addon:       addon,
		metadata:    metadata,
		onDismissed: onDismissed,
		onConfirm:   onConfirm,
	}
}

func (h *Host) detach(d port.AddonDialog) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.attached[d.Tag()] == d {
		delete(h.attached, d.Tag())
	}
}

var _ port.AddonDialogHost = (*Host)(nil)

package dialog

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/dumber-addons/internal/application/port"
	"github.com/bnema/dumber-addons/internal/domain/entity"
	"github.com/bnema/dumber-addons/internal/logging"
)

// InstalledDialog confirms a finished installation and offers the private
// browsing opt-in.
type InstalledDialog struct {
	addon    entity.Addon
	metadata port.AddonMetadataProvider

	onDismissed func()
	onConfirm   func(addon entity.Addon, allowInPrivateBrowsing bool)
}

func (d *InstalledDialog) Tag() port.DialogTag { return port.PostInstallationDialogTag }
func (d *InstalledDialog) Addon() entity.Addon { return d.addon }

func (d *InstalledDialog) view(ctx context.Context) View {
	lines := []string{"Access it from the extensions menu."}

	// Providers answering synchronously enrich the dialog; late answers are ignored.
	if d.metadata != nil {
		metaCh := make(chan entity.AddonMetadata, 1)
		d.metadata.FetchMetadata(ctx, d.addon, func(m entity.AddonMetadata) {
			select {
			case metaCh <- m:
			default:
			}
		})

		select {
		case meta := <-metaCh:
			if meta.Summary != "" {
				lines = append([]string{meta.Summary}, lines...)
			}
			if meta.Author != "" {
				lines = append(lines, "By "+meta.Author)
			}
		default:
		}
	}

	return View{
		Tag:           port.PostInstallationDialogTag,
		Title:         fmt.Sprintf("%s has been added", d.addon.Name),
		Message:       strings.Join(lines, "\n"),
		ToggleLabel:   "Allow in private browsing",
		PositiveLabel: "Okay, got it",
		Cancelable:    true,
	}
}

func (d *InstalledDialog) resolve(ctx context.Context, r Response) {
	logging.FromContext(ctx).Debug().
		Str("addon_id", d.addon.ID).
		Bool("confirmed", r.Positive).
		Bool("private_browsing", r.ToggleOn).
		Msg("installed dialog answered")

	if !r.Positive {
		if d.onDismissed != nil {
			d.onDismissed()
		}
		return
	}
	if d.onConfirm != nil {
		d.onConfirm(d.addon, r.ToggleOn)
	}
}

var _ port.AddonDialog = (*InstalledDialog)(nil)

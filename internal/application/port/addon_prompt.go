package port

import (
	"context"

	"github.com/bnema/dumber-addons/internal/domain/entity"
)

// ExtensionPromptStore is the browser store slot holding the pending extension prompt.
// Only one request is outstanding at a time; it stays until consumed.
type ExtensionPromptStore interface {
	// Subscribe delivers the current prompt request immediately and again on
	// every store state change, including changes unrelated to prompts.
	// A nil value means no request is pending. The channel is closed once ctx
	// is done.
	Subscribe(ctx context.Context) <-chan entity.PromptRequest

	// PromptRequest returns the live pending request, or nil.
	PromptRequest() entity.PromptRequest

	// ConsumePromptRequest clears the pending request.
	ConsumePromptRequest(ctx context.Context)
}

// InstallationState exposes the process-wide "installation in progress" flag.
type InstallationState interface {
	InProgress() bool
}

// DialogTag identifies a dialog kind on the dialog host.
type DialogTag string

const (
	// PermissionsDialogTag tags the addon permissions dialog.
	PermissionsDialogTag DialogTag = "addon-permissions-dialog"

	// PostInstallationDialogTag tags the "addon installed" dialog.
	PostInstallationDialogTag DialogTag = "addon-post-installation-dialog"
)

// AddonDialog is a dialog that can be attached to an AddonDialogHost.
type AddonDialog interface {
	Tag() DialogTag
	Addon() entity.Addon
}

// AddonPermissionsDialog is the accept/reject dialog for an addon's permissions.
// Its callbacks may be replaced while it is attached.
type AddonPermissionsDialog interface {
	AddonDialog
	ForOptionalPermissions() bool
	SetOnPositive(fn func(addon entity.Addon))
	SetOnNegative(fn func(addon entity.Addon))
}

// AlertSpec describes a single-button informational dialog.
type AlertSpec struct {
	Title   string
	Message string
	Button  string

	Cancelable      bool
	CenteredButtons bool
}

// AddonDialogHost attaches dialogs by tag and builds the addon dialogs.
// Attached dialogs outlive the components that created them.
type AddonDialogHost interface {
	// Show attaches and presents the dialog. It returns false when a dialog
	// with the same tag is already attached.
	Show(ctx context.Context, dialog AddonDialog) bool

	// Find returns the attached dialog for tag, or nil.
	Find(tag DialogTag) AddonDialog

	NewPermissionsDialog(
		addon entity.Addon,
		forOptionalPermissions bool,
		onPositive func(addon entity.Addon),
		onNegative func(addon entity.Addon),
	) AddonPermissionsDialog

	NewInstalledDialog(
		addon entity.Addon,
		metadata AddonMetadataProvider,
		onDismissed func(),
		onConfirm func(addon entity.Addon, allowInPrivateBrowsing bool),
	) AddonDialog

	// ShowAlert presents an informational dialog. It does not block.
	ShowAlert(ctx context.Context, spec AlertSpec)
}

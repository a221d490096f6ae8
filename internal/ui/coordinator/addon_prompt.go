package coordinator

import (
	"context"
	"sync"
	"weak"

	"github.com/bnema/dumber-addons/internal/application/port"
	"github.com/bnema/dumber-addons/internal/domain/entity"
	"github.com/bnema/dumber-addons/internal/logging"
)

// AddonPromptDeps are the collaborators of AddonPromptCoordinator.
type AddonPromptDeps struct {
	Store        port.ExtensionPromptStore
	Dialogs      port.AddonDialogHost
	Installation port.InstallationState
	Metadata     port.AddonMetadataProvider
	Allowlist    port.PrivateBrowsingAllowlist
	AppInfo      port.AppInfo
}

// AddonPromptCoordinator turns extension prompt requests from the store into
// dialogs and reports the user's answers back.
//
// At most one dialog per tag is attached at a time. Dialogs may outlive the
// coordinator; Start re-binds a surviving permissions dialog to the live store.
type AddonPromptCoordinator struct {
	store        port.ExtensionPromptStore
	dialogs      port.AddonDialogHost
	installation port.InstallationState
	metadata     port.AddonMetadataProvider
	allowlist    port.PrivateBrowsingAllowlist
	appInfo      port.AppInfo

	onAddonChanged func(addon entity.Addon)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewAddonPromptCoordinator creates a coordinator. onAddonChanged receives
// addons updated by the post-installation dialog and may be nil.
func NewAddonPromptCoordinator(deps AddonPromptDeps, onAddonChanged func(addon entity.Addon)) *AddonPromptCoordinator {
	if onAddonChanged == nil {
		onAddonChanged = func(entity.Addon) {}
	}
	if deps.Installation == nil {
		deps.Installation = idleInstallation{}
	}
	return &AddonPromptCoordinator{
		store:          deps.Store,
		dialogs:        deps.Dialogs,
		installation:   deps.Installation,
		metadata:       deps.Metadata,
		allowlist:      deps.Allowlist,
		appInfo:        deps.AppInfo,
		onAddonChanged: onAddonChanged,
	}
}

// Start subscribes to the store until Stop is called. Calling Start on a
// running coordinator does nothing.
func (c *AddonPromptCoordinator) Start(ctx context.Context) {
	ctx = logging.WithComponent(ctx, "addon-prompt")

	c.mu.Lock()
	if c.cancel != nil {
		c.mu.Unlock()
		return
	}
	subCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done
	c.mu.Unlock()

	c.reattachPermissionsDialog(ctx)

	updates := c.store.Subscribe(subCtx)
	go c.run(subCtx, updates, done)

	logging.FromContext(ctx).Debug().Msg("addon prompt coordinator started")
}

// Stop cancels the subscription and waits for the current handler to return.
// No handler runs after Stop returns. Dialogs already shown are unaffected.
// Stop must not be called from within a prompt handler.
func (c *AddonPromptCoordinator) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (c *AddonPromptCoordinator) run(ctx context.Context, updates <-chan entity.PromptRequest, done chan struct{}) {
	defer close(done)

	var lastID string
	for {
		select {
		case <-ctx.Done():
			return
		case req, ok := <-updates:
			if !ok {
				return
			}
			if req == nil {
				// An emptied slot ends the run of repeats; the same request may be published again.
				lastID = ""
				continue
			}
			if req.RequestID() == lastID {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			lastID = req.RequestID()
			c.handle(logging.WithRequestID(ctx, lastID), req)
		}
	}
}

func (c *AddonPromptCoordinator) handle(ctx context.Context, req entity.PromptRequest) {
	logging.FromContext(ctx).Debug().Str("kind", entity.PromptKind(req)).Msg("handling prompt request")

	switch r := req.(type) {
	case *entity.InstallationFailedRequest:
		c.handleInstallationFailed(ctx, r.Err)
		c.consume(ctx)
	case entity.AfterInstallationRequest:
		c.handleAfterInstallation(ctx, r)
	}
}

func (c *AddonPromptCoordinator) handleAfterInstallation(ctx context.Context, req entity.AfterInstallationRequest) {
	ext := req.Extension()
	ctx = logging.WithAddonID(ctx, ext.ID)
	addon := entity.NewAddonFromExtension(ext, ext.Enabled)

	switch r := req.(type) {
	case *entity.RequiredPermissionsRequest:
		c.showPermissionsDialog(ctx, addon, r, false)
	case *entity.OptionalPermissionsRequest:
		c.handleOptionalPermissions(ctx, addon, r)
	case *entity.PostInstallationRequest:
		c.showPostInstallationDialog(ctx, addon)
	}
}

func (c *AddonPromptCoordinator) handleOptionalPermissions(
	ctx context.Context,
	addon entity.Addon,
	req *entity.OptionalPermissionsRequest,
) {
	if len(entity.LocalizePermissions(req.Permissions)) == 0 {
		logging.FromContext(ctx).Debug().
			Strs("permissions", req.Permissions).
			Msg("optional permissions need no confirmation, granting")
		c.handlePermissions(ctx, req, true)
		return
	}
	c.showPermissionsDialog(ctx, addon.WithPermissions(req.Permissions), req, true)
}

func (c *AddonPromptCoordinator) showPermissionsDialog(
	ctx context.Context,
	addon entity.Addon,
	req entity.PermissionsRequest,
	forOptional bool,
) {
	log := logging.FromContext(ctx)

	if c.installation.InProgress() || c.dialogs.Find(port.PermissionsDialogTag) != nil {
		log.Debug().Msg("permissions dialog not shown: installation in progress or dialog attached")
		return
	}

	d := c.dialogs.NewPermissionsDialog(
		addon,
		forOptional,
		func(entity.Addon) { c.handlePermissions(ctx, req, true) },
		func(entity.Addon) { c.handlePermissions(ctx, req, false) },
	)
	c.dialogs.Show(ctx, d)
}

func (c *AddonPromptCoordinator) handlePermissions(ctx context.Context, req entity.PermissionsRequest, granted bool) {
	logging.FromContext(ctx).Info().
		Str("addon_id", req.Extension().ID).
		Str("kind", entity.PromptKind(req)).
		Bool("granted", granted).
		Msg("permission decision")

	req.Confirm(granted)
	c.consume(ctx)
}

func (c *AddonPromptCoordinator) showPostInstallationDialog(ctx context.Context, addon entity.Addon) {
	if c.installation.InProgress() || c.dialogs.Find(port.PostInstallationDialogTag) != nil {
		logging.FromContext(ctx).Debug().Msg("post-installation dialog not shown: installation in progress or dialog attached")
		return
	}

	// The dialog may outlive this coordinator; it must not keep it alive.
	ref := weak.Make(c)

	d := c.dialogs.NewInstalledDialog(
		addon,
		c.metadata,
		func() {
			if c := ref.Value(); c != nil {
				c.consume(ctx)
			}
		},
		func(addon entity.Addon, allowInPrivateBrowsing bool) {
			if c := ref.Value(); c != nil {
				c.confirmPostInstallation(ctx, addon, allowInPrivateBrowsing)
			}
		},
	)
	c.dialogs.Show(ctx, d)
}

func (c *AddonPromptCoordinator) confirmPostInstallation(ctx context.Context, addon entity.Addon, allowInPrivateBrowsing bool) {
	if allowInPrivateBrowsing && c.allowlist != nil {
		onAddonChanged := c.onAddonChanged
		c.allowlist.SetAllowedInPrivateBrowsing(
			ctx,
			addon,
			true,
			func(updated entity.Addon) { onAddonChanged(updated) },
			func(err error) {
				logging.FromContext(ctx).Warn().Err(err).Msg("failed to allow addon in private browsing")
			},
		)
	}
	c.consume(ctx)
}

// reattachPermissionsDialog points a permissions dialog left over from a previous
// coordinator at the store's live request instead of the request it was built for.
func (c *AddonPromptCoordinator) reattachPermissionsDialog(ctx context.Context) {
	found := c.dialogs.Find(port.PermissionsDialogTag)
	if found == nil {
		return
	}
	d, ok := found.(port.AddonPermissionsDialog)
	if !ok {
		return
	}

	logging.FromContext(ctx).Debug().Str("addon_id", d.Addon().ID).Msg("re-attaching permissions dialog")

	d.SetOnPositive(func(addon entity.Addon) {
		if req := c.livePermissionsRequest(addon); req != nil {
			c.handlePermissions(ctx, req, true)
		}
	})
	d.SetOnNegative(func(addon entity.Addon) {
		if req := c.livePermissionsRequest(addon); req != nil {
			c.handlePermissions(ctx, req, false)
		}
	})
}

func (c *AddonPromptCoordinator) livePermissionsRequest(addon entity.Addon) entity.PermissionsRequest {
	req, ok := c.store.PromptRequest().(entity.PermissionsRequest)
	if !ok || req.Extension().ID != addon.ID {
		return nil
	}
	return req
}

func (c *AddonPromptCoordinator) consume(ctx context.Context) {
	c.store.ConsumePromptRequest(ctx)
}

type idleInstallation struct{}

func (idleInstallation) InProgress() bool { return false }

package coordinator

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumber-addons/internal/application/port"
	portmocks "github.com/bnema/dumber-addons/internal/application/port/mocks"
	"github.com/bnema/dumber-addons/internal/domain/entity"
	"github.com/bnema/dumber-addons/internal/infrastructure/extensionstore"
	"github.com/bnema/dumber-addons/internal/ui/dialog"
)

const waitTimeout = time.Second

type presented struct {
	view    dialog.View
	respond func(dialog.Response)
}

type fakeSurface struct {
	mu    sync.Mutex
	calls []presented
}

func (f *fakeSurface) Present(_ context.Context, view dialog.View, respond func(dialog.Response)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, presented{view: view, respond: respond})
}

func (f *fakeSurface) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeSurface) get(i int) presented {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[i]
}

// countingStore records how often the prompt slot was consumed.
type countingStore struct {
	*extensionstore.Store
	consumed atomic.Int32
}

func (s *countingStore) ConsumePromptRequest(ctx context.Context) {
	s.consumed.Add(1)
	s.Store.ConsumePromptRequest(ctx)
}

type harness struct {
	store      *countingStore
	surface    *fakeSurface
	host       *dialog.Host
	installing *extensionstore.InstallFlag
	allowlist  *portmocks.MockPrivateBrowsingAllowlist
	appInfo    *portmocks.MockAppInfo
	changed    chan entity.Addon
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	surface := &fakeSurface{}
	return &harness{
		store:      &countingStore{Store: extensionstore.New()},
		surface:    surface,
		host:       dialog.NewHost(surface),
		installing: &extensionstore.InstallFlag{},
		allowlist:  portmocks.NewMockPrivateBrowsingAllowlist(t),
		appInfo:    portmocks.NewMockAppInfo(t),
		changed:    make(chan entity.Addon, 1),
	}
}

func (h *harness) newCoordinator() *AddonPromptCoordinator {
	return NewAddonPromptCoordinator(AddonPromptDeps{
		Store:        h.store,
		Dialogs:      h.host,
		Installation: h.installing,
		Allowlist:    h.allowlist,
		AppInfo:      h.appInfo,
	}, func(a entity.Addon) { h.changed <- a })
}

func (h *harness) start(t *testing.T) *AddonPromptCoordinator {
	t.Helper()
	c := h.newCoordinator()
	c.Start(context.Background())
	t.Cleanup(c.Stop)
	return c
}

func (h *harness) publish(t *testing.T, req entity.PromptRequest) {
	t.Helper()
	require.NoError(t, h.store.SetPromptRequest(context.Background(), req))
}

func (h *harness) waitPresented(t *testing.T, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.surface.count() >= n }, waitTimeout, time.Millisecond)
}

func (h *harness) waitConsumed(t *testing.T, n int32) {
	t.Helper()
	require.Eventually(t, func() bool { return h.store.consumed.Load() >= n }, waitTimeout, time.Millisecond)
}

// settle gives the coordinator goroutine time to process anything pending.
func (h *harness) settle(t *testing.T) {
	t.Helper()
	marker := entity.Extension{ID: "settle"}
	h.store.UpsertExtension(marker)
	time.Sleep(20 * time.Millisecond)
}

var uBlock = entity.Extension{
	ID:          "ublock@example.org",
	Name:        "uBlock",
	Version:     "1.60.0",
	Permissions: []string{"tabs", "storage", "<all_urls>"},
}

type decisions struct {
	mu  sync.Mutex
	got []bool
}

func (d *decisions) record(granted bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.got = append(d.got, granted)
}

func (d *decisions) values() []bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]bool(nil), d.got...)
}

func TestAddonPrompt_RequiredPermissionsAccepted(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	var dec decisions
	h.publish(t, entity.NewRequiredPermissionsRequest(uBlock, uBlock.Permissions, dec.record))

	h.waitPresented(t, 1)
	v := h.surface.get(0).view
	assert.Equal(t, port.PermissionsDialogTag, v.Tag)
	assert.Equal(t, []string{"Access browser tabs", "Access your data for all websites"}, v.Items)

	h.surface.get(0).respond(dialog.Response{Positive: true})

	assert.Equal(t, []bool{true}, dec.values())
	assert.EqualValues(t, 1, h.store.consumed.Load())
	assert.Nil(t, h.store.PromptRequest())
	assert.Nil(t, h.host.Find(port.PermissionsDialogTag))
}

func TestAddonPrompt_RequiredPermissionsRejected(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	var dec decisions
	h.publish(t, entity.NewRequiredPermissionsRequest(uBlock, uBlock.Permissions, dec.record))

	h.waitPresented(t, 1)
	h.surface.get(0).respond(dialog.Response{Positive: false})

	assert.Equal(t, []bool{false}, dec.values())
	assert.EqualValues(t, 1, h.store.consumed.Load())
}

func TestAddonPrompt_RequiredDroppedWhileDialogAttached(t *testing.T) {
	h := newHarness(t)
	existing := h.host.NewPermissionsDialog(entity.NewAddonFromExtension(uBlock, false), false, nil, nil)
	require.True(t, h.host.Show(context.Background(), existing))
	h.start(t)

	var dec decisions
	req := entity.NewRequiredPermissionsRequest(uBlock, uBlock.Permissions, dec.record)
	h.publish(t, req)
	h.settle(t)

	assert.Equal(t, 1, h.surface.count(), "no second permissions dialog")
	assert.Same(t, existing, h.host.Find(port.PermissionsDialogTag))
	assert.Empty(t, dec.values())
	assert.Zero(t, h.store.consumed.Load())
	assert.Equal(t, req, h.store.PromptRequest(), "dropped request stays pending")
}

func TestAddonPrompt_NoDialogWhileInstalling(t *testing.T) {
	h := newHarness(t)
	h.installing.Set(true)
	h.start(t)

	h.publish(t, entity.NewRequiredPermissionsRequest(uBlock, uBlock.Permissions, func(bool) {}))
	h.settle(t)
	h.store.ConsumePromptRequest(context.Background())

	h.publish(t, entity.NewPostInstallationRequest(uBlock))
	h.settle(t)

	assert.Zero(t, h.surface.count())
}

func TestAddonPrompt_OptionalWithoutPromptablePermissionsIsGranted(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	var dec decisions
	h.publish(t, entity.NewOptionalPermissionsRequest(uBlock, []string{"storage", "alarms"}, dec.record))

	h.waitConsumed(t, 1)
	assert.Equal(t, []bool{true}, dec.values())
	assert.Zero(t, h.surface.count())
	assert.Nil(t, h.host.Find(port.PermissionsDialogTag))
}

func TestAddonPrompt_OptionalShowsOnlyRequestedSubset(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	var dec decisions
	h.publish(t, entity.NewOptionalPermissionsRequest(uBlock, []string{"bookmarks"}, dec.record))

	h.waitPresented(t, 1)
	v := h.surface.get(0).view
	assert.Equal(t, []string{"Read and modify bookmarks"}, v.Items)
	assert.Equal(t, "uBlock requests additional permissions", v.Title)

	d, ok := h.host.Find(port.PermissionsDialogTag).(port.AddonPermissionsDialog)
	require.True(t, ok)
	assert.True(t, d.ForOptionalPermissions())
	assert.Equal(t, []string{"bookmarks"}, d.Addon().Permissions)

	h.surface.get(0).respond(dialog.Response{Positive: true})
	assert.Equal(t, []bool{true}, dec.values())
	assert.EqualValues(t, 1, h.store.consumed.Load())
}

func TestAddonPrompt_PostInstallationConfirmWithPrivateBrowsing(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	updated := entity.NewAddonFromExtension(uBlock, true)
	updated.AllowedInPrivateBrowsing = true

	h.allowlist.EXPECT().
		SetAllowedInPrivateBrowsing(mock.Anything, mock.MatchedBy(func(a entity.Addon) bool {
			return a.ID == uBlock.ID
		}), true, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ entity.Addon, _ bool, onSuccess func(entity.Addon), _ func(error)) {
			onSuccess(updated)
		}).
		Once()

	h.publish(t, entity.NewPostInstallationRequest(uBlock))
	h.waitPresented(t, 1)
	assert.Equal(t, port.PostInstallationDialogTag, h.surface.get(0).view.Tag)

	h.surface.get(0).respond(dialog.Response{Positive: true, ToggleOn: true})

	select {
	case got := <-h.changed:
		assert.True(t, got.AllowedInPrivateBrowsing)
	default:
		t.Fatal("onAddonChanged not called")
	}
	assert.EqualValues(t, 1, h.store.consumed.Load())
}

func TestAddonPrompt_PostInstallationConfirmWithoutToggle(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	h.publish(t, entity.NewPostInstallationRequest(uBlock))
	h.waitPresented(t, 1)
	h.surface.get(0).respond(dialog.Response{Positive: true})

	h.allowlist.AssertNotCalled(t, "SetAllowedInPrivateBrowsing")
	assert.Empty(t, h.changed)
	assert.EqualValues(t, 1, h.store.consumed.Load())
}

func TestAddonPrompt_PostInstallationDismissed(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	h.publish(t, entity.NewPostInstallationRequest(uBlock))
	h.waitPresented(t, 1)
	h.surface.get(0).respond(dialog.Response{Positive: false, ToggleOn: true})

	h.allowlist.AssertNotCalled(t, "SetAllowedInPrivateBrowsing")
	assert.EqualValues(t, 1, h.store.consumed.Load())
}

func TestAddonPrompt_InstallationFailedShowsAlertAndConsumes(t *testing.T) {
	h := newHarness(t)
	h.appInfo.EXPECT().Name().Return("Dumber")
	h.appInfo.EXPECT().Version().Return("1.2.3")
	h.start(t)

	h.publish(t, entity.NewInstallationFailedRequest(entity.InstallError{
		Kind:          entity.InstallErrorIncompatible,
		ExtensionName: "Foo",
	}))

	h.waitPresented(t, 1)
	h.waitConsumed(t, 1)

	v := h.surface.get(0).view
	assert.Equal(t, "Can’t install this extension", v.Title)
	assert.Equal(t, "Foo is not compatible with Dumber 1.2.3.", v.Message)
	assert.Equal(t, "OK", v.PositiveLabel)
	assert.False(t, v.Cancelable)
	assert.True(t, v.CenteredButtons)
}

func TestAddonPrompt_UserCancelledIsSilent(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	h.publish(t, entity.NewInstallationFailedRequest(entity.InstallError{
		Kind:          entity.InstallErrorUserCancelled,
		ExtensionName: "Foo",
	}))

	h.waitConsumed(t, 1)
	h.settle(t)
	assert.Zero(t, h.surface.count())
	assert.EqualValues(t, 1, h.store.consumed.Load())
	h.appInfo.AssertNotCalled(t, "Name")
	h.appInfo.AssertNotCalled(t, "Version")
}

func TestAddonPrompt_IdenticalRequestHandledOnce(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	h.publish(t, entity.NewRequiredPermissionsRequest(uBlock, uBlock.Permissions, func(bool) {}))
	h.waitPresented(t, 1)

	// Unrelated store changes re-emit the same pending request.
	h.store.UpsertExtension(entity.Extension{ID: "other"})
	h.store.UpsertExtension(entity.Extension{ID: "another"})
	h.settle(t)

	assert.Equal(t, 1, h.surface.count())
	assert.Zero(t, h.store.consumed.Load())
}

func TestAddonPrompt_ConsumeOncePerRequest(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	for i := 0; i < 3; i++ {
		h.publish(t, entity.NewOptionalPermissionsRequest(uBlock, []string{"storage"}, func(bool) {}))
		h.waitConsumed(t, int32(i+1))
	}
	h.settle(t)
	assert.EqualValues(t, 3, h.store.consumed.Load())
}

func TestAddonPrompt_SameRequestHandledAgainAfterConsume(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	var dec decisions
	req := entity.NewOptionalPermissionsRequest(uBlock, []string{"storage"}, dec.record)

	h.publish(t, req)
	h.waitConsumed(t, 1)

	h.publish(t, req)
	h.waitConsumed(t, 2)

	assert.Equal(t, []bool{true, true}, dec.values())
	assert.Nil(t, h.store.PromptRequest(), "slot left occupied")
	require.NoError(t, h.store.SetPromptRequest(context.Background(),
		entity.NewPostInstallationRequest(uBlock)))
}

func TestAddonPrompt_ReattachRebindsToLiveRequest(t *testing.T) {
	h := newHarness(t)

	first := h.newCoordinator()
	first.Start(context.Background())

	var dec decisions
	h.publish(t, entity.NewRequiredPermissionsRequest(uBlock, uBlock.Permissions, dec.record))
	h.waitPresented(t, 1)
	first.Stop()

	// The dialog survives; a fresh coordinator takes over.
	h.start(t)
	h.surface.get(0).respond(dialog.Response{Positive: true})

	assert.Equal(t, []bool{true}, dec.values())
	assert.EqualValues(t, 1, h.store.consumed.Load())
	assert.Nil(t, h.store.PromptRequest())
}

func TestAddonPrompt_ReattachIgnoresDifferentLiveRequest(t *testing.T) {
	h := newHarness(t)

	first := h.newCoordinator()
	first.Start(context.Background())

	var stale decisions
	h.publish(t, entity.NewRequiredPermissionsRequest(uBlock, uBlock.Permissions, stale.record))
	h.waitPresented(t, 1)
	first.Stop()

	// The request for the dialog's addon went away and another extension asks now.
	h.store.Store.ConsumePromptRequest(context.Background())
	other := entity.Extension{ID: "other@example.org", Name: "Other", Permissions: []string{"tabs"}}
	var live decisions
	h.publish(t, entity.NewRequiredPermissionsRequest(other, other.Permissions, live.record))

	h.start(t)
	h.settle(t)
	require.Equal(t, 1, h.surface.count(), "attached dialog blocks a new one")

	h.surface.get(0).respond(dialog.Response{Positive: true})

	assert.Empty(t, stale.values(), "stale callback must not fire")
	assert.Empty(t, live.values(), "request for another addon must not be approved")
	assert.Zero(t, h.store.consumed.Load())
	assert.NotNil(t, h.store.PromptRequest())
}

func TestAddonPrompt_StopEndsSubscription(t *testing.T) {
	h := newHarness(t)
	c := h.newCoordinator()
	c.Start(context.Background())
	c.Stop()
	c.Stop() // idempotent

	h.publish(t, entity.NewPostInstallationRequest(uBlock))
	h.settle(t)

	assert.Zero(t, h.surface.count())
	assert.Zero(t, h.store.consumed.Load())
}

func TestAddonPrompt_StartTwiceSubscribesOnce(t *testing.T) {
	h := newHarness(t)
	c := h.start(t)
	c.Start(context.Background())

	h.publish(t, entity.NewPostInstallationRequest(uBlock))
	h.waitPresented(t, 1)
	h.settle(t)
	assert.Equal(t, 1, h.surface.count())
}

func TestAddonPrompt_PostInstallationDialogDoesNotRetainCoordinator(t *testing.T) {
	h := newHarness(t)

	func() {
		c := h.newCoordinator()
		c.Start(context.Background())
		h.publish(t, entity.NewPostInstallationRequest(uBlock))
		h.waitPresented(t, 1)
		c.Stop()
	}()

	runtime.GC()
	runtime.GC()

	h.surface.get(0).respond(dialog.Response{Positive: true, ToggleOn: true})

	h.allowlist.AssertNotCalled(t, "SetAllowedInPrivateBrowsing")
	assert.Zero(t, h.store.consumed.Load())
	assert.Nil(t, h.host.Find(port.PostInstallationDialogTag))
}

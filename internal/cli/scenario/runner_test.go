package scenario

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumber-addons/internal/application/usecase"
	"github.com/bnema/dumber-addons/internal/domain/build"
	"github.com/bnema/dumber-addons/internal/infrastructure/extensionstore"
	"github.com/bnema/dumber-addons/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dumber-addons/internal/logging"
	"github.com/bnema/dumber-addons/internal/ui/component"
)

const fullScenario = `{
  "extensions": [
    {"id": "ublock@example.com", "name": "uBlock", "version": "1.0", "permissions": ["tabs"], "summary": "Blocks ads", "author": "Ray"},
    {"id": "dark@example.com", "name": "Dark Reader", "version": "4.9", "permissions": ["storage"]}
  ],
  "steps": [
    {"action": "required_permissions", "extension": "ublock@example.com"},
    {"action": "answer", "positive": true},
    {"action": "post_installation", "extension": "ublock@example.com"},
    {"action": "answer", "positive": true, "toggle": true},
    {"action": "installation_failed", "error": "incompatible", "extension_name": "Foo"},
    {"action": "answer", "positive": true},
    {"action": "installing", "value": true},
    {"action": "optional_permissions", "extension": "ublock@example.com", "permissions": ["tabs"]},
    {"action": "installing", "value": false},
    {"action": "consume"},
    {"action": "required_permissions", "extension": "dark@example.com"},
    {"action": "restart"},
    {"action": "answer", "positive": false}
  ]
}`

func TestRunner_Run(t *testing.T) {
	logger := logging.NewFromConfigValues("debug", "console")
	ctx, cancel := context.WithTimeout(logging.WithContext(context.Background(), logger), 30*time.Second)
	defer cancel()

	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "addons.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	addons := usecase.NewManageAddonsUseCase(sqlite.NewAddonRepository(db))

	var out bytes.Buffer
	surface := component.NewScriptedSurface(nil, &out)
	store := extensionstore.New()

	sc, err := Parse([]byte(fullScenario))
	require.NoError(t, err)

	runner := NewRunner(Config{
		Store:         store,
		Surface:       surface,
		Answerer:      surface,
		Addons:        addons,
		AppInfo:       build.NewAppInfo("Dumber", build.Info{Version: "9.9"}),
		SettleTimeout: 300 * time.Millisecond,
	})

	report, err := runner.Run(ctx, sc)
	require.NoError(t, err)

	assert.Equal(t, 5, report.Published)
	assert.Zero(t, report.Rejected)
	assert.Equal(t, 1, report.Restarts)
	assert.False(t, report.Pending)
	assert.Equal(t, []Decision{
		{ExtensionID: "ublock@example.com", Kind: "permissions_required", Granted: true},
		{ExtensionID: "dark@example.com", Kind: "permissions_required", Granted: false},
	}, report.Decisions)
	assert.Equal(t, []string{"ublock@example.com"}, report.PrivateBrowsing)
	assert.Zero(t, surface.Open())

	rendered := out.String()
	assert.Contains(t, rendered, "Add uBlock?")
	assert.Contains(t, rendered, "uBlock has been added")
	assert.Contains(t, rendered, "Blocks ads")
	assert.Contains(t, rendered, "Foo is not compatible with Dumber 9.9.")
	assert.NotContains(t, rendered, "requests additional permissions")

	private, err := addons.ListAllowedInPrivateBrowsing(ctx)
	require.NoError(t, err)
	require.Len(t, private, 1)
	assert.Equal(t, "ublock@example.com", private[0].ID)

	for _, ext := range store.Extensions() {
		switch ext.ID {
		case "ublock@example.com":
			assert.True(t, ext.Enabled)
			assert.True(t, ext.AllowedInPrivateBrowsing)
		case "dark@example.com":
			assert.False(t, ext.Enabled)
		}
	}
}

func TestRunner_RejectsWhileSlotBusy(t *testing.T) {
	ctx := logging.WithContext(context.Background(), logging.NewFromConfigValues("disabled", "console"))

	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "addons.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	surface := component.NewScriptedSurface(nil, nil)
	sc, err := Parse([]byte(`{
	  "extensions": [{"id": "a@example.com", "name": "A", "permissions": ["tabs"]}],
	  "steps": [
	    {"action": "required_permissions", "extension": "a@example.com"},
	    {"action": "post_installation", "extension": "a@example.com"}
	  ]
	}`))
	require.NoError(t, err)

	report, err := NewRunner(Config{
		Store:         extensionstore.New(),
		Surface:       surface,
		Answerer:      surface,
		Addons:        usecase.NewManageAddonsUseCase(sqlite.NewAddonRepository(db)),
		AppInfo:       build.NewAppInfo("Dumber", build.Info{}),
		SettleTimeout: 200 * time.Millisecond,
	}).Run(ctx, sc)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Published)
	assert.Equal(t, 1, report.Rejected)
	assert.True(t, report.Pending)
	assert.Equal(t, 1, surface.Open())
}

func TestRunner_InteractiveSettlesOnDroppedPrompt(t *testing.T) {
	ctx, cancel := context.WithTimeout(
		logging.WithContext(context.Background(), logging.NewFromConfigValues("disabled", "console")),
		10*time.Second,
	)
	defer cancel()

	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "addons.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	surface := component.NewScriptedSurface(nil, nil)
	sc, err := Parse([]byte(`{
	  "extensions": [{"id": "a@example.com", "name": "A", "permissions": ["tabs"]}],
	  "steps": [
	    {"action": "installing", "value": true},
	    {"action": "required_permissions", "extension": "a@example.com"}
	  ]
	}`))
	require.NoError(t, err)

	// No Answerer and no timeout, as with --interactive.
	report, err := NewRunner(Config{
		Store:   extensionstore.New(),
		Surface: surface,
		Addons:  usecase.NewManageAddonsUseCase(sqlite.NewAddonRepository(db)),
		AppInfo: build.NewAppInfo("Dumber", build.Info{}),
	}).Run(ctx, sc)
	require.NoError(t, err)
	require.NoError(t, ctx.Err())

	assert.Equal(t, 1, report.Published)
	assert.True(t, report.Pending)
	assert.Zero(t, surface.Open())
}

package scenario

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/dumber-addons/internal/application/port"
	"github.com/bnema/dumber-addons/internal/application/usecase"
	"github.com/bnema/dumber-addons/internal/domain/entity"
	"github.com/bnema/dumber-addons/internal/infrastructure/extensionstore"
	"github.com/bnema/dumber-addons/internal/logging"
	"github.com/bnema/dumber-addons/internal/ui/coordinator"
	"github.com/bnema/dumber-addons/internal/ui/dialog"
)

const (
	settlePoll  = 10 * time.Millisecond
	settleQuiet = 50 * time.Millisecond
	// settleIdle ends the wait for a prompt the coordinator left in the slot
	// without presenting a dialog.
	settleIdle = 500 * time.Millisecond
)

// Answerer answers dialogs without user input.
type Answerer interface {
	Answer(r dialog.Response)
}

// Config holds the collaborators of a Runner.
type Config struct {
	Store   *extensionstore.Store
	Surface dialog.Surface
	// Answerer is nil for interactive surfaces; answer steps are then skipped.
	Answerer Answerer
	Addons   *usecase.ManageAddonsUseCase
	AppInfo  port.AppInfo
	// SettleTimeout bounds the wait after each step. Zero waits until the
	// prompt is consumed, a dialog is open, or nothing changed for settleIdle.
	SettleTimeout time.Duration
}

// Decision is a permission answer delivered to the extension runtime.
type Decision struct {
	ExtensionID string
	Kind        string
	Granted     bool
}

// Report summarizes a run.
type Report struct {
	Published       int
	Rejected        int
	Restarts        int
	Decisions       []Decision
	PrivateBrowsing []string
	// Pending is true when a prompt was still unconsumed at the end.
	Pending bool
}

// Runner replays a scenario against an AddonPromptCoordinator.
type Runner struct {
	cfg     Config
	host    *dialog.Host
	surface *trackedSurface
	install *extensionstore.InstallFlag

	mu     sync.Mutex
	coord  *coordinator.AddonPromptCoordinator
	report Report
}

// NewRunner creates a runner. The dialog host lives as long as the runner, so
// dialogs survive coordinator restarts.
func NewRunner(cfg Config) *Runner {
	surface := &trackedSurface{Surface: cfg.Surface}
	return &Runner{
		cfg:     cfg,
		host:    dialog.NewHost(surface),
		surface: surface,
		install: &extensionstore.InstallFlag{},
	}
}

// trackedSurface counts dialogs presented but not yet answered.
type trackedSurface struct {
	dialog.Surface

	mu   sync.Mutex
	open int
}

func (s *trackedSurface) Present(ctx context.Context, view dialog.View, respond func(dialog.Response)) {
	s.mu.Lock()
	s.open++
	s.mu.Unlock()

	s.Surface.Present(ctx, view, func(resp dialog.Response) {
		s.mu.Lock()
		s.open--
		s.mu.Unlock()
		respond(resp)
	})
}

func (s *trackedSurface) Open() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Run seeds the store with the scenario's extensions and plays its steps.
func (r *Runner) Run(ctx context.Context, sc *Scenario) (*Report, error) {
	ctx = logging.WithComponent(ctx, "scenario")

	if err := r.seed(ctx, sc); err != nil {
		return nil, err
	}

	r.startCoordinator(ctx)
	defer r.stopCoordinator()

	g, gctx := errgroup.WithContext(ctx)
	feedDone := make(chan struct{})

	g.Go(func() error {
		defer close(feedDone)
		return r.feed(gctx, sc)
	})
	g.Go(func() error {
		return r.watch(gctx, feedDone)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	report := r.report
	report.Decisions = append([]Decision(nil), r.report.Decisions...)
	report.PrivateBrowsing = append([]string(nil), r.report.PrivateBrowsing...)
	report.Pending = r.cfg.Store.PromptRequest() != nil
	return &report, nil
}

func (r *Runner) seed(ctx context.Context, sc *Scenario) error {
	for _, ext := range sc.Extensions {
		r.cfg.Store.UpsertExtension(ext.Entity())

		meta := ext.Metadata()
		if meta.Summary == "" && meta.Author == "" && meta.Homepage == "" {
			continue
		}
		addon := entity.NewAddonFromExtension(ext.Entity(), false)
		if err := r.cfg.Addons.RecordInstalled(ctx, addon, meta); err != nil {
			return fmt.Errorf("seed %s: %w", ext.ID, err)
		}
	}
	return nil
}

func (r *Runner) newCoordinator() *coordinator.AddonPromptCoordinator {
	return coordinator.NewAddonPromptCoordinator(coordinator.AddonPromptDeps{
		Store:        r.cfg.Store,
		Dialogs:      r.host,
		Installation: r.install,
		Metadata:     r.cfg.Addons,
		Allowlist:    r.cfg.Addons,
		AppInfo:      r.cfg.AppInfo,
	}, r.addonChanged)
}

func (r *Runner) startCoordinator(ctx context.Context) {
	c := r.newCoordinator()
	r.mu.Lock()
	r.coord = c
	r.mu.Unlock()
	c.Start(ctx)
}

func (r *Runner) stopCoordinator() {
	r.mu.Lock()
	c := r.coord
	r.coord = nil
	r.mu.Unlock()
	if c != nil {
		c.Stop()
	}
}

func (r *Runner) feed(ctx context.Context, sc *Scenario) error {
	log := logging.FromContext(ctx)

	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Debug().Int("step", i+1).Str("action", string(step.Action)).Msg("running step")

		switch step.Action {
		case ActionInstalling:
			r.install.Set(step.Value)
			continue
		case ActionConsume:
			r.cfg.Store.ConsumePromptRequest(ctx)
		case ActionRestart:
			r.stopCoordinator()
			r.startCoordinator(ctx)
			r.mu.Lock()
			r.report.Restarts++
			r.mu.Unlock()
		case ActionAnswer:
			if r.cfg.Answerer == nil {
				log.Warn().Int("step", i+1).Msg("answer step skipped on interactive surface")
				continue
			}
			r.cfg.Answerer.Answer(dialog.Response{Positive: step.Positive, ToggleOn: step.Toggle})
		default:
			req, err := r.request(ctx, sc, step)
			if err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
			if !r.publish(ctx, i+1, req) {
				continue
			}
		}

		if err := r.settle(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) publish(ctx context.Context, step int, req entity.PromptRequest) bool {
	err := r.cfg.Store.SetPromptRequest(ctx, req)

	r.mu.Lock()
	defer r.mu.Unlock()

	if errors.Is(err, extensionstore.ErrPromptRequestPending) {
		logging.FromContext(ctx).Warn().Int("step", step).Msg("prompt slot busy, step rejected")
		r.report.Rejected++
		return false
	}
	r.report.Published++
	return true
}

func (r *Runner) request(ctx context.Context, sc *Scenario, step Step) (entity.PromptRequest, error) {
	if step.Action == ActionInstallationFailed {
		return entity.NewInstallationFailedRequest(entity.InstallError{
			Kind:          entity.ParseInstallErrorKind(step.Error),
			ExtensionName: step.ExtensionName,
		}), nil
	}

	ext, ok := sc.Extension(step.Extension)
	if !ok {
		return nil, fmt.Errorf("unknown extension %q", step.Extension)
	}

	switch step.Action {
	case ActionRequiredPermissions:
		perms := step.Permissions
		if len(perms) == 0 {
			perms = ext.Permissions
		}
		var req *entity.RequiredPermissionsRequest
		req = entity.NewRequiredPermissionsRequest(ext.Entity(), perms, func(granted bool) {
			r.decided(ctx, ext, entity.PromptKind(req), nil, granted)
		})
		return req, nil
	case ActionOptionalPermissions:
		var req *entity.OptionalPermissionsRequest
		req = entity.NewOptionalPermissionsRequest(ext.Entity(), step.Permissions, func(granted bool) {
			r.decided(ctx, ext, entity.PromptKind(req), step.Permissions, granted)
		})
		return req, nil
	case ActionPostInstallation:
		e := ext.Entity()
		e.Enabled = true
		return entity.NewPostInstallationRequest(e), nil
	}
	return nil, fmt.Errorf("action %q does not publish a prompt", step.Action)
}

// decided plays the extension runtime's part: a granted request enables the
// extension and records it.
func (r *Runner) decided(ctx context.Context, ext Extension, kind string, extra []string, granted bool) {
	r.mu.Lock()
	r.report.Decisions = append(r.report.Decisions, Decision{ExtensionID: ext.ID, Kind: kind, Granted: granted})
	r.mu.Unlock()

	if !granted {
		return
	}

	e := ext.Entity()
	e.Enabled = true
	e.Permissions = append(e.Permissions, extra...)
	r.cfg.Store.UpsertExtension(e)

	if err := r.cfg.Addons.RecordInstalled(ctx, entity.NewAddonFromExtension(e, true), ext.Metadata()); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("addon_id", ext.ID).Msg("failed to record addon")
	}
}

func (r *Runner) addonChanged(addon entity.Addon) {
	r.mu.Lock()
	if addon.AllowedInPrivateBrowsing {
		r.report.PrivateBrowsing = append(r.report.PrivateBrowsing, addon.ID)
	}
	r.mu.Unlock()

	for _, ext := range r.cfg.Store.Extensions() {
		if ext.ID == addon.ID {
			ext.AllowedInPrivateBrowsing = addon.AllowedInPrivateBrowsing
			r.cfg.Store.UpsertExtension(ext)
			return
		}
	}
}

type settleState struct {
	promptID string
	open     int
}

func (r *Runner) state() settleState {
	var st settleState
	if req := r.cfg.Store.PromptRequest(); req != nil {
		st.promptID = req.RequestID()
	}
	st.open = r.surface.Open()
	return st
}

// settle waits until the last step has been handled: the prompt slot is empty
// or a dialog is waiting for an answer, with no change for settleQuiet. A
// prompt left in the slot with no dialog open settles after settleIdle.
func (r *Runner) settle(ctx context.Context) error {
	ticker := time.NewTicker(settlePoll)
	defer ticker.Stop()

	var deadline time.Time
	if r.cfg.SettleTimeout > 0 {
		deadline = time.Now().Add(r.cfg.SettleTimeout)
	}

	last := r.state()
	stableSince := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		st := r.state()
		if st != last {
			last, stableSince = st, time.Now()
		}
		stable := time.Since(stableSince)
		if stable >= settleQuiet && (st.promptID == "" || st.open > 0) {
			return nil
		}
		if stable >= settleIdle && st.open == 0 {
			logging.FromContext(ctx).Debug().Str("request_id", st.promptID).Msg("prompt left in slot without a dialog")
			return nil
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			logging.FromContext(ctx).Debug().Str("request_id", st.promptID).Msg("prompt left pending")
			return nil
		}
	}
}

// watch logs prompt transitions until the feed is done.
func (r *Runner) watch(ctx context.Context, done <-chan struct{}) error {
	log := logging.FromContext(ctx)

	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	updates := r.cfg.Store.Subscribe(subCtx)

	var lastID string
	for {
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return nil
		case req, ok := <-updates:
			if !ok {
				return nil
			}
			id := ""
			if req != nil {
				id = req.RequestID()
			}
			if id == lastID {
				continue
			}
			if req == nil {
				log.Debug().Str("request_id", lastID).Msg("prompt consumed")
			} else {
				log.Info().Str("request_id", id).Str("kind", entity.PromptKind(req)).Msg("prompt published")
			}
			lastID = id
		}
	}
}

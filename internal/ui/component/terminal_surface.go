package component

import (
	"context"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/dumber-addons/internal/cli/styles"
	"github.com/bnema/dumber-addons/internal/logging"
	"github.com/bnema/dumber-addons/internal/ui/dialog"
)

// TerminalOptions configure a TerminalSurface.
type TerminalOptions struct {
	Theme     *styles.Theme
	AltScreen bool
	Input     io.Reader
	Output    io.Writer
}

type presentation struct {
	ctx     context.Context
	view    dialog.View
	respond func(dialog.Response)
}

// TerminalSurface presents dialogs one at a time as bubbletea programs.
// Present queues the dialog and returns immediately.
type TerminalSurface struct {
	opts TerminalOptions

	mu      sync.Mutex
	queue   []presentation
	notify  chan struct{}
	closed  bool
	stop    context.CancelFunc
	stopped chan struct{}

	run runFunc
}

type runFunc func(ctx context.Context, m PromptModel) (PromptModel, error)

// NewTerminalSurface starts the presentation worker. Call Close to stop it.
func NewTerminalSurface(ctx context.Context, opts TerminalOptions) *TerminalSurface {
	return newTerminalSurface(ctx, opts, nil)
}

func newTerminalSurface(ctx context.Context, opts TerminalOptions, run runFunc) *TerminalSurface {
	if opts.Theme == nil {
		opts.Theme = styles.NewTheme(nil)
	}

	ctx, cancel := context.WithCancel(logging.WithComponent(ctx, "terminal-surface"))
	s := &TerminalSurface{
		opts:    opts,
		notify:  make(chan struct{}, 1),
		stop:    cancel,
		stopped: make(chan struct{}),
	}
	s.run = run
	if s.run == nil {
		s.run = s.runProgram
	}

	go s.worker(ctx)
	return s
}

// Present implements dialog.Surface.
func (s *TerminalSurface) Present(ctx context.Context, view dialog.View, respond func(dialog.Response)) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		logging.FromContext(ctx).Warn().Str("tag", string(view.Tag)).Msg("surface closed, dialog dropped")
		return
	}
	s.queue = append(s.queue, presentation{ctx: ctx, view: view, respond: respond})
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// SetTheme changes the theme used for dialogs presented from now on.
func (s *TerminalSurface) SetTheme(theme *styles.Theme) {
	if theme == nil {
		return
	}
	s.mu.Lock()
	s.opts.Theme = theme
	s.mu.Unlock()
}

// Close stops the worker. Dialogs still queued are never answered.
func (s *TerminalSurface) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.stop()
	<-s.stopped
}

func (s *TerminalSurface) worker(ctx context.Context) {
	defer close(s.stopped)

	for {
		p, ok := s.next()
		if !ok {
			select {
			case <-ctx.Done():
				return
			case <-s.notify:
				continue
			}
		}

		s.present(ctx, p)
	}
}

func (s *TerminalSurface) next() (presentation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return presentation{}, false
	}
	p := s.queue[0]
	s.queue[0] = presentation{}
	s.queue = s.queue[1:]
	return p, true
}

func (s *TerminalSurface) present(ctx context.Context, p presentation) {
	log := logging.FromContext(p.ctx)

	s.mu.Lock()
	theme := s.opts.Theme
	s.mu.Unlock()

	final, err := s.run(ctx, NewPromptModel(theme, p.view))
	if err != nil {
		if ctx.Err() != nil {
			log.Debug().Str("tag", string(p.view.Tag)).Msg("surface stopped while dialog was open")
			return
		}
		log.Error().Err(err).Str("tag", string(p.view.Tag)).Msg("dialog program failed, treating as dismissed")
		p.respond(dialog.Response{})
		return
	}

	p.respond(final.Response())
}

func (s *TerminalSurface) runProgram(ctx context.Context, m PromptModel) (PromptModel, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if s.opts.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if s.opts.Input != nil {
		opts = append(opts, tea.WithInput(s.opts.Input))
	}
	if s.opts.Output != nil {
		opts = append(opts, tea.WithOutput(s.opts.Output))
	}

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return m, err
	}
	pm, ok := final.(PromptModel)
	if !ok {
		return m, nil
	}
	return pm, nil
}

var _ dialog.Surface = (*TerminalSurface)(nil)

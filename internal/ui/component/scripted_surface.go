package component

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/dumber-addons/internal/cli/styles"
	"github.com/bnema/dumber-addons/internal/logging"
	"github.com/bnema/dumber-addons/internal/ui/dialog"
)

// ScriptedSurface answers dialogs from a fixed list of responses, printing
// each rendered dialog to out. It is used for non-interactive runs.
type ScriptedSurface struct {
	theme *styles.Theme
	out   io.Writer

	mu      sync.Mutex
	answers []dialog.Response
	pending []pendingDialog
}

type pendingDialog struct {
	view    dialog.View
	respond func(dialog.Response)
}

// NewScriptedSurface creates a surface writing rendered dialogs to out.
func NewScriptedSurface(theme *styles.Theme, out io.Writer) *ScriptedSurface {
	if theme == nil {
		theme = styles.NewTheme(nil)
	}
	return &ScriptedSurface{theme: theme, out: out}
}

// Present implements dialog.Surface. Dialogs without a queued answer stay
// open until Answer is called.
func (s *ScriptedSurface) Present(ctx context.Context, view dialog.View, respond func(dialog.Response)) {
	if s.out != nil {
		_, _ = fmt.Fprintln(s.out, RenderView(s.theme, view, view.NegativeLabel == "", false))
	}
	logging.FromContext(ctx).Debug().Str("tag", string(view.Tag)).Msg("dialog presented")

	s.mu.Lock()
	s.pending = append(s.pending, pendingDialog{view: view, respond: respond})
	s.mu.Unlock()

	s.drain()
}

// Answer queues a response for the oldest open dialog, or the next one presented.
func (s *ScriptedSurface) Answer(r dialog.Response) {
	s.mu.Lock()
	s.answers = append(s.answers, r)
	s.mu.Unlock()

	s.drain()
}

// Open returns the number of dialogs waiting for an answer.
func (s *ScriptedSurface) Open() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *ScriptedSurface) drain() {
	for {
		s.mu.Lock()
		if len(s.pending) == 0 || len(s.answers) == 0 {
			s.mu.Unlock()
			return
		}
		p := s.pending[0]
		r := s.answers[0]
		s.pending = s.pending[1:]
		s.answers = s.answers[1:]
		s.mu.Unlock()

		// Responses run outside the lock; they may present follow-up dialogs.
		p.respond(r)
	}
}

var _ dialog.Surface = (*ScriptedSurface)(nil)

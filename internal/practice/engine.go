package practice

import (
	"log/slog"
	"time"

	"github.com/abhisek/wordiz/internal/vocab"
)

// Phase is the engine's top-level state.
type Phase int

const (
	PhaseSetup    Phase = iota // Choosing mode and range
	PhaseActive                // A session is running
	PhaseComplete              // The last session finished; chain actions apply
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseComplete:
		return "complete"
	default:
		return "setup"
	}
}

// Options configures an Engine. Zero values select the defaults.
type Options struct {
	// AutoAdvance is the delay before a correct answer moves on.
	AutoAdvance time.Duration

	// Shuffler orders each batch. Defaults to a clock-seeded one.
	Shuffler *Shuffler

	// Logger receives lifecycle events. Defaults to discarding them.
	Logger *slog.Logger
}

// Offers lists the chain actions available after a session completes.
type Offers struct {
	RetryBatch    bool
	RetryMistakes bool
	NextBatch     bool

	// Next is the range NextBatch would launch, when offered.
	Next BatchRange
}

// Engine drives practice over one source list. Its methods must be called
// from a single goroutine; deferred advances are delivered back through
// AutoAdvance.
type Engine struct {
	source   []vocab.LearningItem
	mode     Mode
	phase    Phase
	session  *SessionState
	last     BatchRange
	hasLast  bool
	pending  *Deferred
	delay    time.Duration
	shuffler *Shuffler
	log      *slog.Logger
}

// NewEngine creates an engine in the setup phase. The source list is
// copied and never modified.
func NewEngine(source []vocab.LearningItem, opts Options) *Engine {
	items := make([]vocab.LearningItem, len(source))
	copy(items, source)

	if opts.AutoAdvance <= 0 {
		opts.AutoAdvance = DefaultAutoAdvance
	}
	if opts.Shuffler == nil {
		opts.Shuffler = NewShuffler()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	return &Engine{
		source:   items,
		delay:    opts.AutoAdvance,
		shuffler: opts.Shuffler,
		log:      opts.Logger,
	}
}

// Len returns the size of the source list.
func (e *Engine) Len() int { return len(e.source) }

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Mode returns the mode the next session will use.
func (e *Engine) Mode() Mode { return e.mode }

// Session returns the active or completed session, or nil in setup.
func (e *Engine) Session() *SessionState { return e.session }

// LastRange returns the range of the most recent launch.
func (e *Engine) LastRange() (BatchRange, bool) { return e.last, e.hasLast }

// SetMode chooses the mode for subsequent sessions. Only valid in setup.
func (e *Engine) SetMode(m Mode) error {
	if e.phase != PhaseSetup {
		return ErrNotOffered
	}
	e.mode = m
	return nil
}

// SelectPreset launches a session over the first size items.
func (e *Engine) SelectPreset(size int) error {
	r, err := SelectPreset(len(e.source), size)
	if err != nil {
		e.log.Debug("preset rejected", "size", size, "error", err)
		return err
	}
	e.launch(r, e.shuffler.Batch(e.source, r), "preset")
	return nil
}

// SelectRange launches a session over an explicit 1-indexed range. On
// error the engine state is unchanged.
func (e *Engine) SelectRange(start, end int) error {
	r, err := SelectRange(len(e.source), start, end)
	if err != nil {
		e.log.Debug("range rejected", "start", start, "end", end, "error", err)
		return err
	}
	e.launch(r, e.shuffler.Batch(e.source, r), "range")
	return nil
}

// Submit grades a recall answer. On a correct answer it returns the
// scheduled auto-advance; the caller waits on its Done channel and then
// calls AutoAdvance with its Token.
func (e *Engine) Submit(text string) (Verdict, *Deferred, error) {
	s, err := e.active()
	if err != nil {
		return Ungraded, nil, err
	}
	v, err := s.Submit(text)
	if err != nil {
		return v, nil, err
	}

	e.log.Debug("answer graded", "session", s.ID, "position", s.Position, "verdict", v.String())
	if v != Correct {
		return v, nil, nil
	}
	e.cancelPending()
	e.pending = schedule(s.Token(), e.delay)
	return v, e.pending, nil
}

// AutoAdvance performs a scheduled advance. It reports false and does
// nothing if the token is stale: the session was replaced, the item was
// already left, or the task was cancelled.
func (e *Engine) AutoAdvance(tok Token) bool {
	d := e.pending
	if d == nil || d.Token != tok || !d.Fired() {
		return false
	}
	s := e.session
	if s == nil || s.Complete || s.Token() != tok {
		return false
	}
	e.pending = nil
	return e.advance(s) == nil
}

// Advance moves to the next item, counting an ungraded recall item as
// skipped. A pending auto-advance is cancelled so the move happens once.
func (e *Engine) Advance() error {
	s, err := e.active()
	if err != nil {
		return err
	}
	e.cancelPending()
	return e.advance(s)
}

// Flip turns the current card over (recognition).
func (e *Engine) Flip() error {
	s, err := e.active()
	if err != nil {
		return err
	}
	return s.Flip()
}

// Back returns to the previous card (recognition).
func (e *Engine) Back() error {
	s, err := e.active()
	if err != nil {
		return err
	}
	return s.Back()
}

// Offers reports the chain actions available now. Nothing is offered
// unless a session has completed.
func (e *Engine) Offers() Offers {
	if e.phase != PhaseComplete || e.session == nil {
		return Offers{}
	}
	o := Offers{RetryBatch: true}
	if e.session.Mode == ModeRecall && len(e.session.Mistakes) > 0 {
		o.RetryMistakes = true
	}
	if next, ok := NextRange(e.last, e.last.Size(), len(e.source)); ok {
		o.NextBatch = true
		o.Next = next
	}
	return o
}

// Report returns the summary of the completed session.
func (e *Engine) Report() (Report, error) {
	if e.phase != PhaseComplete || e.session == nil {
		return Report{}, ErrNoSession
	}
	return e.session.Report(), nil
}

// RetryBatch reshuffles the last range and starts over with fresh counts.
func (e *Engine) RetryBatch() error {
	if !e.Offers().RetryBatch {
		return ErrNotOffered
	}
	e.launch(e.last, e.shuffler.Batch(e.source, e.last), "retry_batch")
	return nil
}

// RetryMistakes starts a session over exactly the items missed in the
// last session, duplicates included. The range is kept so NextBatch
// continues after it.
func (e *Engine) RetryMistakes() error {
	if !e.Offers().RetryMistakes {
		return ErrNotOffered
	}
	items := e.shuffler.Shuffle(e.session.Mistakes)
	e.launch(e.last, items, "retry_mistakes")
	return nil
}

// NextBatch launches the window after the last range, with the same size.
func (e *Engine) NextBatch() error {
	o := e.Offers()
	if !o.NextBatch {
		return ErrNotOffered
	}
	e.launch(o.Next, e.shuffler.Batch(e.source, o.Next), "next_batch")
	return nil
}

// ReturnToSetup discards any session and goes back to range selection.
func (e *Engine) ReturnToSetup() {
	e.cancelPending()
	e.session = nil
	e.phase = PhaseSetup
}

func (e *Engine) launch(r BatchRange, items []vocab.LearningItem, reason string) {
	e.cancelPending()
	e.session = NewSession(e.mode, r, items)
	e.last = r
	e.hasLast = true
	e.phase = PhaseActive
	e.log.Info("session started",
		"session", e.session.ID,
		"reason", reason,
		"mode", e.mode.String(),
		"start", r.Start,
		"end", r.End,
		"items", len(items),
	)
}

func (e *Engine) advance(s *SessionState) error {
	if err := s.Advance(); err != nil {
		return err
	}
	if s.Complete {
		e.phase = PhaseComplete
		e.log.Info("session complete",
			"session", s.ID,
			"mode", s.Mode.String(),
			"total", len(s.Items),
			"correct", s.Correct,
			"wrong", s.Wrong,
		)
	}
	return nil
}

func (e *Engine) active() (*SessionState, error) {
	switch {
	case e.session == nil:
		return nil, ErrNoSession
	case e.phase == PhaseComplete:
		return nil, ErrSessionComplete
	default:
		return e.session, nil
	}
}

func (e *Engine) cancelPending() {
	if e.pending != nil {
		e.pending.Cancel()
		e.pending = nil
	}
}

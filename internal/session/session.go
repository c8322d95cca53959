package session

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"lectern/internal/export"
	"lectern/internal/i18n"
	"lectern/internal/lesson"
	"lectern/internal/logging"
	"lectern/internal/services"
	"lectern/internal/slides"
)

// ErrExportInProgress is returned when Export is called while another export runs.
var ErrExportInProgress = errors.New("export already in progress")

// Generator produces slide content for a topic. An error means the attempt
// failed and the slot stays empty.
type Generator interface {
	Generate(ctx context.Context, topic lesson.Topic) (slides.Content, error)
}

// Options configures a Session.
type Options struct {
	Title             string
	Localizer         *i18n.Localizer
	GenerationTimeout time.Duration
	StatusTTL         time.Duration
	Logger            *slog.Logger
}

const defaultStatusTTL = 3 * time.Second

// stopper is the part of *time.Timer the status clear needs.
type stopper interface {
	Stop() bool
}

// Session is the single-user orchestrator for one deck.
type Session struct {
	id        string
	title     string
	plan      *lesson.Plan
	generator Generator
	exporter  export.Exporter
	localizer *i18n.Localizer
	timeout   time.Duration
	statusTTL time.Duration
	logger    *slog.Logger
	afterFunc func(time.Duration, func()) stopper

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu          sync.Mutex
	deck        *slides.Deck
	position    int
	pending     map[int]struct{}
	lastErr     string
	exporting   bool
	status      StatusMessage
	statusTimer stopper
	statusSeq   uint64
	lastExport  *export.Result
}

// New creates a session over plan. The session owns background goroutines
// until Close is called.
func New(plan *lesson.Plan, generator Generator, exporter export.Exporter, opts Options) *Session {
	localizer := opts.Localizer
	if localizer == nil {
		localizer = i18n.New("")
	}
	ttl := opts.StatusTTL
	if ttl <= 0 {
		ttl = defaultStatusTTL
	}
	title := opts.Title
	if title == "" {
		title = plan.Title()
	}
	id := uuid.NewString()
	ctx, cancel := context.WithCancel(services.WithSessionID(context.Background(), id))
	return &Session{
		id:        id,
		title:     title,
		plan:      plan,
		generator: generator,
		exporter:  exporter,
		localizer: localizer,
		timeout:   opts.GenerationTimeout,
		statusTTL: ttl,
		logger:    logging.NewComponentLogger(opts.Logger, "session"),
		afterFunc: func(d time.Duration, f func()) stopper { return time.AfterFunc(d, f) },
		ctx:       ctx,
		cancel:    cancel,
		deck:      slides.NewDeck(plan.Len()),
		position:  -1,
		pending:   make(map[int]struct{}),
	}
}

// ID returns the session identifier used in logs and export history.
func (s *Session) ID() string { return s.id }

// Title returns the presentation title used for export.
func (s *Session) Title() string { return s.title }

// Plan returns the lesson plan the session walks.
func (s *Session) Plan() *lesson.Plan { return s.plan }

// Start moves to the first slide and generates it if it was never attempted.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.plan.Len() == 0 {
		return
	}
	s.position = 0
	s.autoGenerateLocked(0)
}

// Advance moves to the next slide unless the current one is the last. It
// reports whether the position changed.
func (s *Session) Advance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.position >= s.plan.Len()-1 {
		return false
	}
	s.position++
	s.autoGenerateLocked(s.position)
	return true
}

// Retreat moves to the previous slide. It never triggers generation.
func (s *Session) Retreat() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.position <= 0 {
		return false
	}
	s.position--
	return true
}

// Generate requests content for slot p. It is a no-op when p is out of
// range, the slot is filled, or a request for it is already running, and
// reports whether a request was started.
func (s *Session) Generate(p int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generateLocked(p)
}

func (s *Session) autoGenerateLocked(p int) {
	if s.deck.Attempted(p) {
		return
	}
	s.generateLocked(p)
}

func (s *Session) generateLocked(p int) bool {
	topic, ok := s.plan.At(p)
	if !ok || s.deck.Present(p) {
		return false
	}
	if _, running := s.pending[p]; running {
		return false
	}
	if s.ctx.Err() != nil {
		return false
	}
	s.deck.MarkAttempted(p)
	s.pending[p] = struct{}{}
	s.lastErr = ""
	s.wg.Add(1)
	go s.run(p, topic)
	return true
}

func (s *Session) run(p int, topic lesson.Topic) {
	defer s.wg.Done()

	ctx := services.WithSlot(s.ctx, p)
	cancel := func() {}
	if s.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
	}
	defer cancel()
	logger := logging.WithContext(ctx, s.logger)

	started := time.Now()
	logger.Debug("slide generation started", logging.String(logging.FieldTopicType, topic.Type.String()))
	content, err := s.generator.Generate(ctx, topic)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, p)
	if err != nil {
		s.lastErr = s.localizer.T(i18n.GenerationFailed)
		impact := "slide stays empty until regenerated"
		if errors.Is(err, context.DeadlineExceeded) {
			impact = "slide timed out and stays empty until regenerated"
		}
		logging.WarnWithContext(logger, "slide generation failed", "slide_generation_failed",
			logging.Error(err),
			logging.Duration("elapsed", time.Since(started)),
			logging.String(logging.FieldErrorHint, "raise generation.timeout_seconds or check the llm provider"),
			logging.String(logging.FieldImpact, impact),
		)
		return
	}
	s.deck.Set(p, content.Normalize())
	logger.Info("slide ready",
		logging.String(logging.FieldEventType, "slide_ready"),
		logging.Duration("elapsed", time.Since(started)),
	)
}

// Wait blocks until every in-flight generation has finished.
func (s *Session) Wait() {
	s.wg.Wait()
}

// Close cancels in-flight generations, waits for them, and stops the status timer.
func (s *Session) Close() {
	s.cancel()
	s.wg.Wait()
	s.mu.Lock()
	if s.statusTimer != nil {
		s.statusTimer.Stop()
		s.statusTimer = nil
	}
	s.mu.Unlock()
}

// Export writes every filled slot, in outline order, through the exporter.
func (s *Session) Export(ctx context.Context) (export.Result, error) {
	s.mu.Lock()
	if s.exporting {
		s.mu.Unlock()
		return export.Result{}, ErrExportInProgress
	}
	deck := s.deck.Filled()
	if len(deck) == 0 {
		s.setStatusLocked(StatusError, s.localizer.T(i18n.ExportNoSlides), true)
		s.mu.Unlock()
		return export.Result{}, export.ErrNoSlides
	}
	s.exporting = true
	s.setStatusLocked(StatusInfo, s.localizer.T(i18n.ExportPreparing), false)
	s.mu.Unlock()

	ctx = services.WithSessionID(ctx, s.id)
	result, err := s.exporter.Export(ctx, deck, s.title)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.exporting = false
	if err != nil {
		s.setStatusLocked(StatusError, s.localizer.T(i18n.ExportFailed), true)
		logging.WarnWithContext(logging.WithContext(ctx, s.logger), "export failed", "session_export_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "see export component logs"),
			logging.String(logging.FieldImpact, "viewer shows the export failure message"),
		)
		return export.Result{}, err
	}
	s.lastExport = &result
	s.setStatusLocked(StatusSuccess, s.localizer.T(i18n.ExportSucceeded), true)
	return result, nil
}

// LastExport returns the most recent successful export, if any.
func (s *Session) LastExport() (export.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastExport == nil {
		return export.Result{}, false
	}
	return *s.lastExport, true
}

// Snapshot returns a consistent copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := s.plan.Len()
	loading := len(s.pending) > 0
	snap := Snapshot{
		SessionID: s.id,
		Title:     s.title,
		Position:  s.position,
		Total:     total,
		Started:   s.position >= 0,
		Loading:   loading,
		Error:     s.lastErr,
		Exporting: s.exporting,
		Status:    s.status,
		Filled:    s.deck.Count(),
		CanNext:   !loading && !s.exporting && s.position < total-1,
		CanPrev:   !loading && !s.exporting && s.position > 0,
		CanExport: !loading && !s.exporting && s.deck.Any(),
		Slots:     s.deck.Statuses(),
	}
	for p := range s.pending {
		snap.Pending = append(snap.Pending, p)
	}
	sort.Ints(snap.Pending)
	if topic, ok := s.plan.At(s.position); ok {
		snap.Topic = &topic
		if content, present := s.deck.Get(s.position); present {
			snap.Slide = &content
		}
		_, snap.CurrentPending = s.pending[s.position]
	}
	if s.lastExport != nil {
		res := *s.lastExport
		snap.LastExport = &res
	}
	return snap
}

// Slide returns the content of slot p when present.
func (s *Session) Slide(p int) (slides.Content, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.Get(p)
}

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/sync/errgroup"

	"lectern/internal/exportlog"
	"lectern/internal/i18n"
	"lectern/internal/logging"
	"lectern/internal/session"
)

// ErrAlreadyRunning is returned by Run when another viewer holds the lock.
var ErrAlreadyRunning = errors.New("another lectern viewer is already running")

// HistoryLister lists recorded exports.
type HistoryLister interface {
	List(ctx context.Context, limit int) ([]exportlog.Entry, error)
}

// Options configures the viewer server.
type Options struct {
	Bind      string
	Token     string
	OutputDir string
	LockPath  string
	Localizer *i18n.Localizer
	History   HistoryLister
	Logger    *slog.Logger
}

// Server serves one session over HTTP.
type Server struct {
	session   *session.Session
	bind      string
	token     string
	outputDir string
	lockPath  string
	localizer *i18n.Localizer
	history   HistoryLister
	logger    *slog.Logger
	viewer    *viewer

	baseCtx    context.Context
	cancelBase context.CancelFunc
	background sync.WaitGroup

	addrMu sync.Mutex
	addr   string
	ready  chan struct{}
}

// New builds a server for sess.
func New(sess *session.Session, opts Options) *Server {
	localizer := opts.Localizer
	if localizer == nil {
		localizer = i18n.New("")
	}
	baseCtx, cancel := context.WithCancel(context.Background())
	return &Server{
		session:    sess,
		bind:       strings.TrimSpace(opts.Bind),
		token:      opts.Token,
		outputDir:  opts.OutputDir,
		lockPath:   opts.LockPath,
		localizer:  localizer,
		history:    opts.History,
		logger:     logging.NewComponentLogger(opts.Logger, "viewer"),
		viewer:     newViewer(localizer),
		baseCtx:    baseCtx,
		cancelBase: cancel,
		ready:      make(chan struct{}),
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleViewer)
	mux.HandleFunc("POST /start", s.handleFormStart)
	mux.HandleFunc("POST /next", s.handleFormNext)
	mux.HandleFunc("POST /prev", s.handleFormPrev)
	mux.HandleFunc("POST /export", s.handleFormExport)
	mux.HandleFunc("POST /slides/{n}/generate", s.handleFormGenerate)
	mux.HandleFunc("GET /download/{file}", s.handleDownload)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	api := http.NewServeMux()
	api.HandleFunc("GET /api/state", s.handleState)
	api.HandleFunc("POST /api/start", s.handleAPIStart)
	api.HandleFunc("POST /api/next", s.handleAPINext)
	api.HandleFunc("POST /api/prev", s.handleAPIPrev)
	api.HandleFunc("POST /api/export", s.handleAPIExport)
	api.HandleFunc("POST /api/slides/{n}/generate", s.handleAPIGenerate)
	api.HandleFunc("GET /api/exports", s.handleExports)
	mux.Handle("/api/", authMiddleware(s.token, api))

	return requestLogging(s.logger, mux)
}

// Run acquires the single-instance lock, serves until ctx ends, and then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	if s.bind == "" {
		return errors.New("viewer bind address is empty")
	}
	if s.lockPath != "" {
		if err := os.MkdirAll(filepath.Dir(s.lockPath), 0o755); err != nil {
			return fmt.Errorf("create lock dir: %w", err)
		}
		lock := flock.New(s.lockPath)
		ok, err := lock.TryLock()
		if err != nil {
			return fmt.Errorf("acquire lock: %w", err)
		}
		if !ok {
			return ErrAlreadyRunning
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				s.logger.Warn("failed to release viewer lock", logging.Error(err))
			}
		}()
	}

	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("viewer listen: %w", err)
	}
	s.addrMu.Lock()
	s.addr = listener.Addr().String()
	s.addrMu.Unlock()
	close(s.ready)

	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       60 * time.Second,
	}

	s.logger.Info("viewer listening",
		logging.String(logging.FieldEventType, "viewer_started"),
		logging.String("address", "http://"+listener.Addr().String()),
		logging.String(logging.FieldSessionID, s.session.ID()),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("viewer serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	s.cancelBase()
	s.background.Wait()
	s.logger.Info("viewer stopped", logging.String(logging.FieldEventType, "viewer_stopped"))
	return err
}

// Ready is closed once Run is listening.
func (s *Server) Ready() <-chan struct{} { return s.ready }

// Addr returns the listening address once Ready is closed.
func (s *Server) Addr() string {
	s.addrMu.Lock()
	defer s.addrMu.Unlock()
	return s.addr
}

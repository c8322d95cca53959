package export

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"lectern/internal/exportlog"
	"lectern/internal/logging"
	"lectern/internal/notifications"
	"lectern/internal/services"
	"lectern/internal/slides"
)

// Recorder stores export history entries.
type Recorder interface {
	Record(ctx context.Context, entry exportlog.Entry) (exportlog.Entry, error)
}

// Service runs an exporter and records plus announces each attempt. History
// and notification failures are logged and never fail the export.
type Service struct {
	exporter Exporter
	history  Recorder
	notifier notifications.Service
	logger   *slog.Logger
}

// NewService wires exporter with optional history and notifier.
func NewService(exporter Exporter, history Recorder, notifier notifications.Service, logger *slog.Logger) *Service {
	return &Service{
		exporter: exporter,
		history:  history,
		notifier: notifier,
		logger:   logging.NewComponentLogger(logger, "export"),
	}
}

// Export renders deck through the wrapped exporter.
func (s *Service) Export(ctx context.Context, deck []slides.Content, title string) (Result, error) {
	logger := logging.WithContext(ctx, s.logger)
	if len(deck) == 0 {
		return Result{}, ErrNoSlides
	}

	started := time.Now()
	result, err := s.exporter.Export(ctx, deck, title)
	entry := exportlog.Entry{
		Title:      title,
		SlideCount: len(deck),
		CreatedAt:  started,
	}
	if id, ok := services.SessionIDFromContext(ctx); ok {
		entry.SessionID = id
	}

	if err != nil {
		if errors.Is(err, ErrNoSlides) {
			return Result{}, err
		}
		logging.ErrorWithContext(logger, "presentation export failed", "export_failed",
			logging.Error(err),
			logging.Int("slides", len(deck)),
			logging.String(logging.FieldErrorHint, "check that output_dir is writable"),
			logging.String(logging.FieldImpact, "no presentation file was written"),
		)
		entry.Status = exportlog.StatusFailed
		entry.Error = err.Error()
		s.record(ctx, logger, entry)
		if s.notifier != nil {
			if notifyErr := s.notifier.NotifyExportFailed(ctx, title, err); notifyErr != nil {
				logger.Debug("export failure notification not sent", logging.Error(notifyErr))
			}
		}
		return Result{}, err
	}

	logger.Info("presentation exported",
		logging.String(logging.FieldEventType, "export_completed"),
		logging.String("file", result.Path),
		logging.Int("slides", result.Slides),
		logging.Int("bytes", int(result.Bytes)),
		logging.Duration("elapsed", time.Since(started)),
	)
	entry.Status = exportlog.StatusSucceeded
	entry.FileName = result.FileName
	entry.FilePath = result.Path
	s.record(ctx, logger, entry)
	if s.notifier != nil {
		if notifyErr := s.notifier.NotifyExportCompleted(ctx, title, result.FileName, result.Slides); notifyErr != nil {
			logging.WarnWithContext(logger, "export notification failed", "notification_failed",
				logging.Error(notifyErr),
				logging.String(logging.FieldErrorHint, "check notifications.ntfy_topic"),
				logging.String(logging.FieldImpact, "export succeeded without a push notification"),
			)
		}
	}
	return result, nil
}

func (s *Service) record(ctx context.Context, logger *slog.Logger, entry exportlog.Entry) {
	if s.history == nil {
		return
	}
	if _, err := s.history.Record(context.WithoutCancel(ctx), entry); err != nil {
		logging.WarnWithContext(logger, "export history not recorded", "export_history_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check state_dir permissions"),
			logging.String(logging.FieldImpact, "lectern exports will not list this attempt"),
		)
	}
}

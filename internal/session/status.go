package session

import (
	"time"

	"lectern/internal/export"
	"lectern/internal/lesson"
	"lectern/internal/slides"
)

// StatusKind classifies a transient status message.
type StatusKind string

const (
	StatusInfo    StatusKind = "info"
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
)

// StatusMessage is the transient export feedback line.
type StatusMessage struct {
	Kind StatusKind `json:"kind,omitempty"`
	Text string     `json:"text,omitempty"`
}

// Empty reports whether no message is shown.
func (m StatusMessage) Empty() bool { return m.Text == "" }

// Snapshot is a point-in-time view of a session.
type Snapshot struct {
	SessionID      string          `json:"session_id"`
	Title          string          `json:"title"`
	Position       int             `json:"position"`
	Total          int             `json:"total"`
	Started        bool            `json:"started"`
	Topic          *lesson.Topic   `json:"topic,omitempty"`
	Slide          *slides.Content `json:"slide,omitempty"`
	CurrentPending bool            `json:"current_pending"`
	Loading        bool            `json:"loading"`
	Pending        []int           `json:"pending,omitempty"`
	Error          string          `json:"error,omitempty"`
	Exporting      bool            `json:"exporting"`
	Status         StatusMessage   `json:"status"`
	Filled         int             `json:"filled"`
	CanNext        bool            `json:"can_next"`
	CanPrev        bool            `json:"can_prev"`
	CanExport      bool            `json:"can_export"`
	Slots          []slides.Status `json:"slots"`
	LastExport     *export.Result  `json:"last_export,omitempty"`
}

// setStatusLocked replaces the status message. When expire is set the
// message clears after the TTL unless a newer message replaces it first.
func (s *Session) setStatusLocked(kind StatusKind, text string, expire bool) {
	if s.statusTimer != nil {
		s.statusTimer.Stop()
		s.statusTimer = nil
	}
	s.statusSeq++
	seq := s.statusSeq
	s.status = StatusMessage{Kind: kind, Text: text}
	if !expire {
		return
	}
	s.statusTimer = s.afterFunc(s.statusTTL, func() { s.clearStatus(seq) })
}

func (s *Session) clearStatus(seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.statusSeq != seq {
		return
	}
	s.status = StatusMessage{}
	s.statusTimer = nil
}

// StatusTTL returns how long export feedback stays visible.
func (s *Session) StatusTTL() time.Duration { return s.statusTTL }

package view

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-sim/internal/domain/entities"
)

// ListView is the meeting list screen. At most one meeting is open in a
// DetailView at a time.
type ListView struct {
	mu      sync.Mutex
	backend Backend
	alerter Alerter
	logger  *zap.Logger

	meetings []*entities.Meeting
	loading  bool
	selected *DetailView
}

// NewListView creates an empty list view; call Load to populate it
func NewListView(backend Backend, alerter Alerter, logger *zap.Logger) *ListView {
	if logger == nil {
		logger = zap.NewNop()
	}
	if alerter == nil {
		alerter = LogAlerter{Logger: logger}
	}
	return &ListView{
		backend: backend,
		alerter: alerter,
		logger:  logger,
	}
}

// Meetings returns a copy of the loaded meetings
func (l *ListView) Meetings() []*entities.Meeting {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*entities.Meeting, len(l.meetings))
	for i, m := range l.meetings {
		out[i] = m.Clone()
	}
	return out
}

// IsLoading reports whether a list operation is in flight
func (l *ListView) IsLoading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Selected returns the open detail view, or nil on the list screen
func (l *ListView) Selected() *DetailView {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.selected
}

// Load fetches the meeting list. Failures are logged; the previous list stays.
func (l *ListView) Load(ctx context.Context) error {
	l.setLoading(true)
	defer l.setLoading(false)

	meetings, err := l.backend.GetMeetings(ctx).Await(ctx)
	if err != nil {
		l.logger.Error("failed to load meetings", zap.Error(err))
		return err
	}

	l.mu.Lock()
	l.meetings = meetings
	l.mu.Unlock()
	return nil
}

// Create creates a meeting from a title and a comma separated participant
// list, reloads the list and opens the new meeting.
func (l *ListView) Create(ctx context.Context, title, participantsInput string) (*DetailView, error) {
	l.setLoading(true)
	defer l.setLoading(false)

	created, err := l.backend.CreateMeeting(ctx, title, ParseParticipants(participantsInput)).Await(ctx)
	if err != nil {
		l.logger.Error("failed to create meeting", zap.Error(err))
		l.alerter.Alert(fmt.Sprintf(msgOperationFailed, "Create meeting", userMessage(err)))
		return nil, err
	}

	meetings, err := l.backend.GetMeetings(ctx).Await(ctx)
	if err != nil {
		l.logger.Error("failed to reload meetings", zap.Error(err))
		l.alerter.Alert(fmt.Sprintf(msgOperationFailed, "Reload meetings", userMessage(err)))
		return nil, err
	}

	l.mu.Lock()
	l.meetings = meetings
	l.mu.Unlock()

	if m, err := l.find(created.ID); err == nil {
		created = m
	}
	return l.open(created), nil
}

// Select opens the meeting with the given id, or the unique meeting whose id
// starts with it. The detail view is synced with the backend before returning.
func (l *ListView) Select(ctx context.Context, idOrPrefix string) (*DetailView, error) {
	m, err := l.find(idOrPrefix)
	if err != nil {
		return nil, err
	}
	dv := l.open(m)
	_ = dv.Refresh(ctx)
	return dv, nil
}

// Back closes the detail view and reloads the list
func (l *ListView) Back(ctx context.Context) error {
	l.mu.Lock()
	l.selected = nil
	l.mu.Unlock()
	return l.Load(ctx)
}

func (l *ListView) open(m *entities.Meeting) *DetailView {
	dv := NewDetailView(l.backend, m, l.alerter, l.logger)
	l.mu.Lock()
	l.selected = dv
	l.mu.Unlock()
	return dv
}

func (l *ListView) find(idOrPrefix string) (*entities.Meeting, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var match *entities.Meeting
	for _, m := range l.meetings {
		if m.ID == idOrPrefix {
			return m, nil
		}
		if idOrPrefix != "" && strings.HasPrefix(m.ID, idOrPrefix) {
			if match != nil {
				return nil, fmt.Errorf("meeting id %q is ambiguous", idOrPrefix)
			}
			match = m
		}
	}
	if match == nil {
		return nil, fmt.Errorf("meeting %q not in list", idOrPrefix)
	}
	return match, nil
}

func (l *ListView) setLoading(v bool) {
	l.mu.Lock()
	l.loading = v
	l.mu.Unlock()
}

// ParseParticipants splits a comma separated list, trimming entries and
// dropping blanks
func ParseParticipants(input string) []string {
	out := []string{}
	for _, p := range strings.Split(input, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

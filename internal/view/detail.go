package view

import (
	"context"
	stdErrors "errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-sim/errors"
	"github.com/johnquangdev/meeting-sim/internal/domain/entities"
)

// Tab is the selected section of the detail view
type Tab string

const (
	TabDetails       Tab = "details"
	TabTranscription Tab = "transcription"
	TabSummary       Tab = "summary"
)

// ParseTab converts user input to a Tab
func ParseTab(s string) (Tab, error) {
	switch Tab(s) {
	case TabDetails, TabTranscription, TabSummary:
		return Tab(s), nil
	}
	return "", fmt.Errorf("unknown tab %q", s)
}

// User-facing messages
const (
	MsgPlayRecording   = "This would play the recording in a real implementation"
	MsgSaveFailed      = "Failed to save changes"
	MsgItemComplete    = "Action item marked as complete"
	MsgItemIncomplete  = "Action item marked as incomplete"
	msgOperationFailed = "%s failed: %s"
)

var (
	// ErrTabDisabled is returned when a tab's data does not exist yet
	ErrTabDisabled = stdErrors.New("tab is not available yet")
	// ErrUnknownActionItem is returned when toggling an id not on the working copy
	ErrUnknownActionItem = stdErrors.New("action item not found")
	// ErrBusy is returned when the same operation is already in flight
	ErrBusy = stdErrors.New("operation already in progress")
)

// TxState is the lifecycle of an optimistic local update
type TxState string

const (
	TxAppliedLocally TxState = "applied-locally"
	TxConfirmed      TxState = "confirmed"
	TxRolledBack     TxState = "rolled-back"
)

// ToggleTransaction tracks one optimistic action-item toggle
type ToggleTransaction struct {
	ItemID   string
	Previous bool
	State    TxState
	Err      error
}

// DetailState is a render-ready copy of a detail view
type DetailState struct {
	Meeting              *entities.Meeting
	ActiveTab            Tab
	IsRecording          bool
	LoadingTranscription bool
	LoadingSummary       bool
}

// DetailView is the per-meeting screen. It keeps a working copy of the
// meeting and re-reads it after every call that mutates the store.
type DetailView struct {
	mu      sync.Mutex
	backend Backend
	alerter Alerter
	logger  *zap.Logger

	current              *entities.Meeting
	activeTab            Tab
	isRecording          bool
	loadingTranscription bool
	loadingSummary       bool
}

// NewDetailView opens a meeting on the details tab
func NewDetailView(backend Backend, m *entities.Meeting, alerter Alerter, logger *zap.Logger) *DetailView {
	if logger == nil {
		logger = zap.NewNop()
	}
	if alerter == nil {
		alerter = LogAlerter{Logger: logger}
	}
	return &DetailView{
		backend:   backend,
		alerter:   alerter,
		logger:    logger,
		current:   m.Clone(),
		activeTab: TabDetails,
	}
}

// MeetingID returns the id of the displayed meeting
func (v *DetailView) MeetingID() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current.ID
}

// State returns a copy of the view state
func (v *DetailView) State() DetailState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return DetailState{
		Meeting:              v.current.Clone(),
		ActiveTab:            v.activeTab,
		IsRecording:          v.isRecording,
		LoadingTranscription: v.loadingTranscription,
		LoadingSummary:       v.loadingSummary,
	}
}

// ActiveTab returns the selected tab
func (v *DetailView) ActiveTab() Tab {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.activeTab
}

// TabEnabled reports whether the data backing tab exists on the working copy
func (v *DetailView) TabEnabled(tab Tab) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.tabEnabledLocked(tab)
}

func (v *DetailView) tabEnabledLocked(tab Tab) bool {
	switch tab {
	case TabDetails:
		return true
	case TabTranscription:
		return v.current.HasTranscription()
	case TabSummary:
		return v.current.HasSummary()
	}
	return false
}

// SelectTab switches tabs; disabled tabs are refused
func (v *DetailView) SelectTab(tab Tab) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.tabEnabledLocked(tab) {
		return fmt.Errorf("%s: %w", tab, ErrTabDisabled)
	}
	v.activeTab = tab
	return nil
}

// Refresh replaces the working copy with a fresh read from the backend.
// Failures are logged and the stale copy is kept.
func (v *DetailView) Refresh(ctx context.Context) error {
	id := v.MeetingID()
	fresh, err := v.backend.GetMeeting(ctx, id).Await(ctx)
	if err != nil {
		v.logger.Error("failed to refresh meeting", zap.String("meeting_id", id), zap.Error(err))
		return err
	}

	v.mu.Lock()
	v.current = fresh
	// a tab can lose its data after a refresh
	if !v.tabEnabledLocked(v.activeTab) {
		v.activeTab = TabDetails
	}
	v.mu.Unlock()
	return nil
}

// PlayRecording stands in for playback
func (v *DetailView) PlayRecording() {
	v.alerter.Alert(MsgPlayRecording)
}

// StartRecording asks the backend to start recording and picks up the locator
func (v *DetailView) StartRecording(ctx context.Context) error {
	v.mu.Lock()
	if v.isRecording {
		v.mu.Unlock()
		return ErrBusy
	}
	v.isRecording = true
	id := v.current.ID
	v.mu.Unlock()

	_, err := v.backend.StartRecording(ctx, id).Await(ctx)

	v.mu.Lock()
	v.isRecording = false
	if err == nil {
		url := entities.RecordingLocator(id)
		v.current.RecordingURL = &url
	}
	v.mu.Unlock()
	if err != nil {
		return v.fail("Start recording", err)
	}

	_ = v.Refresh(ctx)
	return nil
}

// GenerateTranscription requests the mock transcript and opens its tab
func (v *DetailView) GenerateTranscription(ctx context.Context) error {
	v.mu.Lock()
	if v.loadingTranscription {
		v.mu.Unlock()
		return ErrBusy
	}
	v.loadingTranscription = true
	id := v.current.ID
	v.mu.Unlock()

	segments, err := v.backend.GenerateTranscription(ctx, id).Await(ctx)

	v.mu.Lock()
	v.loadingTranscription = false
	if err == nil {
		v.current.Transcription = segments
	}
	v.mu.Unlock()
	if err != nil {
		return v.fail("Transcription", err)
	}

	_ = v.Refresh(ctx)
	return v.SelectTab(TabTranscription)
}

// GenerateSummary requests the mock summary and opens its tab
func (v *DetailView) GenerateSummary(ctx context.Context) error {
	v.mu.Lock()
	if v.loadingSummary {
		v.mu.Unlock()
		return ErrBusy
	}
	v.loadingSummary = true
	id := v.current.ID
	v.mu.Unlock()

	result, err := v.backend.GenerateSummary(ctx, id).Await(ctx)

	v.mu.Lock()
	v.loadingSummary = false
	if err == nil && v.current.HasTranscription() {
		v.current.Summary = &result.Summary
		v.current.ActionItems = result.ActionItems
	}
	v.mu.Unlock()
	if err != nil {
		return v.fail("Summary", err)
	}

	_ = v.Refresh(ctx)
	if !v.TabEnabled(TabSummary) {
		v.alerter.Alert(result.Summary)
		return nil
	}
	return v.SelectTab(TabSummary)
}

// ToggleActionItem flips an action item locally, then confirms it with the
// backend. A rejected write rolls the item back to its previous value.
func (v *DetailView) ToggleActionItem(ctx context.Context, itemID string) (*ToggleTransaction, error) {
	v.mu.Lock()
	i := v.current.FindActionItem(itemID)
	if i < 0 {
		v.mu.Unlock()
		return nil, ErrUnknownActionItem
	}
	tx := &ToggleTransaction{
		ItemID:   itemID,
		Previous: v.current.ActionItems[i].Completed,
		State:    TxAppliedLocally,
	}
	v.current.ActionItems[i] = v.current.ActionItems[i].Toggled()
	items := append([]entities.ActionItem{}, v.current.ActionItems...)
	id := v.current.ID
	v.mu.Unlock()

	_, err := v.backend.UpdateMeeting(ctx, id, entities.MeetingPatch{ActionItems: &items}).Await(ctx)
	if err != nil {
		v.mu.Lock()
		if j := v.current.FindActionItem(itemID); j >= 0 {
			v.current.ActionItems[j].Completed = tx.Previous
		}
		v.mu.Unlock()

		tx.State = TxRolledBack
		tx.Err = err
		v.logger.Error("failed to save action item",
			zap.String("meeting_id", id),
			zap.String("action_item_id", itemID),
			zap.Error(err),
		)
		v.alerter.Alert(MsgSaveFailed)
		return tx, err
	}

	tx.State = TxConfirmed
	if tx.Previous {
		v.alerter.Alert(MsgItemIncomplete)
	} else {
		v.alerter.Alert(MsgItemComplete)
	}
	_ = v.Refresh(ctx)
	return tx, nil
}

func (v *DetailView) fail(operation string, err error) error {
	v.logger.Error("meeting operation failed",
		zap.String("operation", operation),
		zap.String("meeting_id", v.MeetingID()),
		zap.Error(err),
	)
	v.alerter.Alert(fmt.Sprintf(msgOperationFailed, operation, userMessage(err)))
	return err
}

// userMessage prefers the rejection message over the full error chain
func userMessage(err error) string {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

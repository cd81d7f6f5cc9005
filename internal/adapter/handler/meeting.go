package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-sim/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-sim/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-sim/internal/domain/entities"
	"github.com/johnquangdev/meeting-sim/internal/infrastructure/mockserver"
	aiuse "github.com/johnquangdev/meeting-sim/internal/usecase/ai"
)

// MeetingAPI is the asynchronous backend the HTTP handlers await on
type MeetingAPI interface {
	CreateMeeting(ctx context.Context, title string, participants []string) *mockserver.Result[*entities.Meeting]
	GetMeetings(ctx context.Context) *mockserver.Result[[]*entities.Meeting]
	GetMeeting(ctx context.Context, meetingID string) *mockserver.Result[*entities.Meeting]
	UpdateMeeting(ctx context.Context, meetingID string, patch entities.MeetingPatch) *mockserver.Result[*entities.Meeting]
	ToggleActionItem(ctx context.Context, meetingID, itemID string) *mockserver.Result[*entities.Meeting]
	StartRecording(ctx context.Context, meetingID string) *mockserver.Result[mockserver.RecordingStarted]
	GenerateTranscription(ctx context.Context, meetingID string) *mockserver.Result[[]entities.TranscriptionSegment]
	GenerateSummary(ctx context.Context, meetingID string) *mockserver.Result[*aiuse.Summary]
}

var _ MeetingAPI = (*mockserver.Server)(nil)

// Meeting handles meeting-related HTTP requests
type Meeting struct {
	api    MeetingAPI
	logger *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(api MeetingAPI, logger *zap.Logger) *Meeting {
	return &Meeting{api: api, logger: logger}
}

// ListMeetings handles GET /meetings
// @Summary      List meetings
// @Description  Returns every meeting in creation order
// @Tags         Meetings
// @Produce      json
// @Success      200  {object}  meeting.ListMeetingsResponse
// @Router       /meetings [get]
func (h *Meeting) ListMeetings(c echo.Context) error {
	ctx := c.Request().Context()
	meetings, err := h.api.GetMeetings(ctx).Await(ctx)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponses(meetings))
}

// CreateMeeting handles POST /meetings
// @Summary      Create a meeting
// @Description  Creates a meeting stamped with the current time
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.CreateMeetingRequest  true  "Meeting creation request"
// @Success      201      {object}  meeting.MeetingResponse
// @Failure      400      {object}  map[string]interface{}  "Malformed body"
// @Failure      422      {object}  map[string]interface{}  "Title is required"
// @Router       /meetings [post]
func (h *Meeting) CreateMeeting(c echo.Context) error {
	var req meeting.CreateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	ctx := c.Request().Context()
	m, err := h.api.CreateMeeting(ctx, req.Title, req.Participants).Await(ctx)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, presenter.ToMeetingResponse(m))
}

// GetMeeting handles GET /meetings/:id
// @Summary      Get a meeting
// @Tags         Meetings
// @Produce      json
// @Param        id   path      string  true  "Meeting ID"
// @Success      200  {object}  meeting.MeetingResponse
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id} [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	ctx := c.Request().Context()
	m, err := h.api.GetMeeting(ctx, c.Param("id")).Await(ctx)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// UpdateMeeting handles PATCH /meetings/:id
// @Summary      Update a meeting
// @Description  Shallow-merges the provided fields into the meeting
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Meeting ID"
// @Param        request  body      meeting.UpdateMeetingRequest  true  "Fields to change"
// @Success      200      {object}  meeting.MeetingResponse
// @Failure      404      {object}  map[string]interface{}  "Meeting not found"
// @Failure      422      {object}  map[string]interface{}  "Update would break a meeting invariant"
// @Router       /meetings/{id} [patch]
func (h *Meeting) UpdateMeeting(c echo.Context) error {
	var req meeting.UpdateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	ctx := c.Request().Context()
	m, err := h.api.UpdateMeeting(ctx, c.Param("id"), presenter.ToMeetingPatch(&req)).Await(ctx)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// StartRecording handles POST /meetings/:id/recording
// @Summary      Start recording
// @Description  Attaches the mock recording locator to the meeting
// @Tags         Recording
// @Produce      json
// @Param        id   path      string  true  "Meeting ID"
// @Success      200  {object}  meeting.RecordingResponse
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id}/recording [post]
func (h *Meeting) StartRecording(c echo.Context) error {
	ctx := c.Request().Context()
	res, err := h.api.StartRecording(ctx, c.Param("id")).Await(ctx)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, &meeting.RecordingResponse{Success: res.Success})
}

// GenerateTranscription handles POST /meetings/:id/transcription
// @Summary      Generate transcription
// @Tags         AI
// @Produce      json
// @Param        id   path      string  true  "Meeting ID"
// @Success      200  {array}   meeting.TranscriptionSegment
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id}/transcription [post]
func (h *Meeting) GenerateTranscription(c echo.Context) error {
	ctx := c.Request().Context()
	segs, err := h.api.GenerateTranscription(ctx, c.Param("id")).Await(ctx)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToTranscriptionSegments(segs))
}

// GenerateSummary handles POST /meetings/:id/summary
// @Summary      Generate summary
// @Description  Summarizes the stored transcription and derives action items
// @Tags         AI
// @Produce      json
// @Param        id   path      string  true  "Meeting ID"
// @Success      200  {object}  meeting.SummaryResponse
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id}/summary [post]
func (h *Meeting) GenerateSummary(c echo.Context) error {
	ctx := c.Request().Context()
	s, err := h.api.GenerateSummary(ctx, c.Param("id")).Await(ctx)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToSummaryResponse(s))
}

// ToggleActionItem handles POST /meetings/:id/action-items/:itemId/toggle
// @Summary      Toggle an action item
// @Tags         Meetings
// @Produce      json
// @Param        id      path      string  true  "Meeting ID"
// @Param        itemId  path      string  true  "Action item ID"
// @Success      200     {object}  meeting.MeetingResponse
// @Failure      404     {object}  map[string]interface{}  "Meeting or action item not found"
// @Router       /meetings/{id}/action-items/{itemId}/toggle [post]
func (h *Meeting) ToggleActionItem(c echo.Context) error {
	ctx := c.Request().Context()
	m, err := h.api.ToggleActionItem(ctx, c.Param("id"), c.Param("itemId")).Await(ctx)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

package presenter

import (
	"github.com/johnquangdev/meeting-sim/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-sim/internal/domain/entities"
	aiuse "github.com/johnquangdev/meeting-sim/internal/usecase/ai"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meeting.MeetingResponse {
	if m == nil {
		return nil
	}

	response := &meeting.MeetingResponse{
		ID:            m.ID,
		ShortID:       m.ShortID(),
		Title:         m.Title,
		Date:          m.Date,
		Participants:  m.Participants,
		RecordingURL:  m.RecordingURL,
		Summary:       m.Summary,
	}
	if segs := ToTranscriptionSegments(m.Transcription); segs != nil {
		response.Transcription = &segs
	}
	if items := ToActionItemResponses(m.ActionItems); items != nil {
		response.ActionItems = &items
	}
	if response.Participants == nil {
		response.Participants = []string{}
	}

	return response
}

// ToTranscriptionSegments converts transcript segments; nil stays nil
func ToTranscriptionSegments(segs []entities.TranscriptionSegment) []meeting.TranscriptionSegment {
	if segs == nil {
		return nil
	}
	out := make([]meeting.TranscriptionSegment, 0, len(segs))
	for _, seg := range segs {
		out = append(out, meeting.TranscriptionSegment{
			ID:        seg.ID,
			Speaker:   seg.Speaker,
			Text:      seg.Text,
			Timestamp: seg.Timestamp,
		})
	}
	return out
}

// ToMeetingResponses converts a list of meetings
func ToMeetingResponses(ms []*entities.Meeting) *meeting.ListMeetingsResponse {
	out := make([]*meeting.MeetingResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToMeetingResponse(m))
	}
	return &meeting.ListMeetingsResponse{Meetings: out, Total: len(out)}
}

// ToActionItemResponses converts action items; nil stays nil
func ToActionItemResponses(items []entities.ActionItem) []meeting.ActionItemResponse {
	if items == nil {
		return nil
	}
	out := make([]meeting.ActionItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, meeting.ActionItemResponse{
			ID:         item.ID,
			Text:       item.Text,
			AssignedTo: item.AssignedTo,
			Completed:  item.Completed,
		})
	}
	return out
}

// ToSummaryResponse converts a generated summary
func ToSummaryResponse(s *aiuse.Summary) *meeting.SummaryResponse {
	if s == nil {
		return nil
	}
	items := ToActionItemResponses(s.ActionItems)
	if items == nil {
		items = []meeting.ActionItemResponse{}
	}
	return &meeting.SummaryResponse{Summary: s.Summary, ActionItems: items}
}

// ToMeetingPatch converts an update request to a domain patch
func ToMeetingPatch(req *meeting.UpdateMeetingRequest) entities.MeetingPatch {
	patch := entities.MeetingPatch{
		Title:        req.Title,
		Participants: req.Participants,
		RecordingURL: req.RecordingURL,
		Summary:      req.Summary,
	}

	if req.Transcription != nil {
		segs := make([]entities.TranscriptionSegment, 0, len(*req.Transcription))
		for _, s := range *req.Transcription {
			segs = append(segs, entities.TranscriptionSegment{
				ID:        s.ID,
				Speaker:   s.Speaker,
				Text:      s.Text,
				Timestamp: s.Timestamp,
			})
		}
		patch.Transcription = &segs
	}

	if req.ActionItems != nil {
		items := make([]entities.ActionItem, 0, len(*req.ActionItems))
		for _, a := range *req.ActionItems {
			items = append(items, entities.ActionItem{
				ID:         a.ID,
				Text:       a.Text,
				AssignedTo: a.AssignedTo,
				Completed:  a.Completed,
			})
		}
		patch.ActionItems = &items
	}

	return patch
}

package ai

import (
	"strings"

	"github.com/johnquangdev/meeting-sim/internal/domain/entities"
)

const (
	// FallbackSummary is returned when a meeting has no transcription
	FallbackSummary = "Could not generate summary."

	defaultTopic       = "general topics"
	defaultFollowUp    = "discussion points"
	defaultActionText  = "Prepare for next meeting"
	discussMarker      = "discuss"
	talkAboutMarker    = "talk about"
	summaryClosingLine = "Key points were discussed and action items were identified."
)

// Parser turns transcripts into summaries using text-matching heuristics
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// Transcript returns a fresh canned transcript
func (p *Parser) Transcript() []entities.TranscriptionSegment {
	return CannedTranscript()
}

// Summarize derives a summary from segments
func (p *Parser) Summarize(segments []entities.TranscriptionSegment) Summary {
	return BuildSummary(segments)
}

// Summary is the derived summary together with its action items
type Summary struct {
	Summary     string                `json:"summary"`
	ActionItems []entities.ActionItem `json:"actionItems"`
}

// CannedTranscript returns the fixed three-segment transcript. Only segment
// ids differ between calls.
func CannedTranscript() []entities.TranscriptionSegment {
	return []entities.TranscriptionSegment{
		entities.NewTranscriptionSegment("John Doe", "Let's discuss the quarterly results.", 5),
		entities.NewTranscriptionSegment("Jane Smith", "The revenue has increased by 15% compared to last quarter.", 10),
		entities.NewTranscriptionSegment("John Doe", "That's great news. What about our expenses?", 15),
	}
}

// DistinctSpeakers returns the speakers in first-occurrence order
func DistinctSpeakers(segments []entities.TranscriptionSegment) []string {
	m := entities.Meeting{Transcription: segments}
	return m.Speakers()
}

// ExtractTopics scans segments mentioning "discuss" or "talk about" and keeps
// the text after the marker. The slice is cut at the next occurrence of the
// same marker and is kept byte for byte, leading space included.
func ExtractTopics(segments []entities.TranscriptionSegment) []string {
	topics := make([]string, 0, len(segments))
	for _, seg := range segments {
		if !strings.Contains(seg.Text, discussMarker) && !strings.Contains(seg.Text, talkAboutMarker) {
			continue
		}
		topic := afterMarker(seg.Text, discussMarker)
		if topic == "" {
			topic = afterMarker(seg.Text, talkAboutMarker)
		}
		if topic == "" {
			topic = defaultTopic
		}
		topics = append(topics, topic)
	}
	return topics
}

// afterMarker returns the second field of text split on marker, or "" when
// there is none.
func afterMarker(text, marker string) string {
	parts := strings.Split(text, marker)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// BuildSummary derives a summary and action items from a transcript. A nil
// transcript yields the fallback summary and no action items.
func BuildSummary(segments []entities.TranscriptionSegment) Summary {
	if segments == nil {
		return Summary{Summary: FallbackSummary, ActionItems: []entities.ActionItem{}}
	}

	speakers := DistinctSpeakers(segments)
	topics := ExtractTopics(segments)

	text := "The meeting between " + strings.Join(speakers, " and ") +
		" covered " + strings.Join(topics, ", ") + ". " + summaryClosingLine

	items := make([]entities.ActionItem, 0, len(speakers))
	for i, speaker := range speakers {
		topic := defaultFollowUp
		if i < len(topics) && topics[i] != "" {
			topic = topics[i]
		}
		items = append(items, entities.NewActionItem("Follow up on "+topic, speaker))
	}

	if len(items) == 0 {
		assignee := entities.PlaceholderAssignee
		if len(speakers) > 0 {
			assignee = speakers[0]
		}
		items = append(items, entities.NewActionItem(defaultActionText, assignee))
	}

	return Summary{Summary: text, ActionItems: items}
}

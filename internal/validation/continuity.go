package validation

import (
	"strings"

	"github.com/akanksha509/AI-Tutor-sub001/internal/types"
)

// ContinuityPolicy is the penalty table for backward-continuity scoring.
// Scores start at 1.0 and each triggered issue subtracts its penalty,
// floored at 0. Swapping the policy never touches the checks themselves.
type ContinuityPolicy struct {
	MissingLeadNarration   float64
	UnreferencedVisuals    float64
	UnaddressedConnections float64
}

func DefaultContinuityPolicy() ContinuityPolicy {
	return ContinuityPolicy{
		MissingLeadNarration:   0.2,
		UnreferencedVisuals:    0.1,
		UnaddressedConnections: 0.15,
	}
}

func perfectContinuity() ContinuityAssessment {
	return ContinuityAssessment{
		BackwardContinuity: 1.0,
		ForwardContinuity:  1.0,
		Issues:             []string{},
	}
}

// ValidateChunkContinuity scores how coherently a chunk follows from the
// trailing context of its predecessor. Forward continuity is reserved for
// checks against next-chunk hints and is currently always 1.0.
func ValidateChunkContinuity(policy ContinuityPolicy, chunk types.StreamingTimelineChunk, previous types.ChunkContext) ContinuityAssessment {
	backward := 1.0
	issues := []string{}

	events := chunk.Events.Events

	if strings.TrimSpace(previous.NarrativeThread) != "" && len(events) > 0 {
		if events[0].Type != types.EventTypeNarration {
			issues = append(issues, "Chunk starts without narration despite an active narrative thread")
			backward -= policy.MissingLeadNarration
		}
	}

	if len(previous.LastVisualElements) > 0 && !referencesPreviousVisuals(events, previous.LastVisualElements) {
		issues = append(issues, "Chunk does not reference previous visual elements")
		backward -= policy.UnreferencedVisuals
	}

	if len(previous.PendingConnections) > 0 && !addressesPendingConnections(events, previous.PendingConnections) {
		issues = append(issues, "Chunk does not address pending concept connections")
		backward -= policy.UnaddressedConnections
	}

	if backward < 0 {
		backward = 0
	}
	return ContinuityAssessment{
		BackwardContinuity: backward,
		ForwardContinuity:  1.0,
		Issues:             issues,
	}
}

func referencesPreviousVisuals(events []types.TimelineEvent, elements []types.VisualElementRef) bool {
	for _, event := range events {
		text := ""
		if event.Content.Visual != nil {
			text = strings.ToLower(event.Content.Visual.Properties.Text)
		}
		for _, el := range elements {
			desc := strings.ToLower(strings.TrimSpace(el.Description))
			if desc != "" && text != "" && strings.Contains(text, desc) {
				return true
			}
			for _, dep := range event.Dependencies {
				if el.ID != "" && dep == el.ID {
					return true
				}
			}
		}
	}
	return false
}

func addressesPendingConnections(events []types.TimelineEvent, pending []types.ConceptConnection) bool {
	var texts []string
	for _, event := range events {
		if event.Content.Audio != nil {
			texts = append(texts, strings.ToLower(event.Content.Audio.Text))
		}
		if event.Content.Visual != nil {
			texts = append(texts, strings.ToLower(event.Content.Visual.Properties.Text))
		}
	}
	for _, conn := range pending {
		concept := strings.ToLower(strings.TrimSpace(conn.Concept))
		if concept == "" {
			continue
		}
		for _, text := range texts {
			if strings.Contains(text, concept) {
				return true
			}
		}
	}
	return false
}

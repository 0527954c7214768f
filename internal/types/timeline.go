package types

// Pure JSON contract for streamed lesson timelines. Not a DB model.

type EventType string

const (
	EventTypeVisual       EventType = "visual"
	EventTypeNarration    EventType = "narration"
	EventTypeTransition   EventType = "transition"
	EventTypeEmphasis     EventType = "emphasis"
	EventTypeLayoutChange EventType = "layout_change"
)

// TimelineEvent is one timed instruction on the lesson timeline. Timestamp
// and Duration are milliseconds from the start of the timeline.
type TimelineEvent struct {
	ID           string       `json:"id"`
	Timestamp    int64        `json:"timestamp"`
	Duration     int64        `json:"duration"`
	Type         EventType    `json:"event_type"`
	Content      EventContent `json:"content"`
	LayoutHints  []LayoutHint `json:"layout_hints,omitempty"`
	Dependencies []string     `json:"dependencies,omitempty"`
	Priority     int          `json:"priority,omitempty"`
	Tags         []string     `json:"tags,omitempty"`
}

type ConceptRelationship struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Relation string `json:"relation"` // builds_on|contrasts|example_of|part_of
}

type QualityMetrics struct {
	Coherence    float64 `json:"coherence,omitempty"`
	Completeness float64 `json:"completeness,omitempty"`
	Engagement   float64 `json:"engagement,omitempty"`
}

type CollectionMetadata struct {
	TotalDuration         int64                 `json:"total_duration"`
	ContentClassification string                `json:"content_classification,omitempty"` // definition|process|comparison|example
	Complexity            string                `json:"complexity,omitempty"`             // basic|intermediate|advanced
	KeyEntities           []string              `json:"key_entities,omitempty"`
	Relationships         []ConceptRelationship `json:"relationships,omitempty"`
	Quality               *QualityMetrics       `json:"quality,omitempty"`
}

// TimelineEventCollection is an ordered batch of events plus aggregate
// metadata. Under strict ordering, events are sorted by non-decreasing
// timestamp.
type TimelineEventCollection struct {
	Events   []TimelineEvent    `json:"events"`
	Metadata CollectionMetadata `json:"metadata"`
}

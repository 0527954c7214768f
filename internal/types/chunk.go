package types

// Pure JSON contract for streamed chunks and the continuity context threaded
// between them. Not DB models.

type ChunkStatus string

const (
	ChunkStatusPending    ChunkStatus = "pending"
	ChunkStatusGenerating ChunkStatus = "generating"
	ChunkStatusReady      ChunkStatus = "ready"
	ChunkStatusError      ChunkStatus = "error"
	ChunkStatusCached     ChunkStatus = "cached"
)

type GenerationParams struct {
	Model          string  `json:"model,omitempty"`
	Temperature    float64 `json:"temperature,omitempty"`
	MaxTokens      int     `json:"max_tokens,omitempty"`
	Difficulty     string  `json:"difficulty,omitempty"` // beginner|intermediate|advanced
	TargetDuration int64   `json:"target_duration,omitempty"`
}

type GenerationMetadata struct {
	Model          string  `json:"model,omitempty"`
	StartedAtMs    int64   `json:"started_at_ms,omitempty"`
	CompletedAtMs  int64   `json:"completed_at_ms,omitempty"`
	GenerationTime float64 `json:"generation_time,omitempty"`
	Error          string  `json:"error,omitempty"`
}

// VisualElementRef describes a visual element left on the canvas by an
// accepted chunk, for the next chunk to build on.
type VisualElementRef struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Position    string `json:"position,omitempty"`
}

// ConceptConnection is a concept the narration promised to come back to.
type ConceptConnection struct {
	Concept string `json:"concept"`
	Reason  string `json:"reason,omitempty"`
}

// NextChunkHints is the continuity guidance a chunk emits for its successor.
type NextChunkHints struct {
	NarrativeThread     string              `json:"narrative_thread,omitempty"`
	SuggestedTopics     []string            `json:"suggested_topics,omitempty"`
	CurrentFocus        string              `json:"current_focus,omitempty"`
	ConceptConnections  []ConceptConnection `json:"concept_connections,omitempty"`
	EngagementLevel     string              `json:"engagement_level,omitempty"`
}

// ChunkContext is the trailing state of the lesson after a chunk was
// accepted. It is derived once, handed read-only to the validator of the
// following chunk, and never mutated.
type ChunkContext struct {
	LastVisualElements []VisualElementRef  `json:"last_visual_elements,omitempty"`
	NarrativeThread    string              `json:"narrative_thread,omitempty"`
	KeyConcepts        []string            `json:"key_concepts,omitempty"`
	CurrentFocus       string              `json:"current_focus,omitempty"`
	LayoutDensity      string              `json:"layout_density,omitempty"` // sparse|balanced|dense
	PendingConnections []ConceptConnection `json:"pending_connections,omitempty"`
	EngagementLevel    string              `json:"engagement_level,omitempty"`
	Tone               string              `json:"tone,omitempty"`
}

// StreamingTimelineChunk is one unit of streamed lesson content from the
// generation service.
type StreamingTimelineChunk struct {
	ChunkID         string                  `json:"chunk_id"`
	ChunkNumber     int                     `json:"chunk_number"` // 1-based
	TotalChunks     int                     `json:"total_chunks"`
	Status          ChunkStatus             `json:"status"`
	StartTimeOffset int64                   `json:"start_time_offset"`
	Duration        int64                   `json:"duration"`
	Events          TimelineEventCollection `json:"events"`
	ContentType     string                  `json:"content_type,omitempty"`
	Params          GenerationParams        `json:"generation_params,omitempty"`
	PreviousContext *ChunkContext           `json:"previous_context,omitempty"`
	NextChunkHints  *NextChunkHints         `json:"next_chunk_hints,omitempty"`
	Quality         *QualityMetrics         `json:"quality_metrics,omitempty"`
	Metadata        GenerationMetadata      `json:"generation_metadata,omitempty"`
}

package types

// Pure JSON contract for timeline event content. Not a DB model.

type ContentKind string

const (
	ContentKindVisual     ContentKind = "visual"
	ContentKindAudio      ContentKind = "audio"
	ContentKindTransition ContentKind = "transition"
	ContentKindRawText    ContentKind = "raw_text"
)

type VisualAction string

const (
	VisualActionCreate    VisualAction = "create"
	VisualActionModify    VisualAction = "modify"
	VisualActionRemove    VisualAction = "remove"
	VisualActionAnimate   VisualAction = "animate"
	VisualActionHighlight VisualAction = "highlight"
)

type ElementType string

const (
	ElementTypeText      ElementType = "text"
	ElementTypeShape     ElementType = "shape"
	ElementTypeArrow     ElementType = "arrow"
	ElementTypeDiagram   ElementType = "diagram"
	ElementTypeCallout   ElementType = "callout"
	ElementTypeFlowchart ElementType = "flowchart"
	ElementTypeConnector ElementType = "connector"
)

type TransitionType string

const (
	TransitionZoom  TransitionType = "zoom"
	TransitionPan   TransitionType = "pan"
	TransitionFocus TransitionType = "focus"
	TransitionFade  TransitionType = "fade"
	TransitionSlide TransitionType = "slide"
	TransitionNone  TransitionType = "none"
)

type VisualProperties struct {
	Text   string            `json:"text,omitempty"`
	Size   string            `json:"size,omitempty"`
	Color  string            `json:"color,omitempty"`
	Shape  string            `json:"shape,omitempty"`
	Custom map[string]string `json:"custom,omitempty"`
}

type Animation struct {
	Type     string `json:"type"`
	Duration int64  `json:"duration_ms"`
}

type VisualContent struct {
	Action        VisualAction     `json:"action"`
	ElementType   ElementType      `json:"element_type"`
	Properties    VisualProperties `json:"properties"`
	Animation     *Animation       `json:"animation,omitempty"`
	TargetElement string           `json:"target_element,omitempty"`
}

// EmphasisSpan marks a [start,end) byte range of AudioContent.Text that the
// narrator should stress.
type EmphasisSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type AudioContent struct {
	Text          string         `json:"text"`
	Speed         float64        `json:"speed,omitempty"`
	Volume        *float64       `json:"volume,omitempty"`
	Emphasis      []EmphasisSpan `json:"emphasis,omitempty"`
	PauseBeforeMs int64          `json:"pause_before_ms,omitempty"`
	PauseAfterMs  int64          `json:"pause_after_ms,omitempty"`
}

// TransitionTarget is either an element id or a canvas coordinate.
type TransitionTarget struct {
	ElementID string   `json:"element_id,omitempty"`
	X         *float64 `json:"x,omitempty"`
	Y         *float64 `json:"y,omitempty"`
}

type TransitionContent struct {
	Type     TransitionType    `json:"type"`
	Target   *TransitionTarget `json:"target,omitempty"`
	Duration int64             `json:"duration_ms"`
	Easing   string            `json:"easing,omitempty"`
}

// EventContent is a discriminated union. Exactly one branch matching Kind is
// populated; consumers switch on Kind instead of probing for fields.
type EventContent struct {
	Kind       ContentKind        `json:"kind"`
	Visual     *VisualContent     `json:"visual,omitempty"`
	Audio      *AudioContent      `json:"audio,omitempty"`
	Transition *TransitionContent `json:"transition,omitempty"`
	RawText    string             `json:"raw_text,omitempty"`
}

type SemanticLevel string

const (
	SemanticPrimary    SemanticLevel = "primary"
	SemanticSupporting SemanticLevel = "supporting"
	SemanticDetail     SemanticLevel = "detail"
	SemanticAccent     SemanticLevel = "accent"
)

type PositioningStrategy string

const (
	PositionCenter     PositioningStrategy = "center"
	PositionLeft       PositioningStrategy = "left"
	PositionRight      PositioningStrategy = "right"
	PositionTop        PositioningStrategy = "top"
	PositionBottom     PositioningStrategy = "bottom"
	PositionRelativeTo PositioningStrategy = "relative_to"
	PositionFlow       PositioningStrategy = "flow"
	PositionGrid       PositioningStrategy = "grid"
)

type ImportanceLevel string

const (
	ImportanceCritical ImportanceLevel = "critical"
	ImportanceHigh     ImportanceLevel = "high"
	ImportanceMedium   ImportanceLevel = "medium"
	ImportanceLow      ImportanceLevel = "low"
)

type LayoutHint struct {
	Semantic         SemanticLevel       `json:"semantic"`
	Positioning      PositioningStrategy `json:"positioning"`
	Importance       ImportanceLevel     `json:"importance"`
	ReferenceElement string              `json:"reference_element,omitempty"`
	Relationship     string              `json:"relationship,omitempty"`
	RelatedElements  []string            `json:"related_elements,omitempty"`
}

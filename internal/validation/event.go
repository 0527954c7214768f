package validation

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/akanksha509/AI-Tutor-sub001/internal/types"
)

var wordRE = regexp.MustCompile(`[A-Za-z0-9]+(?:'[A-Za-z0-9]+)?`)

func WordCount(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	return len(wordRE.FindAllString(s, -1))
}

// speakingRate is the assumed narration pace in words per second (~150 wpm).
const speakingRate = 2.5

// ValidateEvent runs every structural check against one event and
// accumulates all findings; it never short-circuits and never panics past
// its own boundary.
func ValidateEvent(cfg Config, event types.TimelineEvent) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			if cfg.Log != nil {
				cfg.Log.Warn("event validation recovered from panic", "event_id", event.ID, "panic", r)
			}
			result = finalizeResult([]string{fmt.Sprintf("Internal validation failure: %v", r)}, nil, nil)
		}
	}()

	var errs, warns, suggestions []string

	// Required fields
	if strings.TrimSpace(event.ID) == "" {
		errs = append(errs, "Event ID is required")
	}
	if event.Timestamp < 0 {
		errs = append(errs, fmt.Sprintf("Timestamp must be non-negative (got %d)", event.Timestamp))
	}
	if event.Duration <= 0 {
		errs = append(errs, fmt.Sprintf("Duration must be positive (got %d)", event.Duration))
	}
	if !knownEventType(event.Type) {
		errs = append(errs, fmt.Sprintf("Unknown event type %q", event.Type))
	}
	if event.Content.Kind == "" {
		errs = append(errs, "Event content is required")
	}

	// Duration bounds
	if cfg.MaxEventDurationMs > 0 && event.Duration > cfg.MaxEventDurationMs {
		warns = append(warns, fmt.Sprintf("Duration %dms exceeds maximum %dms", event.Duration, cfg.MaxEventDurationMs))
	}
	if cfg.MinEventDurationMs > 0 && event.Duration > 0 && event.Duration < cfg.MinEventDurationMs {
		errs = append(errs, fmt.Sprintf("Duration %dms is below minimum %dms", event.Duration, cfg.MinEventDurationMs))
	}

	// Animation longer than the event gets clipped at playback.
	if v := event.Content.Visual; v != nil && v.Animation != nil {
		animType := strings.ToLower(strings.TrimSpace(v.Animation.Type))
		if animType != "" && animType != "none" && v.Animation.Duration > event.Duration {
			warns = append(warns, fmt.Sprintf("Animation duration %dms exceeds event duration %dms", v.Animation.Duration, event.Duration))
		}
	}

	errs = append(errs, contentTypeAgreementErrors(event)...)

	switch event.Content.Kind {
	case types.ContentKindVisual:
		if event.Content.Visual != nil {
			e, w := validateVisualContent(*event.Content.Visual)
			errs = append(errs, e...)
			warns = append(warns, w...)
		}
	case types.ContentKindAudio:
		if event.Content.Audio != nil {
			e, w := validateAudioContent(cfg, *event.Content.Audio)
			errs = append(errs, e...)
			warns = append(warns, w...)
		}
	case types.ContentKindTransition:
		if event.Content.Transition != nil {
			e, w := validateTransitionContent(*event.Content.Transition, event.Duration)
			errs = append(errs, e...)
			warns = append(warns, w...)
		}
	}

	if cfg.LayoutFeasibility {
		errs = append(errs, validateLayoutHints(event.LayoutHints)...)
	}

	// Dependencies
	for _, dep := range event.Dependencies {
		if strings.TrimSpace(dep) == "" {
			errs = append(errs, "Dependency ID must be a non-empty string")
			continue
		}
		if dep == event.ID {
			errs = append(errs, fmt.Sprintf("Event %q cannot depend on itself", event.ID))
		}
	}
	if len(event.Dependencies) > 5 {
		warns = append(warns, fmt.Sprintf("Event has %d dependencies; more than 5 complicates scheduling", len(event.Dependencies)))
	}

	// Type-specific refinements
	if event.Type == types.EventTypeVisual && event.Content.Visual != nil &&
		event.Content.Visual.Action == types.VisualActionCreate && len(event.LayoutHints) == 0 {
		warns = append(warns, "Visual create event has no layout hints")
		suggestions = append(suggestions, "Add layout hints so the layout engine can place the new element")
	}
	if event.Type == types.EventTypeNarration && event.Content.Audio != nil && event.Duration > 0 {
		words := WordCount(event.Content.Audio.Text)
		if words > 0 {
			estimatedMs := float64(words) / speakingRate * 1000
			deviation := math.Abs(estimatedMs-float64(event.Duration)) / float64(event.Duration)
			if deviation > 0.3 {
				warns = append(warns, fmt.Sprintf("Estimated speaking time %.1fs deviates from event duration %.1fs by more than 30%%",
					estimatedMs/1000, float64(event.Duration)/1000))
				suggestions = append(suggestions, "Retune the narration duration toward ~150 words per minute")
			}
		}
	}
	if event.Type == types.EventTypeLayoutChange && len(event.LayoutHints) == 0 {
		errs = append(errs, "Layout change event requires at least one layout hint")
	}

	for _, rule := range cfg.CustomRules {
		if rule == nil {
			continue
		}
		e, w := rule(event)
		errs = append(errs, e...)
		warns = append(warns, w...)
	}

	return finalizeResult(errs, warns, suggestions)
}

func knownEventType(t types.EventType) bool {
	switch t {
	case types.EventTypeVisual, types.EventTypeNarration, types.EventTypeTransition,
		types.EventTypeEmphasis, types.EventTypeLayoutChange:
		return true
	}
	return false
}

func contentTypeAgreementErrors(event types.TimelineEvent) []string {
	var errs []string
	kind := event.Content.Kind
	switch event.Type {
	case types.EventTypeVisual:
		if kind != types.ContentKindVisual || event.Content.Visual == nil {
			errs = append(errs, "Visual event must have visual content")
		}
	case types.EventTypeNarration:
		if kind != types.ContentKindAudio || event.Content.Audio == nil {
			errs = append(errs, "Narration event must have audio content")
		}
	case types.EventTypeTransition:
		if kind != types.ContentKindTransition || event.Content.Transition == nil {
			errs = append(errs, "Transition event must have transition content")
		}
	case types.EventTypeEmphasis:
		visualOK := kind == types.ContentKindVisual && event.Content.Visual != nil
		audioOK := kind == types.ContentKindAudio && event.Content.Audio != nil
		if !visualOK && !audioOK {
			errs = append(errs, "Emphasis event must have visual or audio content")
		}
	case types.EventTypeLayoutChange:
		// Layout changes are driven by hints; any content branch is allowed.
	}
	// Declared kind must match the populated branch.
	switch kind {
	case types.ContentKindVisual:
		if event.Content.Visual == nil {
			errs = append(errs, "Content kind is visual but visual branch is empty")
		}
	case types.ContentKindAudio:
		if event.Content.Audio == nil {
			errs = append(errs, "Content kind is audio but audio branch is empty")
		}
	case types.ContentKindTransition:
		if event.Content.Transition == nil {
			errs = append(errs, "Content kind is transition but transition branch is empty")
		}
	}
	return errs
}

func validateVisualContent(v types.VisualContent) (errs, warns []string) {
	switch v.Action {
	case types.VisualActionCreate, types.VisualActionModify, types.VisualActionRemove,
		types.VisualActionAnimate, types.VisualActionHighlight:
	default:
		errs = append(errs, fmt.Sprintf("Invalid visual action %q", v.Action))
	}
	switch v.ElementType {
	case types.ElementTypeText, types.ElementTypeShape, types.ElementTypeArrow,
		types.ElementTypeDiagram, types.ElementTypeCallout, types.ElementTypeFlowchart,
		types.ElementTypeConnector:
	default:
		errs = append(errs, fmt.Sprintf("Invalid visual element type %q", v.ElementType))
	}
	if v.Action == types.VisualActionModify && strings.TrimSpace(v.TargetElement) == "" {
		errs = append(errs, "Modify action requires a target element")
	}
	if v.Animation != nil && v.Animation.Duration <= 0 {
		animType := strings.ToLower(strings.TrimSpace(v.Animation.Type))
		if animType != "" && animType != "none" {
			errs = append(errs, fmt.Sprintf("Animation duration must be positive (got %d)", v.Animation.Duration))
		}
	}
	return errs, warns
}

func validateAudioContent(cfg Config, a types.AudioContent) (errs, warns []string) {
	if strings.TrimSpace(a.Text) == "" {
		errs = append(errs, "Audio text is required")
	}
	if cfg.MaxAudioTextLength > 0 && len(a.Text) > cfg.MaxAudioTextLength {
		warns = append(warns, fmt.Sprintf("Audio text length %d exceeds maximum %d", len(a.Text), cfg.MaxAudioTextLength))
	}
	if a.Speed != 0 && (a.Speed < 0.5 || a.Speed > 2.0) {
		errs = append(errs, fmt.Sprintf("Audio speed %.2f out of range (0.5-2.0)", a.Speed))
	}
	if a.Volume != nil && (*a.Volume < 0 || *a.Volume > 1) {
		errs = append(errs, fmt.Sprintf("Audio volume %.2f out of range (0.0-1.0)", *a.Volume))
	}
	for i, span := range a.Emphasis {
		if span.Start >= span.End {
			errs = append(errs, fmt.Sprintf("Emphasis span %d: start must be before end (got [%d,%d))", i+1, span.Start, span.End))
			continue
		}
		if span.Start < 0 || span.End > len(a.Text) {
			errs = append(errs, fmt.Sprintf("Emphasis span %d: [%d,%d) out of text bounds (length %d)", i+1, span.Start, span.End, len(a.Text)))
		}
	}
	if a.PauseBeforeMs < 0 {
		errs = append(errs, fmt.Sprintf("Pause before must be non-negative (got %d)", a.PauseBeforeMs))
	}
	if a.PauseAfterMs < 0 {
		errs = append(errs, fmt.Sprintf("Pause after must be non-negative (got %d)", a.PauseAfterMs))
	}
	return errs, warns
}

func validateTransitionContent(t types.TransitionContent, eventDuration int64) (errs, warns []string) {
	switch t.Type {
	case types.TransitionZoom, types.TransitionPan, types.TransitionFocus,
		types.TransitionFade, types.TransitionSlide, types.TransitionNone:
	default:
		errs = append(errs, fmt.Sprintf("Invalid transition type %q", t.Type))
	}
	switch t.Type {
	case types.TransitionZoom, types.TransitionPan, types.TransitionFocus:
		if t.Target == nil || (strings.TrimSpace(t.Target.ElementID) == "" && (t.Target.X == nil || t.Target.Y == nil)) {
			errs = append(errs, fmt.Sprintf("Transition type %q requires a target element or coordinate", t.Type))
		}
	}
	if t.Duration <= 0 {
		errs = append(errs, fmt.Sprintf("Transition duration must be positive (got %d)", t.Duration))
	} else if eventDuration > 0 && t.Duration > eventDuration {
		warns = append(warns, fmt.Sprintf("Transition duration %dms exceeds event duration %dms", t.Duration, eventDuration))
	}
	return errs, warns
}

func validateLayoutHints(hints []types.LayoutHint) []string {
	var errs []string
	for i, hint := range hints {
		switch hint.Semantic {
		case types.SemanticPrimary, types.SemanticSupporting, types.SemanticDetail, types.SemanticAccent:
		default:
			errs = append(errs, fmt.Sprintf("Layout hint %d: invalid semantic level %q", i+1, hint.Semantic))
		}
		switch hint.Positioning {
		case types.PositionCenter, types.PositionLeft, types.PositionRight, types.PositionTop,
			types.PositionBottom, types.PositionRelativeTo, types.PositionFlow, types.PositionGrid:
		default:
			errs = append(errs, fmt.Sprintf("Layout hint %d: invalid positioning strategy %q", i+1, hint.Positioning))
		}
		switch hint.Importance {
		case types.ImportanceCritical, types.ImportanceHigh, types.ImportanceMedium, types.ImportanceLow:
		default:
			errs = append(errs, fmt.Sprintf("Layout hint %d: invalid importance %q", i+1, hint.Importance))
		}
		if hint.Positioning == types.PositionRelativeTo && strings.TrimSpace(hint.ReferenceElement) == "" {
			errs = append(errs, fmt.Sprintf("Layout hint %d: relative_to positioning requires a reference element", i+1))
		}
	}
	return errs
}

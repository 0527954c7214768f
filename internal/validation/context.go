package validation

import (
	"strings"

	"github.com/akanksha509/AI-Tutor-sub001/internal/types"
)

// DeriveChunkContext builds the trailing context an accepted chunk leaves
// behind for the validator of the next chunk. It folds the previous context
// forward: visual elements created or modified here replace the trailing
// set, addressed concept connections drop off the pending list, and the
// narrative carries over from the chunk's own hints when present.
func DeriveChunkContext(chunk types.StreamingTimelineChunk, previous *types.ChunkContext) types.ChunkContext {
	ctx := types.ChunkContext{}
	if previous != nil {
		ctx = *previous
	}

	if visuals := activeVisualElements(chunk.Events.Events); len(visuals) > 0 {
		ctx.LastVisualElements = visuals
	}

	ctx.KeyConcepts = mergeConcepts(ctx.KeyConcepts, chunk.Events.Metadata.KeyEntities)
	ctx.PendingConnections = unresolvedConnections(chunk.Events.Events, ctx.PendingConnections)
	ctx.LayoutDensity = classifyLayoutDensity(len(ctx.LastVisualElements))

	if hints := chunk.NextChunkHints; hints != nil {
		if strings.TrimSpace(hints.NarrativeThread) != "" {
			ctx.NarrativeThread = hints.NarrativeThread
		}
		if strings.TrimSpace(hints.CurrentFocus) != "" {
			ctx.CurrentFocus = hints.CurrentFocus
		}
		if strings.TrimSpace(hints.EngagementLevel) != "" {
			ctx.EngagementLevel = hints.EngagementLevel
		}
		ctx.PendingConnections = append(ctx.PendingConnections, hints.ConceptConnections...)
	}

	return ctx
}

func activeVisualElements(events []types.TimelineEvent) []types.VisualElementRef {
	var out []types.VisualElementRef
	removed := map[string]bool{}
	for _, event := range events {
		v := event.Content.Visual
		if v == nil {
			continue
		}
		switch v.Action {
		case types.VisualActionCreate, types.VisualActionModify:
			id := v.TargetElement
			if id == "" {
				id = event.ID
			}
			position := ""
			if len(event.LayoutHints) > 0 {
				position = string(event.LayoutHints[0].Positioning)
			}
			out = append(out, types.VisualElementRef{
				ID:          id,
				Type:        string(v.ElementType),
				Description: v.Properties.Text,
				Position:    position,
			})
		case types.VisualActionRemove:
			if v.TargetElement != "" {
				removed[v.TargetElement] = true
			}
		}
	}
	if len(removed) == 0 {
		return out
	}
	kept := out[:0]
	for _, el := range out {
		if !removed[el.ID] {
			kept = append(kept, el)
		}
	}
	return kept
}

func mergeConcepts(existing, added []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(existing)+len(added))
	for _, c := range append(append([]string{}, existing...), added...) {
		c = strings.TrimSpace(c)
		if c == "" || seen[strings.ToLower(c)] {
			continue
		}
		seen[strings.ToLower(c)] = true
		out = append(out, c)
	}
	return out
}

func unresolvedConnections(events []types.TimelineEvent, pending []types.ConceptConnection) []types.ConceptConnection {
	if len(pending) == 0 {
		return nil
	}
	var out []types.ConceptConnection
	for _, conn := range pending {
		if !addressesPendingConnections(events, []types.ConceptConnection{conn}) {
			out = append(out, conn)
		}
	}
	return out
}

func classifyLayoutDensity(activeElements int) string {
	switch {
	case activeElements <= 2:
		return "sparse"
	case activeElements <= 5:
		return "balanced"
	default:
		return "dense"
	}
}

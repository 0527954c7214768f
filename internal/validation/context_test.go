package validation

import (
	"testing"

	"github.com/akanksha509/AI-Tutor-sub001/internal/types"
)

func TestDeriveChunkContext_CollectsVisualElements(t *testing.T) {
	chunk := validChunk(1, 2)

	ctx := DeriveChunkContext(chunk, nil)
	if len(ctx.LastVisualElements) != 1 {
		t.Fatalf("expected one visual element, got %+v", ctx.LastVisualElements)
	}
	el := ctx.LastVisualElements[0]
	if el.ID != "ev-2" || el.Type != "text" || el.Description != "Photosynthesis overview" {
		t.Fatalf("unexpected element: %+v", el)
	}
	if el.Position != "center" {
		t.Fatalf("expected position from the first layout hint, got %q", el.Position)
	}
	if ctx.LayoutDensity != "sparse" {
		t.Fatalf("one element is sparse, got %q", ctx.LayoutDensity)
	}
}

func TestDeriveChunkContext_RemovedElementsDropOff(t *testing.T) {
	chunk := validChunk(1, 2)
	remove := validVisualEvent("ev-3", 7000, 500)
	remove.Content.Visual.Action = types.VisualActionRemove
	remove.Content.Visual.TargetElement = "ev-2"
	chunk.Events.Events = append(chunk.Events.Events, remove)

	ctx := DeriveChunkContext(chunk, nil)
	for _, el := range ctx.LastVisualElements {
		if el.ID == "ev-2" {
			t.Fatalf("removed element must not linger: %+v", ctx.LastVisualElements)
		}
	}
}

func TestDeriveChunkContext_ResolvesAddressedConnections(t *testing.T) {
	chunk := validChunk(2, 3)
	chunk.Events.Events[0].Content.Audio.Text = "Gravity pulls the water downward as promised earlier"
	prev := &types.ChunkContext{
		PendingConnections: []types.ConceptConnection{
			{Concept: "gravity"},
			{Concept: "osmosis"},
		},
	}

	ctx := DeriveChunkContext(chunk, prev)
	if len(ctx.PendingConnections) != 1 || ctx.PendingConnections[0].Concept != "osmosis" {
		t.Fatalf("expected only osmosis to remain pending, got %+v", ctx.PendingConnections)
	}
}

func TestDeriveChunkContext_HintsCarryForward(t *testing.T) {
	chunk := validChunk(1, 2)
	chunk.Events.Metadata.KeyEntities = []string{"photosynthesis", "chlorophyll"}
	chunk.NextChunkHints = &types.NextChunkHints{
		NarrativeThread:    "from light capture to sugar synthesis",
		CurrentFocus:       "light reactions",
		ConceptConnections: []types.ConceptConnection{{Concept: "calvin cycle", Reason: "promised next"}},
	}
	prev := &types.ChunkContext{KeyConcepts: []string{"photosynthesis"}}

	ctx := DeriveChunkContext(chunk, prev)
	if ctx.NarrativeThread != "from light capture to sugar synthesis" {
		t.Fatalf("expected hint narrative thread, got %q", ctx.NarrativeThread)
	}
	if ctx.CurrentFocus != "light reactions" {
		t.Fatalf("expected hint focus, got %q", ctx.CurrentFocus)
	}
	if len(ctx.KeyConcepts) != 2 {
		t.Fatalf("expected deduped concepts, got %v", ctx.KeyConcepts)
	}
	if len(ctx.PendingConnections) != 1 || ctx.PendingConnections[0].Concept != "calvin cycle" {
		t.Fatalf("expected new pending connection, got %+v", ctx.PendingConnections)
	}
}

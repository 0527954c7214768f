package validation

import (
	"math"
	"strings"
	"testing"

	"github.com/akanksha509/AI-Tutor-sub001/internal/types"
)

func TestValidateChunkContinuity_PendingConnectionUnaddressed(t *testing.T) {
	chunk := validChunk(2, 3)
	prev := types.ChunkContext{
		PendingConnections: []types.ConceptConnection{{Concept: "gravity"}},
	}

	a := ValidateChunkContinuity(DefaultContinuityPolicy(), chunk, prev)
	if math.Abs(a.BackwardContinuity-0.85) > 1e-9 {
		t.Fatalf("expected backward continuity 0.85, got %v", a.BackwardContinuity)
	}
	if len(a.Issues) != 1 || !strings.Contains(a.Issues[0], "pending concept connections") {
		t.Fatalf("expected pending-connections issue, got %v", a.Issues)
	}
}

func TestValidateChunkContinuity_PendingConnectionAddressed(t *testing.T) {
	chunk := validChunk(2, 3)
	chunk.Events.Events[0].Content.Audio.Text = "Gravity pulls the water downward through the xylem vessels"
	prev := types.ChunkContext{
		PendingConnections: []types.ConceptConnection{{Concept: "gravity"}},
	}

	a := ValidateChunkContinuity(DefaultContinuityPolicy(), chunk, prev)
	if a.BackwardContinuity != 1.0 {
		t.Fatalf("expected backward continuity 1.0, got %v (%v)", a.BackwardContinuity, a.Issues)
	}
}

func TestValidateChunkContinuity_StartsWithoutNarration(t *testing.T) {
	chunk := validChunk(2, 3)
	chunk.Events.Events = []types.TimelineEvent{validVisualEvent("ev-1", 0, 2000)}
	prev := types.ChunkContext{NarrativeThread: "the story so far"}

	a := ValidateChunkContinuity(DefaultContinuityPolicy(), chunk, prev)
	if math.Abs(a.BackwardContinuity-0.8) > 1e-9 {
		t.Fatalf("expected backward continuity 0.8, got %v", a.BackwardContinuity)
	}
	if !containsSubstring(a.Issues, "starts without narration") {
		t.Fatalf("expected narration issue, got %v", a.Issues)
	}
}

func TestValidateChunkContinuity_UnreferencedVisuals(t *testing.T) {
	chunk := validChunk(2, 3)
	prev := types.ChunkContext{
		LastVisualElements: []types.VisualElementRef{{ID: "el-1", Description: "chloroplast diagram"}},
	}

	a := ValidateChunkContinuity(DefaultContinuityPolicy(), chunk, prev)
	if math.Abs(a.BackwardContinuity-0.9) > 1e-9 {
		t.Fatalf("expected backward continuity 0.9, got %v", a.BackwardContinuity)
	}
	if !containsSubstring(a.Issues, "previous visual elements") {
		t.Fatalf("expected visual reference issue, got %v", a.Issues)
	}
}

func TestValidateChunkContinuity_VisualReferencedByDependency(t *testing.T) {
	chunk := validChunk(2, 3)
	chunk.Events.Events[1].Dependencies = []string{"el-1"}
	prev := types.ChunkContext{
		LastVisualElements: []types.VisualElementRef{{ID: "el-1", Description: "chloroplast diagram"}},
	}

	a := ValidateChunkContinuity(DefaultContinuityPolicy(), chunk, prev)
	if a.BackwardContinuity != 1.0 {
		t.Fatalf("expected backward continuity 1.0, got %v (%v)", a.BackwardContinuity, a.Issues)
	}
}

func TestValidateChunkContinuity_FlooredAtZero(t *testing.T) {
	policy := ContinuityPolicy{
		MissingLeadNarration:   0.9,
		UnreferencedVisuals:    0.9,
		UnaddressedConnections: 0.9,
	}
	chunk := validChunk(2, 3)
	chunk.Events.Events = []types.TimelineEvent{validVisualEvent("ev-1", 0, 2000)}
	prev := types.ChunkContext{
		NarrativeThread:    "the story so far",
		LastVisualElements: []types.VisualElementRef{{ID: "el-1", Description: "chloroplast diagram"}},
		PendingConnections: []types.ConceptConnection{{Concept: "gravity"}},
	}

	a := ValidateChunkContinuity(policy, chunk, prev)
	if a.BackwardContinuity != 0 {
		t.Fatalf("expected floor at 0, got %v", a.BackwardContinuity)
	}
	if len(a.Issues) != 3 {
		t.Fatalf("expected all three issues, got %v", a.Issues)
	}
}

func TestValidateChunkContinuity_ForwardAlwaysPerfect(t *testing.T) {
	chunk := validChunk(2, 3)
	chunk.NextChunkHints = &types.NextChunkHints{NarrativeThread: "wrap up"}
	prev := types.ChunkContext{
		NarrativeThread:    "the story so far",
		PendingConnections: []types.ConceptConnection{{Concept: "gravity"}},
	}

	a := ValidateChunkContinuity(DefaultContinuityPolicy(), chunk, prev)
	if a.ForwardContinuity != 1.0 {
		t.Fatalf("forward continuity is reserved and must stay 1.0, got %v", a.ForwardContinuity)
	}
}

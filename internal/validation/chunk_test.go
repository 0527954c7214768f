package validation

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/akanksha509/AI-Tutor-sub001/internal/types"
)

func validChunk(number, total int) types.StreamingTimelineChunk {
	return types.StreamingTimelineChunk{
		ChunkID:     "chunk-1",
		ChunkNumber: number,
		TotalChunks: total,
		Status:      types.ChunkStatusReady,
		Duration:    8000,
		Events: collectionOf(
			validNarrationEvent("ev-1", 0, "Light reactions split water molecules and release oxygen as byproduct", 4000),
			validVisualEvent("ev-2", 4000, 3000),
		),
	}
}

func TestValidateChunk_WellFormed(t *testing.T) {
	cfg := DefaultConfig()

	r := ValidateChunk(cfg, validChunk(1, 3), nil)
	if !r.IsValid {
		t.Fatalf("expected valid chunk, got %v", r.Errors)
	}
	if r.Continuity.BackwardContinuity != 1.0 || r.Continuity.ForwardContinuity != 1.0 {
		t.Fatalf("no previous context must score 1.0, got %+v", r.Continuity)
	}
	if len(r.Continuity.Issues) != 0 {
		t.Fatalf("expected no continuity issues, got %v", r.Continuity.Issues)
	}
	if r.Quality.UserExperience != 1.0 || r.Quality.TechnicalSuccess != 1.0 {
		t.Fatalf("clean chunk must score full quality, got %+v", r.Quality)
	}
}

func TestValidateChunk_TotalChunksBelowChunkNumber(t *testing.T) {
	cfg := DefaultConfig()

	r := ValidateChunk(cfg, validChunk(2, 1), nil)
	if r.IsValid {
		t.Fatalf("expected invalid chunk")
	}
	if !containsSubstring(r.Errors, "Total chunks must be >= chunk number") {
		t.Fatalf("expected total chunks error, got %v", r.Errors)
	}
}

func TestValidateChunk_EnvelopeChecks(t *testing.T) {
	cfg := DefaultConfig()
	chunk := validChunk(0, 0)
	chunk.ChunkID = "  "

	r := ValidateChunk(cfg, chunk, nil)
	if !containsSubstring(r.Errors, "Chunk ID is required") {
		t.Fatalf("expected chunk id error, got %v", r.Errors)
	}
	if !containsSubstring(r.Errors, "Chunk number must be >= 1") {
		t.Fatalf("expected chunk number error, got %v", r.Errors)
	}
}

func TestValidateChunk_QualityPenalties(t *testing.T) {
	cfg := DefaultConfig()
	chunk := validChunk(1, 1)
	// One error (below-minimum duration) and one warning (create without hints).
	bad := validVisualEvent("ev-3", 7000, 50)
	bad.LayoutHints = nil
	chunk.Events.Events = append(chunk.Events.Events, bad)

	r := ValidateChunk(cfg, chunk, nil)
	if r.IsValid {
		t.Fatalf("expected invalid chunk")
	}
	wantUE := 1.0 - 0.1*float64(len(r.Warnings)) - 0.3*float64(len(r.Errors))
	if wantUE < 0 {
		wantUE = 0
	}
	if math.Abs(r.Quality.UserExperience-wantUE) > 1e-9 {
		t.Fatalf("user experience: want %v got %v", wantUE, r.Quality.UserExperience)
	}
	wantTS := 1.0 - 0.2*float64(len(r.Errors))
	if math.Abs(r.Quality.TechnicalSuccess-wantTS) > 1e-9 {
		t.Fatalf("technical success: want %v got %v", wantTS, r.Quality.TechnicalSuccess)
	}
	for _, e := range r.Errors {
		if !containsSubstring(r.Quality.RiskFactors, e) {
			t.Fatalf("every error is a risk factor; missing %q", e)
		}
	}
}

func TestValidateChunk_ExceedWarningsAreRiskFactors(t *testing.T) {
	cfg := DefaultConfig()
	chunk := validChunk(1, 1)
	long := validVisualEvent("ev-3", 7000, 45000)
	chunk.Events.Events = append(chunk.Events.Events, long)

	r := ValidateChunk(cfg, chunk, nil)
	found := false
	for _, risk := range r.Quality.RiskFactors {
		if strings.Contains(risk, "exceeds maximum") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected exceed-warning among risk factors, got %v", r.Quality.RiskFactors)
	}
}

func TestValidateChunk_Idempotent(t *testing.T) {
	cfg := DefaultConfig()
	chunk := validChunk(1, 2)
	chunk.Events.Events = append(chunk.Events.Events, validVisualEvent("ev-3", 7000, 50))
	prev := &types.ChunkContext{
		NarrativeThread:    "photosynthesis so far",
		PendingConnections: []types.ConceptConnection{{Concept: "gravity"}},
	}

	first := ValidateChunk(cfg, chunk, prev)
	second := ValidateChunk(cfg, chunk, prev)

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("validation is not idempotent:\n%s\n%s", a, b)
	}
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/akanksha509/AI-Tutor-sub001/internal/types"
	"github.com/akanksha509/AI-Tutor-sub001/internal/validation"
)

func validResult() validation.ChunkResult {
	return validation.ChunkResult{
		IsValid: true,
		Quality: validation.QualityPrediction{
			UserExperience:   1.0,
			TechnicalSuccess: 1.0,
		},
	}
}

func invalidResult(errs ...string) validation.ChunkResult {
	return validation.ChunkResult{
		IsValid: false,
		Errors:  errs,
	}
}

func TestDecide_AcceptsValidChunk(t *testing.T) {
	d := DefaultAcceptancePolicy().Decide(validResult(), 1)
	if d.Action != ActionAccept {
		t.Fatalf("expected accept, got %s (%s)", d.Action, d.Reason)
	}
}

func TestDecide_RetriesInvalidChunkWithBackoff(t *testing.T) {
	policy := DefaultAcceptancePolicy()
	result := invalidResult("Chunk ID is required")

	first := policy.Decide(result, 1)
	if first.Action != ActionRetry {
		t.Fatalf("attempt 1: expected retry, got %s", first.Action)
	}
	if first.RetryDelay != 500*time.Millisecond {
		t.Fatalf("attempt 1: expected 500ms delay, got %s", first.RetryDelay)
	}

	second := policy.Decide(result, 2)
	if second.Action != ActionRetry {
		t.Fatalf("attempt 2: expected retry, got %s", second.Action)
	}
	if second.RetryDelay != 1*time.Second {
		t.Fatalf("attempt 2: expected 1s delay, got %s", second.RetryDelay)
	}
}

func TestDecide_RejectsAfterRetriesExhausted(t *testing.T) {
	policy := DefaultAcceptancePolicy()
	d := policy.Decide(invalidResult("Chunk ID is required"), 3)
	if d.Action != ActionReject {
		t.Fatalf("expected reject, got %s", d.Action)
	}
}

func TestDecide_WarnPolicyAcceptsInvalidChunk(t *testing.T) {
	policy := DefaultAcceptancePolicy()
	policy.OnValidationError = ErrorPolicyWarn
	d := policy.Decide(invalidResult("Duration must be positive"), 1)
	if d.Action != ActionAccept {
		t.Fatalf("expected accept under warn policy, got %s", d.Action)
	}
}

func TestDecide_LowQualityWithRejectPolicy(t *testing.T) {
	policy := DefaultAcceptancePolicy()
	policy.OnQualityIssues = QualityPolicyReject

	result := validResult()
	result.Quality.UserExperience = 0.3
	d := policy.Decide(result, 3)
	if d.Action != ActionReject {
		t.Fatalf("expected reject for low quality, got %s", d.Action)
	}
}

func TestDecide_LowQualityWithWarnPolicyStillAccepts(t *testing.T) {
	result := validResult()
	result.Quality.UserExperience = 0.3
	d := DefaultAcceptancePolicy().Decide(result, 1)
	if d.Action != ActionAccept {
		t.Fatalf("expected accept under warn quality policy, got %s", d.Action)
	}
}

func TestValidateChunksStructurally(t *testing.T) {
	cfg := validation.DefaultConfig()
	chunks := make([]types.StreamingTimelineChunk, 6)
	for i := range chunks {
		chunks[i] = types.StreamingTimelineChunk{
			ChunkID:     "chunk-structural",
			ChunkNumber: 1,
			TotalChunks: 1,
			Duration:    1000,
			Events: types.TimelineEventCollection{Events: []types.TimelineEvent{{
				ID:        "ev-1",
				Timestamp: 0,
				Duration:  1000,
				Type:      types.EventTypeVisual,
				Content: types.EventContent{
					Kind: types.ContentKindVisual,
					Visual: &types.VisualContent{
						Action:      types.VisualActionCreate,
						ElementType: types.ElementTypeText,
					},
				},
				LayoutHints: []types.LayoutHint{{
					Semantic:    types.SemanticPrimary,
					Positioning: types.PositionCenter,
					Importance:  types.ImportanceMedium,
				}},
			}}},
		}
	}
	// Make one chunk invalid so both outcomes appear.
	chunks[3].ChunkID = ""

	results, err := ValidateChunksStructurally(context.Background(), cfg, chunks, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(chunks) {
		t.Fatalf("expected %d results, got %d", len(chunks), len(results))
	}
	for i, r := range results {
		if i == 3 {
			if r.IsValid {
				t.Fatalf("chunk 3 should be invalid")
			}
			continue
		}
		if !r.IsValid {
			t.Fatalf("chunk %d should be valid, errors: %v", i, r.Errors)
		}
	}
}

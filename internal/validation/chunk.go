package validation

import (
	"fmt"
	"strings"

	"github.com/akanksha509/AI-Tutor-sub001/internal/types"
)

// ValidateChunk validates the chunk envelope and its embedded event
// collection, then scores continuity against the previous chunk's context
// (a nil context scores 1.0 — there is nothing to compare against). It
// always returns a result; internal failures surface as a generic error.
func ValidateChunk(cfg Config, chunk types.StreamingTimelineChunk, previous *types.ChunkContext) (result ChunkResult) {
	defer func() {
		if r := recover(); r != nil {
			if cfg.Log != nil {
				cfg.Log.Warn("chunk validation recovered from panic", "chunk_id", chunk.ChunkID, "panic", r)
			}
			result = ChunkResult{
				Errors:      []string{fmt.Sprintf("Internal validation failure: %v", r)},
				Warnings:    []string{},
				Suggestions: []string{},
				Continuity:  perfectContinuity(),
			}
			result.Quality = predictQuality(result.Errors, result.Warnings)
		}
	}()

	var errs, warns, suggestions []string

	if strings.TrimSpace(chunk.ChunkID) == "" {
		errs = append(errs, "Chunk ID is required")
	}
	if chunk.ChunkNumber < 1 {
		errs = append(errs, fmt.Sprintf("Chunk number must be >= 1 (got %d)", chunk.ChunkNumber))
	}
	if chunk.TotalChunks < chunk.ChunkNumber {
		errs = append(errs, "Total chunks must be >= chunk number")
	}

	collection := ValidateEventCollection(cfg, chunk.Events)
	errs = append(errs, collection.Errors...)
	warns = append(warns, collection.Warnings...)
	suggestions = append(suggestions, collection.Suggestions...)

	continuity := perfectContinuity()
	if previous != nil {
		continuity = ValidateChunkContinuity(DefaultContinuityPolicy(), chunk, *previous)
	}

	errs = dedupeStrings(errs)
	warns = dedupeStrings(warns)
	suggestions = dedupeStrings(suggestions)

	return ChunkResult{
		IsValid:     len(errs) == 0,
		Errors:      errs,
		Warnings:    warns,
		Suggestions: suggestions,
		Continuity:  continuity,
		Quality:     predictQuality(errs, warns),
	}
}

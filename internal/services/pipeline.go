package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/akanksha509/AI-Tutor-sub001/internal/types"
	"github.com/akanksha509/AI-Tutor-sub001/internal/validation"
)

// The engine only judges chunks; this pipeline owns the accept/retry/reject
// policy applied to those judgments.

type ErrorPolicy string

const (
	ErrorPolicyReject ErrorPolicy = "reject"
	ErrorPolicyWarn   ErrorPolicy = "warn"
	ErrorPolicyFix    ErrorPolicy = "fix"
	ErrorPolicyIgnore ErrorPolicy = "ignore"
)

type QualityPolicy string

const (
	QualityPolicyReject  QualityPolicy = "reject"
	QualityPolicyWarn    QualityPolicy = "warn"
	QualityPolicyImprove QualityPolicy = "improve"
	QualityPolicyAccept  QualityPolicy = "accept"
)

type RetryConfig struct {
	MaxRetries        int
	BackoffMultiplier float64
	InitialDelay      time.Duration
}

type AcceptancePolicy struct {
	OnValidationError ErrorPolicy
	OnQualityIssues   QualityPolicy
	QualityThreshold  float64
	Retry             RetryConfig
}

func DefaultAcceptancePolicy() AcceptancePolicy {
	return AcceptancePolicy{
		OnValidationError: ErrorPolicyReject,
		OnQualityIssues:   QualityPolicyWarn,
		QualityThreshold:  0.5,
		Retry: RetryConfig{
			MaxRetries:        2,
			BackoffMultiplier: 2.0,
			InitialDelay:      500 * time.Millisecond,
		},
	}
}

type Action string

const (
	ActionAccept Action = "accept"
	ActionRetry  Action = "retry"
	ActionReject Action = "reject"
)

type Decision struct {
	Action     Action        `json:"action"`
	Reason     string        `json:"reason"`
	RetryDelay time.Duration `json:"retry_delay,omitempty"`
}

// Decide maps one validation result to an acceptance decision. attempt is
// 1-based; retries stop once MaxRetries regeneration attempts were spent.
func (p AcceptancePolicy) Decide(result validation.ChunkResult, attempt int) Decision {
	if !result.IsValid {
		switch p.OnValidationError {
		case ErrorPolicyWarn, ErrorPolicyIgnore:
			return Decision{Action: ActionAccept, Reason: fmt.Sprintf("accepted despite %d validation errors (policy %s)", len(result.Errors), p.OnValidationError)}
		case ErrorPolicyFix:
			return Decision{Action: ActionAccept, Reason: "accepted for downstream fixing"}
		default:
			return p.rejectOrRetry(attempt, fmt.Sprintf("%d validation errors", len(result.Errors)))
		}
	}

	if result.Quality.UserExperience < p.QualityThreshold {
		switch p.OnQualityIssues {
		case QualityPolicyReject, QualityPolicyImprove:
			return p.rejectOrRetry(attempt, fmt.Sprintf("user experience score %.2f below threshold %.2f", result.Quality.UserExperience, p.QualityThreshold))
		}
	}

	return Decision{Action: ActionAccept, Reason: "chunk passed validation"}
}

func (p AcceptancePolicy) rejectOrRetry(attempt int, reason string) Decision {
	if attempt <= p.Retry.MaxRetries {
		delay := p.Retry.InitialDelay
		for i := 1; i < attempt; i++ {
			delay = time.Duration(float64(delay) * p.Retry.BackoffMultiplier)
		}
		return Decision{Action: ActionRetry, Reason: reason, RetryDelay: delay}
	}
	return Decision{Action: ActionReject, Reason: reason + "; retries exhausted"}
}

// ValidateChunksStructurally runs the structural half of validation over
// many chunks concurrently. Continuity is left to the sequential path since
// chunk N needs the context derived from accepted chunk N-1.
func ValidateChunksStructurally(ctx context.Context, cfg validation.Config, chunks []types.StreamingTimelineChunk, maxConc int) ([]validation.ChunkResult, error) {
	if maxConc <= 0 {
		maxConc = 4
	}
	results := make([]validation.ChunkResult, len(chunks))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxConc)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			results[i] = validation.ValidateChunk(cfg, chunk, nil)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

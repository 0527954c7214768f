package validation

import (
	"fmt"
	"sort"

	"github.com/akanksha509/AI-Tutor-sub001/internal/types"
)

// overlapSampleStepMs is the fixed sampling granularity for overlap density.
// Interval overlap is approximated by sampling each event's active window at
// this step; boundary timestamps quantize accordingly.
const overlapSampleStepMs = int64(100)

// ValidateEventCollection validates every event in the collection and then
// applies the cross-event checks: strict ordering, overlap density, and
// dependency chain integrity. Per-event messages are prefixed with the
// 1-based event index.
func ValidateEventCollection(cfg Config, collection types.TimelineEventCollection) Result {
	var errs, warns, suggestions []string

	events := collection.Events
	for i, event := range events {
		r := ValidateEvent(cfg, event)
		prefix := fmt.Sprintf("Event %d: ", i+1)
		for _, e := range r.Errors {
			errs = append(errs, prefix+e)
		}
		for _, w := range r.Warnings {
			warns = append(warns, prefix+w)
		}
		for _, s := range r.Suggestions {
			suggestions = append(suggestions, prefix+s)
		}
	}

	if cfg.StrictOrdering {
		for i := 1; i < len(events); i++ {
			if events[i].Timestamp < events[i-1].Timestamp {
				errs = append(errs, fmt.Sprintf("Event %d timestamp %dms precedes event %d timestamp %dms",
					i+1, events[i].Timestamp, i, events[i-1].Timestamp))
			}
		}
	}

	warns = append(warns, overlapDensityWarnings(cfg, events)...)
	errs = append(errs, dependencyChainErrors(events)...)

	if cfg.Log != nil {
		cfg.Log.Debug("validated event collection",
			"events", len(events), "errors", len(errs), "warnings", len(warns))
	}
	return finalizeResult(errs, warns, suggestions)
}

func overlapDensityWarnings(cfg Config, events []types.TimelineEvent) []string {
	if cfg.MaxSimultaneousEvents <= 0 || len(events) == 0 {
		return nil
	}
	counts := map[int64]int{}
	for _, event := range events {
		if event.Duration <= 0 {
			continue
		}
		end := event.Timestamp + event.Duration
		for t := event.Timestamp; t <= end; t += overlapSampleStepMs {
			counts[t]++
		}
	}
	var instants []int64
	for t, n := range counts {
		if n > cfg.MaxSimultaneousEvents {
			instants = append(instants, t)
		}
	}
	sort.Slice(instants, func(i, j int) bool { return instants[i] < instants[j] })
	warns := make([]string, 0, len(instants))
	for _, t := range instants {
		warns = append(warns, fmt.Sprintf("%d simultaneous events at %dms exceeds maximum %d",
			counts[t], t, cfg.MaxSimultaneousEvents))
	}
	return warns
}

func dependencyChainErrors(events []types.TimelineEvent) []string {
	byID := make(map[string]types.TimelineEvent, len(events))
	for _, event := range events {
		if event.ID == "" {
			continue
		}
		if _, ok := byID[event.ID]; !ok {
			byID[event.ID] = event
		}
	}
	var errs []string
	for i, event := range events {
		for _, dep := range event.Dependencies {
			if dep == "" || dep == event.ID {
				continue // reported by the per-event checks
			}
			target, ok := byID[dep]
			if !ok {
				errs = append(errs, fmt.Sprintf("Event %d: dependency %q not found in collection", i+1, dep))
				continue
			}
			if target.Timestamp >= event.Timestamp {
				errs = append(errs, fmt.Sprintf("Event %d: dependency %q must occur earlier (%dms >= %dms)",
					i+1, dep, target.Timestamp, event.Timestamp))
			}
		}
	}
	return errs
}

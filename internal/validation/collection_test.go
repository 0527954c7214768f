package validation

import (
	"strings"
	"testing"

	"github.com/akanksha509/AI-Tutor-sub001/internal/types"
)

func collectionOf(events ...types.TimelineEvent) types.TimelineEventCollection {
	return types.TimelineEventCollection{Events: events}
}

func TestValidateEventCollection_StrictOrderingViolation(t *testing.T) {
	cfg := DefaultConfig()
	col := collectionOf(
		validVisualEvent("ev-1", 1000, 2000),
		validVisualEvent("ev-2", 500, 2000),
	)

	r := ValidateEventCollection(cfg, col)
	if r.IsValid {
		t.Fatalf("expected ordering error")
	}
	var ordering []string
	for _, e := range r.Errors {
		if strings.Contains(e, "precedes") {
			ordering = append(ordering, e)
		}
	}
	if len(ordering) != 1 {
		t.Fatalf("expected exactly one ordering error, got %v", r.Errors)
	}
	want := "Event 2 timestamp 500ms precedes event 1 timestamp 1000ms"
	if ordering[0] != want {
		t.Fatalf("expected %q, got %q", want, ordering[0])
	}
}

func TestValidateEventCollection_OrderingIgnoredWhenLenient(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StrictOrdering = false
	col := collectionOf(
		validVisualEvent("ev-1", 1000, 2000),
		validVisualEvent("ev-2", 500, 2000),
	)

	r := ValidateEventCollection(cfg, col)
	if !r.IsValid {
		t.Fatalf("expected valid collection, got %v", r.Errors)
	}
}

func TestValidateEventCollection_PerEventPrefix(t *testing.T) {
	cfg := DefaultConfig()
	bad := validVisualEvent("ev-2", 100, 50)
	col := collectionOf(validVisualEvent("ev-1", 0, 2000), bad)

	r := ValidateEventCollection(cfg, col)
	if len(r.Errors) != 1 {
		t.Fatalf("expected one error, got %v", r.Errors)
	}
	if !strings.HasPrefix(r.Errors[0], "Event 2: ") {
		t.Fatalf("expected 1-based event prefix, got %q", r.Errors[0])
	}
}

func TestValidateEventCollection_DensityWarning(t *testing.T) {
	cfg := DefaultConfig()
	// Ten events active over [0,100] plus one over [100,200]: the sampled
	// instant 100ms sees all eleven.
	events := make([]types.TimelineEvent, 0, 11)
	for i := 0; i < 10; i++ {
		events = append(events, validVisualEvent(eventID(i), 0, 100))
	}
	events = append(events, validVisualEvent("ev-last", 100, 100))

	r := ValidateEventCollection(cfg, collectionOf(events...))
	if !r.IsValid {
		t.Fatalf("density must warn, not error: %v", r.Errors)
	}
	var density []string
	for _, w := range r.Warnings {
		if strings.Contains(w, "simultaneous") {
			density = append(density, w)
		}
	}
	if len(density) != 1 {
		t.Fatalf("expected exactly one density warning, got %v", r.Warnings)
	}
	if !strings.Contains(density[0], "11 simultaneous events") || !strings.Contains(density[0], "maximum 10") {
		t.Fatalf("expected count 11 and maximum 10 in warning, got %q", density[0])
	}
}

func TestValidateEventCollection_NoDensityWarningAtLimit(t *testing.T) {
	cfg := DefaultConfig()
	events := make([]types.TimelineEvent, 0, 10)
	for i := 0; i < 10; i++ {
		events = append(events, validVisualEvent(eventID(i), 0, 100))
	}

	r := ValidateEventCollection(cfg, collectionOf(events...))
	if containsSubstring(r.Warnings, "simultaneous") {
		t.Fatalf("ten events is within the limit, got %v", r.Warnings)
	}
}

func TestValidateEventCollection_MissingDependency(t *testing.T) {
	cfg := DefaultConfig()
	dependent := validVisualEvent("ev-2", 1000, 2000)
	dependent.Dependencies = []string{"ghost"}
	col := collectionOf(validVisualEvent("ev-1", 0, 2000), dependent)

	r := ValidateEventCollection(cfg, col)
	if !containsSubstring(r.Errors, `dependency "ghost" not found`) {
		t.Fatalf("expected missing dependency error, got %v", r.Errors)
	}
}

func TestValidateEventCollection_DependencyMustBeEarlier(t *testing.T) {
	cfg := DefaultConfig()
	first := validVisualEvent("ev-1", 0, 2000)
	first.Dependencies = []string{"ev-2"}
	second := validVisualEvent("ev-2", 0, 2000)
	col := collectionOf(first, second)

	r := ValidateEventCollection(cfg, col)
	if !containsSubstring(r.Errors, "must occur earlier") {
		t.Fatalf("expected ordering dependency error, got %v", r.Errors)
	}
}

func eventID(i int) string {
	return "ev-" + string(rune('a'+i))
}

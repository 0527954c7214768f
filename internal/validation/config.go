package validation

import (
	"github.com/akanksha509/AI-Tutor-sub001/internal/types"
)

// Logger is the minimal logging surface the engine needs. A nil Logger means
// silent validation; *logger.Logger satisfies it.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// CustomRule inspects one event and returns extra error and warning messages.
// Rules run after the built-in checks and never affect each other.
type CustomRule func(event types.TimelineEvent) (errors []string, warnings []string)

type Config struct {
	MaxEventDurationMs    int64
	MinEventDurationMs    int64
	MaxSimultaneousEvents int
	MaxAudioTextLength    int
	StrictOrdering        bool
	LayoutFeasibility     bool
	CustomRules           []CustomRule
	Log                   Logger
}

func DefaultConfig() Config {
	return Config{
		MaxEventDurationMs:    30000,
		MinEventDurationMs:    100,
		MaxSimultaneousEvents: 10,
		MaxAudioTextLength:    500,
		StrictOrdering:        true,
		LayoutFeasibility:     true,
	}
}

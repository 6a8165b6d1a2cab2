package output

import (
	"time"

	"github.com/google/uuid"
)

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// reportIDFunc returns a fresh report identifier (override for deterministic
// report envelopes in tests).
var reportIDFunc = uuid.NewString

// SetReportIDFunc overrides the report identifier provider (use only in tests).
func SetReportIDFunc(f func() string) { reportIDFunc = f }

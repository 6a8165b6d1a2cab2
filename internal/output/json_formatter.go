package output

import (
	"encoding/json"
	"time"

	"github.com/mhansen003/all-in-one-loan-simulator-sub001/internal/domain"
)

// JSONFormatter serializes the comparison result as pretty-printed JSON
// wrapped in an identified envelope.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

// reportEnvelope carries provenance for downstream consumers of the report.
type reportEnvelope struct {
	ReportID    string                   `json:"report_id"`
	GeneratedAt string                   `json:"generated_at"`
	Result      *domain.SimulationResult `json:"result"`
}

func (j JSONFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	env := reportEnvelope{
		ReportID:    reportIDFunc(),
		GeneratedAt: nowFunc().UTC().Format(time.RFC3339),
		Result:      result,
	}
	return json.MarshalIndent(env, "", "  ")
}

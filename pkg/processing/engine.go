package processing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/systemstart/wempak/pkg/stages"
)

// Outcome is how a stage ended.
type Outcome string

const (
	OutcomeOK      Outcome = "ok"
	OutcomeWarned  Outcome = "warned"
	OutcomeFailed  Outcome = "failed"
	OutcomeSkipped Outcome = "skipped"
)

// Record is the result of one stage of a run.
type Record struct {
	Stage    string
	Policy   stages.Policy
	Outcome  Outcome
	Duration time.Duration
	Err      error
}

// StageError is returned when a fatal stage aborts the run.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %q failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Sections receives the titles of announced console sections.
type Sections interface {
	Section(title string)
}

// Run executes the conversion plan for pc.
func Run(ctx context.Context, pc *stages.Context, tools Tools, sections Sections) ([]Record, error) {
	return RunStages(ctx, pc, Plan(pc, tools), sections)
}

// RunStages executes stages sequentially. A failing Warn stage is logged and
// the run continues; a failing Fatal stage stops the run and every stage
// after it is recorded as skipped. sections may be nil.
func RunStages(ctx context.Context, pc *stages.Context, list []stages.Stage, sections Sections) ([]Record, error) {
	records := make([]Record, 0, len(list))

	for i, st := range list {
		if a, ok := st.(stages.Announcer); ok && sections != nil {
			sections.Section(a.Announce())
		}

		slog.Info("running stage", "index", i+1, "stage", st.Name(), "policy", st.Policy())
		start := time.Now()
		err := runStage(ctx, st, pc)
		rec := Record{Stage: st.Name(), Policy: st.Policy(), Duration: time.Since(start), Err: err}

		switch {
		case err == nil:
			rec.Outcome = OutcomeOK
		case st.Policy() == stages.Warn:
			rec.Outcome = OutcomeWarned
			slog.Error("stage failed, continuing", "stage", st.Name(), "error", err)
		default:
			rec.Outcome = OutcomeFailed
			records = append(records, rec)
			slog.Error("stage failed", "stage", st.Name(), "error", err)
			return skipRemaining(records, list[i+1:]), &StageError{Stage: st.Name(), Err: err}
		}
		records = append(records, rec)
	}

	return records, nil
}

func runStage(ctx context.Context, st stages.Stage, pc *stages.Context) error {
	if err := st.Check(pc); err != nil {
		return err
	}
	return st.Run(ctx, pc)
}

func skipRemaining(records []Record, rest []stages.Stage) []Record {
	for _, st := range rest {
		records = append(records, Record{Stage: st.Name(), Policy: st.Policy(), Outcome: OutcomeSkipped})
	}
	return records
}

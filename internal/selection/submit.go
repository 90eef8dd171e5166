package selection

import (
	"encoding/json"
	"fmt"
	"time"
)

// Result is the outcome of Submit. Exactly one of SubmittedAt or Reasons is set.
type Result struct {
	Accepted    bool
	Total       int
	SubmittedAt time.Time
	Reasons     []string
}

// Snapshot is the record written under the submitted key on acceptance.
type Snapshot struct {
	TS        int64    `json:"ts"`
	Selection []string `json:"selection"`
}

// Submit validates the credit total. A rejection leaves everything as it was.
// An acceptance writes a Snapshot and keeps the selection editable, so the
// user may submit again. If the snapshot cannot be written the accepted
// result is still returned together with an error wrapping ErrStorage.
func (e *Engine) Submit() (Result, error) {
	total := e.TotalCredits()

	if reasons := e.config.Range().Reasons(total); len(reasons) > 0 {
		e.logger.Info("Submission rejected", "total", total, "reasons", reasons)
		return Result{Total: total, Reasons: reasons}, nil
	}

	submittedAt := e.now()
	result := Result{Accepted: true, Total: total, SubmittedAt: submittedAt}

	snapshot := Snapshot{TS: submittedAt.UnixMilli(), Selection: e.Selected()}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return result, fmt.Errorf("failed to encode submission snapshot: %w", err)
	}

	if err := e.store.Set(e.config.SubmittedKey(), data); err != nil {
		e.logger.Warn("Unable to record submission", "key", e.config.SubmittedKey(), "err", err)
		return result, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	e.logger.Info("Submission accepted", "total", total, "courses", len(snapshot.Selection))
	return result, nil
}

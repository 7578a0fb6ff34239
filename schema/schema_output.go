package schema

import (
	"errors"
	"fmt"
	"time"
)

// RunOutcome reports what one pipeline run produced.
type RunOutcome struct {
	Status      RunStatus               `json:"status"`
	NumRecords  int                     `json:"num_records"`
	NumRejected int                     `json:"num_rejected"`
	Written     []ArtifactKind          `json:"written"`
	Skipped     []ArtifactKind          `json:"skipped"`
	Failed      map[ArtifactKind]error  `json:"-"`
	Failures    map[ArtifactKind]string `json:"failures,omitempty"`
	Message     string                  `json:"message"`
	Duration    time.Duration           `json:"duration"`
}

// NumWritten returns the number of artifacts written in the run.
func (o RunOutcome) NumWritten() int {
	return len(o.Written)
}

// Err joins all artifact failures in pipeline order, or returns the
// unclassified failure carried in Message. It is nil unless Status is failed.
func (o RunOutcome) Err() error {
	if o.Status != StatusFailed {
		return nil
	}
	var errs []error
	for _, kind := range AllArtifactKinds {
		if err, ok := o.Failed[kind]; ok {
			errs = append(errs, fmt.Errorf("%s: %w", kind, err))
		}
	}
	if len(errs) == 0 {
		return errors.New(o.Message)
	}
	return errors.Join(errs...)
}

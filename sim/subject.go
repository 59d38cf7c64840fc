package sim

import "fmt"

// Subject is one observed unit: a single animal whose time to the event of
// interest (adoption) is tracked in discrete steps.
type Subject struct {
	Group       int   // index into the dataset's group list
	ElapsedTime int64 // observed time steps, >= 1
	Event       bool  // true: event observed; false: right-censored
}

// Dataset is an ordered collection of subjects generated or observed under a
// single configuration. Datasets are immutable values: produced once, then
// only read. When a subject is right-censored, ElapsedTime is the realized
// censoring time, never the unobserved true event time.
type Dataset struct {
	Groups   []string // group labels, index-aligned with Subject.Group
	Subjects []Subject
}

// Validate checks the dataset invariants: every subject's group index must be
// in range and every elapsed time must be >= 1. The first offending record is
// reported by index. A dataset with no subjects is valid.
func (d *Dataset) Validate() error {
	for i, s := range d.Subjects {
		if s.Group < 0 || s.Group >= len(d.Groups) {
			return fmt.Errorf("subject[%d]: group index %d out of range [0,%d)", i, s.Group, len(d.Groups))
		}
		if s.ElapsedTime < 1 {
			return fmt.Errorf("subject[%d]: elapsed time must be >= 1, got %d", i, s.ElapsedTime)
		}
	}
	return nil
}

package sim

import "fmt"

// GroupSpec names a subject group and its per-step event probability.
type GroupSpec struct {
	Name        string
	Probability float64
}

// Config holds everything Simulate needs for one run. Parameters are fixed
// for the duration of the run; nothing here is mutated by the simulator.
type Config struct {
	Subjects  int         // number of subjects to generate
	Groups    []GroupSpec // at least one; empty names default to group_N
	Censoring CensoringPolicy
	Seed      int64
}

// Validate fails fast on parameters that would produce a nonsensical dataset.
func (c *Config) Validate() error {
	if c.Subjects <= 0 {
		return fmt.Errorf("subjects must be positive, got %d", c.Subjects)
	}
	if len(c.Groups) == 0 {
		return fmt.Errorf("at least one group is required")
	}
	for i, g := range c.Groups {
		if err := validateProbability(fmt.Sprintf("group[%d] probability", i), g.Probability); err != nil {
			return err
		}
	}
	return c.Censoring.Validate()
}

// GroupNames returns the configured labels, substituting group_N for any left
// empty.
func (c *Config) GroupNames() []string {
	names := make([]string, len(c.Groups))
	for i, g := range c.Groups {
		if g.Name == "" {
			names[i] = fmt.Sprintf("group_%d", i)
		} else {
			names[i] = g.Name
		}
	}
	return names
}

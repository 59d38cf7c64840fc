package sim

// GroupSummary aggregates one group's observed outcomes: counts, the censored
// share, and the sufficient statistics of the geometric model.
type GroupSummary struct {
	Name          string
	Subjects      int
	Events        int
	Censored      int
	CensoredShare float64
	MeanElapsed   float64
	MaxElapsed    int64

	// Sufficient statistics: together with Events they determine the
	// geometric likelihood exactly.
	EventSteps    int64 // sum of elapsed time over event-observed subjects
	CensoredSteps int64 // sum of elapsed time over right-censored subjects
}

// Summary aggregates a dataset for reporting.
type Summary struct {
	Subjects int
	Events   int
	Censored int
	Groups   []GroupSummary
}

// Summarize computes per-group counts and totals. Safe for nil or empty
// datasets (returns zero-value fields). The dataset must satisfy Validate.
func Summarize(ds *Dataset) *Summary {
	summary := &Summary{}
	if ds == nil {
		return summary
	}

	summary.Groups = make([]GroupSummary, len(ds.Groups))
	for i, name := range ds.Groups {
		summary.Groups[i].Name = name
	}

	elapsedSums := make([]int64, len(ds.Groups))
	for _, s := range ds.Subjects {
		g := &summary.Groups[s.Group]
		g.Subjects++
		elapsedSums[s.Group] += s.ElapsedTime
		if s.ElapsedTime > g.MaxElapsed {
			g.MaxElapsed = s.ElapsedTime
		}
		if s.Event {
			g.Events++
			g.EventSteps += s.ElapsedTime
			summary.Events++
		} else {
			g.Censored++
			g.CensoredSteps += s.ElapsedTime
			summary.Censored++
		}
		summary.Subjects++
	}

	for i := range summary.Groups {
		g := &summary.Groups[i]
		if g.Subjects > 0 {
			g.CensoredShare = float64(g.Censored) / float64(g.Subjects)
			g.MeanElapsed = float64(elapsedSums[i]) / float64(g.Subjects)
		}
	}
	return summary
}

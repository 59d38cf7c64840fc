// Package cohort moves datasets across the file boundary. Real observation
// data arrives as delimited text with a group label, an elapsed time, and an
// outcome category per row; this package maps that onto sim.Dataset and back.
package cohort

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/adoption-sim/adoption-sim/sim"
)

// Canonical outcome categories written by Write. On input, any category other
// than the configured event value loads as right-censored: in the shelter
// data, "transfer" or "return to owner" all end observation without an
// adoption.
const (
	EventOutcome    = "event"
	CensoredOutcome = "censored"
)

// Columns maps dataset fields to CSV column names. Zero-value fields fall
// back to the canonical names, so the zero value reads what Write produces.
type Columns struct {
	Group      string // group label column; default "group"
	Elapsed    string // observed steps column; default "elapsed_time"
	Outcome    string // outcome category column; default "outcome"
	EventValue string // category counted as an observed event; default "event"
}

// DefaultColumns returns the canonical column mapping.
func DefaultColumns() Columns {
	return Columns{Group: "group", Elapsed: "elapsed_time", Outcome: "outcome", EventValue: EventOutcome}
}

func (c Columns) withDefaults() Columns {
	d := DefaultColumns()
	if c.Group == "" {
		c.Group = d.Group
	}
	if c.Elapsed == "" {
		c.Elapsed = d.Elapsed
	}
	if c.Outcome == "" {
		c.Outcome = d.Outcome
	}
	if c.EventValue == "" {
		c.EventValue = d.EventValue
	}
	return c
}

// Load reads a cohort CSV file into a dataset.
func Load(path string, cols Columns) (*sim.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening cohort CSV %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // read-only file

	ds, err := Read(file, cols)
	if err != nil {
		return nil, fmt.Errorf("reading cohort CSV %s: %w", path, err)
	}
	return ds, nil
}

// Read parses cohort CSV from r. The first row must be a header containing
// the mapped column names, in any order; extra columns are ignored. Group
// labels are interned in first-appearance order. A file with only a header
// loads as an empty dataset.
func Read(r io.Reader, cols Columns) (*sim.Dataset, error) {
	cols = cols.withDefaults()
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	groupIdx, err := columnIndex(header, cols.Group)
	if err != nil {
		return nil, err
	}
	elapsedIdx, err := columnIndex(header, cols.Elapsed)
	if err != nil {
		return nil, err
	}
	outcomeIdx, err := columnIndex(header, cols.Outcome)
	if err != nil {
		return nil, err
	}

	ds := &sim.Dataset{}
	groupIndex := make(map[string]int)
	rowIdx := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowIdx, err)
		}

		elapsed, err := strconv.ParseInt(record[elapsedIdx], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid %s %q: %w", rowIdx, cols.Elapsed, record[elapsedIdx], err)
		}
		if elapsed < 1 {
			return nil, fmt.Errorf("row %d: %s must be >= 1, got %d", rowIdx, cols.Elapsed, elapsed)
		}

		label := record[groupIdx]
		group, ok := groupIndex[label]
		if !ok {
			group = len(ds.Groups)
			groupIndex[label] = group
			ds.Groups = append(ds.Groups, label)
		}

		ds.Subjects = append(ds.Subjects, sim.Subject{
			Group:       group,
			ElapsedTime: elapsed,
			Event:       record[outcomeIdx] == cols.EventValue,
		})
		rowIdx++
	}
	return ds, nil
}

func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if h == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not found in header %v", name, header)
}

// Write emits ds in the canonical form: group, elapsed_time, outcome, with
// outcome categories event and censored. Read with DefaultColumns inverts it.
func Write(w io.Writer, ds *sim.Dataset) error {
	if err := ds.Validate(); err != nil {
		return err
	}
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"group", "elapsed_time", "outcome"}); err != nil {
		return err
	}
	for _, s := range ds.Subjects {
		outcome := CensoredOutcome
		if s.Event {
			outcome = EventOutcome
		}
		row := []string{ds.Groups[s.Group], strconv.FormatInt(s.ElapsedTime, 10), outcome}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// Save writes ds to path in the canonical form.
func Save(path string, ds *sim.Dataset) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating cohort CSV %s: %w", path, err)
	}
	if err := Write(file, ds); err != nil {
		file.Close() //nolint:errcheck // already failing
		return fmt.Errorf("writing cohort CSV %s: %w", path, err)
	}
	return file.Close()
}

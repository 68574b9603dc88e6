// Package report times a single search run and renders its outcome for the
// command-line programs, either as plain text or as a YAML document.
package report

import (
	"errors"
	"fmt"
	"io"
	"time"

	uuid "github.com/satori/go.uuid"
	"gopkg.in/yaml.v2"
)

// ErrUnknownFormat is returned by ParseFormat for anything but "text" or "yaml".
var ErrUnknownFormat = errors.New("report: unknown output format")

// Format selects how a Report is written.
type Format int

const (
	// Text prints "Shortest Path: ..." style lines.
	Text Format = iota
	// YAML prints the report as a single YAML document.
	YAML
)

// ParseFormat maps "text" and "yaml" to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "text", "":
		return Text, nil
	case "yaml":
		return YAML, nil
	default:
		return Text, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Report is the outcome of one search run.
// TotalWeight is nil for unweighted searches.
type Report struct {
	RunID       string        `yaml:"run_id"`
	Algorithm   string        `yaml:"algorithm"`
	Strategy    string        `yaml:"strategy,omitempty"`
	Found       bool          `yaml:"found"`
	Path        string        `yaml:"path"`
	Moves       int           `yaml:"moves"`
	TotalWeight *int64        `yaml:"total_weight,omitempty"`
	Elapsed     time.Duration `yaml:"-"`
	Seconds     float64       `yaml:"execution_time_seconds"`
}

// New returns an empty report for algorithm with a fresh run ID.
func New(algorithm string) *Report {
	return &Report{RunID: NewRunID(), Algorithm: algorithm}
}

// NewRunID returns a random UUID used to correlate log lines of one run.
func NewRunID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil.String()
	}
	return id.String()
}

// Time runs fn and records its wall-clock duration. fn's error is returned as is.
func (r *Report) Time(fn func() error) error {
	start := time.Now()
	err := fn()
	r.Elapsed = time.Since(start)
	r.Seconds = r.Elapsed.Seconds()
	return err
}

// SetPath records a found path given as move characters.
func (r *Report) SetPath(moves string) {
	r.Found = true
	r.Path = moves
	r.Moves = len(moves)
}

// SetWeight records the total weight of a weighted search.
func (r *Report) SetWeight(w int64) {
	r.TotalWeight = &w
}

// Write renders r to w in the given format.
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case YAML:
		out, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("yaml.Marshal(): %s", err)
		}
		_, err = w.Write(out)
		return err
	case Text:
		return r.writeText(w)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
}

func (r *Report) writeText(w io.Writer) error {
	var err error
	printf := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}
	switch {
	case !r.Found:
		printf("No path found.\n")
	case r.TotalWeight != nil:
		printf("Shortest Path: %s\n", r.Path)
		printf("Total Weight: %d\n", *r.TotalWeight)
	default:
		printf("Shortest Path: %s\n", r.Path)
	}
	printf("Execution Time: %g seconds\n", r.Seconds)

	return err
}

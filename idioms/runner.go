package idioms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"
)

// Format selects how a [Runner] writes results.
type Format string

const (
	// FormatText writes each output line as-is, one per line.
	FormatText Format = "text"
	// FormatJSON writes one JSON [Record] per snippet, newline-delimited.
	FormatJSON Format = "json"
)

// ParseFormat converts s into a Format. The empty string means [FormatText].
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Record is the JSON shape written per snippet in [FormatJSON].
type Record struct {
	RunID   string   `json:"run_id"`
	Snippet string   `json:"snippet"`
	Title   string   `json:"title"`
	Lines   []string `json:"lines"`
}

// Report summarises a completed (or aborted) run.
type Report struct {
	RunID uuid.UUID

	// Ran lists the snippets that completed, in order.
	Ran []string

	// Transcript is the plain-text output of every completed snippet,
	// newline terminated, regardless of the output format.
	Transcript string
}

// RunnerOptions configures a [Runner]. The zero value writes text and logs
// nothing.
type RunnerOptions struct {
	Format Format

	// Logger receives one line per snippet. Nil disables logging.
	Logger *log.Logger

	// NewID generates run ids. Nil means uuid.New.
	NewID func() uuid.UUID
}

// Runner executes snippets from a [Catalog] and writes their output.
type Runner struct {
	catalog *Catalog
	out     io.Writer
	format  Format
	logger  *log.Logger
	newID   func() uuid.UUID
}

// NewRunner returns a Runner writing to out.
func NewRunner(catalog *Catalog, out io.Writer, opts RunnerOptions) *Runner {
	r := &Runner{
		catalog: catalog,
		out:     out,
		format:  opts.Format,
		logger:  opts.Logger,
		newID:   opts.NewID,
	}
	if r.format == "" {
		r.format = FormatText
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard, "", 0)
	}
	if r.newID == nil {
		r.newID = uuid.New
	}
	return r
}

// Run executes the named snippets, or all of them when names is empty, in
// catalogue order. It stops at the first snippet error, after writing the
// lines that snippet produced, and returns the report so far together with
// the error. Cancelling ctx stops the run between snippets.
func (r *Runner) Run(ctx context.Context, names ...string) (Report, error) {
	report := Report{RunID: r.newID()}
	if r.format != FormatText && r.format != FormatJSON {
		return report, fmt.Errorf("%w: %q", ErrUnknownFormat, r.format)
	}
	selected, err := r.catalog.Select(names...)
	if err != nil {
		return report, err
	}

	var transcript strings.Builder
	enc := json.NewEncoder(r.out)
	for _, s := range selected {
		if err := ctx.Err(); err != nil {
			return r.finish(report, &transcript), err
		}

		p := &Printer{}
		runErr := s.Run(p)
		lines := p.Lines()
		for _, l := range lines {
			transcript.WriteString(l)
			transcript.WriteByte('\n')
		}

		if err := r.write(enc, report.RunID, s, lines); err != nil {
			return r.finish(report, &transcript), fmt.Errorf("idioms: write %q: %w", s.Name, err)
		}
		r.logger.Printf("run=%s snippet=%s lines=%d", report.RunID, s.Name, len(lines))

		if runErr != nil {
			return r.finish(report, &transcript), fmt.Errorf("idioms: snippet %q: %w", s.Name, runErr)
		}
		report.Ran = append(report.Ran, s.Name)
	}
	return r.finish(report, &transcript), nil
}

func (r *Runner) finish(report Report, transcript *strings.Builder) Report {
	report.Transcript = transcript.String()
	return report
}

func (r *Runner) write(enc *json.Encoder, runID uuid.UUID, s Snippet, lines []string) error {
	if r.format == FormatJSON {
		return enc.Encode(Record{RunID: runID.String(), Snippet: s.Name, Title: s.Title, Lines: lines})
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(r.out, l); err != nil {
			return err
		}
	}
	return nil
}

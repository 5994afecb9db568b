package idioms

import (
	"fmt"
	"strings"
)

// Snippet is one demonstration. Run writes its output through the Printer
// and returns an error only when the demo itself cannot complete.
type Snippet struct {
	Name  string
	Title string
	Run   func(p *Printer) error
}

// Printer collects the output lines of a single snippet.
type Printer struct {
	lines []string
}

// Println records the operands formatted as by fmt.Println, without the
// trailing newline.
func (p *Printer) Println(a ...any) {
	p.lines = append(p.lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
}

// Printf records one line formatted as by fmt.Sprintf.
func (p *Printer) Printf(format string, a ...any) {
	p.lines = append(p.lines, fmt.Sprintf(format, a...))
}

// Lines returns a copy of the recorded lines.
func (p *Printer) Lines() []string {
	out := make([]string, len(p.lines))
	copy(out, p.lines)
	return out
}

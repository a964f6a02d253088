// Package diag renders a Scheduler's registered phases, systems, and
// declared resource accesses as a colorized markdown table, grounded in
// wbrown-janus-datalog's table_formatter.go (tablewriter markdown
// rendering) and output.go (terminal color-detection).
package diag

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/kestrel-runtime/ecs"
)

// Formatter renders Scheduler diagnostics as a markdown table.
type Formatter struct {
	useColor bool
	writer   io.Writer
}

// NewFormatter builds a formatter writing to w, auto-detecting color
// support the way output.go does for *os.File writers.
func NewFormatter(w io.Writer) *Formatter {
	if w == nil {
		w = os.Stdout
	}
	useColor := false
	if f, ok := w.(*os.File); ok {
		useColor = !color.NoColor && isTerminal(f.Fd())
	}
	return &Formatter{useColor: useColor, writer: w}
}

// isTerminal checks if the file descriptor is a terminal. This is a
// simplified check (stdout/stderr only); a real implementation would use
// golang.org/x/term or similar.
func isTerminal(fd uintptr) bool {
	return fd == uintptr(1) || fd == uintptr(2)
}

// PrintScheduler diagnoses s and writes its phase/system/access table to
// the formatter's writer.
func (f *Formatter) PrintScheduler(s *ecs.Scheduler) error {
	phases, err := s.Diagnose()
	if err != nil {
		return fmt.Errorf("diag: %w", err)
	}

	table := tablewriter.NewTable(f.writer,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header([]string{"Phase", "System", "Reads", "Writes"})

	for _, phase := range phases {
		for _, sys := range phase.Systems {
			table.Append([]string{
				f.phaseLabel(phase.Phase),
				sys.Name,
				strings.Join(sys.Reads, ", "),
				f.colorizeWrites(sys.Writes),
			})
		}
	}

	return table.Render()
}

func (f *Formatter) phaseLabel(phase float64) string {
	switch phase {
	case ecs.PhaseStart:
		return "START"
	case ecs.PhaseTick:
		return "TICK"
	case ecs.PhaseEnd:
		return "END"
	case ecs.PhaseExit:
		return "EXIT"
	default:
		return strconv.FormatFloat(phase, 'g', -1, 64)
	}
}

func (f *Formatter) colorizeWrites(writes []string) string {
	joined := strings.Join(writes, ", ")
	if joined == "" || !f.useColor {
		return joined
	}
	return color.New(color.FgYellow).Sprint(joined)
}

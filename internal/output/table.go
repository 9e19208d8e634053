package output

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/rohankatakam/githours/internal/temporal"
	"golang.org/x/term"
)

// TableFormatter writes the report as an aligned text table for terminals
type TableFormatter struct {
	Color bool
}

// NewTableFormatter colors the header and total rows when stdout is a terminal
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		Color: term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == "",
	}
}

func (f *TableFormatter) Format(report *temporal.Report, w io.Writer) error {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "EMAIL\tNAME\tHOURS\tCOMMITS")
	for _, author := range report.Authors {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%d\n", author.Email, author.Name, author.Hours, author.Commits)
	}
	fmt.Fprintf(tw, "%s\t\t%.2f\t%d\n", temporal.TotalKey, report.Total.Hours, report.Total.Commits)

	if err := tw.Flush(); err != nil {
		return err
	}

	header := color.New(color.FgCyan, color.Bold)
	total := color.New(color.FgGreen, color.Bold)
	if f.Color {
		header.EnableColor()
		total.EnableColor()
	} else {
		header.DisableColor()
		total.DisableColor()
	}

	// colors are applied to whole lines after alignment; escape codes would
	// otherwise count toward column widths
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	last := len(lines) - 1
	for i, line := range lines {
		switch i {
		case 0:
			line = header.Sprint(line)
		case last:
			line = total.Sprint(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

package report

import (
	"fmt"
	"io"
	"log/slog"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/systemstart/wempak/pkg/processing"
)

const bannerWidth = 25

var bannerTemplate = template.Must(template.New("banner").Funcs(sprig.FuncMap()).Parse(
	"\n{{ repeat .Width \"-\" }}\n\n\t{{ upper .Title }}\n\n{{ repeat .Width \"-\" }}\n\n"))

// Reporter prints the banners that mark sections and the end of a run.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
}

// New creates a Reporter writing banners to out and fatal messages to errOut.
func New(out, errOut io.Writer) *Reporter {
	return &Reporter{out: out, errOut: errOut}
}

// Section prints a banner with title.
func (r *Reporter) Section(title string) {
	data := struct {
		Width int
		Title string
	}{bannerWidth, title}
	if err := bannerTemplate.Execute(r.out, data); err != nil {
		slog.Debug("could not write banner", "title", title, "error", err)
	}
}

// Success marks a completed run.
func (r *Reporter) Success() {
	r.Section("success")
}

// Failure prints err and marks an aborted run.
func (r *Reporter) Failure(err error) {
	fmt.Fprintf(r.errOut, "Error: %v\n", err)
	r.Section("failure")
}

// Summary prints one table row per stage.
func (r *Reporter) Summary(records []processing.Record) {
	if len(records) == 0 {
		return
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Stage", "Policy", "Outcome", "Duration", "Error"})

	for i, rec := range records {
		errText := ""
		if rec.Err != nil {
			errText = rec.Err.Error()
		}
		duration := ""
		if rec.Outcome != processing.OutcomeSkipped {
			duration = rec.Duration.Round(time.Millisecond).String()
		}
		tw.AppendRow(table.Row{i + 1, rec.Stage, rec.Policy.String(), string(rec.Outcome), duration, errText})
	}

	fmt.Fprintln(r.out, tw.Render())
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	lakefs "github.com/treeverse/lakefs-go"
)

const (
	outputText = "text"
	outputJSON = "json"
)

type printer struct {
	w      io.Writer
	format string
	color  bool
}

func newPrinter(w io.Writer, format string, color bool) *printer {
	return &printer{w: w, format: format, color: color}
}

func (p *printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) table() table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(p.w)
	tw.SetStyle(table.StyleLight)
	return tw
}

func (p *printer) colorize(s string, c text.Color) string {
	if !p.color || c == text.Reset {
		return s
	}
	return c.Sprint(s)
}

// changeStyle maps an operation type or diff type to a marker and color.
func changeStyle(kind string) (string, text.Color) {
	switch kind {
	case "create", "created", "added":
		return "+ " + kind, text.FgGreen
	case "delete", "dropped", "removed":
		return "- " + kind, text.FgRed
	case "update", "changed", "modified":
		return "~ " + kind, text.FgYellow
	case "conflict":
		return "* " + kind, text.FgHiYellow
	default:
		return kind, text.Reset
	}
}

func (p *printer) health() error {
	if p.format == outputJSON {
		return p.json(map[string]bool{"healthy": true})
	}
	_, err := fmt.Fprintln(p.w, "lakeFS is healthy")
	return err
}

func (p *printer) refTable(kind string, l *lakefs.RefList) {
	tw := p.table()
	tw.AppendHeader(table.Row{kind, "Commit ID"})
	for _, ref := range l.GetResults() {
		tw.AppendRow(table.Row{ref.ID, ref.CommitID})
	}
	tw.Render()
	if l.Pagination.HasMore {
		fmt.Fprintf(p.w, "More results available: --after %s\n", l.Pagination.NextOffset)
	}
}

func (p *printer) refList(kind string, l *lakefs.RefList) error {
	if p.format == outputJSON {
		return p.json(l)
	}
	p.refTable(kind, l)
	return nil
}

func (p *printer) refs(branches, tags *lakefs.RefList) error {
	if p.format == outputJSON {
		return p.json(map[string]*lakefs.RefList{"branches": branches, "tags": tags})
	}
	p.refTable("Branch", branches)
	fmt.Fprintln(p.w)
	p.refTable("Tag", tags)
	return nil
}

func (p *printer) otfDiffs(d *lakefs.OTFDiffs) error {
	if p.format == outputJSON {
		return p.json(d)
	}
	if !d.HasDiffs() {
		_, err := fmt.Fprintln(p.w, "No diff types reported")
		return err
	}
	tw := p.table()
	tw.AppendHeader(table.Row{"Type", "Description"})
	for _, diff := range d.GetDiffs() {
		tw.AppendRow(table.Row{diff.Name, diff.Description})
	}
	tw.Render()
	return nil
}

func (p *printer) otfDiff(l *lakefs.OtfDiffList) error {
	if p.format == outputJSON {
		return p.json(l)
	}
	if dt, ok := l.GetDiffTypeOk(); ok {
		marker, color := changeStyle(string(dt))
		fmt.Fprintf(p.w, "Table %s\n", p.colorize(marker, color))
	}
	tw := p.table()
	tw.AppendHeader(table.Row{"Change", "Version", "Timestamp", "Operation", "Content"})
	for _, entry := range l.GetResults() {
		marker, color := changeStyle(entry.OperationType)
		content := []byte("{}")
		if len(entry.OperationContent) > 0 {
			var err error
			if content, err = json.Marshal(entry.OperationContent); err != nil {
				return err
			}
		}
		tw.AppendRow(table.Row{
			p.colorize(marker, color),
			entry.ID,
			strconv.FormatInt(entry.Timestamp, 10),
			entry.Operation,
			string(content),
		})
	}
	tw.Render()
	_, err := fmt.Fprintf(p.w, "%d operation(s)\n", len(l.Results))
	return err
}

package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/oapi-codegen/nullable"
)

const textIndent = "    "

const (
	textAbsent = "<absent>"
	textNull   = "null"
)

// textWriter renders a value as
//
//	Name {
//	    field: value
//	}
//
// Nested multi-line values are re-indented so the output stays aligned at
// any depth.
type textWriter struct {
	sb strings.Builder
}

func newTextWriter(typeName string) *textWriter {
	w := &textWriter{}
	w.sb.WriteString(typeName)
	w.sb.WriteString(" {\n")
	return w
}

func (w *textWriter) field(name, value string) *textWriter {
	w.sb.WriteString(textIndent)
	w.sb.WriteString(name)
	w.sb.WriteString(": ")
	w.sb.WriteString(indentText(value))
	w.sb.WriteByte('\n')
	return w
}

func (w *textWriter) String() string {
	return w.sb.String() + "}"
}

// indentText indents every line but the first.
func indentText(s string) string {
	return strings.ReplaceAll(s, "\n", "\n"+textIndent)
}

func quoteText(s string) string {
	return strconv.Quote(s)
}

func listText[T fmt.Stringer](items []T) string {
	if len(items) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteString("[\n")
	for _, item := range items {
		sb.WriteString(textIndent)
		sb.WriteString(indentText(item.String()))
		sb.WriteString(",\n")
	}
	sb.WriteString("]")
	return sb.String()
}

func nullableListText[T fmt.Stringer](n nullable.Nullable[[]T]) string {
	switch {
	case !n.IsSpecified():
		return textAbsent
	case n.IsNull():
		return textNull
	default:
		return listText(n.MustGet())
	}
}

// jsonText renders free-form JSON content compactly. Map keys are sorted by
// encoding/json, which keeps the output deterministic.
func jsonText(v any) string {
	if v == nil {
		return textNull
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

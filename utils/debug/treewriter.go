// Package debug produces indented human readable dumps put into debug
// reports.
package debug

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type TreeWriter struct {
	w     *strings.Builder
	lines int
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw *TreeWriter) String() string {
	return tw.w.String()
}

// Lines returns number of lines written so far.
func (tw *TreeWriter) Lines() int {
	return tw.lines
}

func (tw *TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
	tw.lines++
}

// Text writes label with quoted value, empty value is left empty.
func (tw *TreeWriter) Text(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
	tw.lines++
}

// JSON writes label with compact JSON of v, marshaling errors are written
// in place of the value.
func (tw *TreeWriter) JSON(depth int, label string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		tw.Line(depth, "%s: <%v>", label, err)
		return
	}
	tw.Line(depth, "%s: %s", label, data)
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}

// SPDX-License-Identifier: MIT

package runner

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Text lines for each outcome.
const (
	lineNotEulerian = "The graph does not have an Eulerian circuit."
	lineNoEdges     = "The graph has no edges."
)

// errWriter keeps the first write error so rendering code can stay linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// WriteText renders res in the plain listing format:
//
//	Generated random graph with seed 7:
//	0: 1 2
//	1: 0 2
//	2: 1 0
//
//	Eulerian circuit: 0 1 2 0
func WriteText(w io.Writer, res *Result) error {
	ew := &errWriter{w: w}
	switch {
	case res.Source != "":
		ew.printf("Graph from %s:\n", res.Source)
	case res.Seed != nil:
		ew.printf("Generated random graph with seed %d:\n", *res.Seed)
	default:
		ew.printf("Graph:\n")
	}
	if ew.err == nil && res.Graph != nil {
		ew.err = res.Graph.Display(w)
	}
	ew.printf("\n")

	switch res.Outcome {
	case OutcomeCircuit:
		ew.printf("Eulerian circuit: %s\n", joinInts(res.Circuit))
	case OutcomeNoEdges:
		ew.printf("%s\n", lineNoEdges)
	default:
		ew.printf("%s\n", lineNotEulerian)
	}

	return ew.err
}

// WriteBatchText renders a BatchSummary as aligned key/value lines.
func WriteBatchText(w io.Writer, s *BatchSummary) error {
	ew := &errWriter{w: w}
	ew.printf("Batch of %d trials from seed %d (vertices=%d edges=%d repair=%s connect=%t):\n",
		s.Trials, s.BaseSeed, s.Vertices, s.Params.RequestedEdges, s.Params.Repair, s.Params.Connect)
	ew.printf("  %-18s %d\n", "circuit:", s.Outcomes[OutcomeCircuit])
	ew.printf("  %-18s %d\n", "not eulerian:", s.Outcomes[OutcomeNotEulerian])
	ew.printf("  %-18s %d\n", "no edges:", s.Outcomes[OutcomeNoEdges])
	ew.printf("  %-18s %d\n", "odd after repair:", s.OddAfterRepair)
	ew.printf("  %-18s %d\n", "disconnected:", s.Disconnected)

	return ew.err
}

// WriteJSON encodes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func joinInts(xs []int) string {
	var sb strings.Builder
	for i, x := range xs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(x))
	}

	return sb.String()
}

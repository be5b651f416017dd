// Package graph: DIMACS graph-coloring (.col) reader.
//
// Accepted grammar (DIMACS standard challenge format):
//
//	c <comment>            ignored
//	p edge <V> <E>         exactly one, before any edge line
//	e <u> <v>              1-based endpoints, translated to 0-based
//
// Contract:
//   - Lines are validated before ingestion; errors wrap ErrDIMACSHeader /
//     ErrDIMACSEdge with the offending line number.
//   - The declared edge count E is informational only: real-world .col
//     files disagree with it often enough that enforcing it would reject
//     valid instances. Duplicate edge lines collapse (simple graph).
//   - Self-loops are rejected (ErrSelfLoop via AddEdge).
package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseDIMACS reads a DIMACS .col description into a Graph.
//
// Complexity: O(V² + E) (matrix allocation + one pass over edge lines).
func ParseDIMACS(r io.Reader) (*Graph, error) {
	var (
		g       *Graph
		scanner = bufio.NewScanner(r)
		lineNo  int
		line    string
		fields  []string
		err     error
	)

	for scanner.Scan() {
		lineNo++
		line = strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields = strings.Fields(line)
		switch fields[0] {
		case "c":
			continue // comment

		case "p":
			if g != nil {
				return nil, fmt.Errorf("line %d: duplicate problem line: %w", lineNo, ErrDIMACSHeader)
			}
			if len(fields) != 4 || fields[1] != "edge" {
				return nil, fmt.Errorf("line %d: %q: %w", lineNo, line, ErrDIMACSHeader)
			}
			var n int
			n, err = strconv.Atoi(fields[2])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("line %d: vertex count %q: %w", lineNo, fields[2], ErrDIMACSHeader)
			}
			// fields[3] is the declared edge count; parsed for shape only.
			if _, err = strconv.Atoi(fields[3]); err != nil {
				return nil, fmt.Errorf("line %d: edge count %q: %w", lineNo, fields[3], ErrDIMACSHeader)
			}
			if g, err = New(n); err != nil {
				return nil, err
			}

		case "e":
			if g == nil {
				return nil, fmt.Errorf("line %d: edge before problem line: %w", lineNo, ErrDIMACSHeader)
			}
			if len(fields) != 3 {
				return nil, fmt.Errorf("line %d: %q: %w", lineNo, line, ErrDIMACSEdge)
			}
			var u, v int
			if u, err = strconv.Atoi(fields[1]); err != nil {
				return nil, fmt.Errorf("line %d: endpoint %q: %w", lineNo, fields[1], ErrDIMACSEdge)
			}
			if v, err = strconv.Atoi(fields[2]); err != nil {
				return nil, fmt.Errorf("line %d: endpoint %q: %w", lineNo, fields[2], ErrDIMACSEdge)
			}
			if u < 1 || u > g.NumVertices() || v < 1 || v > g.NumVertices() {
				return nil, fmt.Errorf("line %d: endpoints (%d,%d): %w", lineNo, u, v, ErrDIMACSEdge)
			}
			// DIMACS is 1-based; Graph is 0-based.
			if err = g.AddEdge(u-1, v-1); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}

		default:
			return nil, fmt.Errorf("line %d: unknown descriptor %q: %w", lineNo, fields[0], ErrDIMACSEdge)
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("no problem line: %w", ErrDIMACSHeader)
	}

	return g, nil
}

// ReadDIMACSFile opens path and parses it as a DIMACS .col file.
func ReadDIMACSFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseDIMACS(f)
}

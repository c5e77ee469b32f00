// Package tg: line parser for the textual graph format.

package tg

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/mkadlec/grafy/core"
)

// ErrSyntax indicates a malformed line. The wrapping error carries the
// line number and the offending text.
var ErrSyntax = errors.New("tg: invalid syntax")

var (
	nodeLine = regexp.MustCompile(`^u\s+(\S+?)\s*(?:\s+([+-]?\d*\.?\d+))?\s*;?\s*$`)
	edgeLine = regexp.MustCompile(`^h\s+(\S+)\s+(<|>|-)\s+(\S+)\s*(?:\s+([+-]?\d*\.?\d+))?\s*(?::(\S+?))?\s*;?\s*$`)
)

// Result holds the parsed records in declaration order. Node duplicates
// collapse by identifier, the last declaration winning; edges keep every
// occurrence.
type Result struct {
	Nodes []core.NodeRecord
	Edges []core.EdgeRecord
}

// Parse reads graph definitions line by line.
// Returns ErrSyntax (wrapped with the line number) on the first
// malformed line; no partial result accompanies the error.
func Parse(r io.Reader) (Result, error) {
	var res Result
	seen := make(map[string]int) // identifier -> position in res.Nodes

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "u "):
			nr, err := parseNode(line, lineNum)
			if err != nil {
				return Result{}, err
			}
			if pos, dup := seen[nr.ID]; dup {
				res.Nodes[pos] = nr
				continue
			}
			seen[nr.ID] = len(res.Nodes)
			res.Nodes = append(res.Nodes, nr)
		case strings.HasPrefix(line, "h "):
			er, err := parseEdge(line, lineNum)
			if err != nil {
				return Result{}, err
			}
			res.Edges = append(res.Edges, er)
		default:
			return Result{}, fmt.Errorf("line %d: must start with %q or %q: %w", lineNum, "u ", "h ", ErrSyntax)
		}
	}
	if err := scanner.Err(); err != nil {
		return Result{}, fmt.Errorf("tg: read: %w", err)
	}

	return res, nil
}

// ParseFile opens path and parses it.
func ParseFile(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("tg: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

func parseNode(line string, lineNum int) (core.NodeRecord, error) {
	m := nodeLine.FindStringSubmatch(line)
	if m == nil {
		return core.NodeRecord{}, fmt.Errorf("line %d: bad node definition %q: %w", lineNum, line, ErrSyntax)
	}

	nr := core.NodeRecord{ID: m[1]}
	if m[2] != "" {
		w, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return core.NodeRecord{}, fmt.Errorf("line %d: bad node weight %q: %w", lineNum, m[2], ErrSyntax)
		}
		nr.Weight, nr.HasWeight = w, true
	}

	return nr, nil
}

func parseEdge(line string, lineNum int) (core.EdgeRecord, error) {
	m := edgeLine.FindStringSubmatch(line)
	if m == nil {
		return core.EdgeRecord{}, fmt.Errorf("line %d: bad edge definition %q: %w", lineNum, line, ErrSyntax)
	}

	er := core.EdgeRecord{Source: m[1], Target: m[3], Label: m[5]}
	switch m[2] {
	case ">":
		er.Kind = core.Directed
	case "<":
		er.Kind = core.Directed
		er.Source, er.Target = er.Target, er.Source
	case "-":
		er.Kind = core.Undirected
	}
	if m[4] != "" {
		w, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return core.EdgeRecord{}, fmt.Errorf("line %d: bad edge weight %q: %w", lineNum, m[4], ErrSyntax)
		}
		er.Weight, er.HasWeight = w, true
	}

	return er, nil
}

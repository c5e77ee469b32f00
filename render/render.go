package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkadlec/grafy/core"
	"github.com/mkadlec/grafy/matrix"
	"github.com/mkadlec/grafy/neighborhood"
	"github.com/mkadlec/grafy/properties"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight)

	labelStyle = lipgloss.NewStyle().
			Bold(true)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(0, 1)

	yesStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"})
	noStyle  = lipgloss.NewStyle().Foreground(subtle)
)

// cell renders one numeric entry; +Inf prints as "∞".
func cell(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	if math.IsInf(v, -1) {
		return "-∞"
	}

	return core.FormatWeight(v)
}

// grid lays out a label-framed table with right-aligned columns.
func grid(rows, cols []string, at func(i, j int) string) string {
	widths := make([]int, len(cols)+1)
	for _, r := range rows {
		if w := lipgloss.Width(r); w > widths[0] {
			widths[0] = w
		}
	}
	body := make([][]string, len(rows))
	for i := range rows {
		body[i] = make([]string, len(cols))
		for j := range cols {
			body[i][j] = at(i, j)
		}
	}
	for j, c := range cols {
		widths[j+1] = lipgloss.Width(c)
		for i := range rows {
			if w := lipgloss.Width(body[i][j]); w > widths[j+1] {
				widths[j+1] = w
			}
		}
	}

	pad := func(s string, w int) string {
		return strings.Repeat(" ", w-lipgloss.Width(s)) + s
	}

	var b strings.Builder
	b.WriteString(pad("", widths[0]))
	for j, c := range cols {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(pad(c, widths[j+1])))
	}
	for i, r := range rows {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(pad(r, widths[0])))
		for j := range cols {
			b.WriteString("  ")
			b.WriteString(pad(body[i][j], widths[j+1]))
		}
	}

	return b.String()
}

// Matrix renders a titled, framed numeric matrix with row and column
// labels.
func Matrix(title string, data [][]float64, rows, cols []string) string {
	table := grid(rows, cols, func(i, j int) string { return cell(data[i][j]) })

	return titleStyle.Render(title) + "\n" + frameStyle.Render(table)
}

// PredecessorMatrix renders the predecessor matrix with node
// identifiers, "·" where no predecessor exists.
func PredecessorMatrix(pred [][]int, labels []string) string {
	table := grid(labels, labels, func(i, j int) string {
		if pred[i][j] == matrix.NoPredecessor {
			return "·"
		}

		return labels[pred[i][j]]
	})

	return titleStyle.Render("Predecessor matrix") + "\n" + frameStyle.Render(table)
}

// Properties renders the detected property list, one line per property,
// letters first.
func Properties(results []properties.Result) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Properties"))
	for _, r := range results {
		verdict := noStyle.Render("no")
		if r.Value {
			verdict = yesStyle.Render("yes")
		}
		fmt.Fprintf(&b, "\n%s) %-18s %s", r.Property.Letter(), r.Property.String(), verdict)
	}

	return b.String()
}

// Degrees renders the per-node degree table.
func Degrees(degrees []neighborhood.Degrees) string {
	rows := make([]string, len(degrees))
	for i, d := range degrees {
		rows[i] = d.ID
	}
	cols := []string{"out", "in", "total"}
	table := grid(rows, cols, func(i, j int) string {
		d := degrees[i]
		switch j {
		case 0:
			return fmt.Sprint(d.Out)
		case 1:
			return fmt.Sprint(d.In)
		default:
			return fmt.Sprint(d.Total)
		}
	})

	return titleStyle.Render("Degrees") + "\n" + frameStyle.Render(table)
}

// AdjacencyList renders one line per node with its neighbor descriptors.
func AdjacencyList(entries []matrix.ListEntry) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Adjacency list"))
	for _, e := range entries {
		fmt.Fprintf(&b, "\n%s: %s", labelStyle.Render(e.ID), strings.Join(e.Neighbors, ", "))
	}

	return b.String()
}

// Path renders a reconstructed shortest path.
func Path(path []string) string {
	if len(path) == 0 {
		return noStyle.Render("no path")
	}

	return strings.Join(path, " -> ")
}

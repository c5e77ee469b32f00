package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkadlec/grafy/core"
	"github.com/mkadlec/grafy/matrix"
	"github.com/mkadlec/grafy/neighborhood"
	"github.com/mkadlec/grafy/properties"
	"github.com/mkadlec/grafy/render"
)

// view identifies one explorer screen.
type view int

const (
	viewProperties view = iota
	viewDegrees
	viewAdjacency
	viewSign
	viewIncidence
	viewDistance
	viewPredecessor
	viewAdjacencyList
	viewCount
)

func (v view) title() string {
	switch v {
	case viewProperties:
		return "properties"
	case viewDegrees:
		return "degrees"
	case viewAdjacency:
		return "adjacency"
	case viewSign:
		return "sign"
	case viewIncidence:
		return "incidence"
	case viewDistance:
		return "distance"
	case viewPredecessor:
		return "predecessor"
	case viewAdjacencyList:
		return "adjacency list"
	default:
		return ""
	}
}

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.AdaptiveColor{Light: "#888888", Dark: "#666666"})
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"})
	helpStyle      = lipgloss.NewStyle().Faint(true)
)

// exploreModel cycles through the analysis screens of one graph. All
// screens are rendered once up front; the model itself is immutable
// apart from the active index.
type exploreModel struct {
	screens []string
	titles  []string
	active  int
}

func newExploreModel(g *core.Graph, cfg Config) exploreModel {
	gen := matrix.NewGenerator(g)
	det := properties.NewDetector(g, cfg.detectorOptions()...)
	calc := neighborhood.NewCalculator(g)

	m := exploreModel{
		screens: make([]string, viewCount),
		titles:  make([]string, viewCount),
	}
	for v := view(0); v < viewCount; v++ {
		m.titles[v] = v.title()
	}

	m.screens[viewProperties] = render.Properties(det.DetectAll())
	m.screens[viewDegrees] = render.Degrees(calc.AllDegrees())
	m.screens[viewPredecessor] = render.PredecessorMatrix(gen.Predecessors(), gen.NodeLabels())
	m.screens[viewAdjacencyList] = render.AdjacencyList(gen.AdjacencyList())

	for v, kind := range map[view]matrix.Kind{
		viewAdjacency: matrix.Adjacency,
		viewSign:      matrix.Sign,
		viewIncidence: matrix.Incidence,
		viewDistance:  matrix.Distance,
	} {
		data, rows, cols, err := gen.Table(kind, 0)
		if err != nil {
			m.screens[v] = err.Error()
			continue
		}
		m.screens[v] = render.Matrix(kind.String()+" matrix", data, rows, cols)
	}

	return m
}

func (m exploreModel) Init() tea.Cmd { return nil }

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "right", "l", "tab":
		m.active = (m.active + 1) % int(viewCount)
	case "left", "h", "shift+tab":
		m.active = (m.active + int(viewCount) - 1) % int(viewCount)
	default:
		// Number keys jump straight to a screen.
		if s := key.String(); len(s) == 1 {
			if n := int(s[0] - '1'); n >= 0 && n < int(viewCount) {
				m.active = n
			}
		}
	}

	return m, nil
}

func (m exploreModel) View() string {
	tabs := make([]string, len(m.titles))
	for i, t := range m.titles {
		label := fmt.Sprintf("%d:%s", i+1, t)
		if i == m.active {
			tabs[i] = activeTabStyle.Render(label)
			continue
		}
		tabs[i] = tabStyle.Render(label)
	}

	var b strings.Builder
	b.WriteString(strings.Join(tabs, ""))
	b.WriteString("\n\n")
	b.WriteString(m.screens[m.active])
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("←/→ switch · 1-8 jump · q quit"))

	return b.String()
}

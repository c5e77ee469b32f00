package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mkadlec/grafy/core"
	"github.com/mkadlec/grafy/export"
	"github.com/mkadlec/grafy/matrix"
	"github.com/mkadlec/grafy/neighborhood"
	"github.com/mkadlec/grafy/properties"
	"github.com/mkadlec/grafy/render"
	"github.com/mkadlec/grafy/tg"
)

var (
	graphPath  string
	configPath string
	verbose    bool
	validate   bool

	config Config

	rootCmd = &cobra.Command{
		Use:   "grafy",
		Short: "Graph invariants and matrix representations",
		Long: `grafy loads a graph from a .tg file and computes structural
properties, degree tables, matrix representations, and shortest paths.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

			explicit := cmd.Flags().Changed("config")
			cfg, err := loadConfig(configPath, explicit)
			if err != nil {
				return err
			}
			config = cfg

			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&graphPath, "graph", "g", "", "path to the .tg graph file")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "grafy.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&validate, "validate", false, "reject edges referencing undeclared nodes")

	rootCmd.AddCommand(propertiesCmd)
	rootCmd.AddCommand(degreesCmd)
	rootCmd.AddCommand(neighborhoodCmd)
	rootCmd.AddCommand(newMatrixCmd())
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(exploreCmd)
}

// loadGraph parses the --graph file and builds the model.
func loadGraph() (*core.Graph, error) {
	if graphPath == "" {
		return nil, fmt.Errorf("no graph file given, use --graph")
	}

	res, err := tg.ParseFile(graphPath)
	if err != nil {
		return nil, err
	}

	var opts []core.BuildOption
	if validate || config.ValidateEndpoints {
		opts = append(opts, core.WithEndpointValidation())
	}
	g, err := core.Build(res.Nodes, res.Edges, opts...)
	if err != nil {
		return nil, err
	}
	slog.Debug("graph loaded", "path", graphPath, "nodes", g.NodeCount(), "edges", g.EdgeCount())

	return g, nil
}

var propertiesCmd = &cobra.Command{
	Use:   "properties",
	Short: "Detect the structural properties of the graph",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}

		d := properties.NewDetector(g, config.detectorOptions()...)
		fmt.Println(render.Properties(d.DetectAll()))

		return nil
	},
}

var degreesCmd = &cobra.Command{
	Use:   "degrees",
	Short: "Print the per-node degree table",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}

		fmt.Println(render.Degrees(neighborhood.NewCalculator(g).AllDegrees()))

		return nil
	},
}

var neighborhoodCmd = &cobra.Command{
	Use:   "neighborhood <node>",
	Short: "Print the neighborhood of one node",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}
		id := args[0]
		if !g.HasNode(id) {
			return fmt.Errorf("node %q: %w", id, core.ErrUndefinedNode)
		}

		s := neighborhood.NewCalculator(g).Summarize(id)
		fmt.Printf("node %s\n", id)
		fmt.Printf("  successors:   %s\n", nodeList(s.Successors))
		fmt.Printf("  predecessors: %s\n", nodeList(s.Predecessors))
		fmt.Printf("  neighbors:    %s\n", nodeList(s.Neighbors))
		fmt.Printf("  degree: out %d, in %d, total %d\n", s.Degrees.Out, s.Degrees.In, s.Degrees.Total)

		return nil
	},
}

func nodeList(nodes []core.Node) string {
	if len(nodes) == 0 {
		return "-"
	}
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.ID)
	}

	return strings.Join(ids, ", ")
}

func newMatrixCmd() *cobra.Command {
	var (
		power int
		row   string
		col   string
	)

	cmd := &cobra.Command{
		Use:   "matrix <kind>",
		Short: "Print a matrix representation",
		Long: `Prints one of: adjacency, sign, incidence, distance, predecessor,
adjacency_power. With --row and/or --col only the addressed slice prints.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := matrix.ParseKind(args[0])
			if err != nil {
				return err
			}
			g, err := loadGraph()
			if err != nil {
				return err
			}
			gen := matrix.NewGenerator(g)

			switch {
			case row != "" && col != "":
				v, err := gen.Element(kind, power, row, col)
				if err != nil {
					return err
				}
				fmt.Printf("[%s][%s] = %s\n", row, col, core.FormatWeight(v))
			case row != "":
				values, err := gen.Row(kind, power, row)
				if err != nil {
					return err
				}
				fmt.Println(formatSlice(values))
			case col != "":
				values, err := gen.Column(kind, power, col)
				if err != nil {
					return err
				}
				fmt.Println(formatSlice(values))
			case kind == matrix.Predecessor:
				fmt.Println(render.PredecessorMatrix(gen.Predecessors(), gen.NodeLabels()))
			default:
				data, rows, cols, err := gen.Table(kind, power)
				if err != nil {
					return err
				}
				title := kind.String() + " matrix"
				if kind == matrix.AdjacencyPower {
					title = fmt.Sprintf("adjacency matrix ^%d", power)
				}
				fmt.Println(render.Matrix(title, data, rows, cols))
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&power, "power", 1, "power for adjacency_power")
	cmd.Flags().StringVar(&row, "row", "", "print only this row (node identifier)")
	cmd.Flags().StringVar(&col, "col", "", "print only this column (node or edge label)")

	return cmd
}

func formatSlice(values []float64) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, core.FormatWeight(v))
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

var pathCmd = &cobra.Command{
	Use:   "path <from> <to>",
	Short: "Reconstruct the shortest path between two nodes",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}

		path, err := matrix.NewGenerator(g).ShortestPath(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println(render.Path(path))

		return nil
	},
}

func newExportCmd() *cobra.Command {
	var (
		dir     string
		prefix  string
		format  string
		kindTag string
		power   int
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the analysis to CSV files or one YAML report",
		Long: `Without --kind, exports every matrix plus the property and degree
tables (CSV) or one aggregated report (YAML). With --kind, exports that
single matrix; adjacency_power takes its exponent from --power.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph()
			if err != nil {
				return err
			}

			if kindTag != "" {
				if format != "csv" {
					return fmt.Errorf("--kind requires --format csv")
				}
				kind, err := matrix.ParseKind(kindTag)
				if err != nil {
					return err
				}
				name := fmt.Sprintf("%s_%s_matrix.csv", prefix, kind)
				if kind == matrix.AdjacencyPower {
					name = fmt.Sprintf("%s_adjacency_power_%d.csv", prefix, power)
				}
				path := filepath.Join(dir, name)
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("create %s: %w", path, err)
				}
				defer f.Close()
				if err := export.WriteKindCSV(f, matrix.NewGenerator(g), kind, power); err != nil {
					return err
				}
				fmt.Println(path)

				return nil
			}

			switch format {
			case "csv":
				paths, err := export.WriteAll(g, dir, prefix)
				if err != nil {
					return err
				}
				for _, p := range paths {
					fmt.Println(p)
				}
			case "yaml":
				rep := export.NewReport(g, config.detectorOptions()...)
				path := filepath.Join(dir, prefix+"_report.yaml")
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("create %s: %w", path, err)
				}
				defer f.Close()
				if err := export.WriteYAML(f, rep); err != nil {
					return err
				}
				fmt.Println(path)
			default:
				return fmt.Errorf("unknown format %q, want csv or yaml", format)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "output directory")
	cmd.Flags().StringVar(&prefix, "prefix", "graph", "output file prefix")
	cmd.Flags().StringVar(&format, "format", "csv", "output format: csv or yaml")
	cmd.Flags().StringVar(&kindTag, "kind", "", "export only this matrix kind")
	cmd.Flags().IntVar(&power, "power", 1, "power for --kind adjacency_power")

	return cmd
}

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Browse matrices and properties interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}

		_, err = tea.NewProgram(newExploreModel(g, config)).Run()

		return err
	},
}

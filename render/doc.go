// Package render turns analysis results into styled terminal output:
// matrix tables (corner-framed, "∞" for +Inf), the property list, the
// degree table, and the adjacency list. Shared by the CLI commands and
// the interactive explorer.
package render

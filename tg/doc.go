// Package tg parses the textual graph format.
//
// One definition per line, empty lines skipped:
//
//	u <identifier> [weight];
//	h <a> (<|>|-) <b> [weight] [:label];
//
// "u" lines declare nodes, "h" lines declare edges. ">" makes a directed
// edge a→b, "<" a directed edge b→a (the endpoints swap), "-" an
// undirected edge. Weights are decimal numbers with an optional sign; the
// label follows a colon. The trailing semicolon is optional.
//
// Parse returns core records, not a graph: node duplicates collapse
// last-wins by identifier, and edge endpoints are not checked against the
// node set (they may be declared later, or validated afterwards via
// core.ValidateRecords or core.WithEndpointValidation).
package tg

package plan

import "strings"

// Format renders a plan tree with one node per line, indented two spaces
// per depth. The output is deterministic and is what EXPLAIN snapshots
// and tests assert against.
func Format(p LogicalPlan) string {
	var sb strings.Builder
	formatNode(&sb, p, 0)
	return sb.String()
}

func formatNode(sb *strings.Builder, p LogicalPlan, depth int) {
	if depth > 0 {
		sb.WriteByte('\n')
	}
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(p.String())
	for _, child := range p.Children() {
		formatNode(sb, child, depth+1)
	}
}

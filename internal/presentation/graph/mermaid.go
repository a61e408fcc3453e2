package graph

import (
	"fmt"
	"strings"

	"github.com/hepkit/decfile/pkg/decay"
)

// GenerateMermaid produces a Mermaid flowchart syntax string from a resolved
// decay chain. It applies semantic styling:
// - Root: ((Circle))
// - Decaying particle: [Rectangle]
// - Leaf (stable / no block): ([Stadium])
// Every occurrence of a particle gets its own graph node: the same name can
// legitimately appear many times in one chain.
func GenerateMermaid(root *decay.Node) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	g := &generator{sb: &sb, ids: make(map[string]int)}
	rootID := g.nodeID(root.Particle)
	sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", rootID, escapeMermaid(root.Particle)))
	g.walk(rootID, root)

	return sb.String()
}

type generator struct {
	sb  *strings.Builder
	ids map[string]int
}

// nodeID allocates a unique Mermaid identifier for one occurrence of a
// particle name.
func (g *generator) nodeID(name string) string {
	n := g.ids[name]
	g.ids[name] = n + 1
	safe := sanitizeMermaidID(name)
	if n == 0 {
		return safe
	}
	return fmt.Sprintf("%s_%d", safe, n)
}

func (g *generator) walk(fromID string, node *decay.Node) {
	for _, ch := range node.Channels {
		label := fmt.Sprintf("%g", ch.BranchingFraction)
		if ch.Model != "" {
			label += " " + ch.Model
		}
		for _, d := range ch.Daughters {
			toID := g.nodeID(d.Name)
			if d.Node != nil {
				g.sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", toID, escapeMermaid(d.Name)))
			} else {
				g.sb.WriteString(fmt.Sprintf("    %s([\"%s\"])\n", toID, escapeMermaid(d.Name)))
			}
			g.sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", fromID, escapeMermaid(label), toID))
			if d.Node != nil {
				g.walk(toID, d.Node)
			}
		}
	}
}

// sanitizeMermaidID strips the particle-name characters Mermaid cannot carry
// in identifiers (+ - * ' ~ / ( )).
func sanitizeMermaidID(id string) string {
	r := strings.NewReplacer(
		"+", "p",
		"-", "m",
		"*", "st",
		"'", "pr",
		"~", "t",
		"/", "_",
		"(", "_",
		")", "_",
		".", "_",
	)
	return "n_" + r.Replace(id)
}

func escapeMermaid(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

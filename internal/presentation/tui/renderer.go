// Package tui renders registry contents for human eyes on a terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/hepkit/decfile/pkg/decay"
)

// NewRenderer returns a function that renders markdown using glamour.
// On dumb terminals it falls back to returning the markdown as-is.
func NewRenderer() func(string) (string, error) {
	if termenv.ColorProfile() == termenv.Ascii {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // detect light/dark background
	)
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// ModesMarkdown formats a particle's decay modes as a markdown table.
func ModesMarkdown(block decay.Block) string {
	var sb strings.Builder
	title := block.Particle
	if block.Generated {
		title += " (generated from CDecay)"
	}
	fmt.Fprintf(&sb, "# Decay modes of %s\n\n", title)
	sb.WriteString("| Fraction | Final state | Model | Parameters |\n")
	sb.WriteString("| ---: | :--- | :--- | :--- |\n")
	for _, ch := range block.Channels {
		params := make([]string, 0, len(ch.ModelParams))
		for _, p := range ch.ModelParams {
			params = append(params, fmt.Sprintf("%g", p))
		}
		model := ch.Model
		if ch.Photos {
			model = "PHOTOS " + model
		}
		fmt.Fprintf(&sb, "| %g | %s | %s | %s |\n",
			ch.BranchingFraction,
			strings.Join(ch.Daughters, " "),
			model,
			strings.Join(params, " "))
	}
	return sb.String()
}

// FindingsMarkdown formats validation findings as a markdown list.
func FindingsMarkdown(findings []decay.Finding) string {
	if len(findings) == 0 {
		return "No findings.\n"
	}
	var sb strings.Builder
	sb.WriteString("# Findings\n\n")
	for _, f := range findings {
		fmt.Fprintf(&sb, "- **%s** `%s`", f.Severity, f.Code)
		if f.Particle != "" {
			fmt.Fprintf(&sb, " (%s)", f.Particle)
		}
		fmt.Fprintf(&sb, ": %s\n", f.Message)
	}
	return sb.String()
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmartin/fitscore/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintClaims outputs a human-readable summary of an extracted claim set.
func (p *Printer) PrintClaims(claims []types.Claim) {
	if len(claims) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total claims: %d\n\n", len(claims)))

	count := min(len(claims), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := claims[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, c.Citation()))
		if c.HasDates() {
			end := c.EndDate
			if end == "" {
				end = "Present"
			}
			sb.WriteString(fmt.Sprintf("    %s - %s\n", c.StartDate, end))
		}
		sb.WriteString(fmt.Sprintf("    Confidence: %.2f (%s)\n", c.Confidence, c.ReviewStatus))
		if c.Status != types.StatusActive {
			sb.WriteString(fmt.Sprintf("    Status: %s\n", c.Status))
		}
		if len(c.Tools) > 0 {
			tools := strings.Join(c.Tools, ", ")
			if len(tools) > 40 {
				tools = tools[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Tools: %s\n", tools))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(claims) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more\n", len(claims)-maxItemsToShow))
	}

	p.printBox("EXTRACTED CLAIMS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRequirements outputs the extracted requirements grouped by priority.
func (p *Printer) PrintRequirements(reqs []types.Requirement) {
	if len(reqs) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total requirements: %d\n\n", len(reqs)))

	for _, priority := range []string{types.PriorityMust, types.PriorityPreferred} {
		var group []types.Requirement
		for _, r := range reqs {
			if r.Priority == priority {
				group = append(group, r)
			}
		}
		if len(group) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s:\n", strings.ToUpper(priority)))
		count := min(len(group), maxItemsToShow)
		for i := 0; i < count; i++ {
			r := group[i]
			sb.WriteString(fmt.Sprintf("  • [%s] %s", r.Type, r.Description))
			if r.Match != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", r.Match))
			}
			sb.WriteString("\n")
		}
		if len(group) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(group)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	p.printBox("JOB REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoringResult outputs the fit score, breakdown, and verdict reasons.
func (p *Printer) PrintScoringResult(result *types.ScoringResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Fit Score: %d (%s)\n", result.FitScore, result.FitLabel))

	if len(result.Disqualifiers) > 0 {
		sb.WriteString("\nDisqualified:\n")
		for _, d := range result.Disqualifiers {
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", d))
		}
		p.printBox("SCORING RESULT", strings.TrimSuffix(sb.String(), "\n"))
		return
	}

	sb.WriteString("\nBreakdown:\n")
	sb.WriteString(fmt.Sprintf("  Role Scope:    %d\n", result.Breakdown.RoleScope))
	sb.WriteString(fmt.Sprintf("  Compensation:  %d\n", result.Breakdown.Compensation))
	sb.WriteString(fmt.Sprintf("  Company Stage: %d\n", result.Breakdown.CompanyStage))
	sb.WriteString(fmt.Sprintf("  Domain Fit:    %d\n", result.Breakdown.DomainFit))
	sb.WriteString(fmt.Sprintf("  Risk Penalty: -%d\n", result.Breakdown.RiskPenalty))

	writeReasonList(&sb, "Reasons to pursue", result.ReasonsToPursue)
	writeReasonList(&sb, "Reasons to pass", result.ReasonsToPass)
	writeReasonList(&sb, "Red flags", result.RedFlags)

	p.printBox("SCORING RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

func writeReasonList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("\n%s:\n", title))
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

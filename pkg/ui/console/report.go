package console

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arthur-debert/movex/pkg/types"
	"github.com/arthur-debert/movex/pkg/ui/output/styles"
)

// RenderDeploy writes a summary of a deployment
func RenderDeploy(w io.Writer, result *types.DeployResult) {
	if result == nil {
		return
	}
	if result.DryRun {
		fmt.Fprintln(w, styles.Render("DryRunBanner", "dry run: nothing was written"))
	}
	fmt.Fprintln(w, styles.Render("Header", "Deployed "+result.Package))

	renderCopy(w, types.ArtifactBinaries, result.Destination.Binaries, &result.Binaries)
	if result.Launch != nil {
		renderCopy(w, types.ArtifactLaunch, result.Destination.Launch, result.Launch)
	}
	if result.Config != nil {
		renderConfig(w, result.Destination.Config, result.Config)
	}

	kinds := make([]string, 0, len(result.Skipped))
	for kind := range result.Skipped {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Fprintf(w, "  %-9s %s\n", kind,
			styles.Render("Skipped", "skipped: "+result.Skipped[types.ArtifactKind(kind)]))
	}
}

func renderCopy(w io.Writer, kind types.ArtifactKind, dst string, stats *types.CopyStats) {
	fmt.Fprintf(w, "  %-9s %s %s\n", kind,
		styles.Render("Success", fmt.Sprintf("%d files (%d replaced)", stats.Files, stats.Overwritten)),
		styles.Render("Muted", "-> "+dst))
}

func renderConfig(w io.Writer, dst string, outcome *types.ConfigOutcome) {
	fmt.Fprintf(w, "  %-9s %s\n", types.ArtifactConfig, styles.Render("Muted", "-> "+dst))
	groups := []struct {
		label string
		style string
		names []string
	}{
		{"identical", "Identical", outcome.Identical},
		{"copied", "SourceOnly", outcome.Copied},
		{"overwritten", "Conflict", outcome.Overwritten},
		{"kept", "Skipped", outcome.Skipped},
		{"unmergeable", "Warning", outcome.Unmergeable},
	}
	for _, g := range groups {
		if len(g.names) == 0 {
			continue
		}
		fmt.Fprintf(w, "    %-12s %s\n", g.label, styles.Render(g.style, strings.Join(g.names, ", ")))
	}
}

// RenderExpansion writes the ordered step outcomes of an expansion run
func RenderExpansion(w io.Writer, report *types.ExpansionReport) {
	if report == nil {
		return
	}
	fmt.Fprintln(w, styles.Render("Header",
		fmt.Sprintf("Expanding %s (disk %s, partition %s)", report.Device, report.Disk, report.Partition)))

	for _, outcome := range report.Outcomes {
		status := string(outcome.Status)
		switch outcome.Status {
		case types.StepSucceeded:
			status = styles.Render("Success", status)
		case types.StepAdvisory:
			status = styles.Render("Warning", status)
		case types.StepFailed:
			status = styles.Render("Error", status)
		default:
			status = styles.Render("Skipped", status)
		}
		line := fmt.Sprintf("  %s %s", styles.Render("Step", string(outcome.Step)), status)
		if len(outcome.Command) > 0 {
			line += " " + styles.Render("Muted", strings.Join(outcome.Command, " "))
		}
		fmt.Fprintln(w, line)
	}
}

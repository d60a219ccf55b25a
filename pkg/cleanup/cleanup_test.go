package cleanup_test

import (
	"strings"
	"testing"

	"github.com/iyulab/undoc/pkg/cleanup"
	"github.com/iyulab/undoc/pkg/model"
)

func TestApplyNonePassesThrough(t *testing.T) {
	in := "Hello​world\n\n\n\nextra"
	got := cleanup.Apply(in, model.CleanupNone)
	if got != in {
		t.Errorf("CleanupNone changed text: got %q, want %q", got, in)
	}
}

func TestApplyMinimalNormalizesAndTrims(t *testing.T) {
	in := "smart “quotes” • bullet\n\n\n\n\ntrailing   \n"
	got := cleanup.Apply(in, model.CleanupMinimal)
	if strings.Contains(got, "“") || strings.Contains(got, "•") {
		t.Errorf("Minimal should normalize smart quotes/bullets, got %q", got)
	}
	if strings.Contains(got, " \n") {
		t.Errorf("Minimal should strip trailing whitespace, got %q", got)
	}
	if !strings.HasSuffix(got, "\n") || strings.HasSuffix(got, "\n\n") {
		t.Errorf("expected exactly one trailing newline, got %q", got)
	}
}

func TestApplyStandardDropsRepeatedHeaderFooter(t *testing.T) {
	in := strings.Join([]string{
		"Confidential Draft",
		"real content one",
		"Confidential Draft",
		"real content two",
		"Confidential Draft",
	}, "\n")
	got := cleanup.Apply(in, model.CleanupStandard)
	if strings.Contains(got, "Confidential Draft") {
		t.Errorf("Standard should drop a 3x-repeated short line, got %q", got)
	}
	if !strings.Contains(got, "real content one") || !strings.Contains(got, "real content two") {
		t.Errorf("Standard should keep unique content, got %q", got)
	}
}

func TestApplyAggressiveDropsBlankTableRows(t *testing.T) {
	in := "| a | b |\n|---|---|\n|  |  |\n| x | y |\n"
	got := cleanup.Apply(in, model.CleanupAggressive)
	if strings.Contains(got, "|  |  |") {
		t.Errorf("Aggressive should drop all-whitespace table rows, got %q", got)
	}
	if !strings.Contains(got, "| x | y |") {
		t.Errorf("Aggressive should keep populated rows, got %q", got)
	}
}

func TestApplyStandardKeepsTableSeparatorLine(t *testing.T) {
	// A "|---|---|" separator line is short and would otherwise look like a
	// repeated structural line if it appeared 3+ times across many tables;
	// cleanLines' structuralLine guard must not count it toward repetition
	// removal of genuine prose.
	in := strings.Repeat("|---|---|\n", 4) + "kept line\n"
	got := cleanup.Apply(in, model.CleanupStandard)
	if !strings.Contains(got, "kept line") {
		t.Errorf("expected prose line to survive, got %q", got)
	}
}

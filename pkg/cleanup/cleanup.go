// Package cleanup implements spec.md component L: the four-stage text
// cleanup pipeline (normalize strings, clean lines, filter structure,
// final normalize) selected by a CleanupPreset.
package cleanup

import "github.com/iyulab/undoc/pkg/model"

// Apply runs the stages CleanupPreset selects, per spec.md §4.I:
// Minimal = {1, 4}; Standard = {1, 2, 4}; Aggressive = {1, 2, 3, 4}.
// CleanupNone returns text unchanged.
func Apply(text string, preset model.CleanupPreset) string {
	switch preset {
	case model.CleanupMinimal:
		return finalNormalize(normalizeStrings(text))
	case model.CleanupStandard:
		return finalNormalize(cleanLines(normalizeStrings(text)))
	case model.CleanupAggressive:
		return finalNormalize(filterStructure(cleanLines(normalizeStrings(text))))
	default:
		return text
	}
}

package pricing

import (
	"sort"

	"gestao_facil/internal/domain/entities"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// LineGroup is a display/export projection: the lines sharing one group
// label, already sorted, plus their subtotal.
type LineGroup struct {
	Label   string              `json:"label"`
	Lines   []entities.BudgetLine `json:"lines"`
	Summary Summary             `json:"summary"`
}

// Group partitions lines by group label for presentation.
//
// Lines are sorted once by name, before partitioning, so items end up
// alphabetical within each group. Named groups are emitted in alphabetical
// label order; lines without a label form a bucket that is always emitted
// last. Names and labels are compared with Brazilian Portuguese collation so
// accented item names sort the way users expect.
func Group(lines []entities.BudgetLine) []LineGroup {
	// collate.Collator is not safe for concurrent use; build one per call.
	col := collate.New(language.BrazilianPortuguese)

	sorted := make([]entities.BudgetLine, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		return col.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})

	byLabel := make(map[string][]entities.BudgetLine)
	var labels []string
	var ungrouped []entities.BudgetLine
	for _, l := range sorted {
		if l.GroupLabel == "" {
			ungrouped = append(ungrouped, l)
			continue
		}
		if _, ok := byLabel[l.GroupLabel]; !ok {
			labels = append(labels, l.GroupLabel)
		}
		byLabel[l.GroupLabel] = append(byLabel[l.GroupLabel], l)
	}

	sort.SliceStable(labels, func(i, j int) bool {
		return col.CompareString(labels[i], labels[j]) < 0
	})

	groups := make([]LineGroup, 0, len(labels)+1)
	for _, label := range labels {
		groups = append(groups, LineGroup{
			Label:   label,
			Lines:   byLabel[label],
			Summary: Summarize(byLabel[label]),
		})
	}
	if len(ungrouped) > 0 {
		groups = append(groups, LineGroup{
			Lines:   ungrouped,
			Summary: Summarize(ungrouped),
		})
	}
	return groups
}

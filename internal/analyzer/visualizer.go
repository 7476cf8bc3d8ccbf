package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samzong/gmq/internal/stringsutil"
)

type keyCount struct {
	key   string
	count int
}

// rankCounts sorts keys by descending count. Ties keep the order of keys.
func rankCounts(keys []string, counts map[string]int) []keyCount {
	ranked := make([]keyCount, 0, len(keys))
	for _, k := range keys {
		ranked = append(ranked, keyCount{key: k, count: counts[k]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].count > ranked[j].count
	})
	return ranked
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// bar scales count against max into at most width blocks. Non-zero counts
// always get one block.
func bar(count, max, width int) string {
	if max <= 0 || count <= 0 {
		return ""
	}
	n := count * width / max
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

// TypeDistributionChart renders an ASCII bar chart of commit types.
func TypeDistributionChart(distribution map[string]int) string {
	if len(distribution) == 0 {
		return "No commit types to display\n"
	}
	ranked := rankCounts(sortedKeys(distribution), distribution)

	var chart strings.Builder
	chart.WriteString("📈 Commit Type Distribution:\n")
	for _, tc := range ranked {
		fmt.Fprintf(&chart, "%-10s %s %d\n", tc.key+":", bar(tc.count, ranked[0].count, 20), tc.count)
	}
	return chart.String()
}

// AuthorChart renders one line per author, ranked by the share of clean
// commits.
func AuthorChart(authors map[string]AuthorStats) string {
	if len(authors) == 0 {
		return "No authors to display\n"
	}
	names := sortedKeys(authors)
	sort.SliceStable(names, func(i, j int) bool {
		a, b := authors[names[i]], authors[names[j]]
		return a.CleanCommits*b.CommitCount > b.CleanCommits*a.CommitCount
	})

	var chart strings.Builder
	chart.WriteString("👥 Authors:\n")
	for _, name := range names {
		stats := authors[name]
		display := name
		if display == "" {
			display = "(unknown)"
		}
		fmt.Fprintf(&chart, "%-12s | %s %d/%d clean\n",
			stringsutil.Truncate(display, 12), bar(stats.CleanCommits, stats.CommitCount, 15), stats.CleanCommits, stats.CommitCount)
	}
	return chart.String()
}

// QualityIndicator renders the clean ratio with a traffic light.
func QualityIndicator(ratio float64) string {
	pct := ratio * 100
	switch {
	case pct >= 80:
		return fmt.Sprintf("🟢 %.1f%% (Excellent)", pct)
	case pct >= 60:
		return fmt.Sprintf("🟡 %.1f%% (Good)", pct)
	default:
		return fmt.Sprintf("🔴 %.1f%% (Needs Improvement)", pct)
	}
}

// RenderSummary renders a batch summary as plain text.
func RenderSummary(s Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 Commit Message Quality (last %d commits)\n\n", s.TotalCommits)
	fmt.Fprintf(&b, "Clean Commits: %d/%d %s\n", s.CleanCommits, s.TotalCommits, QualityIndicator(s.CleanRatio()))
	fmt.Fprintf(&b, "Issues: %s %d  %s %d  %s %d\n\n",
		SeverityHigh.Icon(), s.SeverityCounts[SeverityHigh],
		SeverityMedium.Icon(), s.SeverityCounts[SeverityMedium],
		SeverityLow.Icon(), s.SeverityCounts[SeverityLow],
	)
	b.WriteString(TypeDistributionChart(s.TypeDistribution))

	if len(s.IssueCounts) > 0 {
		b.WriteString("\n🔍 Most Common Issues:\n")
		ranked := rankCounts(sortedKeys(s.IssueCounts), s.IssueCounts)
		if len(ranked) > 5 {
			ranked = ranked[:5]
		}
		for i, r := range ranked {
			fmt.Fprintf(&b, "%d. %s (%d)\n", i+1, r.key, r.count)
		}
	}

	if len(s.Authors) > 1 {
		b.WriteString("\n")
		b.WriteString(AuthorChart(s.Authors))
	}
	return b.String()
}

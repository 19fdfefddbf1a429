// Package analytics derives read-side summaries from the full inspection list.
// Nothing here touches the store; callers fetch and pass the data in.
package analytics

import (
	"sort"
	"strings"
	"time"

	"phi-inspection/internal/data/entity"
)

const (
	DefaultCategory = "Other"

	RiskLow      = "Low"
	RiskMedium   = "Medium"
	RiskHigh     = "High"
	RiskCritical = "Critical"

	PriorityUrgent = "urgent"
	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

var ratingScores = map[string]float64{
	"A": 90,
	"B": 70,
	"C": 50,
	"D": 30,
}

func normalizeRating(rating string) string {
	return strings.ToUpper(strings.TrimSpace(rating))
}

// Score maps a letter grade to its numeric score. Unknown grades score zero.
func Score(rating string) float64 {
	return ratingScores[normalizeRating(rating)]
}

// RiskLevel buckets an average score.
func RiskLevel(avg float64) string {
	switch {
	case avg > 80:
		return RiskLow
	case avg > 60:
		return RiskMedium
	case avg > 40:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// Priority derives a follow-up priority from the inspection status.
func Priority(status entity.InspectionStatus) string {
	switch status {
	case entity.InspectionFailed:
		return PriorityUrgent
	case entity.InspectionPending:
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

// Directory resolves shop attributes by shop name. The first entry wins on duplicate names.
type Directory struct {
	byName map[string]entity.ShopDirectoryEntry
}

func NewDirectory(entries []entity.ShopDirectoryEntry) Directory {
	byName := make(map[string]entity.ShopDirectoryEntry, len(entries))
	for _, e := range entries {
		if _, seen := byName[e.Name]; !seen {
			byName[e.Name] = e
		}
	}
	return Directory{byName: byName}
}

func (d Directory) lookup(shopName string) (entity.ShopDirectoryEntry, bool) {
	e, ok := d.byName[shopName]
	return e, ok
}

// Category resolves an inspection's category: its own, then its shop's, then DefaultCategory.
func (d Directory) Category(in *entity.Inspection) string {
	if in.Category != nil {
		if c := strings.TrimSpace(*in.Category); c != "" {
			return c
		}
	}
	if e, ok := d.lookup(in.ShopName); ok && strings.TrimSpace(e.Category) != "" {
		return e.Category
	}
	return DefaultCategory
}

func (d Directory) OwnerName(shopName string) string {
	e, _ := d.lookup(shopName)
	return e.OwnerName
}

// DailyCounts returns one bucket per day of the month, counting inspections dated in that month (UTC).
func DailyCounts(inspections []*entity.Inspection, month time.Month, year int) []int {
	days := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	counts := make([]int, days)

	for _, in := range inspections {
		d := in.InspectionDate.UTC()
		if d.Year() != year || d.Month() != month {
			continue
		}
		counts[d.Day()-1]++
	}
	return counts
}

type CategoryStat struct {
	Category     string  `json:"category"`
	Total        int     `json:"total"`
	Completed    int     `json:"completed"`
	PassRate     float64 `json:"passRate"`
	AverageScore float64 `json:"averageScore"`
	RiskLevel    string  `json:"riskLevel"`
}

// CategorySummary groups inspections by resolved category, largest group first.
func CategorySummary(inspections []*entity.Inspection, dir Directory) []CategoryStat {
	type acc struct {
		total, completed, passed int
		score                    float64
	}
	groups := make(map[string]*acc)

	for _, in := range inspections {
		category := dir.Category(in)
		g, ok := groups[category]
		if !ok {
			g = &acc{}
			groups[category] = g
		}

		g.total++
		if in.Status == entity.InspectionCompleted || in.Status == entity.InspectionPassed {
			g.completed++
		}
		if normalizeRating(in.OverallRating) == "A" {
			g.passed++
		}
		g.score += Score(in.OverallRating)
	}

	stats := make([]CategoryStat, 0, len(groups))
	for category, g := range groups {
		avg := g.score / float64(g.total)
		stats = append(stats, CategoryStat{
			Category:     category,
			Total:        g.total,
			Completed:    g.completed,
			PassRate:     float64(g.passed) / float64(g.total),
			AverageScore: avg,
			RiskLevel:    RiskLevel(avg),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Total != stats[j].Total {
			return stats[i].Total > stats[j].Total
		}
		return stats[i].Category < stats[j].Category
	})
	return stats
}

// HighRiskFilter narrows the high-risk list. Empty fields match everything.
type HighRiskFilter struct {
	Search   string
	Priority string
	Category string
}

type HighRiskEntry struct {
	ID             string    `json:"id"`
	PublicID       string    `json:"inspectionId"`
	ShopName       string    `json:"shopName"`
	OwnerName      string    `json:"ownerName"`
	GNDivision     string    `json:"gnDivision"`
	Category       string    `json:"category"`
	InspectorName  string    `json:"inspectorName"`
	InspectionDate time.Time `json:"inspectionDate"`
	OverallRating  string    `json:"overallRating"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
}

// HighRisk returns inspections rated "D" that match the filter, in input order.
func HighRisk(inspections []*entity.Inspection, dir Directory, filter HighRiskFilter) []HighRiskEntry {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	entries := []HighRiskEntry{}

	for _, in := range inspections {
		if normalizeRating(in.OverallRating) != "D" {
			continue
		}

		entry := HighRiskEntry{
			ID:             in.ID.String(),
			PublicID:       in.PublicID,
			ShopName:       in.ShopName,
			OwnerName:      dir.OwnerName(in.ShopName),
			Category:       dir.Category(in),
			InspectorName:  in.InspectorName,
			InspectionDate: in.InspectionDate,
			OverallRating:  in.OverallRating,
			Status:         string(in.Status),
			Priority:       Priority(in.Status),
		}
		if in.GNDivision != nil {
			entry.GNDivision = *in.GNDivision
		}

		if filter.Priority != "" && !strings.EqualFold(filter.Priority, entry.Priority) {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(filter.Category, entry.Category) {
			continue
		}
		if search != "" && !matchesSearch(entry, search) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

func matchesSearch(e HighRiskEntry, needle string) bool {
	for _, field := range []string{e.ShopName, e.OwnerName, e.GNDivision, e.PublicID} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

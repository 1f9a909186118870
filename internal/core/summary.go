package core

import "sort"

type (
	// CategorySummary aggregates the expenses of one category.
	CategorySummary struct {
		Name    string
		Sum     int64
		Count   int
		Average float64
	}

	// MonthTotal is the summed amount for a specific year+month.
	MonthTotal struct {
		Year  int
		Month int // 1-12
		Sum   int64
	}

	// CumulativePoint is one expense with the running total of all expenses
	// up to and including it, in date order. Used for trend views.
	CumulativePoint struct {
		Expense
		Running int64
	}
)

// Total returns the sum of all amounts.
func Total(items []Expense) int64 {
	var sum int64
	for _, e := range items {
		sum += e.Amount
	}
	return sum
}

// Count returns the number of expenses.
func Count(items []Expense) int {
	return len(items)
}

// Average returns the mean amount, or 0 for an empty snapshot.
func Average(items []Expense) float64 {
	if len(items) == 0 {
		return 0
	}
	return float64(Total(items)) / float64(len(items))
}

// Max returns the largest single amount, or 0 for an empty snapshot.
func Max(items []Expense) int64 {
	var max int64
	for _, e := range items {
		if e.Amount > max {
			max = e.Amount
		}
	}
	return max
}

// GroupByCategory aggregates sum, count and average per category, sorted by
// descending sum. Ties break on name so output order is deterministic.
func GroupByCategory(items []Expense) []CategorySummary {
	byName := make(map[string]*CategorySummary)
	for _, e := range items {
		s, ok := byName[e.Category]
		if !ok {
			s = &CategorySummary{Name: e.Category}
			byName[e.Category] = s
		}
		s.Sum += e.Amount
		s.Count++
	}
	out := make([]CategorySummary, 0, len(byName))
	for _, s := range byName {
		s.Average = float64(s.Sum) / float64(s.Count)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sum != out[j].Sum {
			return out[i].Sum > out[j].Sum
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// GroupByMonth sums amounts per calendar month, in chronological order.
func GroupByMonth(items []Expense) []MonthTotal {
	type key struct{ year, month int }
	byMonth := make(map[key]int64)
	for _, e := range items {
		byMonth[key{e.Date.Year(), e.Date.Month()}] += e.Amount
	}
	out := make([]MonthTotal, 0, len(byMonth))
	for k, sum := range byMonth {
		out = append(out, MonthTotal{Year: k.year, Month: k.month, Sum: sum})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// FilterByCategory returns the expenses whose category equals the given
// label. The match is case-sensitive on the stored, capitalized form.
func FilterByCategory(items []Expense, category string) []Expense {
	var out []Expense
	for _, e := range items {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// CumulativeByDate returns the expenses sorted ascending by date with a
// running total. The sort is stable, so same-day expenses keep their
// insertion order.
func CumulativeByDate(items []Expense) []CumulativePoint {
	sorted := make([]Expense, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	out := make([]CumulativePoint, len(sorted))
	var running int64
	for i, e := range sorted {
		running += e.Amount
		out[i] = CumulativePoint{Expense: e, Running: running}
	}
	return out
}

// DistinctCategories returns the sorted set of category names present.
func DistinctCategories(items []Expense) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range items {
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		out = append(out, e.Category)
	}
	sort.Strings(out)
	return out
}

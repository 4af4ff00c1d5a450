package dashboard

import (
	"math"
	"sort"

	"github.com/KromaEnergia/api-contracts/internal/contract"
)

const topGroupLimit = 10

// ValueRanges are the fixed, non-overlapping annual dashboard buckets.
// Boundary membership is resolved by the ceiling of the contract value.
var ValueRanges = []string{"0-1000", "1001-5000", "5001-10000", "10001+"}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func periodicityDomain() map[string]Group {
	buckets := make(map[string]Group, len(contract.PeriodicityMonths))
	for p := range contract.PeriodicityMonths {
		buckets[p] = Group{}
	}
	return buckets
}

// BuildMonthly folds the period's active contracts into the overall totals
// and the per-category, per-responsible and per-periodicity groups. Category
// and responsible rankings keep only the ten largest totals, descending;
// the periodicity buckets always cover the full five-valued domain.
func BuildMonthly(rows []Row, inactiveQuantity int, inactiveTotal float64) MonthlyDashboard {
	d := MonthlyDashboard{
		ByCategory:         []NamedGroup{},
		ByResponsible:      []NamedGroup{},
		ByPeriodicity:      periodicityDomain(),
		InactiveQuantity:   inactiveQuantity,
		InactiveTotalValue: round2(inactiveTotal),
	}

	byCategory := map[string]*NamedGroup{}
	byResponsible := map[string]*NamedGroup{}
	var total float64
	for _, row := range rows {
		total += row.Value
		fold(byCategory, row.Category, row.Value)
		fold(byResponsible, row.Responsible, row.Value)

		bucket := d.ByPeriodicity[row.Periodicity]
		bucket.Quantity++
		bucket.TotalValue += row.Value
		d.ByPeriodicity[row.Periodicity] = bucket
	}
	// totals accumulate unrounded and are rounded once here
	for p, bucket := range d.ByPeriodicity {
		if bucket.Quantity > 0 {
			bucket.AverageValue = round2(bucket.TotalValue / float64(bucket.Quantity))
			bucket.TotalValue = round2(bucket.TotalValue)
			d.ByPeriodicity[p] = bucket
		}
	}

	d.Quantity = len(rows)
	d.TotalValue = round2(total)
	if len(rows) > 0 {
		d.AverageValue = round2(total / float64(len(rows)))
	}
	d.ByCategory = rank(byCategory)
	d.ByResponsible = rank(byResponsible)
	return d
}

func fold(groups map[string]*NamedGroup, name string, value float64) {
	g, ok := groups[name]
	if !ok {
		g = &NamedGroup{Name: name}
		groups[name] = g
	}
	g.Quantity++
	g.TotalValue += value
}

// rank orders groups by total_value descending and keeps the top ten.
// Ties keep an arbitrary but deterministic order (name ascending).
func rank(groups map[string]*NamedGroup) []NamedGroup {
	ranked := make([]NamedGroup, 0, len(groups))
	for _, g := range groups {
		g.AverageValue = round2(g.TotalValue / float64(g.Quantity))
		g.TotalValue = round2(g.TotalValue)
		ranked = append(ranked, *g)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalValue != ranked[j].TotalValue {
			return ranked[i].TotalValue > ranked[j].TotalValue
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > topGroupLimit {
		ranked = ranked[:topGroupLimit]
	}
	return ranked
}

// ValueRange resolves which annual bucket a contract value falls into,
// using the ceiling of the value: 1000.4 rounds up past the 0-1000 border,
// 1000.0 stays inside it.
func ValueRange(value float64) string {
	c := math.Ceil(value)
	switch {
	case c <= 1000:
		return ValueRanges[0]
	case c <= 5000:
		return ValueRanges[1]
	case c <= 10000:
		return ValueRanges[2]
	default:
		return ValueRanges[3]
	}
}

// BuildAnnual buckets the year's active contracts into twelve month buckets,
// the five periodicity buckets and the four fixed value ranges. Every bucket
// is present even when empty.
func BuildAnnual(rows []AnnualRow) AnnualDashboard {
	d := AnnualDashboard{
		ByMonth:       make([]MonthBucket, 12),
		ByPeriodicity: map[string]Bucket{},
		ByValueRange:  make([]RangeBucket, len(ValueRanges)),
	}
	for i := range d.ByMonth {
		d.ByMonth[i].Month = i + 1
	}
	for p := range contract.PeriodicityMonths {
		d.ByPeriodicity[p] = Bucket{}
	}
	rangeIndex := map[string]int{}
	for i, r := range ValueRanges {
		d.ByValueRange[i].Range = r
		rangeIndex[r] = i
	}

	for _, row := range rows {
		m := int(row.EffectiveDate.Month()) - 1
		d.ByMonth[m].Quantity++
		d.ByMonth[m].TotalValue += row.Value

		bucket := d.ByPeriodicity[row.Periodicity]
		bucket.Quantity++
		bucket.TotalValue += row.Value
		d.ByPeriodicity[row.Periodicity] = bucket

		d.ByValueRange[rangeIndex[ValueRange(row.Value)]].Quantity++
	}
	for i := range d.ByMonth {
		d.ByMonth[i].TotalValue = round2(d.ByMonth[i].TotalValue)
	}
	for p, bucket := range d.ByPeriodicity {
		bucket.TotalValue = round2(bucket.TotalValue)
		d.ByPeriodicity[p] = bucket
	}
	return d
}

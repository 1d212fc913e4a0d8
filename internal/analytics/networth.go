package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"expensetracker/internal/models"
)

// ComputeNetWorth sums assets against liabilities. The result carries no
// trend; blend one in with NetWorthTrend.
func ComputeNetWorth(assets []models.Asset, liabilities []models.Liability) models.NetWorthSummary {
	totalAssets := decimal.Zero
	for i := range assets {
		totalAssets = totalAssets.Add(assets[i].Value)
	}

	totalLiabilities := decimal.Zero
	for i := range liabilities {
		totalLiabilities = totalLiabilities.Add(liabilities[i].Value)
	}

	return models.NetWorthSummary{
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		NetWorth:         totalAssets.Sub(totalLiabilities),
	}
}

// NetWorthTrend builds an n-month trend series. Every month except the
// current one is read verbatim from snapshot history (0 when no snapshot
// exists; never interpolated, never recomputed from today's assets); the
// current month is always the live value. Historical net worth must not
// silently change when today's asset list does.
func NetWorthTrend(transactions []models.Transaction, history []models.NetWorthSnapshot, live decimal.Decimal, n int, now time.Time) []models.NetWorthPoint {
	buckets := BucketByMonth(transactions, n, now)
	if len(buckets) == 0 {
		return nil
	}

	byMonth := make(map[string]decimal.Decimal, len(history))
	for i := range history {
		byMonth[history[i].Month] = history[i].NetWorth
	}

	currentLabel := buckets[len(buckets)-1].Label
	trend := make([]models.NetWorthPoint, 0, len(buckets))
	for _, b := range buckets {
		if b.Label == currentLabel {
			trend = append(trend, models.NetWorthPoint{Label: b.Label, NetWorth: live})
			continue
		}
		value, ok := byMonth[b.Label]
		if !ok {
			value = decimal.Zero
		}
		trend = append(trend, models.NetWorthPoint{Label: b.Label, NetWorth: value})
	}
	return trend
}

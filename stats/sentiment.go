package stats

import (
	"chat-lens/domain"
	"chat-lens/projection"
	"math"
	"sort"
	"strconv"
)

// Sentiment aggregates message polarity: the overall mean, the mean per
// day and a histogram of scores rounded to one decimal.
func Sentiment(enriched []domain.Enriched) domain.SentimentSummary {
	summary := domain.SentimentSummary{ByDay: make(map[string]float64)}
	if len(enriched) == 0 {
		return summary
	}

	var total float64
	daySum := make(map[string]float64)
	dayCount := make(map[string]int)
	buckets := make(map[float64]int)
	for _, e := range enriched {
		score := e.Features.Sentiment
		total += score
		day := projection.DayKey(e.Message)
		daySum[day] += score
		dayCount[day]++
		buckets[bucket(score)]++
	}

	summary.Mean = total / float64(len(enriched))
	for day, sum := range daySum {
		summary.ByDay[day] = sum / float64(dayCount[day])
	}
	keys := make([]float64, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Float64s(keys)
	for _, k := range keys {
		summary.Histogram = append(summary.Histogram, domain.Count{
			Label: strconv.FormatFloat(k, 'f', 1, 64),
			Count: buckets[k],
		})
	}
	return summary
}

func bucket(score float64) float64 {
	b := math.Round(score*10) / 10
	if b == 0 {
		// Drop the sign of negative zero so it shares the "0.0" bucket.
		return 0
	}
	return b
}

// Package stats computes the descriptive statistics of a transcript:
// activity over time, participation, vocabulary, emojis and sentiment.
// Every function is pure and keeps its input untouched.
package stats

import (
	"chat-lens/domain"
	"chat-lens/projection"
	"math"
	"sort"
	"time"
)

const monthLayout = "2006-01"

// Activity spreads the messages over hours, weekdays, days and months.
// Weekdays start on Sunday, following time.Weekday.
func Activity(messages []domain.Message) domain.Activity {
	var a domain.Activity
	if len(messages) == 0 {
		return a
	}

	byDay := make(map[string]int)
	byMonth := make(map[string]int)
	a.First, a.Last = messages[0].SentAt, messages[0].SentAt
	for _, m := range messages {
		if m.SentAt.Before(a.First) {
			a.First = m.SentAt
		}
		if m.SentAt.After(a.Last) {
			a.Last = m.SentAt
		}
		hour, weekday := m.SentAt.Hour(), int(m.SentAt.Weekday())
		a.ByHour[hour]++
		a.ByWeekday[weekday]++
		a.WeekdayHourMap[weekday][hour]++
		byDay[projection.DayKey(m)]++
		byMonth[m.SentAt.Format(monthLayout)]++
	}

	a.ByDay = sortedCounts(byDay)
	a.ByMonth = sortedCounts(byMonth)
	for _, c := range a.ByDay {
		if c.Count > a.BusiestDay.Count {
			a.BusiestDay = c
		}
	}
	a.DurationDays = calendarDays(a.First, a.Last)
	a.AvgPerDay = float64(len(messages)) / float64(a.DurationDays)
	return a
}

// calendarDays counts the calendar days spanned by [first, last], both included.
func calendarDays(first, last time.Time) int {
	from := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, first.Location())
	to := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, last.Location())
	return int(math.Round(to.Sub(from).Hours()/24)) + 1
}

// sortedCounts orders counts by label.
func sortedCounts(counts map[string]int) []domain.Count {
	out := make([]domain.Count, 0, len(counts))
	for label, n := range counts {
		out = append(out, domain.Count{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// rankCounts orders counts by count desc then label, keeping at most top (all when top <= 0).
func rankCounts(counts map[string]int, top int) []domain.Count {
	out := make([]domain.Count, 0, len(counts))
	for label, n := range counts {
		out = append(out, domain.Count{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	if top > 0 && len(out) > top {
		out = out[:top]
	}
	return out
}

// Package projection builds time-ordered views of a parsed transcript.
// Handles chronological ordering and the cumulative daily timeline.
// Does not parse, and never mutates the messages it is given.
package projection

import (
	"chat-lens/domain"
	"sort"
)

const dayLayout = "2006-01-02"

// Chronological returns a copy sorted by SentAt. Messages sharing a
// timestamp keep their file order.
func Chronological(messages []domain.Message) []domain.Message {
	sorted := append([]domain.Message(nil), messages...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SentAt.Before(sorted[j].SentAt)
	})
	return sorted
}

// Timeline holds messages in chronological order.
type Timeline struct {
	Messages []domain.Message
}

func NewTimeline(messages []domain.Message) *Timeline {
	return &Timeline{Messages: Chronological(messages)}
}

// DayKey formats the calendar day of a message.
func DayKey(m domain.Message) string {
	return m.SentAt.Format(dayLayout)
}

// Cumulative counts messages per active day, in total and per sender,
// and smooths the daily counts with a trailing rolling mean.
func (t *Timeline) Cumulative(rollingWindow int) domain.Timeline {
	out := domain.Timeline{PerSender: make(map[string][]int)}
	if len(t.Messages) == 0 {
		return out
	}

	var daily []int
	perSenderDaily := make(map[string]map[int]int)
	for _, m := range t.Messages {
		day := DayKey(m)
		if len(out.Days) == 0 || out.Days[len(out.Days)-1] != day {
			out.Days = append(out.Days, day)
			daily = append(daily, 0)
		}
		idx := len(out.Days) - 1
		daily[idx]++
		if perSenderDaily[m.Sender] == nil {
			perSenderDaily[m.Sender] = make(map[int]int)
		}
		perSenderDaily[m.Sender][idx]++
	}

	out.Cumulative = running(daily)
	for sender, byDay := range perSenderDaily {
		counts := make([]int, len(out.Days))
		for idx, n := range byDay {
			counts[idx] = n
		}
		out.PerSender[sender] = running(counts)
	}
	out.RollingMean = RollingMean(daily, rollingWindow)
	return out
}

// RollingMean averages each value with up to window-1 predecessors.
func RollingMean(values []int, window int) []float64 {
	if window < 1 {
		window = 1
	}
	out := make([]float64, len(values))
	sum := 0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		out[i] = float64(sum) / float64(min(i+1, window))
	}
	return out
}

func running(values []int) []int {
	out := make([]int, len(values))
	total := 0
	for i, v := range values {
		total += v
		out[i] = total
	}
	return out
}

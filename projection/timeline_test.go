package projection

import (
	"chat-lens/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2023, 1, day, hour, minute, 0, 0, time.UTC)
}

func TestChronological_StableOnTies(t *testing.T) {
	req := require.New(t)
	messages := []domain.Message{
		{Seq: 0, Sender: "C", SentAt: at(2, 10, 0)},
		{Seq: 1, Sender: "A", SentAt: at(1, 10, 0)},
		{Seq: 2, Sender: "B", SentAt: at(1, 10, 0)},
	}

	sorted := Chronological(messages)

	req.Equal([]string{"A", "B", "C"}, []string{sorted[0].Sender, sorted[1].Sender, sorted[2].Sender})
	// The input is left untouched
	req.Equal("C", messages[0].Sender)
}

func TestTimeline_Cumulative(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline([]domain.Message{
		{Sender: "Bob", SentAt: at(3, 9, 0)},
		{Sender: "Alice", SentAt: at(1, 10, 0)},
		{Sender: "Alice", SentAt: at(1, 11, 0)},
		{Sender: "Bob", SentAt: at(1, 12, 0)},
		{Sender: "Alice", SentAt: at(3, 8, 0)},
		{Sender: "Alice", SentAt: at(3, 8, 30)},
		{Sender: "Alice", SentAt: at(3, 8, 45)},
	})

	got := timeline.Cumulative(2)

	req.Equal([]string{"2023-01-01", "2023-01-03"}, got.Days)
	req.Equal([]int{3, 7}, got.Cumulative)
	req.Equal([]int{2, 5}, got.PerSender["Alice"])
	req.Equal([]int{1, 2}, got.PerSender["Bob"])
	req.Equal([]float64{3, 3.5}, got.RollingMean)
}

func TestTimeline_Empty(t *testing.T) {
	got := NewTimeline(nil).Cumulative(7)
	require.Empty(t, got.Days)
	require.NotNil(t, got.PerSender)
}

func TestRollingMean(t *testing.T) {
	req := require.New(t)
	req.Equal([]float64{1, 1.5, 2, 3, 4}, RollingMean([]int{1, 2, 3, 4, 5}, 3))
	req.Equal([]float64{1, 2}, RollingMean([]int{1, 2}, 0))
	req.Empty(RollingMean(nil, 7))
}

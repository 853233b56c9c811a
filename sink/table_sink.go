// Package sink renders a finished report: terminal tables for people,
// JSON or YAML documents for other programs.
package sink

import (
	"chat-lens/domain"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// TableSink prints the report as a sequence of titled tables.
type TableSink struct {
	out     io.Writer
	colours bool
	percent bool
}

func NewTableSink(out io.Writer, colours bool) TableSink {
	return TableSink{out: out, colours: colours}
}

// WithPercent prints reply shares instead of absolute reply counts.
func (s TableSink) WithPercent(percent bool) TableSink {
	s.percent = percent
	return s
}

func (s TableSink) Write(_ context.Context, report domain.Report) error {
	s.title("Overview")
	overview := s.table([]string{"Metric", "Value"})
	overview.AppendBulk([][]string{
		{"Language", report.Language},
		{"Messages", strconv.Itoa(report.Totals.Messages)},
		{"Words", strconv.Itoa(report.Totals.Words)},
		{"Media", strconv.Itoa(report.Totals.Media)},
		{"Links", strconv.Itoa(report.Totals.Links)},
		{"Emojis", strconv.Itoa(report.Totals.Emojis)},
		{"First message", report.Activity.First.Format("2006-01-02 15:04")},
		{"Last message", report.Activity.Last.Format("2006-01-02 15:04")},
		{"Days", strconv.Itoa(report.Activity.DurationDays)},
		{"Messages per day", fmt.Sprintf("%.2f", report.Activity.AvgPerDay)},
		{"Busiest day", fmt.Sprintf("%s (%d)", report.Activity.BusiestDay.Label, report.Activity.BusiestDay.Count)},
		{"Mean sentiment", fmt.Sprintf("%.2f", report.Sentiment.Mean)},
		{"Dropped lines", strconv.Itoa(report.Parse.DroppedOrphans + report.Parse.DroppedBadDates)},
	})
	overview.Render()

	s.title("Participation")
	s.Shares(report.Participation)

	s.title("Senders")
	senders := s.table([]string{"Sender", "Messages", "Words", "Avg words", "Emojis", "Links", "Media", "Sentiment"})
	for _, ss := range report.Senders {
		senders.Append([]string{
			ss.Sender,
			strconv.Itoa(ss.Messages),
			strconv.Itoa(ss.Words),
			fmt.Sprintf("%.1f", ss.AvgWords),
			strconv.Itoa(ss.Emojis),
			strconv.Itoa(ss.Links),
			strconv.Itoa(ss.Media),
			fmt.Sprintf("%.2f", ss.AvgSentiment),
		})
	}
	senders.Render()

	s.title("Top words")
	s.counts("Word", report.TopWords)
	s.title("Top emojis")
	s.counts("Emoji", report.TopEmojis)

	s.title("Top pairs")
	pairs := s.table([]string{"Sender", "Sender", "Exchanges"})
	for _, p := range report.Pairs {
		pairs.Append([]string{p.A, p.B, strconv.Itoa(p.Count)})
	}
	pairs.Render()

	if s.percent {
		s.title("Reply shares (%)")
		s.Matrix(report.ReplyShares, true)
	} else {
		s.title("Replies")
		s.Matrix(report.Replies, false)
	}
	s.title("Mentions")
	s.Matrix(report.Mentions, false)
	return nil
}

// Shares prints the per-sender message counts.
func (s TableSink) Shares(shares []domain.Share) {
	table := s.table([]string{"Sender", "Messages", "Share"})
	for _, sh := range shares {
		table.Append([]string{sh.Sender, strconv.Itoa(sh.Count), fmt.Sprintf("%.1f%%", sh.Percent)})
	}
	table.Render()
}

// Matrix prints a square matrix, rows being the From side.
func (s TableSink) Matrix(m domain.Matrix, percent bool) {
	table := s.table(append([]string{"From \\ To"}, m.Labels...))
	for i, label := range m.Labels {
		row := []string{label}
		for _, v := range m.Values[i] {
			if percent {
				row = append(row, fmt.Sprintf("%.1f", v))
			} else {
				row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
			}
		}
		table.Append(row)
	}
	table.Render()
}

func (s TableSink) counts(label string, counts []domain.Count) {
	table := s.table([]string{label, "Count"})
	for _, c := range counts {
		table.Append([]string{c.Label, strconv.Itoa(c.Count)})
	}
	table.Render()
}

func (s TableSink) title(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	_, _ = fmt.Fprintln(s.out, header)
}

func (s TableSink) table(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(s.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	return table
}

package domain

import "time"

// ParseStats describes what happened to every transcript line.
type ParseStats struct {
	Lines           int `json:"lines" yaml:"lines"`
	Messages        int `json:"messages" yaml:"messages"`
	Continuations   int `json:"continuations" yaml:"continuations"`
	DroppedOrphans  int `json:"dropped_orphans" yaml:"dropped_orphans"`
	DroppedBadDates int `json:"dropped_bad_dates" yaml:"dropped_bad_dates"`
}

type Totals struct {
	Messages int `json:"messages" yaml:"messages"`
	Words    int `json:"words" yaml:"words"`
	Media    int `json:"media" yaml:"media"`
	Links    int `json:"links" yaml:"links"`
	Emojis   int `json:"emojis" yaml:"emojis"`
}

// Count is a labelled frequency.
type Count struct {
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// Share is a sender's part of the conversation.
type Share struct {
	Sender  string  `json:"sender" yaml:"sender"`
	Count   int     `json:"count" yaml:"count"`
	Percent float64 `json:"percent" yaml:"percent"`
}

type Activity struct {
	First          time.Time  `json:"first" yaml:"first"`
	Last           time.Time  `json:"last" yaml:"last"`
	DurationDays   int        `json:"duration_days" yaml:"duration_days"`
	AvgPerDay      float64    `json:"avg_per_day" yaml:"avg_per_day"`
	BusiestDay     Count      `json:"busiest_day" yaml:"busiest_day"`
	ByHour         [24]int    `json:"by_hour" yaml:"by_hour"`
	ByWeekday      [7]int     `json:"by_weekday" yaml:"by_weekday"`
	ByDay          []Count    `json:"by_day" yaml:"by_day"`
	ByMonth        []Count    `json:"by_month" yaml:"by_month"`
	WeekdayHourMap [7][24]int `json:"weekday_hour" yaml:"weekday_hour"`
}

type SenderSummary struct {
	Sender        string            `json:"sender" yaml:"sender"`
	Messages      int               `json:"messages" yaml:"messages"`
	Words         int               `json:"words" yaml:"words"`
	AvgWords      float64           `json:"avg_words" yaml:"avg_words"`
	Emojis        int               `json:"emojis" yaml:"emojis"`
	Links         int               `json:"links" yaml:"links"`
	Media         int               `json:"media" yaml:"media"`
	LongestLength int               `json:"longest_length" yaml:"longest_length"`
	AvgSentiment  float64           `json:"avg_sentiment" yaml:"avg_sentiment"`
	Tones         map[ToneLabel]int `json:"tones" yaml:"tones"`
}

type SentimentSummary struct {
	Mean      float64            `json:"mean" yaml:"mean"`
	ByDay     map[string]float64 `json:"by_day" yaml:"by_day"`
	Histogram []Count            `json:"histogram" yaml:"histogram"`
}

// Timeline is the cumulative view of the conversation, one point per active day.
type Timeline struct {
	Days        []string         `json:"days" yaml:"days"`
	Cumulative  []int            `json:"cumulative" yaml:"cumulative"`
	PerSender   map[string][]int `json:"per_sender" yaml:"per_sender"`
	RollingMean []float64        `json:"rolling_mean" yaml:"rolling_mean"`
}

// PairCount counts adjacent exchanges between two senders, in either direction.
type PairCount struct {
	A     string `json:"a" yaml:"a"`
	B     string `json:"b" yaml:"b"`
	Count int    `json:"count" yaml:"count"`
}

// Report is everything a dashboard consumes for one transcript.
type Report struct {
	Language      string              `json:"language" yaml:"language"`
	Parse         ParseStats          `json:"parse" yaml:"parse"`
	Totals        Totals              `json:"totals" yaml:"totals"`
	Activity      Activity            `json:"activity" yaml:"activity"`
	Participation []Share             `json:"participation" yaml:"participation"`
	Senders       []SenderSummary     `json:"senders" yaml:"senders"`
	TopWords      []Count             `json:"top_words" yaml:"top_words"`
	TopEmojis     []Count             `json:"top_emojis" yaml:"top_emojis"`
	Kinds         map[MessageKind]int `json:"kinds" yaml:"kinds"`
	Sentiment     SentimentSummary    `json:"sentiment" yaml:"sentiment"`
	Timeline      Timeline            `json:"timeline" yaml:"timeline"`
	Pairs         []PairCount         `json:"pairs" yaml:"pairs"`
	Replies       Matrix              `json:"replies" yaml:"replies"`
	ReplyShares   Matrix              `json:"reply_shares" yaml:"reply_shares"`
	Mentions      Matrix              `json:"mentions" yaml:"mentions"`
}

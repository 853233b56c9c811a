package services

import (
	"chat-lens/contract"
	"chat-lens/domain"
	"chat-lens/features"
	"chat-lens/graph"
	"chat-lens/projection"
	"chat-lens/stats"
	"chat-lens/transcript"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

type IAnalyzerService interface {
	Analyze(ctx context.Context, r io.Reader) (Analysis, error)
	Publish(ctx context.Context, report domain.Report, sinks ...contract.ReportSink) error
}

type Options struct {
	ReplyWindow   time.Duration `validate:"gte=0"`
	Workers       int           `validate:"gte=1"`
	TopWords      int           `validate:"gte=1"`
	TopEmojis     int           `validate:"gte=1"`
	TopPairs      int           `validate:"gte=1"`
	MinWordLength int           `validate:"gte=1"`
	RollingWindow int           `validate:"gte=1"`
	Mention       graph.MentionOptions
}

func DefaultOptions() Options {
	return Options{
		ReplyWindow:   graph.DefaultReplyWindow,
		Workers:       4,
		TopWords:      20,
		TopEmojis:     10,
		TopPairs:      stats.DefaultTopPairs,
		MinWordLength: 4,
		RollingWindow: 7,
		Mention:       graph.DefaultMentionOptions(),
	}
}

// Analysis is one analyzed transcript: the enriched messages in file
// order and the report computed from them.
type Analysis struct {
	Messages []domain.Enriched
	Report   domain.Report
}

type AnalyzerService struct {
	log     *slog.Logger
	parser  transcript.Parser
	deriver features.Deriver
	opts    Options
	replies graph.ReplyBuilder
}

func NewAnalyzerService(log *slog.Logger, parser transcript.Parser, deriver features.Deriver, opts Options) (*AnalyzerService, error) {
	if err := validator.New().Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid analyzer options: %w", err)
	}
	replies, err := graph.NewReplyBuilder(opts.ReplyWindow, opts.Workers)
	if err != nil {
		return nil, err
	}
	opts.Mention.Workers = opts.Workers
	return &AnalyzerService{
		log:     log,
		parser:  parser,
		deriver: deriver,
		opts:    opts,
		replies: replies,
	}, nil
}

// Analyze parses r then derives features, both graphs and every statistic.
// An empty transcript surfaces errors.ErrEmptyTranscript.
func (s *AnalyzerService) Analyze(ctx context.Context, r io.Reader) (Analysis, error) {
	result, err := s.parser.Parse(ctx, r)
	if err != nil {
		return Analysis{}, err
	}
	messages := result.Messages

	var (
		enriched []domain.Enriched
		replies  domain.Edges
		mentions graph.MentionGraph
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		enriched, err = features.DeriveAll(gCtx, s.deriver, messages, s.opts.Workers)
		return err
	})
	g.Go(func() error {
		var err error
		replies, err = s.replies.Build(gCtx, messages)
		return err
	})
	g.Go(func() error {
		var err error
		mentions, err = graph.NewMentionBuilder(s.opts.Mention).Build(gCtx, messages)
		return err
	})
	if err := g.Wait(); err != nil {
		return Analysis{}, err
	}

	replyMatrix := graph.ReplyMatrix(messages, replies)
	language := stats.Language(enriched)
	report := domain.Report{
		Language:      language,
		Parse:         result.Stats,
		Totals:        stats.Totals(enriched),
		Activity:      stats.Activity(messages),
		Participation: stats.Participation(messages),
		Senders:       stats.Senders(enriched),
		TopWords:      stats.TopWords(enriched, language, s.opts.MinWordLength, s.opts.TopWords),
		TopEmojis:     stats.TopEmojis(enriched, s.opts.TopEmojis),
		Kinds:         stats.Kinds(enriched),
		Sentiment:     stats.Sentiment(enriched),
		Timeline:      projection.NewTimeline(messages).Cumulative(s.opts.RollingWindow),
		Pairs:         stats.TopPairs(messages, s.opts.TopPairs),
		Replies:       replyMatrix,
		ReplyShares:   replyMatrix.RowPercentages(),
		Mentions:      mentions.Matrix(),
	}

	s.log.Debug("Transcript analyzed",
		"messages", len(messages),
		"senders", len(report.Participation),
		"language", language,
		"replies", replyMatrix.Total(),
		"mentions", report.Mentions.Total(),
	)
	return Analysis{Messages: enriched, Report: report}, nil
}

// Publish hands the report to every sink, stopping at the first failure.
func (s *AnalyzerService) Publish(ctx context.Context, report domain.Report, sinks ...contract.ReportSink) error {
	for _, sink := range sinks {
		if err := sink.Write(ctx, report); err != nil {
			return fmt.Errorf("report sink failed: %w", err)
		}
	}
	return nil
}

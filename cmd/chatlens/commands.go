package main

import (
	"chat-lens/contract"
	"chat-lens/features"
	"chat-lens/graph"
	"chat-lens/internal"
	"chat-lens/lexicon"
	"chat-lens/observability"
	"chat-lens/services"
	"chat-lens/sink"
	"chat-lens/stats"
	"chat-lens/transcript"
	"log/slog"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/cobra"
)

// app carries what every command needs once the configuration is loaded.
type app struct {
	config internal.Config
	log    *slog.Logger
	parser transcript.Parser
}

func newApp() (*app, error) {
	config, err := internal.LoadConfig()
	if err != nil {
		return nil, err
	}
	loc, err := config.Location()
	if err != nil {
		return nil, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	return &app{
		config: config,
		log:    log,
		parser: transcript.NewParser(log, transcript.NewNormalizer(config.CenturyPivot, loc)),
	}, nil
}

// options builds the pipeline options from the config. A --window flag set
// on cmd, zero included, replaces REPLY_WINDOW.
func (a *app) options(cmd *cobra.Command, window time.Duration) services.Options {
	opts := services.Options{
		ReplyWindow:   a.config.ReplyWindow,
		Workers:       a.config.Workers,
		TopWords:      a.config.TopWords,
		TopEmojis:     a.config.TopEmojis,
		TopPairs:      stats.DefaultTopPairs,
		MinWordLength: a.config.MinWordLength,
		RollingWindow: a.config.RollingWindow,
		Mention: graph.MentionOptions{
			TokenCap:       a.config.MentionTokenCap,
			MinTokenLength: a.config.MentionMinTokenLength,
			Dedup:          a.config.MentionDedup,
			Workers:        a.config.Workers,
		},
	}
	if cmd.Flags().Changed("window") {
		opts.ReplyWindow = window
	}
	return opts
}

// analyze runs the whole pipeline over the transcript at path.
func (a *app) analyze(cmd *cobra.Command, path string, window time.Duration) (services.Analysis, error) {
	probe, err := observability.NewProbe(a.log)
	if err != nil {
		return services.Analysis{}, err
	}
	scorer, err := lexicon.NewSentimentScorer()
	if err != nil {
		return services.Analysis{}, err
	}
	classifier, err := lexicon.NewToneClassifier(lexicon.DefaultToneTable)
	if err != nil {
		return services.Analysis{}, err
	}
	service, err := services.NewAnalyzerService(a.log, a.parser, features.NewDeriver(scorer, classifier), a.options(cmd, window))
	if err != nil {
		return services.Analysis{}, err
	}

	file, err := transcript.Open(path)
	if err != nil {
		return services.Analysis{}, err
	}
	defer func() { _ = file.Close() }()

	analysis, err := service.Analyze(cmd.Context(), file)
	if err != nil {
		return services.Analysis{}, err
	}
	probe.Log("analyze")
	return analysis, nil
}

func newRootCommand() *cobra.Command {
	var a *app
	root := &cobra.Command{
		Use:           "chatlens",
		Short:         "Analyze exported chat transcripts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = newApp()
			return err
		},
	}
	get := func() *app { return a }
	root.AddCommand(
		newCountCommand(get),
		newReportCommand(get),
		newRepliesCommand(get),
		newMentionsCommand(get),
		newQuizCommand(get),
	)
	return root
}

func newCountCommand(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count <file>",
		Short: "Print the number of messages per sender",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			file, err := transcript.Open(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = file.Close() }()

			result, err := a.parser.Parse(cmd.Context(), file)
			if err != nil {
				return err
			}
			sink.NewTableSink(cmd.OutOrStdout(), a.config.Colours).Shares(stats.Participation(result.Messages))
			return nil
		},
	}
}

func newReportCommand(get func() *app) *cobra.Command {
	var (
		output string
		window time.Duration
	)
	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Print every statistic of a transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			format, err := sink.ParseFormat(output)
			if err != nil {
				return err
			}
			analysis, err := a.analyze(cmd, args[0], window)
			if err != nil {
				return err
			}

			var reportSink contract.ReportSink = sink.NewTableSink(cmd.OutOrStdout(), a.config.Colours)
			if format != sink.FormatTable {
				if reportSink, err = sink.NewDocumentSink(cmd.OutOrStdout(), format); err != nil {
					return err
				}
			}
			return reportSink.Write(cmd.Context(), analysis.Report)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", string(sink.FormatTable), "Output format: table, json or yaml")
	cmd.Flags().DurationVar(&window, "window", 0, "Reply window, overrides REPLY_WINDOW")
	return cmd
}

func newRepliesCommand(get func() *app) *cobra.Command {
	var (
		percent bool
		window  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "replies <file>",
		Short: "Print who replies to whom",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			analysis, err := a.analyze(cmd, args[0], window)
			if err != nil {
				return err
			}
			matrix := analysis.Report.Replies
			if percent {
				matrix = analysis.Report.ReplyShares
			}
			sink.NewTableSink(cmd.OutOrStdout(), a.config.Colours).Matrix(matrix, percent)
			return nil
		},
	}
	cmd.Flags().BoolVar(&percent, "percent", false, "Print row percentages instead of counts")
	cmd.Flags().DurationVar(&window, "window", 0, "Reply window, overrides REPLY_WINDOW")
	return cmd
}

func newMentionsCommand(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mentions <file>",
		Short: "Print who mentions whom",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			analysis, err := a.analyze(cmd, args[0], 0)
			if err != nil {
				return err
			}
			sink.NewTableSink(cmd.OutOrStdout(), a.config.Colours).Matrix(analysis.Report.Mentions, false)
			return nil
		},
	}
}

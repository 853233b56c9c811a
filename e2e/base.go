package e2e

import (
	"chat-lens/features"
	"chat-lens/lexicon"
	"chat-lens/services"
	"chat-lens/sink"
	"chat-lens/transcript"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BasePipelineSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BasePipelineSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

// Header prints a colorized step header in the test log
func (s *BasePipelineSuite) Header(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// WithTranscript writes content to a temporary export and hands its path to fn.
// E2E_TRANSCRIPT replaces the generated content with a real export.
func (s *BasePipelineSuite) WithTranscript(name string, content []byte, fn func(ctx context.Context, path string)) {
	s.Header(name)
	path := s.Config.Transcript
	if path == "" {
		path = filepath.Join(s.T().TempDir(), "transcript.txt")
		s.Require().NoError(os.WriteFile(path, content, 0o600))
	}
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fn(ctx, path)
}

// Analyze runs the full pipeline with the default lexicons.
func (s *BasePipelineSuite) Analyze(ctx context.Context, path string, workers int) services.Analysis {
	log := logs.GetLoggerFromLevel(slog.LevelInfo)
	scorer, err := lexicon.NewSentimentScorer()
	s.Require().NoError(err)
	classifier, err := lexicon.NewToneClassifier(lexicon.DefaultToneTable)
	s.Require().NoError(err)

	opts := services.DefaultOptions()
	opts.Workers = workers
	parser := transcript.NewParser(log, transcript.NewNormalizer(transcript.DefaultCenturyPivot, time.UTC))
	service, err := services.NewAnalyzerService(log, parser, features.NewDeriver(scorer, classifier), opts)
	s.Require().NoError(err)

	file, err := transcript.Open(path)
	s.Require().NoError(err)
	defer func() { _ = file.Close() }()

	start := time.Now()
	analysis, err := service.Analyze(ctx, file)
	s.Require().NoError(err)
	s.T().Logf("Analyzed %d messages with %d workers in %v", len(analysis.Messages), workers, time.Since(start))

	if s.Config.DebugJSON {
		var out strings.Builder
		document, err := sink.NewDocumentSink(&out, sink.FormatJSON)
		s.Require().NoError(err)
		s.Require().NoError(document.Write(ctx, analysis.Report))
		s.T().Log(out.String())
	}
	return analysis
}

package observability

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestProbe_Usage(t *testing.T) {
	req := require.New(t)
	probe, err := NewProbe(logs.GetLoggerFromLevel(slog.LevelDebug))
	req.NoError(err)

	usage, err := probe.Usage()

	req.NoError(err)
	req.Positive(usage.RSSBytes)
	req.Positive(usage.AllocBytes)
	req.Positive(usage.Goroutines)
	probe.Log("test")
}

package main

import (
	"bytes"
	"chat-lens/errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const chat = `1/1/23, 10:00 - Ana: Hola Bob, lunch today?
1/1/23, 10:05 - Bob: sure ana
see you at noon
1/1/23, 10:30 - Ana: <Media omitted>
1/1/23, 10:31 - Bob: https://maps.example.com/place
2/1/23, 09:00 - Cid: morning everyone
2/1/23, 09:02 - Ana: morning cid
`

func writeTranscript(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "chat.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Setenv("COLOURS", "false")
	t.Setenv("LOG_LEVEL", "ERROR")
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCountCommand(t *testing.T) {
	req := require.New(t)
	path := writeTranscript(t, chat)

	out, err := execute(t, "", "count", path)

	req.NoError(err)
	req.Contains(out, "Ana")
	req.Contains(out, "50.0%")
}

func TestCountCommand_EmptyTranscript(t *testing.T) {
	path := writeTranscript(t, "nothing to see here\n")

	_, err := execute(t, "", "count", path)

	require.ErrorIs(t, err, errors.ErrEmptyTranscript)
}

func TestReportCommand_Formats(t *testing.T) {
	testCases := []struct {
		name   string
		format string
		want   string
	}{
		{name: "table", format: "table", want: "====== Participation ======"},
		{name: "json", format: "json", want: `"participation"`},
		{name: "yaml", format: "yaml", want: "participation:"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTranscript(t, chat)
			out, err := execute(t, "", "report", path, "-o", tc.format)
			require.NoError(t, err)
			require.Contains(t, out, tc.want)
		})
	}
}

func TestReportCommand_UnknownFormat(t *testing.T) {
	path := writeTranscript(t, chat)

	_, err := execute(t, "", "report", path, "-o", "xml")

	require.ErrorIs(t, err, errors.ErrUnknownFormat)
}

func TestRepliesCommand(t *testing.T) {
	req := require.New(t)
	path := writeTranscript(t, chat)

	out, err := execute(t, "", "replies", path, "--percent")

	req.NoError(err)
	req.Contains(out, "100.0")
	req.Contains(out, "Cid")
}

func TestRepliesCommand_WindowFlag(t *testing.T) {
	t.Run("Zero window only keeps same minute replies", func(t *testing.T) {
		req := require.New(t)
		path := writeTranscript(t, chat)

		out, err := execute(t, "", "replies", path, "--percent", "--window", "0")

		req.NoError(err)
		req.NotContains(out, "100.0")
	})

	t.Run("Negative window is rejected", func(t *testing.T) {
		path := writeTranscript(t, chat)

		_, err := execute(t, "", "replies", path, "--window=-1m")

		require.Error(t, err)
	})
}

func TestMentionsCommand(t *testing.T) {
	req := require.New(t)
	path := writeTranscript(t, chat)

	out, err := execute(t, "", "mentions", path)

	req.NoError(err)
	req.Contains(out, "Bob")
}

func TestQuizCommand(t *testing.T) {
	req := require.New(t)
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&sb, "1/1/23, 10:%02d - Ana: ana message number %d\n", i, i)
		fmt.Fprintf(&sb, "1/1/23, 11:%02d - Bob: bob message number %d\n", i, i)
	}
	path := writeTranscript(t, sb.String())
	t.Setenv("QUIZ_QUESTIONS", "3")

	out, err := execute(t, "x\n1\n1\n1\n", "quiz", path, "--seed", "42")

	req.NoError(err)
	req.Contains(out, "Question 1/3")
	req.Contains(out, "Pick a number between 1 and 2")
	req.Contains(out, "Score: ")
	req.Contains(out, "/3")
}

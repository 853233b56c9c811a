package main

import (
	"bufio"
	"chat-lens/quiz"
	"chat-lens/transcript"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

func newQuizCommand(get func() *app) *cobra.Command {
	var seed uint64
	cmd := &cobra.Command{
		Use:   "quiz <file>",
		Short: "Play \"who said this?\" in the terminal",
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

			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}
			opts := quiz.DefaultOptions()
			opts.Questions = a.config.QuizQuestions
			opts.MinMessages = a.config.QuizMinMessages
			state, err := quiz.NewGame(result.Messages, opts, rand.New(rand.NewPCG(seed, seed)))
			if err != nil {
				return err
			}
			return play(cmd, state, a.config.Colours)
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed of the question draw, random when 0")
	return cmd
}

// play asks every question on the command output and reads answers,
// one option number per line, from its input.
func play(cmd *cobra.Command, state quiz.State, colours bool) error {
	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())
	for !state.Finished() {
		q, err := quiz.Current(state)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "\nQuestion %d/%d: who said this?\n  %q\n", state.Current+1, len(state.Questions), q.Body)
		for i, option := range q.Options {
			_, _ = fmt.Fprintf(out, "  %d) %s\n", i+1, option)
		}

		choice := ""
		for choice == "" {
			_, _ = fmt.Fprint(out, "> ")
			if !in.Scan() {
				return in.Err()
			}
			n, err := strconv.Atoi(strings.TrimSpace(in.Text()))
			if err != nil || n < 1 || n > len(q.Options) {
				_, _ = fmt.Fprintf(out, "Pick a number between 1 and %d\n", len(q.Options))
				continue
			}
			choice = q.Options[n-1]
		}

		var correct bool
		if state, correct, err = quiz.Answer(state, choice); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, verdict(correct, q.Answer, colours))
	}
	_, _ = fmt.Fprintf(out, "\nScore: %d/%d\n", state.Score, state.Answered)
	return nil
}

func verdict(correct bool, answer string, colours bool) string {
	text, style := "Right!", color.New(color.FgGreen)
	if !correct {
		text, style = "Wrong, it was "+answer, color.New(color.FgRed)
	}
	if colours {
		return style.Render(text)
	}
	return text
}

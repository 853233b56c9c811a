// Package quiz runs the "who said this?" game over a transcript.
// The game state belongs to the caller; every function takes a State and
// returns the next one.
package quiz

import (
	"chat-lens/domain"
	"chat-lens/errors"
	"chat-lens/features"
	"fmt"
	"math/rand/v2"
	"sort"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

type Options struct {
	Questions   int `validate:"gte=1"`
	MinMessages int `validate:"gte=0"`
	MinLength   int `validate:"gte=1"`
	MaxLength   int `validate:"gtefield=MinLength"`
	Choices     int `validate:"gte=2"`
}

func DefaultOptions() Options {
	return Options{
		Questions:   10,
		MinMessages: 5,
		MinLength:   10,
		MaxLength:   100,
		Choices:     3,
	}
}

type Question struct {
	Body    string
	Options []string
	Answer  string
}

type State struct {
	Questions []Question
	Current   int
	Score     int
	Answered  int
}

func (s State) Finished() bool {
	return s.Current >= len(s.Questions)
}

// NewGame draws questions from text messages whose sender wrote more than
// opts.MinMessages messages. rnd drives every draw, so a seeded source
// replays the same game.
func NewGame(messages []domain.Message, opts Options, rnd *rand.Rand) (State, error) {
	if err := validator.New().Struct(opts); err != nil {
		return State{}, fmt.Errorf("invalid quiz options: %w", err)
	}
	counts := make(map[string]int)
	for _, m := range messages {
		counts[m.Sender]++
	}
	var players []string
	for sender, n := range counts {
		if n > opts.MinMessages {
			players = append(players, sender)
		}
	}
	if len(players) < 2 {
		return State{}, errors.ErrNotEnoughPlayers
	}
	sort.Strings(players)

	eligible := make(map[string]struct{}, len(players))
	for _, p := range players {
		eligible[p] = struct{}{}
	}
	var samples []domain.Message
	for _, m := range messages {
		if _, ok := eligible[m.Sender]; !ok {
			continue
		}
		if features.Kind(m.Body) != domain.KindText {
			continue
		}
		if n := utf8.RuneCountInString(m.Body); n < opts.MinLength || n > opts.MaxLength {
			continue
		}
		samples = append(samples, m)
	}
	if len(samples) == 0 {
		return State{}, errors.ErrNotEnoughPlayers
	}

	picks := rnd.Perm(len(samples))
	picks = picks[:min(opts.Questions, len(picks))]
	state := State{Questions: make([]Question, 0, len(picks))}
	for _, i := range picks {
		state.Questions = append(state.Questions, question(samples[i], players, opts.Choices, rnd))
	}
	return state, nil
}

func question(m domain.Message, players []string, choices int, rnd *rand.Rand) Question {
	others := make([]string, 0, len(players)-1)
	for _, p := range players {
		if p != m.Sender {
			others = append(others, p)
		}
	}
	rnd.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })

	options := append([]string{m.Sender}, others[:min(choices-1, len(others))]...)
	rnd.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	return Question{Body: m.Body, Options: options, Answer: m.Sender}
}

// Current returns the question awaiting an answer.
func Current(state State) (Question, error) {
	if state.Finished() {
		return Question{}, errors.ErrQuizFinished
	}
	return state.Questions[state.Current], nil
}

// Answer scores choice against the current question and moves on.
func Answer(state State, choice string) (State, bool, error) {
	q, err := Current(state)
	if err != nil {
		return state, false, err
	}
	correct := choice == q.Answer
	next := state
	next.Current++
	next.Answered++
	if correct {
		next.Score++
	}
	return next, correct, nil
}

package internal

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel              string        `env:"LOG_LEVEL,default=INFO"`
	ReplyWindow           time.Duration `env:"REPLY_WINDOW,default=10m" validate:"gte=0"`
	Workers               int           `env:"WORKERS,default=4" validate:"gte=1,lte=256"`
	TopWords              int           `env:"TOP_WORDS,default=20" validate:"gte=1"`
	TopEmojis             int           `env:"TOP_EMOJIS,default=10" validate:"gte=1"`
	MinWordLength         int           `env:"MIN_WORD_LENGTH,default=4" validate:"gte=1"`
	RollingWindow         int           `env:"ROLLING_WINDOW,default=7" validate:"gte=1"`
	MentionTokenCap       int           `env:"MENTION_TOKEN_CAP,default=5" validate:"gte=1"`
	MentionMinTokenLength int           `env:"MENTION_MIN_TOKEN_LENGTH,default=1" validate:"gte=1"`
	MentionDedup          bool          `env:"MENTION_DEDUP,default=false"`
	CenturyPivot          int           `env:"CENTURY_PIVOT,default=50" validate:"gte=0,lte=100"`
	Timezone              string        `env:"TIMEZONE,default=UTC" validate:"timezone"`
	QuizQuestions         int           `env:"QUIZ_QUESTIONS,default=10" validate:"gte=1"`
	QuizMinMessages       int           `env:"QUIZ_MIN_MESSAGES,default=5" validate:"gte=0"`
	Colours               bool          `env:"COLOURS,default=true"`
}

// LoadConfig reads an optional .env file then the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// Location resolves Timezone, which naive transcript times are read in.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

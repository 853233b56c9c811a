package errors

import "fmt"

var (
	ErrEmptyTranscript  = fmt.Errorf("no messages have been parsed")
	ErrDateParse        = fmt.Errorf("unparseable date")
	ErrNotPlainText     = fmt.Errorf("transcript is not a plain text file")
	ErrInvalidWindow    = fmt.Errorf("reply window must not be negative")
	ErrNotEnoughPlayers = fmt.Errorf("at least two eligible senders are needed")
	ErrQuizFinished     = fmt.Errorf("no question left")
	ErrUnknownFormat    = fmt.Errorf("unknown output format")
	ErrEmptyWordList    = fmt.Errorf("no word list found")
)

// DateParseError reports a (date, time) pair that neither date layout accepts.
type DateParseError struct {
	Date string
	Time string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("unparseable date %q %q", e.Date, e.Time)
}

func (e *DateParseError) Is(target error) bool {
	return target == ErrDateParse
}

package radixblitz

import (
	"fmt"
	"math/rand"
	"strings"
)

// Key is one of the sixteen keypad symbols: 0-9, A-D, * and #.
type Key rune

const (
	// KeyStar submits the current answer.
	KeyStar Key = '*'
	// KeyHash deletes the last typed symbol.
	KeyHash Key = '#'
)

type numberBase int

const (
	baseHex numberBase = iota
	baseDec
	baseBin
)

func (b numberBase) String() string {
	switch b {
	case baseHex:
		return "HEX"
	case baseDec:
		return "DEC"
	default:
		return "BIN"
	}
}

// The three parallel renderings of the same ten values. Hex entries
// stick to digits the keypad carries (0-9, A-D), so no E or F.
var hexTable = [10]string{"A3", "1C", "2C", "4D", "78", "AB", "9", "3A", "C9", "92"}
var decTable = [10]string{"163", "28", "44", "77", "120", "171", "9", "58", "201", "146"}
var binTable = [10]string{"10100011", "11100", "101100", "1001101", "1111000", "10101011", "1001", "111010", "11001001", "10010010"}

func tableFor(b numberBase) [10]string {
	switch b {
	case baseHex:
		return hexTable
	case baseDec:
		return decTable
	default:
		return binTable
	}
}

type question struct {
	index int
	from  numberBase
	to    numberBase
}

// prompt fits the top LCD line: the longest case is a "BIN>DEC" prompt
// with an eight digit value, exactly sixteen columns.
func (q question) prompt() string {
	return fmt.Sprintf("%s>%s %s", q.from, q.to, tableFor(q.from)[q.index])
}

func (q question) answer() string {
	return tableFor(q.to)[q.index]
}

func nextQuestion(rng *rand.Rand) question {
	from := numberBase(rng.Intn(3))
	to := numberBase(rng.Intn(2))
	if to >= from {
		to++
	}
	return question{
		index: rng.Intn(len(decTable)),
		from:  from,
		to:    to,
	}
}

type answerEvent int

const (
	answerNone answerEvent = iota
	answerCorrect
	answerWrong
)

// session is one ten question play-through. It owns no display or
// storage; it just turns keypad symbols into a final score.
type session struct {
	rng *rand.Rand

	score   int
	asked   int
	current question
	input   string

	lastAnswer string
}

// NewSession starts a fresh round.
func NewSession(rng *rand.Rand) *session {
	session := &session{rng: rng}
	session.current = nextQuestion(rng)
	return session
}

// Apply feeds one keypad symbol into the session. Symbols append to the
// answer buffer, # deletes, * submits. Submitting an empty buffer does
// nothing, as does deleting from one.
func (s *session) Apply(key Key) answerEvent {
	switch key {
	case KeyStar:
		if s.input == "" {
			return answerNone
		}

		event := answerWrong
		if strings.TrimSpace(s.input) == s.current.answer() {
			s.score++
			event = answerCorrect
		}

		s.lastAnswer = s.current.answer()
		s.asked++
		s.input = ""
		if !s.Done() {
			s.current = nextQuestion(s.rng)
		}
		return event

	case KeyHash:
		if s.input != "" {
			s.input = s.input[:len(s.input)-1]
		}

	default:
		if len(s.input) < lcdCols {
			s.input += string(rune(key))
		}
	}

	return answerNone
}

// Lines is what the LCD shows mid-question: prompt up top, the answer
// buffer below.
func (s *session) Lines() (string, string) {
	return s.current.prompt(), s.input
}

// LastAnswer is the expected answer to the most recently submitted
// question, shown after a wrong guess.
func (s *session) LastAnswer() string {
	return s.lastAnswer
}

func (s *session) Score() int {
	return s.score
}

// Asked counts fully answered questions.
func (s *session) Asked() int {
	return s.asked
}

func (s *session) Done() bool {
	return s.asked >= questionsPerSession
}

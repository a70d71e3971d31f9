package radixblitz

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSession pins the current question so input handling can be
// tested without steering the rng.
func fixedSession(q question) *session {
	return &session{
		rng:     rand.New(rand.NewSource(1)),
		current: q,
	}
}

func typeAnswer(s *session, answer string) answerEvent {
	for _, r := range answer {
		s.Apply(Key(r))
	}
	return s.Apply(KeyStar)
}

func TestTablesAgree(t *testing.T) {
	for i := range decTable {
		dec, err := strconv.ParseInt(decTable[i], 10, 64)
		require.NoError(t, err)

		hex, err := strconv.ParseInt(hexTable[i], 16, 64)
		require.NoError(t, err)
		assert.Equal(t, dec, hex, "entry %d: hex %s != dec %s", i, hexTable[i], decTable[i])

		bin, err := strconv.ParseInt(binTable[i], 2, 64)
		require.NoError(t, err)
		assert.Equal(t, dec, bin, "entry %d: bin %s != dec %s", i, binTable[i], decTable[i])
	}
}

func TestHexTableOnlyUsesKeypadDigits(t *testing.T) {
	for _, entry := range hexTable {
		for _, r := range entry {
			assert.True(t, strings.ContainsRune("0123456789ABCD", r),
				"%q is not typeable on the keypad", entry)
		}
	}
}

func TestPromptsFitTheDisplay(t *testing.T) {
	bases := []numberBase{baseHex, baseDec, baseBin}
	for i := range decTable {
		for _, from := range bases {
			for _, to := range bases {
				if from == to {
					continue
				}
				q := question{index: i, from: from, to: to}
				assert.LessOrEqual(t, len(q.prompt()), lcdCols, "prompt %q", q.prompt())
				assert.LessOrEqual(t, len(q.answer()), lcdCols, "answer %q", q.answer())
			}
		}
	}
}

func TestApply_CorrectAnswerScores(t *testing.T) {
	s := fixedSession(question{index: 0, from: baseDec, to: baseHex})

	line1, line2 := s.Lines()
	assert.Equal(t, "DEC>HEX 163", line1)
	assert.Equal(t, "", line2)

	event := typeAnswer(s, "A3")

	assert.Equal(t, answerCorrect, event)
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, 1, s.Asked())
}

func TestApply_WrongAnswerKeepsExpectedForFeedback(t *testing.T) {
	s := fixedSession(question{index: 0, from: baseDec, to: baseHex})

	event := typeAnswer(s, "99")

	assert.Equal(t, answerWrong, event)
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 1, s.Asked())
	assert.Equal(t, "A3", s.LastAnswer())
}

func TestApply_HashBackspaces(t *testing.T) {
	s := fixedSession(question{index: 0, from: baseDec, to: baseHex})

	s.Apply('A')
	s.Apply('B')
	s.Apply(KeyHash)
	s.Apply('3')

	_, line2 := s.Lines()
	assert.Equal(t, "A3", line2)
	assert.Equal(t, answerCorrect, s.Apply(KeyStar))
}

func TestApply_HashOnEmptyBufferIsANoop(t *testing.T) {
	s := fixedSession(question{index: 0, from: baseDec, to: baseHex})

	assert.Equal(t, answerNone, s.Apply(KeyHash))

	_, line2 := s.Lines()
	assert.Equal(t, "", line2)
}

func TestApply_StarOnEmptyBufferIsIgnored(t *testing.T) {
	s := fixedSession(question{index: 0, from: baseDec, to: baseHex})

	assert.Equal(t, answerNone, s.Apply(KeyStar))
	assert.Equal(t, 0, s.Asked())
}

func TestApply_InputStopsAtTheDisplayEdge(t *testing.T) {
	s := fixedSession(question{index: 0, from: baseDec, to: baseBin})

	for i := 0; i < lcdCols+10; i++ {
		s.Apply('1')
	}

	_, line2 := s.Lines()
	assert.Len(t, line2, lcdCols)
}

func TestSessionEndsAfterTenQuestions(t *testing.T) {
	s := NewSession(rand.New(rand.NewSource(42)))

	for !s.Done() {
		event := typeAnswer(s, s.current.answer())
		require.Equal(t, answerCorrect, event)
	}

	assert.Equal(t, questionsPerSession, s.Asked())
	assert.Equal(t, questionsPerSession, s.Score())
}

func TestNextQuestionPicksDistinctBases(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 500; i++ {
		q := nextQuestion(rng)
		assert.NotEqual(t, q.from, q.to)
		assert.GreaterOrEqual(t, q.index, 0)
		assert.Less(t, q.index, len(decTable))
	}
}

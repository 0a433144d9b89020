package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	questions []Question
	failAfter int // fail on the nth call (1-based), 0 = never
	calls     int
}

func (s *stubSource) FetchQuestion(ctx context.Context, topic string) (*Question, error) {
	s.calls++
	if s.failAfter > 0 && s.calls >= s.failAfter {
		return nil, errors.New("upstream down")
	}
	q := s.questions[(s.calls-1)%len(s.questions)]
	return &q, nil
}

type stubSaver struct {
	saved *Result
	err   error
}

func (s *stubSaver) SaveResult(ctx context.Context, result *Result) error {
	s.saved = result
	return s.err
}

func fiveQuestions() []Question {
	qs := make([]Question, QuestionsPerQuiz)
	for i := range qs {
		qs[i] = Question{
			Question:    fmt.Sprintf("Q%d", i+1),
			Answer:      fmt.Sprintf("A%d", i+1),
			Options:     []string{fmt.Sprintf("A%d", i+1), "B", "C", "D"},
			Explanation: "because",
		}
	}
	return qs
}

func waitForSave(t *testing.T, e *Engine) {
	t.Helper()
	select {
	case <-e.saveDone:
	case <-time.After(2 * time.Second):
		t.Fatal("save did not finish")
	}
}

func TestStartFetchesFiveQuestions(t *testing.T) {
	src := &stubSource{questions: fiveQuestions()}
	e := New(src)

	require.Equal(t, StateSelectingTopic, e.State())
	require.NoError(t, e.Start(context.Background(), "Mathematics"))

	assert.Equal(t, StateInProgress, e.State())
	assert.Equal(t, QuestionsPerQuiz, src.calls)
	assert.Equal(t, 0, e.CurrentIndex())
	assert.Equal(t, "Q1", e.CurrentQuestion().Question)
}

func TestStartAbortsOnFirstFetchError(t *testing.T) {
	src := &stubSource{questions: fiveQuestions(), failAfter: 3}
	e := New(src)

	err := e.Start(context.Background(), "Physics")
	require.Error(t, err)
	assert.Equal(t, StateError, e.State())
	// sequential fetch stops at the failing call
	assert.Equal(t, 3, src.calls)

	// retry from the error state succeeds once the source recovers
	src.failAfter = 0
	src.calls = 0
	require.NoError(t, e.Start(context.Background(), "Physics"))
	assert.Equal(t, StateInProgress, e.State())
}

func TestNextRejectsEmptyAnswer(t *testing.T) {
	e := New(&stubSource{questions: fiveQuestions()})
	require.NoError(t, e.Start(context.Background(), "Chemistry"))

	err := e.Next()
	assert.ErrorIs(t, err, ErrNoAnswerSelected)
	assert.Equal(t, 0, e.CurrentIndex())
	assert.Equal(t, StateInProgress, e.State())
}

func TestPreviousRestoresCommittedAnswer(t *testing.T) {
	e := New(&stubSource{questions: fiveQuestions()})
	require.NoError(t, e.Start(context.Background(), "Biology"))

	e.SelectAnswer("A1")
	require.NoError(t, e.Next())
	assert.Equal(t, 1, e.CurrentIndex())
	assert.Equal(t, "", e.SelectedAnswer())

	e.Previous()
	assert.Equal(t, 0, e.CurrentIndex())
	assert.Equal(t, "A1", e.SelectedAnswer())

	// at the first question Previous is a no-op
	e.Previous()
	assert.Equal(t, 0, e.CurrentIndex())
}

func TestCompleteScoresByExactEquality(t *testing.T) {
	saver := &stubSaver{}
	e := New(&stubSource{questions: fiveQuestions()}, WithSaver(saver), WithUserID("user-1"))
	require.NoError(t, e.Start(context.Background(), "English"))

	// three exact matches, one case mismatch, one wrong
	answers := []string{"A1", "A2", "a3", "D", "A5"}
	for _, a := range answers {
		e.SelectAnswer(a)
		require.NoError(t, e.Next())
	}

	require.Equal(t, StateCompleted, e.State())
	result := e.Result()
	require.NotNil(t, result)
	assert.Equal(t, 3, result.Score)
	assert.Equal(t, QuestionsPerQuiz, result.TotalQuestions)
	assert.Equal(t, answers, result.UserAnswers)
	assert.Equal(t, "user-1", result.UserID)
	assert.False(t, result.CompletedAt.IsZero())

	waitForSave(t, e)
	require.NotNil(t, saver.saved)
	assert.Equal(t, 3, saver.saved.Score)
}

func TestSaveFailureDoesNotAffectResult(t *testing.T) {
	saver := &stubSaver{err: errors.New("db down")}
	e := New(&stubSource{questions: fiveQuestions()}, WithSaver(saver))
	require.NoError(t, e.Start(context.Background(), "History"))

	for i := 0; i < QuestionsPerQuiz; i++ {
		e.SelectAnswer("X")
		require.NoError(t, e.Next())
	}

	waitForSave(t, e)
	assert.Equal(t, StateCompleted, e.State())
	assert.NotNil(t, e.Result())
	assert.NoError(t, e.Err())
}

func TestRetakeRerunsSameTopic(t *testing.T) {
	src := &stubSource{questions: fiveQuestions()}
	e := New(src)
	require.NoError(t, e.Start(context.Background(), "Geography"))

	for i := 0; i < QuestionsPerQuiz; i++ {
		e.SelectAnswer("A1")
		require.NoError(t, e.Next())
	}
	waitForSave(t, e)
	require.Equal(t, StateCompleted, e.State())

	require.NoError(t, e.Retake(context.Background()))
	assert.Equal(t, StateInProgress, e.State())
	assert.Equal(t, "Geography", e.Topic())
	assert.Equal(t, 0, e.CurrentIndex())
	assert.Nil(t, e.Result())
}

func TestResetReturnsToTopicSelection(t *testing.T) {
	e := New(&stubSource{questions: fiveQuestions()})
	require.NoError(t, e.Start(context.Background(), "Economics"))
	e.SelectAnswer("A1")
	require.NoError(t, e.Next())

	e.Reset()
	assert.Equal(t, StateSelectingTopic, e.State())
	assert.Equal(t, "", e.Topic())
	assert.Nil(t, e.CurrentQuestion())

	// starting mid-run is rejected
	e2 := New(&stubSource{questions: fiveQuestions()})
	require.NoError(t, e2.Start(context.Background(), "Art"))
	assert.ErrorIs(t, e2.Start(context.Background(), "Music"), ErrNotSelecting)
}

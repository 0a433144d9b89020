package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// QuestionsPerQuiz is fixed: every quiz run fetches exactly this many
// questions, one request each.
const QuestionsPerQuiz = 5

const saveTimeout = 10 * time.Second

type State int

const (
	StateSelectingTopic State = iota
	StateLoading
	StateInProgress
	StateCompleted
	StateError
)

func (s State) String() string {
	switch s {
	case StateSelectingTopic:
		return "selecting_topic"
	case StateLoading:
		return "loading"
	case StateInProgress:
		return "in_progress"
	case StateCompleted:
		return "completed"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

var (
	// ErrNoAnswerSelected is the rejected Next() transition while the pending
	// answer is empty: an unanswered question cannot be advanced past.
	ErrNoAnswerSelected = errors.New("no answer selected")
	ErrNotInProgress    = errors.New("quiz is not in progress")
	ErrNotSelecting     = errors.New("quiz already started")
)

// Result is the locally held outcome of a completed quiz. It exists whether
// or not the backend write succeeded.
type Result struct {
	Topic          string
	Score          int
	TotalQuestions int
	UserAnswers    []string
	CorrectAnswers []string
	Questions      []Question
	CompletedAt    time.Time
	UserID         string
}

// ResultSaver receives the completed result. The engine calls it best-effort:
// failures are logged, never surfaced, and never block the result.
type ResultSaver interface {
	SaveResult(ctx context.Context, result *Result) error
}

// Engine drives one quiz run: SelectingTopic → Loading → InProgress →
// Completed, with Error reachable from Loading. It is cooperative
// single-threaded UI state; callers must not mutate it concurrently.
type Engine struct {
	source QuestionSource
	saver  ResultSaver
	userID string

	state          State
	topic          string
	questions      []Question
	currentIndex   int
	selectedAnswer string
	userAnswers    []string
	result         *Result
	lastErr        error

	// closed once the post-completion save attempt finishes
	saveDone chan struct{}
}

type Option func(*Engine)

// WithSaver attaches the best-effort persistence hook.
func WithSaver(saver ResultSaver) Option {
	return func(e *Engine) { e.saver = saver }
}

// WithUserID attributes results to a known user instead of the fallback.
func WithUserID(userID string) Option {
	return func(e *Engine) { e.userID = userID }
}

func New(source QuestionSource, opts ...Option) *Engine {
	e := &Engine{
		source: source,
		state:  StateSelectingTopic,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) State() State            { return e.state }
func (e *Engine) Topic() string           { return e.topic }
func (e *Engine) CurrentIndex() int       { return e.currentIndex }
func (e *Engine) SelectedAnswer() string  { return e.selectedAnswer }
func (e *Engine) UserAnswers() []string   { return append([]string(nil), e.userAnswers...) }
func (e *Engine) Result() *Result         { return e.result }
func (e *Engine) Err() error              { return e.lastErr }

func (e *Engine) CurrentQuestion() *Question {
	if e.state != StateInProgress || e.currentIndex >= len(e.questions) {
		return nil
	}
	q := e.questions[e.currentIndex]
	return &q
}

// Start fetches QuestionsPerQuiz questions for the topic, one sequential
// request per question; any failure aborts the whole fetch and the engine
// lands in StateError, from which Start may be re-attempted. "Random" is an
// ordinary topic key on the source side.
func (e *Engine) Start(ctx context.Context, topic string) error {
	if e.state != StateSelectingTopic && e.state != StateError && e.state != StateCompleted {
		return ErrNotSelecting
	}

	e.state = StateLoading
	e.topic = topic
	e.lastErr = nil

	questions := make([]Question, 0, QuestionsPerQuiz)
	for i := 0; i < QuestionsPerQuiz; i++ {
		q, err := e.source.FetchQuestion(ctx, topic)
		if err != nil {
			e.state = StateError
			e.lastErr = fmt.Errorf("failed to fetch questions: %w", err)
			return e.lastErr
		}
		questions = append(questions, *q)
	}

	e.questions = questions
	e.userAnswers = make([]string, QuestionsPerQuiz)
	e.currentIndex = 0
	e.selectedAnswer = ""
	e.result = nil
	e.state = StateInProgress
	return nil
}

// SelectAnswer sets the pending choice for the current question.
func (e *Engine) SelectAnswer(answer string) {
	if e.state != StateInProgress {
		return
	}
	e.selectedAnswer = answer
}

// Next commits the pending answer. While the pending answer is empty the
// transition is rejected and the index does not move. On the last question it
// completes the quiz, scores it, and fires the best-effort save.
func (e *Engine) Next() error {
	if e.state != StateInProgress {
		return ErrNotInProgress
	}
	if e.selectedAnswer == "" {
		return ErrNoAnswerSelected
	}

	e.userAnswers[e.currentIndex] = e.selectedAnswer

	if e.currentIndex < len(e.questions)-1 {
		e.currentIndex++
		// restore whatever was committed for the new index earlier
		e.selectedAnswer = e.userAnswers[e.currentIndex]
		return nil
	}

	e.complete()
	return nil
}

// Previous steps back one question, restoring its committed answer. No-op at
// the first question.
func (e *Engine) Previous() {
	if e.state != StateInProgress || e.currentIndex == 0 {
		return
	}
	e.currentIndex--
	e.selectedAnswer = e.userAnswers[e.currentIndex]
}

// Reset discards all in-memory quiz state and returns to topic selection.
func (e *Engine) Reset() {
	e.state = StateSelectingTopic
	e.topic = ""
	e.questions = nil
	e.userAnswers = nil
	e.currentIndex = 0
	e.selectedAnswer = ""
	e.result = nil
	e.lastErr = nil
}

// Retake reruns Start for the current topic. Because persistence upserts, the
// retake result supersedes the previous one for this topic.
func (e *Engine) Retake(ctx context.Context) error {
	return e.Start(ctx, e.topic)
}

// complete scores the run (exact string equality, no normalization, computed
// once) and fires the save without blocking: the result screen renders from
// local state regardless of whether the backend write succeeds.
func (e *Engine) complete() {
	correct := make([]string, len(e.questions))
	for i, q := range e.questions {
		correct[i] = q.Answer
	}

	score := 0
	for i, answer := range e.userAnswers {
		if answer == correct[i] {
			score++
		}
	}

	e.result = &Result{
		Topic:          e.topic,
		Score:          score,
		TotalQuestions: len(e.questions),
		UserAnswers:    append([]string(nil), e.userAnswers...),
		CorrectAnswers: correct,
		Questions:      append([]Question(nil), e.questions...),
		CompletedAt:    time.Now().UTC(),
		UserID:         e.userID,
	}
	e.state = StateCompleted

	e.saveDone = make(chan struct{})
	if e.saver == nil {
		close(e.saveDone)
		return
	}

	result := *e.result
	done := e.saveDone
	go func() {
		defer close(done)
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		if err := e.saver.SaveResult(ctx, &result); err != nil {
			log.Printf("[WARN] failed to save quiz result: %v", err)
		}
	}()
}

package practice

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"slices"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/japaniel/lexis/pkg/lexicon"
)

// DefaultRepeatProbability is the chance that a question is drawn from the
// wrong-answer queue instead of the shuffled order, when that queue is non-empty.
const DefaultRepeatProbability = 0.3

// ErrInvalidTransition is returned when a session method is called in a state that does not accept it.
var ErrInvalidTransition = errors.New("invalid session transition")

// State is the closed set of session states.
type State interface {
	sessionState()
}

// AwaitingAnswer waits for the user's answer to Question.
type AwaitingAnswer struct {
	Question Question
}

// ShowingMistake reports a wrong answer until the user acknowledges it.
type ShowingMistake struct {
	Prompt   string
	Correct  string
	Given    string
	Distance int
	Item     lexicon.Item
}

// AwaitingContinue is entered once every question has been answered correctly.
type AwaitingContinue struct{}

func (AwaitingAnswer) sessionState()   {}
func (ShowingMistake) sessionState()   {}
func (AwaitingContinue) sessionState() {}

// Feedback classifies how far a wrong answer was from the expected one.
func (m ShowingMistake) Feedback() Feedback { return Classify(m.Distance) }

// Feedback grades a wrong answer by edit distance. It does not affect scoring.
type Feedback uint8

const (
	Close Feedback = iota
	Almost
	NeedsPractice
)

// Classify maps an edit distance to feedback: up to 2 is close, 3 is almost.
func Classify(distance int) Feedback {
	switch {
	case distance <= 2:
		return Close
	case distance <= 3:
		return Almost
	}
	return NeedsPractice
}

func (f Feedback) String() string {
	switch f {
	case Close:
		return "You were close."
	case Almost:
		return "That's almost close."
	}
	return "You need to practice this more."
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used for shuffling, repeats and prompt generation.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithRepeatProbability overrides DefaultRepeatProbability.
func WithRepeatProbability(p float64) Option {
	return func(s *Session) { s.repeatProbability = p }
}

// WithLanguages sets the language names used in prompts.
func WithLanguages(names Languages) Option {
	return func(s *Session) { s.names = names }
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Session quizzes the user on one group. It is runtime state only and is not persisted.
type Session struct {
	group     Group
	words     *lexicon.Lexicon
	sentences *lexicon.Lexicon

	rng               *rand.Rand
	repeatProbability float64
	names             Languages
	logger            *slog.Logger

	order      []int
	cursor     int
	done       []bool
	unusable   []bool
	repeats    []int
	continuing bool

	current  int
	question Question
	state    State
}

// NewSession prepares a session over group: a shuffled order, cleared flags and an
// empty repeat queue. Call Start or NextQuestion to draw the first question.
func NewSession(group Group, words, sentences *lexicon.Lexicon, opts ...Option) (*Session, error) {
	if len(group.Questions) == 0 {
		return nil, fmt.Errorf("%q: %w", group.Name, ErrEmptyGroup)
	}
	s := &Session{
		group:             group.clone(),
		words:             words,
		sentences:         sentences,
		repeatProbability: DefaultRepeatProbability,
		names:             DefaultLanguages,
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		current:           -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	n := len(s.group.Questions)
	s.order = s.rng.Perm(n)
	s.done = make([]bool, n)
	s.unusable = make([]bool, n)
	return s, nil
}

// Group returns the group being practised.
func (s *Session) Group() Group { return s.group.clone() }

// State returns the current state, or nil before Start.
func (s *Session) State() State { return s.state }

// Progress reports how many questions have been answered correctly at least once.
func (s *Session) Progress() (done, total int) {
	for _, d := range s.done {
		if d {
			done++
		}
	}
	return done, len(s.done)
}

// Pending returns the number of questions waiting in the repeat queue.
func (s *Session) Pending() int { return len(s.repeats) }

// NextQuestion draws and renders the next question. Templates whose item was
// deleted or cannot be asked are skipped and count as done.
func (s *Session) NextQuestion() (Question, error) {
	for {
		if s.allUnusable() {
			return Question{}, ErrNoQuestions
		}
		idx := s.draw()
		if s.unusable[idx] {
			continue
		}
		t := s.group.Questions[idx]
		it, ok := resolve(t, s.words, s.sentences)
		if !ok {
			s.markUnusable(idx, "item deleted", nil)
			continue
		}
		q, err := Generate(it, s.names, s.rng)
		if err != nil {
			s.markUnusable(idx, "item cannot be asked", err)
			continue
		}
		q.Template = t
		s.current = idx
		s.question = q
		s.logger.Debug("question drawn", "template", t.String(), "prompt", q.Prompt)
		return q, nil
	}
}

// draw picks the next template index: with the repeat probability a random entry
// of the repeat queue, otherwise the next slot of the shuffled order.
func (s *Session) draw() int {
	if len(s.repeats) > 0 && s.rng.Float64() < s.repeatProbability {
		i := s.rng.Intn(len(s.repeats))
		idx := s.repeats[i]
		s.repeats = slices.Delete(s.repeats, i, i+1)
		return idx
	}
	if s.cursor >= len(s.order) {
		s.rng.Shuffle(len(s.order), func(i, j int) { s.order[i], s.order[j] = s.order[j], s.order[i] })
		s.cursor = 0
	}
	idx := s.order[s.cursor]
	s.cursor++
	return idx
}

func (s *Session) markUnusable(idx int, reason string, err error) {
	s.unusable[idx] = true
	s.done[idx] = true
	s.logger.Warn("skipping question", "template", s.group.Questions[idx].String(), "reason", reason, "error", err)
}

func (s *Session) allUnusable() bool {
	for _, u := range s.unusable {
		if !u {
			return false
		}
	}
	return true
}

// Answer records the outcome for the current question. A wrong answer queues the
// question for repetition. It returns true exactly when this answer completes the
// group and the session has not been continued past completion.
func (s *Session) Answer(correct bool) bool {
	if s.current < 0 {
		return false
	}
	if !correct {
		s.repeats = append(s.repeats, s.current)
		return false
	}
	s.done[s.current] = true
	if s.continuing {
		return false
	}
	for _, d := range s.done {
		if !d {
			return false
		}
	}
	return true
}

// Start draws the first question and enters AwaitingAnswer.
func (s *Session) Start() (State, error) {
	if s.state != nil {
		return nil, fmt.Errorf("%w: session already started", ErrInvalidTransition)
	}
	return s.advance()
}

// Submit checks answer against the current question with exact string equality.
func (s *Session) Submit(answer string) (State, error) {
	if _, ok := s.state.(AwaitingAnswer); !ok {
		return nil, fmt.Errorf("%w: no question awaiting an answer", ErrInvalidTransition)
	}
	q := s.question
	if answer != q.Answer {
		s.Answer(false)
		s.state = ShowingMistake{
			Prompt:   q.Prompt,
			Correct:  q.Answer,
			Given:    answer,
			Distance: levenshtein.ComputeDistance(answer, q.Answer),
			Item:     q.Item,
		}
		return s.state, nil
	}
	if s.Answer(true) {
		s.logger.Info("group completed", "group", s.group.Name)
		s.state = AwaitingContinue{}
		return s.state, nil
	}
	return s.advance()
}

// Acknowledge leaves ShowingMistake for the next question.
func (s *Session) Acknowledge() (State, error) {
	if _, ok := s.state.(ShowingMistake); !ok {
		return nil, fmt.Errorf("%w: no mistake to acknowledge", ErrInvalidTransition)
	}
	return s.advance()
}

// Continue keeps practising after completion. Completion is not signalled again.
func (s *Session) Continue() (State, error) {
	if _, ok := s.state.(AwaitingContinue); !ok {
		return nil, fmt.Errorf("%w: group is not complete", ErrInvalidTransition)
	}
	s.ContinuePractice()
	return s.advance()
}

// ContinuePractice sets the continuing flag so the session runs past completion.
func (s *Session) ContinuePractice() { s.continuing = true }

func (s *Session) advance() (State, error) {
	q, err := s.NextQuestion()
	if err != nil {
		return nil, err
	}
	s.state = AwaitingAnswer{Question: q}
	return s.state, nil
}

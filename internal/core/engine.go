package core

import (
	"errors"
	"math"
	"sort"
)

// Engine contract violations.
var (
	ErrOptionOutOfRange = errors.New("option index out of range")
	ErrNoActiveQuestion = errors.New("no active question")
)

// Option is a single answer choice.
type Option struct {
	Label   string
	Correct bool
}

// Question holds display text, an optional image reference and the
// canonical ordered option list. Option indices into this list are the
// identity used for grading, regardless of display order.
type Question struct {
	Text    string
	Image   string
	Options []Option
}

// CorrectSet returns the indices of the correct options.
func (q Question) CorrectSet() IndexSet {
	set := IndexSet{}
	for i, opt := range q.Options {
		if opt.Correct {
			set.Toggle(i)
		}
	}
	return set
}

// Section is a named, ordered collection of questions.
type Section struct {
	Name      string
	Questions []Question
}

// IndexSet is a set of option indices.
type IndexSet map[int]struct{}

// NewIndexSet builds a set from the given indices.
func NewIndexSet(indices ...int) IndexSet {
	set := IndexSet{}
	for _, i := range indices {
		set[i] = struct{}{}
	}
	return set
}

// Has reports membership.
func (s IndexSet) Has(i int) bool {
	_, ok := s[i]
	return ok
}

// Toggle flips membership of i.
func (s IndexSet) Toggle(i int) {
	if s.Has(i) {
		delete(s, i)
	} else {
		s[i] = struct{}{}
	}
}

// Clone returns an independent copy.
func (s IndexSet) Clone() IndexSet {
	out := make(IndexSet, len(s))
	for i := range s {
		out[i] = struct{}{}
	}
	return out
}

// Equal reports exact set equality.
func (s IndexSet) Equal(other IndexSet) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if !other.Has(i) {
			return false
		}
	}
	return true
}

// Sorted returns the members in ascending order.
func (s IndexSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Session is one user's active quiz attempt.
type Session struct {
	Category      string
	QuestionIndex int
	Pending       IndexSet
	Recorded      []IndexSet
	Result        *Report
}

// Grade is the tier assigned to a final percent.
type Grade int

const (
	GradePoor Grade = iota
	GradeSatisfactory
	GradeGood
	GradeExcellent
)

func (g Grade) String() string {
	switch g {
	case GradeExcellent:
		return "Excellent"
	case GradeGood:
		return "Good"
	case GradeSatisfactory:
		return "Satisfactory"
	}
	return "Poor"
}

// GradeFor maps a percent to its tier; boundaries are closed above.
func GradeFor(percent int) Grade {
	switch {
	case percent >= 90:
		return GradeExcellent
	case percent >= 70:
		return GradeGood
	case percent >= 50:
		return GradeSatisfactory
	}
	return GradePoor
}

// Percent computes round-half-up percentage of correct answers.
func Percent(score, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// WrongAnswer records the mismatch detail for one missed question.
type WrongAnswer struct {
	Index    int
	Text     string
	Options  []Option
	Selected []int
	Correct  []int
}

// Report is the end-of-attempt summary.
type Report struct {
	Score   int
	Total   int
	Percent int
	Grade   Grade
	Wrong   []WrongAnswer
}

// Toggle flips optionIndex in the pending selection of the current
// question. An out-of-range index is rejected as a no-op.
func Toggle(s *Session, q Question, optionIndex int) error {
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return ErrOptionOutOfRange
	}
	s.Pending.Toggle(optionIndex)
	return nil
}

// Confirm snapshots the pending selection as the answer to the current
// question, clears it and advances the cursor. When the last question
// was just answered, the final report is computed, retained on the
// session and returned; otherwise the returned report is nil. An empty
// pending selection is a legal submission.
func Confirm(s *Session, sec Section) (*Report, error) {
	if s.QuestionIndex >= len(sec.Questions) {
		return nil, ErrNoActiveQuestion
	}
	s.Recorded = append(s.Recorded, s.Pending.Clone())
	s.Pending = IndexSet{}
	s.QuestionIndex++
	if s.QuestionIndex == len(sec.Questions) {
		s.Result = buildReport(s, sec)
		return s.Result, nil
	}
	return nil, nil
}

// buildReport grades every recorded answer by exact set equality
// against the canonical correct set. No partial credit.
func buildReport(s *Session, sec Section) *Report {
	rep := &Report{Total: len(sec.Questions)}
	for i, q := range sec.Questions {
		correct := q.CorrectSet()
		var selected IndexSet
		if i < len(s.Recorded) {
			selected = s.Recorded[i]
		}
		if selected.Equal(correct) {
			rep.Score++
			continue
		}
		rep.Wrong = append(rep.Wrong, WrongAnswer{
			Index:    i,
			Text:     q.Text,
			Options:  q.Options,
			Selected: selected.Sorted(),
			Correct:  correct.Sorted(),
		})
	}
	rep.Percent = Percent(rep.Score, rep.Total)
	rep.Grade = GradeFor(rep.Percent)
	return rep
}

// QuestionView is the projection the presentation layer renders for an
// in-progress question.
type QuestionView struct {
	Index    int
	Total    int
	Question Question
	Pending  IndexSet
}

// NextView projects the session onto either the current question or,
// once the cursor has passed the last question, the final report.
func NextView(s *Session, sec Section) (*QuestionView, *Report) {
	if s.QuestionIndex < len(sec.Questions) {
		return &QuestionView{
			Index:    s.QuestionIndex,
			Total:    len(sec.Questions),
			Question: sec.Questions[s.QuestionIndex],
			Pending:  s.Pending,
		}, nil
	}
	if s.Result == nil {
		s.Result = buildReport(s, sec)
	}
	return nil, s.Result
}

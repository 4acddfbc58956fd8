// Package quiz scores the decision helper: a short questionnaire whose
// answers weigh towards React or Vue.
package quiz

import (
	"errors"
	"fmt"
)

var (
	ErrIncomplete    = errors.New("quiz: question not answered")
	ErrUnknownOption = errors.New("quiz: unknown option")
)

// Recommendation is the outcome of a scored quiz.
type Recommendation string

const (
	React  Recommendation = "react"
	Vue    Recommendation = "vue"
	Either Recommendation = "either"
)

// Label returns a display name.
func (r Recommendation) Label() string {
	switch r {
	case React:
		return "React"
	case Vue:
		return "Vue"
	default:
		return "Either framework"
	}
}

// Option is one answer to a question and the weight it adds to each side.
type Option struct {
	ID     string `yaml:"id"`
	Label  string `yaml:"label"`
	React  int    `yaml:"react"`
	Vue    int    `yaml:"vue"`
	Reason string `yaml:"reason"`
}

// Question is one step of the quiz.
type Question struct {
	ID      string   `yaml:"id"`
	Prompt  string   `yaml:"prompt"`
	Options []Option `yaml:"options"`
}

// Option looks up an option by ID.
func (q Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// Result is a scored quiz.
type Result struct {
	React          int
	Vue            int
	Recommendation Recommendation
	Reasons        []string
}

// Score totals answers, keyed by question ID, against questions. Every
// question must be answered with one of its options.
func Score(questions []Question, answers map[string]string) (Result, error) {
	var res Result
	for _, q := range questions {
		id, ok := answers[q.ID]
		if !ok || id == "" {
			return Result{}, fmt.Errorf("%w: %s", ErrIncomplete, q.ID)
		}
		opt, ok := q.Option(id)
		if !ok {
			return Result{}, fmt.Errorf("%w: %s=%s", ErrUnknownOption, q.ID, id)
		}
		res.React += opt.React
		res.Vue += opt.Vue
		if opt.Reason != "" {
			res.Reasons = append(res.Reasons, opt.Reason)
		}
	}
	switch {
	case res.React > res.Vue:
		res.Recommendation = React
	case res.Vue > res.React:
		res.Recommendation = Vue
	default:
		res.Recommendation = Either
	}
	return res, nil
}

// Tally counts stored results per recommendation.
type Tally struct {
	React  int
	Vue    int
	Either int
}

// Add counts n more results for r.
func (t *Tally) Add(r Recommendation, n int) {
	switch r {
	case React:
		t.React += n
	case Vue:
		t.Vue += n
	case Either:
		t.Either += n
	}
}

// Total returns the number of counted results.
func (t Tally) Total() int {
	return t.React + t.Vue + t.Either
}

// Percent returns r's share of the total, rounded down.
func (t Tally) Percent(r Recommendation) int {
	total := t.Total()
	if total == 0 {
		return 0
	}
	var n int
	switch r {
	case React:
		n = t.React
	case Vue:
		n = t.Vue
	case Either:
		n = t.Either
	}
	return n * 100 / total
}

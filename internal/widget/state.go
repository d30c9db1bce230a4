// Package widget holds the display state of the lookup widget: the input
// field, the mutually exclusive detail/error sections and the history list.
package widget

import (
	"github.com/kapu/character-lookup-go/internal/adapter"
	"github.com/kapu/character-lookup-go/internal/domain"
	"github.com/kapu/character-lookup-go/internal/service"
	"github.com/kapu/character-lookup-go/pkg/errors"
)

// State is a value; transitions return a new State.
type State struct {
	Input         string
	DetailVisible bool
	ErrorVisible  bool
	Detail        adapter.Card
	Failure       error
	History       adapter.HistoryView
}

// Begin hides both sections. Every search attempt starts here.
func (s State) Begin() State {
	s.DetailVisible = false
	s.ErrorVisible = false
	return s
}

// Resolve shows exactly one section for the outcome of a search of input.
// A superseded search leaves the state untouched.
func (s State) Resolve(input string, result *service.SearchResult, err error, history *domain.History) State {
	if errors.IsSuperseded(err) {
		return s
	}

	s = s.Begin()
	s.Input = input

	if err != nil {
		s.Failure = err
		s.ErrorVisible = true
		return s
	}

	s.Failure = nil
	s.Detail = adapter.NewCard(result.Character, result.Term, adapter.CardDetail)
	s.DetailVisible = true

	if !result.Cached {
		s.History = adapter.NewHistoryView(history)
		s.Input = ""
	}

	return s
}

// ErrorView converts the current failure into the page's error section.
func (s State) ErrorView(formatter *adapter.ResponseFormatter) adapter.ErrorView {
	if s.Failure == nil {
		return adapter.ErrorView{}
	}
	if nf, ok := errors.AsNotFound(s.Failure); ok {
		return adapter.NotFoundErrorView(nf.Term)
	}
	return adapter.ErrorView{Message: formatter.FailureMessage(s.Failure)}
}

// PageData maps the state onto the page template.
func (s State) PageData(formatter *adapter.ResponseFormatter) adapter.PageData {
	return adapter.PageData{
		Input:         s.Input,
		DetailVisible: s.DetailVisible,
		ErrorVisible:  s.ErrorVisible,
		Detail:        s.Detail,
		Error:         s.ErrorView(formatter),
		History:       s.History,
		Labels:        adapter.DefaultPageLabels(),
	}
}

package widget

import (
	"context"
	"strings"
	"sync"

	"github.com/kapu/character-lookup-go/internal/adapter"
	"github.com/kapu/character-lookup-go/internal/service"
)

// Widget couples a lookup service with its display state and serializes
// state updates. The search itself runs outside the lock.
type Widget struct {
	lookup    *service.LookupService
	formatter *adapter.ResponseFormatter

	mu    sync.Mutex
	state State
}

func New(lookup *service.LookupService, formatter *adapter.ResponseFormatter) *Widget {
	if formatter == nil {
		formatter = adapter.NewResponseFormatter()
	}
	return &Widget{lookup: lookup, formatter: formatter}
}

// Submit runs one search attempt for input and returns the resulting state.
func (w *Widget) Submit(ctx context.Context, input string) State {
	w.mu.Lock()
	w.state.Input = input
	w.state = w.state.Begin()
	w.mu.Unlock()

	result, err := w.lookup.Search(ctx, input)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = w.state.Resolve(input, result, err, w.lookup.History())
	return w.state
}

// State returns the current display state.
func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Lookup returns the underlying service.
func (w *Widget) Lookup() *service.LookupService {
	return w.lookup
}

// RenderText renders the visible sections as plain text.
func (w *Widget) RenderText() string {
	return RenderText(w.State(), w.formatter)
}

// RenderHTML renders the widget page.
func (w *Widget) RenderHTML() (string, error) {
	return adapter.RenderPageHTML(w.State().PageData(w.formatter))
}

// RenderText renders the visible sections of s as plain text: the detail
// card or the error, then the history.
func RenderText(s State, formatter *adapter.ResponseFormatter) string {
	parts := make([]string, 0, 2)

	switch {
	case s.DetailVisible:
		parts = append(parts, formatter.FormatCard(s.Detail))
	case s.ErrorVisible:
		parts = append(parts, formatter.FormatError(formatter.FailureMessage(s.Failure)))
	}

	if history := formatter.FormatHistory(s.History); history != "" {
		parts = append(parts, history)
	}

	return strings.Join(parts, "\n\n")
}

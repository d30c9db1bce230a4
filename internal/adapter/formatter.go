package adapter

import (
	"fmt"
	"strings"

	"github.com/kapu/character-lookup-go/internal/constants"
	"github.com/kapu/character-lookup-go/internal/util"
	"github.com/kapu/character-lookup-go/pkg/errors"
)

// ResponseFormatter renders cards, history and failures as plain text.
type ResponseFormatter struct {
	maxField int
}

// NewResponseFormatter creates a new ResponseFormatter
func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{maxField: constants.StringLimits.CardField}
}

// FormatCard formats a detail card.
func (f *ResponseFormatter) FormatCard(card Card) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🍄 %s\n", card.DisplayName))
	sb.WriteString(fmt.Sprintf("   🖼️ %s\n", card.ImageURL))
	sb.WriteString(fmt.Sprintf("   %s: %s\n", card.OriginLabel, f.truncate(card.Origin)))
	sb.WriteString(fmt.Sprintf("   %s: %s", card.StrengthLabel, f.truncate(card.Strength)))
	return sb.String()
}

// FormatHistory formats the history view. An empty view yields "".
func (f *ResponseFormatter) FormatHistory(view HistoryView) string {
	if view.Empty() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📜 %s\n\n", view.Header))

	for i, card := range view.Cards {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, card.DisplayName))
		sb.WriteString(fmt.Sprintf("   %s: %s\n", card.OriginLabel, f.truncate(card.Origin)))
		sb.WriteString(fmt.Sprintf("   %s: %s", card.StrengthLabel, f.truncate(card.Strength)))
		if i < len(view.Cards)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// FormatError formats error message
func (f *ResponseFormatter) FormatError(message string) string {
	return fmt.Sprintf("❌ %s", message)
}

// FailureMessage returns the user-facing message for a failed search. The
// technical cause is never part of it.
func (f *ResponseFormatter) FailureMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.IsValidation(err) {
		return constants.Messages.EmptyTerm
	}
	if nf, ok := errors.AsNotFound(err); ok {
		return NotFoundMessage(nf.Term)
	}
	return NotFoundMessage("")
}

// NotFoundMessage names the capitalized term and suggests checking spelling.
func NotFoundMessage(term string) string {
	return fmt.Sprintf(constants.Messages.NotFound, util.Capitalize(term))
}

func (f *ResponseFormatter) truncate(value string) string {
	if f.maxField <= 0 {
		return value
	}
	return util.TruncateString(value, f.maxField)
}

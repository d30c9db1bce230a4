package adapter

import (
	"strings"

	"github.com/kapu/character-lookup-go/internal/constants"
	"github.com/kapu/character-lookup-go/internal/domain"
	"github.com/kapu/character-lookup-go/internal/util"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CardVariant selects between the detail card and the smaller history card.
type CardVariant int

const (
	CardDetail CardVariant = iota
	CardHistory
)

// Card is the presentation of a single character record.
type Card struct {
	DisplayName   string
	ImageURL      string
	Origin        string
	OriginLabel   string
	Strength      string
	StrengthLabel string
	Variant       CardVariant
}

// NewCard maps a record to its displayed values. fallbackTerm names the card
// when the record has no name; history cards ignore it.
func NewCard(c *domain.Character, fallbackTerm string, variant CardVariant) Card {
	if c == nil {
		c = &domain.Character{}
	}

	card := Card{
		DisplayName:   util.Capitalize(c.Name),
		ImageURL:      c.Image,
		Origin:        orNotAvailable(c.Origin),
		OriginLabel:   constants.Labels.Origin,
		Strength:      orNotAvailable(c.Strength),
		StrengthLabel: constants.Labels.StrengthPrimary,
		Variant:       variant,
	}

	placeholder := constants.Placeholders.Detail
	if variant == CardHistory {
		placeholder = constants.Placeholders.History
		card.StrengthLabel = constants.Labels.Strength
	}

	if card.DisplayName == "" {
		if variant == CardHistory {
			card.DisplayName = constants.Labels.UnknownName
		} else {
			card.DisplayName = util.Capitalize(strings.TrimSpace(fallbackTerm))
		}
	}

	if !util.HasHTTPScheme(card.ImageURL) {
		card.ImageURL = placeholder
	}

	return card
}

// HistoryView is the rendered history: a header with the count followed by
// one card per record, newest first. The zero value renders as nothing.
type HistoryView struct {
	Count  int
	Header string
	Cards  []Card
}

func (v HistoryView) Empty() bool {
	return v.Count == 0
}

var historyPrinter = message.NewPrinter(language.BrazilianPortuguese)

// NewHistoryView renders every record of the history with the history variant.
func NewHistoryView(history *domain.History) HistoryView {
	if history == nil {
		return HistoryView{}
	}

	entries := history.Snapshot()
	if len(entries) == 0 {
		return HistoryView{}
	}

	cards := make([]Card, 0, len(entries))
	for _, entry := range entries {
		cards = append(cards, NewCard(entry, "", CardHistory))
	}

	return HistoryView{
		Count:  len(entries),
		Header: historyPrinter.Sprintf(constants.Labels.HistoryHeader, len(entries)),
		Cards:  cards,
	}
}

func orNotAvailable(value string) string {
	if strings.TrimSpace(value) == "" {
		return constants.Labels.NotAvailable
	}
	return value
}

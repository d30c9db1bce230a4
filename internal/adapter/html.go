package adapter

import (
	"embed"
	"html/template"
	"strings"
	"sync"

	"github.com/kapu/character-lookup-go/internal/constants"
	"github.com/kapu/character-lookup-go/internal/util"
)

//go:embed templates/*.tmpl
var htmlTemplateFS embed.FS

var (
	htmlTemplates *template.Template
	htmlOnce      sync.Once
	htmlErr       error
)

// ErrorView is the error section of the page. Term is set for not-found
// failures and rendered emphasized inside the message.
type ErrorView struct {
	Message string
	Term    string
}

// PageData is everything the widget page displays.
type PageData struct {
	Input         string
	DetailVisible bool
	ErrorVisible  bool
	Detail        Card
	Error         ErrorView
	History       HistoryView
	Labels        PageLabels
}

type errorTemplateData struct {
	ErrorView
	Labels PageLabels
}

type PageLabels struct {
	SearchButton   string
	SearchHint     string
	NotFoundPrefix string
	NotFoundSuffix string
}

// DefaultPageLabels returns the labels used by the page template.
func DefaultPageLabels() PageLabels {
	return PageLabels{
		SearchButton:   constants.Labels.SearchButton,
		SearchHint:     constants.Labels.SearchHint,
		NotFoundPrefix: constants.Messages.NotFoundPrefix,
		NotFoundSuffix: constants.Messages.NotFoundSuffix,
	}
}

// NotFoundErrorView builds the error section for an unresolved term.
func NotFoundErrorView(term string) ErrorView {
	return ErrorView{
		Message: NotFoundMessage(term),
		Term:    util.Capitalize(term),
	}
}

// RenderDetailHTML renders the primary card.
func RenderDetailHTML(card Card) (string, error) {
	return executeHTMLTemplate("detail", card)
}

// RenderHistoryHTML renders the history section; an empty view yields "".
func RenderHistoryHTML(view HistoryView) (string, error) {
	if view.Empty() {
		return "", nil
	}
	return executeHTMLTemplate("history", view)
}

// RenderErrorHTML renders the error section.
func RenderErrorHTML(view ErrorView) (string, error) {
	return executeHTMLTemplate("error", errorTemplateData{ErrorView: view, Labels: DefaultPageLabels()})
}

// RenderPageHTML renders the full widget page.
func RenderPageHTML(data PageData) (string, error) {
	if data.Labels == (PageLabels{}) {
		data.Labels = DefaultPageLabels()
	}
	return executeHTMLTemplate("page", data)
}

func executeHTMLTemplate(name string, data any) (string, error) {
	htmlOnce.Do(func() {
		funcMap := template.FuncMap{
			"errorData": func(page PageData) errorTemplateData {
				return errorTemplateData{ErrorView: page.Error, Labels: page.Labels}
			},
		}
		tmpl := template.New("widget").Funcs(funcMap)
		htmlTemplates, htmlErr = tmpl.ParseFS(htmlTemplateFS, "templates/*.tmpl")
	})

	if htmlErr != nil {
		return "", htmlErr
	}

	var builder strings.Builder
	if err := htmlTemplates.ExecuteTemplate(&builder, name, data); err != nil {
		return "", err
	}

	return strings.TrimSpace(builder.String()), nil
}

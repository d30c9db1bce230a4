package adapter

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/kapu/character-lookup-go/internal/constants"
	"github.com/kapu/character-lookup-go/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestRenderDetailHTML(t *testing.T) {
	html, err := RenderDetailHTML(NewCard(&domain.Character{Name: "mario", Origin: "Donkey Kong"}, "mario", CardDetail))
	require.NoError(t, err)

	doc := parseHTML(t, html)
	assert.Equal(t, "Mario", doc.Find("h2").Text())
	src, _ := doc.Find("img.char-image").Attr("src")
	assert.Equal(t, constants.Placeholders.Detail, src)

	info := doc.Find(".char-info p")
	require.Equal(t, 2, info.Length())
	assert.Equal(t, "Primeira Aparição: Donkey Kong", info.Eq(0).Text())
	assert.Equal(t, "Habilidade Principal: N/A", info.Eq(1).Text())
}

func TestRenderDetailHTMLEscapesPayload(t *testing.T) {
	html, err := RenderDetailHTML(NewCard(&domain.Character{Name: "<script>alert(1)</script>"}, "", CardDetail))
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Equal(t, 0, parseHTML(t, html).Find("script").Length())
}

func TestRenderHistoryHTML(t *testing.T) {
	html, err := RenderHistoryHTML(HistoryView{})
	require.NoError(t, err)
	assert.Empty(t, html)

	history := domain.NewHistory()
	history.Prepend(&domain.Character{Name: "mario"})
	history.Prepend(&domain.Character{Name: "luigi", Image: "https://img.example/luigi.png"})

	html, err = RenderHistoryHTML(NewHistoryView(history))
	require.NoError(t, err)

	doc := parseHTML(t, html)
	assert.Equal(t, "Personagens Pesquisados (2)", doc.Find("h2").Text())

	cards := doc.Find(".history-card")
	require.Equal(t, 2, cards.Length())
	assert.Equal(t, "Luigi", cards.Eq(0).Find("h3").Text())
	assert.Equal(t, "Mario", cards.Eq(1).Find("h3").Text())

	src, _ := cards.Eq(1).Find("img").Attr("src")
	assert.Equal(t, constants.Placeholders.History, src)
}

func TestRenderErrorHTML(t *testing.T) {
	html, err := RenderErrorHTML(NotFoundErrorView("wario"))
	require.NoError(t, err)

	doc := parseHTML(t, html)
	assert.Equal(t, `"Wario"`, doc.Find("strong").Text())
	assert.Contains(t, doc.Find("p").Text(), "Verifique a ortografia")

	html, err = RenderErrorHTML(ErrorView{Message: constants.Messages.EmptyTerm})
	require.NoError(t, err)
	assert.Equal(t, constants.Messages.EmptyTerm, parseHTML(t, html).Find("p").Text())
}

func TestRenderPageHTMLVisibility(t *testing.T) {
	html, err := RenderPageHTML(PageData{
		ErrorVisible: true,
		Error:        ErrorView{Message: constants.Messages.EmptyTerm},
	})
	require.NoError(t, err)

	doc := parseHTML(t, html)
	assert.True(t, doc.Find("#character-detail").HasClass("hidden"))
	assert.False(t, doc.Find("#error-message").HasClass("hidden"))
	assert.Empty(t, strings.TrimSpace(doc.Find("#history-container").Text()))
	assert.Equal(t, "Buscar", doc.Find("#search-button").Text())
}

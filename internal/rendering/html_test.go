package rendering

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/ihp-exam/internal/catalog"
	"github.com/jonathan/ihp-exam/internal/exam"
	"github.com/jonathan/ihp-exam/internal/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestRenderHTML_Fagprove(t *testing.T) {
	r := exam.Defaults(catalog.Fagprove)
	r.Answers["bakgrunn"] = "Linje 1\nLinje 2"
	r.AIDisclosure["bakgrunn"] = "Midjourney"
	p := projection.Project(catalog.TabFagprove, exam.Header{CandidateName: "Kari", Date: "2026-05-04"}, r)

	html, err := RenderHTML(p)
	require.NoError(t, err)
	doc := parse(t, html)

	root := doc.Find(RootSelector)
	require.Equal(t, 1, root.Length())
	assert.Equal(t, "Fagprøve (kreativ brief – full)", root.Find("h1").Text())
	assert.Contains(t, root.Find(".meta").First().Text(), "Kandidat: Kari")
	assert.Contains(t, root.Find(".meta").First().Text(), "Byrå: Trim AS")

	boxes := root.Find(".box")
	assert.Equal(t, 27, boxes.Length())

	first := boxes.First()
	key, _ := first.Attr("data-key")
	assert.Equal(t, "bakgrunn", key)
	assert.Equal(t, "Bakgrunn / problem", first.Find(".q").Text())
	assert.Equal(t, "Linje 1\nLinje 2", first.Find(".answer").Text())
	assert.Equal(t, "KI-verktøy: Midjourney", first.Find(".ai").Text())

	assert.Equal(t, projection.Placeholder, boxes.Eq(1).Find(".answer").Text())
	assert.Equal(t, len(catalog.CompetenceAims), root.Find("ol li").Length())
	assert.Equal(t, 2, root.Find(".small a").Length())
}

func TestRenderHTML_KompetanseHasNoDisclosure(t *testing.T) {
	p := projection.Project(catalog.TabKompetanse, exam.Header{}, exam.Defaults(catalog.Kompetanse))

	html, err := RenderHTML(p)
	require.NoError(t, err)
	doc := parse(t, html)

	assert.Equal(t, 8, doc.Find(".box").Length())
	assert.Equal(t, 0, doc.Find(".ai").Length())
	assert.Contains(t, doc.Find(".meta").Eq(1).Text(), "Fokus: kjerneelementer")
}

func TestRenderHTML_Info(t *testing.T) {
	p := projection.Project(catalog.TabInfo, exam.Header{}, exam.Record{})

	html, err := RenderHTML(p)
	require.NoError(t, err)
	doc := parse(t, html)

	assert.Equal(t, 0, doc.Find(".box").Length())
	assert.Equal(t, 1, doc.Find(".meta").Length())
	assert.Equal(t, 2, doc.Find(".printWrap h2").Length())
	assert.NotContains(t, doc.Find(".meta").Text(), "Kunde")
}

func TestRenderHTML_EscapesUserText(t *testing.T) {
	r := exam.Defaults(catalog.Kompetanse)
	r.Answers["design"] = `<script>alert("x")</script> & <b>fet</b>`
	h := exam.Header{CandidateName: `<img src=x onerror=alert(1)>`}

	html, err := RenderHTML(projection.Project(catalog.TabKompetanse, h, r))
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<img")
	doc := parse(t, html)
	assert.Equal(t, 0, doc.Find(".answer b").Length())
	assert.Equal(t, `<script>alert("x")</script> & <b>fet</b>`, doc.Find(".box .answer").First().Text())
}

func TestRenderHTML_FixedWidthWhiteBackground(t *testing.T) {
	html, err := RenderHTML(projection.Project(catalog.TabInfo, exam.Header{}, exam.Record{}))
	require.NoError(t, err)
	assert.Contains(t, html, "width: 794px")
	assert.Contains(t, html, "background: #ffffff")
}

func TestRenderHTML_EmptyDocument(t *testing.T) {
	_, err := RenderHTML(projection.Document{})
	require.Error(t, err)

	var renderErr *RenderError
	assert.True(t, errors.As(err, &renderErr))
}

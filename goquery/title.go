// Package goquery extracts post titles from archived HTML with CSS selectors.
package goquery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/retitle"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ensure TitleExtractor implements retitle.TitleExtractor at compile time.
var _ retitle.TitleExtractor = (*TitleExtractor)(nil)

// TitleSelectors are tried in order for the post title. Post-specific
// heading classes come before generic article headings.
var TitleSelectors = []string{
	"h2.entry-title a",
	"h2.entry-title",
	"h1.entry-title a",
	"h1.entry-title",
	".entry-header h2 a",
	".entry-header h2",
	".entry-header h1",
	".post-title a",
	".post-title",
	"article h1",
	"article h2",
}

// minSelectorTitleLength is the rune count a selector match must exceed.
const minSelectorTitleLength = 5

var (
	// Matches /YYYY/MM/<slug> with an optional .html suffix.
	urlSlugRe = regexp.MustCompile(`/\d{4}/\d{2}/([^/]+?)(?:\.html)?$`)

	siteSuffixRe = regexp.MustCompile(`(?i)\s*[-|:]\s*` + regexp.QuoteMeta(retitle.GenericSiteName) + `.*$`)
	sitePrefixRe = regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(retitle.GenericSiteName) + `\s*[-|:]\s*`)

	beckerSignatureRe = regexp.MustCompile(`(?i)\s*[-–—]\s*becker\s*$`)
	posnerSignatureRe = regexp.MustCompile(`(?i)\s*[-–—]\s*posner\s*$`)
)

// TitleExtractor derives post titles from archived HTML using CSS selectors,
// the post URL and the <title> element, in that order.
type TitleExtractor struct {
	selectors []string
}

// NewTitleExtractor creates a TitleExtractor using TitleSelectors.
func NewTitleExtractor() *TitleExtractor {
	return &TitleExtractor{selectors: TitleSelectors}
}

// ExtractTitle returns the best title found for the post. It falls back to
// retitle.UntitledPost, so the result is never empty and never the generic
// site name.
func (e *TitleExtractor) ExtractTitle(html, originURL string) string {
	// A document that fails to parse behaves like one with no matches.
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	parsed := err == nil

	var title string
	if parsed {
		title = e.fromSelectors(doc)
	}
	if title == "" {
		title = fromURL(originURL)
	}
	if title == "" && parsed {
		title = fromTitleElement(doc)
	}
	if title == "" || title == retitle.GenericSiteName {
		title = retitle.UntitledPost
	}

	title = StripSignature(title)
	if title == "" || title == retitle.GenericSiteName {
		return retitle.UntitledPost
	}
	return title
}

// fromSelectors returns the text of the first selector whose first match
// looks like a real title.
func (e *TitleExtractor) fromSelectors(doc *goquery.Document) string {
	for _, selector := range e.selectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		text := cleanText(sel.Text())
		if text == "" || text == retitle.GenericSiteName {
			continue
		}
		if utf8.RuneCountInString(text) <= minSelectorTitleLength {
			continue
		}
		return text
	}
	return ""
}

// fromURL builds a title from the slug of a date-prefixed post URL.
// Example: http://example.com/2009/05/some-post-title.html → Some Post Title
func fromURL(originURL string) string {
	m := urlSlugRe.FindStringSubmatch(originURL)
	if m == nil {
		return ""
	}
	slug := strings.NewReplacer("-", " ", "_", " ").Replace(m[1])
	return cases.Title(language.English).String(slug)
}

// fromTitleElement returns the document <title> without the blog name.
func fromTitleElement(doc *goquery.Document) string {
	sel := doc.Find("title").First()
	if sel.Length() == 0 {
		return ""
	}
	title := cleanText(sel.Text())
	title = siteSuffixRe.ReplaceAllString(title, "")
	title = sitePrefixRe.ReplaceAllString(title, "")
	return title
}

// StripSignature removes a trailing author signature such as " – Becker" or
// " — Posner" and trims the result.
func StripSignature(title string) string {
	title = beckerSignatureRe.ReplaceAllString(title, "")
	title = posnerSignatureRe.ReplaceAllString(title, "")
	return strings.TrimSpace(title)
}

// cleanText trims s and collapses internal whitespace runs to single spaces.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

package retitle

import (
	"regexp"
	"unicode/utf8"
)

// Placeholder titles left behind by the harvester.
const (
	// GenericSiteName is the blog name the harvester stored when it could not
	// find a post title.
	GenericSiteName = "The Becker-Posner Blog"

	// UntitledPost is the title used when no heuristic produces one.
	UntitledPost = "Untitled Post"
)

// ArchiveSiteName is appended to rewritten <title> elements.
const ArchiveSiteName = "Becker-Posner Blog Archive"

// minTitleLength is the rune count below which a stored title is considered
// a harvesting artifact.
const minTitleLength = 10

// TitleExtractor derives a human-readable title for an archived post.
type TitleExtractor interface {
	// ExtractTitle returns a cleaned title for the post whose raw HTML is
	// html and whose pre-archival URL is originURL. It never returns "".
	ExtractTitle(html, originURL string) string
}

// IsPlaceholderTitle reports whether title is one of the stand-in titles
// rather than a real one.
func IsPlaceholderTitle(title string) bool {
	return title == GenericSiteName || title == UntitledPost
}

// NeedsTitleFix reports whether a stored title should be replaced.
func NeedsTitleFix(current string) bool {
	return IsPlaceholderTitle(current) || utf8.RuneCountInString(current) < minTitleLength
}

var (
	titleElemRe = regexp.MustCompile(`<title>.*?</title>`)
	h1ElemRe    = regexp.MustCompile(`<h1>.*?</h1>`)
)

// RewriteTitle returns doc with every <title> element set to
// "<title> - Becker-Posner Blog Archive" and the first <h1> set to title.
//
// The rewrite is textual: title is inserted as-is, without escaping, and
// elements that carry attributes or span lines are left alone.
func RewriteTitle(doc, title string) string {
	doc = titleElemRe.ReplaceAllLiteralString(doc, "<title>"+title+" - "+ArchiveSiteName+"</title>")
	if loc := h1ElemRe.FindStringIndex(doc); loc != nil {
		doc = doc[:loc[0]] + "<h1>" + title + "</h1>" + doc[loc[1]:]
	}
	return doc
}

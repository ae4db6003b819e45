package retitle

import "strings"

// Author identifies who wrote a post.
type Author string

// Author labels stored in the index.
const (
	AuthorBecker  Author = "Gary Becker"
	AuthorPosner  Author = "Richard Posner"
	AuthorUnknown Author = "Unknown"
)

// InferAuthor attributes a post from its origin URL, falling back to its
// title. The URL wins because the blog put the author's name in post slugs.
//
// html is reserved for content-based rules and is not consulted.
func InferAuthor(title, originURL, html string) Author {
	if author, ok := authorIn(originURL); ok {
		return author
	}
	if author, ok := authorIn(title); ok {
		return author
	}
	return AuthorUnknown
}

func authorIn(s string) (Author, bool) {
	s = strings.ToLower(s)
	switch {
	case strings.Contains(s, "becker"):
		return AuthorBecker, true
	case strings.Contains(s, "posner"):
		return AuthorPosner, true
	}
	return "", false
}

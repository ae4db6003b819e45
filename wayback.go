package retitle

import "regexp"

var waybackRe = regexp.MustCompile(`web\.archive\.org/web/\d+/(.*)`)

// OriginURL recovers the pre-archival URL from a Wayback Machine URL such as
// https://web.archive.org/web/20091001000000/http://example.com/post.html.
// It returns "" when waybackURL is not a Wayback Machine URL.
func OriginURL(waybackURL string) string {
	m := waybackRe.FindStringSubmatch(waybackURL)
	if m == nil {
		return ""
	}
	return m[1]
}

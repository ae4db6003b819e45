package retitle

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Index object keys owned by Post. Any other key is carried through untouched.
const (
	keyFilename   = "filename"
	keyWaybackURL = "wayback_url"
	keyTitle      = "title"
	keyAuthor     = "author"
)

var postKeys = []string{keyFilename, keyWaybackURL, keyTitle, keyAuthor}

// Post represents one archived post in the index.
//
// Index objects may carry keys other than the four below; those are kept in
// their original order and written back verbatim.
type Post struct {
	Filename   string
	WaybackURL string
	Title      string
	Author     Author

	// raw is the index object the post was decoded from.
	raw []byte
}

// PostIndex loads and persists the ordered sequence of posts.
type PostIndex interface {
	// Load reads every post in index order.
	Load(ctx context.Context) ([]*Post, error)

	// Save replaces the index with posts, preserving their order.
	Save(ctx context.Context, posts []*Post) error
}

// PostStore provides access to the archived HTML file of each post.
type PostStore interface {
	// Exists reports whether the HTML file for filename is present.
	Exists(ctx context.Context, filename string) (bool, error)

	// Read returns the full text of the HTML file for filename.
	Read(ctx context.Context, filename string) (string, error)

	// Rewrite replaces the title and first heading of the HTML file for
	// filename with title. See RewriteTitle.
	Rewrite(ctx context.Context, filename, title string) error
}

func (p *Post) value(key string) *string {
	switch key {
	case keyFilename:
		return &p.Filename
	case keyWaybackURL:
		return &p.WaybackURL
	case keyTitle:
		return &p.Title
	case keyAuthor:
		return (*string)(&p.Author)
	}
	return nil
}

// UnmarshalJSON decodes an index object. Known keys holding non-string
// values decode as empty strings.
func (p *Post) UnmarshalJSON(data []byte) error {
	obj := gjson.ParseBytes(data)
	if !obj.IsObject() {
		return Errorf(EINVALID, "post must be a JSON object")
	}

	*p = Post{raw: bytes.Clone(data)}
	for _, key := range postKeys {
		*p.value(key) = stringField(p.raw, key)
	}
	return nil
}

// MarshalJSON encodes the decoded object with changed known keys updated in
// place. Keys that were absent are appended only when non-empty; untouched
// non-string values are written back as they were.
func (p Post) MarshalJSON() ([]byte, error) {
	out := p.raw
	if len(out) == 0 {
		out = []byte("{}")
	}

	for _, key := range postKeys {
		v := *p.value(key)
		if v == stringField(p.raw, key) {
			continue
		}
		s, err := encodeString(v)
		if err != nil {
			return nil, err
		}
		if out, err = sjson.SetRawBytes(out, key, s); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// stringField returns the string value of key in obj, or "" when the key is
// missing or not a string.
func stringField(obj []byte, key string) string {
	if len(obj) == 0 {
		return ""
	}
	r := gjson.GetBytes(obj, key)
	if r.Type != gjson.String {
		return ""
	}
	return r.Str
}

// encodeString encodes s as a JSON string without HTML escaping.
func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

package retitle_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fwojciec/retitle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPost_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes known fields", func(t *testing.T) {
		t.Parallel()

		var p retitle.Post
		err := json.Unmarshal([]byte(`{
			"filename": "2009-05-crime",
			"wayback_url": "https://web.archive.org/web/1/http://x.com/a",
			"title": "The Becker-Posner Blog",
			"author": "Unknown",
			"date": "2009-05-01"
		}`), &p)

		require.NoError(t, err)
		assert.Equal(t, "2009-05-crime", p.Filename)
		assert.Equal(t, "https://web.archive.org/web/1/http://x.com/a", p.WaybackURL)
		assert.Equal(t, "The Becker-Posner Blog", p.Title)
		assert.Equal(t, retitle.AuthorUnknown, p.Author)
	})

	t.Run("non-string known fields decode as empty", func(t *testing.T) {
		t.Parallel()

		var p retitle.Post
		err := json.Unmarshal([]byte(`{"filename": null, "title": 42}`), &p)

		require.NoError(t, err)
		assert.Empty(t, p.Filename)
		assert.Empty(t, p.Title)
	})

	t.Run("rejects non-object", func(t *testing.T) {
		t.Parallel()

		var p retitle.Post
		err := json.Unmarshal([]byte(`["filename"]`), &p)

		require.Error(t, err)
	})
}

func TestPost_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("preserves key order and unknown fields", func(t *testing.T) {
		t.Parallel()

		in := `{"title":"Old","date":"2009-05-01","filename":"f","tags":["a","b"],"author":"Unknown","wayback_url":"w"}`

		var p retitle.Post
		require.NoError(t, json.Unmarshal([]byte(in), &p))
		p.Title = "New Title"
		p.Author = retitle.AuthorPosner

		out, err := json.Marshal(&p)

		require.NoError(t, err)
		assert.Equal(t, `{"title":"New Title","date":"2009-05-01","filename":"f","tags":["a","b"],"author":"Richard Posner","wayback_url":"w"}`, string(out))
	})

	t.Run("appends title then author when they were absent", func(t *testing.T) {
		t.Parallel()

		var p retitle.Post
		require.NoError(t, json.Unmarshal([]byte(`{"filename":"f","extra":1}`), &p))
		p.Author = retitle.AuthorUnknown
		p.Title = "Crime and Punishment"

		out, err := json.Marshal(&p)

		require.NoError(t, err)
		assert.Equal(t, `{"filename":"f","extra":1,"title":"Crime and Punishment","author":"Unknown"}`, string(out))
	})

	t.Run("keeps non-string values that were not overwritten", func(t *testing.T) {
		t.Parallel()

		in := `{"filename":null,"title":42}`

		var p retitle.Post
		require.NoError(t, json.Unmarshal([]byte(in), &p))

		out, err := json.Marshal(&p)

		require.NoError(t, err)
		assert.Equal(t, in, string(out))
	})

	t.Run("does not escape HTML characters", func(t *testing.T) {
		t.Parallel()

		p := retitle.Post{Filename: "f", Title: "Tax & <Spend>"}

		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		err := enc.Encode(&p)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"title":"Tax & <Spend>"`)
	})

	t.Run("updates title in place inside nested unknown fields", func(t *testing.T) {
		t.Parallel()

		in := `{"meta":{"title":"keep"},"title":"Old","tags":["title"]}`

		var p retitle.Post
		require.NoError(t, json.Unmarshal([]byte(in), &p))
		p.Title = "Économie & Crime"

		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		require.NoError(t, enc.Encode(&p))

		assert.Equal(t, `{"meta":{"title":"keep"},"title":"Économie & Crime","tags":["title"]}`+"\n", buf.String())
	})

	t.Run("unchanged post is written back as decoded", func(t *testing.T) {
		t.Parallel()

		in := `{"z":1,"filename":"f","a":{"b":[1,2]},"title":"Same"}`

		var p retitle.Post
		require.NoError(t, json.Unmarshal([]byte(in), &p))

		out, err := json.Marshal(&p)

		require.NoError(t, err)
		assert.Equal(t, in, string(out))
	})

	t.Run("post built in code emits known keys in order", func(t *testing.T) {
		t.Parallel()

		p := retitle.Post{Filename: "f", WaybackURL: "w", Title: "t", Author: retitle.AuthorBecker}

		out, err := json.Marshal(p)

		require.NoError(t, err)
		assert.Equal(t, `{"filename":"f","wayback_url":"w","title":"t","author":"Gary Becker"}`, string(out))
	})
}

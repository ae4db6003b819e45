// Package batch corrects post titles and authors across an archive.
// It loads the index once, walks every post in order, rewrites the HTML of
// posts whose stored title is a placeholder, and saves the index once at the
// end.
package batch

import (
	"context"
	"fmt"

	"github.com/fwojciec/retitle"
)

// Fixer orchestrates a single correction pass over an archive.
type Fixer struct {
	Index  retitle.PostIndex
	Posts  retitle.PostStore
	Titles retitle.TitleExtractor

	// DryRun reports fixes without rewriting HTML or saving the index.
	DryRun bool
}

// Summary holds the outcome of a correction pass.
type Summary struct {
	Total          int
	Skipped        int
	Unchanged      int
	Fixed          int
	AuthorsUpdated int
}

// ProgressEvent reports progress during a correction pass.
type ProgressEvent struct {
	Type     ProgressType
	Total    int
	Filename string
	OldTitle string
	NewTitle string
	Author   retitle.Author
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	// ProgressStarted is sent once after the index is loaded; Total is set.
	ProgressStarted ProgressType = iota
	// ProgressSkipped is sent for posts without a filename or HTML file.
	ProgressSkipped
	// ProgressUnchanged is sent for posts that needed no change.
	ProgressUnchanged
	// ProgressFixed is sent when a post's title is replaced.
	ProgressFixed
	// ProgressAuthorUpdated is sent when only a post's author changes.
	ProgressAuthorUpdated
)

// ProgressFunc is a callback for reporting correction progress.
type ProgressFunc func(event ProgressEvent)

// Run performs the correction pass. The progress callback, if provided,
// receives events as posts are processed.
//
// The index is saved only after every post has been processed. If Run fails
// part way, HTML files already rewritten stay rewritten and the index is left
// as it was.
func (f *Fixer) Run(ctx context.Context, progress ProgressFunc) (*Summary, error) {
	report := func(event ProgressEvent) {
		if progress != nil {
			progress(event)
		}
	}

	posts, err := f.Index.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load index: %w", err)
	}

	summary := &Summary{Total: len(posts)}
	report(ProgressEvent{Type: ProgressStarted, Total: len(posts)})

	for _, post := range posts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		event, err := f.fixPost(ctx, post)
		if err != nil {
			return nil, err
		}

		switch event.Type {
		case ProgressSkipped:
			summary.Skipped++
		case ProgressFixed:
			summary.Fixed++
		case ProgressAuthorUpdated:
			summary.AuthorsUpdated++
		case ProgressUnchanged:
			summary.Unchanged++
		}
		report(event)
	}

	if f.DryRun {
		return summary, nil
	}

	if err := f.Index.Save(ctx, posts); err != nil {
		return nil, fmt.Errorf("save index: %w", err)
	}
	return summary, nil
}

// fixPost processes one post, mutating it in place, and returns the event
// describing what happened to it.
func (f *Fixer) fixPost(ctx context.Context, post *retitle.Post) (ProgressEvent, error) {
	if post == nil || post.Filename == "" {
		return ProgressEvent{Type: ProgressSkipped}, nil
	}

	ok, err := f.Posts.Exists(ctx, post.Filename)
	if err != nil {
		return ProgressEvent{}, fmt.Errorf("stat post %q: %w", post.Filename, err)
	}
	if !ok {
		return ProgressEvent{Type: ProgressSkipped, Filename: post.Filename}, nil
	}

	html, err := f.Posts.Read(ctx, post.Filename)
	if err != nil {
		return ProgressEvent{}, fmt.Errorf("read post %q: %w", post.Filename, err)
	}

	originURL := retitle.OriginURL(post.WaybackURL)
	newTitle := f.Titles.ExtractTitle(html, originURL)
	author := retitle.InferAuthor(newTitle, originURL, html)

	if retitle.NeedsTitleFix(post.Title) {
		// A placeholder cannot replace a placeholder; the author is left
		// alone too since it was inferred from that placeholder.
		if retitle.IsPlaceholderTitle(newTitle) {
			return ProgressEvent{Type: ProgressUnchanged, Filename: post.Filename, OldTitle: post.Title}, nil
		}

		event := ProgressEvent{
			Type:     ProgressFixed,
			Filename: post.Filename,
			OldTitle: post.Title,
			NewTitle: newTitle,
			Author:   author,
		}
		post.Title = newTitle
		post.Author = author

		if !f.DryRun {
			if err := f.Posts.Rewrite(ctx, post.Filename, newTitle); err != nil {
				return ProgressEvent{}, fmt.Errorf("rewrite post %q: %w", post.Filename, err)
			}
		}
		return event, nil
	}

	if author != post.Author {
		event := ProgressEvent{
			Type:     ProgressAuthorUpdated,
			Filename: post.Filename,
			OldTitle: post.Title,
			NewTitle: post.Title,
			Author:   author,
		}
		post.Author = author
		return event, nil
	}

	return ProgressEvent{Type: ProgressUnchanged, Filename: post.Filename, OldTitle: post.Title}, nil
}

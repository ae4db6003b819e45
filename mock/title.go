package mock

import "github.com/fwojciec/retitle"

var _ retitle.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor is a mock implementation of retitle.TitleExtractor.
type TitleExtractor struct {
	ExtractTitleFn func(html, originURL string) string
}

func (e *TitleExtractor) ExtractTitle(html, originURL string) string {
	return e.ExtractTitleFn(html, originURL)
}

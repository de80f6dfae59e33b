// Package sanitize strips user-supplied note markup down to an explicit
// allow-list of formatting tags plus images.
package sanitize

import "github.com/microcosm-cc/bluemonday"

var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"h3", "h4", "h5", "h6",
		"blockquote", "p", "ul", "ol", "li",
		"b", "i", "strong", "em", "strike", "code",
		"hr", "br", "div", "pre",
		"table", "thead", "caption", "tbody", "tr", "th", "td",
	)
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("src", "alt", "width", "height").OnElements("img")
	p.AllowStandardURLs()

	return p
}

// HTML removes every tag and attribute outside the allow-list. Text content
// of removed tags is kept; script and style bodies are dropped entirely.
func HTML(body string) string {
	return policy.Sanitize(body)
}

package slides

import "strings"

// Content is the generated body of one slide.
type Content struct {
	Title   string   `json:"title"`
	Content []string `json:"content"`
	Code    string   `json:"code,omitempty"`
}

// HasCode reports whether the slide carries a code sample.
func (c Content) HasCode() bool {
	return strings.TrimSpace(c.Code) != ""
}

// Normalize trims the title and bullets, drops blank bullets, and strips
// trailing whitespace from the code sample while keeping its indentation.
func (c Content) Normalize() Content {
	out := Content{Title: strings.TrimSpace(c.Title)}
	for _, line := range c.Content {
		if line = strings.TrimSpace(line); line != "" {
			out.Content = append(out.Content, line)
		}
	}
	if out.Content == nil {
		out.Content = []string{}
	}
	code := strings.TrimRight(c.Code, " \t\r\n")
	out.Code = strings.TrimLeft(code, "\r\n")
	return out
}

// Clone returns a deep copy.
func (c Content) Clone() Content {
	c.Content = append([]string(nil), c.Content...)
	return c
}

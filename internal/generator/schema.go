package generator

import (
	"fmt"

	"lectern/internal/services/llm"
)

// SlideSchema returns the structured-output schema for one slide.
func SlideSchema(opts PromptOptions) *llm.Schema {
	return &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"title": {
				Type:        llm.TypeString,
				Description: fmt.Sprintf("The slide title, in %s.", opts.OutputLanguage),
			},
			"content": {
				Type:        llm.TypeArray,
				Items:       &llm.Schema{Type: llm.TypeString},
				Description: "The main slide content: explanatory bullets or a detailed exercise description. Each item is one bullet or paragraph.",
			},
			"code": {
				Type:        llm.TypeString,
				Description: fmt.Sprintf("A relevant %s code snippet. Use an empty string when no code is needed.", opts.CodeLanguage),
			},
		},
		// Strict structured output requires every property to be listed.
		Required: []string{"title", "content", "code"},
		Ordering: []string{"title", "content", "code"},
	}
}

package generator

import (
	"fmt"
	"strings"

	"lectern/internal/lesson"
)

// PromptOptions parameterizes the prompt templates.
type PromptOptions struct {
	// CodeLanguage is the programming language used for code samples.
	CodeLanguage string
	// Audience describes who the slides are for.
	Audience string
	// OutputLanguage is the natural language the slide text is written in.
	OutputLanguage string
}

// SystemPrompt returns the instruction shared by every slide request.
func SystemPrompt(opts PromptOptions) string {
	return fmt.Sprintf(
		"You are an expert computer science teacher specializing in %[1]s and object-oriented programming. "+
			"Your task is to write the content of a single slide in a presentation for %[2]s. "+
			"Write every title and bullet in simple, clear %[3]s. "+
			"All code samples must be in %[1]s. "+
			"Keep the content concise enough to fit one slide.",
		opts.CodeLanguage, opts.Audience, opts.OutputLanguage,
	)
}

// TemplateFor builds the user prompt for topic. The toc template lists the
// plan's table-of-contents topics.
func TemplateFor(topic lesson.Topic, plan *lesson.Plan, opts PromptOptions) string {
	base := fmt.Sprintf("The slide topic is: %q.", topic.Topic)

	switch topic.Type {
	case lesson.TypeTitle:
		return base + " This is the opening slide of the presentation. Write an engaging title and 2-3 bullets previewing what will be taught."
	case lesson.TypeTOC:
		var entries []string
		if plan != nil {
			entries = plan.TOCTopics()
		}
		return fmt.Sprintf(
			"This is a table of contents slide. The title must be %q. "+
				"The content must be a bullet list of the following topics, one topic per bullet. "+
				"Do not add code. The topics are: %s.",
			topic.Topic, strings.Join(entries, "; "),
		)
	case lesson.TypeConcept:
		return base + fmt.Sprintf(" This is an explanation slide. Provide a clear title, several bullets explaining the concept, and a short relevant %s code sample if appropriate.", opts.CodeLanguage)
	case lesson.TypeExercise:
		return base + " This is an exercise slide. Provide a title starting with the word for \"Exercise:\" and a clear description of a task students complete on their own computer. Include starter code or a sample of the expected output if needed."
	case lesson.TypeSummary:
		return base + " This is a summary slide. Summarize the key points learned so far or present an idea for a closing project."
	case lesson.TypeQA:
		return base + " This is the closing slide. Create a simple \"Questions and Answers\" slide that encourages discussion."
	default:
		return base
	}
}

package lesson

import (
	"fmt"
	"strings"
)

// TopicType tags a topic with the kind of slide it produces.
type TopicType string

const (
	TypeTitle    TopicType = "title"
	TypeTOC      TopicType = "toc"
	TypeConcept  TopicType = "concept"
	TypeExercise TopicType = "exercise"
	TypeSummary  TopicType = "summary"
	TypeQA       TopicType = "qa"
)

// TopicTypes lists every supported type in display order.
var TopicTypes = []TopicType{TypeTitle, TypeTOC, TypeConcept, TypeExercise, TypeSummary, TypeQA}

// Valid reports whether t is one of the supported topic types.
func (t TopicType) Valid() bool {
	for _, known := range TopicTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (t TopicType) String() string { return string(t) }

// ParseTopicType normalizes s and returns the matching type.
func ParseTopicType(s string) (TopicType, error) {
	t := TopicType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown topic type %q", s)
	}
	return t, nil
}

// Topic is one entry of the lesson outline.
type Topic struct {
	Topic string    `toml:"topic" json:"topic"`
	Type  TopicType `toml:"type" json:"type"`
}

package lesson

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed default_plan.toml
var defaultPlan []byte

// Plan is an immutable ordered list of topics.
type Plan struct {
	title  string
	topics []Topic
}

type planFile struct {
	Title  string  `toml:"title"`
	Topics []Topic `toml:"topics"`
}

// NewPlan validates topics and returns a plan holding a private copy.
func NewPlan(title string, topics []Topic) (*Plan, error) {
	if len(topics) == 0 {
		return nil, errors.New("lesson plan has no topics")
	}
	cp := make([]Topic, len(topics))
	for i, topic := range topics {
		topic.Topic = strings.TrimSpace(topic.Topic)
		if topic.Topic == "" {
			return nil, fmt.Errorf("topic %d: text is empty", i)
		}
		typ, err := ParseTopicType(string(topic.Type))
		if err != nil {
			return nil, fmt.Errorf("topic %d: %w", i, err)
		}
		topic.Type = typ
		cp[i] = topic
	}
	return &Plan{title: strings.TrimSpace(title), topics: cp}, nil
}

// DefaultPlan returns the built-in C# object-oriented programming outline.
func DefaultPlan() *Plan {
	plan, err := parsePlan(defaultPlan)
	if err != nil {
		panic(fmt.Sprintf("embedded lesson plan: %v", err))
	}
	return plan
}

// LoadPlan reads a TOML outline from path.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lesson plan: %w", err)
	}
	plan, err := parsePlan(data)
	if err != nil {
		return nil, fmt.Errorf("lesson plan %s: %w", path, err)
	}
	return plan, nil
}

// Resolve loads path when set and falls back to the built-in outline otherwise.
func Resolve(path string) (*Plan, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultPlan(), nil
	}
	return LoadPlan(path)
}

func parsePlan(data []byte) (*Plan, error) {
	var file planFile
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return NewPlan(file.Title, file.Topics)
}

// Title returns the optional outline title.
func (p *Plan) Title() string { return p.title }

// Len returns the number of topics.
func (p *Plan) Len() int { return len(p.topics) }

// At returns the topic at index i.
func (p *Plan) At(i int) (Topic, bool) {
	if i < 0 || i >= len(p.topics) {
		return Topic{}, false
	}
	return p.topics[i], true
}

// Topics returns a copy of the outline.
func (p *Plan) Topics() []Topic {
	return append([]Topic(nil), p.topics...)
}

// TOCTopics returns the topics listed on the table-of-contents slide: every
// topic after the title and toc slides, excluding the closing slide.
func (p *Plan) TOCTopics() []string {
	if len(p.topics) <= 3 {
		return nil
	}
	inner := p.topics[2 : len(p.topics)-1]
	out := make([]string, len(inner))
	for i, topic := range inner {
		out[i] = topic.Topic
	}
	return out
}

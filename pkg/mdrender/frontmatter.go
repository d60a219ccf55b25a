package mdrender

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iyulab/undoc/pkg/model"
)

func strNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

// frontmatter renders the non-nil Metadata fields as a YAML block wrapped
// in "---" fences, per spec.md §4.G. Fields that are nil/empty are
// omitted entirely rather than emitted as null/empty-string ("YAML of
// non-null metadata fields"). Built as a yaml.Node mapping rather than a
// plain map so field order is stable regardless of Go map iteration.
func frontmatter(m model.Metadata) (string, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	put := func(key string, value *yaml.Node) {
		mapping.Content = append(mapping.Content, strNode(key), value)
	}

	if m.Title != nil {
		put("title", strNode(*m.Title))
	}
	if m.Author != nil {
		put("author", strNode(*m.Author))
	}
	if m.Subject != nil {
		put("subject", strNode(*m.Subject))
	}
	if m.Description != nil {
		put("description", strNode(*m.Description))
	}
	if len(m.Keywords) > 0 {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, k := range m.Keywords {
			seq.Content = append(seq.Content, strNode(k))
		}
		put("keywords", seq)
	}
	if m.Created != nil {
		put("created", strNode(m.Created.Format("2006-01-02T15:04:05Z07:00")))
	}
	if m.Modified != nil {
		put("modified", strNode(m.Modified.Format("2006-01-02T15:04:05Z07:00")))
	}
	if m.CreatorApp != nil {
		put("generator", strNode(*m.CreatorApp))
	}

	if len(mapping.Content) == 0 {
		return "", nil
	}

	out, err := yaml.Marshal(mapping)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.Write(out)
	sb.WriteString("---\n\n")
	return sb.String(), nil
}

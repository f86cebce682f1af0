package model

import "strings"

// EventTypeLabel humanizes a snake/kebab-case event tag for display:
// "research_milestone" and "research-milestone" both become
// "Research Milestone". Unknown tags are humanized the same way rather than
// passed through raw.
func EventTypeLabel(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}

	words := strings.FieldsFunc(tag, func(r rune) bool {
		return r == '_' || r == '-'
	})
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}

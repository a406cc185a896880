package loader

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/figkit/template"
)

const frontmatterDelim = "---"

// TemplateFile is a compiled template read from disk.
type TemplateFile struct {
	// Path is the file the template was read from.
	Path string

	// Template is the compiled body, without frontmatter.
	Template *template.Template

	// Defaults holds the variables declared in the frontmatter.
	// Empty when the file has none.
	Defaults template.Data
}

// LoadTemplate reads and compiles the template at path.
func LoadTemplate(path string) (*TemplateFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}

	tf, err := ParseTemplate(string(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tf.Path = path
	return tf, nil
}

// ParseTemplate compiles template file content, splitting off YAML
// frontmatter when the content starts with a "---" line.
func ParseTemplate(content string) (*TemplateFile, error) {
	front, body, err := splitFrontmatter(content)
	if err != nil {
		return nil, err
	}

	defaults := template.Data{}
	if strings.TrimSpace(front) != "" {
		var raw map[string]any
		if err := yaml.Unmarshal([]byte(front), &raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFrontmatter, err)
		}
		defaults = FlattenData(raw)
	}

	tmpl, err := template.Compile(body)
	if err != nil {
		return nil, err
	}
	return &TemplateFile{Template: tmpl, Defaults: defaults}, nil
}

// splitFrontmatter separates "---\n<yaml>\n---\n<body>". Lines may end in
// "\n" or "\r\n"; the body keeps its line endings. Content whose first line
// is not a delimiter is returned whole as the body.
func splitFrontmatter(content string) (front, body string, err error) {
	first, rest, more := nextLine(content)
	if first != frontmatterDelim || !more {
		return "", content, nil
	}

	start := rest
	for {
		line, next, more := nextLine(rest)
		if line == frontmatterDelim {
			return start[:len(start)-len(rest)], next, nil
		}
		if !more {
			return "", "", fmt.Errorf("%w: not closed (missing %s)", ErrFrontmatter, frontmatterDelim)
		}
		rest = next
	}
}

// nextLine splits off the first line of s without its line ending.
// more is false when s has no newline.
func nextLine(s string) (line, rest string, more bool) {
	i := strings.IndexByte(s, '\n')
	if i < 0 {
		return strings.TrimSuffix(s, "\r"), "", false
	}
	return strings.TrimSuffix(s[:i], "\r"), s[i+1:], true
}

package report

import (
	"fmt"
	"regexp"
	"strings"
)

// Filter selects repositories by name using glob patterns. Supports
// * (any characters) and ? (single character) wildcards.
type Filter struct {
	include []*regexp.Regexp
	exclude []*regexp.Regexp
}

// NewFilter compiles include and exclude patterns. With no include patterns
// every repository is included.
func NewFilter(includePatterns, excludePatterns []string) (*Filter, error) {
	if len(includePatterns) == 0 {
		includePatterns = []string{DefaultIncludePattern}
	}

	include, err := compilePatterns(includePatterns)
	if err != nil {
		return nil, fmt.Errorf("include pattern: %w", err)
	}
	exclude, err := compilePatterns(excludePatterns)
	if err != nil {
		return nil, fmt.Errorf("exclude pattern: %w", err)
	}
	return &Filter{include: include, exclude: exclude}, nil
}

// Includes reports whether the repository passes the filter. Exclude
// patterns take precedence.
func (f *Filter) Includes(name string) bool {
	for _, re := range f.exclude {
		if re.MatchString(name) {
			return false
		}
	}
	for _, re := range f.include {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		if p == "" {
			return nil, fmt.Errorf("empty pattern")
		}
		re, err := regexp.Compile(globToRegexp(p))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", p, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

func globToRegexp(pattern string) string {
	var b strings.Builder
	b.WriteString("^")
	for _, char := range pattern {
		switch char {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(char)))
		}
	}
	b.WriteString("$")
	return b.String()
}

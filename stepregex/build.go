// Package stepregex compiles the step-definition regex dialect used to match
// Gherkin step text. Compilation failure is a registration-time programmer
// error, not a runtime protocol error, so Compile panics rather than
// returning an error — a step author finds out immediately, at process start,
// that their pattern doesn't compile.
package stepregex

import (
	"fmt"
	"regexp"
	"strings"
)

// Compile compiles pattern with Go's regexp engine (the host regex engine for
// this implementation). It panics if pattern fails to compile.
func Compile(pattern string) *regexp.Regexp {
	re, err := regexp.Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("stepregex: pattern %q does not compile: %s", pattern, err))
	}
	return re
}

// Builder expands named parameter tokens (like {int}) inside a step
// expression into one or more regex alternatives before compiling them,
// grounded on the teacher's AddParameterTypes/applyParameterTypes mechanism.
// It exists purely as registration-time sugar over Compile; it changes
// nothing about how a compiled regex is matched or reported.
type Builder struct {
	parameterTypes map[string][]string
	order          []string
}

// NewBuilder returns a Builder pre-loaded with the conventional Cucumber
// parameter tokens: {int}, {float}, {word}, {text}.
func NewBuilder() *Builder {
	b := &Builder{parameterTypes: map[string][]string{}}
	b.WithParameterType(`{int}`, `(\d+)`)
	b.WithParameterType(`{float}`, `([-+]?\d*\.?\d+)`)
	b.WithParameterType(`{word}`, `([\d\w]+)`)
	b.WithParameterType(`{text}`, `"([^"]*)"`, `'([^']*)'`)
	return b
}

// WithParameterType registers one or more regex replacements for a token.
// Registering multiple replacements for the same token (as {text} does by
// default) makes CompileAll return one compiled regex per replacement.
func (b *Builder) WithParameterType(token string, patterns ...string) *Builder {
	if _, exists := b.parameterTypes[token]; !exists {
		b.order = append(b.order, token)
	}
	b.parameterTypes[token] = append(b.parameterTypes[token], patterns...)
	return b
}

// CompileAll expands every registered token present in expr and compiles one
// regex per combination produced. An expression with no recognized token
// compiles to exactly one regex, expr itself.
func (b *Builder) CompileAll(expr string) []*regexp.Regexp {
	exprs := []string{expr}

	for _, token := range b.order {
		if !strings.Contains(expr, token) {
			continue
		}
		expanded := make([]string, 0, len(exprs)*len(b.parameterTypes[token]))
		for _, e := range exprs {
			for _, pattern := range b.parameterTypes[token] {
				expanded = append(expanded, strings.Replace(e, token, pattern, -1))
			}
		}
		exprs = expanded
	}

	compiled := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		compiled = append(compiled, Compile(e))
	}
	return compiled
}

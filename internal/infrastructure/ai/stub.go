// Package ai provides assistant responder implementations.
package ai

import (
	"context"
	"fmt"
	"strings"

	projectapp "github.com/buildtrack/backend/internal/application/project"
)

const safetySuffix = "\n\nThis assistant cannot provide construction instructions, measurements, " +
	"or engineering advice. For safety or structural questions, consult a professional."

// Ensure StubResponder implements AIResponder
var _ projectapp.AIResponder = (*StubResponder)(nil)

// StubResponder is a placeholder assistant that echoes the question and its
// context back as the answer. Use this until a real model backend is wired.
type StubResponder struct{}

// NewStubResponder creates a new StubResponder
func NewStubResponder() *StubResponder {
	return &StubResponder{}
}

// Ask composes a canned answer from the question and its context
func (r *StubResponder) Ask(ctx context.Context, question, projectContext, stageContext string) (string, error) {
	parts := []string{projectContext}
	if stageContext != "" {
		parts = append(parts, stageContext)
	}
	parts = append(parts, fmt.Sprintf("Question: %s", question))
	parts = append(parts, "Short, simple-language explanation only. No measurements, no structural advice.")

	return strings.Join(parts, " ") + safetySuffix, nil
}

package ai

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubResponder_Ask(t *testing.T) {
	responder := NewStubResponder()
	ctx := context.Background()

	t.Run("includes project context and question", func(t *testing.T) {
		answer, err := responder.Ask(ctx, "When can I pour concrete?", "Project: House. Location: Oslo.", "")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(answer, "Project: House. Location: Oslo. Question: When can I pour concrete?"))
		assert.Contains(t, answer, "consult a professional")
	})

	t.Run("stage context sits between project context and question", func(t *testing.T) {
		answer, err := responder.Ask(ctx, "What next?", "Project: House. Location: n/a.", "Stage: Foundation.")
		require.NoError(t, err)
		assert.Contains(t, answer, "Project: House. Location: n/a. Stage: Foundation. Question: What next?")
	})

	t.Run("always appends the safety suffix", func(t *testing.T) {
		answer, err := responder.Ask(ctx, "q", "p", "")
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(answer, "consult a professional."))
	})
}

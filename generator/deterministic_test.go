package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Generator = (*Deterministic)(nil)

func TestDeterministicCannedResponse(t *testing.T) {
	gen := NewDeterministic()
	gen.AddResponse("summarise", "canned summary")

	resp, err := gen.Generate(context.Background(), Request{Prompt: "summarise"})
	require.NoError(t, err)
	assert.Equal(t, "canned summary", resp.Text)
}

func TestDeterministicFallback(t *testing.T) {
	gen := NewDeterministic()

	resp, err := gen.Generate(context.Background(), Request{Prompt: "anything"})
	require.NoError(t, err)
	assert.Equal(t, "Draft narrative: anything", resp.Text)

	again, err := gen.Generate(context.Background(), Request{Prompt: "anything"})
	require.NoError(t, err)
	assert.Equal(t, resp.Text, again.Text)
}

func TestDeterministicHonoursCancellation(t *testing.T) {
	gen := NewDeterministic()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.Generate(ctx, Request{Prompt: "anything"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDeterministicInfo(t *testing.T) {
	info := NewDeterministic().Info()
	assert.True(t, info.Deterministic)
	assert.Equal(t, "deterministic", info.Provider)
}

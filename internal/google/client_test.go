package google

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRequestGemmaInlinesSystem(t *testing.T) {
	contents, config := buildRequest(ModelGemma3_27B, "be brief", "물")
	require.NotNil(t, config)
	assert.Nil(t, config.SystemInstruction)
	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.2, *config.Temperature, 1e-6)
	require.Len(t, contents, 1)
	require.Len(t, contents[0].Parts, 1)
	assert.Equal(t, "be brief\n\n물", contents[0].Parts[0].Text)
}

func TestBuildRequestGeminiUsesSystemInstruction(t *testing.T) {
	contents, config := buildRequest(ModelGemini2_5Flash, "be brief", "물")
	require.NotNil(t, config)
	require.NotNil(t, config.SystemInstruction)
	assert.Equal(t, "be brief", config.SystemInstruction.Parts[0].Text)
	require.Len(t, contents, 1)
	assert.Equal(t, "물", contents[0].Parts[0].Text)
}

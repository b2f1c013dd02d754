package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandName(t *testing.T) {
	tests := map[string]string{
		"GetAvatar":             "get-avatar",
		"InteractWithCompanion": "interact-with-companion",
		"ListCompanionLevels":   "list-companion-levels",
	}
	for method, want := range tests {
		assert.Equal(t, want, commandName(method))
	}
}

func TestBuildRequest(t *testing.T) {
	req, err := buildRequest(`{"config":{"hat":"crown"},"size":64}`,
		[]string{"player_id=kid-1", "size=128", "interactive=true"})
	require.NoError(t, err)

	fields := req.AsMap()
	assert.Equal(t, "kid-1", fields["player_id"])
	assert.Equal(t, float64(128), fields["size"])
	assert.Equal(t, true, fields["interactive"])
	assert.Equal(t, "crown", fields["config"].(map[string]any)["hat"])
}

func TestBuildRequestKeepsIDsAsStrings(t *testing.T) {
	req, err := buildRequest("", []string{"player_id=42", "value=true"})
	require.NoError(t, err)
	assert.Equal(t, "42", req.AsMap()["player_id"])
	assert.Equal(t, "true", req.AsMap()["value"])
}

func TestBuildRequestErrors(t *testing.T) {
	_, err := buildRequest(`[1,2]`, nil)
	assert.Error(t, err)

	_, err = buildRequest("", []string{"player_id"})
	assert.Error(t, err)
}

func TestEveryMethodHasACommand(t *testing.T) {
	names := map[string]bool{}
	for _, c := range ClientCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["get-avatar"])
	assert.True(t, names["list-companion-levels"])
	assert.Len(t, names, 10)
}

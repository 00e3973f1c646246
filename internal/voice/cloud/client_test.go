package cloud

import (
	"testing"

	"voxplorer/internal/config"
	"voxplorer/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientNeedsKey(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.Voice.OpenAI.APIKeyEnv = "VOXPLORER_TEST_MISSING_KEY"
	t.Setenv("VOXPLORER_TEST_MISSING_KEY", "")

	_, err := NewClient(cfg)
	require.Error(t, err)
	assert.Equal(t, errors.VoiceUnavailable, errors.KindOf(err))
	assert.Contains(t, err.Error(), "VOXPLORER_TEST_MISSING_KEY")
}

func TestNewClientWithProxy(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.Voice.OpenAI.APIKeyEnv = "VOXPLORER_TEST_KEY"
	cfg.Voice.OpenAI.Proxy = "127.0.0.1:1080"
	t.Setenv("VOXPLORER_TEST_KEY", "sk-test")

	_, err := NewClient(cfg)
	require.NoError(t, err)
}

func TestNewSocksClient(t *testing.T) {
	c, err := NewSocksClient("127.0.0.1:1080")
	require.NoError(t, err)
	assert.NotNil(t, c.Transport)
}

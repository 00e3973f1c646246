package nlu

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"voxplorer/internal/voice"
	"voxplorer/pkg/types"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatServer(t *testing.T, content string, gotBody *map[string]any) openai.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if gotBody != nil {
			_ = json.Unmarshal(body, gotBody)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 0,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return openai.NewClient(
		option.WithAPIKey("sk-test"),
		option.WithBaseURL(srv.URL+"/"),
		option.WithMaxRetries(0),
	)
}

func TestClassify(t *testing.T) {
	var body map[string]any
	client := chatServer(t, `{"action":"change_directory","target":"folder","argument":" music "}`, &body)

	cmd, err := New(client, "").Classify(context.Background(), "take me to my music")
	require.NoError(t, err)
	assert.Equal(t, voice.ChangeDirectory, cmd.Action)
	assert.Equal(t, types.Folder, cmd.Target)
	assert.Equal(t, "music", cmd.Argument)
	assert.Equal(t, "take me to my music", cmd.Text)
	assert.Equal(t, "gpt-4o-mini", body["model"])
}

func TestClassifyFencedAndUnknown(t *testing.T) {
	client := chatServer(t, "```json\n{\"action\":\"dance\",\"target\":\"\",\"argument\":\"\"}\n```", nil)

	cmd, err := New(client, "gpt-4o-mini").Classify(context.Background(), "let's dance")
	require.NoError(t, err)
	assert.Equal(t, voice.NoAction, cmd.Action)
	assert.Equal(t, types.Any, cmd.Target)
}

func TestClassifyBadJSON(t *testing.T) {
	client := chatServer(t, "I think you want to open a folder", nil)

	_, err := New(client, "").Classify(context.Background(), "open something")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal classifier result")
}

// Package nlu asks a chat model to classify utterances the command grammar
// could not parse.
package nlu

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"voxplorer/internal/log"
	"voxplorer/internal/voice"
	"voxplorer/pkg/types"

	openai "github.com/openai/openai-go/v3"
)

// Result is the JSON object the model answers with
type Result struct {
	Action   string `json:"action"`
	Target   string `json:"target"`
	Argument string `json:"argument"`
}

const systemPrompt = `
You are the command classifier of a voice controlled file explorer.
Your ONLY job is to convert the user's utterance into a minimal JSON object.

RULES:
1. Do NOT converse.
2. Do NOT add explanations or markdown.
3. Output ONLY JSON.

OUTPUT FORMAT:
{"action": "<action>", "target": "<file|folder|>", "argument": "<text or empty>"}

ACTIONS:
- "open"             open a file or folder; argument is the name to look for
- "rename"           rename the selected item; argument is the new name
- "copy"             copy an item to the clipboard
- "move"             cut an item to the clipboard
- "delete"           delete an item
- "preview"          preview a file
- "back"             go back to the previous folder
- "paste"            paste the clipboard into the current folder
- "change_directory" switch to a drive or folder; argument is its name or letter
- "search"           find an item by name
- "none"             anything else

Keep names as the user said them. Never invent a name that was not spoken.
`

// Classifier implements voice.IntentClassifier with a chat completion call
type Classifier struct {
	client openai.Client
	model  string
}

// New creates a classifier using model (e.g. "gpt-4o-mini")
func New(client openai.Client, model string) *Classifier {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &Classifier{client: client, model: model}
}

// Analyze returns the raw classification of transcript
func (c *Classifier) Analyze(ctx context.Context, transcript string) (Result, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(transcript),
		},
		Model: openai.ChatModel(c.model),
	})
	if err != nil {
		return Result{}, fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return Result{}, fmt.Errorf("no choices in response")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return Result{}, fmt.Errorf("empty message content")
	}
	// Models sometimes wrap the object in a code fence anyway
	content = strings.TrimPrefix(content, "```json")
	content = strings.Trim(content, "`\n ")

	log.Debug("Classifier answered %s", content)

	var out Result
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return Result{}, fmt.Errorf("unmarshal classifier result: %w (raw: %s)", err, content)
	}
	return out, nil
}

// Classify implements voice.IntentClassifier. Unknown actions map to
// voice.NoAction so the caller reports the utterance as not recognised.
func (c *Classifier) Classify(ctx context.Context, text string) (voice.Command, error) {
	res, err := c.Analyze(ctx, text)
	if err != nil {
		return voice.Command{}, err
	}
	return voice.Command{
		Action:   voice.ParseAction(res.Action),
		Target:   types.ParseKind(res.Target),
		Argument: strings.TrimSpace(res.Argument),
		Text:     text,
	}, nil
}

var _ voice.IntentClassifier = (*Classifier)(nil)

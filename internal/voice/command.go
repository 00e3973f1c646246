package voice

import (
	"fmt"
	"regexp"
	"strings"

	"voxplorer/internal/errors"
	"voxplorer/pkg/types"
)

// Action is what a voice command asks the explorer to do
type Action int

const (
	NoAction Action = iota
	Open
	Rename
	Copy
	Move
	Delete
	Preview
	Back
	Paste
	ChangeDirectory
	Search
)

var actionNames = map[Action]string{
	NoAction:        "none",
	Open:            "open",
	Rename:          "rename",
	Copy:            "copy",
	Move:            "move",
	Delete:          "delete",
	Preview:         "preview",
	Back:            "back",
	Paste:           "paste",
	ChangeDirectory: "change_directory",
	Search:          "search",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// ParseAction maps a canonical action name back to its Action
func ParseAction(s string) Action {
	s = strings.ToLower(strings.TrimSpace(s))
	for a, name := range actionNames {
		if name == s {
			return a
		}
	}
	return NoAction
}

// Command is a recognised voice command
type Command struct {
	Action   Action
	Target   types.Kind // File or Folder when the utterance named one
	Argument string     // Free text after the action and target, original case
	Text     string     // The transcript the command came from
}

func (c Command) String() string {
	s := c.Action.String()
	if c.Target != types.Any {
		s += "(" + c.Target.String() + ")"
	}
	if c.Argument != "" {
		s += fmt.Sprintf(" %q", c.Argument)
	}
	return s
}

// Feedback messages spoken when an utterance cannot be used
const (
	MsgPrompt        = "Say a command"
	MsgNotUnderstood = "Sorry, I did not understand."
	MsgNotRecognized = "Command not recognized. Please try again."
	MsgUnavailable   = "Voice commands are unavailable."
)

// Feedback returns the sentence to announce for a voice pipeline error
func Feedback(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.IsNotRecognized(err):
		return MsgNotRecognized
	default:
		return MsgNotUnderstood
	}
}

var actionWords = map[string]Action{
	"open":    Open,
	"show":    Open,
	"launch":  Open,
	"rename":  Rename,
	"copy":    Copy,
	"move":    Move,
	"cut":     Move,
	"delete":  Delete,
	"remove":  Delete,
	"preview": Preview,
	"view":    Preview,
	"back":    Back,
	"return":  Back,
	"paste":   Paste,
	"search":  Search,
	"find":    Search,
}

var (
	changeVerbs   = map[string]bool{"change": true, "switch": true}
	changeObjects = map[string]bool{"directory": true, "drive": true, "folder": true, "dir": true}
	changeFillers = map[string]bool{"the": true, "to": true, "a": true, "my": true, "another": true}
	articles      = map[string]bool{"the": true, "a": true, "an": true, "this": true, "that": true, "my": true}
	connectors    = map[string]bool{"to": true, "named": true, "called": true, "for": true, "into": true}

	// Whisper marks silence and noise with bracketed tags
	noiseTag = regexp.MustCompile(`\[[^\]]*\]|\([^)]*\)`)
)

// Parse interprets a transcript. Words are matched whole, so the first
// action word decides the action and later words are only the argument:
// "open folder back up" opens a folder called "back up".
//
// An empty transcript is ErrNotUnderstood; text without an action word is
// a CommandNotRecognized error.
func Parse(text string) (Command, error) {
	words := tokenize(text)
	if len(words) == 0 {
		return Command{}, errors.ErrNotUnderstood
	}

	cmd := Command{Text: strings.TrimSpace(text)}

	i := 0
	for ; i < len(words); i++ {
		w := words[i].lower
		if a, ok := actionWords[w]; ok {
			cmd.Action = a
			i++
			break
		}
		if changeVerbs[w] {
			k := skip(words, i+1, changeFillers)
			if k < len(words) && changeObjects[words[k].lower] {
				cmd.Action = ChangeDirectory
				i = k + 1
				break
			}
		}
		if w == "go" && i+1 < len(words) && (words[i+1].lower == "to" || words[i+1].lower == "into") {
			cmd.Action = ChangeDirectory
			i += 2
			break
		}
	}
	if cmd.Action == NoAction {
		return Command{}, errors.NewVoiceError(fmt.Sprintf("command not recognized: %q", cmd.Text),
			"parse", errors.CommandNotRecognized, nil)
	}

	if cmd.Action == ChangeDirectory {
		cmd.Target = types.Folder
		if j := skip(words, i, articles); j < len(words) && changeObjects[words[j].lower] {
			i = j + 1
		}
	} else if j := skip(words, i, articles); j < len(words) {
		switch words[j].lower {
		case "file":
			cmd.Target = types.File
			i = j + 1
		case "folder", "directory":
			cmd.Target = types.Folder
			i = j + 1
		}
	}

	for i < len(words) && (connectors[words[i].lower] || articles[words[i].lower]) {
		i++
	}

	rest := make([]string, 0, len(words)-i)
	for _, w := range words[i:] {
		rest = append(rest, w.orig)
	}
	cmd.Argument = strings.Join(rest, " ")

	return cmd, nil
}

// skip returns the first index at or after i whose word is not in set
func skip(words []word, i int, set map[string]bool) int {
	for i < len(words) && set[words[i].lower] {
		i++
	}
	return i
}

type word struct {
	orig  string
	lower string
}

func tokenize(text string) []word {
	text = noiseTag.ReplaceAllString(text, " ")
	fields := strings.Fields(text)
	words := make([]word, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, `,.!?;:"'`)
		if f == "" {
			continue
		}
		words = append(words, word{orig: f, lower: strings.ToLower(f)})
	}
	return words
}

package tui

import (
	"context"
	"sync"

	"voxplorer/internal/config"
	"voxplorer/internal/explorer"
	"voxplorer/internal/fsops"
	"voxplorer/internal/log"
	"voxplorer/internal/preview"
	"voxplorer/internal/search"
	"voxplorer/internal/tui/components"
	"voxplorer/internal/tui/messages"
	"voxplorer/internal/voice/engine"
	"voxplorer/internal/watch"
	"voxplorer/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Title is shown above the listing
const Title = "Voice Controlled File Explorer"

const (
	defaultWidth  = 80
	defaultHeight = 24
	// Lines taken by the title, path, prompt, status and help
	chromeHeight = 8
)

// Model is the terminal front-end. It is the explorer's notifier, prompter
// and viewer, so explorer operations run inside Update and the model is
// mutated in place rather than copied.
type Model struct {
	cfg      *config.Config
	fs       *fsops.Accessor
	explorer *explorer.Explorer
	voice    *engine.Engine
	watcher  *watch.Watcher

	// Cancelled when the program quits
	ctx    context.Context
	cancel context.CancelFunc

	keys    types.KeyMap
	help    help.Model
	list    list.Model
	input   textinput.Model
	status  *components.StatusBar
	preview *components.PreviewPane

	mode      types.Mode
	prompt    string
	onInput   func(string, bool)
	onConfirm func(bool)

	picker       *explorer.Picker
	pickerCursor int

	listening bool
	width     int
	height    int
	quitting  bool
	closeOnce sync.Once
	closeErr  error
}

// New creates the model over the configured start directory. Voice options
// are passed to the voice engine.
func New(cfg *config.Config, opts ...engine.Option) *Model {
	return newModel(cfg, nil, opts...)
}

// newModel lets tests replace explorer collaborators such as the opener
func newModel(cfg *config.Config, extra []explorer.Option, opts ...engine.Option) *Model {
	ctx, cancel := context.WithCancel(context.Background())

	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 255

	m := &Model{
		cfg:     cfg,
		fs:      fsops.NewWithConfig(cfg),
		voice:   engine.New(cfg, opts...),
		ctx:     ctx,
		cancel:  cancel,
		keys:    types.DefaultKeyMap(),
		help:    help.New(),
		list:    components.NewFileList(defaultWidth, defaultHeight-chromeHeight),
		input:   input,
		status:  components.NewStatusBar(),
		preview: components.NewPreviewPane(defaultWidth, defaultHeight-chromeHeight),
		mode:    types.Normal,
		width:   defaultWidth,
		height:  defaultHeight,
	}

	eopts := []explorer.Option{
		explorer.WithNotifier(m),
		explorer.WithPrompter(m),
		explorer.WithViewer(m),
		explorer.WithPreviewer(preview.NewWithConfig(cfg)),
		explorer.WithFinder(search.NewWithConfig(cfg)),
		explorer.WithChangeHook(m.explorerChanged),
	}
	m.explorer = explorer.New(m.fs, append(eopts, extra...)...)

	if cfg.Explorer.Watch {
		w, err := watch.New()
		if err != nil {
			log.LogWithError(err).Warn("Auto refresh disabled")
		} else {
			m.watcher = w
		}
	}

	if err := m.explorer.Load(cfg.ResolveStartDir()); err != nil {
		log.LogWithError(err).Error("Cannot show start directory")
	}
	m.syncSelection()
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.watcher != nil {
		if err := m.watcher.Start(); err != nil {
			log.LogWithError(err).Warn("Auto refresh disabled")
		} else {
			cmds = append(cmds, waitForChange(m.watcher.Changes()))
		}
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case messages.VoiceResultMsg:
		m.listening = false
		m.status.SetLoading(false)
		m.explorer.HandleVoice(m.ctx, msg.Command, msg.Err)
		m.syncSelection()
		return m, nil

	case messages.DirectoryChangeMsg:
		if msg.Closed || m.watcher == nil {
			return m, nil
		}
		if msg.Path == m.explorer.Dir() && m.mode == types.Normal {
			m.explorer.Refresh()
			m.syncSelection()
		}
		return m, waitForChange(m.watcher.Changes())

	case messages.ErrorMsg:
		m.status.SetAlert(msg.Err.Error())
		return m, nil

	case spinner.TickMsg:
		return m, m.status.Update(msg)
	}
	return m, nil
}

// Close stops the watcher and the voice engine. It is safe to call twice.
func (m *Model) Close() error {
	m.closeOnce.Do(func() {
		m.cancel()
		if m.watcher != nil {
			m.watcher.Stop()
		}
		m.closeErr = m.voice.Close()
	})
	return m.closeErr
}

// Explorer returns the state the model drives
func (m *Model) Explorer() *explorer.Explorer {
	return m.explorer
}

// Mode returns the current input mode
func (m *Model) Mode() types.Mode {
	return m.mode
}

// Status returns the last announcement
func (m *Model) Status() string {
	return m.status.Text()
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.input.Width = width - 10
	body := height - chromeHeight
	if body < 3 {
		body = 3
	}
	m.list.SetSize(width, body)
	m.preview.SetSize(width, body)
}

// explorerChanged mirrors the explorer listing into the list
func (m *Model) explorerChanged() {
	if m.watcher != nil && m.explorer.Dir() != "" {
		if err := m.watcher.Follow(m.explorer.Dir()); err != nil {
			log.LogWithError(err).Debug("Cannot watch directory")
		}
	}
	selected := ""
	if e, ok := m.explorer.Selected(); ok {
		selected = e.Path
	}
	components.SetEntries(&m.list, m.explorer.Entries(), selected)
}

// syncSelection makes the row under the cursor the explorer selection.
// The terminal has no "nothing selected" state while rows exist.
func (m *Model) syncSelection() {
	e, ok := components.SelectedEntry(m.list)
	if !ok {
		return
	}
	if cur, has := m.explorer.Selected(); !has || cur.Path != e.Path {
		m.explorer.Select(e.Path)
	}
}

func waitForChange(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		dir, ok := <-ch
		if !ok {
			return messages.DirectoryChangeMsg{Closed: true}
		}
		return messages.DirectoryChangeMsg{Path: dir}
	}
}

// Run starts the terminal explorer and blocks until the user quits
func Run(cfg *config.Config, opts ...engine.Option) error {
	m := New(cfg, opts...)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

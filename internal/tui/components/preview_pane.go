package components

import (
	"fmt"

	"voxplorer/internal/preview"
	"voxplorer/internal/tui/styles"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// PreviewPane shows a loaded preview in a scrollable viewport. Images
// cannot be drawn in a terminal, so only their dimensions are shown.
type PreviewPane struct {
	viewport viewport.Model
	title    string
}

func NewPreviewPane(width, height int) *PreviewPane {
	vp := viewport.New(width, height)
	vp.Style = styles.Theme.Pane
	return &PreviewPane{viewport: vp}
}

func (p *PreviewPane) SetSize(width, height int) {
	p.viewport.Width = width
	p.viewport.Height = height
}

// SetResult replaces the pane content
func (p *PreviewPane) SetResult(res preview.Result) {
	p.title = res.Title()
	var content string
	switch res.Kind {
	case preview.Text:
		content = res.Text
		if res.Truncated {
			content += fmt.Sprintf("\n\n[preview truncated at %d bytes]", res.Limit)
		}
	case preview.Image:
		b := res.Image.Bounds()
		content = fmt.Sprintf("Image %dx%d (scaled from %dx%d)",
			b.Dx(), b.Dy(), res.Original.X, res.Original.Y)
	}
	p.viewport.SetContent(content)
	p.viewport.GotoTop()
}

func (p *PreviewPane) Title() string {
	return p.title
}

func (p *PreviewPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

func (p *PreviewPane) View() string {
	return styles.Theme.Prompt.Render(p.title) + "\n" + p.viewport.View()
}

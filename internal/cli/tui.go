package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperr "github.com/matzehuels/asciiflag/pkg/errors"
	"github.com/matzehuels/asciiflag/pkg/flag"
)

// Preview styles
var previewStatusStyle = lipgloss.NewStyle().Foreground(colorGray)

// previewChrome is the number of terminal rows used around the flag.
const previewChrome = 6

// =============================================================================
// PreviewModel - Interactive flag resizing
// =============================================================================

// PreviewModel is the bubbletea model for the interactive flag preview.
// The flag is rendered when N changes, never from View.
type PreviewModel struct {
	N      int
	Chars  flag.Characters
	Width  int // terminal width, 0 until known
	Height int // terminal height, 0 until known

	ctx       context.Context
	text      string // flag rendered at renderedN
	err       error
	renderedN int
}

// NewPreviewModel creates a preview starting at size n.
func NewPreviewModel(ctx context.Context, n int, chars flag.Characters) PreviewModel {
	m := PreviewModel{N: n, Chars: chars, ctx: ctx}
	m.render()
	return m
}

// render refreshes the cached flag text for the current size.
func (m *PreviewModel) render() {
	m.text, m.err = renderFlag(m.context(), m.N, m.Chars)
	m.renderedN = m.N
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "+", "=", "up", "k", "right", "l":
			if m.N+2 <= flag.MaxSize && m.fits(m.N+2) {
				m.N += 2
			}
		case "-", "_", "down", "j", "left", "h":
			if m.N >= 2 {
				m.N -= 2
			}
		case "0", "home":
			m.N = 0
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		for m.N >= 2 && !m.fits(m.N) {
			m.N -= 2
		}
	}
	if m.N != m.renderedN {
		m.render()
	}
	return m, nil
}

// fits reports whether a flag of size n fits the terminal. An unknown
// terminal size fits everything.
func (m PreviewModel) fits(n int) bool {
	d := flag.ComputeDimensions(n)
	if m.Width > 0 && d.BorderWidth > m.Width {
		return false
	}
	if m.Height > 0 && d.BorderHeight+previewChrome > m.Height {
		return false
	}
	return true
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("+/- resize  0 reset  q quit"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleError.Render(apperr.UserMessage(m.err)))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(m.text)

	d := flag.ComputeDimensions(m.N)
	b.WriteString("\n")
	b.WriteString(previewStatusStyle.Render(fmt.Sprintf("  n=%d  %dx%d", m.N, d.BorderWidth, d.BorderHeight)))

	return b.String()
}

func (m PreviewModel) context() context.Context {
	if m.ctx == nil {
		return context.Background()
	}
	return m.ctx
}

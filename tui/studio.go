package tui

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/watzon/tintbox/color"
	"github.com/watzon/tintbox/config"
	"github.com/watzon/tintbox/palette"
)

// StudioModel is the interactive palette editor: five swatch cards, a
// lock mask, and the keyboard flows that replace the original mouse UI.
type StudioModel struct {
	width  int
	height int

	gen      *palette.Generator
	pal      *palette.Palette
	locks    [palette.Size]bool
	selected int

	theme     config.Theme
	outputDir string
	keys      keyMap
	help      help.Model

	status    string
	statusErr bool
	err       error
}

// NewStudioModel creates the studio with a fresh random palette.
func NewStudioModel(cfg *config.Config) (StudioModel, error) {
	gen, err := palette.NewGenerator()
	if err != nil {
		return StudioModel{}, err
	}
	pal, err := gen.GenerateRandom()
	if err != nil {
		return StudioModel{}, err
	}

	return StudioModel{
		gen:       gen,
		pal:       pal,
		theme:     cfg.Theme,
		outputDir: cfg.OutputDir,
		keys:      newKeyMap(),
		help:      help.New(),
	}, nil
}

// Init implements tea.Model
func (m StudioModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m StudioModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m StudioModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()

	switch s {
	case "left", "h":
		m.selected = (m.selected + palette.Size - 1) % palette.Size
		m.status = ""
	case "right", "l":
		m.selected = (m.selected + 1) % palette.Size
		m.status = ""
	case "1", "2", "3", "4", "5":
		i := int(s[0] - '1')
		m.locks[i] = !m.locks[i]
		m.selected = i
		m.status = ""
	case "enter":
		m.locks[m.selected] = !m.locks[m.selected]
		m.status = ""
	case " ", "g":
		pal, err := m.gen.Regenerate(m.pal, m.locks)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.pal = pal
		m.status = ""
	case "r":
		if m.locks[m.selected] {
			m.setStatus("swatch is locked", true)
			return m, nil
		}
		m.pal.Swatches[m.selected] = m.gen.RandomSwatch()
		m.status = ""
	case "m":
		pal, err := m.gen.Regenerate(m.cycledModePalette(), m.locks)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.pal = pal
		m.status = ""
	case "c":
		hex := m.pal.Swatches[m.selected].Hex
		if err := clipboard.WriteAll(hex); err != nil {
			m.setStatus("clipboard unavailable", true)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("copied %s", hex), false)
	case "t":
		m.theme = m.theme.Toggle()
		if err := config.SaveTheme(m.theme); err != nil {
			m.setStatus("could not persist theme", true)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("%s theme", m.theme), false)
	case "s":
		name := fmt.Sprintf("tintbox-%s.png", time.Now().Format("20060102-150405"))
		path := filepath.Join(m.outputDir, name)
		if err := m.saveCard(path); err != nil {
			m.setStatus("could not save card", true)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("saved %s", path), false)
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	}

	return m, nil
}

// cycledModePalette returns the palette with its mode advanced to the
// next deterministic harmony mode.
func (m StudioModel) cycledModePalette() *palette.Palette {
	next := *m.pal
	for i, mode := range color.Modes {
		if mode == m.pal.Mode {
			next.Mode = color.Modes[(i+1)%len(color.Modes)]
			return &next
		}
	}
	// Palette was random or extracted; start the cycle at the top.
	next.Mode = color.Modes[0]
	return &next
}

func (m StudioModel) saveCard(path string) error {
	img, err := m.pal.ToImage()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func (m *StudioModel) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m *StudioModel) setError(err error) {
	m.err = err
	m.status = err.Error()
	m.statusErr = true
}

// View renders the studio
func (m StudioModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	borderColor, primary, secondary, helpColor := m.themeColors()

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(primary))
	modeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(secondary))

	header := lipgloss.JoinHorizontal(
		lipgloss.Center,
		titleStyle.Render("tintbox studio"),
		modeStyle.Render("  ·  "+m.pal.ModeName),
	)

	cards := make([]string, 0, palette.Size)
	for i, sw := range m.pal.Swatches {
		cards = append(cards, m.renderCard(i, sw, borderColor))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	strip := gradientStrip(m.pal.HexCodes(), lipgloss.Width(row))

	status := ""
	if m.status != "" {
		statusColor := colorSuccess
		if m.statusErr {
			statusColor = colorError
		}
		status = lipgloss.NewStyle().Foreground(lipgloss.Color(statusColor)).Render(m.status)
	}

	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(primary))
	m.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(helpColor))

	sections := []string{header, "", row}
	if strip != "" {
		sections = append(sections, strip)
	}
	sections = append(sections, "", status, m.help.View(m.keys))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderCard draws a single swatch card: a colored block with the hex
// code inside it, the closest color name under it, and a lock marker.
func (m StudioModel) renderCard(i int, sw palette.Swatch, borderColor string) string {
	contrast, err := color.ContrastColor(sw.Hex)
	if err != nil {
		contrast = color.ContrastLight
	}

	block := lipgloss.NewStyle().
		Background(lipgloss.Color(sw.Hex)).
		Foreground(lipgloss.Color(contrast)).
		Width(12).
		Height(5).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.TrimPrefix(sw.Hex, "#"))

	marker := " "
	if m.locks[i] {
		marker = "🔒"
	}

	_, _, secondary, _ := m.themeColors()
	label := lipgloss.NewStyle().
		Foreground(lipgloss.Color(secondary)).
		Width(12).
		Align(lipgloss.Center).
		Render(truncate(sw.Name, 12))

	card := lipgloss.JoinVertical(lipgloss.Center, block, label, marker)

	border := lipgloss.NormalBorder()
	style := lipgloss.NewStyle().
		Border(border).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(0, 1)
	if i == m.selected {
		style = style.BorderForeground(lipgloss.Color(colorAccent))
	}

	return style.Render(card)
}

func (m StudioModel) themeColors() (border, primary, secondary, helpColor string) {
	if m.theme == config.ThemeLight {
		return lightBorder, lightPrimaryText, lightSecondaryText, lightHelpText
	}
	return darkBorder, darkPrimaryText, darkSecondaryText, darkHelpText
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

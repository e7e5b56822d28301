package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	p := tea.NewProgram(
		initialModel(DefaultConfigPath()),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

type model struct {
	display *ClockDisplay
	cfg     Config
	cfgPath string
	cfgTime time.Time // config file mtime at last load, zero if absent

	width  int
	height int

	// True while the ~60 Hz frame ticker is scheduled. Frames are only
	// driven while something is animating, which bounds the redraw work to
	// the second boundaries plus the transition window after each.
	frameLoop bool
	lastFrame time.Time

	status   string
	statusAt time.Time
	statusOK bool
}

func initialModel(cfgPath string) model {
	cfg, err := LoadConfig(cfgPath)
	style, warnings := cfg.Style()
	st := &style

	display := NewClockDisplay(st, cfg.Clock.Use24Hour)
	display.ApplyImmediate(time.Now())

	m := model{
		display: display,
		cfg:     cfg,
		cfgPath: cfgPath,
		cfgTime: configStamp(cfgPath),
	}
	if err != nil {
		m.setError(err.Error())
	} else if len(warnings) > 0 {
		m.setError(warnings[0])
	}
	return m
}

type tickMsg time.Time
type frameMsg time.Time
type configPollMsg time.Time

// tickCmd fires on the next wall-clock second boundary so digit changes line
// up with the actual time rather than drifting by the program start offset.
func tickCmd() tea.Cmd {
	now := time.Now()
	next := now.Truncate(time.Second).Add(time.Second)
	return tea.Tick(time.Until(next), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func configPollCmd() tea.Cmd {
	return tea.Tick(configPollInterval, func(t time.Time) tea.Msg {
		return configPollMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), configPollCmd())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		now := time.Time(msg)
		m.display.Tick(now)
		if m.status != "" && now.Sub(m.statusAt) > statusMessageTTL {
			m.status = ""
		}
		return m, tea.Batch(tickCmd(), m.startFrames())

	case frameMsg:
		now := time.Time(msg)
		dt := now.Sub(m.lastFrame)
		if dt < 0 {
			dt = 0
		}
		m.lastFrame = now
		if m.display.Advance(dt) {
			return m, frameCmd()
		}
		m.frameLoop = false
		return m, nil

	case configPollMsg:
		var cmd tea.Cmd
		if stamp := configStamp(m.cfgPath); !stamp.Equal(m.cfgTime) {
			cmd = m.reloadConfig()
		}
		return m, tea.Batch(configPollCmd(), cmd)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "y":
		ts := m.display.TimeString(time.Now())
		if err := clipboard.WriteAll(ts); err != nil {
			m.setError(fmt.Sprintf("clipboard: %v", err))
		} else {
			m.setStatus("copied " + ts)
		}
		return m, nil

	case "s":
		now := time.Now()
		path := fmt.Sprintf("clockgrid-%s.png", now.Format("20060102-150405"))
		if err := saveSnapshot(m.display, now, path); err != nil {
			m.setError(fmt.Sprintf("snapshot: %v", err))
		} else {
			m.setStatus("saved " + path)
		}
		return m, nil

	case "t":
		m.display.SetUse24Hour(!m.display.Use24Hour())
		m.display.Tick(time.Now())
		if m.display.Use24Hour() {
			m.setStatus("24-hour mode")
		} else {
			m.setStatus("12-hour mode")
		}
		return m, m.startFrames()

	case "r":
		return m, m.reloadConfig()
	}
	return m, nil
}

// startFrames begins the frame loop if anything is animating and the loop
// is not already running.
func (m *model) startFrames() tea.Cmd {
	if m.frameLoop || !m.display.Animating() {
		return nil
	}
	m.frameLoop = true
	m.lastFrame = time.Now()
	return frameCmd()
}

// reloadConfig re-reads the config file, swaps in a fresh style snapshot and
// re-applies the current time without animation, matching the behavior on
// hot-reload: a half-finished transition into stale colors would look wrong.
func (m *model) reloadConfig() tea.Cmd {
	cfg, err := LoadConfig(m.cfgPath)
	style, warnings := cfg.Style()
	st := &style

	m.cfg = cfg
	m.cfgTime = configStamp(m.cfgPath)
	m.display.SetStyle(st)
	m.display.SetUse24Hour(cfg.Clock.Use24Hour)
	m.display.ApplyImmediate(time.Now())
	m.frameLoop = false

	switch {
	case err != nil:
		m.setError(err.Error())
	case len(warnings) > 0:
		m.setError(warnings[0])
	default:
		m.setStatus("config reloaded")
	}
	return nil
}

func (m *model) setStatus(s string) {
	m.status = s
	m.statusAt = time.Now()
	m.statusOK = true
}

func (m *model) setError(s string) {
	m.status = s
	m.statusAt = time.Now()
	m.statusOK = false
}

func (m model) View() string {
	if m.width < 1 || m.height < 2 {
		return ""
	}

	frame := renderFrame(m.display)
	body := renderTerminal(frame.Image(), m.width, m.height-1, m.display.Style().WindowBackground)

	return body + "\n" + m.statusBar()
}

func (m model) statusBar() string {
	left := timeTextStyle.Render(m.display.TimeString(time.Now()))
	right := hintStyle.Render("q quit · y copy · s snapshot · t 12/24 · r reload")

	middle := ""
	if m.status != "" {
		if m.statusOK {
			middle = statusStyle.Render(m.status)
		} else {
			middle = errorStyle.Render(m.status)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	bar := left + middle + statusBarStyle.Width(gap).Render("") + right
	return statusBarStyle.MaxWidth(m.width).Render(bar)
}

func configStamp(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config mirrors the TOML configuration file. Every field is optional; an
// absent or empty file is fully valid and yields the defaults.
type Config struct {
	Colors ColorConfig  `toml:"colors"`
	Window WindowConfig `toml:"window"`
	Clock  ClockConfig  `toml:"clock"`
}

// ColorConfig holds hex color strings in #RRGGBB or #RRGGBBAA form.
type ColorConfig struct {
	WindowBackground  string `toml:"window_background"`
	ClockHandColor    string `toml:"clock_hand_color"`
	ClockHandInactive string `toml:"clock_hand_inactive"`
	ClockBG           string `toml:"clock_bg"`
	ClockBorder       string `toml:"clock_border"`
	DisplayBG         string `toml:"display_bg"`
	DisplayBorder     string `toml:"display_border"`
	SeparatorColor    string `toml:"separator_color"`
}

type WindowConfig struct {
	Opacity float64 `toml:"opacity"`
}

type ClockConfig struct {
	Size                int     `toml:"size"`
	StrokeWidth         float64 `toml:"stroke_width"`
	ClockGap            int     `toml:"clock_gap"`
	DigitGap            int     `toml:"digit_gap"`
	AnimationDurationMS int     `toml:"animation_duration_ms"`
	Use24Hour           bool    `toml:"use_24_hour"`
}

func DefaultConfig() Config {
	return Config{
		Colors: ColorConfig{
			WindowBackground:  "#0f0c29",
			ClockHandColor:    "#ff6b6b",
			ClockHandInactive: "#ff6b6b26",
			ClockBG:           "#ffffff08",
			ClockBorder:       "#ffffff1a",
			DisplayBG:         "#ffffff0d",
			DisplayBorder:     "#ffffff1a",
			SeparatorColor:    "#ff6b6b",
		},
		Window: WindowConfig{Opacity: 1.0},
		Clock: ClockConfig{
			Size:                40,
			StrokeWidth:         2.0,
			ClockGap:            1,
			DigitGap:            8,
			AnimationDurationMS: 300,
			Use24Hour:           true,
		},
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/clockgrid/config.toml, falling
// back to ~/.config when the variable is unset.
func DefaultConfigPath() string {
	return filepath.Join(configHome(), "clockgrid", "config.toml")
}

func configHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// LoadConfig reads a TOML config from path on top of the defaults, so
// partial files only override the fields they name. A missing file is not an
// error. On a parse error the defaults are returned alongside the error so
// the caller can keep running.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to stat config: %w", err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// RGBA is a color with float channels in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// ParseHexColor parses #RRGGBB or #RRGGBBAA (leading # optional) into
// normalized channels. A missing alpha component means fully opaque.
func ParseHexColor(s string) (RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return RGBA{}, fmt.Errorf("invalid hex color %q: want 6 or 8 digits", s)
	}

	var ch [4]float64
	ch[3] = 1.0
	for i := 0; i*2 < len(hex); i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		ch[i] = float64(v) / 255.0
	}
	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// Style is the fully resolved visual snapshot shared read-only by the whole
// display tree. Hot-reload replaces the snapshot wholesale; nothing mutates
// it in place.
type Style struct {
	WindowBackground RGBA
	HandActive       RGBA
	HandInactive     RGBA
	ClockBG          RGBA
	ClockBorder      RGBA
	DisplayBG        RGBA
	DisplayBorder    RGBA
	Separator        RGBA

	Opacity           float64
	ClockSize         int
	StrokeWidth       float64
	ClockGap          int
	DigitGap          int
	AnimationDuration time.Duration
}

// Style resolves the config into a drawable snapshot. Malformed colors fall
// back to their documented defaults and are reported as warnings rather than
// errors; sizes are clamped to sane minimums.
func (c Config) Style() (Style, []string) {
	var warnings []string
	def := DefaultConfig().Colors

	resolve := func(name, value, fallback string) RGBA {
		col, err := ParseHexColor(value)
		if err == nil {
			return col
		}
		warnings = append(warnings, fmt.Sprintf("%s: %v, using default", name, err))
		col, _ = ParseHexColor(fallback)
		return col
	}

	st := Style{
		WindowBackground: resolve("window_background", c.Colors.WindowBackground, def.WindowBackground),
		HandActive:       resolve("clock_hand_color", c.Colors.ClockHandColor, def.ClockHandColor),
		HandInactive:     resolve("clock_hand_inactive", c.Colors.ClockHandInactive, def.ClockHandInactive),
		ClockBG:          resolve("clock_bg", c.Colors.ClockBG, def.ClockBG),
		ClockBorder:      resolve("clock_border", c.Colors.ClockBorder, def.ClockBorder),
		DisplayBG:        resolve("display_bg", c.Colors.DisplayBG, def.DisplayBG),
		DisplayBorder:    resolve("display_border", c.Colors.DisplayBorder, def.DisplayBorder),
		Separator:        resolve("separator_color", c.Colors.SeparatorColor, def.SeparatorColor),

		Opacity:           c.Window.Opacity,
		ClockSize:         c.Clock.Size,
		StrokeWidth:       c.Clock.StrokeWidth,
		ClockGap:          c.Clock.ClockGap,
		DigitGap:          c.Clock.DigitGap,
		AnimationDuration: time.Duration(c.Clock.AnimationDurationMS) * time.Millisecond,
	}

	if st.Opacity < 0 || st.Opacity > 1 {
		warnings = append(warnings, fmt.Sprintf("opacity %g out of range [0, 1], using 1", st.Opacity))
		st.Opacity = 1
	}
	if st.ClockSize < 1 {
		warnings = append(warnings, fmt.Sprintf("clock size %d is not positive, using default", st.ClockSize))
		st.ClockSize = DefaultConfig().Clock.Size
	}
	if st.StrokeWidth <= 0 {
		st.StrokeWidth = DefaultConfig().Clock.StrokeWidth
	}
	if st.ClockGap < 0 {
		st.ClockGap = 0
	}
	if st.DigitGap < 0 {
		st.DigitGap = 0
	}
	if st.AnimationDuration < 0 {
		st.AnimationDuration = 0
	}

	return st, warnings
}

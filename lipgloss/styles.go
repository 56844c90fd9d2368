package lipgloss

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/mdnative"
)

// color returns the first of keys set in s as a terminal color. Values are
// ANSI indices ("5") or hex strings ("#ff00ff"); numbers are read as ANSI
// indices.
func color(s mdnative.Style, keys ...string) lipgloss.TerminalColor {
	for _, k := range keys {
		switch v := s[k].(type) {
		case string:
			if v != "" {
				return lipgloss.Color(v)
			}
		case int:
			return ansiColor(v)
		case float64:
			return ansiColor(int(v))
		}
	}
	return lipgloss.NoColor{}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

// textStyle maps the text properties of s to a lipgloss style.
func textStyle(s mdnative.Style) lipgloss.Style {
	st := lipgloss.NewStyle().
		Foreground(color(s, "color")).
		Background(color(s, "backgroundColor"))
	switch s.Str("fontWeight") {
	case "bold", "600", "700", "800", "900":
		st = st.Bold(true)
	}
	if s.Str("fontStyle") == "italic" {
		st = st.Italic(true)
	}
	deco := s.Str("textDecorationLine")
	if strings.Contains(deco, "underline") {
		st = st.Underline(true)
	}
	if strings.Contains(deco, "line-through") {
		st = st.Strikethrough(true)
	}
	if op, ok := s["opacity"].(float64); ok && op < 1 {
		st = st.Faint(true)
	}
	return st
}

var spacing = []struct {
	key string
	set func(lipgloss.Style, int) lipgloss.Style
}{
	{"marginTop", lipgloss.Style.MarginTop},
	{"marginRight", lipgloss.Style.MarginRight},
	{"marginBottom", lipgloss.Style.MarginBottom},
	{"marginLeft", lipgloss.Style.MarginLeft},
	{"paddingTop", lipgloss.Style.PaddingTop},
	{"paddingRight", lipgloss.Style.PaddingRight},
	{"paddingBottom", lipgloss.Style.PaddingBottom},
	{"paddingLeft", lipgloss.Style.PaddingLeft},
}

// spacingStyle maps background, margins and paddings of s to a lipgloss
// style. Lengths are terminal cells; per-side values win over shorthands.
func spacingStyle(s mdnative.Style) lipgloss.Style {
	st := lipgloss.NewStyle().
		Background(color(s, "backgroundColor")).
		Margin(s.Num("margin")).
		Padding(s.Num("padding"))
	for _, side := range spacing {
		if _, ok := s[side.key]; ok {
			st = side.set(st, s.Num(side.key))
		}
	}
	return st
}

// boxStyle is spacingStyle plus borders.
func boxStyle(s mdnative.Style) lipgloss.Style {
	st := spacingStyle(s)
	all := s.Num("borderWidth") > 0
	top := all || s.Num("borderTopWidth") > 0
	right := all || s.Num("borderRightWidth") > 0
	bottom := all || s.Num("borderBottomWidth") > 0
	left := all || s.Num("borderLeftWidth") > 0
	if !top && !right && !bottom && !left {
		return st
	}
	return st.
		Border(lipgloss.NormalBorder(), top, right, bottom, left).
		BorderTopForeground(color(s, "borderTopColor", "borderColor")).
		BorderRightForeground(color(s, "borderRightColor", "borderColor")).
		BorderBottomForeground(color(s, "borderBottomColor", "borderColor")).
		BorderLeftForeground(color(s, "borderLeftColor", "borderColor"))
}

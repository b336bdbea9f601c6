package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/captray/internal/model"
)

// Accent colors per recording mode. They match the tray dot icons.
var (
	accentStudio     = color.RGBA{R: 0x4f, G: 0x8c, B: 0xff, A: 0xff}
	accentInstant    = color.RGBA{R: 0xff, G: 0xb0, B: 0x20, A: 0xff}
	accentScreenshot = color.RGBA{R: 0x3c, G: 0xc8, B: 0x78, A: 0xff}
)

// CompactTheme is a dense theme for the small tray windows. The primary
// color follows the selected recording mode.
type CompactTheme struct {
	accent color.Color
}

// NewCompactTheme creates a compact theme accented for mode.
func NewCompactTheme(mode model.Mode) *CompactTheme {
	return &CompactTheme{accent: AccentForMode(mode)}
}

// AccentForMode returns the primary color used while mode is selected.
// Unknown modes get the studio accent.
func AccentForMode(mode model.Mode) color.Color {
	switch mode {
	case model.ModeInstant:
		return accentInstant
	case model.ModeScreenshot:
		return accentScreenshot
	default:
		return accentStudio
	}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return t.accent
	case theme.ColorNameError:
		return color.RGBA{R: 0xe5, G: 0x2b, B: 0x2b, A: 255} // matches the recording indicator
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 24, G: 24, B: 27, A: 255}
		}
		return color.RGBA{R: 248, G: 248, B: 250, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}

package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/captray/internal/model"
)

func TestCompactTheme_AccentFollowsMode(t *testing.T) {
	tests := []struct {
		mode     model.Mode
		expected any
	}{
		{model.ModeStudio, accentStudio},
		{model.ModeInstant, accentInstant},
		{model.ModeScreenshot, accentScreenshot},
		{model.Mode("bogus"), accentStudio},
	}

	for _, tt := range tests {
		th := NewCompactTheme(tt.mode)
		assert.Equal(t, tt.expected, th.Color(theme.ColorNamePrimary, theme.VariantLight), "mode %q", tt.mode)
		assert.Equal(t, tt.expected, th.Color(theme.ColorNameFocus, theme.VariantDark), "mode %q", tt.mode)
	}
}

func TestCompactTheme_Sizes(t *testing.T) {
	th := NewCompactTheme(model.ModeStudio)

	assert.Equal(t, float32(3), th.Size(theme.SizeNamePadding))
	assert.Equal(t, float32(13), th.Size(theme.SizeNameText))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNameScrollBar), th.Size(theme.SizeNameScrollBar))
}

func TestCompactTheme_FallsBackToDefault(t *testing.T) {
	th := NewCompactTheme(model.ModeInstant)

	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameSuccess, theme.VariantDark),
		th.Color(theme.ColorNameSuccess, theme.VariantDark))
	assert.NotEqual(t,
		th.Color(theme.ColorNameBackground, theme.VariantLight),
		th.Color(theme.ColorNameBackground, theme.VariantDark))
}

func TestTrayPresenter_ShowModeRethemes(t *testing.T) {
	app := test.NewApp()
	t.Cleanup(app.Quit)

	p := NewTrayPresenter(&fakeTray{}, "Cap")
	assert.NotPanics(t, func() { p.ShowMode(model.ModeInstant) })

	p.OnModeChanged = func(mode model.Mode) {
		app.Settings().SetTheme(NewCompactTheme(mode))
	}

	p.ShowMode(model.ModeScreenshot)
	assert.Equal(t, accentScreenshot, app.Settings().Theme().Color(theme.ColorNamePrimary, theme.VariantLight))

	p.ShowMode(model.ModeInstant)
	assert.Equal(t, accentInstant, app.Settings().Theme().Color(theme.ColorNamePrimary, theme.VariantLight))
}

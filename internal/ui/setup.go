package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/captray/internal/localization"
)

// SetupWindow asks for capture permissions. While it is visible the tray menu
// is reduced to the setup entries.
type SetupWindow struct {
	window  fyne.Window
	loc     *localization.Localization
	visible bool

	// OnVisibilityChanged runs on the main goroutine whenever the window is
	// shown or hidden.
	OnVisibilityChanged func(open bool)
}

// NewSetupWindow creates the window without showing it.
func NewSetupWindow(app fyne.App, loc *localization.Localization) *SetupWindow {
	sw := &SetupWindow{
		window: app.NewWindow(loc.GetText(localization.KeyRequestPermissions)),
		loc:    loc,
	}
	sw.window.Resize(fyne.NewSize(SetupWindowWidth, SetupWindowHeight))
	sw.window.SetCloseIntercept(sw.Hide)

	message := widget.NewLabel(IconLock + " " + loc.GetText(localization.KeyRequestPermissions))
	message.Wrapping = fyne.TextWrapWord
	done := widget.NewButton(loc.GetText(localization.KeyOpenMain), sw.Hide)
	done.Importance = widget.HighImportance

	sw.window.SetContent(container.NewBorder(nil, done, nil, nil, message))
	return sw
}

// Show opens the window and reports it as visible.
func (sw *SetupWindow) Show() {
	sw.window.Show()
	sw.window.RequestFocus()
	sw.setVisible(true)
}

// Hide closes the window and reports it as hidden.
func (sw *SetupWindow) Hide() {
	sw.window.Hide()
	sw.setVisible(false)
}

// Visible reports whether the window is showing.
func (sw *SetupWindow) Visible() bool {
	return sw.visible
}

func (sw *SetupWindow) setVisible(open bool) {
	if sw.visible == open {
		return
	}
	sw.visible = open
	if sw.OnVisibilityChanged != nil {
		sw.OnVisibilityChanged(open)
	}
}

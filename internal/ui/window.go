package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/captray/internal/localization"
	"github.com/ytget/captray/internal/model"
)

// MainWindow lists recent captures and shows status messages for requests
// made from the tray. Closing it hides it; the app keeps running in the tray.
type MainWindow struct {
	window fyne.Window
	loc    *localization.Localization

	items []model.Item
	title *widget.Label
	list  *widget.List
	empty *widget.Label

	settingsBtn *widget.Button

	// Notification panel
	noticeContainer *fyne.Container
	noticeLabel     *widget.Label

	// OnOpen opens a recent item the way its menu entry would.
	OnOpen func(path string)
	// OnReveal shows a recent item in the file manager.
	OnReveal func(path string)
	// OnSettings opens the settings dialog.
	OnSettings func()
}

// NewMainWindow creates the window without showing it.
func NewMainWindow(app fyne.App, loc *localization.Localization) *MainWindow {
	mw := &MainWindow{
		window: app.NewWindow(loc.GetText(localization.KeyAppTitle)),
		loc:    loc,
	}
	mw.window.Resize(fyne.NewSize(MainWindowWidth, MainWindowHeight))
	mw.window.SetCloseIntercept(mw.window.Hide)
	mw.setupUI()
	return mw
}

// Window returns the underlying Fyne window, used as dialog parent.
func (mw *MainWindow) Window() fyne.Window {
	return mw.window
}

// setupUI creates and arranges all UI components
func (mw *MainWindow) setupUI() {
	mw.settingsBtn = widget.NewButton(IconSettings, func() {
		if mw.OnSettings != nil {
			mw.OnSettings()
		}
	})
	mw.settingsBtn.Importance = widget.LowImportance

	mw.title = widget.NewLabel(mw.loc.GetText(localization.KeyPrevious))
	mw.title.TextStyle = fyne.TextStyle{Bold: true}
	topPanel := container.NewBorder(nil, nil, nil, mw.settingsBtn, mw.title)

	mw.noticeLabel = widget.NewLabel("")
	mw.noticeLabel.Wrapping = fyne.TextWrapWord
	mw.noticeContainer = container.NewPadded(mw.noticeLabel)
	mw.noticeContainer.Hide()

	mw.empty = widget.NewLabel(mw.loc.GetText(localization.KeyNoRecent))
	mw.empty.Alignment = fyne.TextAlignCenter

	mw.list = widget.NewList(
		func() int { return len(mw.items) },
		mw.createRow,
		mw.updateRow,
	)

	content := container.NewBorder(
		container.NewVBox(topPanel, mw.noticeContainer, widget.NewSeparator()),
		nil, nil, nil,
		container.NewStack(mw.list, mw.empty),
	)
	mw.window.SetContent(content)
}

// createRow builds a row template: thumbnail, name, kind, open and reveal.
func (mw *MainWindow) createRow() fyne.CanvasObject {
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(rowThumbnailSize())

	name := widget.NewLabel("")
	name.Truncation = fyne.TextTruncateEllipsis
	kind := widget.NewLabel("")
	kind.Importance = widget.LowImportance

	open := widget.NewButton(IconOpen, nil)
	open.Importance = widget.LowImportance
	reveal := widget.NewButton(IconFolder, nil)
	reveal.Importance = widget.LowImportance

	buttons := container.NewHBox(kind, open, reveal)
	return container.NewBorder(nil, nil, img, buttons, name)
}

func (mw *MainWindow) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(mw.items) {
		return
	}
	it := mw.items[id]

	row := obj.(*fyne.Container)
	// Border layout stores center first, then the edges in the order given.
	name := row.Objects[0].(*widget.Label)
	img := row.Objects[1].(*canvas.Image)
	buttons := row.Objects[2].(*fyne.Container)
	kind := buttons.Objects[0].(*widget.Label)
	open := buttons.Objects[1].(*widget.Button)
	reveal := buttons.Objects[2].(*widget.Button)

	name.SetText(it.DisplayName)
	kind.SetText(mw.kindLabel(it.Kind))

	if it.HasThumbnail() {
		img.Image = it.Thumbnail.Image()
	} else {
		img.Image = nil
	}
	img.Refresh()

	path := it.Path
	open.OnTapped = func() {
		if mw.OnOpen != nil {
			mw.OnOpen(path)
		}
	}
	reveal.OnTapped = func() {
		if mw.OnReveal != nil {
			mw.OnReveal(path)
		}
	}
}

func (mw *MainWindow) kindLabel(kind model.ItemKind) string {
	switch kind {
	case model.KindInstantRecording:
		return mw.loc.GetText(localization.KeyModeInstant)
	case model.KindScreenshot:
		return mw.loc.GetText(localization.KeyModeScreenshot)
	default:
		return mw.loc.GetText(localization.KeyModeStudio)
	}
}

// SetItems replaces the listed items. Must run on the main goroutine.
func (mw *MainWindow) SetItems(items []model.Item) {
	mw.items = items
	if len(items) == 0 {
		mw.empty.Show()
	} else {
		mw.empty.Hide()
	}
	mw.list.Refresh()
}

// Items returns the listed items.
func (mw *MainWindow) Items() []model.Item {
	return mw.items
}

// ShowNotice displays message in the panel above the list.
func (mw *MainWindow) ShowNotice(message string) {
	mw.noticeLabel.SetText(message)
	mw.noticeContainer.Show()
}

// Notice returns the text currently shown in the panel, or "" when hidden.
func (mw *MainWindow) Notice() string {
	if !mw.noticeContainer.Visible() {
		return ""
	}
	return mw.noticeLabel.Text
}

// RefreshTexts reapplies translations after a language change.
func (mw *MainWindow) RefreshTexts() {
	mw.window.SetTitle(mw.loc.GetText(localization.KeyAppTitle))
	mw.title.SetText(mw.loc.GetText(localization.KeyPrevious))
	mw.empty.SetText(mw.loc.GetText(localization.KeyNoRecent))
	mw.list.Refresh()
}

// Show brings the window to front.
func (mw *MainWindow) Show() {
	mw.window.Show()
	mw.window.RequestFocus()
}

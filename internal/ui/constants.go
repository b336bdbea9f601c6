package ui

import "fyne.io/fyne/v2"

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconOpen     = "▶"
	IconLock     = "🔒"
)

// MiddleDotSeparator joins notification fragments
const MiddleDotSeparator = " · "

// Window sizing
const (
	MainWindowWidth   float32 = 420
	MainWindowHeight  float32 = 360
	SetupWindowWidth  float32 = 360
	SetupWindowHeight float32 = 200
	SettingsWidth     float32 = 480
	SettingsHeight    float32 = 260
)

// Recent list rows
const (
	RowThumbnailSize float32 = 32
	RowMinHeight     float32 = 40
)

// Resource names handed to the tray driver
const (
	TrayIconName   = "captray-tray.png"
	MenuIconPrefix = "captray-item-"
)

// ImportExtensions are the video containers offered by the import dialog.
var ImportExtensions = []string{".mp4", ".mov", ".mkv", ".webm"}

func rowThumbnailSize() fyne.Size {
	return fyne.NewSize(RowThumbnailSize, RowThumbnailSize)
}

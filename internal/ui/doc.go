// Package ui contains the Fyne desktop surfaces of the tray app: the system
// tray presenter, the main window listing recent captures, the permissions
// setup window and the settings dialog. It implements the host side of
// package tray and never decides what the menu contains.
package ui

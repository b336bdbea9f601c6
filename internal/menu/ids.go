package menu

import (
	"strings"

	"go.trai.ch/zerr"
)

// ActionID identifies a menu entry.
type ActionID string

// Actionable entries.
const (
	ActionOpenMain           ActionID = "open_main"
	ActionRecordDisplay      ActionID = "record_display"
	ActionRecordWindow       ActionID = "record_window"
	ActionRecordArea         ActionID = "record_area"
	ActionTakeScreenshot     ActionID = "take_screenshot"
	ActionImportVideo        ActionID = "import_video"
	ActionViewAllRecordings  ActionID = "view_all_recordings"
	ActionViewAllScreenshots ActionID = "view_all_screenshots"
	ActionOpenSettings       ActionID = "open_settings"
	ActionQuit               ActionID = "quit"
	ActionModeStudio         ActionID = "mode_studio"
	ActionModeInstant        ActionID = "mode_instant"
	ActionModeScreenshot     ActionID = "mode_screenshot"
	ActionRequestPermissions ActionID = "request_permissions"

	// ActionPreviousItem is the parsed form of a previous_item_<path> id.
	ActionPreviousItem ActionID = "previous_item"
)

// Entries that never produce an action.
const (
	IDVersion       ActionID = "version"
	IDSelectMode    ActionID = "select_mode"
	IDPrevious      ActionID = "previous"
	IDPreviousEmpty ActionID = "previous_empty"
)

const previousItemPrefix = string(ActionPreviousItem) + "_"

// ErrUnknownAction is returned by ParseAction for ids outside the dispatch table.
var ErrUnknownAction = zerr.New("menu: unknown action")

var actions = map[ActionID]bool{
	ActionOpenMain:           true,
	ActionRecordDisplay:      true,
	ActionRecordWindow:       true,
	ActionRecordArea:         true,
	ActionTakeScreenshot:     true,
	ActionImportVideo:        true,
	ActionViewAllRecordings:  true,
	ActionViewAllScreenshots: true,
	ActionOpenSettings:       true,
	ActionQuit:               true,
	ActionModeStudio:         true,
	ActionModeInstant:        true,
	ActionModeScreenshot:     true,
	ActionRequestPermissions: true,
}

// Action is a parsed menu id. Path is set only for ActionPreviousItem.
type Action struct {
	ID   ActionID
	Path string
}

// PreviousItemID builds the id of the previous-items row for path.
func PreviousItemID(path string) ActionID {
	return ActionID(previousItemPrefix + path)
}

// ParseAction maps a raw menu id back to an Action.
func ParseAction(id string) (Action, error) {
	if path, ok := strings.CutPrefix(id, previousItemPrefix); ok && path != "" {
		return Action{ID: ActionPreviousItem, Path: path}, nil
	}
	if actions[ActionID(id)] {
		return Action{ID: ActionID(id)}, nil
	}
	return Action{}, zerr.With(ErrUnknownAction, "id", id)
}

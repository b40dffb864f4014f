package event

import (
	"fmt"
)

type Action int

const (
	ActionUnknown Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionRotate
	ActionSoftDrop
	ActionHardDrop
	ActionTogglePause
	ActionReset
)

var actionNames = map[Action]string{
	ActionUnknown:     "unknown",
	ActionMoveLeft:    "left",
	ActionMoveRight:   "right",
	ActionRotate:      "rotate",
	ActionSoftDrop:    "soft",
	ActionHardDrop:    "hard",
	ActionTogglePause: "pause",
	ActionReset:       "reset",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction accepts the names returned by String.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if a != ActionUnknown && n == name {
			return a, nil
		}
	}
	return ActionUnknown, fmt.Errorf("unknown action %q", name)
}

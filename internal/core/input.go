package core

import "fmt"

// Action is a semantic player intent, decoupled from the physical key or
// button that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause

	// Kitchen actions. Their meaning depends on the item on the workbench.
	ActionBase      // dough, bottom bun
	ActionSauce     // sauce, top bun
	ActionCheese    // cheese
	ActionPatty     // patty (toggles beef/chicken on repeat)
	ActionCook      // oven, grill, drink machine
	ActionCut       // start cutting, add a cut at the current angle
	ActionAssemble  // start/finish burger assembly
	ActionIce       // add ice
	ActionPlace     // place selected topping at the cursor
	ActionServe     // hand the item to the customer
	ActionNextOrder // cycle the selected ticket

	// ActionPick1..ActionPick9 select an ingredient or drink by shelf slot.
	ActionPick1
	ActionPick2
	ActionPick3
	ActionPick4
	ActionPick5
	ActionPick6
	ActionPick7
	ActionPick8
	ActionPick9
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionConfirm:   "Confirm",
	ActionBack:      "Back",
	ActionRestart:   "Restart",
	ActionQuit:      "Quit",
	ActionPause:     "Pause",
	ActionBase:      "Base",
	ActionSauce:     "Sauce",
	ActionCheese:    "Cheese",
	ActionPatty:     "Patty",
	ActionCook:      "Cook",
	ActionCut:       "Cut",
	ActionAssemble:  "Assemble",
	ActionIce:       "Ice",
	ActionPlace:     "Place",
	ActionServe:     "Serve",
	ActionNextOrder: "NextOrder",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	if slot, ok := a.PickSlot(); ok {
		return fmt.Sprintf("Pick%d", slot+1)
	}
	return "Unknown"
}

// PickSlot returns the zero-based shelf slot for ActionPick1..ActionPick9.
func (a Action) PickSlot() (int, bool) {
	if a < ActionPick1 || a > ActionPick9 {
		return 0, false
	}
	return int(a - ActionPick1), true
}

// PickAction returns the pick action for a zero-based shelf slot.
func PickAction(slot int) Action {
	if slot < 0 || slot > 8 {
		return ActionNone
	}
	return ActionPick1 + Action(slot)
}

// Click is a pointer press in screen cells.
type Click struct {
	X, Y int
}

// InputFrame holds everything the player did during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
	Clicks  []Click
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Click records a pointer press at (x, y).
func (f *InputFrame) Click(x, y int) {
	f.Clicks = append(f.Clicks, Click{X: x, Y: y})
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Clicks) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Clicks) > 0 {
		clone.Clicks = append([]Click(nil), f.Clicks...)
	}
	return clone
}

package electionmaps

// State is the hover and selection state shared by a set of linked views.
// An empty string means nothing is hovered or selected.
type State struct {
	Hovered  string
	Selected string
}

// Idle reports whether nothing is hovered or selected.
func (s State) Idle() bool { return s.Hovered == "" && s.Selected == "" }

// EventType enumerates the inputs of Reduce.
type EventType int

const (
	// EventHover is the pointer entering a precinct.
	EventHover EventType = iota + 1
	// EventUnhover is the pointer leaving the precinct layer.
	EventUnhover
	// EventClick is a click on a precinct.
	EventClick
	// EventClickBackground is a click that hit no precinct.
	EventClickBackground
	// EventEscape is the escape key.
	EventEscape
	// EventSwitchDataset follows a dataset switch. Present reports whether
	// the selected precinct exists in the new dataset.
	EventSwitchDataset
)

func (t EventType) String() string {
	switch t {
	case EventHover:
		return "hover"
	case EventUnhover:
		return "unhover"
	case EventClick:
		return "click"
	case EventClickBackground:
		return "click-background"
	case EventEscape:
		return "escape"
	case EventSwitchDataset:
		return "switch-dataset"
	}
	return "unknown"
}

// Event is one input to Reduce.
type Event struct {
	Type    EventType
	ID      string
	Present bool
}

// EffectType enumerates the side effects Reduce asks for.
type EffectType int

const (
	// SetHoverOutline points every view's hover outline at ID ("" for none).
	SetHoverOutline EffectType = iota + 1
	// SetSelectedOutline points every view's selection outline at ID.
	SetSelectedOutline
	// SetCursor switches the pointer cursor on or off.
	SetCursor
	// ShowInfo renders the info panels for ID and shows them.
	ShowInfo
	// HideInfo empties and hides the info panels.
	HideInfo
	// NotifyResize tells the embedding page that content changed.
	NotifyResize
)

// Effect is one side effect produced by Reduce.
type Effect struct {
	Type    EffectType
	ID      string
	Pointer bool
}

// Reduce applies e to s. It has no side effects of its own; the caller
// carries out the returned effects in order.
//
// Hover never touches the selection: the selected precinct has its own
// outline layer, so the hover outline can always follow the pointer.
func Reduce(s State, e Event) (State, []Effect) {
	switch e.Type {
	case EventHover:
		if e.ID == "" || s.Hovered == e.ID {
			return s, nil
		}
		s.Hovered = e.ID
		return s, []Effect{
			{Type: SetHoverOutline, ID: e.ID},
			{Type: SetCursor, Pointer: true},
		}

	case EventUnhover:
		s.Hovered = ""
		return s, []Effect{
			{Type: SetHoverOutline},
			{Type: SetCursor},
		}

	case EventClick:
		if e.ID == "" {
			return s, nil
		}
		s.Selected = e.ID
		return s, []Effect{
			{Type: SetSelectedOutline, ID: e.ID},
			{Type: ShowInfo, ID: e.ID},
			{Type: NotifyResize},
		}

	case EventClickBackground, EventEscape:
		if s.Idle() {
			return s, nil
		}
		return State{}, []Effect{
			{Type: SetHoverOutline},
			{Type: SetSelectedOutline},
			{Type: HideInfo},
			{Type: NotifyResize},
		}

	case EventSwitchDataset:
		s.Hovered = ""
		effects := []Effect{{Type: SetHoverOutline}}
		if s.Selected != "" && e.Present {
			return s, append(effects,
				Effect{Type: SetSelectedOutline, ID: s.Selected},
				Effect{Type: ShowInfo, ID: s.Selected},
				Effect{Type: NotifyResize},
			)
		}
		s.Selected = ""
		return s, append(effects,
			Effect{Type: SetSelectedOutline},
			Effect{Type: HideInfo},
			Effect{Type: NotifyResize},
		)
	}
	return s, nil
}

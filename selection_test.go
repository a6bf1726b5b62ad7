package electionmaps

import (
	"reflect"
	"testing"
)

func run(s State, events ...Event) (State, []Effect) {
	var all []Effect
	for _, e := range events {
		var effects []Effect
		s, effects = Reduce(s, e)
		all = append(all, effects...)
	}
	return s, all
}

func TestHoverKeepsSelection(t *testing.T) {
	s, _ := run(State{},
		Event{Type: EventClick, ID: "A"},
		Event{Type: EventHover, ID: "B"},
	)
	if want := (State{Hovered: "B", Selected: "A"}); s != want {
		t.Errorf("%+v != %+v", s, want)
	}
	s, effects := Reduce(s, Event{Type: EventUnhover})
	if want := (State{Selected: "A"}); s != want {
		t.Errorf("%+v != %+v", s, want)
	}
	for _, ef := range effects {
		switch ef.Type {
		case SetSelectedOutline, ShowInfo, HideInfo:
			t.Errorf("unhover must not touch the selection: %+v", ef)
		}
	}
}

func TestBackgroundClears(t *testing.T) {
	for _, typ := range []EventType{EventClickBackground, EventEscape} {
		s, effects := run(State{},
			Event{Type: EventClick, ID: "A"},
			Event{Type: EventHover, ID: "A"},
			Event{Type: typ},
		)
		if !s.Idle() {
			t.Errorf("%v: %+v is not idle", typ, s)
		}
		want := []Effect{
			{Type: SetHoverOutline},
			{Type: SetSelectedOutline},
			{Type: HideInfo},
			{Type: NotifyResize},
		}
		if have := effects[len(effects)-4:]; !reflect.DeepEqual(have, want) {
			t.Errorf("%v: %+v != %+v", typ, have, want)
		}
	}
}

func TestIdleBackgroundIsNoop(t *testing.T) {
	s, effects := Reduce(State{}, Event{Type: EventClickBackground})
	if !s.Idle() || len(effects) != 0 {
		t.Errorf("%+v, %+v != idle, none", s, effects)
	}
}

func TestHoverSameFeature(t *testing.T) {
	s, _ := Reduce(State{}, Event{Type: EventHover, ID: "A"})
	_, effects := Reduce(s, Event{Type: EventHover, ID: "A"})
	if len(effects) != 0 {
		t.Errorf("repeated hover produced %+v", effects)
	}
	_, effects = Reduce(s, Event{Type: EventHover})
	if len(effects) != 0 {
		t.Errorf("hover without id produced %+v", effects)
	}
}

func TestClick(t *testing.T) {
	s, effects := Reduce(State{Hovered: "B"}, Event{Type: EventClick, ID: "A"})
	if want := (State{Hovered: "B", Selected: "A"}); s != want {
		t.Errorf("%+v != %+v", s, want)
	}
	want := []Effect{
		{Type: SetSelectedOutline, ID: "A"},
		{Type: ShowInfo, ID: "A"},
		{Type: NotifyResize},
	}
	if !reflect.DeepEqual(effects, want) {
		t.Errorf("%+v != %+v", effects, want)
	}
}

func TestSwitchDataset(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		s, effects := Reduce(State{Hovered: "B", Selected: "A"}, Event{Type: EventSwitchDataset, Present: true})
		if want := (State{Selected: "A"}); s != want {
			t.Errorf("%+v != %+v", s, want)
		}
		want := []Effect{
			{Type: SetHoverOutline},
			{Type: SetSelectedOutline, ID: "A"},
			{Type: ShowInfo, ID: "A"},
			{Type: NotifyResize},
		}
		if !reflect.DeepEqual(effects, want) {
			t.Errorf("%+v != %+v", effects, want)
		}
	})
	t.Run("absent", func(t *testing.T) {
		s, effects := Reduce(State{Hovered: "B", Selected: "A"}, Event{Type: EventSwitchDataset})
		if !s.Idle() {
			t.Errorf("%+v is not idle", s)
		}
		want := []Effect{
			{Type: SetHoverOutline},
			{Type: SetSelectedOutline},
			{Type: HideInfo},
			{Type: NotifyResize},
		}
		if !reflect.DeepEqual(effects, want) {
			t.Errorf("%+v != %+v", effects, want)
		}
	})
}

func TestEventString(t *testing.T) {
	if s := EventClickBackground.String(); s == "" {
		t.Error("empty event name")
	}
}

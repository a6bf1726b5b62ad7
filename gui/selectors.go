//go:build js
// +build js

package gui

import (
	"syscall/js"

	"github.com/mlnow/electionmaps"
)

func updateSelector(doc, selector js.Value, values, text []string) {
	selector.Set("innerHTML", "")
	for i, value := range values {
		option := doc.Call("createElement", "option")
		option.Set("value", value)
		option.Set("text", text[i])
		selector.Call("appendChild", option)
	}
}

func selectorValue(selector js.Value) (value, text string) {
	options := selector.Get("options")
	selectedIndex := selector.Get("selectedIndex").Int()
	if selectedIndex < 0 {
		return "", ""
	}
	selection := options.Index(selectedIndex)
	value = selection.Get("value").String()
	text = selection.Get("text").String()
	return value, text
}

// updateModeSelector lists the modes of mc in selector, titled as in cfg.
// Options that already exist are replaced.
func updateModeSelector(doc, selector js.Value, cfg *electionmaps.Config, mc electionmaps.MapConfig) {
	values := make([]string, 0, len(mc.Modes))
	text := make([]string, 0, len(mc.Modes))
	for _, name := range mc.Modes {
		m, err := cfg.Mode(name)
		if err != nil {
			continue
		}
		values = append(values, name)
		text = append(text, m.Title)
	}
	updateSelector(doc, selector, values, text)
}

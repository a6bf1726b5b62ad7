//go:build js
// +build js

package gui

import (
	"strings"
	"syscall/js"
	"testing"

	"github.com/mlnow/electionmaps"
)

func TestDOM(t *testing.T) {
	doc := js.Global().Get("document")
	elem := doc.Call("createElement", "div")
	inputString := "hello world"
	elem.Set("innerText", inputString)
	out := elem.Get("innerText")

	// need Contains because a "\n" gets appended in the output
	if !strings.Contains(out.String(), inputString) {
		t.Errorf("unexpected output string. Expected %q to contain %q", out.String(), inputString)
	}
}

func TestModeSelector(t *testing.T) {
	doc := js.Global().Get("document")
	cfg := electionmaps.DefaultConfig()
	page, err := cfg.Page("comparison")
	if err != nil {
		t.Fatal(err)
	}
	sel := doc.Call("createElement", "select")

	updateModeSelector(doc, sel, cfg, page.Maps[1])
	html := sel.Get("innerHTML").String()
	want := `<option value="propK">Nov. 2024 Proposition K</option><option value="d4_2022">Nov. 2022 supervisor election</option>`
	if html != want {
		t.Errorf("%v != %v", html, want)
	}

	// Call again to make sure contents get cleared every time.
	updateModeSelector(doc, sel, cfg, page.Maps[0])
	html = sel.Get("innerHTML").String()
	want = `<option value="propA">Nov. 2024 Proposition A</option>`
	if html != want {
		t.Errorf("%v != %v", html, want)
	}

	value, text := selectorValue(sel)
	if value != "propA" || text != "Nov. 2024 Proposition A" {
		t.Errorf("%v, %v != propA, Nov. 2024 Proposition A", value, text)
	}
}

//go:build js
// +build js

package gui

import (
	"syscall/js"
	"testing"
)

func TestPanel(t *testing.T) {
	doc := js.Global().Get("document")
	p := NewPanel(doc.Call("createElement", "div"))

	p.SetHTML("<b>Precinct 1101</b>")
	p.Show()
	if have := p.el.Get("innerHTML").String(); have != "<b>Precinct 1101</b>" {
		t.Errorf("%v != <b>Precinct 1101</b>", have)
	}
	if have := p.el.Get("style").Get("display").String(); have != "block" {
		t.Errorf("%v != block", have)
	}
	p.Hide()
	if have := p.el.Get("style").Get("display").String(); have != "none" {
		t.Errorf("%v != none", have)
	}
}

func TestPymSenderNotEmbedded(t *testing.T) {
	s := NewPymSender(js.Global().Get("window"))
	if s.Embedded() {
		t.Skip("test page is embedded")
	}
	// Must not post anywhere or panic.
	s.SendHeight()
}

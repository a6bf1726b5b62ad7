//go:build js
// +build js

package gui

import "syscall/js"

// Panel is an info panel element. It implements electionmaps.InfoPanel.
type Panel struct {
	el js.Value
}

// NewPanel wraps el.
func NewPanel(el js.Value) *Panel { return &Panel{el: el} }

// SetHTML implements electionmaps.InfoPanel.
func (p *Panel) SetHTML(html string) { p.el.Set("innerHTML", html) }

// Show implements electionmaps.InfoPanel.
func (p *Panel) Show() { p.el.Get("style").Set("display", "block") }

// Hide implements electionmaps.InfoPanel.
func (p *Panel) Hide() { p.el.Get("style").Set("display", "none") }

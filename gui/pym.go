//go:build js
// +build js

package gui

import (
	"net/url"
	"strconv"
	"syscall/js"

	"github.com/mlnow/electionmaps"
)

// PymSender posts the page height to the embedding page using the pym.js
// protocol. It implements electionmaps.Sender.
type PymSender struct {
	ID string

	win js.Value
	doc js.Value
}

// NewPymSender returns a sender for win. The child id is read from the
// childId query parameter pym.js adds to the iframe URL.
func NewPymSender(win js.Value) *PymSender {
	s := &PymSender{win: win, doc: win.Get("document")}
	if u, err := url.Parse(win.Get("location").Get("href").String()); err == nil {
		s.ID = u.Query().Get("childId")
	}
	return s
}

// Embedded reports whether the page runs inside a parent frame.
func (s *PymSender) Embedded() bool {
	parent := s.win.Get("parent")
	return parent.Truthy() && !parent.Equal(s.win)
}

// Height returns the document height in CSS pixels.
func (s *PymSender) Height() int {
	body := s.doc.Get("body")
	if !body.Truthy() {
		return 0
	}
	return body.Get("offsetHeight").Int()
}

// SendHeight implements electionmaps.Sender.
func (s *PymSender) SendHeight() {
	if !s.Embedded() {
		return
	}
	msg := electionmaps.PymMessage(s.ID, "height", strconv.Itoa(s.Height()))
	s.win.Get("parent").Call("postMessage", msg, "*")
}

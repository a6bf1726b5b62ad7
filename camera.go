package electionmaps

import (
	"math"

	"github.com/paulmach/orb"
)

// ViewState is a map camera position.
type ViewState struct {
	Center  orb.Point `yaml:"center"`
	Zoom    float64   `yaml:"zoom"`
	Bearing float64   `yaml:"bearing,omitempty"`
	Pitch   float64   `yaml:"pitch,omitempty"`
}

// Equal reports whether v and o match to within tol.
func (v ViewState) Equal(o ViewState, tol float64) bool {
	near := func(a, b float64) bool { return math.Abs(a-b) <= tol }
	return near(v.Center[0], o.Center[0]) && near(v.Center[1], o.Center[1]) &&
		near(v.Zoom, o.Zoom) && near(v.Bearing, o.Bearing) && near(v.Pitch, o.Pitch)
}

// Camera is a map view whose position can be read, set and observed.
// JumpTo moves without animation and may call the OnMove handlers
// synchronously.
type Camera interface {
	ViewState() ViewState
	JumpTo(ViewState)
	OnMove(func())
}

// CameraLink mirrors the position of two cameras onto each other.
type CameraLink struct {
	a, b Camera

	// writingA is set while the link is moving a, so a's move handler
	// does not echo the change back to b. Likewise for writingB.
	writingA, writingB bool

	aToB, bToA int
}

// Link starts mirroring a and b. After any move of either camera the other
// is jumped to the same position.
func Link(a, b Camera) *CameraLink {
	l := &CameraLink{a: a, b: b}
	a.OnMove(func() {
		if l.writingA {
			return
		}
		l.writingB = true
		l.aToB++
		b.JumpTo(a.ViewState())
		l.writingB = false
	})
	b.OnMove(func() {
		if l.writingB {
			return
		}
		l.writingA = true
		l.bToA++
		a.JumpTo(b.ViewState())
		l.writingA = false
	})
	return l
}

// Writes returns how many times the link has written a's position to b and
// b's position to a.
func (l *CameraLink) Writes() (aToB, bToA int) { return l.aToB, l.bToA }

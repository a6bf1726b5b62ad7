package electionmaps

import (
	"context"
	"fmt"

	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"
)

// PageView is one map of a page together with its info panel. Panel may be
// nil.
type PageView struct {
	Map   MapView
	Panel InfoPanel
}

type mapState struct {
	cfg     MapConfig
	binding Binding
	panel   InfoPanel
	ds      *Dataset
}

// Controller runs the interaction of one page: it owns the hover and
// selection state of the page's maps, keeps their outlines and info panels
// in step, and switches the data they show.
type Controller struct {
	// Log defaults to the logrus standard logger.
	Log logrus.FieldLogger
	// Height, if set, is triggered whenever panel content changes.
	Height Notifier

	cfg  *Config
	page *Page
	maps []*mapState

	state State
	link  *CameraLink
	data  map[string]*geojson.FeatureCollection

	// origin is the map that received the last precinct click and
	// originProps the clicked feature's properties. They back up the
	// origin map's index when it has no record for the clicked precinct.
	origin      int
	originProps geojson.Properties

	mobile *bool
}

// NewController returns a controller for the named page of cfg. There must
// be one view per map of the page, in configuration order.
func NewController(cfg *Config, pageName string, views []PageView) (*Controller, error) {
	page, err := cfg.Page(pageName)
	if err != nil {
		return nil, err
	}
	if len(views) != len(page.Maps) {
		return nil, fmt.Errorf("electionmaps: page %q has %d maps but %d views were given",
			pageName, len(page.Maps), len(views))
	}
	c := &Controller{
		cfg:    cfg,
		page:   page,
		data:   make(map[string]*geojson.FeatureCollection),
		origin: -1,
	}
	for i, v := range views {
		if v.Map == nil {
			return nil, fmt.Errorf("electionmaps: page %q: view %d has no map", pageName, i)
		}
		mc := page.Maps[i]
		c.maps = append(c.maps, &mapState{
			cfg:   mc,
			panel: v.Panel,
			binding: Binding{
				View:     v.Map,
				Layers:   NewLayerSet(mc.ID),
				Handlers: c.handlers(i),
			},
		})
	}
	return c, nil
}

func (c *Controller) log() logrus.FieldLogger {
	if c.Log == nil {
		return logrus.StandardLogger()
	}
	return c.Log
}

// Page returns the page the controller runs.
func (c *Controller) Page() *Page { return c.page }

// State returns the current hover and selection state.
func (c *Controller) State() State { return c.state }

// Link returns the camera link of a linked page, or nil.
func (c *Controller) Link() *CameraLink { return c.link }

// Dataset returns the data shown by map i.
func (c *Controller) Dataset(i int) *Dataset {
	if i < 0 || i >= len(c.maps) {
		return nil
	}
	return c.maps[i].ds
}

// DataFiles returns the data files needed by the page's modes, without
// duplicates.
func (c *Controller) DataFiles() []string {
	seen := make(map[string]bool)
	var o []string
	for _, m := range c.maps {
		for _, name := range m.cfg.Modes {
			mode, err := c.cfg.Mode(name)
			if err != nil || seen[mode.Data] {
				continue
			}
			seen[mode.Data] = true
			o = append(o, mode.Data)
		}
	}
	return o
}

// Load fetches every data file of the page relative to base and installs
// the data. If any fetch fails nothing is installed and the error is shown
// in the info panel.
func (c *Controller) Load(ctx context.Context, l *Loader, base string) error {
	files := c.DataFiles()
	urls := make([]string, len(files))
	for i, f := range files {
		urls[i] = base + f
	}
	fcs, err := l.LoadAll(ctx, urls)
	if err != nil {
		c.ShowError(err)
		return err
	}
	data := make(map[string]*geojson.FeatureCollection, len(files))
	for i, f := range files {
		data[f] = fcs[i]
	}
	if err := c.Install(data); err != nil {
		c.ShowError(err)
		return err
	}
	return nil
}

// Install shows each map's first mode using data, keyed by data file,
// links the cameras of a linked page and wires the background click.
func (c *Controller) Install(data map[string]*geojson.FeatureCollection) error {
	for k, v := range data {
		c.data[k] = v
	}
	for i, m := range c.maps {
		if err := c.switchTo(i, m.cfg.Modes[0]); err != nil {
			return err
		}
		i := i
		m.binding.View.Off(MouseClick, "", "background")
		m.binding.View.On(MouseClick, "", "background", func(ev PointerEvent) {
			c.clickMap(i, ev)
		})
	}
	if c.page.Linked && c.link == nil {
		c.link = Link(c.maps[0].binding.View, c.maps[1].binding.View)
	}
	c.Dispatch(Event{Type: EventSwitchDataset})
	c.log().WithFields(logrus.Fields{"page": c.page.Name, "maps": len(c.maps)}).Info("page ready")
	return nil
}

// SelectMode switches map i to the named mode. A selected precinct that
// exists in the new data stays selected; otherwise the selection is
// cleared.
func (c *Controller) SelectMode(i int, name string) error {
	if i < 0 || i >= len(c.maps) {
		return fmt.Errorf("electionmaps: no map %d", i)
	}
	if err := c.switchTo(i, name); err != nil {
		return err
	}
	_, present := c.maps[i].ds.Index.Lookup(c.state.Selected)
	c.Dispatch(Event{Type: EventSwitchDataset, Present: present})
	return nil
}

func (c *Controller) switchTo(i int, name string) error {
	mode, err := c.cfg.Mode(name)
	if err != nil {
		return err
	}
	fc, ok := c.data[mode.Data]
	if !ok {
		return fmt.Errorf("electionmaps: data %s for mode %q is not loaded", mode.Data, name)
	}
	sw := Switcher{Log: c.log()}
	ds, err := sw.Switch(&c.maps[i].binding, fc, mode)
	if err != nil {
		return err
	}
	c.maps[i].ds = ds
	return nil
}

// Escape clears hover and selection.
func (c *Controller) Escape() { c.Dispatch(Event{Type: EventEscape}) }

// SetViewport moves the first map to the page's preset for a viewport of
// the given width when the width crosses the page's breakpoint. Bearing and
// pitch are kept. On a linked page the camera link moves the other map.
func (c *Controller) SetViewport(width int) {
	if c.page.Breakpoint <= 0 || len(c.maps) == 0 {
		return
	}
	mobile := width <= c.page.Breakpoint
	if c.mobile != nil && *c.mobile == mobile {
		return
	}
	first := c.mobile == nil
	c.mobile = &mobile
	if first {
		return
	}
	v := c.maps[0].binding.View
	cur := v.ViewState()
	next := c.page.View(width)
	next.Bearing, next.Pitch = cur.Bearing, cur.Pitch
	v.JumpTo(next)
}

// ShowError reports a data-load failure in the last info panel.
func (c *Controller) ShowError(err error) {
	c.log().WithError(err).Error("loading maps")
	for i := len(c.maps) - 1; i >= 0; i-- {
		if p := c.maps[i].panel; p != nil {
			p.SetHTML(RenderError(err))
			p.Show()
			break
		}
	}
	if c.Height != nil {
		c.Height.Trigger()
	}
}

func (c *Controller) handlers(i int) Handlers {
	return Handlers{
		Move: func(ev PointerEvent) {
			if !ev.HasFeature {
				return
			}
			c.Dispatch(Event{Type: EventHover, ID: c.identify(i, ev.Properties)})
		},
		Leave: func(PointerEvent) {
			c.Dispatch(Event{Type: EventUnhover})
		},
		Click: func(ev PointerEvent) {
			if !ev.HasFeature {
				return
			}
			id := c.identify(i, ev.Properties)
			if id == "" {
				return
			}
			c.origin, c.originProps = i, ev.Properties
			c.Dispatch(Event{Type: EventClick, ID: id})
		},
	}
}

func (c *Controller) identify(i int, props geojson.Properties) string {
	s := DefaultSchema()
	if ds := c.maps[i].ds; ds != nil {
		s = ds.Index.Schema()
	}
	id, _ := s.Identifier(props)
	return id
}

// clickMap handles every click on map i and clears the selection when the
// click hit no precinct.
func (c *Controller) clickMap(i int, ev PointerEvent) {
	if ev.HasFeature {
		return
	}
	if ds := c.maps[i].ds; ds != nil {
		if _, hit := ds.Hits.At(ev.Point); hit {
			return
		}
	}
	c.Dispatch(Event{Type: EventClickBackground})
}

// Dispatch runs e through Reduce and carries out the resulting effects.
func (c *Controller) Dispatch(e Event) {
	next, effects := Reduce(c.state, e)
	c.state = next
	if next.Selected == "" {
		c.origin, c.originProps = -1, nil
	}
	for _, ef := range effects {
		c.apply(ef)
	}
}

func (c *Controller) apply(ef Effect) {
	switch ef.Type {
	case SetHoverOutline:
		for _, m := range c.maps {
			m.binding.View.SetFilter(m.binding.Layers.Hover, ef.ID)
		}
	case SetSelectedOutline:
		for _, m := range c.maps {
			m.binding.View.SetFilter(m.binding.Layers.Selected, ef.ID)
		}
	case SetCursor:
		cursor := ""
		if ef.Pointer {
			cursor = "pointer"
		}
		for _, m := range c.maps {
			m.binding.View.SetCursor(cursor)
		}
	case ShowInfo:
		for i, m := range c.maps {
			if m.panel == nil {
				continue
			}
			m.panel.SetHTML(c.infoHTML(i, ef.ID))
			m.panel.Show()
		}
	case HideInfo:
		for _, m := range c.maps {
			if m.panel == nil {
				continue
			}
			m.panel.SetHTML("")
			m.panel.Hide()
		}
	case NotifyResize:
		if c.Height != nil {
			c.Height.Trigger()
		}
	}
}

func (c *Controller) infoHTML(i int, id string) string {
	ds := c.maps[i].ds
	if ds == nil {
		return RenderNoData(id)
	}
	r, ok := ds.Index.Lookup(id)
	if !ok && i == c.origin {
		r, ok = ds.Mode.Schema().NewRecord(c.originProps)
	}
	if !ok {
		return RenderNoData(id)
	}
	html, err := RenderInfo(ds.Mode, r)
	if err != nil {
		c.log().WithError(err).WithField("precinct", id).Warn("rendering info panel")
		return RenderNoData(id)
	}
	return html
}

//go:build js
// +build js

package gui

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"syscall/js"
	"time"

	"github.com/mlnow/electionmaps"
	"github.com/sirupsen/logrus"
)

// Page runs one election map page in the browser.
type Page struct {
	Controller *electionmaps.Controller
	Height     *electionmaps.HeightReporter
	Log        logrus.FieldLogger

	cfg   *electionmaps.Config
	win   js.Value
	doc   js.Value
	views []*MapView
	funcs []js.Func
}

// NewPage creates the maps and panels of the named page from the elements
// of the current document.
func NewPage(cfg *electionmaps.Config, name string) (*Page, error) {
	p := &Page{
		cfg: cfg,
		win: js.Global().Get("window"),
		doc: js.Global().Get("document"),
		Log: logrus.StandardLogger(),
	}
	page, err := cfg.Page(name)
	if err != nil {
		return nil, err
	}
	style := page.Style
	if style == "" {
		style = "https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}.png"
	}
	view := page.View(p.width())

	views := make([]electionmaps.PageView, len(page.Maps))
	for i, mc := range page.Maps {
		mv := NewMapView(p.element(mc.ID), p.element(mc.Legend), p.element(mc.Title), style, view)
		p.views = append(p.views, mv)
		views[i].Map = mv
		if mc.Panel != "" {
			views[i].Panel = NewPanel(p.element(mc.Panel))
		}
	}
	c, err := electionmaps.NewController(cfg, name, views)
	if err != nil {
		return nil, err
	}
	c.Log = p.Log
	p.Controller = c
	p.Height = electionmaps.NewHeightReporter(NewPymSender(p.win))
	c.Height = p.Height
	return p, nil
}

func (p *Page) element(id string) js.Value {
	if id == "" {
		return js.Null()
	}
	return p.doc.Call("getElementById", id)
}

func (p *Page) width() int {
	return p.win.Get("innerWidth").Int()
}

func (p *Page) listen(target js.Value, event string, f func(args []js.Value)) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		f(args)
		return nil
	})
	p.funcs = append(p.funcs, fn)
	target.Call("addEventListener", event, fn)
}

// readyTimeout bounds how long the first full height report waits for
// tiles and fonts.
const readyTimeout = 5 * time.Second

// Run wires the page's controls, loads its data from base and reports the
// page height once the data, the basemap tiles of every map and the fonts
// have loaded.
func (p *Page) Run(ctx context.Context, base string) error {
	c := p.Controller
	c.SetViewport(p.width())

	conditions := []string{"data", "fonts"}
	for _, mc := range c.Page().Maps {
		conditions = append(conditions, "tiles-"+mc.ID)
	}
	gate := p.Height.Gate(conditions...)
	for i, mc := range c.Page().Maps {
		cond := "tiles-" + mc.ID
		p.views[i].OnTilesLoaded(func() { gate.Done(cond) })
	}

	p.listen(p.doc, "keydown", func(args []js.Value) {
		if args[0].Get("key").String() == "Escape" {
			c.Escape()
		}
	})
	for i, mc := range c.Page().Maps {
		if mc.Selector == "" {
			continue
		}
		sel := p.element(mc.Selector)
		if !sel.Truthy() {
			continue
		}
		updateModeSelector(p.doc, sel, p.cfg, mc)
		i := i
		p.listen(sel, "change", func([]js.Value) {
			name, _ := selectorValue(sel)
			if err := c.SelectMode(i, name); err != nil {
				p.Log.WithError(err).Error("switching mode")
			}
		})
	}
	p.listen(p.win, "resize", func([]js.Value) {
		c.SetViewport(p.width())
		p.Height.Trigger()
	})
	p.listen(p.win, "orientationchange", func([]js.Value) {
		time.AfterFunc(200*time.Millisecond, p.Height.Orientation)
	})
	p.observe()

	loader := electionmaps.NewLoader()
	loader.Log = p.Log
	if fonts := p.doc.Get("fonts"); fonts.Truthy() {
		ready := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			gate.Done("fonts")
			return nil
		})
		p.funcs = append(p.funcs, ready)
		fonts.Get("ready").Call("then", ready)
	} else {
		gate.Done("fonts")
	}
	time.AfterFunc(readyTimeout, gate.Force)

	if err := c.Load(ctx, loader, base); err != nil {
		gate.Force()
		return err
	}
	gate.Done("data")
	return nil
}

// observe triggers a height report when the body resizes or its content
// changes.
func (p *Page) observe() {
	body := p.doc.Get("body")
	trigger := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		p.Height.Trigger()
		return nil
	})
	p.funcs = append(p.funcs, trigger)
	if ro := js.Global().Get("ResizeObserver"); ro.Truthy() {
		ro.New(trigger).Call("observe", body)
	}
	if mo := js.Global().Get("MutationObserver"); mo.Truthy() {
		mo.New(trigger).Call("observe", body, mutationOptions())
	}
}

// mutationOptions watches the whole body for added nodes, attribute and
// text changes.
func mutationOptions() map[string]interface{} {
	return map[string]interface{}{
		"childList":     true,
		"subtree":       true,
		"attributes":    true,
		"characterData": true,
	}
}

// Close stops height reports and releases the page's callbacks.
func (p *Page) Close() {
	p.Height.Stop()
	for _, f := range p.funcs {
		f.Release()
	}
	p.funcs = nil
}

// BaseURL returns the directory of the current document.
func BaseURL() string {
	u := js.Global().Get("document").Get("baseURI").String()
	if i := strings.LastIndex(u, "/"); i >= 0 {
		return u[:i+1]
	}
	return u + "/"
}

// LoadConfig fetches the configuration at url. The built-in configuration
// is returned when it cannot be fetched or parsed.
func LoadConfig(ctx context.Context, url string) *electionmaps.Config {
	cfg, err := fetchConfig(ctx, url)
	if err != nil {
		logrus.WithError(err).Warn("using built-in map configuration")
		return electionmaps.DefaultConfig()
	}
	return cfg
}

func fetchConfig(ctx context.Context, url string) (*electionmaps.Config, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gui: %s: %s", url, resp.Status)
	}
	b, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return electionmaps.ParseConfig(b)
}

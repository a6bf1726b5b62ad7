//go:build js
// +build js

package main

import (
	"context"
	"syscall/js"

	"github.com/mlnow/electionmaps/gui"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx := context.Background()
	name := js.Global().Get("document").Get("body").Call("getAttribute", "data-page").String()
	base := gui.BaseURL()

	cfg := gui.LoadConfig(ctx, base+"maps.yaml")
	p, err := gui.NewPage(cfg, name)
	if err != nil {
		logrus.WithError(err).Fatal("creating page")
	}
	if err := p.Run(ctx, base); err != nil {
		logrus.WithError(err).Error("loading page")
	}

	select {} // Block
}

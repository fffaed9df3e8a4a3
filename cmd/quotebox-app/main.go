// quotebox-app is the desktop shell for the quote widget.
// The window shows the same page as `quotebox serve`, served in-process
// through the Wails asset handler.
package main

import (
	"context"
	"errors"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/Snider/Quotebox/pkg/config"
	"github.com/Snider/Quotebox/pkg/console"
	"github.com/Snider/Quotebox/pkg/logger"
	"github.com/Snider/Quotebox/pkg/quote"
	"github.com/Snider/Quotebox/pkg/widget"
)

// App exposes the controller to the frontend.
type App struct {
	ctx context.Context
	ctl *widget.Controller
}

// NewApp creates an App around ctl.
func NewApp(ctl *widget.Controller) *App {
	return &App{ctx: context.Background(), ctl: ctl}
}

// Startup is called by Wails when the window is ready; ctx is the
// application context.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
}

// Current returns the displayed state.
func (a *App) Current() widget.State {
	return a.ctl.Snapshot()
}

// NewQuote requests a new quote. A request made while one is in flight is
// ignored and reports the current state.
func (a *App) NewQuote() (widget.State, error) {
	st, err := a.ctl.RequestNewQuote(a.ctx)
	if errors.Is(err, widget.ErrBusy) {
		return st, nil
	}
	return st, err
}

func main() {
	log := logger.New(false)

	cfg, err := config.Load("")
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		log.Error("loading config", "err", err)
		return
	}

	client := quote.NewClientWithTimeout(cfg.Endpoint, cfg.Timeout)
	ctl := widget.NewController(client, widget.WithLogger(log))
	server := console.NewServer(ctl, cfg.Serve.Port, log, nil)
	server.SetShareURL(cfg.ShareURL)
	app := NewApp(ctl)

	err = wails.Run(&options.App{
		Title:     "Random Quote Machine",
		Width:     900,
		Height:    700,
		MinWidth:  480,
		MinHeight: 480,
		AssetServer: &assetserver.Options{
			Handler: server.Handler(),
		},
		BackgroundColour: &options.RGBA{R: 71, G: 85, B: 105, A: 1},
		OnStartup:        app.Startup,
		Bind: []interface{}{
			app,
		},
	})

	if err != nil {
		log.Error("running app", "err", err)
	}
}

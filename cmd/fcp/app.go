package main

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// App is the principal structure wiring the transfer and the user
// interface.
type App struct {
	cfg       *Config
	copier    *Copier
	uiHandler *UIHandler

	srcPath string
	dstPath string
}

// NewApp returns a pointer to a new [App].
func NewApp(cfg *Config, copier *Copier, uiHandler *UIHandler, srcPath, dstPath string) *App {
	return &App{
		cfg:       cfg,
		copier:    copier,
		uiHandler: uiHandler,
		srcPath:   srcPath,
		dstPath:   dstPath,
	}
}

// Launch runs the transfer, and the user interface when enabled, until
// both have finished.
func (app *App) Launch(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	if app.uiHandler != nil {
		g.Go(func() error {
			return app.uiHandler.Launch()
		})
	}

	g.Go(func() error {
		var progress progressFunc

		if app.uiHandler != nil {
			for {
				select {
				case <-ctx.Done():
					return nil
				default:
				}
				if app.uiHandler.Ready.Load() || app.uiHandler.Failed.Load() {
					break
				}
			}
			progress = app.uiHandler.Progress
		}

		err := app.copier.Copy(ctx, app.srcPath, app.dstPath, progress)
		if app.uiHandler != nil {
			app.uiHandler.Done(err)
		}
		if err != nil {
			return fmt.Errorf("(app) %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	return nil
}

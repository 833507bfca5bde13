package cli

import (
	"context"

	"ritual/internal/server"
)

// ServeCommand runs the local JSON API until ctx is cancelled
type ServeCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(app *App) *ServeCommand {
	return &ServeCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute runs the serve command
func (c *ServeCommand) Execute(ctx context.Context, args []string) error {
	srv := server.New(c.app.api, c.app.config.Server)
	c.app.printf("Serving the Ritual API on http://%s/api (Ctrl+C to stop)\n", c.app.config.Server.Address)
	if err := srv.ListenAndServe(ctx); err != nil {
		return c.errorHandler.Handle("serve", err)
	}
	return nil
}

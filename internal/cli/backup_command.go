package cli

import (
	"context"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"ritual/internal/errors"
)

// BackupCommand exports and imports whole-store snapshots
type BackupCommand struct {
	app          *App
	errorHandler *ErrorHandler

	Output string
}

// NewBackupCommand creates a new backup command handler
func NewBackupCommand(app *App) *BackupCommand {
	return &BackupCommand{app: app, errorHandler: NewErrorHandler()}
}

// Export writes the snapshot to Output, or to stdout when Output is empty or "-"
func (c *BackupCommand) Export(ctx context.Context, args []string) error {
	data, err := c.app.api.ExportSnapshot(ctx)
	if err != nil {
		return c.errorHandler.Handle("export backup", err)
	}

	if c.Output == "" || c.Output == "-" {
		_, err = c.app.out.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(c.Output, data, 0644); err != nil {
		return c.errorHandler.Handle("write backup", err)
	}
	c.app.printf("Backup written to %s (%s)\n", c.Output, humanize.Bytes(uint64(len(data))))
	return nil
}

// Import replaces the whole store with the snapshot read from args[0], or
// from stdin when it is "-"
func (c *BackupCommand) Import(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "backup import", "usage: ritual backup import <file|->")
	}

	var data []byte
	var err error
	if args[0] == "-" {
		data, err = io.ReadAll(c.app.in)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return c.errorHandler.Handle("read backup", err)
	}

	if err := c.app.api.ImportSnapshot(ctx, data); err != nil {
		return c.errorHandler.Handle("import backup", err)
	}
	c.app.println("Backup restored")
	return nil
}

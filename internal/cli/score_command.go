package cli

import (
	"context"
	"strings"

	"github.com/dustin/go-humanize"
)

const progressBarWidth = 20

// ScoreCommand prints the experience total and level
type ScoreCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewScoreCommand creates a new score command handler
func NewScoreCommand(app *App) *ScoreCommand {
	return &ScoreCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute runs the score command
func (c *ScoreCommand) Execute(ctx context.Context, args []string) error {
	score, err := c.app.api.GetScore(ctx)
	if err != nil {
		return c.errorHandler.Handle("compute score", err)
	}

	c.app.printf("Level:      %s\n", score.Level.Name)
	c.app.printf("Experience: %s XP (%s tasks completed)\n",
		humanize.Comma(int64(score.Experience)), humanize.Comma(int64(score.CompletedTasks)))
	if score.Next == nil {
		c.app.println("Progress:   top level reached")
	} else {
		c.app.printf("Progress:   %d%% to %s (%s XP)\n", score.Progress, score.Next.Name, humanize.Comma(int64(score.Next.Threshold)))
	}
	c.app.println(progressBar(score.Progress))
	return nil
}

func progressBar(percent int) string {
	filled := percent * progressBarWidth / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", progressBarWidth-filled) + "]"
}

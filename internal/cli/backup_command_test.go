package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupCommand_ExportImportRoundTrip(t *testing.T) {
	source, out := setupTestApp(t)
	ctx := context.Background()
	addTasks(t, source, out, "2024-03-11", "Alpha", "Beta")
	require.NoError(t, NewTemplateCommand(source).Add(ctx, []string{"Stretch"}))

	path := filepath.Join(t.TempDir(), "backup.json")
	export := NewBackupCommand(source)
	export.Output = path
	out.Reset()
	require.NoError(t, export.Export(ctx, nil))
	assert.Contains(t, out.String(), "Backup written to "+path)

	target, targetOut := setupTestApp(t)
	require.NoError(t, NewBackupCommand(target).Import(ctx, []string{path}))
	assert.Equal(t, "Backup restored\n", targetOut.String())

	want, err := source.api.TasksForDate(ctx, "2024-03-11")
	require.NoError(t, err)
	got, err := target.api.TasksForDate(ctx, "2024-03-11")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	templates, err := target.api.ListTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "Stretch", templates[0].Title)
}

func TestBackupCommand_ExportToStdout(t *testing.T) {
	app, out := setupTestApp(t)

	require.NoError(t, NewBackupCommand(app).Export(context.Background(), nil))

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out.String()), &doc))
	for _, key := range []string{"tasks", "templates", "settings", "holidays", "meta", "debug"} {
		assert.Contains(t, doc, key)
	}
}

func TestBackupCommand_ImportFromStdin(t *testing.T) {
	app, _ := setupTestApp(t)
	ctx := context.Background()
	app.in = strings.NewReader(`{"tasks":[{"id":"t1","date":"2024-03-11","title":"Restored","done":false,"order":1}]}`)

	require.NoError(t, NewBackupCommand(app).Import(ctx, []string{"-"}))

	tasks, err := app.api.TasksForDate(ctx, "2024-03-11")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Restored", tasks[0].Title)
}

func TestBackupCommand_InvalidImportLeavesStoreIntact(t *testing.T) {
	app, out := setupTestApp(t)
	ctx := context.Background()
	addTasks(t, app, out, "2024-03-11", "Keep me")

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("[1, 2, 3]"), 0644))

	err := NewBackupCommand(app).Import(ctx, []string{path})
	require.Error(t, err)
	assert.Equal(t, "failed to import backup: Invalid or corrupted backup file.", err.Error())

	tasks, err := app.api.TasksForDate(ctx, "2024-03-11")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Keep me", tasks[0].Title)
}

func TestBackupCommand_ImportUsage(t *testing.T) {
	app, _ := setupTestApp(t)
	assert.Error(t, NewBackupCommand(app).Import(context.Background(), nil))
}

package services

import (
	"context"
	"encoding/json"
	"fmt"

	"ritual/internal/errors"
	"ritual/internal/logging"
	"ritual/internal/repository/sqlite"
)

// Collection names as they appear in a snapshot.
const (
	CollectionTasks     = "tasks"
	CollectionTemplates = "templates"
	CollectionSettings  = "settings"
	CollectionHolidays  = "holidays"
	CollectionMeta      = "meta"
	CollectionDebug     = "debug"
)

// Snapshot is the whole store in its exported shape. Every collection is
// always present, empty or not.
type Snapshot struct {
	Tasks     []*sqlite.Task          `json:"tasks"`
	Templates []*sqlite.Template      `json:"templates"`
	Settings  []*sqlite.Settings      `json:"settings"`
	Holidays  []*sqlite.Holiday       `json:"holidays"`
	Meta      []*sqlite.MetaEntry     `json:"meta"`
	Debug     []*sqlite.DebugLogEntry `json:"debug"`
}

// backupServiceImpl implements the BackupService interface
type backupServiceImpl struct {
	repo sqlite.Repository
}

// NewBackupService creates a new BackupService instance
func NewBackupService(repo sqlite.Repository) BackupService {
	return &backupServiceImpl{repo: repo}
}

func (s *backupServiceImpl) snapshot(ctx context.Context) (*Snapshot, error) {
	var (
		snap Snapshot
		err  error
	)
	if snap.Tasks, err = s.repo.ListTasks(ctx); err != nil {
		return nil, err
	}
	if snap.Templates, err = s.repo.ListTemplates(ctx); err != nil {
		return nil, err
	}
	if snap.Settings, err = s.repo.ListSettings(ctx); err != nil {
		return nil, err
	}
	if snap.Holidays, err = s.repo.ListHolidays(ctx); err != nil {
		return nil, err
	}
	if snap.Meta, err = s.repo.ListMeta(ctx); err != nil {
		return nil, err
	}
	if snap.Debug, err = s.repo.ListDebugLog(ctx); err != nil {
		return nil, err
	}

	// Empty collections export as [] rather than null.
	if snap.Tasks == nil {
		snap.Tasks = []*sqlite.Task{}
	}
	if snap.Templates == nil {
		snap.Templates = []*sqlite.Template{}
	}
	if snap.Settings == nil {
		snap.Settings = []*sqlite.Settings{}
	}
	if snap.Holidays == nil {
		snap.Holidays = []*sqlite.Holiday{}
	}
	if snap.Meta == nil {
		snap.Meta = []*sqlite.MetaEntry{}
	}
	if snap.Debug == nil {
		snap.Debug = []*sqlite.DebugLogEntry{}
	}
	return &snap, nil
}

// ExportSnapshot renders every collection as an indented JSON document
func (s *backupServiceImpl) ExportSnapshot(ctx context.Context) ([]byte, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrorTypeDatabase, "failed to encode snapshot")
	}
	logging.Debugf("exported snapshot: %d tasks, %d templates, %d holidays\n",
		len(snap.Tasks), len(snap.Templates), len(snap.Holidays))
	return data, nil
}

// decodeCollection decodes raw into out. A missing key leaves out empty.
func decodeCollection(doc map[string]json.RawMessage, key string, out interface{}) error {
	raw, ok := doc[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.NewInvalidBackupError(fmt.Sprintf("collection %q is malformed", key), err)
	}
	return nil
}

// ParseSnapshot decodes and checks a snapshot without touching the store
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewInvalidBackupError("not a JSON object", err)
	}
	if doc == nil {
		return nil, errors.NewInvalidBackupError("not a JSON object", nil)
	}

	var snap Snapshot
	if err := decodeCollection(doc, CollectionTasks, &snap.Tasks); err != nil {
		return nil, err
	}
	if err := decodeCollection(doc, CollectionTemplates, &snap.Templates); err != nil {
		return nil, err
	}
	if err := decodeCollection(doc, CollectionSettings, &snap.Settings); err != nil {
		return nil, err
	}
	if err := decodeCollection(doc, CollectionHolidays, &snap.Holidays); err != nil {
		return nil, err
	}
	if err := decodeCollection(doc, CollectionMeta, &snap.Meta); err != nil {
		return nil, err
	}
	if err := decodeCollection(doc, CollectionDebug, &snap.Debug); err != nil {
		return nil, err
	}

	if err := snap.check(); err != nil {
		return nil, err
	}
	return &snap, nil
}

func invalidRecord(collection string, index int, reason string) error {
	return errors.NewInvalidBackupError(fmt.Sprintf("%s[%d]: %s", collection, index, reason), nil)
}

// check rejects records that could not be stored and numbers debug entries
// written without an id.
func (snap *Snapshot) check() error {
	for i, t := range snap.Tasks {
		if t == nil {
			return invalidRecord(CollectionTasks, i, "null record")
		}
		if t.ID == "" {
			return invalidRecord(CollectionTasks, i, "missing id")
		}
	}
	for i, t := range snap.Templates {
		if t == nil {
			return invalidRecord(CollectionTemplates, i, "null record")
		}
		if t.ID == "" {
			return invalidRecord(CollectionTemplates, i, "missing id")
		}
	}
	for i, st := range snap.Settings {
		if st == nil {
			return invalidRecord(CollectionSettings, i, "null record")
		}
	}
	for i, h := range snap.Holidays {
		if h == nil {
			return invalidRecord(CollectionHolidays, i, "null record")
		}
		if h.ID == "" {
			return invalidRecord(CollectionHolidays, i, "missing id")
		}
	}
	for i, m := range snap.Meta {
		if m == nil {
			return invalidRecord(CollectionMeta, i, "null record")
		}
		if m.Key == "" {
			return invalidRecord(CollectionMeta, i, "missing key")
		}
	}

	var maxID int64
	for i, e := range snap.Debug {
		if e == nil {
			return invalidRecord(CollectionDebug, i, "null record")
		}
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	for _, e := range snap.Debug {
		if e.ID <= 0 {
			maxID++
			e.ID = maxID
		}
	}
	return nil
}

// ImportSnapshot replaces every collection with the snapshot's contents. The
// document is fully decoded first, so a malformed one leaves the store as it
// was. Collections are replaced one at a time.
func (s *backupServiceImpl) ImportSnapshot(ctx context.Context, data []byte) error {
	snap, err := ParseSnapshot(data)
	if err != nil {
		return err
	}

	if err := s.repo.ReplaceTasks(ctx, snap.Tasks); err != nil {
		return err
	}
	if err := s.repo.ReplaceTemplates(ctx, snap.Templates); err != nil {
		return err
	}
	if err := s.repo.ReplaceSettings(ctx, snap.Settings); err != nil {
		return err
	}
	if err := s.repo.ReplaceHolidays(ctx, snap.Holidays); err != nil {
		return err
	}
	if err := s.repo.ReplaceMeta(ctx, snap.Meta); err != nil {
		return err
	}
	if err := s.repo.ReplaceDebugLog(ctx, snap.Debug); err != nil {
		return err
	}

	logging.Debugf("imported snapshot: %d tasks, %d templates, %d holidays\n",
		len(snap.Tasks), len(snap.Templates), len(snap.Holidays))
	return nil
}

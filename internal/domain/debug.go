package domain

import (
	"fmt"
	"time"
)

// ISOMillisLayout renders UTC instants like 2024-03-10T08:30:00.123Z.
const ISOMillisLayout = "2006-01-02T15:04:05.000Z07:00"

// DebugLogEntry is one line of the persisted debug log.
type DebugLogEntry struct {
	ID        int64
	Timestamp time.Time
	Message   string
}

// String renders the entry as "[timestamp] message".
func (e DebugLogEntry) String() string {
	return fmt.Sprintf("[%s] %s", e.Timestamp.UTC().Format(ISOMillisLayout), e.Message)
}

// MetaEntry is a free-form key/value record carried in snapshots.
type MetaEntry struct {
	Key   string
	Value string
}

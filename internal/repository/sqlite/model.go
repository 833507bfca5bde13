package sqlite

// Task is a row of the tasks collection.
type Task struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
	Order int64  `json:"order"`
}

// Template is a row of the templates collection. Days holds weekday numbers 0-6.
type Template struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Enabled bool   `json:"enabled"`
	Days    []int  `json:"days"`
}

// Holiday is a custom, year-less calendar annotation.
type Holiday struct {
	ID   string `json:"id"`
	MMDD string `json:"mmdd"`
	Name string `json:"name"`
}

// Settings is the single record stored under SettingsKey.
type Settings struct {
	Accent       string `json:"accent"`
	Debug        bool   `json:"debug"`
	LastPrompted string `json:"lastPrompted"`
}

// MetaEntry is a free-form key/value record.
type MetaEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// DebugLogEntry is an append-only log line. Timestamp is Unix milliseconds.
type DebugLogEntry struct {
	ID        int64  `json:"id"`
	Timestamp int64  `json:"timestamp"`
	Message   string `json:"message"`
}

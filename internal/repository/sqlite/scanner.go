package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanAll drains rows through scan. It never returns a nil slice on success
// so empty collections serialize as [] rather than null.
func ScanAll[T any](rows Rows, scan func(Scanner) (*T, error)) ([]*T, error) {
	results := []*T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	err := scanner.Scan(&task.ID, &task.Date, &task.Title, &task.Done, &task.Order)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	return ScanAll(rows, ScanTask)
}

// ScanTemplate scans a single template, decoding its weekday set
func ScanTemplate(scanner Scanner) (*Template, error) {
	tmpl := &Template{}
	var days string
	if err := scanner.Scan(&tmpl.ID, &tmpl.Title, &tmpl.Type, &tmpl.Enabled, &days); err != nil {
		return nil, err
	}
	parsed, err := ParseDaysFromDB(days)
	if err != nil {
		return nil, err
	}
	tmpl.Days = parsed
	return tmpl, nil
}

// ScanTemplates scans multiple templates from database rows
func ScanTemplates(rows Rows) ([]*Template, error) {
	return ScanAll(rows, ScanTemplate)
}

// ScanHoliday scans a single holiday from a database row
func ScanHoliday(scanner Scanner) (*Holiday, error) {
	h := &Holiday{}
	if err := scanner.Scan(&h.ID, &h.MMDD, &h.Name); err != nil {
		return nil, err
	}
	return h, nil
}

// ScanHolidays scans multiple holidays from database rows
func ScanHolidays(rows Rows) ([]*Holiday, error) {
	return ScanAll(rows, ScanHoliday)
}

// ScanSettings scans the settings record
func ScanSettings(scanner Scanner) (*Settings, error) {
	s := &Settings{}
	if err := scanner.Scan(&s.Accent, &s.Debug, &s.LastPrompted); err != nil {
		return nil, err
	}
	return s, nil
}

// ScanSettingsRows scans every settings record
func ScanSettingsRows(rows Rows) ([]*Settings, error) {
	return ScanAll(rows, ScanSettings)
}

// ScanMetaEntry scans a single meta record
func ScanMetaEntry(scanner Scanner) (*MetaEntry, error) {
	m := &MetaEntry{}
	if err := scanner.Scan(&m.Key, &m.Value); err != nil {
		return nil, err
	}
	return m, nil
}

// ScanMetaEntries scans multiple meta records
func ScanMetaEntries(rows Rows) ([]*MetaEntry, error) {
	return ScanAll(rows, ScanMetaEntry)
}

// ScanDebugLogEntry scans a single debug log line
func ScanDebugLogEntry(scanner Scanner) (*DebugLogEntry, error) {
	e := &DebugLogEntry{}
	if err := scanner.Scan(&e.ID, &e.Timestamp, &e.Message); err != nil {
		return nil, err
	}
	return e, nil
}

// ScanDebugLogEntries scans multiple debug log lines
func ScanDebugLogEntries(rows Rows) ([]*DebugLogEntry, error) {
	return ScanAll(rows, ScanDebugLogEntry)
}

/*
Package csvfile persists the employee registry as a delimited text file.

PURPOSE:
  One flat CSV file per registry: UTF-8, comma-separated, header row equal
  to the sorted union of every record's field names, one data row per
  record, empty cells for absent fields. Any spreadsheet can read it.

SAVE QUIRK (deliberate, preserved):
  Saving an empty registry is a no-op. It does NOT create or truncate the
  file. A previously saved file survives an empty save untouched.

LOAD POLICY (fail-safe-empty):
  - Missing file: empty result, nil error.
  - Any read or parse failure: a typed *PersistenceError so the caller can
    visibly fall back to an empty registry. Partial state is never
    returned.
  - Duplicate emp_id rows: both are returned in row order; inserting them
    into a registry makes the last row win.

SEE ALSO:
  - payroll/factory.go: Per-row variant dispatch and coercion
*/
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/warp/payroll-engine/payroll"
)

// Store reads and writes one registry file. The path is explicit
// configuration, never global state.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// PersistenceError wraps any failure while reading or parsing the file.
type PersistenceError struct {
	Path string
	Op   string // "open", "read", "parse"
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("csvfile: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// =============================================================================
// SAVE
// =============================================================================

// Save writes one row per record under a header formed from the sorted
// union of all field names. An empty record set leaves the file untouched.
// Write failures propagate.
func (s *Store) Save(records []payroll.Employee) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([]map[string]string, len(records))
	union := make(map[string]bool)
	for i, rec := range records {
		fields := rec.Fields()
		rows[i] = fields
		for k := range fields {
			union[k] = true
		}
	}

	header := make([]string, 0, len(union))
	for k := range union {
		header = append(header, k)
	}
	sort.Strings(header)

	f, err := os.Create(s.path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	cells := make([]string, len(header))
	for _, row := range rows {
		for i, col := range header {
			cells[i] = row[col] // absent -> empty cell
		}
		if err := w.Write(cells); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// =============================================================================
// LOAD
// =============================================================================

// Load reads every row into an employee record, in row order. A missing
// file yields (nil, nil). Any other failure yields a *PersistenceError and
// no records.
func (s *Store) Load() ([]payroll.Employee, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &PersistenceError{Path: s.path, Op: "open", Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // short rows mean missing cells, not errors

	lines, err := r.ReadAll()
	if err != nil {
		return nil, &PersistenceError{Path: s.path, Op: "read", Err: err}
	}
	if len(lines) == 0 {
		return nil, nil
	}

	header := lines[0]
	var records []payroll.Employee
	for _, line := range lines[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(line) {
				row[col] = line[i]
			} else {
				row[col] = ""
			}
		}
		rec, err := payroll.FromRow(row, header)
		if err != nil {
			return nil, &PersistenceError{Path: s.path, Op: "parse", Err: err}
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadRegistry loads into a fresh registry, duplicate IDs resolving to the
// last row. The error contract matches Load.
func (s *Store) LoadRegistry() (*payroll.Registry, error) {
	records, err := s.Load()
	if err != nil {
		return nil, err
	}
	reg := payroll.NewRegistry()
	for _, rec := range records {
		reg.Add(rec)
	}
	return reg, nil
}

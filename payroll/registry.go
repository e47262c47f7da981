/*
registry.go - In-memory keyed store of employee records

PURPOSE:
  The registry owns the records for a single process/session: a mapping
  from employee ID to record, with insertion order preserved so a save
  writes rows in a stable order.

SEMANTICS:
  Add:     insert or overwrite by ID (last write wins, position kept)
  Remove:  no-op when absent
  Get:     (record, ok) - an absent key is not an error
  ListAll: serializable field sets, insertion order

CONCURRENCY:
  None. The registry is single-threaded by design; anything exposing it as
  a service must serialize access externally (the api package does).
*/
package payroll

// Registry maps employee IDs to records.
type Registry struct {
	byID  map[string]Employee
	order []string
}

func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Employee)}
}

// Add inserts or overwrites the record keyed by its ID. Overwriting keeps
// the record's original position in iteration order.
func (r *Registry) Add(e Employee) {
	id := e.ID()
	if _, exists := r.byID[id]; !exists {
		r.order = append(r.order, id)
	}
	r.byID[id] = e
}

// Remove deletes the record if present. Absent keys are a no-op.
func (r *Registry) Remove(id string) {
	if _, exists := r.byID[id]; !exists {
		return
	}
	delete(r.byID, id)
	for i, k := range r.order {
		if k == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get returns the record and whether it exists.
func (r *Registry) Get(id string) (Employee, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// Employees returns the records in insertion order.
func (r *Registry) Employees() []Employee {
	out := make([]Employee, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// ListAll returns every record's serializable field set, insertion order.
func (r *Registry) ListAll() []map[string]string {
	out := make([]map[string]string, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Fields())
	}
	return out
}

func (r *Registry) Len() int { return len(r.order) }

func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

package memdb

import "errors"

type DiagnosticsRepo struct {
	*DB
}

func NewDiagnosticsRepo(db *DB) *DiagnosticsRepo {
	return &DiagnosticsRepo{db}
}

// Ping reports whether the store is usable and how many records it holds.
func (r *DiagnosticsRepo) Ping() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.state == nil {
		return errors.New("store is not initialized")
	}

	return nil
}

func (r *DiagnosticsRepo) Counts() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return map[string]int{
		"clients":       r.state.clients.len(),
		"contracts":     r.state.contracts.len(),
		"consultants":   r.state.consultants.len(),
		"services":      r.state.services.len(),
		"logEntries":    r.state.logEntries.len(),
		"announcements": r.state.announcements.len(),
	}
}

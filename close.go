package kdgo

// Close marks the DB as closed. Subsequent calls of methods that return an
// error fail with ErrClosed; Len, IsEmpty and Stats keep reporting the
// contents at the time of closing. Closing an already closed DB is a no-op.
func (db *DB) Close() error {
	if db == nil {
		return nil
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	db.closed = true
	return nil
}

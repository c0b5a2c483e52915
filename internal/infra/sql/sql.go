package sql

import "context"

// Database runs raw SQL against the primary store, bypassing the ORM.
// Query returns the first column of each row as raw bytes.
type Database interface {
	Open() error
	Close()
	Command(string) error
	Query(context.Context, string, ...any) ([][]byte, error)
}

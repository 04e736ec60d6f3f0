package db

import "context"

// SchemaInterface manages versions of the database schema.
type SchemaInterface interface {
	// Upgrade applies every schema version newer than the database's one, in order.
	Upgrade(ctx context.Context) error

	// Version returns the schema version of the database.
	//
	// A database without any schema is version 0.
	Version(ctx context.Context) (int, error)

	// Context returns a context which is cancelled when the database schema
	// gets older than the schema repository.
	Context(ctx context.Context) (context.Context, context.CancelFunc)
}

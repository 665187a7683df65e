package database

import (
	"context"
	"errors"
)

// Collection keys. Each key maps to one JSON document holding the whole
// collection; every mutation rewrites the document it touches.
const (
	KeyUsers     = "users"
	KeyProducts  = "products"
	KeySales     = "sales"
	KeyAppConfig = "app-config"
	KeyAuditLogs = "audit-logs"
)

// ErrStoreUnavailable wraps any failed read or write against the backing
// store. Callers surface it as a generic "connection failed" message and
// abandon the attempted mutation.
var ErrStoreUnavailable = errors.New("record store unavailable")

// Store is the record-store boundary. Read reports absence via its boolean
// rather than an error so first-read seeding stays explicit at the caller.
//
// Transact runs fn against a transactional view of the store: reads inside
// it lock the touched collection rows until commit, so a read-check-write
// sequence (the sale flow) cannot race another writer into negative stock.
type Store interface {
	Read(ctx context.Context, key string, out any) (bool, error)
	Write(ctx context.Context, key string, value any) error
	Transact(ctx context.Context, fn func(tx Store) error) error
}

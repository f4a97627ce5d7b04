package repositories

import "context"

// DocumentStore is the external key-value persistence collaborator. Each
// ledger collection is stored as one JSON document under its own key.
type DocumentStore interface {
	// Load returns the document stored under key. The second return value
	// reports whether a document was present at all.
	Load(ctx context.Context, key string) ([]byte, bool, error)

	// Save writes the document under key, replacing any previous value.
	Save(ctx context.Context, key string, data []byte) error
}

package employee

import "context"

// Saver persists a full catalog snapshot.
type Saver interface {
	Save(ctx context.Context, records []Employee) error
}

// Loader reads back the last snapshot a Saver wrote. A saver that also
// implements Loader is a durable store: the catalog reloads from it once
// it holds data, and edits count as saved only after it accepts them.
type Loader interface {
	Load(ctx context.Context) ([]Employee, error)
}

// NopSaver keeps the catalog in memory only.
type NopSaver struct{}

func (NopSaver) Save(context.Context, []Employee) error { return nil }

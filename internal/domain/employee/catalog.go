package employee

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"motorph/internal/platform/record"
)

// Catalog holds the employee records loaded from the master source.
// It does no locking; callers serialize access.
type Catalog struct {
	src     record.Source
	saver   Saver
	logger  *zap.Logger
	records []Employee

	// unsaved is set by every mutation and cleared once a durable store
	// accepts the snapshot.
	unsaved bool
	// stored is set once the durable store holds the catalog.
	stored bool
}

func NewCatalog(src record.Source, saver Saver, logger *zap.Logger) *Catalog {
	if saver == nil {
		saver = NopSaver{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{src: src, saver: saver, logger: logger}
}

// Load replaces the in-memory set with the master source contents. Malformed
// rows are skipped. When the source cannot be read the catalog is left empty
// and the error is returned.
func (c *Catalog) Load() error {
	loaded := make([]Employee, 0, len(c.records))
	skipped := 0
	err := record.ReadRows(c.src, func(line int, fields []string) {
		emp, err := parseRow(fields)
		if err != nil {
			skipped++
			c.logger.Debug("skip employee row", zap.Int("line", line), zap.Error(err))
			return
		}
		loaded = append(loaded, emp)
	})
	c.unsaved = false
	if err != nil {
		c.records = nil
		c.logger.Error("employee catalog load failed", zap.Any("source", c.src), zap.Error(err))
		return err
	}

	c.records = loaded
	c.logger.Info("employee catalog loaded", zap.Int("employees", len(loaded)), zap.Int("skipped", skipped))
	return nil
}

// Add appends emp without checking for duplicates. A nil emp is ignored.
func (c *Catalog) Add(emp *Employee) {
	if emp == nil {
		return
	}
	c.records = append(c.records, *emp)
	c.unsaved = true
}

// Update replaces the first record with emp's ID. Unknown IDs are ignored.
func (c *Catalog) Update(emp *Employee) {
	if emp == nil {
		return
	}
	for i := range c.records {
		if c.records[i].id == emp.id {
			c.records[i] = *emp
			c.unsaved = true
			return
		}
	}
}

// DeleteByID removes every record with the given ID.
func (c *Catalog) DeleteByID(id int) {
	kept := c.records[:0]
	for _, emp := range c.records {
		if emp.id != id {
			kept = append(kept, emp)
		}
	}
	if len(kept) < len(c.records) {
		c.unsaved = true
	}
	clear(c.records[len(kept):])
	c.records = kept
}

func (c *Catalog) FindByID(id int) (Employee, bool) {
	for _, emp := range c.records {
		if emp.id == id {
			return emp, true
		}
	}
	return Employee{}, false
}

// All returns a snapshot copy of the records.
func (c *Catalog) All() []Employee {
	out := make([]Employee, len(c.records))
	copy(out, c.records)
	return out
}

func (c *Catalog) Len() int {
	return len(c.records)
}

// Unsaved reports whether the catalog holds edits no durable store has accepted.
// With a memory-only saver every edit stays unsaved.
func (c *Catalog) Unsaved() bool {
	return c.unsaved
}

// Save hands the current snapshot to the configured saver.
func (c *Catalog) Save(ctx context.Context) error {
	if err := c.saver.Save(ctx, c.All()); err != nil {
		return err
	}
	if _, ok := c.saver.(Loader); ok {
		c.unsaved = false
		c.stored = true
	}
	return nil
}

// Restore replaces the in-memory set with the durable store's snapshot and
// reports whether it did. It does nothing when the saver cannot load, or when
// the store is empty and this catalog has never written to it.
func (c *Catalog) Restore(ctx context.Context) (bool, error) {
	loader, ok := c.saver.(Loader)
	if !ok {
		return false, nil
	}
	records, err := loader.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("restore employee catalog: %w", err)
	}
	if len(records) == 0 && !c.stored {
		return false, nil
	}

	c.records = records
	c.unsaved = false
	c.stored = true
	c.logger.Info("employee catalog restored", zap.Int("employees", len(records)))
	return true, nil
}

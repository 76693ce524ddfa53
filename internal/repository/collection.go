package repository

import (
    "context"
    "slices"
    "sync"
    "time"

    "github.com/google/uuid"

    "github.com/iliyamo/autism-support-api/internal/model"
)

// Filter is a set of equality (or range) criteria.  A record is returned only
// when it matches every entry.
type Filter map[string]string

// Collection is an ordered, concurrency-safe set of records of one entity
// type.  Records are kept in insertion order and copied on the way in and out
// so callers never share memory with the store.
type Collection[E any, P model.Record[E]] struct {
    mu        sync.RWMutex
    items     []E
    immutable bool

    now   func() time.Time
    newID func() string
}

// Option customises a Collection at construction time.
type Option func(*options)

type options struct {
    immutable bool
    now       func() time.Time
    newID     func() string
}

// Immutable makes Update fail with ErrImmutable.  UpdatedAt is never set.
func Immutable() Option { return func(o *options) { o.immutable = true } }

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option { return func(o *options) { o.now = now } }

// WithIDs replaces the UUID generator, mainly for tests.
func WithIDs(newID func() string) Option { return func(o *options) { o.newID = newID } }

// NewCollection returns an empty collection.
func NewCollection[E any, P model.Record[E]](opts ...Option) *Collection[E, P] {
    o := options{now: time.Now, newID: uuid.NewString}
    for _, fn := range opts {
        fn(&o)
    }
    return &Collection[E, P]{immutable: o.immutable, now: o.now, newID: o.newID}
}

// Create stores a copy of rec with a fresh id and CreatedAt.  Any id or
// timestamps present on rec are overwritten.
func (c *Collection[E, P]) Create(ctx context.Context, rec E) (E, error) {
    if err := ctx.Err(); err != nil {
        var zero E
        return zero, err
    }
    c.mu.Lock()
    defer c.mu.Unlock()

    now := c.now().UTC()
    meta := P(&rec).Metadata()
    meta.ID = c.newID()
    meta.CreatedAt = now
    meta.UpdatedAt = time.Time{}
    if !c.immutable {
        meta.UpdatedAt = now
    }
    c.items = append(c.items, detach[E, P](rec))
    return detach[E, P](rec), nil
}

// FindAll returns copies of every record matching all of filter, in
// insertion order.  The result is never nil.
func (c *Collection[E, P]) FindAll(ctx context.Context, filter Filter) ([]E, error) {
    if err := ctx.Err(); err != nil {
        return nil, err
    }
    c.mu.RLock()
    defer c.mu.RUnlock()

    out := make([]E, 0, len(c.items))
    for i := range c.items {
        if matchesAll(P(&c.items[i]), filter) {
            out = append(out, detach[E, P](c.items[i]))
        }
    }
    return out, nil
}

func matchesAll[E any, P model.Record[E]](rec P, filter Filter) bool {
    for k, v := range filter {
        if v == "" {
            continue
        }
        if !rec.Matches(k, v) {
            return false
        }
    }
    return true
}

// FindByID returns a copy of the record with the given id or ErrNotFound.
func (c *Collection[E, P]) FindByID(ctx context.Context, id string) (E, error) {
    var zero E
    if err := ctx.Err(); err != nil {
        return zero, err
    }
    c.mu.RLock()
    defer c.mu.RUnlock()

    i := c.indexOf(id)
    if i < 0 {
        return zero, ErrNotFound
    }
    return detach[E, P](c.items[i]), nil
}

// Exists reports whether a record with id is stored.
func (c *Collection[E, P]) Exists(ctx context.Context, id string) bool {
    _, err := c.FindByID(ctx, id)
    return err == nil
}

// Update applies fn to the stored record under the write lock and returns
// the result.  ID and CreatedAt survive whatever fn does; UpdatedAt always
// moves forward.
func (c *Collection[E, P]) Update(ctx context.Context, id string, fn func(P)) (E, error) {
    var zero E
    if err := ctx.Err(); err != nil {
        return zero, err
    }
    c.mu.Lock()
    defer c.mu.Unlock()

    i := c.indexOf(id)
    if i < 0 {
        return zero, ErrNotFound
    }
    if c.immutable {
        return zero, ErrImmutable
    }

    next := detach[E, P](c.items[i])
    prev := *P(&c.items[i]).Metadata()
    fn(P(&next))

    meta := P(&next).Metadata()
    meta.ID = prev.ID
    meta.CreatedAt = prev.CreatedAt
    now := c.now().UTC()
    if !now.After(prev.UpdatedAt) {
        now = prev.UpdatedAt.Add(time.Nanosecond)
    }
    meta.UpdatedAt = now

    c.items[i] = next
    return detach[E, P](next), nil
}

// Delete removes the record with id.  The id is never handed out again.
func (c *Collection[E, P]) Delete(ctx context.Context, id string) error {
    if err := ctx.Err(); err != nil {
        return err
    }
    c.mu.Lock()
    defer c.mu.Unlock()

    i := c.indexOf(id)
    if i < 0 {
        return ErrNotFound
    }
    c.items = slices.Delete(c.items, i, i+1)
    return nil
}

// Len returns the number of stored records.
func (c *Collection[E, P]) Len() int {
    c.mu.RLock()
    defer c.mu.RUnlock()
    return len(c.items)
}

// Reset drops every record.
func (c *Collection[E, P]) Reset() {
    c.mu.Lock()
    c.items = nil
    c.mu.Unlock()
}

// detach returns rec with its reference fields copied.
func detach[E any, P model.Record[E]](rec E) E {
    if d, ok := any(P(&rec)).(model.Detacher); ok {
        d.Detach()
    }
    return rec
}

// indexOf must be called with mu held.
func (c *Collection[E, P]) indexOf(id string) int {
    return slices.IndexFunc(c.items, func(e E) bool {
        return P(&e).Metadata().ID == id
    })
}

package todo

import "time"

// Store defines the persistence interface for tasks. Implementations own
// every Task; values handed out are copies.
type Store interface {
	Add(c CreateIntent) (uint32, error)
	Update(id uint32, u UpdateIntent) error
	Delete(id uint32) (*Task, error)
	Get(id uint32) (*Task, error)
	List() ([]*Task, error)
	Close() error
}

// Option configures a store.
type Option func(*storeOptions)

type storeOptions struct {
	now func() time.Time
}

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(o *storeOptions) { o.now = now }
}

func buildOptions(opts []Option) storeOptions {
	o := storeOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func locationOrUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}

package todo

import (
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// MemoryStore keeps tasks in a map for the lifetime of the process.
type MemoryStore struct {
	mu     sync.RWMutex
	tasks  map[uint32]*Task
	nextID uint32
	loc    *time.Location
	now    func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store stamping times in loc.
func NewMemoryStore(loc *time.Location, opts ...Option) *MemoryStore {
	o := buildOptions(opts)
	return &MemoryStore{
		tasks:  make(map[uint32]*Task),
		nextID: 1,
		loc:    locationOrUTC(loc),
		now:    o.now,
	}
}

// Add stores a new task and returns its id. Ids come from a counter that
// never goes backwards, so deleted ids are not handed out again.
func (s *MemoryStore) Add(c CreateIntent) (uint32, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// nextID wraps to 0 once MaxUint32 has been handed out.
	if s.nextID == 0 {
		return 0, &StorageError{Op: "allocate id", Err: errors.New("id space exhausted")}
	}
	id := s.nextID
	t := &Task{
		ID:        id,
		Name:      c.Name,
		Status:    StatusInProgress,
		Priority:  c.Priority,
		CreatedAt: s.now().In(s.loc),
	}
	if c.Text != nil {
		text := *c.Text
		t.Text = &text
	}
	if c.DueDate != nil {
		due := c.DueDate.In(s.loc)
		t.DueDate = &due
	}
	s.tasks[id] = t
	s.nextID++

	slog.Debug("todo added", "id", id, "store", "memory")
	return id, nil
}

// Update merges u into the stored task.
func (s *MemoryStore) Update(id uint32, u UpdateIntent) error {
	if err := u.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return notFound(id)
	}
	u.Apply(t, s.loc)

	slog.Debug("todo updated", "id", id, "store", "memory")
	return nil
}

// Delete removes a task and returns it.
func (s *MemoryStore) Delete(id uint32) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, notFound(id)
	}
	delete(s.tasks, id)

	slog.Debug("todo deleted", "id", id, "store", "memory")
	return t, nil
}

// Get returns a copy of the task with the given id.
func (s *MemoryStore) Get(id uint32) (*Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, notFound(id)
	}
	return t.Clone(), nil
}

// List returns copies of all tasks ordered by id.
func (s *MemoryStore) List() ([]*Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, t.Clone())
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].ID < tasks[j].ID
	})
	return tasks, nil
}

// Close is a no-op; the map goes away with the process.
func (s *MemoryStore) Close() error {
	return nil
}

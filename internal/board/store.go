package board

import (
	"io"
	"runtime/debug"
	"strings"

	"github.com/pablasso/kanban/internal/util"
	"github.com/sirupsen/logrus"
)

// Observer receives the full task collection after every publish.
type Observer func(tasks []Task)

// Subscription is returned by Subscribe and cancels delivery when unsubscribed.
type Subscription struct {
	id    uint64
	store *Store
}

// Unsubscribe stops delivery to the observer. Calling it more than once is a no-op.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.store == nil {
		return
	}
	s.store.unsubscribe(s.id)
	s.store = nil
}

type observerEntry struct {
	id uint64
	fn Observer
}

// Store owns the task collection and is its only mutator.
// Every mutation publishes one snapshot to all observers.
//
// Store is not safe for concurrent use. Observers run synchronously on the
// caller's goroutine before the mutating call returns.
type Store struct {
	tasks     []Task
	observers []observerEntry
	nextID    uint64
	log       logrus.FieldLogger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for debug traces and recovered observer panics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	s := &Store{log: discard}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateTask appends a new Backlog task. A title that is empty or only
// whitespace is ignored: nothing changes, nothing is published, and ok is false.
// The title is stored exactly as given.
func (s *Store) CreateTask(title string) (Task, bool) {
	if strings.TrimSpace(title) == "" {
		s.log.Debug("ignoring task with empty title")
		return Task{}, false
	}

	task := Task{
		ID:    util.GenerateTaskID(len(s.tasks)),
		Title: title,
		List:  Backlog,
	}
	s.tasks = append(s.tasks, task)

	s.log.WithFields(logrus.Fields{"task_id": task.ID, "list": task.List.Key()}).Debug("task created")
	s.publish()
	return task, true
}

// ToggleSelection flips the selected flag of the task with the given ID.
// It returns false without publishing when no task has that ID.
func (s *Store) ToggleSelection(id string) bool {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		s.tasks[i].Selected = !s.tasks[i].Selected
		s.log.WithFields(logrus.Fields{"task_id": id, "selected": s.tasks[i].Selected}).Debug("selection toggled")
		s.publish()
		return true
	}
	return false
}

// MoveSelected moves every selected task to target and clears its selection.
// Unselected tasks are untouched. One publish happens even when nothing was
// selected. Returns the number of tasks moved.
func (s *Store) MoveSelected(target List) int {
	moved := 0
	for i := range s.tasks {
		if !s.tasks[i].Selected {
			continue
		}
		s.tasks[i].List = target
		s.tasks[i].Selected = false
		moved++
	}

	s.log.WithFields(logrus.Fields{"list": target.Key(), "moved": moved}).Debug("selection moved")
	s.publish()
	return moved
}

// Subscribe registers fn and immediately delivers the current snapshot to it.
// After that fn receives a snapshot on every publish, in registration order.
// A nil fn is ignored and gets a Subscription whose Unsubscribe does nothing.
func (s *Store) Subscribe(fn Observer) *Subscription {
	if fn == nil {
		s.log.Debug("ignoring nil observer")
		return &Subscription{}
	}
	s.nextID++
	entry := observerEntry{id: s.nextID, fn: fn}
	s.observers = append(s.observers, entry)

	s.deliver(entry, s.Tasks())
	return &Subscription{id: entry.id, store: s}
}

// Tasks returns a copy of the collection in insertion order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

func (s *Store) unsubscribe(id uint64) {
	for i, entry := range s.observers {
		if entry.id == id {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// publish sends one snapshot to every observer. Observers registered or
// removed during delivery take effect on the next publish.
func (s *Store) publish() {
	observers := make([]observerEntry, len(s.observers))
	copy(observers, s.observers)

	for _, entry := range observers {
		s.deliver(entry, s.Tasks())
	}
}

func (s *Store) deliver(entry observerEntry, snapshot []Task) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithField("subscription", entry.id).
				Errorf("observer panicked: %v\n%s", r, debug.Stack())
		}
	}()
	entry.fn(snapshot)
}

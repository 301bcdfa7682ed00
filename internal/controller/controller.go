package controller

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// ListState tracks the lifecycle of the server-held collection.
type ListState int

const (
	ListIdle ListState = iota
	ListLoading
	ListLoaded
	ListError
)

// ModalMode mirrors the page's single modal: closed, or open for viewing,
// editing or creating one entity.
type ModalMode string

const (
	ModalClosed ModalMode = ""
	ModalView   ModalMode = "view"
	ModalEdit   ModalMode = "edit"
	ModalCreate ModalMode = "create"
)

var (
	ErrDeleteInFlight = errors.New("another delete confirmation is already open")
	ErrNoDeleteTarget = errors.New("no delete confirmation is open")
	ErrUnsupportedOp  = errors.New("operation not supported for this resource")
	ErrUnknownEntity  = errors.New("entity not present in the loaded list")
)

// Descriptor wires one resource type into the generic lifecycle. T is the
// backend record, F the edit-surface payload the modal hands back. Get is nil
// when list rows already carry full detail; Create/Update are nil for
// read-and-delete-only resources.
type Descriptor[T any, F any] struct {
	Name   string
	ID     func(T) int64
	Label  func(T) string
	Search func(T) []string
	List   func(ctx context.Context) ([]T, error)
	Get    func(ctx context.Context, id int64) (*T, error)
	Create func(ctx context.Context, form F) error
	Update func(ctx context.Context, id int64, form F) error
	Delete func(ctx context.Context, id int64) error
}

// Controller owns one page's state: the fetched list, the modal, and the
// delete confirmation. Methods are serialized by a single mutex, the daemon's
// stand-in for the UI event loop; the session guard's timer stays independent
// of it, exactly as uncoordinated as the original.
type Controller[T any, F any] struct {
	desc   Descriptor[T, F]
	notify Notifier

	mu           sync.Mutex
	state        ListState
	items        []T
	modalMode    ModalMode
	selected     *T
	deleteTarget *T
}

func New[T any, F any](desc Descriptor[T, F], notify Notifier) *Controller[T, F] {
	if notify == nil {
		notify = LogNotifier{}
	}
	return &Controller[T, F]{desc: desc, notify: notify}
}

// Load replaces the in-memory list with a fresh fetch. On failure the list is
// cleared, the state flips to ListError and a notification is surfaced.
func (c *Controller[T, F]) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

func (c *Controller[T, F]) load(ctx context.Context) error {
	c.state = ListLoading
	items, err := c.desc.List(ctx)
	if err != nil {
		c.items = nil
		c.state = ListError
		c.notify.Error("Failed to load " + c.desc.Name + " list")
		return err
	}
	c.items = items
	c.state = ListLoaded
	return nil
}

func (c *Controller[T, F]) State() ListState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Items returns the last fetched collection.
func (c *Controller[T, F]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...)
}

// Visible filters the loaded list by case-insensitive substring match over the
// resource's display fields. The server-held list is untouched.
func (c *Controller[T, F]) Visible(term string) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return append([]T(nil), c.items...)
	}
	matched := make([]T, 0, len(c.items))
	for _, item := range c.items {
		for _, field := range c.desc.Search(item) {
			if strings.Contains(strings.ToLower(field), term) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}

// OpenView fetches detail when the resource has one and opens the modal in
// view mode. A failed detail fetch is reported and the modal stays closed.
func (c *Controller[T, F]) OpenView(ctx context.Context, id int64) (*T, error) {
	return c.open(ctx, id, ModalView)
}

// OpenEdit behaves like OpenView but opens in edit mode.
func (c *Controller[T, F]) OpenEdit(ctx context.Context, id int64) (*T, error) {
	return c.open(ctx, id, ModalEdit)
}

func (c *Controller[T, F]) open(ctx context.Context, id int64, mode ModalMode) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, err := c.resolve(ctx, id)
	if err != nil {
		c.notify.Error("Failed to load " + c.desc.Name)
		return nil, err
	}
	c.selected = item
	c.modalMode = mode
	return item, nil
}

func (c *Controller[T, F]) resolve(ctx context.Context, id int64) (*T, error) {
	if c.desc.Get != nil {
		return c.desc.Get(ctx, id)
	}
	for i := range c.items {
		if c.desc.ID(c.items[i]) == id {
			item := c.items[i]
			return &item, nil
		}
	}
	return nil, ErrUnknownEntity
}

// OpenCreate opens an empty modal.
func (c *Controller[T, F]) OpenCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = nil
	c.modalMode = ModalCreate
}

func (c *Controller[T, F]) CloseModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = nil
	c.modalMode = ModalClosed
}

// Modal reports the current modal mode and selection.
func (c *Controller[T, F]) Modal() (ModalMode, *T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.modalMode, c.selected
}

// Save submits the modal's payload: update when the edited entity carries an
// existing id, create otherwise. Success closes the modal and re-fetches the
// list; failure surfaces a notification and leaves the modal open.
func (c *Controller[T, F]) Save(ctx context.Context, form F) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var err error
	switch {
	case c.selected != nil && c.desc.ID(*c.selected) != 0:
		if c.desc.Update == nil {
			return ErrUnsupportedOp
		}
		err = c.desc.Update(ctx, c.desc.ID(*c.selected), form)
	default:
		if c.desc.Create == nil {
			return ErrUnsupportedOp
		}
		err = c.desc.Create(ctx, form)
	}
	if err != nil {
		c.notify.Error("Failed to save " + c.desc.Name)
		return err
	}
	c.selected = nil
	c.modalMode = ModalClosed
	c.notify.Success(title(c.desc.Name) + " saved")
	_ = c.load(ctx)
	return nil
}

// SaveByID is Save for callers that address the entity directly instead of
// through an open modal (the HTTP layer).
func (c *Controller[T, F]) SaveByID(ctx context.Context, id int64, form F) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var err error
	if id != 0 {
		if c.desc.Update == nil {
			return ErrUnsupportedOp
		}
		err = c.desc.Update(ctx, id, form)
	} else {
		if c.desc.Create == nil {
			return ErrUnsupportedOp
		}
		err = c.desc.Create(ctx, form)
	}
	if err != nil {
		c.notify.Error("Failed to save " + c.desc.Name)
		return err
	}
	c.notify.Success(title(c.desc.Name) + " saved")
	_ = c.load(ctx)
	return nil
}

// RequestDelete opens the blocking confirmation naming the target. Only one
// confirmation may be open at a time.
func (c *Controller[T, F]) RequestDelete(ctx context.Context, id int64) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.deleteTarget != nil {
		return "", ErrDeleteInFlight
	}
	item, err := c.resolve(ctx, id)
	if err != nil {
		return "", err
	}
	c.deleteTarget = item
	return c.desc.Label(*item), nil
}

// CancelDelete closes the confirmation without touching the list.
func (c *Controller[T, F]) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleteTarget = nil
}

// ConfirmDelete fires the delete for the confirmed target. Success removes
// the row optimistically and re-fetches; failure leaves the list and the open
// confirmation unchanged.
func (c *Controller[T, F]) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.deleteTarget == nil {
		return ErrNoDeleteTarget
	}
	id := c.desc.ID(*c.deleteTarget)
	if err := c.desc.Delete(ctx, id); err != nil {
		c.notify.Error("Failed to delete " + c.desc.Name)
		return err
	}
	kept := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if c.desc.ID(item) != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.deleteTarget = nil
	c.notify.Success(title(c.desc.Name) + " deleted")
	_ = c.load(ctx)
	return nil
}

// DeleteTarget reports the entity named by an open confirmation, if any.
func (c *Controller[T, F]) DeleteTarget() *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deleteTarget
}

func title(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

package easel

type changeObserver[T any] struct {
	id uint32
	fn func(current, previous T)
}

// changeRegistry holds OnChange callbacks for one collection.
type changeRegistry[T any] struct {
	observers []changeObserver[T]
	nextID    uint32
}

// ChangeHandle allows removing a callback registered with OnChange.
type ChangeHandle struct {
	id     uint32
	remove func(id uint32)
}

// Remove unregisters the callback so it no longer fires. Removing twice is a
// no-op.
func (h ChangeHandle) Remove() {
	if h.remove == nil {
		return
	}
	h.remove(h.id)
}

func (r *changeRegistry[T]) add(fn func(current, previous T)) ChangeHandle {
	if fn == nil {
		return ChangeHandle{}
	}
	r.nextID++
	id := r.nextID
	r.observers = append(r.observers, changeObserver[T]{id: id, fn: fn})
	return ChangeHandle{id: id, remove: r.removeID}
}

func (r *changeRegistry[T]) removeID(id uint32) {
	for i := range r.observers {
		if r.observers[i].id == id {
			copy(r.observers[i:], r.observers[i+1:])
			r.observers[len(r.observers)-1] = changeObserver[T]{}
			r.observers = r.observers[:len(r.observers)-1]
			return
		}
	}
}

// emit calls every observer in registration order. The list is snapshotted so
// observers registered during emission first fire on the next change.
func (r *changeRegistry[T]) emit(current, previous T) {
	if len(r.observers) == 0 {
		return
	}
	snapshot := make([]changeObserver[T], len(r.observers))
	copy(snapshot, r.observers)
	for _, o := range snapshot {
		o.fn(current, previous)
	}
}

func (r *changeRegistry[T]) count() int {
	return len(r.observers)
}

package easel

import "testing"

func TestChangeRegistryEmit(t *testing.T) {
	var r changeRegistry[int]
	var got [][2]int
	r.add(func(cur, prev int) { got = append(got, [2]int{cur, prev}) })
	r.add(func(cur, prev int) { got = append(got, [2]int{cur * 10, prev * 10}) })

	r.emit(2, 1)
	if len(got) != 2 || got[0] != [2]int{2, 1} || got[1] != [2]int{20, 10} {
		t.Errorf("got = %v, want [[2 1] [20 10]]", got)
	}
}

func TestChangeHandleRemove(t *testing.T) {
	var r changeRegistry[int]
	calls := 0
	h := r.add(func(int, int) { calls++ })
	h.Remove()
	h.Remove()
	r.emit(1, 0)
	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
	if r.count() != 0 {
		t.Errorf("count = %d, want 0", r.count())
	}
}

func TestChangeRegistryNilFunc(t *testing.T) {
	var r changeRegistry[int]
	h := r.add(nil)
	h.Remove()
	if r.count() != 0 {
		t.Errorf("count = %d, want 0", r.count())
	}
}

func TestChangeRegistryAddDuringEmit(t *testing.T) {
	var r changeRegistry[int]
	late := 0
	r.add(func(int, int) {
		r.add(func(int, int) { late++ })
	})
	r.emit(1, 0)
	if late != 0 {
		t.Errorf("late = %d, want 0", late)
	}
	r.emit(2, 1)
	if late != 1 {
		t.Errorf("late = %d, want 1", late)
	}
}

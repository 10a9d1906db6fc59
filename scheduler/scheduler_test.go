package scheduler

import (
	"reflect"
	"testing"
)

func TestDrainOrder(t *testing.T) {
	q := New()
	var ran []int
	for i := 1; i <= 3; i++ {
		i := i
		q.Submit(func() { ran = append(ran, i) })
	}

	if q.Len() != 3 {
		t.Fatalf("expected 3 queued tasks, got %d", q.Len())
	}

	q.Drain()

	if !reflect.DeepEqual(ran, []int{1, 2, 3}) {
		t.Errorf("expected FIFO order, got %v", ran)
	}
	if q.Len() != 0 {
		t.Errorf("expected empty queue after drain, got %d", q.Len())
	}
}

func TestDrainRunsTasksSubmittedWhileDraining(t *testing.T) {
	q := New()
	var ran []string
	q.Submit(func() {
		ran = append(ran, "first")
		q.Submit(func() { ran = append(ran, "chained") })
	})

	q.Drain()

	if !reflect.DeepEqual(ran, []string{"first", "chained"}) {
		t.Errorf("expected chained task to run in the same drain, got %v", ran)
	}
}

func TestSubmitNil(t *testing.T) {
	q := New()
	q.Submit(nil)
	if q.Len() != 0 {
		t.Errorf("expected nil tasks to be ignored, got %d queued", q.Len())
	}
	q.Drain() // must not panic
}

func TestDrainEmpty(t *testing.T) {
	New().Drain() // must not panic
}

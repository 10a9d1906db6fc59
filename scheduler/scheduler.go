package scheduler

import "sync"

// Queue collects deferred continuations and runs them when drained. Tasks are
// executed in submission order; tasks submitted while draining run in the same
// drain pass.
type Queue struct {
	mu    sync.Mutex
	tasks []func()
}

// New creates an empty Queue.
func New() *Queue {
	return &Queue{}
}

// Submit appends a task to the queue. The task does not run until Drain.
func (q *Queue) Submit(task func()) {
	if task == nil {
		return
	}
	q.mu.Lock()
	q.tasks = append(q.tasks, task)
	q.mu.Unlock()
}

// Drain runs queued tasks in FIFO order until the queue is empty. Tasks run
// on the caller's goroutine without the lock held, so a task may Submit more
// work and it will run before Drain returns.
func (q *Queue) Drain() {
	for {
		q.mu.Lock()
		if len(q.tasks) == 0 {
			q.mu.Unlock()
			return
		}
		task := q.tasks[0]
		q.tasks = q.tasks[1:]
		q.mu.Unlock()

		task()
	}
}

// Len reports the number of tasks waiting to run.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

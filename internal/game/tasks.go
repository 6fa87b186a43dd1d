package game

// Scheduled tasks replace self-rescheduling timer recursion: the spawn loop
// and the game-over notification are queue entries keyed to a due tick, so
// reset can cancel outstanding work deterministically instead of racing a
// stale timer from a previous session.

// TaskHandle identifies a scheduled task for cancellation.
type TaskHandle int

type task struct {
	id  TaskHandle
	due uint64 // Tick at which the task fires
	fn  func()
}

// taskQueue is a tick-driven timer queue. Entity counts are tiny, so a flat
// slice beats any heap here.
type taskQueue struct {
	nextID TaskHandle
	tasks  []task
}

// msToTicks converts a millisecond delay to simulation ticks, rounding up so
// a nonzero delay never fires on the same tick.
func msToTicks(ms int) uint64 {
	t := (ms*TickRate + 999) / 1000
	if t < 1 {
		t = 1
	}
	return uint64(t)
}

// schedule enqueues fn to run delayMs after the given tick.
func (q *taskQueue) schedule(delayMs int, now uint64, fn func()) TaskHandle {
	q.nextID++
	q.tasks = append(q.tasks, task{
		id:  q.nextID,
		due: now + msToTicks(delayMs),
		fn:  fn,
	})
	return q.nextID
}

// cancel removes a task by handle. Unknown handles are a no-op.
func (q *taskQueue) cancel(h TaskHandle) {
	for i, t := range q.tasks {
		if t.id == h {
			q.tasks = append(q.tasks[:i], q.tasks[i+1:]...)
			return
		}
	}
}

// cancelAll drops every pending task.
func (q *taskQueue) cancelAll() {
	q.tasks = q.tasks[:0]
}

// pending returns the number of queued tasks.
func (q *taskQueue) pending() int {
	return len(q.tasks)
}

// runDue removes and runs every task due at or before now. Tasks are removed
// before running so a task can reschedule itself (the spawn loop does).
func (q *taskQueue) runDue(now uint64) {
	var due []func()
	kept := q.tasks[:0]
	for _, t := range q.tasks {
		if t.due <= now {
			due = append(due, t.fn)
		} else {
			kept = append(kept, t)
		}
	}
	q.tasks = kept
	for _, fn := range due {
		fn()
	}
}

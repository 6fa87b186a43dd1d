package game

import "testing"

func TestMsToTicks(t *testing.T) {
	cases := []struct {
		ms   int
		want uint64
	}{
		{0, 1},    // Never fires on the same tick
		{1, 1},    // Rounds up
		{16, 1},   // One frame at 60 fps is ~16.7ms
		{17, 2},   // Rounds up past one frame
		{1000, 60},
		{300, 18},
		{600, 36},
	}
	for _, tc := range cases {
		if got := msToTicks(tc.ms); got != tc.want {
			t.Fatalf("msToTicks(%d) = %d, want %d", tc.ms, got, tc.want)
		}
	}
}

func TestTaskQueueScheduleAndRun(t *testing.T) {
	var q taskQueue
	ran := 0
	q.schedule(1000, 0, func() { ran++ })

	q.runDue(59)
	if ran != 0 {
		t.Fatalf("task ran early at tick 59")
	}
	q.runDue(60)
	if ran != 1 {
		t.Fatalf("task did not run at due tick, ran = %d", ran)
	}
	if q.pending() != 0 {
		t.Fatalf("pending after run = %d, want 0", q.pending())
	}
	// Running again does nothing.
	q.runDue(61)
	if ran != 1 {
		t.Fatalf("task ran twice")
	}
}

func TestTaskQueueCancel(t *testing.T) {
	var q taskQueue
	ran := false
	h := q.schedule(100, 0, func() { ran = true })
	q.cancel(h)
	q.runDue(1000)
	if ran {
		t.Fatalf("canceled task ran")
	}
	// Unknown handle is a no-op.
	q.cancel(h)
	q.cancel(TaskHandle(999))
}

func TestTaskQueueCancelAll(t *testing.T) {
	var q taskQueue
	for i := 0; i < 5; i++ {
		q.schedule(100, 0, func() {})
	}
	if q.pending() != 5 {
		t.Fatalf("pending = %d, want 5", q.pending())
	}
	q.cancelAll()
	if q.pending() != 0 {
		t.Fatalf("pending after cancelAll = %d, want 0", q.pending())
	}
}

func TestTaskCanRescheduleItself(t *testing.T) {
	var q taskQueue
	runs := 0
	var tick uint64
	var loop func()
	loop = func() {
		runs++
		q.schedule(100, tick, loop)
	}
	q.schedule(100, 0, loop)

	step := msToTicks(100)
	for tick = 1; tick <= step*3; tick++ {
		q.runDue(tick)
	}
	if runs != 3 {
		t.Fatalf("self-rescheduling task ran %d times, want 3", runs)
	}
	if q.pending() != 1 {
		t.Fatalf("pending after loop = %d, want 1", q.pending())
	}
}

func TestTasksOrderIndependentOfCancellation(t *testing.T) {
	var q taskQueue
	var got []int
	h1 := q.schedule(100, 0, func() { got = append(got, 1) })
	q.schedule(100, 0, func() { got = append(got, 2) })
	q.schedule(200, 0, func() { got = append(got, 3) })
	q.cancel(h1)

	q.runDue(msToTicks(100))
	q.runDue(msToTicks(200))
	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Fatalf("run order = %v, want [2 3]", got)
	}
}

package field

// FrameQueue is a Scheduler holding at most one pending callback. Hosts
// call Run once per rendered frame; a new request replaces any pending one.
type FrameQueue struct {
	next    FrameID
	pending FrameID
	fn      func()
}

func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.next++
	q.pending = q.next
	q.fn = fn
	return q.pending
}

// CancelFrame drops the pending callback if id still refers to it.
func (q *FrameQueue) CancelFrame(id FrameID) {
	if id != 0 && id == q.pending {
		q.pending = 0
		q.fn = nil
	}
}

// Pending reports whether a callback is waiting for the next frame.
func (q *FrameQueue) Pending() bool { return q.fn != nil }

// Run invokes the pending callback, if any. Callbacks requested while it
// runs wait for the next call.
func (q *FrameQueue) Run() bool {
	fn := q.fn
	if fn == nil {
		return false
	}
	q.fn = nil
	q.pending = 0
	fn()
	return true
}

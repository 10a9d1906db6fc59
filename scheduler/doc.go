/*
Package scheduler provides the deferred-work queue that makes settlement
visible to continuations.

When a pending fetch is settled, callbacks registered on its handle are not
invoked inline; they are submitted to a Queue and run only when the queue is
drained. The registry drains its queue synchronously after every settlement,
so from a test's point of view continuations have run by the time a resolve
or reject call returns. Code holding a Queue directly can also call Drain
itself to flush work at a chosen point.
*/
package scheduler

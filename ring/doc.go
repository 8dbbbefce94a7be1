// Package ring provides generic fixed-capacity circular buffers with strict
// oldest-first overwrite, always-on statistics, and optional Prometheus
// metrics integration.
//
// # Overview
//
// A ring buffer retains the most recent N inserted elements and reports the
// true lifetime insertion count even after wrapping. Inserts never block,
// never fail, and never allocate; when the buffer is full the oldest element
// is silently overwritten. The intended use is low-overhead diagnostic
// retention - recent log lines, last-seen events - where unbounded growth is
// unacceptable.
//
// # Quick Start
//
// Basic buffer creation:
//
//	buf, err := ring.New[string](1000)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	buf.Insert("log line")
//
//	recent := buf.Snapshot()       // oldest first
//	last50, err := buf.Tail(50)    // just the newest 50
//
// With prefill, metrics and an overwrite observer:
//
//	buf, err := ring.NewConcurrent[Event](500,
//		ring.WithInitial[Event](backlog...),
//		ring.WithMetrics[Event](registry, "recent_events"),
//		ring.WithOverwriteCallback[Event](func(e Event) {
//			evicted.Inc()
//		}),
//	)
//
// # The Indexing Algorithm
//
// All state derives from one monotonic uint64 counter and the fixed capacity:
//
//	write offset  = count % capacity
//	logical size  = min(count, capacity)
//	oldest offset = count % capacity   (only meaningful once count > capacity)
//
// Before the counter passes the capacity the backing array has only ever been
// written left to right, so ordered reads are a plain prefix copy and must
// not apply wrap arithmetic (the tail of the array is still zero-value
// garbage). Once count exceeds capacity, every slot is live and the ordered
// view is store[offset:capacity) followed by store[0:offset). The counter is
// 64-bit; behavior after 2^64 insertions is undefined and out of scope.
//
// # Choosing a Flavor
//
// New returns a single-threaded buffer with zero locking overhead; concurrent
// unsynchronized use of it is a data race. NewConcurrent wraps the same core
// in one mutex covering every operation, reads included, which makes all
// operations linearizable: for any two calls from different goroutines, one's
// effects are fully visible before the other's critical section begins.
//
// Snapshots, tails and cursors are point-in-time copies in both flavors.
// A cursor obtained from a concurrent buffer is safe to traverse without the
// lock, because the copy was materialized inside the critical section.
//
// # Observability
//
// Statistics (always on) track inserts, overwrites, snapshots, clears and
// size high-water marks using atomic counters, and derive throughput and
// overwrite rate. Prometheus metrics (optional, via WithMetrics) export the
// same activity as circular_ring_* series labeled with the component prefix.
// Both trackers are updated independently so that statistics keep working in
// deployments without Prometheus.
//
// # What This Package Is Not
//
// The buffer is not a queue: nothing is ever consumed, and there is no
// blocking, backpressure or eviction policy other than strict oldest-first
// overwrite. Arbitrary removal and retention are rejected at the collection
// boundary (see the collection package). There is no resizing and no
// persistence.
package ring

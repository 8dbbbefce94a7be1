// Package circular provides fixed-capacity, overwrite-on-full circular buffers
// for low-overhead diagnostic retention.
//
// # Philosophy
//
// A circular buffer retains only the most recent N elements. When full, a new
// insert silently overwrites the oldest element; the buffer never grows, never
// blocks, and never allocates on the hot path. A 64-bit lifetime counter keeps
// reporting the true number of insertions regardless of how many times the
// buffer has wrapped.
//
// The array-backed design is intentional: compared to a linked list it keeps
// the memory and GC footprint minimal (the shortest possible distance to GC
// roots), which matters when the buffer holds not-critical diagnostics such
// as recent log lines inside a long-running process.
//
// # Layout
//
//	ring/        core buffer, concurrent veneer, cursors, stats, metrics
//	collection/  generic collection contract and boundary adapter
//	errors/      classified error framework shared by all packages
//	metric/      Prometheus metrics registry and exposition server
//
// The core types live in the ring package:
//
//	buf, err := ring.New[string](1000)
//	if err != nil {
//		log.Fatal(err)
//	}
//	buf.Insert("line")
//	recent, _ := buf.Tail(50)
//
// For shared buffers use ring.NewConcurrent, which serializes every operation
// through a single mutex. Generic callers that expect a collection-shaped
// surface wrap either flavor with collection.Wrap.
package circular

package types

// This file defines how the cache reports what it is doing.

/*
Metrics describes the events the cache can report.

Each method is one lifecycle event, invoked at the moment the event
happens. Hit counts reads served from memory; Miss and StaleHit count
actual disk fills, so goroutines that share one in-flight fill produce a
single event between them.
*/
type Metrics interface {

	// Hit is called when a cached entry is still fresh and is served
	// without touching the disk.
	Hit()

	// Miss is called when a path absent from the cache is filled from
	// disk.
	Miss()

	// StaleHit is called when a cached path changed on disk since it
	// was read and is refilled.
	StaleHit()

	// Eviction is called when an entry is removed because the cache is
	// full and needs space.
	Eviction()
}

/*
NoopMetrics is the default Metrics implementation: it discards every
event.

It exists so the rest of the code never guards metric calls with nil
checks. Callers that do not care about measurement get a working cache
without wiring anything; callers that do supply their own implementation.
*/
type NoopMetrics struct{}

// Every event is intentionally ignored.

func (NoopMetrics) Hit()      {}
func (NoopMetrics) Miss()     {}
func (NoopMetrics) StaleHit() {}
func (NoopMetrics) Eviction() {}

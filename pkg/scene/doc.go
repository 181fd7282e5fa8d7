// Package scene defines the shape descriptor model and the engine contract
// for FlowBoard canvases.
//
// A [Shape] is a tagged variant over text blocks, geo cards, connectors,
// and container frames, discriminated by its Kind field. Descriptors are
// built in memory through the constructors (which assign fresh unique IDs
// and initialize metadata maps) and handed to an [Engine] for batched
// insertion; after commit they are owned by the engine.
//
// The [Engine] interface is the only coupling to the external scene-graph
// engine: snapshot reads, handle resolution, and atomic batch inserts.
// [MemoryEngine] is the in-process reference implementation used by tests
// and the CLI's file-based board workflow.
package scene

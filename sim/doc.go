// Package sim provides the discrete-time simulation stepper for the barista
// pipeline: a coffee counter whose throughput is bounded by compute
// (baristas), shared bandwidth (the pantry), batching and quality.
//
// # Reading Guide
//
// Start with these files to understand the stepper:
//   - state.go: State, Reset and station resizing
//   - stepper.go: Step, the per-tick control flow
//   - scheduler.go: the Idle / Stalled / Busy station state machine
//
// Then the components it calls, in tick order:
//   - arrival.go: rate accumulator and customer archetypes
//   - motion.go: queue slots, walking along the line path, abandonment
//   - contention.go: stall base rate, contention multiplier, stall duration
//   - batch.go: quality slowdown and batch efficiency
//   - metrics.go, bottleneck.go: P95 wait and the bottleneck classifier
//   - event.go: the closed event enum drained by audio and effects
//
// # Collaborators
//
// Sub-packages supply everything outside the stepper:
//   - sim/levels: built-in level tables and YAML level files
//   - sim/layout: zones and the serpentine line path for a viewport
//   - sim/game: session control (frame clamp, speed, win/lose, stars)
//   - sim/trace: timeline sampling and summaries
//   - sim/audio: synthesized tones for events
//   - sim/render: terminal renderer
//
// # Time
//
// All timestamps are simulated seconds (State.Now). Randomness comes from a
// PartitionedRNG so a seed reproduces a run exactly.
package sim

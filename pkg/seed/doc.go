// Package seed populates a fresh FlowBoard canvas with its onboarding
// layout: instructional text blocks plus a three-step card timeline wired
// together with arrows.
//
// The subsystem has three cooperating parts:
//
//   - the idempotency guard ([AlreadySeeded]) scans existing shapes for
//     the seed marker so at most one pass ever succeeds per board,
//   - the layout generator ([Plan]) is a pure function from a seed origin
//     to an ordered descriptor batch,
//   - the committer ([Seeder.Run]) hands the batch to the scene engine as
//     a single atomic insert.
//
// Missing or mistyped reference frames and already-seeded boards are
// silent no-ops, not errors; only engine failures surface to the caller.
package seed

// Package planner implements the planned-change recurrence engine behind
// the `pcp` command-line tool: the logic that keeps an in-progress draft of
// a (possibly recurring) financial change self-consistent while it is being
// edited, and compiles it on submit or preview into the canonical record
// the remote portfolio service expects.
//
// The core functionalities include:
//   - Draft Editing: a tagged union of field-edit events applied as pure
//     transitions, clearing dependent sub-fields so the draft can never
//     carry stale anchors (e.g. a day-of-month after switching to weekly).
//   - Allocation Tracking: the per-asset percentage list of a reallocation,
//     edited as raw text with a running decimal sum.
//   - Finalization: a deterministic validate-and-normalize step producing
//     either the canonical payload or a single machine-readable validation
//     failure; preview and submit share it, so they can never disagree.
//   - Canonical Encoding: a byte-stable JSON shape with explicit nulls for
//     every non-applicable field, which is a fixed contract with the API.
//   - Transport: a thin REST client that lists portfolio assets and
//     creates or updates planned changes.
//
// The engine is synchronous and holds no shared state: every call is a pure
// function of its inputs, so concurrent preview and submit never interfere.
package planner

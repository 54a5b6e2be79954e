// Package pagesim simulates page replacement policies.
//
// Given a number of physical frames and a reference sequence of page
// identifiers, a simulation reports the number of page faults a policy
// incurs and the cumulative fault count after every reference (the trace).
//
// The following is a summary of the model (intended for maintainers).
//
// Glossary and invariants:
//
//   - Page
//
//     An opaque comparable identifier. Equality is the only
//     operation replacement decisions use.
//
//   - Frame
//
//     One slot of the bounded working set, holding one resident page.
//     A frame set never holds more pages than its capacity,
//     and never holds the same page twice.
//
//   - Fault
//
//     A reference to a page that is not resident.
//     The page is faulted in, evicting a resident page if no frame is free.
//
//   - Trace
//
//     One entry per reference: the fault count immediately after it.
//     Non-decreasing; its last entry equals the total fault count.
//
// Policies:
//
//   - [FIFO]
//
//     Evicts the page that was faulted in first.
//     Hits do not reorder residents.
//
//   - [LRU]
//
//     Evicts the page referenced least recently.
//     Every reference moves its page to the most recently used end.
//
//   - [Optimal]
//
//     Belady's algorithm. Evicts the resident whose next reference lies
//     furthest in the remaining sequence (pages that never recur first).
//     Ties go to the resident that was faulted in earliest among
//     those still resident, making results deterministic.
//     No online policy incurs fewer faults on the same input.
//
//   - [Clock]
//
//     Second chance. Frames form a circle with a hand and a reference bit
//     per frame. Hits set the bit. On a fault with every frame occupied the hand
//     sweeps forward, clearing set bits, and replaces the first frame
//     whose bit was already clear. The hand then rests past that frame.
//     A sweep ends within two revolutions.
//
// Entry points:
//
//   - [Run] and [RunMany] simulate whole sequences.
//   - [Stepper] advances a single policy one reference at a time;
//     folding [Stepper.Advance] over a sequence equals [Run].
//
// Frame set contract violations (inserting into a full frame set,
// evicting a page that is not resident) indicate a policy bug and panic
// with [ErrCapacity] or [ErrNotResident]. Building with the
// `pagesim_debug` tag enables further internal assertions.
package pagesim

/*
Package views provides lazy sequence combinators built on an explicit position algebra.

A view derives a new logical sequence from one or more underlying sequences without
materializing anything. It owns no traversal state: all state lives in the position
values (cursors) it hands out, so a view can be traversed any number of times and
traversals never interfere with each other.

  - **Cartesian product**: [Product] and [Product2] enumerate every combination in
    odometer order, the last dimension varying fastest.
  - **Zip**: [Zip] and [Zip2] advance all inputs in lock-step and stop at the shortest.
  - **Cycle**: [Cycle] repeats a finite sequence forever, counting completed laps.
  - **Zigzag**: [Zigzag] walks the grid of two (possibly infinite) sequences one
    anti-diagonal at a time, so every pair is reached after finitely many steps.

# The capability contract

Every input and every view implements [Sequence]. Views that can move backwards also
implement [Bidirectional], and those whose last position is reachable directly implement
[Reversible]. Because views satisfy the same contract as their inputs they compose freely:

	grid := views.Product(views.Slice(xs), views.Slice(ys))
	loop := views.Cycle(grid)
	first := views.CollectN(loop, 10)

A view always carries the Prev, Last and Len methods even when its inputs cannot support
them; use [IsBidirectional], [IsReversible] and [LenOf] to ask before calling.

# Iteration

[All], [Positions] and [Backward] bridge any sequence to Go's range-over-func iterators.
Unbounded views ([Cycle], [Zigzag] over [Iota]) never terminate on their own, so bound
them with [CollectN] or seqs.Take.

# Contract violations

Advancing past the terminal marker, retreating before the first position or dereferencing
a terminal position is a programming error. Views panic with a [*ContractError] wrapping
one of the package's sentinel errors; termination itself is never an error.
*/
package views

/*
Package seqs provides small helpers for Go 1.23+ iterators (iter.Seq).

They are the glue between the position-based views in package views and ordinary
range-over-func code:

  - **Bounding**: [Take], [Skip], [TakeWhile], [DropWhile]. Take is the standard way
    to consume an unbounded sequence such as a cycle.
  - **Sinks**: [First], [Count], [Any], [All].
  - **Shaping**: [Enumerate], [Pair].

All helpers are lazy and stop pulling from their source as soon as the consumer stops.
*/
package seqs

// Package partition implements the event-driven greedy merger of §4.E: it
// agglomerates same-category points into increasingly coarse patterns,
// producing a time-indexed PartitionHistory.
//
// The driving data structure is a priority queue of MergeEvents ordered by
// time (container/heap, in the style of katalvlaran-lvlath/dijkstra's
// frontier queue); each popped event is either promoted from unfinalized to
// finalized (picking up an intersection-delay) or committed to the current
// partition, subject to staleness, intersection, and admissibility checks.
package partition

package partition

import "github.com/tue-alga/cartocrow-sub002/pattern"

// mergeEvent is §4.E's MergeEvent tuple: (time, first-pattern,
// second-pattern, result-pattern, finalized-flag).
type mergeEvent struct {
	time      float64
	p1, p2    pattern.Pattern
	result    pattern.Pattern
	finalized bool
}

// eventQueue is a min-heap of *mergeEvent ordered by time, using the same
// lazy-requeue idiom as katalvlaran-lvlath/dijkstra's nodePQ: an unfinalized
// event is popped, given its intersection-delay, and pushed back rather than
// having its key decreased in place.
type eventQueue []*mergeEvent

func (q eventQueue) Len() int           { return len(q) }
func (q eventQueue) Less(i, j int) bool { return q[i].time < q[j].time }
func (q eventQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x any) { *q = append(*q, x.(*mergeEvent)) }

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

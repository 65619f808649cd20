package patternroute

// queueItem orders a node of the arena in the frontier. Seq is the push
// order and breaks ties between equal FCost, so equal-cost nodes leave the
// frontier first-in first-out.
type queueItem struct {
	Node         int
	FCost        float64
	Seq          uint64
	IndexInQueue int
}

type priorityQueue []*queueItem

func (queue priorityQueue) Len() int { return len(queue) }
func (queue priorityQueue) Less(i, j int) bool {
	if queue[i].FCost != queue[j].FCost {
		return queue[i].FCost < queue[j].FCost
	}
	return queue[i].Seq < queue[j].Seq
}
func (queue priorityQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *priorityQueue) Push(x any) {
	item := x.(*queueItem)
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *priorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}

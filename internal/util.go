package internal

// ReconstructPath walks parent links back from current until a node whose
// parent is negative, and returns the chain root first.
func ReconstructPath(parentOf func(int) int, current int) []int {
	path := []int{current}
	for {
		previousNode := parentOf(current)
		if previousNode < 0 {
			break
		}
		path = append(path, previousNode)
		current = previousNode
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

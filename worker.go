package patternroute

import "context"

// routeTask represents a request from the orchestrator to the workers.
type routeTask struct {
	Index      int
	Connection Connection
}

// routeResult is the worker's answer for one task
type routeResult struct {
	Index  int
	Result Result
}

// runPool fans connections out to numberOfWorkers goroutines and gathers
// their results back in connection order. Every connection owns its own
// search, so workers share nothing but the read-only obstacle set captured
// by solve.
func runPool(
	contextObject context.Context,
	connections []Connection,
	numberOfWorkers int,
	solve func(context.Context, routeTask) Result,
) ([]Result, error) {
	results := make([]Result, len(connections))
	if len(connections) == 0 {
		return results, contextObject.Err()
	}
	if numberOfWorkers < 1 {
		numberOfWorkers = 1
	}
	if numberOfWorkers > len(connections) {
		numberOfWorkers = len(connections)
	}

	ctx, cancel := context.WithCancel(contextObject)
	defer cancel()

	// Channels for communication
	routeTaskChannel := make(chan routeTask)
	routeResultChannel := make(chan routeResult)

	// --- Start worker pool ---
	for i := 0; i < numberOfWorkers; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case task, ok := <-routeTaskChannel:
					if !ok {
						return
					}
					result := routeResult{Index: task.Index, Result: solve(ctx, task)}
					select {
					case routeResultChannel <- result:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	go func() {
		defer close(routeTaskChannel)
		for i, conn := range connections {
			select {
			case routeTaskChannel <- routeTask{Index: i, Connection: conn}:
			case <-ctx.Done():
				return
			}
		}
	}()

	// --- Orchestrator loop ---
	for received := 0; received < len(connections); received++ {
		select {
		case <-ctx.Done():
			return nil, contextObject.Err()
		case result := <-routeResultChannel:
			results[result.Index] = result.Result
		}
	}
	if err := contextObject.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

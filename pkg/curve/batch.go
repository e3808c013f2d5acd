// Package curve - batch helpers for running many independent curve
// operations across a worker pool.
package curve

import "sync"

// BatchResult reports the outcome of a batch operation. For
// BatchScalarMult, Points holds the per-index products; indices whose
// operation failed are listed in FailedIndices and left as the zero Point.
type BatchResult struct {
	Points        []Point
	OK            bool
	FailedIndices []int
	TotalChecked  int
}

// BatchScalarMult computes scalars[i]·points[i] for every index across a
// pool of workers. Each multiplication is a pure function of its inputs,
// so the batch parallelizes without locking; workers write to disjoint
// result slots.
func (c *Params) BatchScalarMult(scalars []int64, points []Point, workers int) *BatchResult {
	if len(scalars) != len(points) {
		return &BatchResult{
			OK:            false,
			FailedIndices: []int{},
		}
	}

	if workers <= 0 {
		workers = 4
	}

	total := len(points)
	result := &BatchResult{
		Points:        make([]Point, total),
		OK:            true,
		FailedIndices: []int{},
		TotalChecked:  total,
	}

	type multTask struct {
		index  int
		scalar int64
		point  Point
	}

	tasks := make(chan multTask, total)
	failures := make(chan int, total)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range tasks {
				np, err := c.ScalarMult(task.scalar, task.point)
				if err != nil {
					failures <- task.index
					continue
				}
				result.Points[task.index] = np
			}
		}()
	}

	for i := 0; i < total; i++ {
		tasks <- multTask{index: i, scalar: scalars[i], point: points[i]}
	}
	close(tasks)

	wg.Wait()
	close(failures)

	for idx := range failures {
		result.OK = false
		result.FailedIndices = append(result.FailedIndices, idx)
	}

	return result
}

// BatchOnCurve checks curve membership for every point in parallel.
// Indices of points that fail the curve equation are collected in
// FailedIndices.
func (c *Params) BatchOnCurve(points []Point, workers int) *BatchResult {
	if workers <= 0 {
		workers = 4
	}

	total := len(points)
	result := &BatchResult{
		OK:            true,
		FailedIndices: []int{},
		TotalChecked:  total,
	}

	type checkTask struct {
		index int
		point Point
	}

	tasks := make(chan checkTask, total)
	failures := make(chan int, total)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range tasks {
				if !c.IsOnCurve(task.point) {
					failures <- task.index
				}
			}
		}()
	}

	for i := 0; i < total; i++ {
		tasks <- checkTask{index: i, point: points[i]}
	}
	close(tasks)

	wg.Wait()
	close(failures)

	for idx := range failures {
		result.OK = false
		result.FailedIndices = append(result.FailedIndices, idx)
	}

	return result
}

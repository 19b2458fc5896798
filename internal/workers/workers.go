package workers

import "context"

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run runs the workers one after another.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		if ctx.Err() != nil {
			return
		}
		worker.Run(ctx)
	}
}

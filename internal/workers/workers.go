package workers

// Workers runs a set of background workers together.
type Workers struct {
	workers []Worker
}

// NewWorkers groups ws so they can be started with one call.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every worker in registration order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

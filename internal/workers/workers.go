package workers

type Workers struct {
	workers []Worker
}

// NewWorkers собирает воркеры в единый агрегат.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

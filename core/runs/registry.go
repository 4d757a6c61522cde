package runs

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status of a sync run.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Run is a snapshot of one sync run.
type Run struct {
	ID         string     `json:"id"`
	Kind       string     `json:"kind"`
	Account    string     `json:"account"`
	Status     Status     `json:"status"`
	Done       int        `json:"done"`
	Total      int        `json:"total"`
	Errors     []string   `json:"errors"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// Registry holds run state, newest first.
type Registry struct {
	mu    sync.RWMutex
	runs  map[string]*Run
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{runs: make(map[string]*Run)}
}

// Begin registers a new running run and returns its ID.
func (r *Registry) Begin(kind, account string, total int) string {
	id := uuid.NewString()
	r.mu.Lock()
	r.runs[id] = &Run{
		ID:        id,
		Kind:      kind,
		Account:   account,
		Status:    StatusRunning,
		Total:     total,
		Errors:    []string{},
		StartedAt: time.Now(),
	}
	r.order = append([]string{id}, r.order...)
	r.mu.Unlock()
	return id
}

// Progress updates the completion counters of a run.
func (r *Registry) Progress(id string, done, total int) {
	r.mu.Lock()
	if run, ok := r.runs[id]; ok {
		run.Done = done
		run.Total = total
	}
	r.mu.Unlock()
}

// Finish marks a run completed or failed and records its item errors.
func (r *Registry) Finish(id string, itemErrors []string, hardErr error) {
	now := time.Now()
	r.mu.Lock()
	if run, ok := r.runs[id]; ok {
		run.Errors = append(run.Errors, itemErrors...)
		run.FinishedAt = &now
		if hardErr != nil {
			run.Status = StatusFailed
			run.Errors = append(run.Errors, hardErr.Error())
		} else {
			run.Status = StatusCompleted
		}
	}
	r.mu.Unlock()
}

// Get returns a copy of the run with the given ID.
func (r *Registry) Get(id string) (Run, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	run, ok := r.runs[id]
	if !ok {
		return Run{}, false
	}
	return snapshot(run), true
}

// List returns copies of all runs, newest first.
func (r *Registry) List() []Run {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Run, 0, len(r.order))
	for _, id := range r.order {
		if run, ok := r.runs[id]; ok {
			out = append(out, snapshot(run))
		}
	}
	return out
}

func snapshot(run *Run) Run {
	copied := *run
	copied.Errors = append([]string(nil), run.Errors...)
	if run.FinishedAt != nil {
		finished := *run.FinishedAt
		copied.FinishedAt = &finished
	}
	return copied
}

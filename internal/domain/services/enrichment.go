// Package services contains domain business logic.
package services

import (
	"context"
	"sync/atomic"

	"github.com/ersonp/nearby/internal/domain/entities"
	"github.com/ersonp/nearby/internal/domain/ports"
)

// AttributeFunc receives one successful enrichment result.
type AttributeFunc func(handle string, attr entities.Attribute)

// EnrichmentService issues one classification lookup per entity and reports
// each success independently of the others.
type EnrichmentService struct {
	classifier ports.Classifier
	logger     ports.Logger
}

// NewEnrichmentService creates a new enrichment service. A nil logger discards diagnostics.
func NewEnrichmentService(classifier ports.Classifier, logger ports.Logger) *EnrichmentService {
	if logger == nil {
		logger = ports.NopLogger{}
	}
	return &EnrichmentService{
		classifier: classifier,
		logger:     logger,
	}
}

// EnrichmentTask is the handle for a single in-flight lookup.
type EnrichmentTask struct {
	Handle string

	done chan struct{}
	attr entities.Attribute
	err  error
}

// Done is closed once the lookup has finished and, on success, the
// AttributeFunc has returned.
func (t *EnrichmentTask) Done() <-chan struct{} {
	return t.done
}

// Result returns the lookup outcome. Only valid after Done is closed.
func (t *EnrichmentTask) Result() (entities.Attribute, error) {
	return t.attr, t.err
}

// EnrichmentBatch tracks the lookups started by one Enrich call.
type EnrichmentBatch struct {
	tasks     []*EnrichmentTask
	completed chan *EnrichmentTask
	done      chan struct{}
	pending   atomic.Int64
}

// Tasks returns the task handles in entity order.
func (b *EnrichmentBatch) Tasks() []*EnrichmentTask {
	return b.tasks
}

// Completed yields each task as it finishes, in completion order, and is
// closed after the last one.
func (b *EnrichmentBatch) Completed() <-chan *EnrichmentTask {
	return b.completed
}

// Done is closed when every task has finished.
func (b *EnrichmentBatch) Done() <-chan struct{} {
	return b.done
}

// Pending returns the number of lookups still in flight.
func (b *EnrichmentBatch) Pending() int {
	return int(b.pending.Load())
}

// Wait blocks until every task has finished or ctx ends.
func (b *EnrichmentBatch) Wait(ctx context.Context) error {
	select {
	case <-b.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Enrich starts one concurrent lookup per entity. onAttribute is called
// exactly once for every successful lookup, in no particular order; failed
// lookups are logged and otherwise ignored. An empty list starts nothing and
// returns an already finished batch.
func (s *EnrichmentService) Enrich(ctx context.Context, list []entities.Entity, onAttribute AttributeFunc) *EnrichmentBatch {
	batch := &EnrichmentBatch{
		tasks:     make([]*EnrichmentTask, 0, len(list)),
		completed: make(chan *EnrichmentTask, len(list)),
		done:      make(chan struct{}),
	}
	if len(list) == 0 {
		close(batch.completed)
		close(batch.done)
		return batch
	}

	batch.pending.Store(int64(len(list)))
	for i := range list {
		batch.tasks = append(batch.tasks, &EnrichmentTask{
			Handle: list[i].Login,
			done:   make(chan struct{}),
		})
	}

	for _, task := range batch.tasks {
		go s.run(ctx, batch, task, onAttribute)
	}

	return batch
}

func (s *EnrichmentService) run(ctx context.Context, batch *EnrichmentBatch, task *EnrichmentTask, onAttribute AttributeFunc) {
	defer batch.finish(task)

	task.attr, task.err = s.classifier.Classify(ctx, task.Handle)
	if task.err != nil {
		s.logger.Printf("enrichment for %q failed: %v", task.Handle, task.err)
		return
	}
	if onAttribute != nil {
		onAttribute(task.Handle, task.attr)
	}
}

func (b *EnrichmentBatch) finish(task *EnrichmentTask) {
	close(task.done)
	b.completed <- task
	if b.pending.Add(-1) == 0 {
		close(b.completed)
		close(b.done)
	}
}

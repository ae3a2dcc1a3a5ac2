package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"traffic-insights/internal/aggregators"
	"traffic-insights/internal/events"
	"traffic-insights/internal/shared/loggers"
	"traffic-insights/internal/shared/metrics"
	"traffic-insights/internal/shared/svcerrors"
	"traffic-insights/internal/shared/ulid"
)

type StudyEventConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type studyEventConsumer struct {
	queue          *PartitionedQueue[events.StudyUpdatedEvent]
	insightService aggregators.InsightService

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewStudyEventConsumer(queue *PartitionedQueue[events.StudyUpdatedEvent], insightService aggregators.InsightService, logger loggers.Logger) StudyEventConsumer {
	return &studyEventConsumer{
		queue:          queue,
		insightService: insightService,
		stopCh:         make(chan struct{}),
		logger:         logger,
	}
}

// Start spawns one worker goroutine per partition. Each partition is a
// single-writer lane for the studies routed to it by the producer.
func (consumer *studyEventConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		partitionIndex := partitionIndex
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop waits for workers to stop (best called during app shutdown).
func (consumer *studyEventConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *studyEventConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.StudyUpdatedEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case event := <-ch:
			consumer.handleEvent(ctx, partitionIndex, event)
		}
	}
}

func (consumer *studyEventConsumer) handleEvent(ctx context.Context, partitionIndex int, event events.StudyUpdatedEvent) {
	// Recover panics so a bad event cannot kill the partition worker.
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricStudyEventConsumedTotal.WithLabelValues(streamStudyUpdates, svcErr.Code).Inc()
		}
	}()

	ctx = consumer.logger.With().
		Str(loggers.FieldPartitionId, fmt.Sprintf("%d", partitionIndex)).
		Str(loggers.FieldStudyID, event.StudyID).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Logger().WithContext(ctx)

	if svcErr := consumer.insightService.Rebuild(ctx, event.StudyID); svcErr != nil {
		metricStudyEventConsumedTotal.WithLabelValues(streamStudyUpdates, svcErr.Code).Inc()
		return
	}
	metricStudyEventConsumedTotal.WithLabelValues(streamStudyUpdates, metrics.ValueNoError).Inc()
}

package streams

import (
	"context"

	"traffic-insights/internal/events"
)

// StudyEventProducer publishes StudyUpdatedEvents to the partitioned queue.
//
// The partition key is the study ID, so all updates for a study land in the
// same partition. The consumer runs a single worker per partition, which
// gives a single-writer guarantee per study: insight rebuilds for one study
// are serialized while different studies rebuild in parallel, with no
// locking around the insight store.
//
//go:generate mockgen -source=study_event_producer.go -destination=./mocks/study_event_producer_mock.go -package=mocks
type StudyEventProducer interface {
	Produce(ctx context.Context, event events.StudyUpdatedEvent) error
}

type studyEventProducer struct {
	queue *PartitionedQueue[events.StudyUpdatedEvent]
}

func NewStudyEventProducer(queue *PartitionedQueue[events.StudyUpdatedEvent]) StudyEventProducer {
	return &studyEventProducer{
		queue: queue,
	}
}

func (producer *studyEventProducer) Produce(ctx context.Context, event events.StudyUpdatedEvent) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	// Partition by study identity (single-writer guarantee).
	producer.queue.Publish(event.StudyID, event)
	metricStudyEventProducedTotal.WithLabelValues(streamStudyUpdates).Inc()
	return nil
}

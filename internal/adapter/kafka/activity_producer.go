package kafka

import (
	"context"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.ActivityPublisher = ActivityProducer{}

// An ActivityProducer produces [domain.ActivityEvent] records keyed by
// product id. Producing is asynchronous, failures are only logged.
type ActivityProducer struct {
	cl       ProducerClient
	encoder  Encoder
	opPrefix string
}

func NewActivityProducer(opts ...ProducerOpt) (ActivityProducer, error) {
	const op = "NewActivityProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return ActivityProducer{}, opErr(err, op)
		}
	}

	return ActivityProducer{
		cl:       options.cl,
		encoder:  options.encoder,
		opPrefix: "ActivityProducer",
	}, nil
}

func (p ActivityProducer) PublishActivity(
	ctx context.Context, e domain.ActivityEvent,
) {
	const op = "PublishActivity"
	log := slog.With("op", makeOp(p.opPrefix, op))

	b, err := p.encoder.Encode(activityToSchemaV1(e))
	if err != nil {
		log.Error("failed to encode event", "eventID", e.ID, "err", err)
		return
	}

	r := &kgo.Record{Key: []byte(e.ProductID), Value: b}

	// the record outlives the request that caused it
	p.cl.Produce(context.WithoutCancel(ctx), r, p.onProduced)
}

func (p ActivityProducer) onProduced(r *kgo.Record, err error) {
	const op = "onProduced"
	if err != nil {
		slog.Error("failed to produce event",
			"op", makeOp(p.opPrefix, op),
			"key", string(r.Key),
			"err", err,
		)
	}
}

// Close flushes buffered records until ctx is done and closes the client.
func (p ActivityProducer) Close(ctx context.Context) {
	const op = "Close"
	log := slog.With("op", makeOp(p.opPrefix, op))

	log.Info("closing producer...")
	if err := p.cl.Flush(ctx); err != nil {
		log.Warn("records left unflushed", "err", err)
	}
	p.cl.Close()
	log.Info("producer is closed")
}

package kafka_test

import (
	"context"
	"testing"
	"time"

	"github.com/niksmo/storefront/internal/adapter/kafka"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"
)

type MockProducerClient struct {
	mock.Mock
}

func (c *MockProducerClient) Produce(
	ctx context.Context, r *kgo.Record, promise func(*kgo.Record, error),
) {
	args := c.Called(ctx, r, promise)
	promise(r, args.Error(0))
}

func (c *MockProducerClient) Flush(ctx context.Context) error {
	return c.Called(ctx).Error(0)
}

func (c *MockProducerClient) Close() {
	c.Called()
}

type MockEncoder struct {
	mock.Mock
}

func (e *MockEncoder) Encode(v any) ([]byte, error) {
	args := e.Called(v)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func testActivity() domain.ActivityEvent {
	return domain.ActivityEvent{
		ID:         "e-1",
		Kind:       domain.ActivityHandoffOpened,
		ProductID:  "wf-1",
		Language:   domain.LangFR,
		Quantity:   2,
		OccurredAt: time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestNewActivityProducer(t *testing.T) {
	t.Run("TooFewOpts", func(t *testing.T) {
		assert.Panics(t, func() {
			_, _ = kafka.NewActivityProducer(
				kafka.ProducerEncoderOpt(new(MockEncoder)),
			)
		})
	})

	t.Run("NilEncoder", func(t *testing.T) {
		_, err := kafka.NewActivityProducer(
			kafka.ProducerClientInstanceOpt(new(MockProducerClient)),
			kafka.ProducerEncoderOpt(nil),
		)
		require.Error(t, err)
	})

	t.Run("NoSeedBrokers", func(t *testing.T) {
		_, err := kafka.NewActivityProducer(
			kafka.ProducerClientOpt(t.Context(), nil, "storefront-activity", nil),
			kafka.ProducerEncoderOpt(new(MockEncoder)),
		)
		require.Error(t, err)
	})
}

func TestActivityProducer(t *testing.T) {
	t.Run("ProducesKeyedRecord", func(t *testing.T) {
		cl := new(MockProducerClient)
		enc := new(MockEncoder)
		e := testActivity()

		want := schema.ActivityEventV1{
			EventID:    "e-1",
			Kind:       "handoff_opened",
			ProductID:  "wf-1",
			Language:   "fr",
			Quantity:   2,
			OccurredAt: e.OccurredAt,
		}
		enc.On("Encode", want).Return([]byte("payload"), nil)

		var produced *kgo.Record
		cl.On("Produce", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				produced = args.Get(1).(*kgo.Record)
			}).
			Return(nil)

		p, err := kafka.NewActivityProducer(
			kafka.ProducerClientInstanceOpt(cl),
			kafka.ProducerEncoderOpt(enc),
		)
		require.NoError(t, err)

		p.PublishActivity(t.Context(), e)

		enc.AssertExpectations(t)
		cl.AssertExpectations(t)
		require.NotNil(t, produced)
		assert.Equal(t, []byte("wf-1"), produced.Key)
		assert.Equal(t, []byte("payload"), produced.Value)
	})

	t.Run("ProduceSurvivesCanceledContext", func(t *testing.T) {
		cl := new(MockProducerClient)
		enc := new(MockEncoder)
		enc.On("Encode", mock.Anything).Return([]byte("payload"), nil)

		var produceCtx context.Context
		cl.On("Produce", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				produceCtx = args.Get(0).(context.Context)
			}).
			Return(assert.AnError)

		p, err := kafka.NewActivityProducer(
			kafka.ProducerClientInstanceOpt(cl),
			kafka.ProducerEncoderOpt(enc),
		)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		p.PublishActivity(ctx, testActivity())

		require.NotNil(t, produceCtx)
		assert.NoError(t, produceCtx.Err())
	})

	t.Run("EncodeFailureSkipsProduce", func(t *testing.T) {
		cl := new(MockProducerClient)
		enc := new(MockEncoder)
		enc.On("Encode", mock.Anything).Return(nil, assert.AnError)

		p, err := kafka.NewActivityProducer(
			kafka.ProducerClientInstanceOpt(cl),
			kafka.ProducerEncoderOpt(enc),
		)
		require.NoError(t, err)

		p.PublishActivity(t.Context(), testActivity())
		cl.AssertNotCalled(t, "Produce", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("CloseFlushes", func(t *testing.T) {
		cl := new(MockProducerClient)
		cl.On("Flush", mock.Anything).Return(context.DeadlineExceeded)
		cl.On("Close").Return()

		p, err := kafka.NewActivityProducer(
			kafka.ProducerClientInstanceOpt(cl),
			kafka.ProducerEncoderOpt(new(MockEncoder)),
		)
		require.NoError(t, err)

		p.Close(t.Context())
		cl.AssertExpectations(t)
	})
}

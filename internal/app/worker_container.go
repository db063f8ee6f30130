package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"trackswift/internal/config"
	"trackswift/internal/logx"
	"trackswift/internal/service/feed"
	"trackswift/internal/service/shipment"
	"trackswift/internal/transport/kafka"
)

// MustBuildWorkerContainer builds the DI container for the carrier feed worker.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	b := NewContainerBuilder()
	container, err := buildWorkerContainer(ctx, b)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func buildWorkerContainer(ctx context.Context, b *ContainerBuilder) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

type feedProcessorIn struct {
	dig.In

	Shipments *shipment.Service
	Logger    logx.Logger
	Skipped   prometheus.Counter `name:"feed_events_skipped_total"`
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(in feedProcessorIn) *feed.Processor {
			return feed.NewProcessor(in.Shipments, in.Logger, in.Skipped)
		},
		func(cfg *config.Config, p *feed.Processor, logger logx.Logger) (*kafka.Consumer, error) {
			return kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, p.Handle, logger)
		},
	)
}

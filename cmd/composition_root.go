package cmd

import (
	"fmt"
	"log/slog"

	"restaurant/internal/adapters/out/clock"
	"restaurant/internal/adapters/out/kafka"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	redisadapter "restaurant/internal/adapters/out/redis"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/ports"
	"restaurant/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
	numbers    ports.NumberSource
	closers    []func()
}

// NewCompositionRoot wires the outbound adapters. Kafka publishing is only
// enabled when KAFKA_HOST is set.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{config: config, gormDB: gormDB, logger: logger}

	var publisher ports.OrderEventPublisher
	if config.KafkaHost != "" {
		producer, err := kafka.NewOrderEventProducer([]string{config.KafkaHost}, config.KafkaOrderChangedTopic)
		if err != nil {
			return nil, fmt.Errorf("create order event producer: %w", err)
		}
		publisher = producer
		c.closers = append(c.closers, producer.Close)
	}
	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger)

	switch config.NumberSource {
	case NumberSourceRedis:
		client := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		c.numbers = redisadapter.NewNumberSource(client, redisadapter.DefaultNumberKey)
		c.closers = append(c.closers, func() { _ = client.Close() })
	default:
		c.numbers = clock.NewMillisNumberSource()
	}

	return c, nil
}

// Close releases the broker and cache clients.
func (c *CompositionRoot) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.numbers)
}

func (c *CompositionRoot) CreateProcessOrderCommandHandler() commands.ProcessOrderCommandHandler {
	return commands.NewProcessOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkOrderReadyForDeliveryCommandHandler() commands.MarkOrderReadyForDeliveryCommandHandler {
	return commands.NewMarkOrderReadyForDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateServeOrderCommandHandler() commands.ServeOrderCommandHandler {
	return commands.NewServeOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateWaiterCommandHandler() commands.CreateWaiterCommandHandler {
	var f commands.WaiterUoWFactory = FuncWaiterUoWFactory(func() commands.WaiterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWaiterCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateEstablishmentCommandHandler() commands.CreateEstablishmentCommandHandler {
	var f commands.EstablishmentUoWFactory = FuncEstablishmentUoWFactory(func() commands.EstablishmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateEstablishmentCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB, nil))
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB, nil))
}

func (c *CompositionRoot) CreateGetOrderSummariesQueryHandler() queries.GetOrderSummariesQueryHandler {
	return queries.NewGetOrderSummariesQueryHandler(orderrepo.NewGormOrderSummaryReader(c.gormDB))
}

func (c *CompositionRoot) CreateGetOrderBacklogQueryHandler() queries.GetOrderBacklogQueryHandler {
	return queries.NewGetOrderBacklogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOrderBacklogQueryHandler(), c.config.BacklogReportSchedule, c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncWaiterUoWFactory func() commands.WaiterUoW

func (f FuncWaiterUoWFactory) Create() commands.WaiterUoW {
	return f()
}

type FuncEstablishmentUoWFactory func() commands.EstablishmentUoW

func (f FuncEstablishmentUoWFactory) Create() commands.EstablishmentUoW {
	return f()
}

package cmd

import (
	"context"
	"fmt"
	"net/http"

	"ordertracker/api"
	httpin "ordertracker/internal/adapters/in/http"
	"ordertracker/internal/adapters/out/leaflet"
	"ordertracker/internal/adapters/out/memory/orderrepo"
	sqliterepo "ordertracker/internal/adapters/out/sqlite/orderrepo"
	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/application/widget"
	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/domain/services"
	"ordertracker/internal/core/ports"
	"ordertracker/internal/pkg/logger"
	"ordertracker/internal/pkg/metrics"
	"ordertracker/internal/seed"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type CompositionRoot struct {
	cfg      Config
	logger   zerolog.Logger
	repo     ports.OrderRepository
	close    func() error
	scene    *leaflet.Scene
	markers  *services.MarkerRegistry
	registry *prometheus.Registry
}

// NewCompositionRoot opens the order store, loads the seed orders and
// prepares the map scene.
func NewCompositionRoot(ctx context.Context, cfg Config, log zerolog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:      cfg,
		logger:   log,
		close:    func() error { return nil },
		registry: prometheus.NewRegistry(),
	}
	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if err := c.openStore(); err != nil {
		return nil, err
	}
	if err := c.seed(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}

	center, err := kernel.NewLocation(cfg.MapCenterLat, cfg.MapCenterLng)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("map center: %w", err)
	}
	c.scene, err = leaflet.NewScene(center, cfg.MapZoom)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.scene.AddTileLayer(ports.TileLayer{
		URLTemplate: cfg.TileURL,
		Attribution: cfg.TileAttribution,
		MaxZoom:     cfg.TileMaxZoom,
	})
	c.markers = services.NewMarkerRegistry(c.scene)

	return c, nil
}

func (c *CompositionRoot) openStore() error {
	switch c.cfg.StoreDriver {
	case StoreDriverSQLite:
		db, err := sqliterepo.OpenInMemory()
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		c.repo = sqliterepo.NewGormOrderRepository(db)
		c.close = sqlDB.Close
	case StoreDriverMemory, "":
		c.repo = orderrepo.NewMemoryOrderRepository()
	default:
		return fmt.Errorf("unknown store driver %q", c.cfg.StoreDriver)
	}

	c.logger.Info().Str("driver", c.cfg.StoreDriver).Msg("order store opened")
	return nil
}

func (c *CompositionRoot) seed(ctx context.Context) error {
	if !c.cfg.Seed {
		return nil
	}

	var (
		orders []*order.Order
		err    error
	)
	if c.cfg.SeedFile != "" {
		orders, err = seed.LoadFile(c.cfg.SeedFile)
	} else {
		orders, err = seed.Default()
	}
	if err != nil {
		return fmt.Errorf("load seed orders: %w", err)
	}

	if err = seed.Apply(ctx, c.repo, orders); err != nil {
		return fmt.Errorf("apply seed orders: %w", err)
	}
	c.logger.Info().Int("orders", len(orders)).Msg("seed orders loaded")
	return nil
}

func (c *CompositionRoot) CreateAddOrderCommandHandler() commands.AddOrderCommandHandler {
	return commands.NewAddOrderCommandHandler(c.repo)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.repo)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	return commands.NewAdvanceOrderStatusCommandHandler(c.repo)
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	return commands.NewRemoveOrderCommandHandler(c.repo, c.markers)
}

func (c *CompositionRoot) CreateSetOrderLocationCommandHandler() commands.SetOrderLocationCommandHandler {
	return commands.NewSetOrderLocationCommandHandler(c.repo, c.markers)
}

func (c *CompositionRoot) CreateGetFilteredOrdersQueryHandler() queries.GetFilteredOrdersQueryHandler {
	return queries.NewGetFilteredOrdersQueryHandler(c.repo)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.repo)
}

// CreateWidget builds the widget and renders its first state.
func (c *CompositionRoot) CreateWidget(ctx context.Context) (*widget.Widget, error) {
	w := widget.New(widget.Handlers{
		AddOrder:       c.CreateAddOrderCommandHandler(),
		UpdateOrder:    c.CreateUpdateOrderCommandHandler(),
		AdvanceStatus:  c.CreateAdvanceOrderStatusCommandHandler(),
		RemoveOrder:    c.CreateRemoveOrderCommandHandler(),
		SetLocation:    c.CreateSetOrderLocationCommandHandler(),
		FilteredOrders: c.CreateGetFilteredOrdersQueryHandler(),
		GetOrder:       c.CreateGetOrderQueryHandler(),
	}, c.scene, c.markers, widget.Settings{FocusZoom: c.cfg.FocusZoom}, logger.Component(c.logger, "widget"))

	if err := w.Start(ctx); err != nil {
		return nil, fmt.Errorf("start widget: %w", err)
	}
	return w, nil
}

// RegisterRoutes mounts the widget host and the metrics endpoint on e.
func (c *CompositionRoot) RegisterRoutes(ctx context.Context, e *echo.Echo) error {
	w, err := c.CreateWidget(ctx)
	if err != nil {
		return err
	}

	cards, err := httpin.NewCardRenderer()
	if err != nil {
		return fmt.Errorf("card renderer: %w", err)
	}
	contract, err := httpin.NewContractValidator(ctx, api.OpenAPIDocument)
	if err != nil {
		return err
	}

	server := httpin.NewServer(
		w,
		c.scene,
		c.CreateGetFilteredOrdersQueryHandler(),
		cards,
		metrics.NewEventMetrics(c.registry),
		logger.Component(c.logger, "http"),
	)
	server.Register(e, contract)

	e.GET("/metrics", echo.WrapHandler(c.MetricsHandler()))
	return nil
}

func (c *CompositionRoot) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Close releases the order store.
func (c *CompositionRoot) Close() error {
	return c.close()
}

package http

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"ordertracker/internal/adapters/out/leaflet"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/application/widget"
	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"
	"ordertracker/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

//go:embed web
var webAssets embed.FS

// Server hosts the widget for a single browser session. Events are processed
// strictly one at a time; reads of the state wait for the event in flight.
type Server struct {
	mu sync.Mutex

	widget  *widget.Widget
	scene   *leaflet.Scene
	orders  queries.GetFilteredOrdersQueryHandler
	cards   *CardRenderer
	metrics *metrics.EventMetrics
	logger  zerolog.Logger
}

// NewServer creates the HTTP adapter around a started widget and the scene it
// draws on.
func NewServer(
	w *widget.Widget,
	scene *leaflet.Scene,
	orders queries.GetFilteredOrdersQueryHandler,
	cards *CardRenderer,
	eventMetrics *metrics.EventMetrics,
	logger zerolog.Logger,
) *Server {
	return &Server{
		widget:  w,
		scene:   scene,
		orders:  orders,
		cards:   cards,
		metrics: eventMetrics,
		logger:  logger,
	}
}

// Register mounts the page, the static assets, the health check and the API.
// contract guards the API group; nil skips contract validation.
func (s *Server) Register(e *echo.Echo, contract echo.MiddlewareFunc) {
	if e.Validator == nil {
		e.Validator = NewRequestValidator()
	}

	e.GET("/", s.GetIndex)
	e.GET("/health", s.GetHealth)
	e.StaticFS("/static", echo.MustSubFS(webAssets, "web/static"))

	var middlewares []echo.MiddlewareFunc
	if contract != nil {
		middlewares = append(middlewares, contract)
	}
	api := e.Group("/api/v1", middlewares...)
	api.GET("/state", s.GetState)
	api.POST("/events", s.PostEvent)
}

// GetIndex handles GET / - serves the widget page.
func (s *Server) GetIndex(c echo.Context) error {
	page, err := webAssets.ReadFile("web/index.html")
	if err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, page)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// GetState handles GET /api/v1/state - returns the current widget state.
func (s *Server) GetState(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.respond(c, nil)
}

// PostEvent handles POST /api/v1/events - applies one user event and returns
// the re-rendered widget.
func (s *Server) PostEvent(c echo.Context) error {
	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid event: " + err.Error(),
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := c.Request().Context()
	start := time.Now()
	accepted, err := s.dispatch(ctx, req)
	s.metrics.Observe(req.Type, time.Since(start), err)

	if err != nil {
		if isClientError(err) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid event: " + err.Error(),
			})
		}
		s.logger.Error().Err(err).Str("type", req.Type).Msg("event failed")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to process event",
		})
	}

	s.logger.Debug().Str("type", req.Type).Dur("took", time.Since(start)).Msg("event processed")
	s.recordOrderCount(ctx)

	return s.respond(c, accepted)
}

// dispatch routes the event to the widget or, for map events, to the scene
// that forwards them to the widget's handlers. The bool is set only for
// submit events.
func (s *Server) dispatch(ctx context.Context, req EventRequest) (*bool, error) {
	switch req.Type {
	case EventListAction:
		kind, err := widget.ParseActionKind(req.Action)
		if err != nil {
			return nil, err
		}
		id, err := parseOrderID("orderId", req.OrderID)
		if err != nil {
			return nil, err
		}
		return nil, s.widget.HandleListAction(ctx, kind, id)

	case EventFilter:
		return nil, s.widget.SetFilter(ctx, req.Filter)

	case EventOpenAdd:
		s.widget.OpenAdd()
		return nil, nil

	case EventCancel:
		s.widget.CancelDialog()
		return nil, nil

	case EventSubmit:
		if req.Form == nil {
			return nil, errs.NewValueIsRequiredError("form")
		}
		accepted, err := s.widget.Submit(ctx, widget.FormPayload{
			Name:     req.Form.Name,
			Customer: req.Form.Customer,
			Status:   req.Form.Status,
			Note:     req.Form.Note,
		})
		return &accepted, err

	case EventMapClick:
		at, err := parseLocation(req)
		if err != nil {
			return nil, err
		}
		return nil, s.scene.Click(ctx, at)

	case EventMarkerDrag:
		if req.MarkerKey == "" {
			return nil, errs.NewValueIsRequiredError("markerKey")
		}
		at, err := parseLocation(req)
		if err != nil {
			return nil, err
		}
		// The marker may have been removed by an earlier event.
		if err = s.scene.DragEnd(ctx, req.MarkerKey, at); errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err

	case EventClearLocation:
		return nil, s.widget.ClearLocation(ctx)

	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("unknown event type %q", req.Type))
	}
}

func (s *Server) respond(c echo.Context, accepted *bool) error {
	list, err := s.cards.Render(s.widget.State().List)
	if err != nil {
		s.logger.Error().Err(err).Msg("render list")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to render orders",
		})
	}

	statuses := order.AllStatuses()
	names := make([]string, 0, len(statuses))
	for _, st := range statuses {
		names = append(names, st.String())
	}

	return c.JSON(http.StatusOK, StateResponse{
		Widget:   s.widget.State(),
		ListHTML: list,
		Map:      s.scene.Snapshot(),
		Statuses: names,
		Accepted: accepted,
	})
}

func (s *Server) recordOrderCount(ctx context.Context) {
	orders, err := s.orders.Handle(ctx, queries.NewGetFilteredOrdersQuery(order.FilterAll()))
	if err != nil {
		s.logger.Warn().Err(err).Msg("count orders")
		return
	}
	s.metrics.SetOrders(len(orders))
}

func parseOrderID(param, raw string) (kernel.UUID, error) {
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(param)
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return id, nil
}

func parseLocation(req EventRequest) (kernel.Location, error) {
	if req.Lat == nil || req.Lng == nil {
		return kernel.Location{}, errs.NewValueIsRequiredError("lat and lng")
	}
	return kernel.NewLocation(*req.Lat, *req.Lng)
}

func isClientError(err error) bool {
	return errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}

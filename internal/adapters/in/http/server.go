package http

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"restaurant/internal/adapters/in/http/servers"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	processOrderHandler         commands.ProcessOrderCommandHandler
	markReadyForDeliveryHandler commands.MarkOrderReadyForDeliveryCommandHandler
	serveOrderHandler           commands.ServeOrderCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	createWaiterHandler         commands.CreateWaiterCommandHandler
	createEstablishmentHandler  commands.CreateEstablishmentCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getOrderSummariesHandler queries.GetOrderSummariesQueryHandler

	now func() time.Time
}

// Handlers groups the use cases the Server dispatches to.
type Handlers struct {
	CreateOrder          commands.CreateOrderCommandHandler
	ProcessOrder         commands.ProcessOrderCommandHandler
	MarkReadyForDelivery commands.MarkOrderReadyForDeliveryCommandHandler
	ServeOrder           commands.ServeOrderCommandHandler
	CancelOrder          commands.CancelOrderCommandHandler
	CreateWaiter         commands.CreateWaiterCommandHandler
	CreateEstablishment  commands.CreateEstablishmentCommandHandler
	GetOrder             queries.GetOrderQueryHandler
	GetAllOrders         queries.GetAllOrdersQueryHandler
	GetOrderSummaries    queries.GetOrderSummariesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		createOrderHandler:          h.CreateOrder,
		processOrderHandler:         h.ProcessOrder,
		markReadyForDeliveryHandler: h.MarkReadyForDelivery,
		serveOrderHandler:           h.ServeOrder,
		cancelOrderHandler:          h.CancelOrder,
		createWaiterHandler:         h.CreateWaiter,
		createEstablishmentHandler:  h.CreateEstablishment,
		getOrderHandler:             h.GetOrder,
		getAllOrdersHandler:         h.GetAllOrders,
		getOrderSummariesHandler:    h.GetOrderSummaries,
		now:                         time.Now,
	}
}

// GetOrders handles GET /api/v1/orders - retrieves all orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrder(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
// A body that already carries a number is rejected with 409 before any of
// its other fields are looked at.
func (s *Server) CreateOrder(ctx echo.Context) error {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return invalidBody(ctx)
	}
	number, err := decodeNumber(body)
	if err != nil {
		return invalidBody(ctx)
	}

	var newOrder servers.NewOrder
	if number == 0 {
		if err = json.Unmarshal(body, &newOrder); err != nil {
			return invalidBody(ctx)
		}
	}

	placedAt := s.now().UTC()
	if newOrder.PlacedAt != nil {
		placedAt = *newOrder.PlacedAt
	}
	var customerName string
	if newOrder.CustomerName != nil {
		customerName = *newOrder.CustomerName
	}
	var lines []commands.CreateOrderLine
	if newOrder.Lines != nil {
		lines = make([]commands.CreateOrderLine, 0, len(*newOrder.Lines))
		for _, l := range *newOrder.Lines {
			lines = append(lines, commands.CreateOrderLine{ProductCode: l.ProductCode, Quantity: l.Quantity})
		}
	}

	cmd := commands.NewCreateOrderCommand(
		number,
		newOrder.WaiterId,
		newOrder.EstablishmentCode,
		placedAt,
		customerName,
		lines,
	)

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Number: created.Int64()})
}

// numberField picks the number out of a new-order body, ignoring the rest.
type numberField struct {
	Number *int64 `json:"number"`
}

func decodeNumber(body []byte) (int64, error) {
	var f numberField
	if err := json.Unmarshal(body, &f); err != nil {
		return 0, err
	}
	if f.Number == nil {
		return 0, nil
	}
	return *f.Number, nil
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

// GetOrderSummaries handles GET /api/v1/order-summaries.
func (s *Server) GetOrderSummaries(ctx echo.Context) error {
	rows, err := s.getOrderSummariesHandler.Handle(ctx.Request().Context(), queries.NewGetOrderSummariesQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.OrderSummary, 0, len(rows))
	for _, row := range rows {
		response = append(response, servers.OrderSummary{
			Number:            row.Number,
			Date:              row.Date,
			EstablishmentName: row.EstablishmentName,
			WaiterName:        row.WaiterName,
			CustomerName:      row.CustomerName,
			LineCount:         row.LineCount,
			Status:            servers.Status(row.Status),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{number}. An absent order is a 404,
// not an error in the query itself.
func (s *Server) GetOrder(ctx echo.Context, number int64) error {
	o, found, err := s.getOrderHandler.Handle(ctx.Request().Context(), queries.NewGetOrderQuery(number))
	if err != nil {
		return errorResponse(ctx, err)
	}
	if !found {
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// ProcessOrder handles POST /api/v1/orders/{number}/process.
func (s *Server) ProcessOrder(ctx echo.Context, number int64) error {
	cmd, err := commands.NewProcessOrderCommand(number)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if err = s.processOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderReadyForDelivery handles POST /api/v1/orders/{number}/ready.
func (s *Server) MarkOrderReadyForDelivery(ctx echo.Context, number int64) error {
	cmd, err := commands.NewMarkOrderReadyForDeliveryCommand(number)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if err = s.markReadyForDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ServeOrder handles POST /api/v1/orders/{number}/serve.
func (s *Server) ServeOrder(ctx echo.Context, number int64) error {
	cmd, err := commands.NewServeOrderCommand(number)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if err = s.serveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{number}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, number int64) error {
	cmd, err := commands.NewCancelOrderCommand(number)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateWaiter handles POST /api/v1/waiters.
func (s *Server) CreateWaiter(ctx echo.Context) error {
	var newWaiter servers.NewWaiter
	if err := ctx.Bind(&newWaiter); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateWaiterCommand(newWaiter.Id, newWaiter.Name)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if err = s.createWaiterHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// CreateEstablishment handles POST /api/v1/establishments.
func (s *Server) CreateEstablishment(ctx echo.Context) error {
	var newEstablishment servers.NewEstablishment
	if err := ctx.Bind(&newEstablishment); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateEstablishmentCommand(newEstablishment.Code, newEstablishment.Name)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if err = s.createEstablishmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

func toOrder(o queries.OrderResponse) servers.Order {
	lines := make([]servers.OrderLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, servers.OrderLine{ProductCode: l.ProductCode, Quantity: l.Quantity})
	}

	return servers.Order{
		Number:            o.Number,
		WaiterId:          o.WaiterID,
		EstablishmentCode: o.EstablishmentCode,
		PlacedAt:          o.PlacedAt,
		CustomerName:      o.CustomerName,
		Lines:             lines,
		Status:            servers.Status(o.Status.String()),
	}
}

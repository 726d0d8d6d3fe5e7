// Package servers defines the HTTP contract of the order API: wire types,
// the ServerInterface an adapter implements, echo route registration and
// the embedded OpenAPI document the requests are validated against.
package servers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Status defines model for Status.
type Status string

const (
	StatusNEW             Status = "NEW"
	StatusINPROGRESS      Status = "IN_PROGRESS"
	StatusPENDINGDELIVERY Status = "PENDING_DELIVERY"
	StatusDELIVERED       Status = "DELIVERED"
	StatusCANCELLED       Status = "CANCELLED"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderLine defines model for OrderLine.
type OrderLine struct {
	ProductCode int64 `json:"productCode"`
	Quantity    int   `json:"quantity"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Number            *int64       `json:"number,omitempty"`
	WaiterId          int64        `json:"waiterId"`
	EstablishmentCode int64        `json:"establishmentCode"`
	PlacedAt          *time.Time   `json:"placedAt,omitempty"`
	CustomerName      *string      `json:"customerName,omitempty"`
	Lines             *[]OrderLine `json:"lines,omitempty"`
}

// OrderCreated defines model for OrderCreated.
type OrderCreated struct {
	Number int64 `json:"number"`
}

// Order defines model for Order.
type Order struct {
	Number            int64       `json:"number"`
	WaiterId          int64       `json:"waiterId"`
	EstablishmentCode int64       `json:"establishmentCode"`
	PlacedAt          time.Time   `json:"placedAt"`
	CustomerName      string      `json:"customerName"`
	Lines             []OrderLine `json:"lines"`
	Status            Status      `json:"status"`
}

// OrderSummary defines model for OrderSummary.
type OrderSummary struct {
	Number            int64     `json:"number"`
	Date              time.Time `json:"date"`
	EstablishmentName string    `json:"establishmentName"`
	WaiterName        string    `json:"waiterName"`
	CustomerName      string    `json:"customerName"`
	LineCount         int       `json:"lineCount"`
	Status            Status    `json:"status"`
}

// NewWaiter defines model for NewWaiter.
type NewWaiter struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

// NewEstablishment defines model for NewEstablishment.
type NewEstablishment struct {
	Code int64  `json:"code"`
	Name string `json:"name"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List every order
	// (GET /api/v1/orders)
	GetOrders(ctx echo.Context) error
	// Create an order
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// List a summary row per order
	// (GET /api/v1/order-summaries)
	GetOrderSummaries(ctx echo.Context) error
	// Read one order
	// (GET /api/v1/orders/{number})
	GetOrder(ctx echo.Context, number int64) error
	// (POST /api/v1/orders/{number}/process)
	ProcessOrder(ctx echo.Context, number int64) error
	// (POST /api/v1/orders/{number}/ready)
	MarkOrderReadyForDelivery(ctx echo.Context, number int64) error
	// (POST /api/v1/orders/{number}/serve)
	ServeOrder(ctx echo.Context, number int64) error
	// (POST /api/v1/orders/{number}/cancel)
	CancelOrder(ctx echo.Context, number int64) error
	// (POST /api/v1/waiters)
	CreateWaiter(ctx echo.Context) error
	// (POST /api/v1/establishments)
	CreateEstablishment(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	return w.Handler.GetOrders(ctx)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrderSummaries(ctx echo.Context) error {
	return w.Handler.GetOrderSummaries(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	number, err := bindNumber(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, number)
}

func (w *ServerInterfaceWrapper) ProcessOrder(ctx echo.Context) error {
	number, err := bindNumber(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ProcessOrder(ctx, number)
}

func (w *ServerInterfaceWrapper) MarkOrderReadyForDelivery(ctx echo.Context) error {
	number, err := bindNumber(ctx)
	if err != nil {
		return err
	}
	return w.Handler.MarkOrderReadyForDelivery(ctx, number)
}

func (w *ServerInterfaceWrapper) ServeOrder(ctx echo.Context) error {
	number, err := bindNumber(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ServeOrder(ctx, number)
}

func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	number, err := bindNumber(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CancelOrder(ctx, number)
}

func (w *ServerInterfaceWrapper) CreateWaiter(ctx echo.Context) error {
	return w.Handler.CreateWaiter(ctx)
}

func (w *ServerInterfaceWrapper) CreateEstablishment(ctx echo.Context) error {
	return w.Handler.CreateEstablishment(ctx)
}

func bindNumber(ctx echo.Context) (int64, error) {
	var number int64
	err := runtime.BindStyledParameterWithOptions("simple", "number", ctx.Param("number"), &number,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter number: %s", err))
	}
	return number, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/api/v1/orders", wrapper.GetOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/order-summaries", wrapper.GetOrderSummaries)
	router.GET(baseURL+"/api/v1/orders/:number", wrapper.GetOrder)
	router.POST(baseURL+"/api/v1/orders/:number/process", wrapper.ProcessOrder)
	router.POST(baseURL+"/api/v1/orders/:number/ready", wrapper.MarkOrderReadyForDelivery)
	router.POST(baseURL+"/api/v1/orders/:number/serve", wrapper.ServeOrder)
	router.POST(baseURL+"/api/v1/orders/:number/cancel", wrapper.CancelOrder)
	router.POST(baseURL+"/api/v1/waiters", wrapper.CreateWaiter)
	router.POST(baseURL+"/api/v1/establishments", wrapper.CreateEstablishment)
}

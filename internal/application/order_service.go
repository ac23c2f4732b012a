package application

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jannofresh/jannofresh-api/internal/domain/apperr"
	"github.com/jannofresh/jannofresh-api/internal/domain/entity"
	"github.com/jannofresh/jannofresh-api/internal/domain/repository"
	"github.com/jannofresh/jannofresh-api/pkg/helpers"
	"github.com/jannofresh/jannofresh-api/pkg/mailer"
)

// OrderService handles checkout and order tracking. Payment is simulated: a
// payment reference is generated and the order is confirmed immediately.
type OrderService struct {
	Orders      repository.OrderRepository
	Products    repository.ProductRepository
	Users       repository.UserRepository
	Pub         *helpers.RabbitPublisher
	Logger      *logrus.Logger
	DeliveryFee float64
	MailEnabled bool
}

func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository, users repository.UserRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger, deliveryFee float64, mailEnabled bool) *OrderService {
	return &OrderService{
		Orders: orders, Products: products, Users: users,
		Pub: pub, Logger: logger, DeliveryFee: deliveryFee, MailEnabled: mailEnabled,
	}
}

// CheckoutItem is one requested line; prices are always resolved server-side
// from the catalog, never trusted from the client.
type CheckoutItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Checkout prices the requested items, runs the simulated payment and
// persists the order.
func (s *OrderService) Checkout(ctx context.Context, userID string, items []CheckoutItem, address string) (*entity.Order, error) {
	if len(items) == 0 {
		return nil, apperr.Validation("Order must contain at least one item")
	}
	if address == "" {
		return nil, apperr.Validation("Delivery address is required")
	}

	var lines []entity.OrderItem
	var subtotal float64
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, apperr.Validation("Item quantity must be positive")
		}
		p, err := s.Products.GetByID(ctx, it.ProductID)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return nil, apperr.Validation(fmt.Sprintf("Product %s is not available", it.ProductID))
			}
			return nil, err
		}
		lines = append(lines, entity.OrderItem{
			ProductID: p.ID,
			Name:      p.Title,
			Price:     p.Price,
			Quantity:  it.Quantity,
			Unit:      p.Unit,
			Image:     p.Image,
		})
		subtotal += p.Price * float64(it.Quantity)
	}
	subtotal = roundCents(subtotal)

	o := &entity.Order{
		UserID:      userID,
		Status:      entity.StatusConfirmed, // simulated payment succeeds immediately
		Items:       lines,
		Subtotal:    subtotal,
		DeliveryFee: s.DeliveryFee,
		Total:       roundCents(subtotal + s.DeliveryFee),
		Address:     address,
		PaymentRef:  "PAY-" + uuid.NewString(),
	}
	if err := s.createWithFreshCode(ctx, o); err != nil {
		return nil, err
	}
	o.Timeline = buildTimeline(o)

	s.enqueueConfirmation(ctx, o)
	return o, nil
}

// ListForUser returns the caller's orders, optionally filtered by the
// storefront tabs: "Ongoing", "History", or an exact status.
func (s *OrderService) ListForUser(ctx context.Context, userID, filter string) ([]entity.Order, error) {
	orders, err := s.Orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return filterOrders(orders, filter), nil
}

// Get returns one order. Non-admins only see their own; a foreign order is
// reported as not found rather than forbidden so order codes cannot be probed.
func (s *OrderService) Get(ctx context.Context, userID, orderID string, admin bool) (*entity.Order, error) {
	o, err := s.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !admin && o.UserID != userID {
		return nil, apperr.ErrNotFound
	}
	o.Timeline = buildTimeline(o)
	return o, nil
}

// ListAll is the admin back-office view of every order.
func (s *OrderService) ListAll(ctx context.Context, filter string) ([]entity.Order, error) {
	orders, err := s.Orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return filterOrders(orders, filter), nil
}

// UpdateStatus moves an order along its lifecycle (admin only).
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (*entity.Order, error) {
	if !entity.ValidStatus(status) {
		return nil, apperr.Validation("Unknown order status: " + status)
	}
	o, err := s.Orders.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, err
	}
	o.Timeline = buildTimeline(o)
	return o, nil
}

func (s *OrderService) enqueueConfirmation(ctx context.Context, o *entity.Order) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	u, err := s.Users.FindByID(ctx, o.UserID)
	if err != nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplateOrderConfirmation,
		Data: map[string]any{
			"OrderID":     o.ID,
			"Name":        u.Name,
			"Items":       o.Items,
			"DeliveryFee": o.DeliveryFee,
			"Total":       o.Total,
			"Address":     o.Address,
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("order_id", o.ID).Warn("enqueue order confirmation failed")
	}
}

func filterOrders(orders []entity.Order, filter string) []entity.Order {
	for i := range orders {
		orders[i].Timeline = buildTimeline(&orders[i])
	}
	if filter == "" || filter == "All" {
		return orders
	}
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		switch filter {
		case "Ongoing":
			if o.Ongoing() {
				out = append(out, o)
			}
		case "History":
			if !o.Ongoing() {
				out = append(out, o)
			}
		default:
			if o.Status == filter {
				out = append(out, o)
			}
		}
	}
	return out
}

// timeline offsets from order placement; tracking is a static mock, not a
// live feed.
var timelineSteps = []struct {
	status string
	offset time.Duration
}{
	{"Order Placed", 0},
	{entity.StatusConfirmed, 5 * time.Minute},
	{entity.StatusProcessing, 30 * time.Minute},
	{entity.StatusOnTheWay, 50 * time.Minute},
	{entity.StatusDelivered, 75 * time.Minute},
}

func statusRank(status string) int {
	switch status {
	case entity.StatusConfirmed:
		return 1
	case entity.StatusProcessing:
		return 2
	case entity.StatusOnTheWay:
		return 3
	case entity.StatusDelivered:
		return 4
	}
	return 0
}

func buildTimeline(o *entity.Order) []entity.TimelineStep {
	if o.Status == entity.StatusCancelled {
		return []entity.TimelineStep{
			{Status: "Order Placed", Time: o.CreatedAt, Completed: true},
			{Status: entity.StatusCancelled, Time: o.UpdatedAt, Completed: true},
		}
	}
	rank := statusRank(o.Status)
	out := make([]entity.TimelineStep, 0, len(timelineSteps))
	for i, step := range timelineSteps {
		out = append(out, entity.TimelineStep{
			Status:    step.status,
			Time:      o.CreatedAt.Add(step.offset),
			Completed: i <= rank,
		})
	}
	return out
}

// orderCodeAttempts bounds the retries when a freshly drawn code collides
// with an existing order.
const orderCodeAttempts = 5

// createWithFreshCode persists o under a new short order code, redrawing the
// code on a collision. The 100k-value code space makes collisions rare but
// real; both repositories report them as ErrDuplicateOrderCode.
func (s *OrderService) createWithFreshCode(ctx context.Context, o *entity.Order) error {
	var err error
	for i := 0; i < orderCodeAttempts; i++ {
		o.ID = newOrderCode()
		err = s.Orders.Create(ctx, o)
		if !errors.Is(err, apperr.ErrDuplicateOrderCode) {
			return err
		}
	}
	return fmt.Errorf("allocate order code: %w", err)
}

// newOrderCode builds the short human-facing order id, e.g. "JF-98721".
func newOrderCode() string {
	id := uuid.New()
	n := binary.BigEndian.Uint32(id[0:4]) % 100000
	return fmt.Sprintf("JF-%05d", n)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

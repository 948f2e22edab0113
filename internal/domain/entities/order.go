package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderOrigin distinguishes historical seed orders from orders generated
// out of a replenishment draft.

type OrderOrigin string

const (
	OrderOriginSeeded    OrderOrigin = "seeded"
	OrderOriginFromDraft OrderOrigin = "draft"
)

// Order status labels. Free-form strings drawn from a small fixed
// vocabulary; there is no live progression after creation.
const (
	OrderStatusProcessing = "processing"
	OrderStatusInTransit  = "in transit"
	OrderStatusDelivered  = "delivered"
)

// LogisticsStep is one timestamped entry of an order's timeline. Time is
// a display label, not a strict datetime: placeholder steps carry an
// empty label.
type LogisticsStep struct {
	Time   string `json:"time"`
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
	Done   bool   `json:"done"`
}

// Order is a submitted purchase order. Immutable once created; the
// timeline is fixed at creation time, including which steps are done.
type Order struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	Items     string          `json:"items"`
	Origin    OrderOrigin     `json:"origin"`
	Logistics []LogisticsStep `json:"logistics"`
}

// NewOrder builds a validated Order.
func NewOrder(id string, createdAt time.Time, amount decimal.Decimal, status, items string, origin OrderOrigin, logistics []LogisticsStep) (Order, error) {
	if id == "" {
		return Order{}, fmt.Errorf("order id cannot be empty")
	}
	if amount.IsNegative() {
		return Order{}, fmt.Errorf("order %s: amount cannot be negative, got %s", id, amount)
	}
	if status == "" {
		return Order{}, fmt.Errorf("order %s: status cannot be empty", id)
	}
	if err := ValidateTimeline(logistics); err != nil {
		return Order{}, fmt.Errorf("order %s: %w", id, err)
	}
	return Order{
		ID:        id,
		CreatedAt: createdAt,
		Amount:    amount,
		Status:    status,
		Items:     items,
		Origin:    origin,
		Logistics: logistics,
	}, nil
}

// ValidateTimeline enforces the timeline ordering invariant: every done
// step precedes every not-done step.
func ValidateTimeline(steps []LogisticsStep) error {
	pendingSeen := false
	for i, s := range steps {
		if s.Status == "" {
			return fmt.Errorf("logistics step %d: status cannot be empty", i)
		}
		if !s.Done {
			pendingSeen = true
			continue
		}
		if pendingSeen {
			return fmt.Errorf("logistics step %d: done step follows a pending step", i)
		}
	}
	return nil
}

// SubmittedTimeline is the fixed template attached to a freshly
// submitted order: the submission itself is done, the remaining steps
// are placeholders without timestamps.
func SubmittedTimeline(submittedAt time.Time) []LogisticsStep {
	return []LogisticsStep{
		{Time: submittedAt.Format("01-02 15:04"), Status: "Order submitted", Detail: "Automatic credit check passed", Done: true},
		{Time: "", Status: "Warehouse intake", Detail: "Awaiting RDC warehouse confirmation", Done: false},
		{Time: "", Status: "Dispatched", Done: false},
		{Time: "", Status: "Delivered", Done: false},
	}
}

// SeedOrders returns the historical orders the ledger starts with.
func SeedOrders() []Order {
	return []Order{
		{
			ID:        "ORD-20231012-01",
			CreatedAt: time.Date(2023, 10, 12, 9, 30, 0, 0, time.UTC),
			Amount:    decimal.NewFromInt(125000),
			Status:    OrderStatusInTransit,
			Items:     "Tamiflu x500, Rocephin x200",
			Origin:    OrderOriginSeeded,
			Logistics: []LogisticsStep{
				{Time: "10-12 09:30", Status: "Order submitted", Detail: "Submitted by distributor", Done: true},
				{Time: "10-12 14:00", Status: "Warehouse intake", Detail: "Chengdu RDC accepted the order", Done: true},
				{Time: "10-13 08:00", Status: "Dispatched", Detail: "Handed over to cold-chain carrier", Done: true},
				{Time: "10-13 20:00", Status: "In transit", Detail: "En route to the Mianyang hub", Done: true},
				{Time: "", Status: "Delivered", Detail: "Delivery expected 10-14", Done: false},
			},
		},
		{
			ID:        "ORD-20231010-05",
			CreatedAt: time.Date(2023, 10, 10, 10, 0, 0, 0, time.UTC),
			Amount:    decimal.NewFromInt(45000),
			Status:    OrderStatusDelivered,
			Items:     "Avastin x10",
			Origin:    OrderOriginSeeded,
			Logistics: []LogisticsStep{
				{Time: "10-10 10:00", Status: "Order submitted", Done: true},
				{Time: "10-11 16:00", Status: "Delivered", Detail: "Signed for by warehouse keeper", Done: true},
			},
		},
	}
}

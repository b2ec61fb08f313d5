package models

import (
	"fmt"
	"strings"
)

type OrderItem struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

func (oi OrderItem) Total() float64 {
	return oi.Item.Price * float64(oi.Quantity)
}

// Order references its table by id only; the table belongs to the booking
// sheet and is never owned here.
type Order struct {
	ID      int         `json:"id"`
	TableID int         `json:"table_id"`
	Status  OrderStatus `json:"status"`
	Items   []OrderItem `json:"items"`
}

func NewOrder(id, tableID int) *Order {
	return &Order{
		ID:      id,
		TableID: tableID,
		Status:  OrderOpen,
	}
}

func (o *Order) AddItem(item MenuItem, quantity int) {
	o.Items = append(o.Items, OrderItem{Item: item, Quantity: quantity})
}

// Total is derived from the items, never stored.
func (o *Order) Total() float64 {
	var sum float64
	for _, item := range o.Items {
		sum += item.Total()
	}
	return sum
}

func (o *Order) Close()  { o.Status = OrderClosed }
func (o *Order) Cancel() { o.Status = OrderCancelled }

func (o *Order) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Order %d for table %d\n", o.ID, o.TableID)
	for _, item := range o.Items {
		fmt.Fprintf(&sb, "  - %s x%d\n", item.Item.Name, item.Quantity)
	}
	fmt.Fprintf(&sb, "Total: %.2f\n", o.Total())
	return sb.String()
}

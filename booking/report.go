package booking

import (
	"fmt"
	"strings"

	"github.com/rakhadenta/restaurant-booking/models"
)

// Report is a read-only snapshot: the booking sheet summary plus the
// revenue over all non-cancelled orders.
type Report struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func NewReport(title string) Report {
	return Report{Title: title}
}

func (r *Report) GenerateFrom(sheet *BookingSheet, orders []*models.Order) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Report: %s\n", r.Title)
	sb.WriteString(sheet.Summary())
	sb.WriteByte('\n')
	var revenue float64
	for _, order := range orders {
		if order.Status == models.OrderCancelled {
			continue
		}
		revenue += order.Total()
	}
	fmt.Fprintf(&sb, "Total revenue: %.2f\n", revenue)
	r.Content = sb.String()
}

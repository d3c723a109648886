package cartclient

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
)

// Controller renders a cart view over whichever backend was selected at
// startup.
type Controller struct {
	backend CartBackend
}

// NewController wires a controller to a backend.
func NewController(backend CartBackend) (*Controller, error) {
	if backend == nil {
		return nil, fmt.Errorf("cart backend required")
	}
	return &Controller{backend: backend}, nil
}

// Backend exposes the underlying backend for direct mutations.
func (c *Controller) Backend() CartBackend {
	return c.backend
}

// Render writes the current cart contents and total to w.
func (c *Controller) Render(ctx context.Context, w io.Writer) error {
	snap, err := c.backend.Get(ctx)
	if err != nil {
		return err
	}

	if len(snap.Items) == 0 {
		_, err := fmt.Fprintln(w, "Your cart is empty.")
		return err
	}

	for _, line := range snap.Items {
		lineTotal := line.PriceCents * line.Quantity
		if _, err := fmt.Fprintf(w, "%d x %s (%s) = %s\n",
			line.Quantity, line.Name, FormatPrice(line.PriceCents), FormatPrice(lineTotal)); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "Total: %s\n", FormatPrice(snap.TotalCents))
	return err
}

// Badge returns the item-count badge text: empty when the cart is empty,
// the count up to nine, then "9+".
func (c *Controller) Badge(ctx context.Context) (string, error) {
	snap, err := c.backend.Get(ctx)
	if err != nil {
		return "", err
	}

	count := 0
	for _, line := range snap.Items {
		count += line.Quantity
	}
	switch {
	case count == 0:
		return "", nil
	case count > 9:
		return "9+", nil
	default:
		return strconv.Itoa(count), nil
	}
}

// FormatPrice renders a minor-unit amount as crowns with two decimals.
func FormatPrice(cents int) string {
	amount := decimal.NewFromInt(int64(cents)).Div(decimal.NewFromInt(100))
	return amount.StringFixed(2) + " Kč"
}

// Package checkout hands the cart off to a third-party retailer's
// search page. Pure formatting: the cart itself is left alone.
package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/lo"

	"snackmatch/internal/cart"
)

const searchBase = "https://www.swiggy.com/search"

// Query joins the cart as "{qty}x {name}" entries, order preserved.
func Query(items []cart.LineItem) string {
	parts := lo.Map(items, func(item cart.LineItem, _ int) string {
		return fmt.Sprintf("%dx %s", item.Quantity, item.Name)
	})
	return strings.Join(parts, ", ")
}

// URL builds the retailer search URL with the percent-encoded cart query.
func URL(items []cart.LineItem) string {
	q := url.Values{}
	q.Set("query", Query(items))
	return searchBase + "?" + q.Encode()
}

package checkout

import (
	"github.com/guedes-jr/store-delizandra-api/models"
)

// validateStock accepts or rejects the request as a whole: every line
// needs a known inventory record with at least the requested quantity.
// Lines are checked independently, so duplicate references to one
// product are not summed. The check is read-only; no reservation is
// placed, which leaves a race window between concurrent checkouts for
// the same product.
func validateStock(items []ItemRequest, products map[uint]models.Product, stock map[uint]int) error {
	for _, item := range items {
		available, known := stock[item.ProductID]
		if !known || available < item.Qty {
			return reject(CodeOutOfStock, "not enough stock for %s", products[item.ProductID].Name)
		}
	}
	return nil
}

package resources

import (
	"github.com/shashiranjanraj/homegrown/app/models"
	"github.com/shashiranjanraj/homegrown/pkg/resource"
)

// OrderResource shapes an order for API responses, adding the derived
// return-eligibility flag.
type OrderResource struct{ resource.Base }

func (r *OrderResource) ToArray(v interface{}) resource.Map {
	o := v.(models.Order)

	return resource.Map{
		"id":              o.ID.Hex(),
		"items":           o.Items,
		"shippingAddress": o.ShippingAddress,
		"totalAmount":     o.TotalAmount,
		"paymentMethod":   o.PaymentMethod,
		"status":          o.Status,
		"returnEligible":  o.ReturnEligible(),
		"createdAt":       o.CreatedAt,
	}
}

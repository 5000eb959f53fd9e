package email

import "gepe-server/internal/store"

// OrderEmailFromOrder flattens an order row and its items into the shape the
// order email templates render.
func OrderEmailFromOrder(order store.Order, items []store.OrderItem) OrderEmail {
	orderEmail := OrderEmail{
		OrderNumber:           deref(order.OrderNumber),
		CustomerName:          deref(order.CustomerName),
		CustomerEmail:         deref(order.CustomerEmail),
		CustomerPhone:         deref(order.CustomerPhone),
		TotalAmount:           order.TotalAmount,
		ShippingMethod:        deref(order.ShippingMethod),
		ShippingAddress:       deref(order.ShippingAddress),
		ShippingCity:          deref(order.ShippingCity),
		TrackingCode:          deref(order.TrackingCode),
		TrackingCompany:       deref(order.TrackingCompany),
		TrackingBranchAddress: deref(order.TrackingBranchAddress),
	}
	for _, item := range items {
		orderEmail.Items = append(orderEmail.Items, OrderItem{
			ProductName: item.ProductName,
			ProductSize: deref(item.ProductSize),
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return orderEmail
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

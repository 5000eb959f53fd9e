package store

// Order ENUMs
const (
	OrderStatusPending          = "PENDING"
	OrderStatusPaid             = "PAID"
	OrderStatusReadyForShipment = "READY_FOR_SHIPMENT"
	OrderStatusShipped          = "SHIPPED"
	OrderStatusDelivered        = "DELIVERED"
	OrderStatusCancelled        = "CANCELLED"
	OrderStatusRefunded         = "REFUNDED"
)

// Production pipeline ENUMs
const (
	ProductionStatusWaitingFabric = "WAITING_FABRIC"
	ProductionStatusCutting       = "CUTTING"
	ProductionStatusSewing        = "SEWING"
	ProductionStatusPrinting      = "PRINTING"
	ProductionStatusFinished      = "FINISHED"
)

// ProductionStatuses lists the pipeline stages in order.
var ProductionStatuses = []string{
	ProductionStatusWaitingFabric,
	ProductionStatusCutting,
	ProductionStatusSewing,
	ProductionStatusPrinting,
	ProductionStatusFinished,
}

func IsValidProductionStatus(status string) bool {
	for _, s := range ProductionStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Payment ENUMs (statuses as MercadoPago reports them)
const (
	PaymentStatusApproved    = "approved"
	PaymentStatusPending     = "pending"
	PaymentStatusInProcess   = "in_process"
	PaymentStatusRejected    = "rejected"
	PaymentStatusCancelled   = "cancelled"
	PaymentStatusRefunded    = "refunded"
	PaymentStatusChargedBack = "charged_back"
)

// Newsletter ENUMs
const (
	NewsletterSourceFooter = "footer"
	NewsletterSourcePopup  = "popup"
)

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Order struct {
	ID                    int64   `db:"id" json:"id"`
	OrderNumber           *string `db:"order_number" json:"order_number"`
	UserID                *int64  `db:"user_id" json:"user_id"`
	Status                string  `db:"status" json:"status"`
	TotalAmount           float64 `db:"total_amount" json:"total_amount"`
	ExternalReference     *string `db:"external_reference" json:"external_reference"`
	PaymentID             *string `db:"payment_id" json:"payment_id"`
	CustomerEmail         *string `db:"customer_email" json:"customer_email"`
	CustomerName          *string `db:"customer_name" json:"customer_name"`
	CustomerPhone         *string `db:"customer_phone" json:"customer_phone"`
	CustomerDNI           *string `db:"customer_dni" json:"customer_dni"`
	ShippingMethod        *string `db:"shipping_method" json:"shipping_method"`
	ShippingAddress       *string `db:"shipping_address" json:"shipping_address"`
	ShippingCity          *string `db:"shipping_city" json:"shipping_city"`
	ShippingProvince      *string `db:"shipping_province" json:"shipping_province"`
	TrackingCode          *string `db:"tracking_code" json:"tracking_code"`
	TrackingCompany       *string `db:"tracking_company" json:"tracking_company"`
	TrackingBranchAddress *string `db:"tracking_branch_address" json:"tracking_branch_address"`
	TrackingAttachmentURL *string `db:"tracking_attachment_url" json:"tracking_attachment_url"`
	ProductionStatus      *string `db:"production_status" json:"production_status"`
	ConfirmationEmailSent bool    `db:"confirmation_email_sent" json:"confirmation_email_sent"`
	ShippedEmailSent      bool    `db:"shipped_email_sent" json:"shipped_email_sent"`
	CreatedAt             string  `db:"created_at" json:"created_at"`
	UpdatedAt             string  `db:"updated_at" json:"updated_at"`
}

type OrderItem struct {
	ID          int64   `db:"id" json:"id"`
	OrderID     int64   `db:"order_id" json:"order_id"`
	ProductID   *int64  `db:"product_id" json:"product_id"`
	ProductName string  `db:"product_name" json:"product_name"`
	ProductSize *string `db:"product_size" json:"product_size"`
	Quantity    int64   `db:"quantity" json:"quantity"`
	UnitPrice   float64 `db:"unit_price" json:"unit_price"`
}

// OrderSummary is the admin list row: the order plus an item count and the
// first product name for the preview column.
type OrderSummary struct {
	ID                    int64   `db:"id" json:"id"`
	OrderNumber           *string `db:"order_number" json:"order_number"`
	CustomerEmail         *string `db:"customer_email" json:"customer_email"`
	CustomerName          *string `db:"customer_name" json:"customer_name"`
	Status                string  `db:"status" json:"status"`
	TotalAmount           float64 `db:"total_amount" json:"total_amount"`
	PaymentID             *string `db:"payment_id" json:"payment_id"`
	ExternalReference     *string `db:"external_reference" json:"external_reference"`
	ShippingMethod        *string `db:"shipping_method" json:"shipping_method"`
	ShippingAddress       *string `db:"shipping_address" json:"shipping_address"`
	ShippingCity          *string `db:"shipping_city" json:"shipping_city"`
	ShippingProvince      *string `db:"shipping_province" json:"shipping_province"`
	TrackingCode          *string `db:"tracking_code" json:"tracking_code"`
	TrackingCompany       *string `db:"tracking_company" json:"tracking_company"`
	TrackingBranchAddress *string `db:"tracking_branch_address" json:"tracking_branch_address"`
	TrackingAttachmentURL *string `db:"tracking_attachment_url" json:"tracking_attachment_url"`
	ProductionStatus      *string `db:"production_status" json:"production_status"`
	CreatedAt             string  `db:"created_at" json:"created_at"`
	ItemsCount            int64   `db:"items_count" json:"items_count"`
	FirstProductName      *string `db:"first_product_name" json:"first_product_name"`
}

// ProductionEvent records one stage transition of an order's production
// pipeline.
type ProductionEvent struct {
	ID        int64  `db:"id" json:"id"`
	OrderID   int64  `db:"order_id" json:"order_id"`
	Stage     string `db:"stage" json:"stage"`
	CreatedAt string `db:"created_at" json:"created_at"`
}

type StatusCount struct {
	Status string `db:"status"`
	Count  int64  `db:"count"`
}

// PaidOrderTotal feeds the revenue-by-period computation.
type PaidOrderTotal struct {
	TotalAmount float64 `db:"total_amount"`
	CreatedAt   string  `db:"created_at"`
}

// ProductionItemRow is an order item joined with its order's statuses, used
// by the production board and the production statistics.
type ProductionItemRow struct {
	ID               int64   `db:"id"`
	OrderID          int64   `db:"order_id"`
	Status           string  `db:"status"`
	ProductionStatus *string `db:"production_status"`
	ProductName      string  `db:"product_name"`
	ProductSize      *string `db:"product_size"`
	Quantity         int64   `db:"quantity"`
}

const orderColumns = `id, order_number, user_id, status, total_amount, external_reference, payment_id,
	customer_email, customer_name, customer_phone, customer_dni,
	shipping_method, shipping_address, shipping_city, shipping_province,
	tracking_code, tracking_company, tracking_branch_address, tracking_attachment_url,
	production_status, confirmation_email_sent, shipped_email_sent, created_at, updated_at`

const sqlCreateOrder = `
INSERT INTO orders (order_number, user_id, status, total_amount, external_reference, payment_id,
	customer_email, customer_name, customer_phone, customer_dni,
	shipping_method, shipping_address, shipping_city, shipping_province)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING ` + orderColumns + `
`

const sqlCreateOrderItem = `
INSERT INTO order_items (order_id, product_id, product_name, product_size, quantity, unit_price)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, order_id, product_id, product_name, product_size, quantity, unit_price
`

// CreateOrder inserts the order and its items in one transaction.
func (s *Store) CreateOrder(ctx context.Context, order Order, items []OrderItem) (Order, []OrderItem, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return Order{}, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error(ctx, "failed to rollback transaction", rbErr)
			}
		}
	}()

	var created Order
	err = tx.GetContext(ctx, &created, sqlCreateOrder,
		order.OrderNumber, order.UserID, order.Status, order.TotalAmount,
		order.ExternalReference, order.PaymentID,
		order.CustomerEmail, order.CustomerName, order.CustomerPhone, order.CustomerDNI,
		order.ShippingMethod, order.ShippingAddress, order.ShippingCity, order.ShippingProvince)
	if err != nil {
		return Order{}, nil, fmt.Errorf("failed to insert order: %w", err)
	}

	createdItems := make([]OrderItem, 0, len(items))
	for _, item := range items {
		var createdItem OrderItem
		err = tx.GetContext(ctx, &createdItem, sqlCreateOrderItem,
			created.ID, item.ProductID, item.ProductName, item.ProductSize, item.Quantity, item.UnitPrice)
		if err != nil {
			return Order{}, nil, fmt.Errorf("failed to insert order item: %w", err)
		}
		createdItems = append(createdItems, createdItem)
	}

	if err = tx.Commit(); err != nil {
		return Order{}, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return created, createdItems, nil
}

const sqlGetOrder = `
SELECT ` + orderColumns + `
FROM orders
WHERE id = $1
`

func (s *Store) GetOrder(ctx context.Context, id int64) (Order, error) {
	var order Order
	err := s.db.GetContext(ctx, &order, sqlGetOrder, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Order{}, ErrNotFound
		}
		return Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

const sqlGetOrderByNumber = `
SELECT ` + orderColumns + `
FROM orders
WHERE order_number = $1
`

func (s *Store) GetOrderByNumber(ctx context.Context, orderNumber string) (Order, error) {
	var order Order
	err := s.db.GetContext(ctx, &order, sqlGetOrderByNumber, orderNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Order{}, ErrNotFound
		}
		return Order{}, fmt.Errorf("failed to get order by number: %w", err)
	}
	return order, nil
}

const sqlGetOrderByExternalReference = `
SELECT ` + orderColumns + `
FROM orders
WHERE external_reference = $1
`

func (s *Store) GetOrderByExternalReference(ctx context.Context, ref string) (Order, error) {
	var order Order
	err := s.db.GetContext(ctx, &order, sqlGetOrderByExternalReference, ref)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Order{}, ErrNotFound
		}
		return Order{}, fmt.Errorf("failed to get order by external reference: %w", err)
	}
	return order, nil
}

const sqlGetOrderByPaymentID = `
SELECT ` + orderColumns + `
FROM orders
WHERE payment_id = $1
`

func (s *Store) GetOrderByPaymentID(ctx context.Context, paymentID string) (Order, error) {
	var order Order
	err := s.db.GetContext(ctx, &order, sqlGetOrderByPaymentID, paymentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Order{}, ErrNotFound
		}
		return Order{}, fmt.Errorf("failed to get order by payment id: %w", err)
	}
	return order, nil
}

const sqlOrderNumberExists = `
SELECT COUNT(*)
FROM orders
WHERE order_number = $1
`

func (s *Store) OrderNumberExists(ctx context.Context, orderNumber string) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlOrderNumberExists, orderNumber)
	if err != nil {
		return false, fmt.Errorf("failed to check order number: %w", err)
	}
	return count > 0, nil
}

const sqlGetOrderItems = `
SELECT id, order_id, product_id, product_name, product_size, quantity, unit_price
FROM order_items
WHERE order_id = $1
ORDER BY id
`

func (s *Store) GetOrderItems(ctx context.Context, orderID int64) ([]OrderItem, error) {
	items := []OrderItem{}
	err := s.db.SelectContext(ctx, &items, sqlGetOrderItems, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	return items, nil
}

const orderSummaryColumns = `o.id, o.order_number, o.customer_email, o.customer_name, o.status, o.total_amount,
	o.payment_id, o.external_reference, o.shipping_method, o.shipping_address, o.shipping_city, o.shipping_province,
	o.tracking_code, o.tracking_company, o.tracking_branch_address, o.tracking_attachment_url,
	o.production_status, o.created_at,
	(SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = o.id) AS items_count,
	(SELECT oi.product_name FROM order_items oi WHERE oi.order_id = o.id ORDER BY oi.id LIMIT 1) AS first_product_name`

// ListOrdersParams filters the admin order listing.
type ListOrdersParams struct {
	Status *string
	Search *string
	Limit  int
	Offset int
}

func (s *Store) ListOrders(ctx context.Context, params ListOrdersParams) ([]OrderSummary, error) {
	query := `SELECT ` + orderSummaryColumns + ` FROM orders o WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	if params.Status != nil {
		argCount++
		query += fmt.Sprintf(" AND o.status = $%d", argCount)
		args = append(args, *params.Status)
	}
	if params.Search != nil && *params.Search != "" {
		argCount++
		clause := fmt.Sprintf(`(LOWER(COALESCE(o.order_number, '')) LIKE LOWER($%d)
			OR LOWER(COALESCE(o.customer_email, '')) LIKE LOWER($%d)
			OR LOWER(COALESCE(o.customer_name, '')) LIKE LOWER($%d)
			OR LOWER(COALESCE(o.external_reference, '')) LIKE LOWER($%d)`,
			argCount, argCount, argCount, argCount)
		args = append(args, "%"+*params.Search+"%")
		if id, err := strconv.ParseInt(strings.TrimSpace(*params.Search), 10, 64); err == nil {
			argCount++
			clause += fmt.Sprintf(" OR o.id = $%d", argCount)
			args = append(args, id)
		}
		clause += ")"
		query += " AND " + clause
	}

	query += " ORDER BY o.created_at DESC"
	if params.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount+1, argCount+2)
		args = append(args, params.Limit, params.Offset)
	}

	orders := []OrderSummary{}
	err := s.db.SelectContext(ctx, &orders, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

const sqlListOrdersByCustomer = `
SELECT ` + orderSummaryColumns + `
FROM orders o
WHERE o.customer_email = $1
ORDER BY o.created_at DESC
LIMIT $2 OFFSET $3
`

func (s *Store) ListOrdersByCustomer(ctx context.Context, email string, limit, offset int64) ([]OrderSummary, error) {
	orders := []OrderSummary{}
	err := s.db.SelectContext(ctx, &orders, sqlListOrdersByCustomer, email, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders by customer: %w", err)
	}
	return orders, nil
}

// UpdateOrderParams carries the order fields a partial update may touch.
type UpdateOrderParams struct {
	Status                *string
	ProductionStatus      *string
	PaymentID             *string
	CustomerEmail         *string
	CustomerName          *string
	CustomerPhone         *string
	CustomerDNI           *string
	ShippingAddress       *string
	ShippingCity          *string
	ShippingProvince      *string
	TrackingCode          *string
	TrackingCompany       *string
	TrackingBranchAddress *string
	TrackingAttachmentURL *string
}

func (s *Store) UpdateOrder(ctx context.Context, id int64, params UpdateOrderParams) (Order, error) {
	updates := []string{}
	args := []interface{}{}
	argPos := 1

	appendUpdate := func(column string, value interface{}) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if params.Status != nil {
		appendUpdate("status", *params.Status)
	}
	if params.ProductionStatus != nil {
		appendUpdate("production_status", *params.ProductionStatus)
	}
	if params.PaymentID != nil {
		appendUpdate("payment_id", *params.PaymentID)
	}
	if params.CustomerEmail != nil {
		appendUpdate("customer_email", *params.CustomerEmail)
	}
	if params.CustomerName != nil {
		appendUpdate("customer_name", *params.CustomerName)
	}
	if params.CustomerPhone != nil {
		appendUpdate("customer_phone", *params.CustomerPhone)
	}
	if params.CustomerDNI != nil {
		appendUpdate("customer_dni", *params.CustomerDNI)
	}
	if params.ShippingAddress != nil {
		appendUpdate("shipping_address", *params.ShippingAddress)
	}
	if params.ShippingCity != nil {
		appendUpdate("shipping_city", *params.ShippingCity)
	}
	if params.ShippingProvince != nil {
		appendUpdate("shipping_province", *params.ShippingProvince)
	}
	if params.TrackingCode != nil {
		appendUpdate("tracking_code", *params.TrackingCode)
	}
	if params.TrackingCompany != nil {
		appendUpdate("tracking_company", *params.TrackingCompany)
	}
	if params.TrackingBranchAddress != nil {
		appendUpdate("tracking_branch_address", *params.TrackingBranchAddress)
	}
	if params.TrackingAttachmentURL != nil {
		appendUpdate("tracking_attachment_url", *params.TrackingAttachmentURL)
	}

	if len(updates) == 0 {
		return s.GetOrder(ctx, id)
	}

	updates = append(updates, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	query := fmt.Sprintf(`
UPDATE orders
SET %s
WHERE id = $%d
RETURNING `+orderColumns, strings.Join(updates, ", "), argPos)

	var updated Order
	err := s.db.GetContext(ctx, &updated, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Order{}, ErrNotFound
		}
		return Order{}, fmt.Errorf("failed to update order: %w", err)
	}
	return updated, nil
}

const sqlSetConfirmationEmailSent = `
UPDATE orders
SET confirmation_email_sent = TRUE, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

func (s *Store) SetConfirmationEmailSent(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, sqlSetConfirmationEmailSent, id); err != nil {
		return fmt.Errorf("failed to mark confirmation email sent: %w", err)
	}
	return nil
}

const sqlSetShippedEmailSent = `
UPDATE orders
SET shipped_email_sent = TRUE, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

func (s *Store) SetShippedEmailSent(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, sqlSetShippedEmailSent, id); err != nil {
		return fmt.Errorf("failed to mark shipped email sent: %w", err)
	}
	return nil
}

const sqlListOrdersWithPaymentID = `
SELECT ` + orderColumns + `
FROM orders
WHERE payment_id IS NOT NULL AND payment_id != ''
ORDER BY created_at ASC, id ASC
`

// ListOrdersWithPaymentID returns every order that carries a provider payment
// id, for payment backfills.
func (s *Store) ListOrdersWithPaymentID(ctx context.Context) ([]Order, error) {
	orders := []Order{}
	err := s.db.SelectContext(ctx, &orders, sqlListOrdersWithPaymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders with payment id: %w", err)
	}
	return orders, nil
}

// ListOrdersByStatuses returns the orders in any of the given statuses,
// oldest first. The production board works through orders in arrival order.
func (s *Store) ListOrdersByStatuses(ctx context.Context, statuses ...string) ([]Order, error) {
	if len(statuses) == 0 {
		return []Order{}, nil
	}
	placeholders := make([]string, len(statuses))
	args := make([]interface{}, len(statuses))
	for i, status := range statuses {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = status
	}
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status IN (` +
		strings.Join(placeholders, ", ") + `) ORDER BY created_at ASC, id ASC`

	orders := []Order{}
	err := s.db.SelectContext(ctx, &orders, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders by status: %w", err)
	}
	return orders, nil
}

// ListProductionItemRows returns order items joined with order status for
// every order in the given statuses.
func (s *Store) ListProductionItemRows(ctx context.Context, statuses ...string) ([]ProductionItemRow, error) {
	if len(statuses) == 0 {
		return []ProductionItemRow{}, nil
	}
	placeholders := make([]string, len(statuses))
	args := make([]interface{}, len(statuses))
	for i, status := range statuses {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = status
	}
	query := `
SELECT oi.id, o.id AS order_id, o.status, o.production_status, oi.product_name, oi.product_size, oi.quantity
FROM orders o
JOIN order_items oi ON oi.order_id = o.id
WHERE o.status IN (` + strings.Join(placeholders, ", ") + `)
ORDER BY o.created_at ASC, oi.id ASC`

	rows := []ProductionItemRow{}
	err := s.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list production items: %w", err)
	}
	return rows, nil
}

const sqlCountOrdersByStatus = `
SELECT status, COUNT(*) AS count
FROM orders
GROUP BY status
`

func (s *Store) CountOrdersByStatus(ctx context.Context) ([]StatusCount, error) {
	counts := []StatusCount{}
	err := s.db.SelectContext(ctx, &counts, sqlCountOrdersByStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}
	return counts, nil
}

const sqlListPaidOrderTotals = `
SELECT total_amount, created_at
FROM orders
WHERE status = $1
`

// ListPaidOrderTotals returns amount and creation time for every order in
// the given status; revenue windows are computed by the caller.
func (s *Store) ListPaidOrderTotals(ctx context.Context, status string) ([]PaidOrderTotal, error) {
	totals := []PaidOrderTotal{}
	err := s.db.SelectContext(ctx, &totals, sqlListPaidOrderTotals, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list order totals: %w", err)
	}
	return totals, nil
}

const sqlAddProductionEvent = `
INSERT INTO order_production_events (order_id, stage)
VALUES ($1, $2)
RETURNING id, order_id, stage, created_at
`

func (s *Store) AddProductionEvent(ctx context.Context, orderID int64, stage string) (ProductionEvent, error) {
	var event ProductionEvent
	err := s.db.GetContext(ctx, &event, sqlAddProductionEvent, orderID, stage)
	if err != nil {
		return ProductionEvent{}, fmt.Errorf("failed to add production event: %w", err)
	}
	return event, nil
}

const sqlListProductionEvents = `
SELECT id, order_id, stage, created_at
FROM order_production_events
WHERE order_id = $1
ORDER BY id
`

func (s *Store) ListProductionEvents(ctx context.Context, orderID int64) ([]ProductionEvent, error) {
	events := []ProductionEvent{}
	err := s.db.SelectContext(ctx, &events, sqlListProductionEvents, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list production events: %w", err)
	}
	return events, nil
}

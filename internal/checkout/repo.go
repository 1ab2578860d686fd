package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type Repo struct{ DB *pgxpool.Pool }

// SaveOrder persists the order header and its lines in one transaction.
func (r *Repo) SaveOrder(ctx context.Context, o Order, items []OrderItem) error {
	addr, err := json.Marshal(o.Address)
	if err != nil {
		return err
	}

	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO orders(id, number, user_id, status, subtotal, discount, shipping, total,
		                   coupon_code, payment_method, address, placed_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`, o.ID, o.Number, o.UserID, o.Status, o.Subtotal, o.Discount, o.Shipping, o.Total,
		o.CouponCode, o.PaymentMethod, addr, o.PlacedAt)
	if err != nil {
		return err
	}

	for _, it := range items {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items(id, order_id, product_id, name, qty, unit_price)
			VALUES ($1,$2,$3,$4,$5,$6)
		`, it.ID, it.OrderID, it.ProductID, it.Name, it.Qty, it.UnitPrice)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *Repo) GetOrder(ctx context.Context, orderID string) (Order, []OrderItem, error) {
	var o Order
	var addr []byte
	err := r.DB.QueryRow(ctx, `
		SELECT id, number, user_id, status, subtotal, discount, shipping, total,
		       coupon_code, payment_method, address, placed_at
		FROM orders WHERE id=$1
	`, orderID).Scan(&o.ID, &o.Number, &o.UserID, &o.Status, &o.Subtotal, &o.Discount,
		&o.Shipping, &o.Total, &o.CouponCode, &o.PaymentMethod, &addr, &o.PlacedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Order{}, nil, ErrOrderNotFound
		}
		return Order{}, nil, err
	}
	_ = json.Unmarshal(addr, &o.Address)

	items, err := r.listItems(ctx, orderID)
	if err != nil {
		return Order{}, nil, err
	}
	return o, items, nil
}

// ListByUser returns a user's orders, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, number, user_id, status, subtotal, discount, shipping, total,
		       coupon_code, payment_method, address, placed_at
		FROM orders WHERE user_id=$1 ORDER BY placed_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		var addr []byte
		if err := rows.Scan(&o.ID, &o.Number, &o.UserID, &o.Status, &o.Subtotal, &o.Discount,
			&o.Shipping, &o.Total, &o.CouponCode, &o.PaymentMethod, &addr, &o.PlacedAt); err != nil {
			return nil, err
		}
		_ = json.Unmarshal(addr, &o.Address)
		out = append(out, o)
	}
	return out, rows.Err()
}

// UpdateStatus applies a fulfilment transition, enforcing the status
// table. The current status is read and checked inside the transaction.
func (r *Repo) UpdateStatus(ctx context.Context, orderID string, to Status) error {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var from Status
	err = tx.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1 FOR UPDATE`, orderID).Scan(&from)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrOrderNotFound
		}
		return err
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	if _, err := tx.Exec(ctx, `UPDATE orders SET status=$2 WHERE id=$1`, orderID, to); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *Repo) listItems(ctx context.Context, orderID string) ([]OrderItem, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, order_id, product_id, name, qty, unit_price
		FROM order_items WHERE order_id=$1
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OrderItem
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Name, &it.Qty, &it.UnitPrice); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

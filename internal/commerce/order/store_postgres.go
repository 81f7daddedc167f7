// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/herstyle/internal/platform/apperr"
	"github.com/taibuivan/herstyle/internal/platform/database/schema"
	"github.com/taibuivan/herstyle/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the order store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Create inserts the order row and its item snapshots in one transaction.

Description: Delivery info is stored as JSONB. Items are passed as parallel
arrays and unnested in request order.
*/
func (repository *PostgresRepository) Create(ctx context.Context, order *Order) error {
	transaction, err := repository.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres_order_repo_begin_failed: %w", err)
	}
	defer func() { _ = transaction.Rollback(ctx) }()

	orderQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s, %s`,
		schema.CommerceOrder.Table,
		schema.CommerceOrder.ID,
		schema.CommerceOrder.UserID,
		schema.CommerceOrder.TotalAmount,
		schema.CommerceOrder.Status,
		schema.CommerceOrder.PaymentMethod,
		schema.CommerceOrder.DeliveryInfo,
		schema.CommerceOrder.CreatedAt,
		schema.CommerceOrder.UpdatedAt,
	)

	err = transaction.QueryRow(ctx, orderQuery,
		order.ID, order.UserID, order.TotalAmount,
		string(order.Status), string(order.PaymentMethod), order.DeliveryInfo,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, resourceOrder, "postgres_order_repo_create_failed")
	}

	productIDs := make([]string, len(order.Products))
	names := make([]string, len(order.Products))
	prices := make([]float64, len(order.Products))
	images := make([]string, len(order.Products))
	quantities := make([]int32, len(order.Products))
	for i, item := range order.Products {
		productIDs[i], names[i], prices[i] = item.ProductID, item.Name, item.Price
		images[i], quantities[i] = item.Image, int32(item.Quantity)
	}

	itemsQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		SELECT $1, item.position::int - 1, item.productid, item.name, item.price, item.image, item.quantity
		FROM unnest($2::uuid[], $3::text[], $4::numeric[], $5::text[], $6::int[])
			WITH ORDINALITY AS item(productid, name, price, image, quantity, position)`,
		schema.CommerceOrderItem.Table,
		schema.CommerceOrderItem.OrderID,
		schema.CommerceOrderItem.Position,
		schema.CommerceOrderItem.ProductID,
		schema.CommerceOrderItem.Name,
		schema.CommerceOrderItem.Price,
		schema.CommerceOrderItem.Image,
		schema.CommerceOrderItem.Quantity,
	)
	if _, err := transaction.Exec(ctx, itemsQuery, order.ID, productIDs, names, prices, images, quantities); err != nil {
		return dberr.Wrap(err, resourceOrder, "postgres_order_repo_items_failed")
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("postgres_order_repo_commit_failed: %w", err)
	}
	return nil
}

func ordersQuery(condition string) string {
	return fmt.Sprintf(`
		SELECT o.%s, o.%s, COALESCE(a.%s, ''), COALESCE(a.%s, ''), o.%s, o.%s, o.%s, o.%s, o.%s, o.%s
		FROM %s o
		LEFT JOIN %s a ON a.%s = o.%s
		%s
		ORDER BY o.%s DESC, o.%s DESC`,
		schema.CommerceOrder.ID, schema.CommerceOrder.UserID,
		schema.UserAccount.Username, schema.UserAccount.Email,
		schema.CommerceOrder.TotalAmount, schema.CommerceOrder.Status,
		schema.CommerceOrder.PaymentMethod, schema.CommerceOrder.DeliveryInfo,
		schema.CommerceOrder.CreatedAt, schema.CommerceOrder.UpdatedAt,
		schema.CommerceOrder.Table,
		schema.UserAccount.Table, schema.UserAccount.ID, schema.CommerceOrder.UserID,
		condition,
		schema.CommerceOrder.CreatedAt, schema.CommerceOrder.ID,
	)
}

// find loads the orders matching condition and attaches their items.
func (repository *PostgresRepository) find(ctx context.Context, action, condition string, args ...any) ([]*Order, error) {
	rows, err := repository.pool.Query(ctx, ordersQuery(condition), args...)
	if err != nil {
		return nil, dberr.Wrap(err, resourceOrder, action)
	}

	orders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Order, error) {
		order := &Order{Customer: &Customer{}, Products: []Item{}}
		err := row.Scan(
			&order.ID, &order.UserID, &order.Customer.Username, &order.Customer.Email,
			&order.TotalAmount, &order.Status, &order.PaymentMethod, &order.DeliveryInfo,
			&order.CreatedAt, &order.UpdatedAt,
		)
		return order, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, resourceOrder, action)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	if err := repository.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (repository *PostgresRepository) attachItems(ctx context.Context, orders []*Order) error {
	byID := make(map[string]*Order, len(orders))
	ids := make([]string, len(orders))
	for i, order := range orders {
		byID[order.ID] = order
		ids[i] = order.ID
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = ANY($1::uuid[])
		ORDER BY %s, %s`,
		schema.CommerceOrderItem.OrderID, schema.CommerceOrderItem.ProductID,
		schema.CommerceOrderItem.Name, schema.CommerceOrderItem.Price,
		schema.CommerceOrderItem.Image, schema.CommerceOrderItem.Quantity,
		schema.CommerceOrderItem.Table,
		schema.CommerceOrderItem.OrderID,
		schema.CommerceOrderItem.OrderID, schema.CommerceOrderItem.Position,
	)

	rows, err := repository.pool.Query(ctx, query, ids)
	if err != nil {
		return dberr.Wrap(err, resourceOrder, "postgres_order_repo_items_query_failed")
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var item Item
		if err := rows.Scan(&orderID, &item.ProductID, &item.Name, &item.Price, &item.Image, &item.Quantity); err != nil {
			return dberr.Wrap(err, resourceOrder, "postgres_order_repo_items_scan_failed")
		}
		if order, ok := byID[orderID]; ok {
			order.Products = append(order.Products, item)
		}
	}
	if err := rows.Err(); err != nil {
		return dberr.Wrap(err, resourceOrder, "postgres_order_repo_items_query_failed")
	}
	return nil
}

/*
List returns the user's orders, or every order when userID is empty.
*/
func (repository *PostgresRepository) List(ctx context.Context, userID string) ([]*Order, error) {
	if userID == "" {
		return repository.find(ctx, "postgres_order_repo_list_failed", "")
	}
	condition := fmt.Sprintf("WHERE o.%s = $1", schema.CommerceOrder.UserID)
	return repository.find(ctx, "postgres_order_repo_list_failed", condition, userID)
}

/*
UpdateStatus changes the status and reloads the order.
*/
func (repository *PostgresRepository) UpdateStatus(ctx context.Context, id string, status Status) (*Order, error) {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		schema.CommerceOrder.Table,
		schema.CommerceOrder.Status,
		schema.CommerceOrder.UpdatedAt,
		schema.CommerceOrder.ID,
	)

	command, err := repository.pool.Exec(ctx, query, id, string(status))
	if err != nil {
		return nil, dberr.Wrap(err, resourceOrder, "postgres_order_repo_update_status_failed")
	}
	if command.RowsAffected() == 0 {
		return nil, apperr.NotFound(resourceOrder)
	}

	condition := fmt.Sprintf("WHERE o.%s = $1", schema.CommerceOrder.ID)
	orders, err := repository.find(ctx, "postgres_order_repo_reload_failed", condition, id)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, apperr.NotFound(resourceOrder)
	}
	return orders[0], nil
}

/*
Count returns the number of orders.
*/
func (repository *PostgresRepository) Count(ctx context.Context) (int, error) {
	var total int
	query := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.CommerceOrder.Table)
	if err := repository.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, resourceOrder, "postgres_order_repo_count_failed")
	}
	return total, nil
}

// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cart

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/herstyle/internal/platform/database/schema"
	"github.com/taibuivan/herstyle/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the cart store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Items reads the cart with an inner join, which drops lines of deleted products.
*/
func (repository *PostgresRepository) Items(ctx context.Context, userID string) ([]Item, error) {
	query := fmt.Sprintf(`
		SELECT p.%s, p.%s, p.%s, p.%s, c.%s
		FROM %s c
		JOIN %s p ON p.%s = c.%s
		WHERE c.%s = $1
		ORDER BY c.%s`,
		schema.CatalogProduct.ID, schema.CatalogProduct.Name, schema.CatalogProduct.Price,
		schema.CatalogProduct.Image1, schema.CommerceCartItem.Quantity,
		schema.CommerceCartItem.Table,
		schema.CatalogProduct.Table, schema.CatalogProduct.ID, schema.CommerceCartItem.ProductID,
		schema.CommerceCartItem.UserID,
		schema.CommerceCartItem.Position,
	)

	rows, err := repository.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, resourceCart, "postgres_cart_repo_items_failed")
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Item, error) {
		var item Item
		err := row.Scan(&item.ID, &item.Name, &item.Price, &item.Image, &item.Quantity)
		return item, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, resourceCart, "postgres_cart_repo_items_failed")
	}
	return items, nil
}

/*
Replace deletes the stored lines and inserts the new ones.

Description: The lines are passed as parallel arrays and joined with the
catalog inside the INSERT, so unknown product ids never reach the table.
*/
func (repository *PostgresRepository) Replace(ctx context.Context, userID string, lines []Line) error {
	transaction, err := repository.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres_cart_repo_begin_failed: %w", err)
	}
	defer func() { _ = transaction.Rollback(ctx) }()

	if err := clearCart(ctx, transaction, userID); err != nil {
		return err
	}

	if len(lines) > 0 {
		productIDs := make([]string, len(lines))
		quantities := make([]int32, len(lines))
		for i, line := range lines {
			productIDs[i] = line.ProductID
			quantities[i] = int32(line.Quantity)
		}

		insertQuery := fmt.Sprintf(`
			INSERT INTO %[1]s (%[2]s, %[3]s, %[4]s, %[5]s)
			SELECT $1, line.productid, line.quantity, line.position::int
			FROM unnest($2::uuid[], $3::int[]) WITH ORDINALITY AS line(productid, quantity, position)
			JOIN %[6]s p ON p.%[7]s = line.productid`,
			schema.CommerceCartItem.Table,
			schema.CommerceCartItem.UserID,
			schema.CommerceCartItem.ProductID,
			schema.CommerceCartItem.Quantity,
			schema.CommerceCartItem.Position,
			schema.CatalogProduct.Table,
			schema.CatalogProduct.ID,
		)
		if _, err := transaction.Exec(ctx, insertQuery, userID, productIDs, quantities); err != nil {
			return dberr.Wrap(err, resourceCart, "postgres_cart_repo_insert_failed")
		}
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("postgres_cart_repo_commit_failed: %w", err)
	}
	return nil
}

/*
Clear removes every line of the user's cart.
*/
func (repository *PostgresRepository) Clear(ctx context.Context, userID string) error {
	return clearCart(ctx, repository.pool, userID)
}

// executor is satisfied by both [pgxpool.Pool] and [pgx.Tx].
type executor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func clearCart(ctx context.Context, db executor, userID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CommerceCartItem.Table, schema.CommerceCartItem.UserID,
	)
	if _, err := db.Exec(ctx, query, userID); err != nil {
		return dberr.Wrap(err, resourceCart, "postgres_cart_repo_clear_failed")
	}
	return nil
}

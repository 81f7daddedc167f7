// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/herstyle/internal/platform/database/schema"
	"github.com/taibuivan/herstyle/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the review store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Upsert writes the review and recomputes the product rating in one transaction.

Description: The (userid, productid) unique constraint turns a second
submission into an update; xmax = 0 only holds for freshly inserted rows.
*/
func (repository *PostgresRepository) Upsert(ctx context.Context, review *Review) (bool, error) {
	transaction, err := repository.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("postgres_review_repo_begin_failed: %w", err)
	}
	defer func() { _ = transaction.Rollback(ctx) }()

	upsertQuery := fmt.Sprintf(`
		INSERT INTO %[1]s (%[2]s, %[3]s, %[4]s, %[5]s, %[6]s)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (%[4]s, %[3]s) DO UPDATE
		SET %[5]s = EXCLUDED.%[5]s, %[6]s = EXCLUDED.%[6]s, %[7]s = NOW()
		RETURNING %[2]s, %[8]s, %[7]s, (xmax = 0)`,
		schema.CatalogReview.Table,
		schema.CatalogReview.ID,
		schema.CatalogReview.ProductID,
		schema.CatalogReview.UserID,
		schema.CatalogReview.Rating,
		schema.CatalogReview.Comment,
		schema.CatalogReview.UpdatedAt,
		schema.CatalogReview.CreatedAt,
	)

	var created bool
	err = transaction.QueryRow(ctx, upsertQuery,
		review.ID, review.ProductID, review.UserID, review.Rating, review.Comment,
	).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt, &created)
	if err != nil {
		return false, dberr.Wrap(err, resourceProduct, "postgres_review_repo_upsert_failed")
	}

	ratingQuery := fmt.Sprintf(`
		UPDATE %[1]s
		SET %[2]s = COALESCE((SELECT ROUND(AVG(%[4]s)::numeric, 2) FROM %[5]s WHERE %[6]s = $1), 0)
		WHERE %[3]s = $1`,
		schema.CatalogProduct.Table,
		schema.CatalogProduct.Rating,
		schema.CatalogProduct.ID,
		schema.CatalogReview.Rating,
		schema.CatalogReview.Table,
		schema.CatalogReview.ProductID,
	)
	if _, err := transaction.Exec(ctx, ratingQuery, review.ProductID); err != nil {
		return false, dberr.Wrap(err, resourceProduct, "postgres_review_repo_rating_failed")
	}

	if err := transaction.Commit(ctx); err != nil {
		return false, fmt.Errorf("postgres_review_repo_commit_failed: %w", err)
	}
	return created, nil
}

// listQuery selects reviews joined with their author's username, filtered on column.
func listQuery(column string) string {
	return fmt.Sprintf(`
		SELECT r.%s, r.%s, r.%s, COALESCE(a.%s, ''), r.%s, r.%s, r.%s, r.%s
		FROM %s r
		LEFT JOIN %s a ON a.%s = r.%s
		WHERE r.%s = $1
		ORDER BY r.%s DESC, r.%s DESC`,
		schema.CatalogReview.ID, schema.CatalogReview.ProductID, schema.CatalogReview.UserID,
		schema.UserAccount.Username,
		schema.CatalogReview.Rating, schema.CatalogReview.Comment,
		schema.CatalogReview.CreatedAt, schema.CatalogReview.UpdatedAt,
		schema.CatalogReview.Table,
		schema.UserAccount.Table, schema.UserAccount.ID, schema.CatalogReview.UserID,
		column,
		schema.CatalogReview.CreatedAt, schema.CatalogReview.ID,
	)
}

func (repository *PostgresRepository) list(ctx context.Context, column, value, action string) ([]*Review, error) {
	rows, err := repository.pool.Query(ctx, listQuery(column), value)
	if err != nil {
		return nil, dberr.Wrap(err, resourceReview, action)
	}

	reviews, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Review, error) {
		review := &Review{}
		err := row.Scan(
			&review.ID, &review.ProductID, &review.UserID, &review.Username,
			&review.Rating, &review.Comment, &review.CreatedAt, &review.UpdatedAt,
		)
		return review, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, resourceReview, action)
	}
	return reviews, nil
}

/*
ListByProduct returns a product's reviews, newest first.
*/
func (repository *PostgresRepository) ListByProduct(ctx context.Context, productID string) ([]*Review, error) {
	return repository.list(ctx, schema.CatalogReview.ProductID, productID, "postgres_review_repo_list_by_product_failed")
}

/*
ListByUser returns a user's reviews, newest first.
*/
func (repository *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*Review, error) {
	return repository.list(ctx, schema.CatalogReview.UserID, userID, "postgres_review_repo_list_by_user_failed")
}

/*
Count returns the number of reviews.
*/
func (repository *PostgresRepository) Count(ctx context.Context) (int, error) {
	var total int
	query := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.CatalogReview.Table)
	if err := repository.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, resourceReview, "postgres_review_repo_count_failed")
	}
	return total, nil
}

// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/herstyle/internal/platform/apperr"
	"github.com/taibuivan/herstyle/internal/platform/database/schema"
	"github.com/taibuivan/herstyle/internal/platform/dberr"
	"github.com/taibuivan/herstyle/pkg/pagination"
)

var productColumns = strings.Join(schema.CatalogProduct.Columns(), ", ")

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the catalog store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func scanProduct(row pgx.Row) (*Product, error) {
	product := &Product{}
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Description,
		&product.Price,
		&product.OldPrice,
		&product.Image1,
		&product.Color,
		&product.Rating,
		&product.AuthorID,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func collectProducts(rows pgx.Rows, action string) ([]*Product, error) {
	defer rows.Close()

	products := make([]*Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, dberr.Wrap(err, resourceProduct, action)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, resourceProduct, action)
	}
	return products, nil
}

// likeContains builds an ILIKE pattern matching term anywhere, with wildcards in term escaped.
func likeContains(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
	return "%" + escaped + "%"
}

// whereClause accumulates SQL predicates with positional arguments.
type whereClause struct {
	conditions []string
	args       []any
}

func (clause *whereClause) add(format string, value any) {
	clause.args = append(clause.args, value)
	clause.conditions = append(clause.conditions, fmt.Sprintf(format, len(clause.args)))
}

func (clause *whereClause) String() string {
	if len(clause.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(clause.conditions, " AND ")
}

/*
List retrieves a filtered, optionally paginated slice of the catalog.
*/
func (repository *PostgresRepository) List(ctx context.Context, filter Filter, page *pagination.Params) ([]*Product, int, error) {
	where := &whereClause{}
	if filter.Category != "" {
		where.add("lower("+schema.CatalogProduct.Category+") = lower($%d)", filter.Category)
	}
	if filter.Color != "" {
		where.add("lower("+schema.CatalogProduct.Color+") = lower($%d)", filter.Color)
	}
	if filter.MinPrice != nil {
		where.add(schema.CatalogProduct.Price+" >= $%d", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		where.add(schema.CatalogProduct.Price+" <= $%d", *filter.MaxPrice)
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s %s`, schema.CatalogProduct.Table, where)

	var total int
	if err := repository.pool.QueryRow(ctx, countQuery, where.args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, resourceProduct, "postgres_product_repo_count_failed")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY %s DESC, %s DESC`,
		productColumns, schema.CatalogProduct.Table, where,
		schema.CatalogProduct.CreatedAt, schema.CatalogProduct.ID,
	)

	args := where.args
	if page != nil {
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
		args = append(args, page.Limit, page.Offset())
	}

	rows, err := repository.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceProduct, "postgres_product_repo_list_failed")
	}

	products, err := collectProducts(rows, "postgres_product_repo_list_scan_failed")
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

/*
FindByID retrieves one product by its primary key.
*/
func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		productColumns, schema.CatalogProduct.Table, schema.CatalogProduct.ID,
	)

	product, err := scanProduct(repository.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceProduct, "postgres_product_repo_find_failed")
	}
	return product, nil
}

/*
Search performs a case-insensitive substring match on product names.
*/
func (repository *PostgresRepository) Search(ctx context.Context, term string, limit int) ([]*Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s ILIKE $1
		ORDER BY %s DESC, %s DESC
		LIMIT $2`,
		productColumns, schema.CatalogProduct.Table,
		schema.CatalogProduct.Name,
		schema.CatalogProduct.CreatedAt, schema.CatalogProduct.ID,
	)

	rows, err := repository.pool.Query(ctx, query, likeContains(term), limit)
	if err != nil {
		return nil, dberr.Wrap(err, resourceProduct, "postgres_product_repo_search_failed")
	}
	return collectProducts(rows, "postgres_product_repo_search_scan_failed")
}

/*
Related finds products sharing a name word or the category of source.
*/
func (repository *PostgresRepository) Related(ctx context.Context, source *Product, words []string, limit int) ([]*Product, error) {
	patterns := make([]string, len(words))
	for index, word := range words {
		patterns[index] = likeContains(word)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s <> $1
		  AND (%s ILIKE ANY($2::text[]) OR ($3::text <> '' AND lower(%s) = lower($3::text)))
		ORDER BY %s DESC, %s DESC
		LIMIT $4`,
		productColumns, schema.CatalogProduct.Table,
		schema.CatalogProduct.ID,
		schema.CatalogProduct.Name, schema.CatalogProduct.Category,
		schema.CatalogProduct.CreatedAt, schema.CatalogProduct.ID,
	)

	rows, err := repository.pool.Query(ctx, query, source.ID, patterns, source.Category, limit)
	if err != nil {
		return nil, dberr.Wrap(err, resourceProduct, "postgres_product_repo_related_failed")
	}
	return collectProducts(rows, "postgres_product_repo_related_scan_failed")
}

/*
Create persists a new catalog entry.
*/
func (repository *PostgresRepository) Create(ctx context.Context, product *Product) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s, %s, %s`,
		schema.CatalogProduct.Table,
		schema.CatalogProduct.ID, schema.CatalogProduct.Name, schema.CatalogProduct.Category,
		schema.CatalogProduct.Description, schema.CatalogProduct.Price, schema.CatalogProduct.OldPrice,
		schema.CatalogProduct.Image1, schema.CatalogProduct.Color, schema.CatalogProduct.AuthorID,
		schema.CatalogProduct.Rating, schema.CatalogProduct.CreatedAt, schema.CatalogProduct.UpdatedAt,
	)

	err := repository.pool.QueryRow(ctx, query,
		product.ID,
		product.Name,
		product.Category,
		product.Description,
		product.Price,
		product.OldPrice,
		product.Image1,
		product.Color,
		product.AuthorID,
	).Scan(&product.Rating, &product.CreatedAt, &product.UpdatedAt)

	if err != nil {
		return fmt.Errorf("postgres_product_repo_create_failed: %w", err)
	}
	return nil
}

/*
Update writes back every mutable column of product.
*/
func (repository *PostgresRepository) Update(ctx context.Context, product *Product) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s`,
		schema.CatalogProduct.Table,
		schema.CatalogProduct.Name, schema.CatalogProduct.Category, schema.CatalogProduct.Description,
		schema.CatalogProduct.Price, schema.CatalogProduct.OldPrice, schema.CatalogProduct.Image1,
		schema.CatalogProduct.Color, schema.CatalogProduct.UpdatedAt,
		schema.CatalogProduct.ID,
		schema.CatalogProduct.Rating, schema.CatalogProduct.UpdatedAt,
	)

	err := repository.pool.QueryRow(ctx, query,
		product.ID,
		product.Name,
		product.Category,
		product.Description,
		product.Price,
		product.OldPrice,
		product.Image1,
		product.Color,
	).Scan(&product.Rating, &product.UpdatedAt)

	return dberr.Wrap(err, resourceProduct, "postgres_product_repo_update_failed")
}

/*
Delete removes a product and its reviews atomically.

Description: Cart lines referencing the product are dropped by the foreign key
cascade; order items are snapshots and survive.
*/
func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	transaction, err := repository.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres_product_repo_begin_failed: %w", err)
	}
	defer func() { _ = transaction.Rollback(ctx) }()

	reviewsQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogReview.Table, schema.CatalogReview.ProductID,
	)
	if _, err := transaction.Exec(ctx, reviewsQuery, id); err != nil {
		return dberr.Wrap(err, resourceProduct, "postgres_product_repo_delete_reviews_failed")
	}

	productQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogProduct.Table, schema.CatalogProduct.ID,
	)
	command, err := transaction.Exec(ctx, productQuery, id)
	if err != nil {
		return dberr.Wrap(err, resourceProduct, "postgres_product_repo_delete_failed")
	}
	if command.RowsAffected() == 0 {
		return apperr.NotFound(resourceProduct)
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("postgres_product_repo_commit_failed: %w", err)
	}
	return nil
}

/*
Count returns the number of catalog entries.
*/
func (repository *PostgresRepository) Count(ctx context.Context) (int, error) {
	var total int
	query := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.CatalogProduct.Table)
	if err := repository.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, resourceProduct, "postgres_product_repo_total_failed")
	}
	return total, nil
}

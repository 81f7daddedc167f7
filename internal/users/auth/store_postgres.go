// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/herstyle/internal/platform/apperr"
	"github.com/taibuivan/herstyle/internal/platform/database/schema"
	"github.com/taibuivan/herstyle/internal/platform/dberr"
	"github.com/taibuivan/herstyle/internal/platform/sec"
	"github.com/taibuivan/herstyle/pkg/pagination"
)

const resourceUser = "User"

// userColumns is the projection shared by every account read.
var userColumns = strings.Join(schema.UserAccount.Columns(), ", ")

// # User Repository

// PostgresUserRepository implements the UserRepository interface using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// scanUser hydrates a [User] in [schema.UserAccountTable.Columns] order.
func scanUser(row pgx.Row) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Username,
		&user.Bio,
		&user.Profession,
		&user.ProfileImage,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

/*
FindByID retrieves an account by its primary key.

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		userColumns, schema.UserAccount.Table, schema.UserAccount.ID,
	)

	user, err := scanUser(repository.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceUser, "postgres_user_repo_find_by_id_failed")
	}
	return user, nil
}

/*
FindByEmail retrieves an account by its unique, lower-cased email address.
*/
func (repository *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		userColumns, schema.UserAccount.Table, schema.UserAccount.Email,
	)

	user, err := scanUser(repository.pool.QueryRow(ctx, query, email))
	if err != nil {
		return nil, dberr.Wrap(err, resourceUser, "postgres_user_repo_find_by_email_failed")
	}
	return user, nil
}

/*
Create persists a new account into the users.account table.

Description: Timestamps are assigned by the database and written back to the entity.

Returns:
  - error: apperr.Conflict when the email is already registered
*/
func (repository *PostgresUserRepository) Create(ctx context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s, %s`,
		schema.UserAccount.Table,
		schema.UserAccount.ID, schema.UserAccount.Email, schema.UserAccount.Password, schema.UserAccount.Role,
		schema.UserAccount.Username, schema.UserAccount.Bio, schema.UserAccount.Profession, schema.UserAccount.ProfileImage,
		schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
	)

	err := repository.pool.QueryRow(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.Username,
		user.Bio,
		user.Profession,
		user.ProfileImage,
	).Scan(&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict("Email is already registered").WithCause(err)
		}
		return fmt.Errorf("postgres_user_repo_create_failed: %w", err)
	}

	return nil
}

/*
Update persists the mutable profile fields of an account.
*/
func (repository *PostgresUserRepository) Update(ctx context.Context, user *User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
		RETURNING %s`,
		schema.UserAccount.Table,
		schema.UserAccount.Username, schema.UserAccount.Bio, schema.UserAccount.Profession,
		schema.UserAccount.ProfileImage, schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID,
		schema.UserAccount.UpdatedAt,
	)

	err := repository.pool.QueryRow(ctx, query,
		user.ID, user.Username, user.Bio, user.Profession, user.ProfileImage,
	).Scan(&user.UpdatedAt)

	return dberr.Wrap(err, resourceUser, "postgres_user_repo_update_failed")
}

/*
UpdateRole changes the role of an account.

Returns:
  - *User: The account after the change
  - error: apperr.NotFound when the account does not exist
*/
func (repository *PostgresUserRepository) UpdateRole(ctx context.Context, id string, role sec.UserRole) (*User, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = NOW()
		WHERE %s = $1
		RETURNING %s`,
		schema.UserAccount.Table, schema.UserAccount.Role, schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID,
		userColumns,
	)

	user, err := scanUser(repository.pool.QueryRow(ctx, query, id, role))
	if err != nil {
		return nil, dberr.Wrap(err, resourceUser, "postgres_user_repo_update_role_failed")
	}
	return user, nil
}

/*
Delete removes an account. Cart and orders go with it (ON DELETE CASCADE).

Description: The account's reviews are deleted explicitly so the ratings of
the products they touched can be recomputed in the same transaction.
*/
func (repository *PostgresUserRepository) Delete(ctx context.Context, id string) error {
	transaction, err := repository.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres_user_repo_begin_failed: %w", err)
	}
	defer func() { _ = transaction.Rollback(ctx) }()

	reviewsQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 RETURNING %s`,
		schema.CatalogReview.Table, schema.CatalogReview.UserID, schema.CatalogReview.ProductID,
	)
	rows, err := transaction.Query(ctx, reviewsQuery, id)
	if err != nil {
		return dberr.Wrap(err, resourceUser, "postgres_user_repo_delete_reviews_failed")
	}
	reviewed, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return dberr.Wrap(err, resourceUser, "postgres_user_repo_delete_reviews_failed")
	}

	accountQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.UserAccount.Table, schema.UserAccount.ID)
	command, err := transaction.Exec(ctx, accountQuery, id)
	if err != nil {
		return dberr.Wrap(err, resourceUser, "postgres_user_repo_delete_failed")
	}
	if command.RowsAffected() == 0 {
		return apperr.NotFound(resourceUser)
	}

	if len(reviewed) > 0 {
		ratingQuery := fmt.Sprintf(`
			UPDATE %[1]s AS product
			SET %[2]s = COALESCE((
				SELECT ROUND(AVG(review.%[4]s)::numeric, 2) FROM %[5]s AS review
				WHERE review.%[6]s = product.%[3]s
			), 0)
			WHERE product.%[3]s = ANY($1::uuid[])`,
			schema.CatalogProduct.Table,
			schema.CatalogProduct.Rating,
			schema.CatalogProduct.ID,
			schema.CatalogReview.Rating,
			schema.CatalogReview.Table,
			schema.CatalogReview.ProductID,
		)
		if _, err := transaction.Exec(ctx, ratingQuery, reviewed); err != nil {
			return fmt.Errorf("postgres_user_repo_rating_failed: %w", err)
		}
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("postgres_user_repo_commit_failed: %w", err)
	}
	return nil
}

/*
List returns accounts newest first. A nil page returns every account.

Returns:
  - []*User: The requested accounts
  - int: Total number of accounts
*/
func (repository *PostgresUserRepository) List(ctx context.Context, page *pagination.Params) ([]*User, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.UserAccount.Table)

	var total int
	if err := repository.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, resourceUser, "postgres_user_repo_count_failed")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC, %s DESC`,
		userColumns, schema.UserAccount.Table,
		schema.UserAccount.CreatedAt, schema.UserAccount.ID,
	)

	var args []any
	if page != nil {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, page.Limit, page.Offset())
	}

	rows, err := repository.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceUser, "postgres_user_repo_list_failed")
	}
	defer rows.Close()

	users := make([]*User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, resourceUser, "postgres_user_repo_scan_failed")
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, resourceUser, "postgres_user_repo_rows_failed")
	}

	return users, total, nil
}

/*
CountByRole aggregates accounts per role for the admin dashboard.
*/
func (repository *PostgresUserRepository) CountByRole(ctx context.Context) (map[sec.UserRole]int, error) {
	query := fmt.Sprintf(`SELECT %s, count(*) FROM %s GROUP BY %s`,
		schema.UserAccount.Role, schema.UserAccount.Table, schema.UserAccount.Role,
	)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, resourceUser, "postgres_user_repo_count_by_role_failed")
	}
	defer rows.Close()

	counts := map[sec.UserRole]int{sec.RoleUser: 0, sec.RoleAdmin: 0}
	for rows.Next() {
		var role sec.UserRole
		var count int
		if err := rows.Scan(&role, &count); err != nil {
			return nil, dberr.Wrap(err, resourceUser, "postgres_user_repo_count_scan_failed")
		}
		counts[role] = count
	}

	return counts, rows.Err()
}

// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"

	"github.com/taibuivan/herstyle/pkg/pagination"
)

// Repository defines the data access contract for the catalog.
type Repository interface {

	/*
		List returns products matching filter, newest first, plus the total match count.

		A nil page returns every match.
	*/
	List(ctx context.Context, filter Filter, page *pagination.Params) ([]*Product, int, error)

	/*
		FindByID returns a single product or apperr.NotFound.
	*/
	FindByID(ctx context.Context, id string) (*Product, error)

	/*
		Search returns up to limit products whose name contains term, case-insensitively.
	*/
	Search(ctx context.Context, term string, limit int) ([]*Product, error)

	/*
		Related returns up to limit products other than source whose name contains
		any of words, or whose category equals source's category.
	*/
	Related(ctx context.Context, source *Product, words []string, limit int) ([]*Product, error)

	/*
		Create persists a new product; timestamps are written back.
	*/
	Create(ctx context.Context, product *Product) error

	/*
		Update persists every mutable field of product.
	*/
	Update(ctx context.Context, product *Product) error

	/*
		Delete removes the product together with its reviews in one transaction.
	*/
	Delete(ctx context.Context, id string) error

	/*
		Count returns the number of catalog entries.
	*/
	Count(ctx context.Context) (int, error)
}

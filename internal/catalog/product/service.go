// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/herstyle/internal/platform/constants"
	"github.com/taibuivan/herstyle/internal/platform/ctxutil"
	"github.com/taibuivan/herstyle/internal/platform/validate"
	"github.com/taibuivan/herstyle/pkg/pagination"
	"github.com/taibuivan/herstyle/pkg/pointer"
	"github.com/taibuivan/herstyle/pkg/slice"
	"github.com/taibuivan/herstyle/pkg/uuid"
)

// Service implements the catalog use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// # Queries

/*
List returns one page of matching products.

Description: Category and color filters equal to "all" (any case) or blank are
ignored. When everything is true the page is ignored and every match is returned.
*/
func (service *Service) List(ctx context.Context, filter Filter, page pagination.Params, everything bool) ([]*Product, pagination.Meta, error) {
	filter.Category = normalizeFacet(filter.Category)
	filter.Color = normalizeFacet(filter.Color)

	var window *pagination.Params
	if !everything {
		window = &page
	}

	products, total, err := service.repository.List(ctx, filter, window)
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("product_service_list_failed: %w", err)
	}

	if everything {
		return products, pagination.NewMeta(pagination.DefaultPage, max(total, 1), total), nil
	}
	return products, pagination.NewMeta(page.Page, page.Limit, total), nil
}

func normalizeFacet(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, filterAll) {
		return ""
	}
	return value
}

/*
Get returns a product by ID.

Returns:
  - error: ValidationError for a malformed ID, NotFound when absent
*/
func (service *Service) Get(ctx context.Context, id string) (*Product, error) {
	validator := &validate.Validator{}
	if err := validator.UUID(FieldID, id).Err(); err != nil {
		return nil, err
	}
	return service.repository.FindByID(ctx, id)
}

/*
Search matches product names case-insensitively. A blank term yields no results.
*/
func (service *Service) Search(ctx context.Context, term string) ([]*Product, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []*Product{}, nil
	}

	products, err := service.repository.Search(ctx, term, SearchResultsLimit)
	if err != nil {
		return nil, fmt.Errorf("product_service_search_failed: %w", err)
	}
	return products, nil
}

/*
Related returns products similar to the given one.

Description: A product is related when its name contains any word (two or more
characters) of the source name, or when it shares the source category.
*/
func (service *Service) Related(ctx context.Context, id string) ([]*Product, error) {
	source, err := service.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	products, err := service.repository.Related(ctx, source, nameWords(source.Name), constants.RelatedProductsLimit)
	if err != nil {
		return nil, fmt.Errorf("product_service_related_failed: %w", err)
	}
	return products, nil
}

// nameWords extracts the distinct lower-cased words of name longer than one character.
func nameWords(name string) []string {
	words := strings.Fields(strings.ToLower(name))
	words = slice.Filter(words, func(word string) bool { return utf8.RuneCountInString(word) > 1 })
	return slice.Unique(words)
}

// Count returns the catalog size.
func (service *Service) Count(ctx context.Context) (int, error) {
	return service.repository.Count(ctx)
}

// # Commands

/*
Create lists a new product authored by authorID.

Returns:
  - *Product: Persisted entity
  - error: ValidationError when name, price or image1 are unusable
*/
func (service *Service) Create(ctx context.Context, authorID string, input CreateInput) (*Product, error) {
	product := &Product{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Category:    strings.TrimSpace(input.Category),
		Description: input.Description,
		Price:       input.Price,
		OldPrice:    input.OldPrice,
		Image1:      strings.TrimSpace(input.Image1),
		Color:       strings.TrimSpace(input.Color),
	}
	if uuid.IsValid(authorID) {
		product.AuthorID = &authorID
	}

	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := service.repository.Create(ctx, product); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "product_created",
		slog.String("product_id", product.ID),
		slog.String("author_id", authorID),
	)
	return product, nil
}

/*
Update applies a partial edit.

Description: The merged entity is validated as a whole, so an edit can never
leave a product without a name, price or image.
*/
func (service *Service) Update(ctx context.Context, id string, input UpdateInput) (*Product, error) {
	product, err := service.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	pointer.Apply(&product.Name, trimmed(input.Name))
	pointer.Apply(&product.Category, trimmed(input.Category))
	pointer.Apply(&product.Description, input.Description)
	pointer.Apply(&product.Price, input.Price)
	pointer.Apply(&product.Image1, trimmed(input.Image1))
	pointer.Apply(&product.Color, trimmed(input.Color))
	if input.OldPrice != nil {
		product.OldPrice = input.OldPrice
	}

	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := service.repository.Update(ctx, product); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "product_updated", slog.String("product_id", id))
	return product, nil
}

/*
Delete removes a product and its reviews.
*/
func (service *Service) Delete(ctx context.Context, id string) error {
	validator := &validate.Validator{}
	if err := validator.UUID(FieldID, id).Err(); err != nil {
		return err
	}

	if err := service.repository.Delete(ctx, id); err != nil {
		return err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "product_deleted", slog.String("product_id", id))
	return nil
}

func validateProduct(product *Product) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, product.Name).
		MaxLen(FieldName, product.Name, NameMaxLength).
		Positive(FieldPrice, product.Price).
		Required(FieldImage1, product.Image1)

	if product.OldPrice != nil {
		validator.NonNegative(FieldOldPrice, *product.OldPrice)
	}

	return validator.Err()
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	return pointer.To(strings.TrimSpace(*value))
}

// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package product_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/herstyle/internal/catalog/product"
	"github.com/taibuivan/herstyle/internal/platform/apperr"
	"github.com/taibuivan/herstyle/internal/platform/database/dbtest"
	"github.com/taibuivan/herstyle/pkg/pagination"
	"github.com/taibuivan/herstyle/pkg/pointer"
	"github.com/taibuivan/herstyle/pkg/uuid"
)

func TestPostgresRepository(t *testing.T) {
	ctx := context.Background()
	repo := product.NewPostgresRepository(dbtest.Start(t))

	catalog := []*product.Product{
		{ID: uuid.New(), Name: "Linen Dress", Category: "Dresses", Color: "White", Price: 79.5, Image1: "dress.jpg"},
		{ID: uuid.New(), Name: "Wrap Dress 100%", Category: "Dresses", Color: "Red", Price: 120, Image1: "wrap.jpg"},
		{ID: uuid.New(), Name: "Silk Scarf", Category: "Accessories", Color: "Red", Price: 25, OldPrice: pointer.To(40.0), Image1: "scarf.jpg"},
	}
	for _, entry := range catalog {
		require.NoError(t, repo.Create(ctx, entry))
		assert.Zero(t, entry.Rating)
	}

	t.Run("list_filters", func(t *testing.T) {
		dresses, total, err := repo.List(ctx, product.Filter{Category: "dresses"}, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, dresses, 2)

		red, total, err := repo.List(ctx, product.Filter{Color: "red", MaxPrice: pointer.To(100.0)}, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, red, 1)
		assert.Equal(t, "Silk Scarf", red[0].Name)
		assert.InDelta(t, 40.0, *red[0].OldPrice, 0.001)

		page, total, err := repo.List(ctx, product.Filter{}, &pagination.Params{Page: 2, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, page, 1)
		assert.Equal(t, "Linen Dress", page[0].Name, "oldest entry on the last page")
	})

	t.Run("search_escapes_wildcards", func(t *testing.T) {
		found, err := repo.Search(ctx, "100%", 10)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Wrap Dress 100%", found[0].Name)

		found, err = repo.Search(ctx, "DRESS", 10)
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("related", func(t *testing.T) {
		related, err := repo.Related(ctx, catalog[0], []string{"dress"}, 10)
		require.NoError(t, err)
		require.Len(t, related, 1)
		assert.Equal(t, catalog[1].ID, related[0].ID)
	})

	t.Run("update_and_delete", func(t *testing.T) {
		scarf := catalog[2]
		scarf.Price = 30
		require.NoError(t, repo.Update(ctx, scarf))

		stored, err := repo.FindByID(ctx, scarf.ID)
		require.NoError(t, err)
		assert.InDelta(t, 30.0, stored.Price, 0.001)

		require.NoError(t, repo.Delete(ctx, scarf.ID))
		_, err = repo.FindByID(ctx, scarf.ID)
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
		assert.True(t, apperr.HasCode(repo.Delete(ctx, scarf.ID), apperr.CodeNotFound))

		total, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})
}

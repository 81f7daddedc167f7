// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package cart_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/herstyle/internal/catalog/product"
	"github.com/taibuivan/herstyle/internal/commerce/cart"
	"github.com/taibuivan/herstyle/internal/platform/database/dbtest"
	"github.com/taibuivan/herstyle/internal/platform/sec"
	"github.com/taibuivan/herstyle/internal/users/auth"
	"github.com/taibuivan/herstyle/pkg/uuid"
)

func TestPostgresRepository(t *testing.T) {
	ctx := context.Background()
	pool := dbtest.Start(t)

	products := product.NewPostgresRepository(pool)
	repo := cart.NewPostgresRepository(pool)

	shopper := &auth.User{ID: uuid.New(), Email: "mai@herstyle.app", PasswordHash: "hash", Role: sec.RoleUser, Username: "mai"}
	require.NoError(t, auth.NewUserRepository(pool).Create(ctx, shopper))

	dress := &product.Product{ID: uuid.New(), Name: "Linen Dress", Price: 79.5, Image1: "dress.jpg"}
	scarf := &product.Product{ID: uuid.New(), Name: "Silk Scarf", Price: 25, Image1: "scarf.jpg"}
	require.NoError(t, products.Create(ctx, dress))
	require.NoError(t, products.Create(ctx, scarf))

	require.NoError(t, repo.Replace(ctx, shopper.ID, []cart.Line{
		{ProductID: scarf.ID, Quantity: 2},
		{ProductID: uuid.New(), Quantity: 1},
		{ProductID: dress.ID, Quantity: 1},
	}))

	items, err := repo.Items(ctx, shopper.ID)
	require.NoError(t, err)
	assert.Equal(t, []cart.Item{
		{ID: scarf.ID, Name: "Silk Scarf", Price: 25, Image: "scarf.jpg", Quantity: 2},
		{ID: dress.ID, Name: "Linen Dress", Price: 79.5, Image: "dress.jpg", Quantity: 1},
	}, items)

	require.NoError(t, products.Delete(ctx, scarf.ID))
	items, err = repo.Items(ctx, shopper.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, dress.ID, items[0].ID)

	require.NoError(t, repo.Replace(ctx, shopper.ID, nil))
	items, err = repo.Items(ctx, shopper.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, repo.Clear(ctx, shopper.ID))
}

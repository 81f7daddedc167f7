// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package order_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/herstyle/internal/commerce/order"
	"github.com/taibuivan/herstyle/internal/platform/apperr"
	"github.com/taibuivan/herstyle/internal/platform/database/dbtest"
	"github.com/taibuivan/herstyle/internal/platform/sec"
	"github.com/taibuivan/herstyle/internal/users/auth"
	"github.com/taibuivan/herstyle/pkg/uuid"
)

func TestPostgresRepository(t *testing.T) {
	ctx := context.Background()
	pool := dbtest.Start(t)

	users := auth.NewUserRepository(pool)
	mai := &auth.User{ID: uuid.New(), Email: "mai@herstyle.app", PasswordHash: "hash", Role: sec.RoleUser, Username: "mai"}
	lan := &auth.User{ID: uuid.New(), Email: "lan@herstyle.app", PasswordHash: "hash", Role: sec.RoleUser, Username: "lan"}
	require.NoError(t, users.Create(ctx, mai))
	require.NoError(t, users.Create(ctx, lan))

	repo := order.NewPostgresRepository(pool)
	service := order.NewService(repo)

	first, err := service.Create(ctx, mai.ID, checkout())
	require.NoError(t, err)

	input := checkout()
	input.Products = append(input.Products, order.Item{ProductID: uuid.New(), Name: "Silk Scarf", Price: 25, Quantity: 1})
	second, err := service.Create(ctx, lan.ID, input)
	require.NoError(t, err)

	t.Run("list_scopes_and_items", func(t *testing.T) {
		own, err := repo.List(ctx, mai.ID)
		require.NoError(t, err)
		require.Len(t, own, 1)
		assert.Equal(t, first.ID, own[0].ID)
		assert.Equal(t, "mai", own[0].Customer.Username)
		assert.Equal(t, "Hue", own[0].DeliveryInfo.Address.City)
		assert.Equal(t, order.PaymentCOD, own[0].PaymentMethod)
		require.Len(t, own[0].Products, 1)
		assert.Equal(t, 2, own[0].Products[0].Quantity)

		all, err := repo.List(ctx, "")
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, second.ID, all[0].ID)
		require.Len(t, all[0].Products, 2)
		assert.Equal(t, "Silk Scarf", all[0].Products[1].Name, "items keep request order")
	})

	t.Run("update_status", func(t *testing.T) {
		updated, err := repo.UpdateStatus(ctx, first.ID, order.StatusDelivered)
		require.NoError(t, err)
		assert.Equal(t, order.StatusDelivered, updated.Status)
		assert.Len(t, updated.Products, 1)

		_, err = repo.UpdateStatus(ctx, uuid.New(), order.StatusShipped)
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	})

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/herstyle/internal/platform/sec"
	"github.com/taibuivan/herstyle/internal/users/auth"
)

// Counter reports the size of one collection.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// RoleCounter reports the number of accounts per role.
type RoleCounter interface {
	CountByRole(ctx context.Context) (map[sec.UserRole]int, error)
}

// Dashboard gathers the admin overview from the domain stores. It implements
// [auth.DashboardReader].
type Dashboard struct {
	users    RoleCounter
	products Counter
	orders   Counter
	reviews  Counter
}

// NewDashboard constructs a [Dashboard].
func NewDashboard(users RoleCounter, products, orders, reviews Counter) *Dashboard {
	return &Dashboard{users: users, products: products, orders: orders, reviews: reviews}
}

var _ auth.DashboardReader = (*Dashboard)(nil)

/*
Dashboard runs every count concurrently. The first failure cancels the rest.
*/
func (d *Dashboard) Dashboard(ctx context.Context) (*auth.Dashboard, error) {
	group, ctx := errgroup.WithContext(ctx)
	overview := &auth.Dashboard{}

	group.Go(func() error {
		byRole, err := d.users.CountByRole(ctx)
		if err != nil {
			return fmt.Errorf("dashboard_users_failed: %w", err)
		}
		for _, count := range byRole {
			overview.Users += count
		}
		overview.Admins = byRole[sec.RoleAdmin]
		return nil
	})

	count := func(name string, counter Counter, target *int) {
		group.Go(func() error {
			total, err := counter.Count(ctx)
			if err != nil {
				return fmt.Errorf("dashboard_%s_failed: %w", name, err)
			}
			*target = total
			return nil
		})
	}
	count("products", d.products, &overview.Products)
	count("orders", d.orders, &overview.Orders)
	count("reviews", d.reviews, &overview.Reviews)

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return overview, nil
}

package store

import (
	"context"
	"database/sql"
	"fmt"

	brandforgeerrors "github.com/forgeline/brandforge/pkg/errors"
)

// DefaultPlans is the built-in plan catalog used to seed a fresh
// replica before the first sync against the hosted store.
func DefaultPlans() []Plan {
	return []Plan{
		{ID: "free", Name: "Free", MonthlyCredits: 10, PriceCents: 0},
		{ID: "pro", Name: "Pro", MonthlyCredits: 200, PriceCents: 2900},
		{ID: "scale", Name: "Scale", MonthlyCredits: 1000, PriceCents: 9900},
	}
}

// ListPlans returns all subscription tiers, cheapest first.
func (s *Store) ListPlans(ctx context.Context) ([]Plan, error) {
	var plans []Plan
	err := s.dbConn.SelectContext(ctx, &plans,
		`SELECT id, name, monthly_credits, price_cents FROM plans ORDER BY price_cents ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	return plans, nil
}

// GetPlan returns a single plan by id.
func (s *Store) GetPlan(ctx context.Context, id string) (Plan, error) {
	var plan Plan
	err := s.dbConn.GetContext(ctx, &plan,
		`SELECT id, name, monthly_credits, price_cents FROM plans WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return Plan{}, brandforgeerrors.NewNotFoundError("plan", id)
	}
	if err != nil {
		return Plan{}, fmt.Errorf("getting plan %s: %w", id, err)
	}
	return plan, nil
}

// SeedPlans inserts plans that are not present yet. Existing rows are
// left untouched so local price edits survive restarts.
func (s *Store) SeedPlans(ctx context.Context, plans []Plan) error {
	for _, p := range plans {
		_, err := s.dbConn.ExecContext(ctx,
			`INSERT INTO plans (id, name, monthly_credits, price_cents)
			 VALUES (?, ?, ?, ?) ON CONFLICT (id) DO NOTHING`,
			p.ID, p.Name, p.MonthlyCredits, p.PriceCents)
		if err != nil {
			return fmt.Errorf("seeding plan %s: %w", p.ID, err)
		}
	}
	return nil
}

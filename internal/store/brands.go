package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/forgeline/brandforge/internal/realtime"
	brandforgeerrors "github.com/forgeline/brandforge/pkg/errors"
)

// ListBrands returns the user's brands, newest first.
func (s *Store) ListBrands(ctx context.Context, userID string, limit int) ([]Brand, error) {
	var rows []brandRow
	err := s.dbConn.SelectContext(ctx, &rows,
		`SELECT id, user_id, name, site_url, logo_url, tokens, created_at
		 FROM brands WHERE user_id = ? ORDER BY created_at DESC LIMIT ?`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing brands: %w", err)
	}

	brands := make([]Brand, 0, len(rows))
	for _, r := range rows {
		brand, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		brands = append(brands, brand)
	}
	return brands, nil
}

// GetBrand returns a single brand by id.
func (s *Store) GetBrand(ctx context.Context, id string) (Brand, error) {
	var row brandRow
	err := s.dbConn.GetContext(ctx, &row,
		`SELECT id, user_id, name, site_url, logo_url, tokens, created_at
		 FROM brands WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return Brand{}, brandforgeerrors.NewNotFoundError("brand", id)
	}
	if err != nil {
		return Brand{}, fmt.Errorf("getting brand %s: %w", id, err)
	}
	return row.toDomain()
}

// UpsertBrand inserts the brand, or replaces its mutable fields when a
// row with the same id already exists. A missing id is assigned.
func (s *Store) UpsertBrand(ctx context.Context, brand Brand) (Brand, error) {
	if brand.ID == "" {
		brand.ID = uuid.NewString()
	}
	if brand.CreatedAt.IsZero() {
		brand.CreatedAt = time.Now().UTC()
	}

	tokens, err := encodeTokens(brand.Tokens)
	if err != nil {
		return Brand{}, err
	}

	_, err = s.dbConn.ExecContext(ctx,
		`INSERT INTO brands (id, user_id, name, site_url, logo_url, tokens, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   name = excluded.name,
		   site_url = excluded.site_url,
		   logo_url = excluded.logo_url,
		   tokens = excluded.tokens`,
		brand.ID, brand.UserID, brand.Name, brand.SiteURL, brand.LogoURL, tokens, brand.CreatedAt)
	if err != nil {
		return Brand{}, fmt.Errorf("upserting brand %s: %w", brand.ID, err)
	}

	s.publish("brands", realtime.ChangeUpdate, map[string]any{
		"id":      brand.ID,
		"user_id": brand.UserID,
		"name":    brand.Name,
	})

	return brand, nil
}

// DeleteBrand removes a brand; images, styles and designs cascade.
func (s *Store) DeleteBrand(ctx context.Context, id string) error {
	res, err := s.dbConn.ExecContext(ctx, `DELETE FROM brands WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting brand %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return brandforgeerrors.NewNotFoundError("brand", id)
	}

	s.publish("brands", realtime.ChangeDelete, map[string]any{"id": id})
	return nil
}

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ListStyles returns a brand's saved styles, newest first.
func (s *Store) ListStyles(ctx context.Context, brandID string) ([]Style, error) {
	var rows []styleRow
	err := s.dbConn.SelectContext(ctx, &rows,
		`SELECT id, brand_id, name, tokens, created_at
		 FROM styles WHERE brand_id = ? ORDER BY created_at DESC`,
		brandID)
	if err != nil {
		return nil, fmt.Errorf("listing styles: %w", err)
	}

	styles := make([]Style, 0, len(rows))
	for _, r := range rows {
		style, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		styles = append(styles, style)
	}
	return styles, nil
}

// SaveStyle stores a named token override set for a brand.
func (s *Store) SaveStyle(ctx context.Context, style Style) (Style, error) {
	if style.ID == "" {
		style.ID = uuid.NewString()
	}
	if style.CreatedAt.IsZero() {
		style.CreatedAt = time.Now().UTC()
	}

	tokens, err := encodeTokens(style.Tokens)
	if err != nil {
		return Style{}, err
	}

	_, err = s.dbConn.ExecContext(ctx,
		`INSERT INTO styles (id, brand_id, name, tokens, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET name = excluded.name, tokens = excluded.tokens`,
		style.ID, style.BrandID, style.Name, tokens, style.CreatedAt)
	if err != nil {
		return Style{}, fmt.Errorf("saving style %s: %w", style.ID, err)
	}
	return style, nil
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/forgeline/brandforge/internal/design"
	"github.com/forgeline/brandforge/internal/realtime"
	brandforgeerrors "github.com/forgeline/brandforge/pkg/errors"
)

// SaveDesign writes the full design row. Saving always commits: the
// editor does not track dirtiness, and an unchanged save is a no-op at
// the data level anyway.
func (s *Store) SaveDesign(ctx context.Context, d design.Design) (design.Design, error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	d.UpdatedAt = time.Now().UTC()

	slots, err := json.Marshal(d.Slots)
	if err != nil {
		return design.Design{}, fmt.Errorf("encoding slots: %w", err)
	}
	tokens, err := encodeTokens(d.Tokens)
	if err != nil {
		return design.Design{}, err
	}

	_, err = s.dbConn.ExecContext(ctx,
		`INSERT INTO designs (id, brand_id, template_id, slots, tokens, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   template_id = excluded.template_id,
		   slots = excluded.slots,
		   tokens = excluded.tokens,
		   updated_at = excluded.updated_at`,
		d.ID, d.BrandID, d.TemplateID, string(slots), tokens, d.UpdatedAt)
	if err != nil {
		return design.Design{}, fmt.Errorf("saving design %s: %w", d.ID, err)
	}

	s.publish("designs", realtime.ChangeUpdate, map[string]any{
		"id":       d.ID,
		"brand_id": d.BrandID,
	})
	return d, nil
}

// GetDesign returns a single design by id.
func (s *Store) GetDesign(ctx context.Context, id string) (design.Design, error) {
	var row designRow
	err := s.dbConn.GetContext(ctx, &row,
		`SELECT id, brand_id, template_id, slots, tokens, updated_at
		 FROM designs WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return design.Design{}, brandforgeerrors.NewNotFoundError("design", id)
	}
	if err != nil {
		return design.Design{}, fmt.Errorf("getting design %s: %w", id, err)
	}
	return row.toDomain()
}

// ListDesigns returns a brand's designs, most recently edited first.
func (s *Store) ListDesigns(ctx context.Context, brandID string, limit int) ([]design.Design, error) {
	var rows []designRow
	err := s.dbConn.SelectContext(ctx, &rows,
		`SELECT id, brand_id, template_id, slots, tokens, updated_at
		 FROM designs WHERE brand_id = ?
		 ORDER BY updated_at DESC LIMIT ?`,
		brandID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing designs: %w", err)
	}

	designs := make([]design.Design, 0, len(rows))
	for _, r := range rows {
		d, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		designs = append(designs, d)
	}
	return designs, nil
}

// UpdateDesignSlot overwrites one slot value on a stored design.
// Concurrent edits resolve last-write-wins at the row level.
func (s *Store) UpdateDesignSlot(ctx context.Context, id, key, value string) (design.Design, error) {
	d, err := s.GetDesign(ctx, id)
	if err != nil {
		return design.Design{}, err
	}
	d.SetSlot(key, value)
	return s.SaveDesign(ctx, d)
}

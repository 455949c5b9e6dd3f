package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/forgeline/brandforge/internal/realtime"
)

// ListImages returns a page of a brand's images, newest first. The
// admin browser pages through large generated sets, so offset paging
// is part of the contract here.
func (s *Store) ListImages(ctx context.Context, brandID string, limit, offset int) ([]Image, error) {
	var images []Image
	err := s.dbConn.SelectContext(ctx, &images,
		`SELECT id, brand_id, url, kind, created_at
		 FROM images WHERE brand_id = ?
		 ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		brandID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing images: %w", err)
	}
	return images, nil
}

// CountImages returns the total number of images for a brand.
func (s *Store) CountImages(ctx context.Context, brandID string) (int64, error) {
	var count int64
	err := s.dbConn.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM images WHERE brand_id = ?`, brandID)
	if err != nil {
		return 0, fmt.Errorf("counting images: %w", err)
	}
	return count, nil
}

// InsertImage records a new asset for a brand.
func (s *Store) InsertImage(ctx context.Context, image Image) (Image, error) {
	if image.ID == "" {
		image.ID = uuid.NewString()
	}
	if image.Kind == "" {
		image.Kind = "generated"
	}
	if image.CreatedAt.IsZero() {
		image.CreatedAt = time.Now().UTC()
	}

	_, err := s.dbConn.ExecContext(ctx,
		`INSERT INTO images (id, brand_id, url, kind, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		image.ID, image.BrandID, image.URL, image.Kind, image.CreatedAt)
	if err != nil {
		return Image{}, fmt.Errorf("inserting image: %w", err)
	}

	s.publish("images", realtime.ChangeInsert, map[string]any{
		"id":       image.ID,
		"brand_id": image.BrandID,
		"url":      image.URL,
		"kind":     image.Kind,
	})

	return image, nil
}

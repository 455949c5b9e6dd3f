package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/forgeline/brandforge/internal/design"
)

// Brand is an extracted brand identity: the source site, its logo and
// the design tokens pulled from it.
type Brand struct {
	ID        string          `db:"id"`
	UserID    string          `db:"user_id"`
	Name      string          `db:"name"`
	SiteURL   string          `db:"site_url"`
	LogoURL   string          `db:"logo_url"`
	Tokens    design.TokenSet `db:"-"`
	CreatedAt time.Time       `db:"created_at"`
}

// Image is a generated or scraped asset belonging to a brand.
type Image struct {
	ID        string    `db:"id"`
	BrandID   string    `db:"brand_id"`
	URL       string    `db:"url"`
	Kind      string    `db:"kind"`
	CreatedAt time.Time `db:"created_at"`
}

// Style is a named token override set saved against a brand.
type Style struct {
	ID        string          `db:"id"`
	BrandID   string          `db:"brand_id"`
	Name      string          `db:"name"`
	Tokens    design.TokenSet `db:"-"`
	CreatedAt time.Time       `db:"created_at"`
}

// Plan is a subscription tier.
type Plan struct {
	ID             string `db:"id"`
	Name           string `db:"name"`
	MonthlyCredits int64  `db:"monthly_credits"`
	PriceCents     int64  `db:"price_cents"`
}

type brandRow struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Name      string    `db:"name"`
	SiteURL   string    `db:"site_url"`
	LogoURL   string    `db:"logo_url"`
	Tokens    string    `db:"tokens"`
	CreatedAt time.Time `db:"created_at"`
}

func (r brandRow) toDomain() (Brand, error) {
	tokens, err := decodeTokens(r.Tokens)
	if err != nil {
		return Brand{}, fmt.Errorf("decoding tokens for brand %s: %w", r.ID, err)
	}
	return Brand{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		SiteURL:   r.SiteURL,
		LogoURL:   r.LogoURL,
		Tokens:    tokens,
		CreatedAt: r.CreatedAt,
	}, nil
}

type styleRow struct {
	ID        string    `db:"id"`
	BrandID   string    `db:"brand_id"`
	Name      string    `db:"name"`
	Tokens    string    `db:"tokens"`
	CreatedAt time.Time `db:"created_at"`
}

func (r styleRow) toDomain() (Style, error) {
	tokens, err := decodeTokens(r.Tokens)
	if err != nil {
		return Style{}, fmt.Errorf("decoding tokens for style %s: %w", r.ID, err)
	}
	return Style{
		ID:        r.ID,
		BrandID:   r.BrandID,
		Name:      r.Name,
		Tokens:    tokens,
		CreatedAt: r.CreatedAt,
	}, nil
}

type designRow struct {
	ID         string    `db:"id"`
	BrandID    string    `db:"brand_id"`
	TemplateID string    `db:"template_id"`
	Slots      string    `db:"slots"`
	Tokens     string    `db:"tokens"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r designRow) toDomain() (design.Design, error) {
	var slots map[string]string
	if err := json.Unmarshal([]byte(r.Slots), &slots); err != nil {
		return design.Design{}, fmt.Errorf("decoding slots for design %s: %w", r.ID, err)
	}
	tokens, err := decodeTokens(r.Tokens)
	if err != nil {
		return design.Design{}, fmt.Errorf("decoding tokens for design %s: %w", r.ID, err)
	}
	return design.Design{
		ID:         r.ID,
		BrandID:    r.BrandID,
		TemplateID: r.TemplateID,
		Slots:      slots,
		Tokens:     tokens,
		UpdatedAt:  r.UpdatedAt,
	}, nil
}

func decodeTokens(raw string) (design.TokenSet, error) {
	var tokens design.TokenSet
	if raw == "" {
		return tokens, nil
	}
	if err := json.Unmarshal([]byte(raw), &tokens); err != nil {
		return design.TokenSet{}, err
	}
	return tokens, nil
}

func encodeTokens(tokens design.TokenSet) (string, error) {
	raw, err := json.Marshal(tokens)
	if err != nil {
		return "", fmt.Errorf("encoding tokens: %w", err)
	}
	return string(raw), nil
}

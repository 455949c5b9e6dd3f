package studio

import (
	"context"

	"github.com/forgeline/brandforge/internal/design"
	"github.com/forgeline/brandforge/internal/export"
	"github.com/forgeline/brandforge/internal/logger"
	"github.com/forgeline/brandforge/internal/realtime"
	"github.com/forgeline/brandforge/internal/session"
	"github.com/forgeline/brandforge/internal/store"
)

// DataStore is the slice of the store the studio reads and writes.
type DataStore interface {
	ListBrands(ctx context.Context, userID string, limit int) ([]store.Brand, error)
	ListDesigns(ctx context.Context, brandID string, limit int) ([]design.Design, error)
	GetDesign(ctx context.Context, id string) (design.Design, error)
	UpdateDesignSlot(ctx context.Context, id, key, value string) (design.Design, error)
	ListImages(ctx context.Context, brandID string, limit, offset int) ([]store.Image, error)
	CountImages(ctx context.Context, brandID string) (int64, error)
	GetCredits(ctx context.Context, userID string) (int64, error)
	SpendCredits(ctx context.Context, userID string, amount int64) (int64, error)
	ListPlans(ctx context.Context) ([]store.Plan, error)
}

// TemplateSource resolves template descriptors by id.
type TemplateSource interface {
	Get(id string) (design.Template, bool)
}

// BillingService opens the hosted billing portal.
type BillingService interface {
	PortalURL(ctx context.Context, accessToken string) (string, error)
}

// GenerateService requests slot regeneration.
type GenerateService interface {
	RegenerateImage(ctx context.Context, accessToken, designID, slotKey string) error
	RegenerateCopy(ctx context.Context, accessToken, designID, slotKey string) error
}

// ExportService writes design artifacts.
type ExportService interface {
	Export(ctx context.Context, tmpl design.Template, dsg design.Design, format export.Format) (string, error)
}

// Services bundles everything the studio depends on.
type Services struct {
	Store     DataStore
	Templates TemplateSource
	Hub       *realtime.Hub
	Billing   BillingService
	Generate  GenerateService
	Exporter  ExportService
	Logger    *logger.Logger

	Session session.Session
}

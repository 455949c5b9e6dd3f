package studio

import (
	"github.com/forgeline/brandforge/internal/design"
	"github.com/forgeline/brandforge/internal/realtime"
	"github.com/forgeline/brandforge/internal/store"
)

// ViewMode determines which screen to render.
type ViewMode int

const (
	ViewBrands ViewMode = iota
	ViewDesigns
	ViewEditor
	ViewAccount
	ViewImages
)

// BrandsLoadedMsg carries the signed-in user's brands.
type BrandsLoadedMsg struct {
	Brands []store.Brand
	Err    error
}

// DesignsLoadedMsg carries the designs of the opened brand.
type DesignsLoadedMsg struct {
	BrandID string
	Designs []design.Design
	Err     error
}

// DesignOpenedMsg carries a design and its resolved template, ready
// for the editor.
type DesignOpenedMsg struct {
	Template design.Template
	Design   design.Design
	Err      error
}

// AccountLoadedMsg carries the account page data.
type AccountLoadedMsg struct {
	Balance int64
	Plans   []store.Plan
	Err     error
}

// CreditChangedMsg delivers one realtime credit event.
type CreditChangedMsg struct {
	Event realtime.CreditEvent
}

// CreditStreamClosedMsg signals the subscription ended.
type CreditStreamClosedMsg struct{}

// DesignStreamClosedMsg signals the open design's row subscription
// ended.
type DesignStreamClosedMsg struct{}

// PortalURLMsg carries the billing portal URL to show the user.
type PortalURLMsg struct {
	URL string
	Err error
}

// ImagesLoadedMsg carries one page of the admin image browser.
type ImagesLoadedMsg struct {
	Images []store.Image
	Total  int64
	Offset int
	Err    error
}

// ErrorMsg reports a failure the current view should surface.
type ErrorMsg struct {
	Err error
}

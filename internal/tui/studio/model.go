package studio

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/forgeline/brandforge/internal/design"
	"github.com/forgeline/brandforge/internal/export"
	"github.com/forgeline/brandforge/internal/realtime"
	"github.com/forgeline/brandforge/internal/store"
	"github.com/forgeline/brandforge/internal/tui/editor"
)

const imagesPageSize = 12

// Model is the studio shell: navigation chrome around the brand list,
// the design editor, the account page and the admin image browser.
type Model struct {
	services Services

	viewMode ViewMode

	// Brand list state
	brands      []store.Brand
	brandCursor int

	// Design list state
	openBrandID  string
	designs      []design.Design
	designCursor int

	// Editor state
	editor       editor.Model
	editorOpen   bool
	openDesignID string
	designSub    *realtime.Subscription

	// Account state
	balance   int64
	plans     []store.Plan
	portalURL string
	creditSub *realtime.Subscription

	// Admin image browser state
	images       []store.Image
	imagesTotal  int64
	imagesOffset int

	width  int
	height int

	loading bool
	errMsg  string
}

// NewModel builds the studio shell for a signed-in session.
func NewModel(services Services) Model {
	return Model{
		services: services,
		viewMode: ViewBrands,
		width:    80,
		height:   24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return loadBrandsCmd(m.services)
}

// ViewMode returns the active screen.
func (m Model) CurrentView() ViewMode {
	return m.viewMode
}

// Balance returns the credit balance shown on the account page.
func (m Model) Balance() int64 {
	return m.balance
}

// SelectedBrand returns the brand under the cursor.
func (m Model) SelectedBrand() (store.Brand, bool) {
	if m.brandCursor < 0 || m.brandCursor >= len(m.brands) {
		return store.Brand{}, false
	}
	return m.brands[m.brandCursor], true
}

// SelectedDesign returns the design under the cursor.
func (m Model) SelectedDesign() (design.Design, bool) {
	if m.designCursor < 0 || m.designCursor >= len(m.designs) {
		return design.Design{}, false
	}
	return m.designs[m.designCursor], true
}

func (m *Model) stopCreditStream() {
	if m.creditSub != nil {
		m.creditSub.Unsubscribe()
		m.creditSub = nil
	}
}

func (m *Model) stopDesignStream() {
	if m.designSub != nil {
		m.designSub.Unsubscribe()
		m.designSub = nil
	}
}

func (m *Model) editorCallbacks(designID string) editor.Callbacks {
	svc := m.services
	return editor.Callbacks{
		OnUpdateSlot: func(key, value string) error {
			return updateSlotCmd(svc, designID, key, value)
		},
		OnRegenerateImage: func(key string) error {
			return regenerateImageCall(svc, designID, key)
		},
		OnRegenerateCopy: func(key string) error {
			return regenerateCopyCall(svc, designID, key)
		},
		OnExport: func(format export.Format) (string, error) {
			return exportCall(svc, designID, format)
		},
	}
}

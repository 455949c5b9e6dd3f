package studio

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeline/brandforge/internal/design"
	"github.com/forgeline/brandforge/internal/export"
	"github.com/forgeline/brandforge/internal/realtime"
	"github.com/forgeline/brandforge/internal/session"
	"github.com/forgeline/brandforge/internal/store"
	"github.com/forgeline/brandforge/internal/tui/editor"
)

type fakeStore struct {
	brands  []store.Brand
	designs []design.Design
	images  []store.Image
	plans   []store.Plan
	credits int64

	slotUpdates []string
	spends      int
}

func (f *fakeStore) ListBrands(_ context.Context, _ string, _ int) ([]store.Brand, error) {
	return f.brands, nil
}

func (f *fakeStore) ListDesigns(_ context.Context, _ string, _ int) ([]design.Design, error) {
	return f.designs, nil
}

func (f *fakeStore) GetDesign(_ context.Context, id string) (design.Design, error) {
	for _, d := range f.designs {
		if d.ID == id {
			return d, nil
		}
	}
	return design.Design{}, nil
}

func (f *fakeStore) UpdateDesignSlot(_ context.Context, id, key, value string) (design.Design, error) {
	f.slotUpdates = append(f.slotUpdates, id+"/"+key+"="+value)
	return design.Design{}, nil
}

func (f *fakeStore) ListImages(_ context.Context, _ string, limit, offset int) ([]store.Image, error) {
	if offset >= len(f.images) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.images) {
		end = len(f.images)
	}
	return f.images[offset:end], nil
}

func (f *fakeStore) CountImages(_ context.Context, _ string) (int64, error) {
	return int64(len(f.images)), nil
}

func (f *fakeStore) GetCredits(_ context.Context, _ string) (int64, error) {
	return f.credits, nil
}

func (f *fakeStore) SpendCredits(_ context.Context, userID string, amount int64) (int64, error) {
	if f.credits < amount {
		return f.credits, fmt.Errorf("insufficient credits for %s", userID)
	}
	f.credits -= amount
	f.spends++
	return f.credits, nil
}

func (f *fakeStore) ListPlans(_ context.Context) ([]store.Plan, error) {
	return f.plans, nil
}

type fakeTemplates struct {
	templates map[string]design.Template
}

func (f fakeTemplates) Get(id string) (design.Template, bool) {
	tmpl, ok := f.templates[id]
	return tmpl, ok
}

type fakeBilling struct{ url string }

func (f fakeBilling) PortalURL(context.Context, string) (string, error) {
	return f.url, nil
}

type fakeGenerate struct{}

func (fakeGenerate) RegenerateImage(context.Context, string, string, string) error { return nil }
func (fakeGenerate) RegenerateCopy(context.Context, string, string, string) error  { return nil }

type fakeExporter struct{}

func (fakeExporter) Export(_ context.Context, _ design.Template, dsg design.Design, format export.Format) (string, error) {
	return "/exports/" + dsg.ID + "." + string(format), nil
}

func testServices(st *fakeStore, hub *realtime.Hub, admin bool) Services {
	return Services{
		Store: st,
		Templates: fakeTemplates{templates: map[string]design.Template{
			"web_hero_split": {
				ID:   "web_hero_split",
				Type: "web_hero",
				Slots: map[string]design.SlotSpec{
					"headline": {Type: design.SlotText},
				},
				Style: design.StyleSpec{Layout: "split"},
			},
		}},
		Hub:      hub,
		Billing:  fakeBilling{url: "https://pay.example/portal"},
		Generate: fakeGenerate{},
		Exporter: fakeExporter{},
		Session: session.Session{
			UserID:  "u-1",
			Email:   "dana@acme.example",
			IsAdmin: admin,
		},
	}
}

func advance(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestInitLoadsBrands(t *testing.T) {
	st := &fakeStore{brands: []store.Brand{{ID: "b-1", Name: "Acme"}}}
	m := NewModel(testServices(st, nil, false))

	cmd := m.Init()
	require.NotNil(t, cmd)

	loaded, ok := cmd().(BrandsLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.Err)

	m, _ = advance(t, m, loaded)
	assert.Equal(t, ViewBrands, m.CurrentView())
	assert.Contains(t, m.View(), "Acme")
}

func TestOpenBrandThenDesignReachesEditor(t *testing.T) {
	st := &fakeStore{
		brands: []store.Brand{{ID: "b-1", Name: "Acme"}},
		designs: []design.Design{{
			ID:         "d-1",
			BrandID:    "b-1",
			TemplateID: "web_hero_split",
			Slots:      map[string]string{"headline": "Hello"},
		}},
	}
	m := NewModel(testServices(st, nil, false))
	m, _ = advance(t, m, BrandsLoadedMsg{Brands: st.brands})

	m, cmd := advance(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = advance(t, m, cmd())
	assert.Equal(t, ViewDesigns, m.CurrentView())
	assert.Contains(t, m.View(), "Hello")

	m, cmd = advance(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	opened, ok := cmd().(DesignOpenedMsg)
	require.True(t, ok)
	require.NoError(t, opened.Err)

	m, _ = advance(t, m, opened)
	assert.Equal(t, ViewEditor, m.CurrentView())
}

func TestEditorBackReturnsToDesigns(t *testing.T) {
	st := &fakeStore{
		designs: []design.Design{{ID: "d-1", BrandID: "b-1", TemplateID: "web_hero_split"}},
	}
	m := NewModel(testServices(st, nil, false))
	m, _ = advance(t, m, DesignsLoadedMsg{BrandID: "b-1", Designs: st.designs})
	m, _ = advance(t, m, DesignOpenedMsg{
		Template: design.Template{ID: "web_hero_split", Type: "web_hero", Slots: map[string]design.SlotSpec{"headline": {Type: design.SlotText}}, Style: design.StyleSpec{Layout: "split"}},
		Design:   st.designs[0],
	})
	require.Equal(t, ViewEditor, m.CurrentView())

	m, cmd := advance(t, m, editor.BackMsg{})
	assert.Equal(t, ViewDesigns, m.CurrentView())
	require.NotNil(t, cmd)
}

func TestAccountShowsBalanceAndAppliesCreditEvents(t *testing.T) {
	st := &fakeStore{credits: 100, plans: []store.Plan{{ID: "pro", Name: "Pro", MonthlyCredits: 500, PriceCents: 2900}}}
	hub := realtime.NewHub()
	m := NewModel(testServices(st, hub, false))

	m, cmd := advance(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	require.NotNil(t, cmd)
	assert.Equal(t, ViewAccount, m.CurrentView())

	m, _ = advance(t, m, AccountLoadedMsg{Balance: 100, Plans: st.plans})
	assert.Equal(t, int64(100), m.Balance())
	assert.Contains(t, m.View(), "100")
	assert.Contains(t, m.View(), "Pro")

	// Events apply in delivery order; the last balance wins.
	m, next := advance(t, m, CreditChangedMsg{Event: realtime.CreditEvent{UserID: "u-1", Balance: 90}})
	require.NotNil(t, next)
	m, _ = advance(t, m, CreditChangedMsg{Event: realtime.CreditEvent{UserID: "u-1", Balance: 95}})
	assert.Equal(t, int64(95), m.Balance())
}

func TestCreditSubscriptionDeliversHubEvents(t *testing.T) {
	st := &fakeStore{credits: 40}
	hub := realtime.NewHub()
	m := NewModel(testServices(st, hub, false))

	m, _ = advance(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	require.NotNil(t, m.creditSub)

	hub.Publish(realtime.Event{
		Table:   "user_credits",
		Type:    realtime.ChangeUpdate,
		Payload: map[string]any{"user_id": "u-1", "balance": int64(35)},
	})

	msg := waitForCreditCmd(m.creditSub)()
	changed, ok := msg.(CreditChangedMsg)
	require.True(t, ok)
	assert.Equal(t, int64(35), changed.Event.Balance)
}

func TestBillingPortalKey(t *testing.T) {
	st := &fakeStore{}
	m := NewModel(testServices(st, nil, false))
	m, _ = advance(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})

	m, cmd := advance(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	require.NotNil(t, cmd)

	m, _ = advance(t, m, cmd())
	assert.Contains(t, m.View(), "https://pay.example/portal")
}

func TestImageBrowserDeniedForNonAdmins(t *testing.T) {
	st := &fakeStore{images: []store.Image{{ID: "i-1", URL: "https://cdn.example/a.png"}}}
	m := NewModel(testServices(st, nil, false))

	m, cmd := advance(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	assert.Nil(t, cmd)
	assert.Equal(t, ViewImages, m.CurrentView())
	assert.Contains(t, m.View(), "Access denied")
	assert.NotContains(t, m.View(), "cdn.example")
}

func TestImageBrowserPagesForAdmins(t *testing.T) {
	images := make([]store.Image, 0, 15)
	for i := 0; i < 15; i++ {
		images = append(images, store.Image{
			ID:   "i-" + string(rune('a'+i)),
			URL:  "https://cdn.example/" + string(rune('a'+i)) + ".png",
			Kind: "generated",
		})
	}
	st := &fakeStore{
		brands: []store.Brand{{ID: "b-1", Name: "Acme"}},
		images: images,
	}
	m := NewModel(testServices(st, nil, true))
	m, _ = advance(t, m, BrandsLoadedMsg{Brands: st.brands})

	m, cmd := advance(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	require.NotNil(t, cmd)
	m, _ = advance(t, m, cmd())

	view := m.View()
	assert.Contains(t, view, "page 1 of 2 (15 images)")

	m, cmd = advance(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	require.NotNil(t, cmd)
	m, _ = advance(t, m, cmd())
	assert.Contains(t, m.View(), "page 2 of 2")

	// No page after the last one.
	_, cmd = advance(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	assert.Nil(t, cmd)
}

func TestDesignRowChangesReachOpenEditor(t *testing.T) {
	st := &fakeStore{
		designs: []design.Design{{
			ID:         "d-1",
			TemplateID: "web_hero_split",
			Slots:      map[string]string{"headline": "old"},
		}},
	}
	hub := realtime.NewHub()
	m := NewModel(testServices(st, hub, false))

	tmpl, ok := m.services.Templates.Get("web_hero_split")
	require.True(t, ok)

	m, cmd := advance(t, m, DesignOpenedMsg{Template: tmpl, Design: st.designs[0]})
	require.NotNil(t, cmd)
	require.NotNil(t, m.designSub)

	st.designs[0].Slots["headline"] = "fresh"
	hub.Publish(realtime.Event{
		Table:   "designs",
		Type:    realtime.ChangeUpdate,
		Payload: map[string]any{"id": "d-1"},
	})

	updated, ok := cmd().(editor.DesignUpdatedMsg)
	require.True(t, ok)
	assert.Equal(t, "fresh", updated.Design.Slot("headline"))

	m, cmd = advance(t, m, updated)
	require.NotNil(t, cmd)
	assert.Equal(t, "fresh", m.editor.Design().Slot("headline"))

	m, _ = advance(t, m, editor.BackMsg{})
	assert.Nil(t, m.designSub)
}

func TestRegenerateDebitsReplicaCredit(t *testing.T) {
	st := &fakeStore{credits: 2}
	svc := testServices(st, nil, false)

	require.NoError(t, regenerateImageCall(svc, "d-1", "image"))
	assert.Equal(t, int64(1), st.credits)
	assert.Equal(t, 1, st.spends)

	st.credits = 0
	err := regenerateCopyCall(svc, "d-1", "headline")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient credits")
}

func TestBrandsEmptyStateHint(t *testing.T) {
	m := NewModel(testServices(&fakeStore{}, nil, false))
	m, _ = advance(t, m, BrandsLoadedMsg{})

	assert.Contains(t, m.View(), "brands add --name")
}

func TestEditorCallbacksPersistSlotEdits(t *testing.T) {
	st := &fakeStore{
		designs: []design.Design{{ID: "d-1", TemplateID: "web_hero_split"}},
	}
	m := NewModel(testServices(st, nil, false))

	callbacks := m.editorCallbacks("d-1")
	require.NoError(t, callbacks.OnUpdateSlot("headline", "New copy"))
	assert.Equal(t, []string{"d-1/headline=New copy"}, st.slotUpdates)

	path, err := callbacks.OnExport(export.FormatHTML)
	require.NoError(t, err)
	assert.Equal(t, "/exports/d-1.html", path)
}

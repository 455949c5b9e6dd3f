package studio

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/forgeline/brandforge/internal/realtime"
	"github.com/forgeline/brandforge/internal/tui/editor"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.editorOpen {
			var cmd tea.Cmd
			m.editor, cmd = m.editor.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case BrandsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.brands = msg.Brands
		if m.brandCursor >= len(m.brands) {
			m.brandCursor = 0
		}
		return m, nil

	case DesignsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.openBrandID = msg.BrandID
		m.designs = msg.Designs
		m.designCursor = 0
		m.viewMode = ViewDesigns
		return m, nil

	case DesignOpenedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.openDesignID = msg.Design.ID
		m.editor = editor.NewModel(msg.Template, msg.Design, m.editorCallbacks(msg.Design.ID))
		m.editorOpen = true
		m.viewMode = ViewEditor
		m.stopDesignStream()
		if m.services.Hub != nil {
			m.designSub = m.services.Hub.Subscribe("designs", realtime.Filter{
				Column: "id",
				Equals: msg.Design.ID,
			})
			return m, waitForDesignCmd(m.services, m.designSub, msg.Design.ID)
		}
		return m, nil

	case AccountLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.balance = msg.Balance
		m.plans = msg.Plans
		return m, nil

	case CreditChangedMsg:
		// Full-balance events fold last-write-wins in delivery order.
		m.balance = realtime.ReduceCredits(m.balance, []realtime.CreditEvent{msg.Event})
		if m.creditSub != nil {
			return m, waitForCreditCmd(m.creditSub)
		}
		return m, nil

	case CreditStreamClosedMsg:
		m.creditSub = nil
		return m, nil

	case DesignStreamClosedMsg:
		m.designSub = nil
		return m, nil

	case editor.DesignUpdatedMsg:
		if !m.editorOpen {
			return m, nil
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		if m.designSub != nil {
			return m, tea.Batch(cmd, waitForDesignCmd(m.services, m.designSub, m.openDesignID))
		}
		return m, cmd

	case PortalURLMsg:
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.portalURL = msg.URL
		return m, nil

	case ImagesLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.images = msg.Images
		m.imagesTotal = msg.Total
		m.imagesOffset = msg.Offset
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.errMsg = msg.Err.Error()
		m.services.Logger.Error(msg.Err, "studio command failed")
		return m, nil

	case editor.BackMsg:
		m.stopDesignStream()
		m.editorOpen = false
		m.viewMode = ViewDesigns
		return m, loadDesignsCmd(m.services, m.openBrandID)
	}

	if m.editorOpen && m.viewMode == ViewEditor {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The editor owns the keyboard while it is open.
	if m.viewMode == ViewEditor && m.editorOpen {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c":
		m.stopCreditStream()
		m.stopDesignStream()
		return m, tea.Quit
	}

	switch m.viewMode {
	case ViewBrands:
		return m.updateBrandsKey(msg)
	case ViewDesigns:
		return m.updateDesignsKey(msg)
	case ViewAccount:
		return m.updateAccountKey(msg)
	case ViewImages:
		return m.updateImagesKey(msg)
	}
	return m, nil
}

func (m Model) updateBrandsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.brandCursor > 0 {
			m.brandCursor--
		}
	case "down", "j":
		if m.brandCursor < len(m.brands)-1 {
			m.brandCursor++
		}
	case "enter":
		if brand, ok := m.SelectedBrand(); ok {
			m.loading = true
			return m, loadDesignsCmd(m.services, brand.ID)
		}
	case "a":
		return m.openAccount()
	case "g":
		return m.openImages()
	case "r":
		m.loading = true
		return m, loadBrandsCmd(m.services)
	case "q", "esc":
		m.stopCreditStream()
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateDesignsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.designCursor > 0 {
			m.designCursor--
		}
	case "down", "j":
		if m.designCursor < len(m.designs)-1 {
			m.designCursor++
		}
	case "enter":
		if dsg, ok := m.SelectedDesign(); ok {
			m.loading = true
			return m, openDesignCmd(m.services, dsg.ID)
		}
	case "a":
		return m.openAccount()
	case "esc", "q":
		m.viewMode = ViewBrands
		return m, nil
	}
	return m, nil
}

func (m Model) updateAccountKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "b":
		if m.services.Billing == nil {
			m.errMsg = "billing portal is not configured"
			return m, nil
		}
		return m, portalCmd(m.services)
	case "esc", "q":
		m.stopCreditStream()
		m.viewMode = ViewBrands
		return m, nil
	}
	return m, nil
}

func (m Model) updateImagesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.services.Session.IsAdmin {
		switch msg.String() {
		case "esc", "q":
			m.viewMode = ViewBrands
		}
		return m, nil
	}

	switch msg.String() {
	case "n", "right":
		if int64(m.imagesOffset+imagesPageSize) < m.imagesTotal {
			m.loading = true
			return m, loadImagesCmd(m.services, m.openBrandID, m.imagesOffset+imagesPageSize)
		}
	case "p", "left":
		if m.imagesOffset > 0 {
			offset := m.imagesOffset - imagesPageSize
			if offset < 0 {
				offset = 0
			}
			m.loading = true
			return m, loadImagesCmd(m.services, m.openBrandID, offset)
		}
	case "esc", "q":
		m.viewMode = ViewBrands
		return m, nil
	}
	return m, nil
}

func (m Model) openAccount() (tea.Model, tea.Cmd) {
	m.viewMode = ViewAccount
	m.loading = true

	cmds := []tea.Cmd{loadAccountCmd(m.services)}
	if m.creditSub == nil && m.services.Hub != nil {
		m.creditSub = m.services.Hub.Subscribe("user_credits", realtime.Filter{
			Column: "user_id",
			Equals: m.services.Session.UserID,
		})
		cmds = append(cmds, waitForCreditCmd(m.creditSub))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) openImages() (tea.Model, tea.Cmd) {
	m.viewMode = ViewImages
	if !m.services.Session.IsAdmin {
		// Non-admins see a static denial; nothing is fetched.
		return m, nil
	}

	brandID := m.openBrandID
	if brandID == "" {
		if brand, ok := m.SelectedBrand(); ok {
			brandID = brand.ID
			m.openBrandID = brandID
		}
	}
	if brandID == "" {
		m.errMsg = "select a brand first"
		m.viewMode = ViewBrands
		return m, nil
	}

	m.loading = true
	return m, loadImagesCmd(m.services, brandID, 0)
}

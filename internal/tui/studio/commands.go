package studio

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/forgeline/brandforge/internal/export"
	"github.com/forgeline/brandforge/internal/realtime"
	"github.com/forgeline/brandforge/internal/tui/editor"
	brandforgeerrors "github.com/forgeline/brandforge/pkg/errors"
)

const commandTimeout = 10 * time.Second

// regenerateCost is debited from the local replica per regeneration;
// the hosted service holds the authoritative balance.
const regenerateCost = 1

var errGenerateUnavailable = errors.New("generation service is not configured")

func withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), commandTimeout)
}

func loadBrandsCmd(svc Services) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		brands, err := svc.Store.ListBrands(ctx, svc.Session.UserID, 50)
		return BrandsLoadedMsg{Brands: brands, Err: err}
	}
}

func loadDesignsCmd(svc Services, brandID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		designs, err := svc.Store.ListDesigns(ctx, brandID, 50)
		return DesignsLoadedMsg{BrandID: brandID, Designs: designs, Err: err}
	}
}

func openDesignCmd(svc Services, designID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		dsg, err := svc.Store.GetDesign(ctx, designID)
		if err != nil {
			return DesignOpenedMsg{Err: err}
		}

		tmpl, ok := svc.Templates.Get(dsg.TemplateID)
		if !ok {
			return DesignOpenedMsg{Err: brandforgeerrors.NewNotFoundError("template", dsg.TemplateID)}
		}
		return DesignOpenedMsg{Template: tmpl, Design: dsg}
	}
}

func loadAccountCmd(svc Services) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		balance, err := svc.Store.GetCredits(ctx, svc.Session.UserID)
		if err != nil {
			return AccountLoadedMsg{Err: err}
		}
		plans, err := svc.Store.ListPlans(ctx)
		return AccountLoadedMsg{Balance: balance, Plans: plans, Err: err}
	}
}

// waitForDesignCmd blocks until the open design's row changes, then
// reloads it so the editor shows the latest slot values, including
// regeneration results. The update loop re-issues it after every
// delivery.
func waitForDesignCmd(svc Services, sub *realtime.Subscription, designID string) tea.Cmd {
	return func() tea.Msg {
		for range sub.C {
			ctx, cancel := withTimeout()
			dsg, err := svc.Store.GetDesign(ctx, designID)
			cancel()
			if err != nil {
				continue
			}
			return editor.DesignUpdatedMsg{Design: dsg}
		}
		return DesignStreamClosedMsg{}
	}
}

// waitForCreditCmd blocks on the subscription channel and converts the
// next event. The update loop re-issues it after every delivery.
func waitForCreditCmd(sub *realtime.Subscription) tea.Cmd {
	return func() tea.Msg {
		for event := range sub.C {
			credit, ok := realtime.CreditEventFrom(event)
			if !ok {
				continue
			}
			return CreditChangedMsg{Event: credit}
		}
		return CreditStreamClosedMsg{}
	}
}

func portalCmd(svc Services) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		url, err := svc.Billing.PortalURL(ctx, svc.Session.AccessToken)
		return PortalURLMsg{URL: url, Err: err}
	}
}

func loadImagesCmd(svc Services, brandID string, offset int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		images, err := svc.Store.ListImages(ctx, brandID, imagesPageSize, offset)
		if err != nil {
			return ImagesLoadedMsg{Err: err}
		}
		total, err := svc.Store.CountImages(ctx, brandID)
		return ImagesLoadedMsg{Images: images, Total: total, Offset: offset, Err: err}
	}
}

func updateSlotCmd(svc Services, designID, key, value string) error {
	ctx, cancel := withTimeout()
	defer cancel()

	_, err := svc.Store.UpdateDesignSlot(ctx, designID, key, value)
	return err
}

func regenerateImageCall(svc Services, designID, key string) error {
	if svc.Generate == nil {
		return errGenerateUnavailable
	}
	ctx, cancel := withTimeout()
	defer cancel()
	if _, err := svc.Store.SpendCredits(ctx, svc.Session.UserID, regenerateCost); err != nil {
		return err
	}
	return svc.Generate.RegenerateImage(ctx, svc.Session.AccessToken, designID, key)
}

func regenerateCopyCall(svc Services, designID, key string) error {
	if svc.Generate == nil {
		return errGenerateUnavailable
	}
	ctx, cancel := withTimeout()
	defer cancel()
	if _, err := svc.Store.SpendCredits(ctx, svc.Session.UserID, regenerateCost); err != nil {
		return err
	}
	return svc.Generate.RegenerateCopy(ctx, svc.Session.AccessToken, designID, key)
}

func exportCall(svc Services, designID string, format export.Format) (string, error) {
	ctx, cancel := withTimeout()
	defer cancel()

	dsg, err := svc.Store.GetDesign(ctx, designID)
	if err != nil {
		return "", err
	}
	tmpl, ok := svc.Templates.Get(dsg.TemplateID)
	if !ok {
		return "", brandforgeerrors.NewNotFoundError("template", dsg.TemplateID)
	}
	return svc.Exporter.Export(ctx, tmpl, dsg, format)
}

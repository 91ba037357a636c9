package presenters

import (
	"context"
	"strings"

	"jobdeck/interfaces/web/templates/components/ui"
)

// ToastPresenter handles toast notification view logic and formatting.
type ToastPresenter struct{}

// NewToastPresenter creates a new toast presenter.
func NewToastPresenter() *ToastPresenter {
	return &ToastPresenter{}
}

// FormatToastNotification renders a toast notification using the template system.
func (p *ToastPresenter) FormatToastNotification(message, toastType string) (string, error) {
	ctx := context.Background()

	component := ui.ToastNotification(message, toastType)

	var buf strings.Builder
	if err := component.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Package ui holds small shared UI components.
package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ToastNotification renders one toast fragment, pushed to clients over SSE
// and swapped into the toast container.
func ToastNotification(message, toastType string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		switch toastType {
		case "success", "error":
		default:
			toastType = "info"
		}
		_, err := fmt.Fprintf(w,
			`<div class="toast toast-%s" role="status">%s</div>`,
			toastType, templ.EscapeString(message))
		return err
	})
}

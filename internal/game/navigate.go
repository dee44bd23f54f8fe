package game

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/pkg/browser"
)

// BrowserNavigator opens the target in the system browser.
type BrowserNavigator struct{}

func (BrowserNavigator) Navigate(target string) error {
	u, err := resolveTarget(target)
	if err != nil {
		return err
	}
	if err := browser.OpenURL(u); err != nil {
		return fmt.Errorf("open %s: %w", u, err)
	}
	return nil
}

// resolveTarget turns a relative page into an absolute file URL; URLs with
// a scheme pass through.
func resolveTarget(target string) (string, error) {
	if u, err := url.Parse(target); err == nil && len(u.Scheme) > 1 {
		return target, nil
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", target, err)
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String(), nil
}

// ErrorDialog returns an Alert that pops up an error dialog without
// blocking the caller. Dialog failures go to logger.
func ErrorDialog(logger *log.Logger) func(error) {
	return errorDialog(logger, func(msg string) error {
		return zenity.Error(msg,
			zenity.Title("Ouroboros"),
			zenity.ErrorIcon,
		)
	})
}

func errorDialog(logger *log.Logger, show func(string) error) func(error) {
	return func(err error) {
		go func() {
			if derr := show(err.Error()); derr != nil && !errors.Is(derr, zenity.ErrCanceled) {
				logger.Printf("error dialog: %v", derr)
			}
		}()
	}
}

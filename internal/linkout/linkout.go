// Package linkout hands literal URIs to the host system: the phone dialer
// for the shop number and the browser for the partner site. Calls are
// fire-and-forget; nothing is read back.
package linkout

import (
	"strings"

	"github.com/pkg/browser"
)

// Opener launches external URIs. The zero value uses the system browser.
type Opener struct {
	// OpenURL overrides the launcher, for tests.
	OpenURL func(url string) error
}

func (o Opener) open(url string) error {
	if o.OpenURL != nil {
		return o.OpenURL(url)
	}
	return browser.OpenURL(url)
}

// Dial opens the phone dialer with the number pre-populated.
func (o Opener) Dial(number string) error {
	return o.open("tel:" + strings.ReplaceAll(number, " ", ""))
}

// Visit opens the given website.
func (o Opener) Visit(url string) error {
	return o.open(url)
}

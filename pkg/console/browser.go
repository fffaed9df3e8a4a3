// Package console hosts the quote widget page over HTTP, with browser
// integration.
package console

import "github.com/pkg/browser"

// OpenBrowser opens the default browser to the specified URL.
var OpenBrowser = browser.OpenURL

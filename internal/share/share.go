// Package share builds social share links for a recipe page.
package share

import (
	"fmt"
	"net/url"
)

// Platform identifies a share target.
type Platform string

const (
	Facebook  Platform = "facebook"
	Twitter   Platform = "twitter"
	Pinterest Platform = "pinterest"
	WhatsApp  Platform = "whatsapp"
	Email     Platform = "email"
)

// Link describes the recipe page being shared.
type Link struct {
	URL         string
	Title       string
	Description string
	ImageURL    string
}

// URLFor returns the share URL for the given platform.
func URLFor(p Platform, l Link) (string, error) {
	switch p {
	case Facebook:
		return "https://www.facebook.com/sharer/sharer.php?u=" + url.QueryEscape(l.URL), nil
	case Twitter:
		return "https://twitter.com/intent/tweet?url=" + url.QueryEscape(l.URL) +
			"&text=" + url.QueryEscape(l.Title), nil
	case Pinterest:
		return "https://pinterest.com/pin/create/button/?url=" + url.QueryEscape(l.URL) +
			"&media=" + url.QueryEscape(l.ImageURL) +
			"&description=" + url.QueryEscape(l.Title), nil
	case WhatsApp:
		return "https://wa.me/?text=" + url.QueryEscape(l.Title+" "+l.URL), nil
	case Email:
		return "mailto:?subject=" + url.QueryEscape(l.Title) +
			"&body=" + url.QueryEscape(l.Description+"\n\n"+l.URL), nil
	default:
		return "", fmt.Errorf("unsupported share platform %q", p)
	}
}

// Package preview injects per-recipient social-preview metadata into the
// shared base HTML document. The base document carries a fixed pair of
// comment markers; everything between them is replaced with the computed
// Open Graph and Twitter Card tags plus a script-visible data block. The
// rest of the document is left byte-for-byte untouched.
package preview

import (
	"fmt"
	"regexp"
	"strings"

	"yearbook/internal/links"
	"yearbook/internal/models"
)

// Markers delimiting the default social tags in the base document.
const (
	StartMarker = "<!-- Default Open Graph / Facebook / Messenger -->"
	EndMarker   = "<!-- Tailwind CSS -->"
)

var titlePattern = regexp.MustCompile(`(?s)<title>.*?</title>`)

// Engine renders personalized pages from a base document and a link record.
type Engine struct {
	// DefaultImage is the og:image used when a link has none.
	DefaultImage string
	// Locale is emitted as og:locale.
	Locale string
}

// ImageURL resolves the final social-preview image URL for a link:
// empty values fall back to the default image, server-local paths are
// prefixed with the request base URL, scheme-less host/path values get
// https:// prepended, and full URLs pass through unchanged.
func (e *Engine) ImageURL(ogImage, baseURL string) string {
	switch {
	case ogImage == "":
		return e.DefaultImage
	case strings.HasPrefix(ogImage, "/"):
		return baseURL + ogImage
	case strings.HasPrefix(ogImage, "http"):
		return ogImage
	default:
		return "https://" + ogImage
	}
}

// Title resolves the page title: the stored page_title, or a synthesized
// phrase for records created before that field existed.
func (e *Engine) Title(link models.Link) string {
	if link.PageTitle != "" {
		return link.PageTitle
	}
	sender := link.SenderName
	if sender == "" {
		sender = links.DefaultSender
	}
	return fmt.Sprintf("Invitation: Yearbook - %s to %s | Yearbook Online", sender, link.RecipientName)
}

// Description resolves the og:description text.
func (e *Engine) Description(link models.Link) string {
	if link.Subtitle != "" {
		return link.Subtitle
	}
	return links.DefaultSubtitle
}

// Render produces the personalized page for link. baseURL is the externally
// visible origin of this server, used for og:url and local image paths.
// When either marker is missing the base document is returned unmodified
// apart from the title replacement.
func (e *Engine) Render(base string, link models.Link, baseURL string) string {
	title := e.Title(link)
	desc := e.Description(link)
	imageURL := e.ImageURL(link.OGImage, baseURL)
	pageURL := baseURL + "/p/" + link.Slug

	out := base
	start := strings.Index(out, StartMarker)
	if start >= 0 {
		rest := out[start+len(StartMarker):]
		end := strings.Index(rest, EndMarker)
		if end >= 0 {
			// Ampersands must be entity-encoded for attribute safety; link
			// unfurling crawlers reject bare & in signed image URLs.
			imageAttr := strings.ReplaceAll(imageURL, "&", "&amp;")
			block := fmt.Sprintf(`%s
    <meta property="og:type" content="website">
    <meta property="og:url" content="%s">
    <meta property="og:title" content="%s">
    <meta property="og:description" content="%s">
    <meta property="og:image" content="%s">
    <meta property="og:image:width" content="1200">
    <meta property="og:image:height" content="630">
    <meta property="og:locale" content="%s">

    <!-- Twitter Card -->
    <meta name="twitter:card" content="summary_large_image">
    <meta name="twitter:title" content="%s">
    <meta name="twitter:description" content="%s">
    <meta name="twitter:image" content="%s">

    <script>
        window.PERSONALIZED_DATA = {
            recipientName: "%s",
            senderName: "%s",
            message: "%s",
            pageTitle: "%s",
            subtitle: "%s"
        };
    </script>
    %s`,
				StartMarker,
				pageURL, title, desc, imageAttr, e.Locale,
				title, desc, imageAttr,
				link.RecipientName, link.SenderName,
				escapeScriptString(link.Message),
				link.PageTitle,
				escapeScriptString(link.Subtitle),
				EndMarker)
			out = out[:start] + block + rest[end+len(EndMarker):]
		}
	}

	// Replace only the first <title>, whatever whitespace it spans.
	if loc := titlePattern.FindStringIndex(out); loc != nil {
		out = out[:loc[0]] + "<title>" + title + "</title>" + out[loc[1]:]
	}

	return out
}

// escapeScriptString makes free text safe inside a double-quoted JS string:
// embedded quotes are escaped, carriage returns stripped, and newlines
// normalized to literal \n sequences.
func escapeScriptString(s string) string {
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

package email_processor

import (
	"strings"

	"github.com/jhillyerd/enmime"

	"github.com/jeff-nasseri/mailharvest/internal/utils"
)

const (
	contentTypePlain      = "text/plain"
	contentTypeHTML       = "text/html"
	dispositionAttachment = "attachment"
)

// Content flattens the message body. Priority: accumulated text/plain
// parts, then text/html converted via HTMLToText, then a deep scan over
// every part as the last resort. The result is always
// whitespace-collapsed; it is empty only when no part carries a
// decodable payload.
func (p *ParsedEmail) Content(plainTextOnly bool) string {
	root := p.envelope.Root
	if root == nil {
		return ""
	}

	var plain, html strings.Builder

	collect := func(part *enmime.Part) {
		switch {
		case part.Disposition == dispositionAttachment:
		case part.ContentType == contentTypePlain:
			plain.WriteString(utils.SanitizeUTF8(string(part.Content)))
		case part.ContentType == contentTypeHTML && !plainTextOnly:
			html.WriteString(utils.SanitizeUTF8(string(part.Content)))
		}
	}

	if strings.HasPrefix(root.ContentType, "multipart/") {
		walkParts(root, collect)
	} else {
		// a single-part payload classifies by content type alone, with
		// no disposition check
		switch root.ContentType {
		case contentTypePlain:
			plain.WriteString(utils.SanitizeUTF8(string(root.Content)))
		case contentTypeHTML:
			if !plainTextOnly {
				html.WriteString(utils.SanitizeUTF8(string(root.Content)))
			}
		}
	}

	var content string
	switch {
	case plain.Len() > 0:
		content = plain.String()
	case html.Len() > 0:
		content = HTMLToText(html.String())
	default:
		content = p.fallbackContent()
	}

	return utils.CollapseWhitespace(content)
}

// fallbackContent scans every part regardless of content type or
// disposition and joins whatever payloads exist. Anything containing
// both < and > is treated as markup; the loose check is deliberate.
func (p *ParsedEmail) fallbackContent() string {
	var payloads []string
	walkParts(p.envelope.Root, func(part *enmime.Part) {
		if len(part.Content) == 0 {
			return
		}
		payloads = append(payloads, utils.SanitizeUTF8(string(part.Content)))
	})
	if len(payloads) == 0 {
		return ""
	}

	combined := strings.Join(payloads, " ")
	if strings.Contains(combined, "<") && strings.Contains(combined, ">") {
		return HTMLToText(combined)
	}
	return combined
}

// walkParts visits part and its descendants depth-first, in wire order.
func walkParts(part *enmime.Part, visit func(*enmime.Part)) {
	for ; part != nil; part = part.NextSibling {
		visit(part)
		if part.FirstChild != nil {
			walkParts(part.FirstChild, visit)
		}
	}
}

package label

import (
	"regexp"
	"strings"
)

var (
	xmlDeclaration = regexp.MustCompile(`<\?xml.*?\?>`)
	docType        = regexp.MustCompile(`<!DOCTYPE.*?>`)
	xmlComment     = regexp.MustCompile(`(?s)<!--.*?-->`)
	interTagSpace  = regexp.MustCompile(`>\s+<`)
)

// Sanitize normalizes an SVG fragment for embedding. XML declarations,
// DOCTYPEs, comments and whitespace between tags are stripped so fragments
// can be inlined into a larger document. Empty input stays empty; anything
// else must still look like markup afterwards.
func Sanitize(svg string) (string, error) {
	svg = strings.TrimSpace(xmlDeclaration.ReplaceAllString(svg, ""))
	svg = strings.TrimSpace(docType.ReplaceAllString(svg, ""))
	svg = strings.TrimSpace(xmlComment.ReplaceAllString(svg, ""))
	svg = strings.TrimSpace(interTagSpace.ReplaceAllString(svg, "><"))
	if svg == "" {
		return "", nil
	}
	if !strings.HasPrefix(svg, "<") || !strings.HasSuffix(svg, ">") {
		return "", ErrInvalidSVG
	}
	return svg, nil
}

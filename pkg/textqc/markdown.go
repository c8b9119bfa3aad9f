package textqc

import "regexp"

// Artifact kinds reported by DetectMarkdown.
const (
	ArtifactImage = "image"
	ArtifactLink  = "link"
	ArtifactCode  = "code"
)

var (
	mdImagePattern  = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	mdLinkPattern   = regexp.MustCompile(`\[[^\]]+\]\([^)]+\)`)
	mdFencePattern  = regexp.MustCompile("(?m)^[ \t]*(```|~~~)")
	mdInlinePattern = regexp.MustCompile("`[^`\n]+`")
)

// DetectMarkdown scans text for residual markdown syntax and returns the
// artifact kinds found, in a fixed order. Detection runs against the original
// text before any chatter stripping and is used for reporting only.
func DetectMarkdown(text string) []string {
	var kinds []string
	hasImage := mdImagePattern.MatchString(text)
	if hasImage {
		kinds = append(kinds, ArtifactImage)
	}
	// An image reference is itself a bracketed link; mask images out so a
	// lone image does not also count as a link.
	linkText := text
	if hasImage {
		linkText = mdImagePattern.ReplaceAllString(text, "")
	}
	if mdLinkPattern.MatchString(linkText) {
		kinds = append(kinds, ArtifactLink)
	}
	if mdFencePattern.MatchString(text) || mdInlinePattern.MatchString(text) {
		kinds = append(kinds, ArtifactCode)
	}
	return kinds
}

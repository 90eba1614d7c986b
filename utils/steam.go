package utils

import (
	"fmt"
	"strings"
)

// ProfileUrl joins the profile base url and a steam id.
func ProfileUrl(base string, steamId string) string {
	return strings.TrimSuffix(base, "/") + "/" + steamId
}

// ProfileDocumentUrl points at the XML variant of a profile page.
func ProfileDocumentUrl(base string, steamId string) string {
	return fmt.Sprintf("%s/?xml=1", ProfileUrl(base, steamId))
}

// ProfileMarkdownLink renders a profile link for embed field values.
func ProfileMarkdownLink(base string, steamId string) string {
	return fmt.Sprintf("[Profile](%s)", ProfileUrl(base, steamId))
}

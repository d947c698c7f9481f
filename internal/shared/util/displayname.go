package util

import "strings"

// DownloadFileName derives the attachment filename for the resume download
// endpoint: the profile name with whitespace collapsed to underscores,
// falling back to a generic placeholder when no name is configured.
func DownloadFileName(profileName string) string {
	display := strings.Join(strings.Fields(profileName), "_")
	if display == "" {
		display = "My"
	}
	return display + "_Resume.pdf"
}

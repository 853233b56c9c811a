package features

import "regexp"

// linkPattern finds URL-shaped substrings with or without a scheme.
var linkPattern = regexp.MustCompile(`(?i)(?:\b(?:https?|ftp)://[^\s<>"']+|\bwww\.[^\s<>"']+|\b(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+(?:com|org|net|edu|gov|io|co|me|app|dev|info|ly|gl|be|tv|us|uk|es|fr|de|it|nl|pt|br|mx|ar|cl|ru|in)\b(?:/[^\s<>"']*)?)`)

// Links returns the URL-shaped substrings of body, in order.
// Domains that are the host part of an e-mail address are skipped.
func Links(body string) []string {
	var links []string
	for _, loc := range linkPattern.FindAllStringIndex(body, -1) {
		if loc[0] > 0 && body[loc[0]-1] == '@' {
			continue
		}
		links = append(links, body[loc[0]:loc[1]])
	}
	return links
}

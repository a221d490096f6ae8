package entity

import "strings"

const allURLsPermissionText = "Access your data for all websites"

// permissionText maps WebExtension API permissions to the sentence shown to users.
// Permissions absent from this table are granted without asking.
var permissionText = map[string]string{
	"<all_urls>":            allURLsPermissionText,
	"bookmarks":             "Read and modify bookmarks",
	"browserSettings":       "Read and modify browser settings",
	"browsingData":          "Clear recent browsing history, cookies, and related data",
	"clipboardRead":         "Get data from the clipboard",
	"clipboardWrite":        "Input data to the clipboard",
	"declarativeNetRequest": "Block content on any page",
	"devtools":              "Extend developer tools to access your data in open tabs",
	"downloads":             "Download files and read and modify the browser’s download history",
	"downloads.open":        "Open files downloaded to your computer",
	"find":                  "Read the text of all open tabs",
	"geolocation":           "Access your location",
	"history":               "Access browsing history",
	"management":            "Monitor extension usage and manage themes",
	"nativeMessaging":       "Exchange messages with programs other than the browser",
	"notifications":         "Display notifications to you",
	"pkcs11":                "Provide cryptographic authentication services",
	"privacy":               "Read and modify privacy settings",
	"proxy":                 "Control browser proxy settings",
	"sessions":              "Access recently closed tabs",
	"tabHide":               "Hide and show browser tabs",
	"tabs":                  "Access browser tabs",
	"topSites":              "Access browsing history",
}

// LocalizePermissions returns the user-visible text for every permission that
// needs confirmation, in request order and without duplicates.
// An empty result means nothing has to be shown to the user.
func LocalizePermissions(perms []string) []string {
	seen := make(map[string]struct{}, len(perms))
	out := make([]string, 0, len(perms))

	for _, perm := range perms {
		text, ok := localizePermission(perm)
		if !ok {
			continue
		}
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		out = append(out, text)
	}

	return out
}

func localizePermission(perm string) (string, bool) {
	if text, ok := permissionText[perm]; ok {
		return text, true
	}
	if !strings.Contains(perm, "://") {
		return "", false
	}
	return localizeHostPermission(perm)
}

// localizeHostPermission handles match patterns such as "*://*.example.com/*".
func localizeHostPermission(pattern string) (string, bool) {
	_, rest, _ := strings.Cut(pattern, "://")
	host, _, _ := strings.Cut(rest, "/")
	if i := strings.LastIndex(host, "@"); i >= 0 {
		host = host[i+1:]
	}
	if h, _, ok := strings.Cut(host, ":"); ok {
		host = h
	}

	switch {
	case host == "":
		return "", false
	case host == "*":
		return allURLsPermissionText, true
	case strings.HasPrefix(host, "*."):
		return "Access your data for sites in the " + strings.TrimPrefix(host, "*.") + " domain", true
	default:
		return "Access your data for " + host, true
	}
}

package git

import (
	"path"
	"regexp"
	"strings"
)

var gitURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^https?://`),           // https:// or http://
	regexp.MustCompile(`^git@`),                // git@github.com:owner/repo
	regexp.MustCompile(`^ssh://`),              // ssh://git@github.com/owner/repo
	regexp.MustCompile(`^git://`),              // git://github.com/owner/repo
	regexp.MustCompile(`^ftps?://`),            // ftp:// or ftps://
	regexp.MustCompile(`^file://`),             // file:///srv/sets/book.git
	regexp.MustCompile(`\.git(/|\\)?$`),        // ends with .git
	regexp.MustCompile(`^[a-zA-Z0-9.-]+@.*:`), // generic user@host:path format
}

// isGitURL checks if string is git URL (https://, git@, ssh://)
func isGitURL(source string) bool {
	if source == "" {
		return false
	}
	for _, pattern := range gitURLPatterns {
		if pattern.MatchString(source) {
			return true
		}
	}
	return false
}

// repoNameFromURL returns the last path component of a remote URL without
// its .git suffix, which is the directory a clone lands in
func repoNameFromURL(url string) string {
	clean := strings.TrimRight(strings.TrimSpace(url), "/\\")
	clean = strings.TrimSuffix(clean, ".git")

	// git@host:owner/repo has no slash before the path
	if !strings.Contains(clean, "://") {
		if idx := strings.LastIndex(clean, ":"); idx >= 0 && !isWindowsDrive(clean) {
			clean = clean[idx+1:]
		}
	}

	clean = strings.ReplaceAll(clean, "\\", "/")
	name := path.Base(clean)
	if name == "." || name == "/" || strings.Contains(name, ":") {
		return ""
	}
	return name
}

func isWindowsDrive(s string) bool {
	return len(s) >= 2 && s[1] == ':' && ((s[0] >= 'a' && s[0] <= 'z') || (s[0] >= 'A' && s[0] <= 'Z'))
}

// isSameRepo checks if two URLs point to the same repository
// Normalizes URLs for comparison (handles .git suffix, https vs ssh, etc.)
func isSameRepo(url1, url2 string) bool {
	normalize := func(url string) string {
		url = strings.TrimSuffix(url, "/")
		url = strings.TrimSuffix(url, ".git")
		url = strings.ToLower(url)

		// https://github.com/owner/repo
		if strings.HasPrefix(url, "https://") {
			url = strings.TrimPrefix(url, "https://")
		} else if strings.HasPrefix(url, "http://") {
			url = strings.TrimPrefix(url, "http://")
		}
		// ssh://git@github.com/owner/repo
		if strings.HasPrefix(url, "ssh://") {
			url = strings.TrimPrefix(url, "ssh://")
			if idx := strings.Index(url, "@"); idx >= 0 {
				url = url[idx+1:]
			}
		}
		// git@github.com:owner/repo
		if strings.Contains(url, "@") && strings.Contains(url, ":") {
			parts := strings.SplitN(url, "@", 2)
			if len(parts) == 2 {
				url = strings.Replace(parts[1], ":", "/", 1)
			}
		}
		// https://user@github.com/owner/repo
		if idx := strings.Index(url, "@"); idx >= 0 && !strings.Contains(url[:idx], "/") {
			url = url[idx+1:]
		}
		return url
	}

	return normalize(url1) == normalize(url2)
}

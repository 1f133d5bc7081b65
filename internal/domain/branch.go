package domain

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const (
	branchRefPrefix = "refs/heads/"
	remoteRefPrefix = "refs/remotes/"
)

// validBranchNameChars matches valid characters for git branch names
// Allows: alphanumeric, hyphens, underscores, dots, slashes
var validBranchNameChars = regexp.MustCompile(`^[a-zA-Z0-9._/-]+$`)

// ParseBranchName extracts the branch name from repository config text.
//
// The first line containing "branch" wins. It is split on spaces and the
// field after the first one mentioning "branch", stripped of quotes, the
// closing bracket and surrounding whitespace, is the branch name. Existing configs depend on this exact
// behaviour, so it is a text scan rather than a config parser.
func ParseBranchName(configText string) (string, error) {
	scanner := bufio.NewScanner(strings.NewReader(configText))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, "branch") {
			continue
		}
		fields := strings.Split(line, " ")
		at := -1
		for i, f := range fields {
			if strings.Contains(f, "branch") {
				at = i
				break
			}
		}
		if at < 0 || at+1 >= len(fields) {
			return "", fmt.Errorf("%w: malformed line %q", ErrConfigParseFailure, line)
		}
		name := strings.ReplaceAll(fields[at+1], `"`, "")
		name = strings.ReplaceAll(name, "]", "")
		name = strings.TrimSpace(name)
		if name == "" {
			return "", fmt.Errorf("%w: empty branch name in line %q", ErrConfigParseFailure, line)
		}
		return name, nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrConfigParseFailure, err)
	}
	return "", fmt.Errorf("%w: no branch entry", ErrConfigParseFailure)
}

// ValidateBranchName checks a branch name against git ref rules.
//
// Git branch naming rules enforced:
// - Cannot start with '.', '/' or '-' or end with '.lock', '.', '/'
// - Cannot contain '..' or '//' or '@{'
// - Cannot contain control characters or anything outside [a-zA-Z0-9._/-]
func ValidateBranchName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidBranchName)
	}
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "/") || strings.HasPrefix(name, "-") {
		return fmt.Errorf("%w: %q has an invalid first character", ErrInvalidBranchName, name)
	}
	if strings.HasSuffix(name, ".lock") || strings.HasSuffix(name, ".") || strings.HasSuffix(name, "/") {
		return fmt.Errorf("%w: %q has an invalid ending", ErrInvalidBranchName, name)
	}
	if strings.Contains(name, "..") || strings.Contains(name, "//") || strings.Contains(name, "@{") {
		return fmt.Errorf("%w: %q contains an invalid sequence", ErrInvalidBranchName, name)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control characters are not allowed", ErrInvalidBranchName)
		}
	}
	if !validBranchNameChars.MatchString(name) {
		return fmt.Errorf("%w: %q (only alphanumeric, '.', '_', '-', '/' allowed)", ErrInvalidBranchName, name)
	}
	return nil
}

// BranchRef returns refs/heads/<branch>
func BranchRef(branch string) string {
	var b strings.Builder
	b.Grow(len(branchRefPrefix) + len(branch))
	b.WriteString(branchRefPrefix)
	b.WriteString(branch)
	return b.String()
}

// RemoteTrackingRef returns refs/remotes/<remote>/<branch>
func RemoteTrackingRef(remote, branch string) string {
	var b strings.Builder
	b.Grow(len(remoteRefPrefix) + len(remote) + 1 + len(branch))
	b.WriteString(remoteRefPrefix)
	b.WriteString(remote)
	b.WriteByte('/')
	b.WriteString(branch)
	return b.String()
}

// PushRefSpec builds refs/heads/<branch>:refs/heads/<branch> for a validated
// branch name
func PushRefSpec(branch string) (string, error) {
	if err := ValidateBranchName(branch); err != nil {
		return "", err
	}
	ref := BranchRef(branch)
	return ref + ":" + ref, nil
}

package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `[core]
	repositoryformatversion = 0
	filemode = true
	bare = false
	logallrefupdates = true
[remote "origin"]
	url = https://github.com/udaan-sets/book-42.git
	fetch = +refs/heads/*:refs/remotes/origin/*
[branch "main"]
	remote = origin
	merge = refs/heads/main
`

func TestParseBranchName_SingleBranchEntry(t *testing.T) {
	tests := []struct {
		name     string
		config   string
		expected string
	}{
		{"typical config", sampleConfig, "main"},
		{"inline fragment", `... branch "main"] ...`, "main"},
		{"trailing whitespace", "[branch \"master\"]   \r\n", "master"},
		{"slash in name", "[branch \"set/verifier-7\"]\n", "set/verifier-7"},
		{"unquoted", "[branch dev]\n", "dev"},
		{"keyword mid line", `x y branch "review"] z`, "review"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			branch, err := ParseBranchName(tt.config)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, branch)
		})
	}
}

func TestParseBranchName_FirstMatchWins(t *testing.T) {
	config := "[branch \"first\"]\n\tremote = origin\n[branch \"second\"]\n"

	branch, err := ParseBranchName(config)

	require.NoError(t, err)
	assert.Equal(t, "first", branch)
}

func TestParseBranchName_EarlierLineMentioningBranchWins(t *testing.T) {
	// Any line containing "branch" matches, not only section headers
	config := "[core]\n\tdefaultbranch = trunk\n[branch \"main\"]\n"

	branch, err := ParseBranchName(config)

	require.NoError(t, err)
	assert.Equal(t, "=", branch)
}

func TestParseBranchName_Failures(t *testing.T) {
	tests := []struct {
		name   string
		config string
	}{
		{"empty", ""},
		{"no branch line", "[core]\n\tbare = false\n"},
		{"single field", "[branch\n"},
		{"nothing after keyword", "remote = origin branch\n"},
		{"empty name", "[branch \"\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBranchName(tt.config)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfigParseFailure))
		})
	}
}

func TestValidateBranchName(t *testing.T) {
	tests := []struct {
		name    string
		branch  string
		wantErr bool
	}{
		{"simple", "main", false},
		{"nested", "set/verifier", false},
		{"dots", "v1.2", false},
		{"empty", "", true},
		{"leading dot", ".hidden", true},
		{"leading dash", "-x", true},
		{"lock suffix", "main.lock", true},
		{"double dot", "a..b", true},
		{"reflog syntax", "main@{1}", true},
		{"space", "my branch", true},
		{"control char", "ma\x01in", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBranchName(tt.branch)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidBranchName))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPushRefSpec(t *testing.T) {
	spec, err := PushRefSpec("main")
	require.NoError(t, err)
	assert.Equal(t, "refs/heads/main:refs/heads/main", spec)
}

func TestPushRefSpec_LongBranchNameIsNotTruncated(t *testing.T) {
	branch := strings.Repeat("a", 300)

	spec, err := PushRefSpec(branch)

	require.NoError(t, err)
	assert.Equal(t, "refs/heads/"+branch+":refs/heads/"+branch, spec)
}

func TestPushRefSpec_RejectsInvalidBranch(t *testing.T) {
	_, err := PushRefSpec("bad name")
	assert.ErrorIs(t, err, ErrInvalidBranchName)
}

func TestRemoteTrackingRef(t *testing.T) {
	assert.Equal(t, "refs/remotes/origin/main", RemoteTrackingRef("origin", "main"))
	assert.Equal(t, "refs/heads/main", BranchRef("main"))
}

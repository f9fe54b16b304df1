/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import "testing"

func TestGet(t *testing.T) {
	saved := []string{Version, GitCommit, GitTag, GitDirty}
	t.Cleanup(func() {
		Version, GitCommit, GitTag, GitDirty = saved[0], saved[1], saved[2], saved[3]
	})

	tests := []struct {
		name                       string
		version, commit, tag, dirt string
		expected                   string
	}{
		{"explicit version", "v1.2.3", "abcdef0123", "v1.0.0", "", "v1.2.3"},
		{"tag and commit", "dev", "abcdef0123", "v1.0.0", "", "v1.0.0-abcdef0"},
		{"tag already has commit", "dev", "abcdef0123", "v1.0.0-abcdef0", "", "v1.0.0-abcdef0"},
		{"dirty tree", "dev", "abc", "v1.0.0", "dirty", "v1.0.0-abc-dirty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, GitCommit, GitTag, GitDirty = tt.version, tt.commit, tt.tag, tt.dirt
			if got := Get(); got != tt.expected {
				t.Errorf("Get() = %q, want %q", got, tt.expected)
			}
		})
	}

	Version, GitCommit, GitTag, GitDirty = "dev", "unknown", "unknown", ""
	if info := Info(); info.Dirty || info.GitTag != "unknown" {
		t.Errorf("Info() = %+v, want clean build with unknown tag", info)
	}
}

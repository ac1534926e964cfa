package manifest

import (
	"crypto/sha256"
	"fmt"
	"io/fs"
	"sort"
)

type Issue struct {
	ArtifactKind string
	ArtifactPath string
	ExpectedHash string
	ActualHash   string
	Reason       string
}

func (i Issue) String() string {
	if i.ArtifactPath == "" {
		return fmt.Sprintf("%s: %s", i.ArtifactKind, i.Reason)
	}
	return fmt.Sprintf("%s (%s): %s", i.ArtifactKind, i.ArtifactPath, i.Reason)
}

// Verify recomputes the checksum of every artifact in m against the contents
// of fsys and checks that the grammar ABI version is one the binding accepts.
// It reports issues rather than failing on the first, so a packager sees the
// whole picture in one run.
func Verify(fsys fs.FS, m Manifest) []Issue {
	issues := make([]Issue, 0)

	allowed := false
	for _, version := range m.AllowedABIVersions {
		if version == m.Grammar.ABIVersion {
			allowed = true
			break
		}
	}
	if !allowed {
		issues = append(issues, Issue{
			ArtifactKind: "grammar",
			Reason:       fmt.Sprintf("ABI version %d is not in allowed_abi_versions", m.Grammar.ABIVersion),
		})
	}

	for _, artifact := range m.Artifacts {
		data, err := fs.ReadFile(fsys, artifact.Path)
		if err != nil {
			issues = append(issues, Issue{
				ArtifactKind: artifact.Kind,
				ArtifactPath: artifact.Path,
				ExpectedHash: artifact.Hash,
				ActualHash:   "<missing>",
				Reason:       "artifact missing or unreadable",
			})
			continue
		}
		actual := fmt.Sprintf("%x", sha256.Sum256(data))
		if actual != artifact.Hash {
			issues = append(issues, Issue{
				ArtifactKind: artifact.Kind,
				ArtifactPath: artifact.Path,
				ExpectedHash: artifact.Hash,
				ActualHash:   actual,
				Reason:       "checksum mismatch",
			})
		}
	}

	sort.Slice(issues, func(i, j int) bool {
		if issues[i].ArtifactKind != issues[j].ArtifactKind {
			return issues[i].ArtifactKind < issues[j].ArtifactKind
		}
		if issues[i].ArtifactPath != issues[j].ArtifactPath {
			return issues[i].ArtifactPath < issues[j].ArtifactPath
		}
		return issues[i].Reason < issues[j].Reason
	})
	return issues
}

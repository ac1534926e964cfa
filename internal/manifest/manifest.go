// Package manifest describes and verifies the static grammar artifacts
// shipped with the binding: the node-type schema, the query sources, and the
// metadata of the externally linked parser tables. Consistency between the
// tables and the artifacts is a packaging contract; verification exists so
// packagers can check it before release, not so the runtime can enforce it.
package manifest

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
)

type Manifest struct {
	Version            int        `toml:"version"`
	AllowedABIVersions []int      `toml:"allowed_abi_versions"`
	Grammar            Grammar    `toml:"grammar"`
	Artifacts          []Artifact `toml:"artifacts"`
}

type Grammar struct {
	Name       string `toml:"name"`
	ABIVersion int    `toml:"abi_version"`
	EntryPoint string `toml:"entry_point"`
}

type Artifact struct {
	Kind string `toml:"kind"`
	Path string `toml:"path"`
	Hash string `toml:"sha256"`
}

// Load reads and validates a manifest from fsys.
func Load(fsys fs.FS, path string) (Manifest, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Manifest{}, err
	}

	var m Manifest
	if _, err := toml.Decode(string(data), &m); err != nil {
		return Manifest{}, err
	}

	if m.Version <= 0 {
		return Manifest{}, fmt.Errorf("manifest version must be > 0")
	}
	if len(m.AllowedABIVersions) == 0 {
		return Manifest{}, fmt.Errorf("manifest must define allowed_abi_versions")
	}
	if strings.TrimSpace(m.Grammar.Name) == "" {
		return Manifest{}, fmt.Errorf("grammar.name must not be empty")
	}
	if m.Grammar.ABIVersion <= 0 {
		return Manifest{}, fmt.Errorf("grammar.abi_version must be > 0")
	}
	if strings.TrimSpace(m.Grammar.EntryPoint) == "" {
		return Manifest{}, fmt.Errorf("grammar.entry_point must not be empty")
	}
	if len(m.Artifacts) == 0 {
		return Manifest{}, fmt.Errorf("manifest must define at least one artifact")
	}

	seen := make(map[string]bool, len(m.Artifacts))
	for i, artifact := range m.Artifacts {
		ref := fmt.Sprintf("artifacts[%d]", i)
		artifact.Kind = strings.TrimSpace(strings.ToLower(artifact.Kind))
		artifact.Path = strings.TrimSpace(artifact.Path)
		artifact.Hash = strings.TrimSpace(strings.ToLower(artifact.Hash))

		if artifact.Kind == "" {
			return Manifest{}, fmt.Errorf("%s.kind must not be empty", ref)
		}
		if seen[artifact.Kind] {
			return Manifest{}, fmt.Errorf("duplicate artifact kind %q in manifest", artifact.Kind)
		}
		seen[artifact.Kind] = true
		if artifact.Path == "" {
			return Manifest{}, fmt.Errorf("%s.path must not be empty", ref)
		}
		if len(artifact.Hash) != 64 {
			return Manifest{}, fmt.Errorf("%s.sha256 must be a 64-character hex digest", ref)
		}
		m.Artifacts[i] = artifact
	}

	return m, nil
}

package scenario

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// file is the top-level YAML document.
type file struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Parse decodes a YAML document and checks the scenario names.
// Unknown fields are rejected.
func Parse(data []byte) ([]Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode scenarios")
	}
	if err := check(f.Scenarios); err != nil {
		return nil, err
	}

	return f.Scenarios, nil
}

// Load reads and parses the scenario file at path from fs.
func Load(fs afero.Fs, path string) ([]Scenario, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrap(err, "read scenario file")
	}

	sc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	return sc, nil
}

// LoadAll loads several files and concatenates their scenarios. Names must
// be unique across all of them.
func LoadAll(fs afero.Fs, paths ...string) ([]Scenario, error) {
	var all []Scenario
	for _, p := range paths {
		sc, err := Load(fs, p)
		if err != nil {
			return nil, err
		}
		all = append(all, sc...)
	}
	if err := check(all); err != nil {
		return nil, err
	}

	return all, nil
}

// Save writes scenarios to path in the format Parse reads.
func Save(fs afero.Fs, path string, scenarios []Scenario) error {
	data, err := yaml.Marshal(file{Scenarios: scenarios})
	if err != nil {
		return errors.Wrap(err, "encode scenarios")
	}

	return errors.Wrap(afero.WriteFile(fs, path, data, 0o644), "write scenario file")
}

func check(scenarios []Scenario) error {
	if len(scenarios) == 0 {
		return ErrNoScenarios
	}
	seen := make(map[string]bool, len(scenarios))
	for i, s := range scenarios {
		if s.Name == "" {
			return errors.Wrapf(ErrEmptyName, "scenario #%d", i+1)
		}
		if seen[s.Name] {
			return errors.Wrapf(ErrDuplicateName, "scenario %q", s.Name)
		}
		seen[s.Name] = true
	}

	return nil
}

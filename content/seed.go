package content

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Seed is the YAML document loaded by `content seed`
type Seed struct {
	Projects     []Project     `yaml:"projects"`
	Testimonials []Testimonial `yaml:"testimonials"`
}

// LoadSeed parses a seed document, unknown fields are rejected
func LoadSeed(r io.Reader) (*Seed, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var seed Seed
	if err := dec.Decode(&seed); err != nil {
		if err == io.EOF {
			return &seed, nil
		}
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	for i, p := range seed.Projects {
		if p.Title == "" || p.Slug == "" {
			return nil, fmt.Errorf("projects[%d]: %w: title and slug", i, ErrMissingField)
		}
	}
	for i, t := range seed.Testimonials {
		if t.Name == "" || t.Content == "" {
			return nil, fmt.Errorf("testimonials[%d]: %w: name and content", i, ErrMissingField)
		}
	}
	return &seed, nil
}

// LoadSeedFile opens and parses a seed file
func LoadSeedFile(path string) (*Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()
	return LoadSeed(f)
}

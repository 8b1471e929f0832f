package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Plans []Product `yaml:"plans"`
}

// LoadFile reads a YAML catalog:
//
//	plans:
//	  - id: la-luxe-14x14
//	    title: Los Angeles Luxe 14x14 Pergola
//	    slug: los-angeles-luxe-14x14
//	    product_url: https://example.com/plans/la-luxe
//	    specs:
//	      - {label: Size, value: 14x14 ft}
//
// Plans without an id take their slug.
func LoadFile(path string) ([]Product, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Decode(b)
}

// Decode parses YAML catalog bytes; see LoadFile.
func Decode(b []byte) ([]Product, error) {
	var f catalogFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for i := range f.Plans {
		if f.Plans[i].ID == "" {
			f.Plans[i].ID = f.Plans[i].Slug
		}
	}
	return f.Plans, nil
}

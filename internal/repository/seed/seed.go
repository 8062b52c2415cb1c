// Package seed holds the built-in records used when a collection was never stored.
package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Dirk1989/Ideal/internal/domain"
)

//go:embed seed.yaml
var raw []byte

// Data is the decoded seed document.
type Data struct {
	Vehicles  []domain.Vehicle  `yaml:"vehicles"`
	BlogPosts []domain.BlogPost `yaml:"blogPosts"`
	Dealers   []domain.Dealer   `yaml:"dealers"`
}

// Load decodes the embedded seed records. Every call returns fresh slices.
func Load() (Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return Data{}, fmt.Errorf("decode seed data: %w", err)
	}
	for i := range d.Vehicles {
		if d.Vehicles[i].Images == nil {
			d.Vehicles[i].Images = []string{}
		}
	}
	return d, nil
}

package level

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/levelgen/internal/game/geom"
)

// yamlCatalogueFile is the top-level YAML structure for catalogue files.
type yamlCatalogueFile struct {
	Catalogue yamlCatalogue `yaml:"catalogue"`
}

// yamlCatalogue is the YAML representation of a catalogue.
type yamlCatalogue struct {
	Spawn    yamlTemplate   `yaml:"spawn"`
	Terminal yamlTemplate   `yaml:"terminal"`
	Regular  []yamlTemplate `yaml:"regular"`
}

// yamlTemplate is the YAML representation of a room template.
type yamlTemplate struct {
	Name   string   `yaml:"name"`
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Doors  [][2]int `yaml:"doors"`
}

// LoadCatalogueFromFile reads and validates a catalogue YAML file.
//
// Precondition: path must point to a valid YAML catalogue file.
// Postcondition: Returns a validated Catalogue or a non-nil error.
func LoadCatalogueFromFile(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalogue file %s: %w", path, err)
	}
	return LoadCatalogueFromBytes(data)
}

// LoadCatalogueFromBytes parses and validates a catalogue from YAML bytes.
//
// Precondition: data must be valid YAML conforming to the catalogue schema.
// Postcondition: Returns a validated Catalogue or a non-nil error.
func LoadCatalogueFromBytes(data []byte) (*Catalogue, error) {
	var file yamlCatalogueFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalogue YAML: %w", err)
	}

	c := &Catalogue{
		Spawn:    convertYAMLTemplate(file.Catalogue.Spawn),
		Terminal: convertYAMLTemplate(file.Catalogue.Terminal),
	}
	for _, yt := range file.Catalogue.Regular {
		c.Regular = append(c.Regular, convertYAMLTemplate(yt))
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validating catalogue: %w", err)
	}
	return c, nil
}

func convertYAMLTemplate(yt yamlTemplate) Template {
	t := Template{
		Name: yt.Name,
		Size: geom.V(float64(yt.Width), float64(yt.Height)),
	}
	for _, d := range yt.Doors {
		t.Doors = append(t.Doors, geom.V(float64(d[0]), float64(d[1])))
	}
	return t
}

package hotels

import (
	_ "embed"
	"fmt"

	"github.com/hterhoeven/cardlens/model"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

type catalogFile struct {
	Hotels []*model.Hotel `yaml:"hotels"`
}

// LoadCatalog parses the embedded static hotel catalog. The catalog is
// configuration data shipped with the binary; it is never fetched.
func LoadCatalog() ([]*model.Hotel, error) {
	var file catalogFile
	if err := yaml.Unmarshal(catalogYAML, &file); err != nil {
		return nil, fmt.Errorf("error parsing hotel catalog: %w", err)
	}

	for _, hotel := range file.Hotels {
		hotel.Source = model.HotelSourceCatalog
	}
	return file.Hotels, nil
}

// Package levels embeds the built-in puzzle catalog.
package levels

import (
	_ "embed"

	"github.com/jdginn/go-laser-puzzle/laser/config"
)

//go:embed catalog.yaml
var catalog []byte

// Default returns the built-in catalog, validated.
func Default() (*config.Catalog, error) {
	return config.Load(catalog, nil, config.LoadOptions{ValidateImmediately: true})
}

// Raw returns the built-in catalog as YAML.
func Raw() []byte {
	return append([]byte(nil), catalog...)
}

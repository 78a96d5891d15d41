// Package policy loads the versioned anti-abuse catalog: moderation word
// lists and patterns, and the badge catalog.
package policy

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the parsed rule set.
type Catalog struct {
	Version    int             `yaml:"version"`
	Moderation ModerationRules `yaml:"moderation"`
	Badges     BadgeRules      `yaml:"badges"`
}

// ModerationRules feed the content moderator.
type ModerationRules struct {
	Lexicon           []string `yaml:"lexicon"`
	ExplicitPatterns  []string `yaml:"explicit_patterns"`
	DangerousPatterns []string `yaml:"dangerous_patterns"`
}

// BadgeRules is the closed set of badges a client may claim.
type BadgeRules struct {
	BonusPoints int64    `yaml:"bonus_points"`
	IDs         []string `yaml:"ids"`
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog file, or returns Default when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if c.Version <= 0 {
		return nil, errors.New("catalog: version must be positive")
	}
	if len(c.Badges.IDs) == 0 {
		return nil, errors.New("catalog: no badges")
	}
	if c.Badges.BonusPoints <= 0 {
		return nil, errors.New("catalog: badge bonus must be positive")
	}
	return &c, nil
}

// IsBadge reports whether id is a catalog badge.
func (c *Catalog) IsBadge(id string) bool { return slices.Contains(c.Badges.IDs, id) }

// Package reference loads the static county reference table.
package reference

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"go.uber.org/zap"

	"github.com/collisions-monitor/internal/domain"
)

//go:embed california_counties.yaml
var californiaCounties []byte

// Loader читает справочник округов из YAML файла или из встроенной копии
type Loader struct {
	path   string
	logger *zap.Logger
}

// NewLoader creates a loader. An empty path selects the embedded California table.
func NewLoader(path string, logger *zap.Logger) *Loader {
	return &Loader{
		path:   path,
		logger: logger,
	}
}

// Load reads and validates the reference.
func (l *Loader) Load() (domain.CountyReference, error) {
	data := californiaCounties
	source := "embedded"

	if l.path != "" {
		content, err := os.ReadFile(l.path)
		if err != nil {
			return domain.CountyReference{}, fmt.Errorf("read county reference %s: %w", l.path, err)
		}
		data = content
		source = l.path
	}

	counties, err := Parse(data)
	if err != nil {
		return domain.CountyReference{}, fmt.Errorf("parse county reference %s: %w", source, err)
	}

	l.logger.Info("County reference loaded",
		zap.String("source", source),
		zap.Int("counties", len(counties)),
	)

	return domain.NewCountyReference(counties), nil
}

// Parse decodes a YAML list of counties and rejects empty, duplicate or negative entries.
func Parse(data []byte) ([]domain.County, error) {
	var counties []domain.County
	if err := yaml.Unmarshal(data, &counties); err != nil {
		return nil, fmt.Errorf("unmarshal counties: %w", err)
	}
	if len(counties) == 0 {
		return nil, fmt.Errorf("no counties defined")
	}

	seen := make(map[string]struct{}, len(counties))
	for i, c := range counties {
		if c.Code == "" {
			return nil, fmt.Errorf("county #%d: empty code", i)
		}
		if c.Code == domain.AllCounties {
			return nil, fmt.Errorf("county #%d: code %q is reserved", i, c.Code)
		}
		if _, dup := seen[c.Code]; dup {
			return nil, fmt.Errorf("county #%d: duplicate code %q", i, c.Code)
		}
		if c.Population < 0 {
			return nil, fmt.Errorf("county %s: negative population %d", c.Code, c.Population)
		}
		seen[c.Code] = struct{}{}
	}

	return counties, nil
}

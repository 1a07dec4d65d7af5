package zoning

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"setback-area-service/internal/domain"
)

// YAMLRequirementsResolver resolves zone codes to setback requirements from
// a static YAML rule table. The table is loaded once; lookups are
// case-insensitive on the zone code.
//
// File shape:
//
//	zones:
//	  r1: {front_m: 6.0, side_m: 1.5, rear_m: 3.0}
//	  c2: {front_m: 4.0, side_m: 0.0, rear_m: 3.0}
type YAMLRequirementsResolver struct {
	zones map[string]domain.SetbackRequirements
}

type zoneFile struct {
	Zones map[string]zoneEntry `yaml:"zones"`
}

type zoneEntry struct {
	FrontM float64 `yaml:"front_m"`
	SideM  float64 `yaml:"side_m"`
	RearM  float64 `yaml:"rear_m"`
}

// LoadYAMLRequirementsResolver reads and validates a zoning rule file.
func LoadYAMLRequirementsResolver(path string) (*YAMLRequirementsResolver, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load zoning rules: read %q: %w", path, err)
	}
	return ParseRequirements(raw)
}

// ParseRequirements builds a resolver from raw YAML.
func ParseRequirements(raw []byte) (*YAMLRequirementsResolver, error) {
	var f zoneFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("load zoning rules: parse yaml: %w", err)
	}
	if len(f.Zones) == 0 {
		return nil, fmt.Errorf("load zoning rules: no zones defined")
	}

	zones := make(map[string]domain.SetbackRequirements, len(f.Zones))
	for code, e := range f.Zones {
		req := domain.SetbackRequirements{FrontM: e.FrontM, SideM: e.SideM, RearM: e.RearM}
		if !req.Valid() {
			return nil, fmt.Errorf("load zoning rules: zone %q has negative setbacks", code)
		}
		zones[strings.ToLower(strings.TrimSpace(code))] = req
	}
	return &YAMLRequirementsResolver{zones: zones}, nil
}

// Resolve returns the requirements for a zone code.
func (r *YAMLRequirementsResolver) Resolve(_ context.Context, zone string) (domain.SetbackRequirements, error) {
	req, ok := r.zones[strings.ToLower(strings.TrimSpace(zone))]
	if !ok {
		return domain.SetbackRequirements{}, fmt.Errorf("resolve requirements: unknown zone %q", zone)
	}
	return req, nil
}

// CropRecommendation - Crop Recommendation Decision Engine
// Copyright 2026 Vikas Reddy (vikasreddy148)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vikasreddy148/CropRecommendation

package catalog

import (
	"fmt"
	"sort"
	"time"
)

// Season identifies an Indian cropping season.
type Season string

const (
	// SeasonKharif is the monsoon season (June-October).
	SeasonKharif Season = "kharif"
	// SeasonRabi is the winter season (November-March).
	SeasonRabi Season = "rabi"
	// SeasonZaid is the short summer season (April-May).
	SeasonZaid Season = "zaid"
	// SeasonYearRound marks crops grown in any season.
	SeasonYearRound Season = "year_round"
)

// ParseSeason validates a season string.
func ParseSeason(s string) (Season, error) {
	switch Season(s) {
	case SeasonKharif, SeasonRabi, SeasonZaid, SeasonYearRound:
		return Season(s), nil
	default:
		return "", fmt.Errorf("unknown season %q", s)
	}
}

// CurrentSeason derives the cropping season from a calendar date.
func CurrentSeason(t time.Time) Season {
	switch t.Month() {
	case time.June, time.July, time.August, time.September, time.October:
		return SeasonKharif
	case time.November, time.December, time.January, time.February, time.March:
		return SeasonRabi
	default:
		return SeasonZaid
	}
}

// Family classifies crops for rotation analysis.
type Family string

const (
	FamilyCereal     Family = "cereal"
	FamilyLegume     Family = "legume"
	FamilyFiber      Family = "fiber"
	FamilyCash       Family = "cash"
	FamilyRoot       Family = "root"
	FamilySolanaceae Family = "solanaceae"
	FamilyAllium     Family = "allium"
)

var knownFamilies = map[Family]struct{}{
	FamilyCereal: {}, FamilyLegume: {}, FamilyFiber: {}, FamilyCash: {},
	FamilyRoot: {}, FamilySolanaceae: {}, FamilyAllium: {},
}

// Economics holds the cost and price inputs for profit projection.
type Economics struct {
	// MarketPricePerKg is the expected farm-gate price.
	MarketPricePerKg float64 `json:"market_price_per_kg" koanf:"market_price_per_kg"`

	// InputCostPerHa covers seeds, fertilizer, and pesticides.
	InputCostPerHa float64 `json:"input_cost_per_ha" koanf:"input_cost_per_ha"`

	// LaborCostPerHa is additional to input costs.
	LaborCostPerHa float64 `json:"labor_cost_per_ha" koanf:"labor_cost_per_ha"`

	// RiskFactor is the crop-specific downside probability in [0, 1].
	RiskFactor float64 `json:"risk_factor" koanf:"risk_factor"`
}

// CropProfile describes one crop's agronomic requirements and reference data.
type CropProfile struct {
	Name   string `json:"name" koanf:"name"`
	Family Family `json:"family" koanf:"family"`

	// Agronomic requirements.
	PHMin          float64  `json:"ph_min" koanf:"ph_min"`
	PHMax          float64  `json:"ph_max" koanf:"ph_max"`
	NMin           float64  `json:"n_min" koanf:"n_min"`
	PMin           float64  `json:"p_min" koanf:"p_min"`
	KMin           float64  `json:"k_min" koanf:"k_min"`
	MoistureMin    float64  `json:"moisture_min" koanf:"moisture_min"`
	TemperatureMin float64  `json:"temperature_min" koanf:"temperature_min"`
	TemperatureMax float64  `json:"temperature_max" koanf:"temperature_max"`
	RainfallMin    float64  `json:"rainfall_min" koanf:"rainfall_min"`
	Seasons        []Season `json:"seasons" koanf:"seasons"`

	// Reference yield in kg/ha, used when no ML yield estimate is available.
	AverageYieldKgPerHa float64 `json:"average_yield_kg_per_ha" koanf:"average_yield_kg_per_ha"`

	// BaseSustainabilityScore is the static 0-100 reference score.
	BaseSustainabilityScore float64 `json:"base_sustainability_score" koanf:"base_sustainability_score"`

	Economics Economics `json:"economics" koanf:"economics"`

	// Environmental factors for sustainability scoring.
	WaterUsagePerHa      float64 `json:"water_usage_per_ha" koanf:"water_usage_per_ha"`
	SoilHealthImpact     float64 `json:"soil_health_impact" koanf:"soil_health_impact"`
	CarbonFootprintPerHa float64 `json:"carbon_footprint_per_ha" koanf:"carbon_footprint_per_ha"`
	BiodiversityImpact   float64 `json:"biodiversity_impact" koanf:"biodiversity_impact"`
}

// GrowsIn reports whether the crop can be planted in the given season.
func (p *CropProfile) GrowsIn(season Season) bool {
	for _, s := range p.Seasons {
		if s == season || s == SeasonYearRound {
			return true
		}
	}
	return false
}

// RotationRules holds the static crop-sequence compatibility matrices.
type RotationRules struct {
	// Beneficial maps a candidate crop to predecessors that improve it,
	// e.g. a cereal following a legume.
	Beneficial map[string][]string `json:"beneficial" koanf:"beneficial"`

	// Incompatible maps a candidate crop to predecessors that should not
	// precede it (same family, shared pests, or soil depletion).
	Incompatible map[string][]string `json:"incompatible" koanf:"incompatible"`
}

// Range is an observed min/max over the catalog, used for normalization.
type Range struct {
	Min float64
	Max float64
}

// Catalog is the immutable crop reference table.
type Catalog struct {
	profiles map[string]*CropProfile
	names    []string
	rotation RotationRules

	waterRange  Range
	carbonRange Range
}

// New builds and validates a catalog. An empty profile set, an unknown
// family, an invalid season, or a rotation rule referencing a crop absent
// from the table is a fatal configuration error.
func New(profiles []CropProfile, rotation RotationRules) (*Catalog, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("crop catalog is empty")
	}

	c := &Catalog{
		profiles: make(map[string]*CropProfile, len(profiles)),
		names:    make([]string, 0, len(profiles)),
		rotation: rotation,
	}

	for i := range profiles {
		p := profiles[i]
		if err := validateProfile(&p); err != nil {
			return nil, fmt.Errorf("crop %q: %w", p.Name, err)
		}
		if _, dup := c.profiles[p.Name]; dup {
			return nil, fmt.Errorf("crop %q: duplicate profile", p.Name)
		}
		c.profiles[p.Name] = &p
		c.names = append(c.names, p.Name)
	}
	sort.Strings(c.names)

	if err := c.validateRotation(); err != nil {
		return nil, err
	}

	c.waterRange = c.computeRange(func(p *CropProfile) float64 { return p.WaterUsagePerHa })
	c.carbonRange = c.computeRange(func(p *CropProfile) float64 { return p.CarbonFootprintPerHa })

	return c, nil
}

// Default returns a catalog built from the built-in 12-crop reference table.
func Default() (*Catalog, error) {
	return New(DefaultProfiles(), DefaultRotationRules())
}

func validateProfile(p *CropProfile) error {
	if p.Name == "" {
		return fmt.Errorf("name is empty")
	}
	if _, ok := knownFamilies[p.Family]; !ok {
		return fmt.Errorf("unknown family %q", p.Family)
	}
	if p.PHMin > p.PHMax {
		return fmt.Errorf("ph_min %.2f > ph_max %.2f", p.PHMin, p.PHMax)
	}
	if p.TemperatureMin > p.TemperatureMax {
		return fmt.Errorf("temperature_min %.1f > temperature_max %.1f", p.TemperatureMin, p.TemperatureMax)
	}
	if len(p.Seasons) == 0 {
		return fmt.Errorf("no seasons declared")
	}
	for _, s := range p.Seasons {
		if _, err := ParseSeason(string(s)); err != nil {
			return err
		}
	}
	if p.Economics.RiskFactor < 0 || p.Economics.RiskFactor > 1 {
		return fmt.Errorf("risk_factor %.2f outside [0, 1]", p.Economics.RiskFactor)
	}
	if p.SoilHealthImpact < -100 || p.SoilHealthImpact > 100 {
		return fmt.Errorf("soil_health_impact %.1f outside [-100, 100]", p.SoilHealthImpact)
	}
	if p.BiodiversityImpact < -100 || p.BiodiversityImpact > 100 {
		return fmt.Errorf("biodiversity_impact %.1f outside [-100, 100]", p.BiodiversityImpact)
	}
	if p.AverageYieldKgPerHa < 0 {
		return fmt.Errorf("average_yield_kg_per_ha %.1f is negative", p.AverageYieldKgPerHa)
	}
	return nil
}

func (c *Catalog) validateRotation() error {
	check := func(matrix map[string][]string, label string) error {
		for crop, others := range matrix {
			if _, ok := c.profiles[crop]; !ok {
				return fmt.Errorf("rotation %s rule references unknown crop %q", label, crop)
			}
			for _, other := range others {
				if _, ok := c.profiles[other]; !ok {
					return fmt.Errorf("rotation %s rule for %q references unknown crop %q", label, crop, other)
				}
			}
		}
		return nil
	}

	if err := check(c.rotation.Beneficial, "beneficial"); err != nil {
		return err
	}
	return check(c.rotation.Incompatible, "incompatible")
}

func (c *Catalog) computeRange(f func(*CropProfile) float64) Range {
	r := Range{Min: f(c.profiles[c.names[0]]), Max: f(c.profiles[c.names[0]])}
	for _, name := range c.names {
		v := f(c.profiles[name])
		if v < r.Min {
			r.Min = v
		}
		if v > r.Max {
			r.Max = v
		}
	}
	return r
}

// Get returns the profile for a crop, or false if the crop is not in the table.
func (c *Catalog) Get(name string) (*CropProfile, bool) {
	p, ok := c.profiles[name]
	return p, ok
}

// Names returns all crop names in ascending order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of crops in the table.
func (c *Catalog) Len() int {
	return len(c.names)
}

// WaterUsageRange returns the min/max water usage across the table.
func (c *Catalog) WaterUsageRange() Range {
	return c.waterRange
}

// CarbonFootprintRange returns the min/max carbon footprint across the table.
func (c *Catalog) CarbonFootprintRange() Range {
	return c.carbonRange
}

// BeneficialPredecessors returns crops that benefit the candidate when grown before it.
func (c *Catalog) BeneficialPredecessors(crop string) []string {
	return c.rotation.Beneficial[crop]
}

// IncompatiblePredecessors returns crops that should not precede the candidate.
func (c *Catalog) IncompatiblePredecessors(crop string) []string {
	return c.rotation.Incompatible[crop]
}

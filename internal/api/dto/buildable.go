package dto

type Coordinate struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Requirements uses pointers so a missing block or field is distinguishable
// from an explicit zero.
type Requirements struct {
	FrontSetbackM *float64 `json:"front_setback_m"`
	SideSetbackM  *float64 `json:"side_setback_m"`
	RearSetbackM  *float64 `json:"rear_setback_m"`
}

type EdgeClassification struct {
	Index    int      `json:"index"`
	Role     string   `json:"role"`
	SetbackM *float64 `json:"setback_m,omitempty"`
}

// BuildableAreaRequest is the wire contract of POST /buildable-area.
// Either requirements or a zone code must be supplied; explicit
// requirements win when both are present.
type BuildableAreaRequest struct {
	SiteCoordinates     []Coordinate         `json:"site_coordinates"`
	Requirements        *Requirements        `json:"requirements"`
	Zone                string               `json:"zone,omitempty"`
	Frontage            string               `json:"frontage,omitempty"`
	EdgeClassifications []EdgeClassification `json:"edge_classifications,omitempty"`
}

type SetbackDetails struct {
	FrontSetbackM       float64              `json:"front_setback_m"`
	SideSetbackM        float64              `json:"side_setback_m"`
	RearSetbackM        float64              `json:"rear_setback_m"`
	Frontage            string               `json:"frontage,omitempty"`
	EdgeClassifications []EdgeClassification `json:"edge_classifications,omitempty"`
}

type BuildableAreaResponse struct {
	BuildableCoordinates []Coordinate   `json:"buildable_coordinates"`
	BuildableAreaM2      float64        `json:"buildable_area_m2"`
	SiteAreaM2           float64        `json:"site_area_m2"`
	CoverageRatio        float64        `json:"coverage_ratio"`
	CalculationMethod    string         `json:"calculation_method"`
	SetbackDetails       SetbackDetails `json:"setback_details"`
}

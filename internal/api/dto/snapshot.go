package dto

import (
	"encoding/json"
	"time"
)

type SnapshotResponse struct {
	Key               string          `json:"key"`
	CalculationMethod string          `json:"calculation_method"`
	SiteAreaM2        float64         `json:"site_area_m2"`
	Result            json.RawMessage `json:"result"`
	CreatedAt         time.Time       `json:"created_at"`
}

type ListSnapshotResponse struct {
	Snapshots []SnapshotResponse `json:"snapshots"`
}

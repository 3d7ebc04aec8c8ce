package models

import (
	"errors"
	"net/http"
	"strconv"
)

// ListParams carries pagination and the crop-record filters supported by
// the list endpoints.
type ListParams struct {
	Page     int
	Limit    int
	CropType string
	State    string
	District string
}

const (
	defaultLimit = 50
	maxLimit     = 500
)

// ParseListParams reads pagination and filter query parameters. Bad
// numbers fall back to defaults; out-of-range limits are an error so the
// caller can 400.
func ParseListParams(r *http.Request) (ListParams, error) {
	p := ListParams{
		Page:     1,
		Limit:    defaultLimit,
		CropType: r.URL.Query().Get("crop_type"),
		State:    r.URL.Query().Get("state"),
		District: r.URL.Query().Get("district"),
	}

	if s := r.URL.Query().Get("page"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return p, errors.New("page must be a positive integer")
		}
		p.Page = n
	}
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return p, errors.New("limit must be a positive integer")
		}
		if n > maxLimit {
			return p, errors.New("limit exceeds maximum of 500")
		}
		p.Limit = n
	}
	return p, nil
}

// Offset converts page/limit to a SQL offset.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// CropStatistics aggregates the stored crop records for the dashboard.
type CropStatistics struct {
	TotalRecords   int64       `json:"totalRecords"`
	UniqueCrops    int64       `json:"uniqueCrops"`
	UniqueStates   int64       `json:"uniqueStates"`
	AvgYield       float64     `json:"avgYield"`
	MinYield       float64     `json:"minYield"`
	MaxYield       float64     `json:"maxYield"`
	TotalAreaHa    float64     `json:"totalAreaHectares"`
	TopCrops       []CropAgg   `json:"topCrops"`
	TopStates      []RegionAgg `json:"topStates"`
}

// CropAgg is one crop's aggregate row in the statistics response.
type CropAgg struct {
	CropType    string  `json:"cropType"`
	AvgYield    float64 `json:"avgYield"`
	TotalAreaHa float64 `json:"totalAreaHectares"`
	RecordCount int64   `json:"recordCount"`
}

// RegionAgg is one state's aggregate row.
type RegionAgg struct {
	State       string  `json:"state"`
	AvgYield    float64 `json:"avgYield"`
	TotalAreaHa float64 `json:"totalAreaHectares"`
	RecordCount int64   `json:"recordCount"`
}

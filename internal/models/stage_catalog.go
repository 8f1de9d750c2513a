package models

// StageDefinition is one entry of the fixed production pipeline.
type StageDefinition struct {
	Name        string `json:"name"`
	DefaultDays int    `json:"default_days"`
}

// StageCount is the fixed number of production stages per order.
const StageCount = 8

// StageCatalog is the ordered garment production pipeline. Every stage
// creation path (start, repair, order-status automation) builds from this
// single list so the stage names and defaults cannot drift apart.
var StageCatalog = [StageCount]StageDefinition{
	{Name: "TRIMS IN HOUSE", DefaultDays: 1},
	{Name: "FABRIC ETA", DefaultDays: 1},
	{Name: "CUTTING", DefaultDays: 1},
	{Name: "STITCHING", DefaultDays: 1},
	{Name: "FINISHING", DefaultDays: 1},
	{Name: "PACKING", DefaultDays: 1},
	{Name: "OFFLINE", DefaultDays: 1},
	{Name: "INSPECTION", DefaultDays: 1},
}

// FirstStageName is the label a fresh production record starts on.
func FirstStageName() string {
	return StageCatalog[0].Name
}

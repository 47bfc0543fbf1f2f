package waste

import "strings"

// GuideEntry is the recycling guidance shown alongside a detection.
type GuideEntry struct {
	Category        string `json:"category"`
	CanRecycle      bool   `json:"can_recycle"`
	RecyclingInfo   string `json:"recycling_info"`
	Impact          string `json:"impact"`
	CarbonFootprint string `json:"carbon_footprint"`
}

var guide = map[string]GuideEntry{
	Cardboard: {
		Category:        Cardboard,
		CanRecycle:      true,
		RecyclingInfo:   "Flatten boxes and keep them dry. Remove tape, staples and any plastic liners before dropping them at a paper collection point.",
		Impact:          "Cardboard decomposes within months, but wet or greasy board contaminates entire recycling batches.",
		CarbonFootprint: "Recycling one tonne of cardboard saves roughly 2.5 tonnes of CO2 compared to producing virgin board.",
	},
	Glass: {
		Category:        Glass,
		CanRecycle:      true,
		RecyclingInfo:   "Rinse bottles and jars, remove lids and sort by color where required. Broken glass should be wrapped before disposal.",
		Impact:          "Glass never decomposes in landfill, but it can be remelted indefinitely without quality loss.",
		CarbonFootprint: "Every 10% of recycled glass in the furnace cuts energy use by about 3% and CO2 by about 5%.",
	},
	Metal: {
		Category:        Metal,
		CanRecycle:      true,
		RecyclingInfo:   "Empty and rinse cans. Aluminium and steel are collected together at most drop-off points; scrap dealers take larger items.",
		Impact:          "Metal mining is highly destructive; a recycled can is back on the shelf within about 60 days.",
		CarbonFootprint: "Recycled aluminium needs 95% less energy than smelting new metal from bauxite ore.",
	},
	Paper: {
		Category:        Paper,
		CanRecycle:      true,
		RecyclingInfo:   "Keep paper clean and dry. Shredded paper should be bagged separately; thermal receipts and tissues do not belong in the paper bin.",
		Impact:          "Paper fibres can be recycled five to seven times before they become too short to reuse.",
		CarbonFootprint: "Recycling one tonne of paper saves around 17 trees and 1.2 tonnes of CO2.",
	},
	Plastic: {
		Category:        Plastic,
		CanRecycle:      true,
		RecyclingInfo:   "Check the resin code: PET (1) and HDPE (2) are widely accepted. Rinse containers and remove caps and labels where required.",
		Impact:          "Plastic persists for centuries and fragments into microplastics that enter the food chain.",
		CarbonFootprint: "Recycling a kilogram of PET avoids roughly 1.5 kg of CO2 versus producing virgin plastic.",
	},
	Trash: {
		Category:        Trash,
		CanRecycle:      false,
		RecyclingInfo:   "Residual waste cannot be recycled. Dispose of it in the general waste stream and try to reduce it at the source.",
		Impact:          "Mixed residual waste usually ends in landfill or incineration, both of which burden nearby communities.",
		CarbonFootprint: "Landfilled organic residue releases methane, a greenhouse gas about 25 times stronger than CO2.",
	},
}

// Guide returns the guidance entry for a category (case-insensitive).
func Guide(category string) (GuideEntry, bool) {
	e, ok := guide[strings.ToLower(category)]
	return e, ok
}

// AllGuides returns the guidance entries in the fixed category order.
func AllGuides() []GuideEntry {
	entries := make([]GuideEntry, 0, len(Categories))
	for _, c := range Categories {
		entries = append(entries, guide[c])
	}
	return entries
}

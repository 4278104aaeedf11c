// Package catalog holds the static product catalog the business trades in.
// Content authoring lives with the website; this is the snapshot the
// backend needs to classify leads and describe products in outbound
// documents.
package catalog

import "strings"

// Product is one sellable product family with its classification fields.
type Product struct {
	Key       string
	Name      string
	Category  string
	ShortDesc string
	Specs     []string
	Sizes     []string
	Materials []string
	UseCases  []string
	Variants  []string
	Notes     string

	// IndicativeRateRange is a human-curated price range shown when no
	// live market data is available. Advisory only.
	IndicativeRateRange string
}

// Lookup resolves a product by its key. Keys are case-insensitive.
func Lookup(key string) (Product, bool) {
	p, ok := products[strings.ToLower(strings.TrimSpace(key))]
	return p, ok
}

// Categories returns the category names carried by the catalog, in a
// stable order.
func Categories() []string {
	return append([]string(nil), categories...)
}

var categories = []string{
	"Iron & Steel",
	"Cement & Aggregates",
	"Pipes & Fittings",
	"Roofing & Sheets",
	"Paints & Finishes",
	"Hardware & Fasteners",
}

var products = map[string]Product{
	"tmt-bars": {
		Key:       "tmt-bars",
		Name:      "TMT Reinforcement Bars",
		Category:  "Iron & Steel",
		ShortDesc: "High-strength thermo-mechanically treated rebar for RCC construction.",
		Specs:     []string{"Fe 500", "Fe 500D", "Fe 550D", "IS 1786 certified"},
		Sizes:     []string{"8mm", "10mm", "12mm", "16mm", "20mm", "25mm", "32mm"},
		Materials: []string{"Mild steel billet, micro-alloyed"},
		UseCases:  []string{"Slabs and beams", "Columns and footings", "Precast elements"},
		Variants:  []string{"Straight 12m lengths", "Cut-and-bend service"},
		Notes:     "Rates move with the daily ingot market; confirm before dispatch.",
	},
	"structural-steel": {
		Key:       "structural-steel",
		Name:      "Structural Steel Sections",
		Category:  "Iron & Steel",
		ShortDesc: "Angles, channels, beams and flats for fabrication work.",
		Specs:     []string{"IS 2062 E250", "IS 2062 E350"},
		Sizes:     []string{"25x25x3 to 100x100x10 angles", "ISMC 75 to ISMC 400", "ISMB 100 to ISMB 600"},
		Materials: []string{"Mild steel"},
		UseCases:  []string{"Sheds and trusses", "Gates and grills", "Machine bases"},
		Variants:  []string{"Angle", "Channel", "Beam", "Flat", "Square bar"},
	},
	"binding-wire": {
		Key:                 "binding-wire",
		Name:                "Binding Wire",
		Category:            "Iron & Steel",
		ShortDesc:           "Annealed binding wire for rebar tying.",
		Sizes:               []string{"18 gauge", "20 gauge"},
		Materials:           []string{"Annealed mild steel"},
		UseCases:            []string{"Rebar tying", "General bundling"},
		IndicativeRateRange: "₹58–₹72 per kg",
	},
	"opc-cement": {
		Key:       "opc-cement",
		Name:      "OPC Cement",
		Category:  "Cement & Aggregates",
		ShortDesc: "Ordinary Portland Cement for structural concrete.",
		Specs:     []string{"Grade 43 (IS 8112)", "Grade 53 (IS 12269)"},
		Sizes:     []string{"50kg bags"},
		UseCases:  []string{"RCC work", "Precast", "High-early-strength jobs"},
		Variants:  []string{"Grade 43", "Grade 53"},
		Notes:     "Brand availability varies week to week.",
	},
	"ppc-cement": {
		Key:                 "ppc-cement",
		Name:                "PPC Cement",
		Category:            "Cement & Aggregates",
		ShortDesc:           "Portland Pozzolana Cement for general construction and masonry.",
		Specs:               []string{"IS 1489 Part 1"},
		Sizes:               []string{"50kg bags"},
		UseCases:            []string{"Plastering", "Brickwork", "Mass concrete"},
		IndicativeRateRange: "₹360–₹420 per bag",
	},
	"gi-pipes": {
		Key:       "gi-pipes",
		Name:      "GI Pipes",
		Category:  "Pipes & Fittings",
		ShortDesc: "Galvanized iron pipes for plumbing and structural use.",
		Specs:     []string{"IS 1239", "Light / Medium / Heavy class"},
		Sizes:     []string{"15mm (1/2\")", "20mm (3/4\")", "25mm (1\")", "32mm", "40mm", "50mm"},
		Materials: []string{"Galvanized mild steel"},
		UseCases:  []string{"Water supply lines", "Fencing posts", "Scaffolding"},
		Variants:  []string{"B-class (medium)", "C-class (heavy)"},
	},
	"roofing-sheets": {
		Key:       "roofing-sheets",
		Name:      "Colour-Coated Roofing Sheets",
		Category:  "Roofing & Sheets",
		ShortDesc: "Pre-painted galvalume and GC sheets for roofing and cladding.",
		Specs:     []string{"0.35mm to 0.50mm TCT", "AZ70 / AZ150 coating"},
		Sizes:     []string{"3.5ft width, cut-to-length"},
		Materials: []string{"Galvalume", "Galvanized corrugated"},
		UseCases:  []string{"Factory sheds", "Warehouses", "Residential roofing"},
		Variants:  []string{"Bare galvalume", "Colour-coated", "Polycarbonate translucent"},
	},
	"exterior-paint": {
		Key:                 "exterior-paint",
		Name:                "Exterior Emulsion Paint",
		Category:            "Paints & Finishes",
		ShortDesc:           "Weather-resistant exterior emulsion in standard shades.",
		Sizes:               []string{"1L", "4L", "10L", "20L"},
		UseCases:            []string{"Exterior walls", "Boundary walls"},
		Variants:            []string{"Matt", "Sheen"},
		IndicativeRateRange: "₹180–₹320 per litre",
	},
	"fasteners": {
		Key:       "fasteners",
		Name:      "Bolts, Nuts & Fasteners",
		Category:  "Hardware & Fasteners",
		ShortDesc: "MS and SS fasteners in commercial and high-tensile grades.",
		Specs:     []string{"Grade 4.6", "Grade 8.8", "SS 304"},
		Sizes:     []string{"M6 to M24"},
		UseCases:  []string{"Structural joints", "Machine assembly"},
		Variants:  []string{"Hex bolts", "Anchor bolts", "Foundation bolts"},
	},
}

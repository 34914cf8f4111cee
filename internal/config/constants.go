package config

// Category is one label with the keyword set that selects it. Category lists
// are ordered: the first category whose keywords match wins, so list order is
// part of the classification contract.
type Category struct {
	Label    string   `yaml:"label"`
	Keywords []string `yaml:"keywords"`
}

// DefaultCategoryLabel is assigned when no keyword matches.
const DefaultCategoryLabel = "Other"

// TechnologyCategories classifies awards by clean energy technology from the
// award description. Evaluated in declared order, first match wins.
var TechnologyCategories = []Category{
	{Label: "Solar", Keywords: []string{"solar", "photovoltaic", "pv", "solar panel", "solar energy", "solar power", "solar cell", "solar array"}},
	{Label: "Wind", Keywords: []string{"wind", "wind turbine", "wind energy", "wind power", "wind farm", "offshore wind", "onshore wind"}},
	{Label: "Battery Storage", Keywords: []string{"battery", "energy storage", "battery storage", "grid storage", "lithium", "battery system", "energy storage system"}},
	{Label: "Grid Modernization", Keywords: []string{"grid", "smart grid", "grid modernization", "transmission", "distribution", "grid infrastructure", "power grid"}},
	{Label: "Electric Vehicles", Keywords: []string{"electric vehicle", "ev charging", "charging station", "charging infrastructure", "electric car", "ev"}},
	{Label: "Energy Efficiency", Keywords: []string{"efficiency", "energy efficiency", "weatherization", "insulation", "building efficiency", "hvac"}},
	{Label: "Carbon Capture", Keywords: []string{"carbon capture", "carbon sequestration", "ccs", "carbon storage", "co2 capture"}},
	{Label: "Geothermal", Keywords: []string{"geothermal", "geothermal energy", "geothermal power", "ground source heat"}},
	{Label: "Hydroelectric", Keywords: []string{"hydroelectric", "hydro", "hydropower", "water power", "dam", "turbine"}},
	{Label: "Biomass", Keywords: []string{"biomass", "biofuel", "biogas", "bioenergy", "renewable fuel", "ethanol"}},
	{Label: "Hydrogen", Keywords: []string{"hydrogen", "fuel cell", "hydrogen fuel", "clean hydrogen", "hydrogen energy"}},
}

// RecipientTypes classifies recipients by organization type from the
// recipient name. Evaluated in declared order, first match wins.
var RecipientTypes = []Category{
	{Label: "Corporation", Keywords: []string{"inc", "corp", "llc", "ltd", "company", "co.", "corporation", "incorporated"}},
	{Label: "University", Keywords: []string{"university", "college", "institute", "school", "academic", "education"}},
	{Label: "Government", Keywords: []string{"department", "agency", "bureau", "office", "government", "federal", "state", "city", "county"}},
	{Label: "Non-Profit", Keywords: []string{"foundation", "association", "society", "organization", "non-profit", "nonprofit"}},
}

// ColumnMapping renames upstream award-search fields to canonical names.
var ColumnMapping = map[string]string{
	"Award Amount":                      "award_amount",
	"Recipient Name":                    "recipient_name",
	"Award Type":                        "award_type",
	"Start Date":                        "start_date",
	"End Date":                          "end_date",
	"Place of Performance State Code":   "state_code",
	"Place of Performance State":        "state_name",
	"Awarding Agency":                   "awarding_agency",
	"Funding Agency":                    "funding_agency",
	"Description":                       "description",
	"Award ID":                          "award_id",
}

// DateColumns are coerced to calendar dates during normalization.
var DateColumns = []string{"start_date", "end_date"}

// TextColumns are trimmed during normalization.
var TextColumns = []string{"recipient_name", "description", "awarding_agency"}

// DateRange is a named analysis window.
type DateRange struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// DateRanges are the recognized analysis windows, keyed by period name.
var DateRanges = map[string]DateRange{
	"pre_arra":          {Start: "2007-01-01", End: "2009-02-16"},
	"arra_period":       {Start: "2009-02-17", End: "2012-12-31"},
	"post_arra_pre_ira": {Start: "2013-01-01", End: "2022-08-15"},
	"ira_chips_period":  {Start: "2022-08-16", End: "2024-12-31"},
	"full_period":       {Start: "2007-01-01", End: "2024-12-31"},
}

// EnergyCFDACodes are the Department of Energy assistance-listing codes used
// when collecting program-specific batches.
var EnergyCFDACodes = []string{
	"81.041", "81.042", "81.119",
	"81.087", "81.086", "81.089",
	"81.121", "81.114", "81.112", "81.113",
	"81.122",
	"81.117", "81.064",
	"81.135", "81.126",
	"81.079", "81.049", "81.057", "81.105", "81.108", "81.123", "81.124",
	"81.104", "81.065", "81.106",
}

// SizeBucket labels an award-amount interval. Bounds are half-open: an award
// falls in the first bucket whose upper bound exceeds its amount.
type SizeBucket struct {
	Label string
	Upper float64
}

// SizeBuckets are the award-size categories added during normalization.
var SizeBuckets = []SizeBucket{
	{Label: "Small (<$100K)", Upper: 100_000},
	{Label: "Medium ($100K-$1M)", Upper: 1_000_000},
	{Label: "Large ($1M-$10M)", Upper: 10_000_000},
	{Label: "Very Large ($10M-$100M)", Upper: 100_000_000},
	{Label: "Mega (>$100M)", Upper: 0}, // no upper bound
}

// Default pipeline tunables.
const (
	DefaultTopNRecipients = 50
	MinimumYoYPeriods     = 12
	MinimumTrendPoints    = 3
	SignificanceLevel     = 0.05
)

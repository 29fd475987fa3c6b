package catalog

// Quantity is a measured value with its unit, e.g. {20, "litres"}.
type Quantity struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// MashTemp is a single mash step.
type MashTemp struct {
	Temp     Quantity `json:"temp"`
	Duration int      `json:"duration"`
}

// Fermentation holds the fermentation temperature.
type Fermentation struct {
	Temp Quantity `json:"temp"`
}

// Method describes the brewing method.
type Method struct {
	MashTemp     []MashTemp   `json:"mash_temp"`
	Fermentation Fermentation `json:"fermentation"`
	Twist        *string      `json:"twist"`
}

// Malt is a malt ingredient with its amount.
type Malt struct {
	Name   string   `json:"name"`
	Amount Quantity `json:"amount"`
}

// Hop is a hop addition.
type Hop struct {
	Name      string   `json:"name"`
	Amount    Quantity `json:"amount"`
	Add       string   `json:"add"`
	Attribute string   `json:"attribute"`
}

// Ingredients groups everything that goes into the kettle.
type Ingredients struct {
	Malt  []Malt `json:"malt"`
	Hops  []Hop  `json:"hops"`
	Yeast string `json:"yeast"`
}

// Beer is an immutable catalog entry mirroring the upstream record shape.
// Entries are never mutated after the initial load completes.
type Beer struct {
	ID               int         `json:"id"`
	Name             string      `json:"name"`
	Tagline          string      `json:"tagline"`
	FirstBrewed      string      `json:"first_brewed"`
	Description      string      `json:"description"`
	ImageURL         string      `json:"image_url"`
	ABV              float64     `json:"abv"`
	IBU              float64     `json:"ibu"`
	TargetFG         float64     `json:"target_fg"`
	TargetOG         float64     `json:"target_og"`
	EBC              float64     `json:"ebc"`
	SRM              float64     `json:"srm"`
	PH               float64     `json:"ph"`
	AttenuationLevel float64     `json:"attenuation_level"`
	Volume           Quantity    `json:"volume"`
	BoilVolume       Quantity    `json:"boil_volume"`
	Method           Method      `json:"method"`
	Ingredients      Ingredients `json:"ingredients"`
	FoodPairing      []string    `json:"food_pairing"`
	BrewersTips      string      `json:"brewers_tips"`
	ContributedBy    string      `json:"contributed_by"`
}

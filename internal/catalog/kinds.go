package catalog

// The four catalog kinds. These descriptors are the single source of truth
// for per-kind validation, media handling and list ordering.

// Tours carry a plain image URL supplied by the caller rather than an
// upload; that asymmetry is intentional.
var Tours = Schema{
	Kind:       "tour",
	MediaField: "image",
	Media:      MediaNone,
	Fields: []Field{
		{Name: "title", Type: Text, Required: true},
		{Name: "description", Type: Text, Required: true},
		{Name: "duration", Type: Text, Required: true},
		{Name: "price", Type: Price, Required: true},
		{Name: "location", Type: Text, Required: true},
		{Name: "difficulty", Type: EnumText, Allowed: []string{"Easy", "Medium", "Hard"}, Default: "Easy"},
		{Name: "maxParticipants", Type: Count, Min: 1, Default: "10"},
		{Name: "includes", Type: List},
		{Name: "image", Type: Text},
	},
}

var Rentals = Schema{
	Kind:       "rental",
	MediaField: "image",
	Media:      MediaUpload,
	Fields: []Field{
		{Name: "vehicleName", Type: Text, Required: true},
		{Name: "description", Type: Text, Required: true},
		{Name: "vehicleType", Type: EnumText, Required: true, Allowed: []string{"SUV", "Sedan", "Van", "Jeep", "Luxury"}},
		{Name: "pricePerDay", Type: Price, Required: true},
		{Name: "capacity", Type: Count, Required: true, Min: 1},
		{Name: "features", Type: List},
	},
}

var Packages = Schema{
	Kind:       "package",
	MediaField: "image",
	Media:      MediaUpload,
	Fields: []Field{
		{Name: "name", Type: Text, Required: true},
		{Name: "description", Type: Text},
		{Name: "duration", Type: Text},
		{Name: "price", Type: Price, Required: true},
		{Name: "destinations", Type: List},
		{Name: "includes", Type: List},
		{Name: "highlights", Type: List},
	},
}

// Gallery items are listed newest first, unlike every other kind.
var Gallery = Schema{
	Kind:        "gallery item",
	MediaField:  "image",
	Media:       MediaUpload,
	NewestFirst: true,
	Fields: []Field{
		{Name: "title", Type: Text, Required: true},
		{Name: "type", Type: Text, Required: true},
		{Name: "description", Type: Text, Required: true},
	},
}

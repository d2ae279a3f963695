package schema

// Custom string types for type safety.
type (
	// Band represents a photometric passband.
	Band string

	// Role identifies which star of the campaign a series belongs to.
	Role string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string

	// BoundaryPolicy decides where a sample sitting exactly on an integer cycle number goes.
	BoundaryPolicy string
)

// All photometric bands supported.
const (
	BandB Band = "B"
	BandV Band = "V"
	BandR Band = "R"
	BandI Band = "I"
)

// AllBands lists the bands in display order, blue to red.
var AllBands = []Band{BandB, BandV, BandR, BandI}

// All roles supported.
const (
	TargetRole     Role = "target"
	ComparisonRole Role = "comparison"
)

// AllRoles lists the roles in report order.
var AllRoles = []Role{TargetRole, ComparisonRole}

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All boundary policies supported.
const (
	// BoundaryHalfOpen assigns a sample to cycle k when k <= phase < k+1.
	BoundaryHalfOpen BoundaryPolicy = "half-open" // default

	// BoundaryStrict keeps only samples with k < phase < k+1, so a sample on an
	// exact integer phase lands in no cycle at all.
	BoundaryStrict BoundaryPolicy = "strict"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidBoundaryPolicies lists all valid boundary policies.
var ValidBoundaryPolicies = map[BoundaryPolicy]struct{}{
	BoundaryHalfOpen: {},
	BoundaryStrict:   {},
}

// ValidBands lists all valid bands.
var ValidBands = map[Band]struct{}{
	BandB: {},
	BandV: {},
	BandR: {},
	BandI: {},
}

// Colormap names a perceptual color map used to tell cycles apart.
type Colormap string

// All color maps supported.
const (
	SmoothBlueRed      Colormap = "smooth-blue-red" // default
	SmoothBlueTan      Colormap = "smooth-blue-tan"
	SmoothGreenPurple  Colormap = "smooth-green-purple"
	SmoothGreenRed     Colormap = "smooth-green-red"
	SmoothPurpleOrange Colormap = "smooth-purple-orange"
	BlackBody          Colormap = "black-body"
	ExtendedBlackBody  Colormap = "extended-black-body"
	Kindlmann          Colormap = "kindlmann"
	ExtendedKindlmann  Colormap = "extended-kindlmann"
)

// ValidColormaps lists all valid color maps.
var ValidColormaps = map[Colormap]struct{}{
	SmoothBlueRed:      {},
	SmoothBlueTan:      {},
	SmoothGreenPurple:  {},
	SmoothGreenRed:     {},
	SmoothPurpleOrange: {},
	BlackBody:          {},
	ExtendedBlackBody:  {},
	Kindlmann:          {},
	ExtendedKindlmann:  {},
}

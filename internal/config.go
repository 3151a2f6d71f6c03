package internal

type Config struct {
	// Columns is the number of columns each strip starts with
	Columns int
	// RefreshColumns is the number of columns after the data is refreshed
	RefreshColumns int
	// UnitWidth is the width in cells of the narrowest label column
	UnitWidth   int
	StripHeight int
	// Paging snaps the label strip to whole viewport widths when a drag is released
	Paging  bool
	Version string
}

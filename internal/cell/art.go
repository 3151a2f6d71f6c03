package cell

// Art is a set of three images the image strip cycles through
type Art [3][]string

var (
	ArtSetA = Art{
		{
			"   /\\   ",
			"  /  \\  ",
			" /____\\ ",
			"   ||   ",
		},
		{
			"  .--.  ",
			" ( oo ) ",
			"  \\__/  ",
			"  /||\\  ",
		},
		{
			"  ~~~~  ",
			" ~ <> ~ ",
			"  ~~~~  ",
			" ~~~~~~ ",
		},
	}

	ArtSetB = Art{
		{
			" [####] ",
			" [#  #] ",
			" [####] ",
			"  |  |  ",
		},
		{
			"   **   ",
			"  *  *  ",
			" *    * ",
			"  *  *  ",
		},
		{
			" \\ | / ",
			" -- o --",
			" / | \\ ",
			"   |    ",
		},
	}
)

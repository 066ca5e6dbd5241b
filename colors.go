package chartgeom

// Palette is a list of CSS colors picked by series index.
type Palette []string

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i+6 <= len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

func (p Palette) Color(i int) string {
	if len(p) == 0 {
		return "black"
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}

// ParsePalette returns the palette with the given name, Category10 by default.
func ParsePalette(name string) Palette {
	switch name {
	case "tableau10", "tableau":
		return Tableau10
	default:
		return Category10
	}
}

// SeriesColors returns the main and secondary color of s. A series without
// colors takes them from the palette; the secondary one, used by the down
// pass of colored stock charts, is the next palette entry.
func SeriesColors(p Palette, s *Series) (string, string) {
	var (
		main = s.Color
		alt  = s.Secondary
	)
	if main == "" {
		main = p.Color(s.Index)
	}
	if alt == "" {
		alt = p.Color(s.Index + 1)
	}
	return main, alt
}

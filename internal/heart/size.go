package heart

const (
	SizeNormal = 20
	SizePetite = 10
)

// Size is the extent of the drawing area in cells.
type Size struct {
	Total int
	Half  int
}

// SizeFor returns the compact variant when petite is set.
func SizeFor(petite bool) Size {
	if petite {
		return Size{Total: SizePetite, Half: SizePetite / 2}
	}
	return Size{Total: SizeNormal, Half: SizeNormal / 2}
}

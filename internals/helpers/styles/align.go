package styles

// AlignToFlex memetakan keyword alignment vertikal/horizontal ke primitive flex,
// per-sumbu independen. Keyword tak dikenal → center.
func AlignToFlex(vertical, horizontal string) (alignItems, justifyContent string) {
	return flexKeyword(vertical), flexKeyword(horizontal)
}

func flexKeyword(k string) string {
	switch k {
	case "start", "top", "left":
		return "flex-start"
	case "end", "bottom", "right":
		return "flex-end"
	default:
		return "center"
	}
}

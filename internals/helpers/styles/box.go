package styles

import (
	"fmt"
	"strconv"
	"strings"
)

// Box: nilai margin/padding per sisi (px)
type Box struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// ParseBoxShorthand meng-expand shorthand CSS (1/2/3/4 nilai) jadi per-sisi.
// Token yang tidak bisa diparse dihitung 0; input kosong → Box{0,0,0,0}.
func ParseBoxShorthand(value string) Box {
	fields := strings.Fields(strings.TrimSpace(value))
	if len(fields) == 0 {
		return Box{}
	}

	nums := make([]int, 0, 4)
	for i, f := range fields {
		if i == 4 {
			break
		}
		nums = append(nums, parseUnitNumber(f))
	}

	switch len(nums) {
	case 1:
		return Box{Top: nums[0], Right: nums[0], Bottom: nums[0], Left: nums[0]}
	case 2:
		return Box{Top: nums[0], Right: nums[1], Bottom: nums[0], Left: nums[1]}
	case 3:
		return Box{Top: nums[0], Right: nums[1], Bottom: nums[2], Left: nums[1]}
	default:
		return Box{Top: nums[0], Right: nums[1], Bottom: nums[2], Left: nums[3]}
	}
}

// FormatBoxShorthand menulis ulang Box ke shorthand terpendek yang ekuivalen.
func FormatBoxShorthand(b Box) string {
	switch {
	case b.Top == b.Right && b.Right == b.Bottom && b.Bottom == b.Left:
		return fmt.Sprintf("%dpx", b.Top)
	case b.Top == b.Bottom && b.Left == b.Right:
		return fmt.Sprintf("%dpx %dpx", b.Top, b.Right)
	case b.Left == b.Right:
		return fmt.Sprintf("%dpx %dpx %dpx", b.Top, b.Right, b.Bottom)
	default:
		return fmt.Sprintf("%dpx %dpx %dpx %dpx", b.Top, b.Right, b.Bottom, b.Left)
	}
}

// parseUnitNumber membuang karakter non-numerik ("12px" → 12); gagal parse → 0.
func parseUnitNumber(token string) int {
	var sb strings.Builder
	for _, r := range token {
		if (r >= '0' && r <= '9') || r == '-' || r == '.' {
			sb.WriteRune(r)
		}
	}
	f, err := strconv.ParseFloat(sb.String(), 64)
	if err != nil {
		return 0
	}
	return int(f)
}

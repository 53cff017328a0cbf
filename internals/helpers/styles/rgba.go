package styles

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGBAWithOpacity menulis ulang komponen alpha sebuah string rgba()/rgb()
// mengikuti opacity 0–100. Warna yang tidak bisa diparse → rgba hitam.
func RGBAWithOpacity(color string, opacity int) string {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 100 {
		opacity = 100
	}
	r, g, b, _ := parseRGBA(color)
	alpha := float64(opacity) / 100
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, trimFloat(alpha))
}

// OpacityOf membaca alpha channel sebuah string rgba() sebagai 0–100.
// rgb() tanpa alpha atau input rusak dihitung 100 (opaque).
func OpacityOf(color string) int {
	_, _, _, a := parseRGBA(color)
	return int(math.Round(a * 100))
}

func parseRGBA(color string) (r, g, b int, a float64) {
	a = 1
	s := strings.TrimSpace(strings.ToLower(color))
	if !strings.HasPrefix(s, "rgb") {
		return 0, 0, 0, a
	}
	open := strings.IndexByte(s, '(')
	close := strings.IndexByte(s, ')')
	if open < 0 || close < open {
		return 0, 0, 0, a
	}
	parts := strings.Split(s[open+1:close], ",")
	get := func(i int) float64 {
		if i >= len(parts) {
			return 0
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return 0
		}
		return f
	}
	r, g, b = int(get(0)), int(get(1)), int(get(2))
	if len(parts) >= 4 {
		a = get(3)
		if a < 0 {
			a = 0
		}
		if a > 1 {
			a = 1
		}
	}
	return r, g, b, a
}

func trimFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBoxShorthand_Expansion(t *testing.T) {
	require.Equal(t, Box{Top: 8, Right: 8, Bottom: 8, Left: 8}, ParseBoxShorthand("8px"))
	require.Equal(t, Box{Top: 10, Right: 20, Bottom: 10, Left: 20}, ParseBoxShorthand("10px 20px"))
	require.Equal(t, Box{Top: 5, Right: 10, Bottom: 15, Left: 10}, ParseBoxShorthand("5px 10px 15px"))
	require.Equal(t, Box{Top: 1, Right: 2, Bottom: 3, Left: 4}, ParseBoxShorthand("1px 2px 3px 4px"))
}

func TestParseBoxShorthand_BadInput(t *testing.T) {
	require.Equal(t, Box{}, ParseBoxShorthand(""))
	require.Equal(t, Box{}, ParseBoxShorthand("   "))
	require.Equal(t, Box{}, ParseBoxShorthand("px"))
	// token rusak dihitung 0, sisanya tetap terbaca
	require.Equal(t, Box{Top: 0, Right: 12, Bottom: 0, Left: 12}, ParseBoxShorthand("abc 12px"))
}

func TestFormatBoxShorthand_Collapse(t *testing.T) {
	require.Equal(t, "8px", FormatBoxShorthand(Box{Top: 8, Right: 8, Bottom: 8, Left: 8}))
	require.Equal(t, "10px 20px", FormatBoxShorthand(Box{Top: 10, Right: 20, Bottom: 10, Left: 20}))
	require.Equal(t, "5px 10px 15px", FormatBoxShorthand(Box{Top: 5, Right: 10, Bottom: 15, Left: 10}))
	require.Equal(t, "1px 2px 3px 4px", FormatBoxShorthand(Box{Top: 1, Right: 2, Bottom: 3, Left: 4}))
}

func TestBoxShorthand_RoundTrip(t *testing.T) {
	inputs := []string{"8px", "10px 20px", "5px 10px 15px", "1px 2px 3px 4px", "0px 0px 0px 0px", "12px 12px"}
	for _, in := range inputs {
		parsed := ParseBoxShorthand(in)
		out := FormatBoxShorthand(parsed)
		require.Equal(t, parsed, ParseBoxShorthand(out), "round-trip %q → %q", in, out)
	}
}

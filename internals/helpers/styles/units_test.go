package styles

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertDimension_AutoTarget(t *testing.T) {
	require.Equal(t, "auto", ConvertDimension("500px", UnitAuto, KindWidth))
	require.Equal(t, "auto", ConvertDimension("50%", UnitAuto, KindHeight))
	require.Equal(t, "auto", ConvertDimension("auto", UnitAuto, KindWidth))
}

func TestConvertDimension_AutoSource(t *testing.T) {
	require.Equal(t, "100%", ConvertDimension("auto", UnitPercent, KindWidth))
	require.Equal(t, "60%", ConvertDimension("auto", UnitPercent, KindHeight))
	require.Equal(t, "1200px", ConvertDimension("auto", UnitPx, KindWidth))
	require.Equal(t, "480px", ConvertDimension("auto", UnitPx, KindHeight))
}

func TestConvertDimension_PercentToPx(t *testing.T) {
	require.Equal(t, "600px", ConvertDimension("50%", UnitPx, KindWidth))
	require.Equal(t, "400px", ConvertDimension("50%", UnitPx, KindHeight))
	// floor minimum 10px
	require.Equal(t, "10px", ConvertDimension("0%", UnitPx, KindWidth))
}

func TestConvertDimension_PxToPercent(t *testing.T) {
	require.Equal(t, "50%", ConvertDimension("600px", UnitPercent, KindWidth))
	// clamp [1,100]
	require.Equal(t, "1%", ConvertDimension("2px", UnitPercent, KindWidth))
	require.Equal(t, "100%", ConvertDimension("5000px", UnitPercent, KindWidth))
}

func TestConvertDimension_SameUnitPassThrough(t *testing.T) {
	require.Equal(t, "320px", ConvertDimension("320px", UnitPx, KindWidth))
	require.Equal(t, "75%", ConvertDimension("75%", UnitPercent, KindHeight))
}

func TestConvertDimension_RoundTripTolerance(t *testing.T) {
	px := ConvertDimension("50%", UnitPx, KindWidth)
	back := ConvertDimension(px, UnitPercent, KindWidth)
	n, err := strconv.Atoi(strings.TrimSuffix(back, "%"))
	require.NoError(t, err)
	require.InDelta(t, 50, n, 1)
}

func TestParseDimension_Tagged(t *testing.T) {
	require.Equal(t, Dimension{Unit: UnitPx, Value: 120}, ParseDimension("120px"))
	require.Equal(t, Dimension{Unit: UnitPercent, Value: 50}, ParseDimension("50%"))
	require.Equal(t, Dimension{Unit: UnitAuto}, ParseDimension("auto"))
	require.Equal(t, Dimension{Unit: UnitAuto}, ParseDimension(""))
}

func TestAlignToFlex(t *testing.T) {
	ai, jc := AlignToFlex("top", "left")
	require.Equal(t, "flex-start", ai)
	require.Equal(t, "flex-start", jc)

	ai, jc = AlignToFlex("bottom", "right")
	require.Equal(t, "flex-end", ai)
	require.Equal(t, "flex-end", jc)

	ai, jc = AlignToFlex("middle", "center")
	require.Equal(t, "center", ai)
	require.Equal(t, "center", jc)

	// keyword asing → center
	ai, jc = AlignToFlex("", "whatever")
	require.Equal(t, "center", ai)
	require.Equal(t, "center", jc)
}

func TestRGBAOpacitySync(t *testing.T) {
	c := RGBAWithOpacity("rgba(0, 0, 0, 1)", 50)
	require.Equal(t, "rgba(0, 0, 0, 0.5)", c)
	require.Equal(t, 50, OpacityOf(c))

	// rgb tanpa alpha dianggap opaque
	require.Equal(t, 100, OpacityOf("rgb(255, 255, 255)"))

	// warna rusak → rgba hitam dengan opacity diminta
	require.Equal(t, "rgba(0, 0, 0, 0.25)", RGBAWithOpacity("#zzz", 25))
}

package cv2pdf

import (
	"math"
	"strconv"
)

// Font size derivation, in points.
const (
	nameSizeOffset     = 5.0
	heroNameSizeOffset = 7.0
	metaSizeOffset     = 1.0
	badgeSizeOffset    = 2.0

	// MinMetaFontSize is the floor for meta, contact and badge text.
	MinMetaFontSize = 9.0
)

// mm formats a millimetre length. Every mm value in the stylesheet goes
// through here so formatting stays uniform.
func mm(v float64) string {
	return formatLength(v, "mm")
}

// pt formats a point length.
func pt(v float64) string {
	return formatLength(v, "pt")
}

// px formats a pixel length.
func px(v float64) string {
	return formatLength(v, "px")
}

// formatLength uses the shortest decimal that round-trips: 15 -> "15", 2.5 -> "2.5".
func formatLength(v float64, unit string) string {
	return formatNumber(v) + unit
}

func formatNumber(v float64) string {
	if v == 0 {
		v = 0 // normalize -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// nameSize is the font size of the name heading.
func nameSize(base float64) float64 {
	return base + nameSizeOffset
}

// heroNameSize is the font size of the name inside the hero header.
func heroNameSize(base float64) float64 {
	return base + heroNameSizeOffset
}

// metaSize is the font size for item meta lines and contact grids.
func metaSize(base float64) float64 {
	return math.Max(MinMetaFontSize, base-metaSizeOffset)
}

// badgeSize is the font size for badge labels.
func badgeSize(base float64) float64 {
	return math.Max(MinMetaFontSize, base-badgeSizeOffset)
}

// marginShorthand returns the CSS margin shorthand in top right bottom left order.
func marginShorthand(b Box) string {
	return mm(b.Top) + " " + mm(b.Right) + " " + mm(b.Bottom) + " " + mm(b.Left)
}

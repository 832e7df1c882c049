package cv2pdf

import "strings"

// Style defaults.
const (
	DefaultFontFamily           = "Inter, Roboto, Arial, sans-serif"
	DefaultBaseFontSize         = 11.0 // pt
	DefaultTextColor            = "#222"
	DefaultAccentColor          = "#1f5fbf"
	DefaultBgAccent             = "#f5f8ff"
	DefaultDividerColor         = "#ddd"
	DefaultSectionSpacing       = 8.0  // mm
	DefaultLineHeight           = 1.45 // unitless
	DefaultPageMargin           = 15.0 // mm, each side
	DefaultColumnGap            = 8.0  // mm
	DefaultSidebarWidth         = 64.0 // mm
	DefaultHeadingTransform     = "uppercase"
	DefaultHeadingLetterSpacing = "0.06em"
	DefaultBulletChar           = "•"
)

// Hero header defaults.
const (
	DefaultHeaderHeight   = 42.0 // mm
	DefaultHeaderGradient = "linear-gradient(135deg, rgba(0,0,0,0) 0%, rgba(0,0,0,.05) 100%)"

	HeaderVariantClassic = "hero--classic"
	HeaderVariantSlanted = "hero--slanted"
)

// Circle portrait defaults.
const (
	DefaultPortraitGap       = 4.0 // mm
	DefaultPortraitBlobColor = "#eef2ff"
)

// Brutalism defaults.
const (
	DefaultBrutalismBorderColor = "#000"
	DefaultBrutalismBorderWidth = 2.0 // px
	DefaultBrutalismShadow      = "6px 6px 0 #000"
	DefaultBrutalismAccentBg    = "#ffef5a"
)

// Settings is a fully resolved StyleConfig: every field holds a concrete
// value. Templates receive it as .Style.
type Settings struct {
	FontFamily           string
	BaseFontSize         float64
	TextColor            string
	AccentColor          string
	BgAccent             string
	DividerColor         string
	SectionSpacing       float64
	LineHeight           float64
	PageMargin           Box
	ColumnGap            float64
	ShowSidebar          bool
	SidebarWidth         float64
	HeadingTransform     string
	HeadingLetterSpacing string
	BulletChar           string
	Header               HeaderSettings
	CirclePortrait       CirclePortraitSettings
	Brutalism            BrutalismSettings
}

// Box is a resolved four-sided length in millimetres.
type Box struct {
	Top, Right, Bottom, Left float64
}

// HeaderSettings is the resolved hero header block.
type HeaderSettings struct {
	Enable        bool
	PhotoInHeader bool
	Height        float64
	ShowDivider   bool
	Gradient      []string
	Bg            string // empty = no background declaration
	Variant       string // CSS class, e.g. "hero--classic"
}

// CirclePortraitSettings is the resolved circle portrait block.
type CirclePortraitSettings struct {
	Enable    bool
	Gap       float64
	RingColor string // empty = no ring
	BlobColor string
}

// BrutalismSettings is the resolved brutalism block.
type BrutalismSettings struct {
	Enable      bool
	BorderColor string
	BorderWidth float64
	Shadow      string
	AccentBg    string
}

// Normalize resolves cfg into Settings, filling every unset field with its
// default. It never fails; unknown or malformed values pass through.
func Normalize(cfg StyleConfig) Settings {
	return Settings{
		FontFamily:           orString(cfg.FontFamily, DefaultFontFamily),
		BaseFontSize:         orFloat(cfg.BaseFontSize, DefaultBaseFontSize),
		TextColor:            orString(cfg.TextColor, DefaultTextColor),
		AccentColor:          orString(cfg.AccentColor, DefaultAccentColor),
		BgAccent:             orString(cfg.BgAccent, DefaultBgAccent),
		DividerColor:         orString(cfg.DividerColor, DefaultDividerColor),
		SectionSpacing:       orFloat(cfg.SectionSpacing, DefaultSectionSpacing),
		LineHeight:           orFloat(cfg.LineHeight, DefaultLineHeight),
		PageMargin:           normalizeMargin(cfg.PageMargin),
		ColumnGap:            orFloat(cfg.ColumnGap, DefaultColumnGap),
		ShowSidebar:          orBool(cfg.ShowSidebar, true),
		SidebarWidth:         orFloat(cfg.SidebarWidth, DefaultSidebarWidth),
		HeadingTransform:     orString(cfg.HeadingTransform, DefaultHeadingTransform),
		HeadingLetterSpacing: orString(cfg.HeadingLetterSpacing, DefaultHeadingLetterSpacing),
		BulletChar:           orString(cfg.BulletChar, DefaultBulletChar),
		Header:               normalizeHeader(cfg.Header),
		CirclePortrait:       normalizeCirclePortrait(cfg.CirclePortrait),
		Brutalism:            normalizeBrutalism(cfg.Brutalism),
	}
}

func normalizeMargin(m *Margin) Box {
	if m == nil {
		m = &Margin{}
	}
	return Box{
		Top:    orFloatPtr(m.Top, DefaultPageMargin),
		Right:  orFloatPtr(m.Right, DefaultPageMargin),
		Bottom: orFloatPtr(m.Bottom, DefaultPageMargin),
		Left:   orFloatPtr(m.Left, DefaultPageMargin),
	}
}

func normalizeHeader(h *HeaderConfig) HeaderSettings {
	if h == nil {
		h = &HeaderConfig{}
	}

	gradient := []string{DefaultHeaderGradient}
	if h.Gradient != nil {
		gradient = make([]string, 0, len(h.Gradient))
		for _, layer := range h.Gradient {
			if strings.TrimSpace(layer) != "" {
				gradient = append(gradient, layer)
			}
		}
	}

	return HeaderSettings{
		Enable:        h.Enable,
		PhotoInHeader: h.PhotoInHeader,
		Height:        orFloat(h.Height, DefaultHeaderHeight),
		ShowDivider:   orBool(h.ShowDivider, true),
		Gradient:      gradient,
		Bg:            h.Bg,
		Variant:       headerVariantClass(h.Variant),
	}
}

// headerVariantClass maps short variant names to their CSS class.
// Unrecognized values are used as the class name unchanged.
func headerVariantClass(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "classic", HeaderVariantClassic:
		return HeaderVariantClassic
	case "slanted", HeaderVariantSlanted:
		return HeaderVariantSlanted
	}
	return v
}

func normalizeCirclePortrait(c *CirclePortraitConfig) CirclePortraitSettings {
	if c == nil {
		c = &CirclePortraitConfig{}
	}
	return CirclePortraitSettings{
		Enable:    c.Enable,
		Gap:       orFloat(c.Gap, DefaultPortraitGap),
		RingColor: c.RingColor,
		BlobColor: orString(c.BlobColor, DefaultPortraitBlobColor),
	}
}

func normalizeBrutalism(b *BrutalismConfig) BrutalismSettings {
	if b == nil {
		b = &BrutalismConfig{}
	}
	return BrutalismSettings{
		Enable:      b.Enable,
		BorderColor: orString(b.BorderColor, DefaultBrutalismBorderColor),
		BorderWidth: orFloat(b.BorderWidth, DefaultBrutalismBorderWidth),
		Shadow:      orString(b.Shadow, DefaultBrutalismShadow),
		AccentBg:    orString(b.AccentBg, DefaultBrutalismAccentBg),
	}
}

func orString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orFloat(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func orFloatPtr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func orBool(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

package cv2pdf

import (
	"time"
)

// StyleConfig is the declarative style document. Every field is optional:
// zero numbers and empty strings fall back to the documented defaults, and
// nil feature blocks are treated as disabled.
type StyleConfig struct {
	FontFamily           string                `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty"`
	BaseFontSize         float64               `json:"baseFontSize,omitempty" yaml:"baseFontSize,omitempty"` // pt
	TextColor            string                `json:"textColor,omitempty" yaml:"textColor,omitempty"`
	AccentColor          string                `json:"accentColor,omitempty" yaml:"accentColor,omitempty"`
	BgAccent             string                `json:"bgAccent,omitempty" yaml:"bgAccent,omitempty"`
	DividerColor         string                `json:"dividerColor,omitempty" yaml:"dividerColor,omitempty"`
	SectionSpacing       float64               `json:"sectionSpacing,omitempty" yaml:"sectionSpacing,omitempty"` // mm
	LineHeight           float64               `json:"lineHeight,omitempty" yaml:"lineHeight,omitempty"`
	PageMargin           *Margin               `json:"pageMargin,omitempty" yaml:"pageMargin,omitempty"`
	ColumnGap            float64               `json:"columnGap,omitempty" yaml:"columnGap,omitempty"` // mm
	ShowSidebar          *bool                 `json:"showSidebar,omitempty" yaml:"showSidebar,omitempty"`
	SidebarWidth         float64               `json:"sidebarWidth,omitempty" yaml:"sidebarWidth,omitempty"` // mm
	HeadingTransform     string                `json:"headingTransform,omitempty" yaml:"headingTransform,omitempty"`
	HeadingLetterSpacing string                `json:"headingLetterSpacing,omitempty" yaml:"headingLetterSpacing,omitempty"`
	BulletChar           string                `json:"bulletChar,omitempty" yaml:"bulletChar,omitempty"`
	Header               *HeaderConfig         `json:"header,omitempty" yaml:"header,omitempty"`
	CirclePortrait       *CirclePortraitConfig `json:"circlePortrait,omitempty" yaml:"circlePortrait,omitempty"`
	Brutalism            *BrutalismConfig      `json:"brutalism,omitempty" yaml:"brutalism,omitempty"`
}

// Margin holds page margins in millimetres. A nil side uses DefaultPageMargin;
// an explicit 0 is kept.
type Margin struct {
	Top    *float64 `json:"top,omitempty" yaml:"top,omitempty"`
	Right  *float64 `json:"right,omitempty" yaml:"right,omitempty"`
	Bottom *float64 `json:"bottom,omitempty" yaml:"bottom,omitempty"`
	Left   *float64 `json:"left,omitempty" yaml:"left,omitempty"`
}

// HeaderConfig configures the hero banner.
type HeaderConfig struct {
	Enable        bool     `json:"enable,omitempty" yaml:"enable,omitempty"`
	PhotoInHeader bool     `json:"photoInHeader,omitempty" yaml:"photoInHeader,omitempty"`
	Height        float64  `json:"height,omitempty" yaml:"height,omitempty"` // mm
	ShowDivider   *bool    `json:"showDivider,omitempty" yaml:"showDivider,omitempty"`
	Gradient      []string `json:"gradient,omitempty" yaml:"gradient,omitempty"` // nil = default layer, [] = none
	Bg            string   `json:"bg,omitempty" yaml:"bg,omitempty"`
	Variant       string   `json:"variant,omitempty" yaml:"variant,omitempty"` // "classic", "slanted"
}

// CirclePortraitConfig configures the circular photo treatment.
type CirclePortraitConfig struct {
	Enable    bool    `json:"enable,omitempty" yaml:"enable,omitempty"`
	Gap       float64 `json:"gap,omitempty" yaml:"gap,omitempty"` // mm
	RingColor string  `json:"ringColor,omitempty" yaml:"ringColor,omitempty"`
	BlobColor string  `json:"blobColor,omitempty" yaml:"blobColor,omitempty"`
}

// BrutalismConfig configures the high-contrast bordered theme.
type BrutalismConfig struct {
	Enable      bool    `json:"enable,omitempty" yaml:"enable,omitempty"`
	BorderColor string  `json:"borderColor,omitempty" yaml:"borderColor,omitempty"`
	BorderWidth float64 `json:"borderWidth,omitempty" yaml:"borderWidth,omitempty"` // px
	Shadow      string  `json:"shadow,omitempty" yaml:"shadow,omitempty"`
	AccentBg    string  `json:"accentBg,omitempty" yaml:"accentBg,omitempty"`
}

// Personal is the CV content document. It is passed to the template as-is.
type Personal map[string]any

// Name returns the top-level "name" field, or "" if absent.
func (p Personal) Name() string {
	if p == nil {
		return ""
	}
	name, _ := p["name"].(string)
	return name
}

// Input contains conversion parameters.
type Input struct {
	Personal Personal    // CV content (required)
	Style    StyleConfig // Style configuration (optional, zero = defaults)
	Date     string      // Generation date: "" or "auto" = today, "auto:FORMAT", or literal text
	BaseDir  string      // Directory relative image paths resolve against (empty = no rewriting)
	HTMLOnly bool        // Skip PDF generation
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	CSS   string // Compiled stylesheet
	HTML  []byte // Rendered HTML document
	PDF   []byte // PDF bytes (nil when HTMLOnly)
	Pages int    // Page count of PDF (0 when HTMLOnly or unknown)
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout   time.Duration
	noSandbox bool
	assetPath string
	template  string
	now       func() time.Time
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("cv2pdf: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithNoSandbox disables the Chrome sandbox (containers, CI).
func WithNoSandbox(disable bool) Option {
	return func(c *Converter) {
		c.cfg.noSandbox = disable
	}
}

// WithAssetPath sets a custom asset directory. Assets found there take
// precedence over the embedded ones.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithTemplate sets the HTML template source, replacing the built-in one.
func WithTemplate(src string) Option {
	return func(c *Converter) {
		c.cfg.template = src
	}
}

// withClock overrides the clock used for the default generation date.
func withClock(now func() time.Time) Option {
	return func(c *Converter) {
		c.cfg.now = now
	}
}

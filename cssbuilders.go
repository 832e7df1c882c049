package cv2pdf

import (
	"fmt"
	"strings"
)

// Fixed lengths in millimetres used by the theme blocks.
const (
	heroPaddingY   = 6.0
	heroPaddingX   = 8.0
	heroSpacing    = 8.0
	heroPhotoSize  = 40.0
	heroDividerGap = 4.0
	heroSlantDepth = 10.0

	portraitFrameSpacing = 6.0
	portraitBlobInset    = 2.0
	cutoutOverhang       = 4.0
	cutoutTop            = 12.0
	cutoutWidth          = 10.0
	cutoutHeight         = 22.0
	cutoutRadius         = 12.0
)

// brutalismBullet replaces the configured bullet glyph under the brutalism theme.
const brutalismBullet = "■"

// BuildCSS compiles a style configuration into a print stylesheet.
// It is a pure function: the same configuration always yields the same text.
func BuildCSS(cfg StyleConfig) string {
	return CompileCSS(Normalize(cfg))
}

// CompileCSS renders resolved settings as a stylesheet.
// Blocks are emitted in a fixed order; theme blocks that override base
// selectors come after the base rules so they win on source order.
func CompileCSS(s Settings) string {
	blocks := []string{
		buildBaseCSS(s),
		buildHeroCSS(s),
		buildLayoutCSS(s),
		buildTypographyCSS(s),
		buildPhotoCSS(),
		buildCirclePortraitCSS(s),
		buildCardCSS(),
		buildBrutalismCSS(s),
	}

	var buf strings.Builder
	for _, block := range blocks {
		buf.WriteString(block)
	}
	return buf.String()
}

// buildBaseCSS generates page geometry and root typography.
func buildBaseCSS(s Settings) string {
	return fmt.Sprintf(`
/* Page */
@page {
  size: A4;
  margin: %s;
}
html, body {
  padding: 0;
  margin: 0;
  color: %s;
  font-family: %s;
  font-size: %s;
  line-height: %s;
  -webkit-print-color-adjust: exact;
  print-color-adjust: exact;
}
`, marginShorthand(s.PageMargin), s.TextColor, s.FontFamily, pt(s.BaseFontSize), formatNumber(s.LineHeight))
}

// buildHeroCSS generates the hero banner. Returns "" when the header is disabled.
func buildHeroCSS(s Settings) string {
	h := s.Header
	if !h.Enable {
		return ""
	}

	var buf strings.Builder

	buf.WriteString(`
/* Hero header */
.hero {
  position: relative;
`)
	fmt.Fprintf(&buf, "  min-height: %s;\n", mm(h.Height))
	buf.WriteString("  display: grid;\n  align-items: center;\n")
	fmt.Fprintf(&buf, "  padding: %s %s;\n", mm(heroPaddingY), mm(heroPaddingX))
	if h.Bg != "" {
		fmt.Fprintf(&buf, "  background: %s;\n", h.Bg)
	}
	if len(h.Gradient) > 0 {
		fmt.Fprintf(&buf, "  background-image: %s;\n", strings.Join(h.Gradient, ", "))
	}
	buf.WriteString("  border-radius: 4mm;\n")
	fmt.Fprintf(&buf, "  margin-bottom: %s;\n}\n", mm(heroSpacing))

	if h.PhotoInHeader {
		fmt.Fprintf(&buf, `.hero.with-photo {
  grid-template-columns: 1fr auto;
  gap: %s;
}
`, mm(heroSpacing))
	}

	fmt.Fprintf(&buf, `.hero .name {
  font-size: %s;
  font-weight: 800;
  letter-spacing: .01em;
}
.hero .role {
  color: %s;
  font-weight: 700;
  margin-top: 2mm;
}
.hero .desc {
  margin-top: 3mm;
  max-width: 170mm;
}
`, pt(heroNameSize(s.BaseFontSize)), s.AccentColor)

	if h.PhotoInHeader {
		fmt.Fprintf(&buf, `.hero .hero-photo-wrap {
  width: %s;
  height: %s;
  border-radius: 50%%;
  background: %s;
  display: grid;
  place-items: center;
  overflow: hidden;
  box-shadow: 0 1mm 4mm rgba(0,0,0,.08);
}
.hero .hero-photo {
  width: 100%%;
  height: 100%%;
  object-fit: cover;
}
`, mm(heroPhotoSize), mm(heroPhotoSize), s.BgAccent)
	}

	if h.ShowDivider {
		fmt.Fprintf(&buf, `.hero-divider {
  height: 1px;
  background: %s;
  margin-top: %s;
}
`, s.DividerColor, mm(heroDividerGap))
	}

	fmt.Fprintf(&buf, `.hero.%s {
  clip-path: polygon(0 0, 100%% 0, 100%% calc(100%% - %s), 0 100%%);
}
`, HeaderVariantSlanted, mm(heroSlantDepth))

	return buf.String()
}

// buildLayoutCSS generates the document grid. With the sidebar disabled the
// grid has a single track and the sidebar and gap elements are removed from
// rendering entirely.
func buildLayoutCSS(s Settings) string {
	if !s.ShowSidebar {
		return `
/* Layout grid: single column */
.page {
  display: grid;
  grid-template-columns: 1fr;
  grid-auto-rows: min-content;
}
.main { grid-column: 1; }
.gap, .sidebar { display: none; }
`
	}

	return fmt.Sprintf(`
/* Layout grid: sidebar, gap, main */
.page {
  display: grid;
  grid-template-columns: %s %s 1fr;
  grid-auto-rows: min-content;
}
.sidebar { grid-column: 1; }
.gap { grid-column: 2; }
.main { grid-column: 3; }
`, mm(s.SidebarWidth), mm(s.ColumnGap))
}

// buildTypographyCSS generates the shared text rules.
func buildTypographyCSS(s Settings) string {
	return fmt.Sprintf(`
/* Typography */
.name {
  font-size: %s;
  font-weight: 700;
  letter-spacing: 0.02em;
}
.role {
  color: %s;
  font-weight: 600;
  margin-top: 2mm;
}
.section {
  margin-top: %s;
  page-break-inside: avoid;
}
.section-title {
  font-weight: 700;
  text-transform: %s;
  letter-spacing: %s;
  color: %s;
  border-bottom: 1px solid %s;
  padding-bottom: 2mm;
  margin-bottom: 3mm;
}
.muted { color: #666; }
.badge {
  background: %s;
  color: %s;
  padding: 1mm 2.5mm;
  border-radius: 3mm;
  margin: 1mm 1.5mm 0 0;
  display: inline-block;
  font-size: %s;
}
.item { margin-bottom: 4mm; }
.item .title { font-weight: 600; }
.item .meta {
  display: flex;
  gap: 4mm;
  flex-wrap: wrap;
  color: #555;
  font-size: %s;
}
.item .desc { margin-top: 1.5mm; }
.list {
  margin: 0;
  padding-left: 0;
  list-style: none;
}
.list li::before {
  content: "%s";
  color: %s;
  margin-right: 2.5mm;
}
.contact {
  display: grid;
  gap: 2mm;
  font-size: %s;
}
.contact .label { font-weight: 600; }
`,
		pt(nameSize(s.BaseFontSize)),
		s.AccentColor,
		mm(s.SectionSpacing),
		s.HeadingTransform, s.HeadingLetterSpacing, s.AccentColor, s.DividerColor,
		s.BgAccent, s.AccentColor, pt(badgeSize(s.BaseFontSize)),
		pt(metaSize(s.BaseFontSize)),
		escapeCSSString(s.BulletChar), s.AccentColor,
		pt(metaSize(s.BaseFontSize)),
	)
}

// buildPhotoCSS generates the default rectangular sidebar photo.
func buildPhotoCSS() string {
	return `
/* Photo */
.photo-frame { margin-bottom: 4mm; }
.photo {
  width: 100%;
  border-radius: 2mm;
  object-fit: cover;
  display: block;
}
`
}

// buildCirclePortraitCSS generates the circular photo with its organic blob
// and carved cutout. Returns "" when disabled.
func buildCirclePortraitCSS(s Settings) string {
	c := s.CirclePortrait
	if !c.Enable {
		return ""
	}

	ring := ""
	if c.RingColor != "" {
		ring = fmt.Sprintf("  box-shadow: 0 0 0 %s %s inset;\n", mm(c.Gap), c.RingColor)
	}

	return fmt.Sprintf(`
/* Circle portrait */
.circle-portrait .photo-frame {
  position: relative;
  width: 100%%;
  aspect-ratio: 1 / 1;
  display: grid;
  place-items: center;
  margin-bottom: %s;
}
.circle-portrait .photo-frame .photo {
  width: calc(100%% - %s);
  height: calc(100%% - %s);
  border-radius: 50%%;
  object-fit: cover;
  display: block;
  z-index: 2;
%s}
.circle-portrait .photo-frame::before {
  content: "";
  position: absolute;
  inset: %s;
  background: %s;
  z-index: 1;
  border-radius: 40%% 60%% 55%% 45%% / 55%% 45%% 55%% 45%%;
  filter: blur(.2mm);
}
.circle-portrait .photo-frame::after {
  content: "";
  position: absolute;
  right: %s;
  top: %s;
  width: %s;
  height: %s;
  background: white;
  border-top-left-radius: %s;
  border-bottom-left-radius: %s;
  box-shadow: 0 0 0 1px %s inset;
}
`,
		mm(portraitFrameSpacing),
		mm(c.Gap*2), mm(c.Gap*2),
		ring,
		mm(portraitBlobInset), c.BlobColor,
		mm(-cutoutOverhang), mm(cutoutTop), mm(cutoutWidth), mm(cutoutHeight),
		mm(cutoutRadius), mm(cutoutRadius),
		s.DividerColor,
	)
}

// buildCardCSS generates the generic card, restyled by themes.
func buildCardCSS() string {
	return `
/* Cards */
.card {
  border-radius: 3mm;
  background: white;
}
`
}

// buildBrutalismCSS generates the brutalism overrides. Returns "" when disabled.
// The hero override is only emitted when the hero header is enabled.
func buildBrutalismCSS(s Settings) string {
	b := s.Brutalism
	if !b.Enable {
		return ""
	}

	border := px(b.BorderWidth) + " solid " + b.BorderColor

	var buf strings.Builder
	fmt.Fprintf(&buf, `
/* Brutalism */
body.is-brutalism { background: white; }
.section-title {
  border: %s;
  padding: 2mm 3mm;
  background: %s;
  margin-bottom: 4mm;
}
.card {
  border: %s;
  box-shadow: %s;
  border-radius: 0;
  padding: 3mm;
  margin-bottom: 4mm;
}
.badge {
  border: %s;
  background: #fff;
  border-radius: 0;
}
.sidebar, .main { padding: 0; }
.list li::before {
  content: "%s";
  color: %s;
  margin-right: 2.5mm;
}
`, border, b.AccentBg, border, b.Shadow, border, brutalismBullet, s.TextColor)

	if s.Header.Enable {
		fmt.Fprintf(&buf, `.hero {
  border: %s;
  background: %s;
  box-shadow: %s;
  border-radius: 0;
}
`, border, b.AccentBg, b.Shadow)
	}

	return buf.String()
}

// escapeCSSString escapes a string for use inside a double-quoted CSS string.
// Backslashes and quotes are escaped, newlines become \A, carriage returns
// are dropped. Multi-character values pass through.
func escapeCSSString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\A `)
	s = strings.ReplaceAll(s, "\r", "")
	return s
}

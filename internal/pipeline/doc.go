// Package pipeline turns CV data into a standalone HTML document.
//
// Stages:
//   - Template execution with html/template and the document helpers
//     (join, safe, md, ifAny plus the sprig HTML function map)
//   - Rich-text sanitizing for user-supplied fragments
//   - Inline Markdown rendering via goldmark
//   - Relative asset path rewriting so the document renders from a temp file
//
// PDF generation is handled separately by the root cv2pdf package using
// headless Chrome (go-rod).
package pipeline

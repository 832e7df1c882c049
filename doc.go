// Package cv2pdf renders a CV from a content document and a style document
// into a print-ready HTML page and an A4 PDF using headless Chrome.
//
// # Quick Start
//
// Load the inputs, create a converter, convert, and close when done:
//
//	in, err := cv2pdf.LoadInputs(ctx, cv2pdf.InputPaths{
//	    Personal: "configs/personal.json",
//	    Style:    "brutalism",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	conv, err := cv2pdf.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, cv2pdf.Input{
//	    Personal: in.Personal,
//	    Style:    in.Style,
//	    BaseDir:  in.BaseDir,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("cv.pdf", result.PDF, 0644)
//
// The result carries the compiled stylesheet (result.CSS), the HTML
// document (result.HTML) and the PDF with its page count. Use
// Input.HTMLOnly to skip the browser.
//
// # Stylesheet Compiler
//
// BuildCSS turns a StyleConfig into CSS without touching the filesystem or
// the browser. Every field is optional: Normalize fills the gaps with the
// documented defaults, and the hero header, circle portrait and brutalism
// blocks are emitted only when enabled.
//
//	css := cv2pdf.BuildCSS(cv2pdf.StyleConfig{
//	    BaseFontSize: 12,
//	    Brutalism:    &cv2pdf.BrutalismConfig{Enable: true},
//	})
//
// # Conversion Pipeline
//
//  1. Style normalization and CSS compilation
//  2. Template rendering (html/template with sprig helpers and sanitized rich text)
//  3. Relative image paths rewritten to file:// URLs
//  4. PDF printing via headless Chrome (go-rod), A4, backgrounds on
//
// # Parallel Processing
//
// ConverterPool bounds the number of browsers when several styles are
// rendered at once:
//
//	pool := cv2pdf.NewConverterPool(cv2pdf.ResolvePoolSize(0))
//	defer pool.Close()
//
//	conv, err := pool.Acquire(ctx)
//	if err != nil {
//	    return err
//	}
//	defer pool.Release(conv)
//
// # Error Handling
//
// Failures wrap the sentinel errors in errors.go and can be checked with
// errors.Is:
//
//	if errors.Is(err, cv2pdf.ErrBrowserConnect) {
//	    // Chrome could not be started
//	}
package cv2pdf

package pipeline

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrPathRewrite indicates the rendered document could not be re-parsed.
var ErrPathRewrite = errors.New("path rewrite failed")

// RewriteRelativePaths resolves relative img[src] and link[href] values
// against baseDir and turns them into file:// URLs, so the document still
// finds its photo and fonts once written to a temp directory.
// An empty baseDir returns the document unchanged.
//
// URLs, data URIs, anchors and absolute paths are left alone, as are paths
// that would escape baseDir.
func RewriteRelativePaths(document, baseDir string) (string, error) {
	if baseDir == "" {
		return document, nil
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPathRewrite, err)
	}

	doc, err := html.Parse(strings.NewReader(document))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPathRewrite, err)
	}

	changed := false
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Img:
				changed = rewriteAttr(n, "src", absBase) || changed
			case atom.Link:
				changed = rewriteAttr(n, "href", absBase) || changed
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if !changed {
		return document, nil
	}

	var buf strings.Builder
	if err := html.Render(&buf, doc); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPathRewrite, err)
	}
	return buf.String(), nil
}

// rewriteAttr rewrites attribute key of n in place. Reports whether it did.
func rewriteAttr(n *html.Node, key, baseDir string) bool {
	for i, attr := range n.Attr {
		if attr.Key != key || !isRelativePath(attr.Val) {
			continue
		}

		absPath := filepath.Join(baseDir, filepath.FromSlash(attr.Val))
		if !isPathUnderDir(absPath, baseDir) {
			continue
		}

		n.Attr[i].Val = pathToFileURL(absPath)
		return true
	}
	return false
}

func isRelativePath(path string) bool {
	if path == "" || strings.HasPrefix(path, "#") || strings.HasPrefix(path, "//") {
		return false
	}
	if u, err := url.Parse(path); err == nil && u.Scheme != "" {
		return false
	}
	return !filepath.IsAbs(path) && !strings.HasPrefix(path, "/")
}

func isPathUnderDir(absPath, dir string) bool {
	cleanDir := filepath.Clean(dir) + string(filepath.Separator)
	return strings.HasPrefix(filepath.Clean(absPath)+string(filepath.Separator), cleanDir)
}

// pathToFileURL converts an absolute path to a file:// URL, Windows included.
func pathToFileURL(absPath string) string {
	p := filepath.ToSlash(absPath)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}

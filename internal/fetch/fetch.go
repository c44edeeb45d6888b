// ABOUTME: Fetches a URL and extracts readable page text as markdown
// ABOUTME: Backs the /fetch command that opens web pages as scratch buffers

package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// DefaultTimeout bounds a page load when the caller sets none.
const DefaultTimeout = 30 * time.Second

// maxBody caps how much of a response is read.
const maxBody = 5 * 1024 * 1024

// Page is the readable extraction of a fetched URL.
type Page struct {
	URL   string
	Title string
	Text  string // markdown-ish readable text
}

// Fetch loads url and extracts its readable content. Plain-HTTP URLs are
// upgraded to HTTPS except for localhost.
func Fetch(ctx context.Context, url string, timeout time.Duration) (*Page, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if strings.HasPrefix(url, "http://") && !strings.Contains(url, "localhost") && !strings.Contains(url, "127.0.0.1") {
		url = "https://" + url[7:]
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", "torus-go/1.0")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	title, text := Extract(string(body))
	if title == "" {
		title = url
	}
	return &Page{URL: url, Title: title, Text: text}, nil
}

// Extract parses raw HTML and returns the page title and readable text.
// Unparseable input comes back verbatim as text.
func Extract(raw string) (title, text string) {
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return "", raw
	}

	var b strings.Builder
	extractReadable(doc, &b, false)
	return findTitle(doc), strings.TrimSpace(b.String())
}

func findTitle(doc *html.Node) string {
	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if title != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "title" {
			title = strings.TrimSpace(nodeText(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return title
}

// extractReadable walks the HTML tree and extracts text content with light
// markdown markers.
func extractReadable(n *html.Node, b *strings.Builder, inPre bool) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "nav", "footer", "header", "iframe", "noscript", "title":
			return
		case "h1":
			b.WriteString("\n# ")
		case "h2":
			b.WriteString("\n## ")
		case "h3":
			b.WriteString("\n### ")
		case "h4", "h5", "h6":
			b.WriteString("\n#### ")
		case "p", "div", "section", "article":
			b.WriteString("\n\n")
		case "br":
			b.WriteString("\n")
		case "li":
			b.WriteString("\n- ")
		case "pre":
			b.WriteString("\n```\n")
			inPre = true
		case "code":
			if !inPre {
				b.WriteString("`")
			}
		case "a":
			if href := getAttr(n, "href"); href != "" {
				if text := nodeText(n); text != "" {
					fmt.Fprintf(b, "[%s](%s)", strings.TrimSpace(text), href)
					return
				}
			}
		case "strong", "b":
			b.WriteString("**")
		case "em", "i":
			b.WriteString("*")
		}
	}

	if n.Type == html.TextNode {
		text := n.Data
		if !inPre {
			text = strings.Join(strings.Fields(text), " ")
		}
		if text != "" && text != " " {
			b.WriteString(text)
			if !inPre {
				b.WriteString(" ")
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractReadable(c, b, inPre)
	}

	if n.Type == html.ElementNode {
		switch n.Data {
		case "pre":
			b.WriteString("\n```\n")
		case "code":
			if !inPre {
				b.WriteString("`")
			}
		case "strong", "b":
			b.WriteString("**")
		case "em", "i":
			b.WriteString("*")
		case "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n")
		}
	}
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are stripped from fetched pages before text extraction.
var noiseSelectors = []string{
	"script", "style", "noscript", "nav", "header", "footer", "aside", "form",
}

// contentSelectors are tried in order for the main job posting content;
// the page body is the fallback.
var contentSelectors = []string{
	"main", "article", "[class*=job-description]", "[class*=description]", "body",
}

// ExtractText pulls the readable text out of an HTML page, removing
// navigation and boilerplate elements first.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	for _, sel := range contentSelectors {
		node := doc.Find(sel).First()
		if node.Length() == 0 {
			continue
		}
		text := CleanText(node.Text())
		if text != "" {
			return text, nil
		}
	}

	return "", fmt.Errorf("%w: no readable content found", ErrContentExtractionFailed)
}

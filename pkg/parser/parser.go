package parser

import (
	"bufio"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/page-analyser/models"
	"github.com/go-shiori/go-readability"
)

// placeholderURL stands in for pages that were not fetched from the web;
// readability needs a base URL to resolve relative references.
const placeholderURL = "http://localhost/"

type Parser struct{}

// PageInfo extracts descriptive metadata from doc. go-readability supplies
// the title, excerpt, site name and byline; when it cannot make sense of the
// page the <title> element is used instead.
func (p *Parser) PageInfo(rawURL string, doc *goquery.Document) models.PageInfo {
	fallback := models.PageInfo{
		Title: normalizeText(doc.Find("title").First().Text()),
	}

	html, err := goquery.OuterHtml(doc.Selection)
	if err != nil {
		return fallback
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil || !parsedURL.IsAbs() {
		parsedURL, _ = url.Parse(placeholderURL)
	}

	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return fallback
	}

	info := models.PageInfo{
		Title:    normalizeText(article.Title),
		Excerpt:  normalizeText(article.Excerpt),
		SiteName: normalizeText(article.SiteName),
		Byline:   normalizeText(article.Byline),
	}
	if info.Title == "" {
		info.Title = fallback.Title
	}
	return info
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			// Write the line and a single space for separation
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	// Return the result, trimming the final space
	return strings.TrimSpace(b.String())
}

package news

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/NicoTorreseg/NTmarketAnalyser/internal/logger"
)

const rssBaseURL = "https://news.google.com/rss/search"

// maxHeadlines caps how many items are forwarded to the sentiment scorer.
const maxHeadlines = 5

// Headline is one news item title plus its outlet.
type Headline struct {
	Title  string
	Source string
}

// Query describes a headline search. Merval queries switch language and
// region so Argentine outlets are actually matched.
type Query struct {
	Symbol   string
	Name     string
	IsCrypto bool
	IsMerval bool
}

type Client struct {
	httpClient *http.Client
	logger     *logger.Logger
}

func NewClient(log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     log,
	}
}

// Search returns up to 5 recent headlines for the asset. Failures yield an
// empty slice; the scorer treats that as "no news, stay neutral".
func (c *Client) Search(ctx context.Context, q Query) []Headline {
	term, lang, region := buildSearch(q)

	items := c.fetch(ctx, term, lang, region)
	if len(items) == 0 && q.IsMerval {
		// Argentine company names often miss; retry with the bare ticker.
		items = c.fetch(ctx, q.Symbol+" acciones merval", lang, region)
	}

	if len(items) > maxHeadlines {
		items = items[:maxHeadlines]
	}
	return items
}

func buildSearch(q Query) (term, lang, region string) {
	switch {
	case q.IsMerval:
		return cleanCompanyName(q.Name) + " acciones economía", "es", "AR"
	case q.IsCrypto:
		name := q.Name
		if name == "" {
			name = q.Symbol + " crypto coin"
			return name, "en", "US"
		}
		return name + " cryptocurrency", "en", "US"
	default:
		return q.Symbol + " stock news", "en", "US"
	}
}

// cleanCompanyName strips legal-entity tails so the query reads like a
// newspaper mention ("Grupo Financiero Galicia S.A." -> "Grupo Financiero Galicia").
func cleanCompanyName(name string) string {
	for _, sep := range []string{" S.A.", " Inc", " Corp"} {
		if i := strings.Index(name, sep); i > 0 {
			name = name[:i]
		}
	}
	return strings.TrimSpace(name)
}

type rssFeed struct {
	Channel struct {
		Items []struct {
			Title  string `xml:"title"`
			Source struct {
				Name string `xml:",chardata"`
			} `xml:"source"`
		} `xml:"item"`
	} `xml:"channel"`
}

func (c *Client) fetch(ctx context.Context, term, lang, region string) []Headline {
	params := url.Values{}
	params.Set("q", term)
	params.Set("hl", lang)
	params.Set("gl", region)
	params.Set("ceid", region+":"+lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rssBaseURL+"?"+params.Encode(), nil)
	if err != nil {
		c.logger.Error("create news request", "error", err)
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("news fetch failed", "term", term, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("news feed status", "term", term, "status", resp.StatusCode)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}

	var feed rssFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		c.logger.Debug("news feed parse failed", "term", term, "error", err)
		return nil
	}

	headlines := make([]Headline, 0, len(feed.Channel.Items))
	for _, item := range feed.Channel.Items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		headlines = append(headlines, Headline{
			Title:  title,
			Source: strings.TrimSpace(item.Source.Name),
		})
	}
	return headlines
}

// Format renders headlines for the sentiment prompt.
func Format(headlines []Headline) string {
	var sb strings.Builder
	for _, h := range headlines {
		fmt.Fprintf(&sb, "- %s (Source: %s)\n", h.Title, h.Source)
	}
	return sb.String()
}

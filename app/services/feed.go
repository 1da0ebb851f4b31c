package services

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"

	"github.com/trs-1342/rss-hattab/app/models"
)

type cdata struct {
	Text string `xml:",cdata"`
}

type rssItem struct {
	Title       cdata  `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	PubDate     string `xml:"pubDate"`
	Description cdata  `xml:"description"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language"`
	Items       []rssItem `xml:"item"`
}

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

// RenderFeed serializes posts into an RSS 2.0 document. The input is expected
// in the query engine's default newest-first order; the renderer itself is
// stateless and preserves it. Free-text fields go out CDATA-wrapped so they
// cannot break the document structure.
func RenderFeed(siteURL string, posts []models.Post) ([]byte, error) {
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		link := fmt.Sprintf("%s/post.html?id=%s", siteURL, url.QueryEscape(p.Slug))
		items = append(items, rssItem{
			Title:       cdata{Text: p.Title},
			Link:        link,
			GUID:        link,
			PubDate:     p.PublishedAt.UTC().Format(http.TimeFormat),
			Description: cdata{Text: p.Description},
		})
	}

	feed := rssFeed{
		Version: "2.0",
		Channel: rssChannel{
			Title:       "Blog RSS",
			Link:        siteURL,
			Description: "Basit blog RSS yayını",
			Language:    "tr-TR",
			Items:       items,
		},
	}

	body, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

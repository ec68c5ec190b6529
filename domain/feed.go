package domain

import "time"

// FeedItem is one entry discovered inside a fetched RSS/Atom feed. Its link
// is untrusted until it passes the item-link policy and full URL validation.
type FeedItem struct {
	Title           string
	Description     string
	Link            string
	Published       string
	PublishedParsed time.Time
}

// MatchedItem is a feed item that matched a keyword search, together with
// the fetched body of its linked page.
type MatchedItem struct {
	Item        FeedItem
	FeedURL     string
	FinalURL    string
	Content     []byte
	ContentType string
}

// Package hal decodes HAL+JSON resources: plain JSON payloads carrying a
// "_links" object of navigational hyperlinks and, for collections, an
// "_embedded" object of nested resources.
package hal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

const (
	MediaType = "application/hal+json"
	RelSelf   = "self"
	RelNext   = "next"
	RelPrev   = "prev"
	RelFirst  = "first"
	RelLast   = "last"
)

type Link struct {
	Href      string `json:"href"`
	Templated bool   `json:"templated,omitempty"`
	Type      string `json:"type,omitempty"`
	Title     string `json:"title,omitempty"`
	Name      string `json:"name,omitempty"`
}

/*
Links maps a relation name to its link. HAL allows a relation to hold either
a single link object or an array of them. Arrays resolve to their first
element.
*/
type Links map[string]Link

func (l *Links) UnmarshalJSON(b []byte) error {
	var (
		err error
		raw map[string]json.RawMessage
	)

	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*l = nil
		return nil
	}

	if err = json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("error decoding links: %w", err)
	}

	result := make(Links, len(raw))

	for rel, value := range raw {
		trimmed := bytes.TrimSpace(value)

		if len(trimmed) > 0 && trimmed[0] == '[' {
			many := []Link{}

			if err = json.Unmarshal(trimmed, &many); err != nil {
				return fmt.Errorf("error decoding link array '%s': %w", rel, err)
			}

			if len(many) > 0 {
				result[rel] = many[0]
			}

			continue
		}

		one := Link{}

		if err = json.Unmarshal(trimmed, &one); err != nil {
			return fmt.Errorf("error decoding link '%s': %w", rel, err)
		}

		result[rel] = one
	}

	*l = result
	return nil
}

// Resource is a bag of links. A link of a given relation may or may not be present.
type Resource struct {
	Links Links `json:"_links,omitempty"`
}

func (r Resource) GetLink(rel string) (Link, bool) {
	if r.Links == nil {
		return Link{}, false
	}

	link, ok := r.Links[rel]
	return link, ok
}

func (r Resource) HasLink(rel string) bool {
	_, ok := r.GetLink(rel)
	return ok
}

// Href returns the href of the named relation, or an empty string.
func (r Resource) Href(rel string) string {
	link, _ := r.GetLink(rel)
	return link.Href
}

// Rels returns the relation names present, sorted.
func (r Resource) Rels() []string {
	result := make([]string, 0, len(r.Links))

	for rel := range r.Links {
		result = append(result, rel)
	}

	sort.Strings(result)
	return result
}

type Page struct {
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

/*
Collection is a page of embedded items plus the collection's own links.
Items are gathered from every array found under "_embedded", in sorted
relation order, since the relation name is chosen by the server.
*/
type Collection[T any] struct {
	Resource

	Items []T
	Page  *Page
}

func (c *Collection[T]) UnmarshalJSON(b []byte) error {
	var (
		err      error
		envelope struct {
			Links    Links                      `json:"_links"`
			Embedded map[string]json.RawMessage `json:"_embedded"`
			Page     *Page                      `json:"page"`
		}
	)

	if err = json.Unmarshal(b, &envelope); err != nil {
		return fmt.Errorf("error decoding collection: %w", err)
	}

	c.Links = envelope.Links
	c.Page = envelope.Page
	c.Items = []T{}

	rels := make([]string, 0, len(envelope.Embedded))

	for rel := range envelope.Embedded {
		rels = append(rels, rel)
	}

	sort.Strings(rels)

	for _, rel := range rels {
		trimmed := bytes.TrimSpace(envelope.Embedded[rel])

		if len(trimmed) == 0 || trimmed[0] != '[' {
			continue
		}

		items := []T{}

		if err = json.Unmarshal(trimmed, &items); err != nil {
			return fmt.Errorf("error decoding embedded '%s': %w", rel, err)
		}

		c.Items = append(c.Items, items...)
	}

	return nil
}

func (c *Collection[T]) Len() int {
	return len(c.Items)
}

func Decode(r io.Reader, v any) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("error decoding HAL resource: %w", err)
	}

	return nil
}

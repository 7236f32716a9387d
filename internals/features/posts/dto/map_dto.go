package dto

import (
	"bytes"
	"encoding/json"
	"net/url"
	"time"

	"photograph_backend/internals/features/posts/model"
)

// MapPostSummary is the shape the map frontend renders per pin.
type MapPostSummary struct {
	PostLatitude   float64   `json:"post_latitude"`
	PostLongitude  float64   `json:"post_longitude"`
	UserName       string    `json:"user_name"`
	LocationName   string    `json:"location_name"`
	LocationURL    string    `json:"location_url"`
	Likes          int64     `json:"likes"`
	CreatedAt      time.Time `json:"created_at"`
	Caption        string    `json:"caption"`
	PhotoURL       string    `json:"photo_url"`
	UserProfileURL string    `json:"user_profile_url"`
	PostURL        string    `json:"post_url"`
}

func ToMapPostSummary(m model.PostModel) MapPostSummary {
	out := MapPostSummary{
		PostLatitude:  m.PostLatitude,
		PostLongitude: m.PostLongitude,
		LocationName:  m.PostLocationName,
		LocationURL:   "/locations/" + url.PathEscape(m.PostLocationName),
		Likes:         m.PostLikeCount,
		CreatedAt:     m.PostCreatedAt,
		PhotoURL:      m.PostPhotoURL,
		PostURL:       "/posts/" + m.PostSlug,
	}
	if m.PostCaption != nil {
		out.Caption = *m.PostCaption
	}
	if m.User != nil {
		out.UserName = m.User.UserProfileName
		out.UserProfileURL = "/users/" + m.User.UserProfileSlug
	}
	return out
}

// LocationGroups maps location name → posts, preserving first-seen key order.
// A plain Go map would serialize its keys in random order, so the keys ride
// in a parallel list and MarshalJSON writes the object by hand.
type LocationGroups struct {
	keys   []string
	groups map[string][]MapPostSummary
}

func NewLocationGroups() *LocationGroups {
	return &LocationGroups{groups: map[string][]MapPostSummary{}}
}

// Add appends a summary to its location's group. Feed it posts already sorted
// by popularity: a location's group appears at the position of its first
// (highest-ranked) post, and the within-group order is preserved.
func (g *LocationGroups) Add(s MapPostSummary) {
	if _, ok := g.groups[s.LocationName]; !ok {
		g.keys = append(g.keys, s.LocationName)
	}
	g.groups[s.LocationName] = append(g.groups[s.LocationName], s)
}

func (g *LocationGroups) Len() int {
	return len(g.keys)
}

// Get returns a location's posts in ranked order.
func (g *LocationGroups) Get(location string) []MapPostSummary {
	return g.groups[location]
}

// Keys returns the group names in first-seen order.
func (g *LocationGroups) Keys() []string {
	return g.keys
}

func (g *LocationGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range g.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(g.groups[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

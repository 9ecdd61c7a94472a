package feed

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Response models the top-level structure of the upstream feed response.
// Older deployments name the cursor field next_change_id.
type Response struct {
	NextChangeID *string `json:"next_change_id"`
	NextCursor   *string `json:"next_cursor"`
	Stashes      []Stash `json:"stashes"`
}

// Cursor returns the cursor carried by the response, if any.
func (r *Response) Cursor() (string, bool) {
	if r.NextCursor != nil {
		return *r.NextCursor, true
	}
	if r.NextChangeID != nil {
		return *r.NextChangeID, true
	}
	return "", false
}

// Batch is one fetched page of changed stashes plus the cursor to resume from.
type Batch struct {
	Stashes    []Stash
	NextCursor string
}

// Stash is a public stash tab as reported by the feed. The feed always reports a
// tab's full contents, never a delta.
type Stash struct {
	ID                string  `json:"id"`
	AccountName       *string `json:"accountName"`
	LastCharacterName *string `json:"lastCharacterName"`
	Name              *string `json:"stash"`
	StashType         string  `json:"stashType"`
	League            *string `json:"league"`
	Public            bool    `json:"public"`
	Items             []Item  `json:"items"`
}

// Account returns the account name or "" when the feed omitted it.
func (s *Stash) Account() string {
	if s.AccountName == nil {
		return ""
	}
	return *s.AccountName
}

// Item is a raw item as received from the feed.
type Item struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	TypeLine     string     `json:"typeLine"`
	FrameType    int        `json:"frameType"`
	League       string     `json:"league"`
	Note         *string    `json:"note,omitempty"`
	Identified   bool       `json:"identified"`
	Corrupted    bool       `json:"corrupted"`
	ItemLevel    int        `json:"ilvl"`
	ImplicitMods []string   `json:"implicitMods,omitempty"`
	ExplicitMods []string   `json:"explicitMods,omitempty"`
	CraftedMods  []string   `json:"craftedMods,omitempty"`
	EnchantMods  []string   `json:"enchantMods,omitempty"`
	Sockets      []Socket   `json:"sockets,omitempty"`
	Properties   []Property `json:"properties,omitempty"`
	Requirements []Property `json:"requirements,omitempty"`
}

// Frame types reported in Item.FrameType.
const (
	FrameNormal = 0
	FrameMagic  = 1
	FrameRare   = 2
	FrameUnique = 3
)

// Socket is one socket on an item; sockets sharing a Group are linked.
type Socket struct {
	Group int    `json:"group"`
	Attr  string `json:"attr"`
}

// Property is a named item property or requirement, e.g. "Quality" or "Level".
type Property struct {
	Name        string          `json:"name"`
	Values      []PropertyValue `json:"values"`
	DisplayMode int             `json:"displayMode"`
}

// PropertyValue is the feed's ["+20%", 1] tuple: display text plus a value kind.
type PropertyValue struct {
	Text string
	Kind int
}

func (v *PropertyValue) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("property value: %w", err)
	}
	if len(raw) == 0 {
		return fmt.Errorf("property value: empty tuple")
	}
	if err := json.Unmarshal(raw[0], &v.Text); err != nil {
		return fmt.Errorf("property value text: %w", err)
	}
	if len(raw) > 1 {
		if err := json.Unmarshal(raw[1], &v.Kind); err != nil {
			return fmt.Errorf("property value kind: %w", err)
		}
	}
	return nil
}

func (v PropertyValue) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{v.Text, v.Kind})
}

// Property returns the first property with the given name.
func (it *Item) Property(name string) (Property, bool) {
	for _, p := range it.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// Raw returns the item encoded back to JSON, for diagnostics.
func (it *Item) Raw() string {
	b, err := json.Marshal(it)
	if err != nil {
		return fmt.Sprintf("<unencodable item %s: %v>", it.ID, err)
	}
	return string(b)
}

package recent

import "encoding/json"

// MaxEntries caps the recently-viewed list.
const MaxEntries = 10

// List keeps product ids most-recent-first. Re-viewing an id moves it
// to the front instead of duplicating it.
type List struct {
	ids []string
}

func NewList() *List {
	return &List{}
}

func (l *List) RecordView(productID string) {
	next := make([]string, 0, len(l.ids)+1)
	next = append(next, productID)
	for _, id := range l.ids {
		if id != productID {
			next = append(next, id)
		}
	}
	if len(next) > MaxEntries {
		next = next[:MaxEntries]
	}
	l.ids = next
}

// IDs returns the list front-to-back, optionally excluding one id (used
// to keep the currently-viewed product out of its own rail).
func (l *List) IDs(excludeID string) []string {
	out := make([]string, 0, len(l.ids))
	for _, id := range l.ids {
		if id != excludeID {
			out = append(out, id)
		}
	}
	return out
}

func (l *List) Len() int { return len(l.ids) }

// Encode serializes the list for keyed storage.
func (l *List) Encode() ([]byte, error) {
	return json.Marshal(l.ids)
}

// Decode rebuilds a list from a stored payload. Malformed payloads
// yield an empty list; oversized ones are truncated.
func Decode(data []byte) *List {
	l := NewList()
	if len(data) == 0 {
		return l
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return l
	}
	if len(ids) > MaxEntries {
		ids = ids[:MaxEntries]
	}
	l.ids = ids
	return l
}

package commonModels

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ID is an identifier issued by the ingestion backend. The backend uses
// integers on the wire; callers may send them back as strings.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON writes canonical integers as numbers and everything else as a string.
func (id ID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ID) String() string {
	return string(id)
}

// FileID is a file id kept in the JSON kind the caller used, so it is relayed
// to the ingestion backend exactly as sent.
type FileID struct {
	value  string
	number bool
}

func StringFileID(value string) FileID {
	return FileID{value: value}
}

func (f FileID) String() string {
	return f.value
}

func (f FileID) IsNumber() bool {
	return f.number
}

func (f *FileID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FileID{value: s}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil || n == "" {
		return fmt.Errorf("file id must be a string or a number: %s", b)
	}
	*f = FileID{value: n.String(), number: true}
	return nil
}

func (f FileID) MarshalJSON() ([]byte, error) {
	if f.number {
		return []byte(f.value), nil
	}
	return json.Marshal(f.value)
}

// StringFileIDs converts plain string ids. A nil input stays nil.
func StringFileIDs(values []string) []FileID {
	if values == nil {
		return nil
	}
	ids := make([]FileID, 0, len(values))
	for _, v := range values {
		ids = append(ids, StringFileID(v))
	}
	return ids
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// Timestamp accepts the backend's timestamps with or without a zone. Zone-less values are UTC.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(b)), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognised timestamp %q", s)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

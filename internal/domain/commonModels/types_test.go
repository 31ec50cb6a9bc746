package commonModels

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestID_AcceptsNumbersAndStrings(t *testing.T) {
	var v struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a":42,"b":"f1","c":null}`), &v); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if v.A != "42" || v.B != "f1" || v.C != "" {
		t.Errorf("got %+v", v)
	}

	out, _ := json.Marshal([]ID{"42", "f1"})
	if string(out) != `[42,"f1"]` {
		t.Errorf("marshal got %s", out)
	}

	if err := json.Unmarshal([]byte(`{"a":true}`), &v); err == nil {
		t.Error("expected error for boolean id")
	}
}

func TestID_MarshalOnlyCanonicalIntegersAsNumbers(t *testing.T) {
	tests := []struct {
		id   ID
		want string
	}{
		{"42", `42`},
		{"-3", `-3`},
		{"007", `"007"`},
		{"+5", `"+5"`},
		{"1e3", `"1e3"`},
		{"f1", `"f1"`},
		{"99999999999999999999", `"99999999999999999999"`},
	}
	for _, tt := range tests {
		out, err := json.Marshal(tt.id)
		if err != nil {
			t.Errorf("%q: %v", tt.id, err)
			continue
		}
		if string(out) != tt.want {
			t.Errorf("%q: got %s, want %s", tt.id, out, tt.want)
		}
	}
}

func TestFileID_KeepsJSONKind(t *testing.T) {
	var ids []FileID
	if err := json.Unmarshal([]byte(`["42",42,"007"," f1 ",1.5]`), &ids); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if ids[0].IsNumber() || !ids[1].IsNumber() || ids[3].String() != " f1 " {
		t.Errorf("got %+v", ids)
	}
	out, err := json.Marshal(ids)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != `["42",42,"007"," f1 ",1.5]` {
		t.Errorf("got %s", out)
	}

	for _, bad := range []string{`[true]`, `[null]`, `[{}]`} {
		if err := json.Unmarshal([]byte(bad), &ids); err == nil {
			t.Errorf("%s: expected error", bad)
		}
	}

	if StringFileIDs(nil) != nil {
		t.Error("nil input must stay nil")
	}
	if got := StringFileIDs([]string{}); got == nil || len(got) != 0 {
		t.Errorf("empty input must stay an empty slice, got %v", got)
	}
}

func TestTimestamp_Layouts(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{`"2024-06-25T10:00:00Z"`, time.Date(2024, 6, 25, 10, 0, 0, 0, time.UTC)},
		{`"2024-06-25T10:00:00.5"`, time.Date(2024, 6, 25, 10, 0, 0, 500000000, time.UTC)},
		{`"2024-06-25 10:00:00"`, time.Date(2024, 6, 25, 10, 0, 0, 0, time.UTC)},
		{`null`, time.Time{}},
	}
	for _, tt := range tests {
		var ts Timestamp
		if err := json.Unmarshal([]byte(tt.in), &ts); err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		if !ts.Equal(tt.want) {
			t.Errorf("%s: got %v, want %v", tt.in, ts.Time, tt.want)
		}
	}

	var ts Timestamp
	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Error("expected error for unparseable timestamp")
	}
}

func TestAppError_Kinds(t *testing.T) {
	err := NotConnected("DROPBOX")
	if KindOf(err) != KindNotConnected {
		t.Errorf("kind got %s", KindOf(err))
	}
	if !errors.Is(err, ErrNotConnected) {
		t.Error("NotConnected should wrap ErrNotConnected")
	}
	if MessageOf(err) != "No connected data source for DROPBOX" {
		t.Errorf("message got %s", MessageOf(err))
	}

	if KindOf(errors.New("raw")) != KindUpstream {
		t.Error("unknown errors must map to upstream")
	}
	if RequireCustomerID("") == nil || RequireCustomerID(" \t ") == nil || RequireCustomerID("c1") != nil {
		t.Error("RequireCustomerID guard is wrong")
	}
}

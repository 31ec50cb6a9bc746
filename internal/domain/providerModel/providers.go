package providerModel

import (
	"sort"

	"github.com/akolanti/DocBridgeAPI/internal/config"
)

// Service is the logical connector name, independent of any connected account.
type Service string

const (
	GoogleDrive Service = "GOOGLE_DRIVE"
	Dropbox     Service = "DROPBOX"
	Notion      Service = "NOTION"
)

// Descriptor holds what is needed to open a connection for a service.
type Descriptor struct {
	Service     Service `json:"service"`
	DisplayName string  `json:"display_name"`
	//empty when the provider takes no scope parameter
	Scope string `json:"scope,omitempty"`
}

func (d Descriptor) HasScope() bool {
	return d.Scope != ""
}

var descriptors = map[Service]Descriptor{
	GoogleDrive: {Service: GoogleDrive, DisplayName: "Google Drive", Scope: config.GoogleDriveReadOnlyURL},
	Dropbox:     {Service: Dropbox, DisplayName: "Dropbox"},
	Notion:      {Service: Notion, DisplayName: "Notion"},
}

// Lookup returns the descriptor for a raw service name. Unknown names report false.
func Lookup(name string) (Descriptor, bool) {
	d, ok := descriptors[Service(name)]
	return d, ok
}

// All returns every supported descriptor ordered by service name.
func All() []Descriptor {
	out := make([]Descriptor, 0, len(descriptors))
	for _, d := range descriptors {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Service < out[j].Service })
	return out
}

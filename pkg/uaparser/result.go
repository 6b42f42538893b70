package uaparser

import (
	"strings"
	"unicode"
)

// Browser describes the user agent's client software.
// Empty fields are undefined.
type Browser struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
	Major   string `json:"major,omitempty"`
	Type    string `json:"type,omitempty"`
}

// CPU describes the processor architecture.
type CPU struct {
	Architecture string `json:"architecture,omitempty"`
}

// Device describes the hardware.
type Device struct {
	Vendor string `json:"vendor,omitempty"`
	Model  string `json:"model,omitempty"`
	Type   string `json:"type,omitempty"`
}

// Engine describes the rendering engine.
type Engine struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
}

// OS describes the operating system.
type OS struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
}

// Result is a snapshot of every category plus the classified user agent.
type Result struct {
	UA      string  `json:"ua"`
	Browser Browser `json:"browser"`
	CPU     CPU     `json:"cpu"`
	Device  Device  `json:"device"`
	Engine  Engine  `json:"engine"`
	OS      OS      `json:"os"`
}

func newBrowser(f Fields) Browser {
	return Browser{
		Name:    f[FieldName],
		Version: f[FieldVersion],
		Major:   major(f[FieldVersion]),
		Type:    f[FieldType],
	}
}

func newCPU(f Fields) CPU { return CPU{Architecture: f[FieldArchitecture]} }

func newDevice(f Fields) Device {
	return Device{Vendor: f[FieldVendor], Model: f[FieldModel], Type: f[FieldType]}
}

func newEngine(f Fields) Engine { return Engine{Name: f[FieldName], Version: f[FieldVersion]} }

func newOS(f Fields) OS { return OS{Name: f[FieldName], Version: f[FieldVersion]} }

// String joins the defined name and version.
func (b Browser) String() string { return join(b.Name, b.Version) }

// Is reports whether any field equals s, ignoring case and whitespace.
func (b Browser) Is(s string) bool { return is(s, b.Name, b.Version, b.Major, b.Type) }

func (c CPU) String() string      { return c.Architecture }
func (c CPU) Is(s string) bool    { return is(s, c.Architecture) }
func (d Device) String() string   { return join(d.Vendor, d.Model) }
func (d Device) Is(s string) bool { return is(s, d.Vendor, d.Model, d.Type) }
func (e Engine) String() string   { return join(e.Name, e.Version) }
func (e Engine) Is(s string) bool { return is(s, e.Name, e.Version) }
func (o OS) String() string       { return join(o.Name, o.Version) }
func (o OS) Is(s string) bool     { return is(s, o.Name, o.Version) }

func join(parts ...string) string {
	var sb strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p)
	}
	return sb.String()
}

func is(s string, values ...string) bool {
	want := normalize(s)
	if want == "" {
		return false
	}
	for _, v := range values {
		if v != "" && normalize(v) == want {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s))
}

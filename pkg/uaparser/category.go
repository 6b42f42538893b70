package uaparser

// Category names one of the result groups a user agent is classified into.
type Category string

const (
	CategoryBrowser Category = "browser"
	CategoryCPU     Category = "cpu"
	CategoryDevice  Category = "device"
	CategoryEngine  Category = "engine"
	CategoryOS      Category = "os"
)

// Categories lists every known category in classification order.
var Categories = []Category{
	CategoryBrowser,
	CategoryCPU,
	CategoryDevice,
	CategoryEngine,
	CategoryOS,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryBrowser, CategoryCPU, CategoryDevice, CategoryEngine, CategoryOS:
		return true
	}
	return false
}

// Field names a single value extracted by a rule template.
type Field string

const (
	FieldName         Field = "name"
	FieldVersion      Field = "version"
	FieldMajor        Field = "major"
	FieldType         Field = "type"
	FieldVendor       Field = "vendor"
	FieldModel        Field = "model"
	FieldArchitecture Field = "architecture"
)

// Valid reports whether f is a known field.
func (f Field) Valid() bool {
	switch f {
	case FieldName, FieldVersion, FieldMajor, FieldType, FieldVendor, FieldModel, FieldArchitecture:
		return true
	}
	return false
}

// Browser types. Ordinary browsers leave the type undefined.
const (
	BrowserTypeBrowser = "browser"
	BrowserTypeCLI     = "cli"
	BrowserTypeCrawler = "crawler"
	BrowserTypeEmail   = "email"
	BrowserTypeFetcher = "fetcher"
	BrowserTypeInApp   = "inapp"
	BrowserTypeLibrary = "library"
	BrowserTypeVehicle = "vehicle"
)

// Device types. Desktop devices leave the type undefined.
const (
	DeviceTypeConsole  = "console"
	DeviceTypeEmbedded = "embedded"
	DeviceTypeMobile   = "mobile"
	DeviceTypeSmartTV  = "smarttv"
	DeviceTypeTablet   = "tablet"
	DeviceTypeWearable = "wearable"
	DeviceTypeXR       = "xr"
)

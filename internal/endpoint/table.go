package endpoint

import "github.com/senselink/senselink-core/internal/saul"

// Method is the request kind an endpoint accepts, independent of any
// particular transport's verb vocabulary.
type Method uint8

// Methods.
const (
	// MethodRead retrieves a value; selectors travel in the query.
	MethodRead Method = iota + 1

	// MethodSubmit carries a selector in the request payload.
	MethodSubmit
)

// String returns the method name for logging.
func (m Method) String() string {
	switch m {
	case MethodRead:
		return "read"
	case MethodSubmit:
		return "submit"
	default:
		return "unknown"
	}
}

// Resource binds one path to its handler. Fixed-category resources are
// configuration, not code: each is the shared category-read implementation
// with the category literal bound at table construction.
type Resource struct {
	Path    string
	Method  Method
	Handler Handler
}

// Resources returns the endpoint table, sorted by path (ASCII order).
func (d *Dispatcher) Resources() []Resource {
	return []Resource{
		{Path: "/hum", Method: MethodRead, Handler: d.fixedCategory(saul.SenseHum)},
		{Path: "/press", Method: MethodRead, Handler: d.fixedCategory(saul.SensePress)},
		{Path: "/saul/cnt", Method: MethodRead, Handler: d.Count},
		{Path: "/saul/dev", Method: MethodSubmit, Handler: d.LookupByIndex},
		{Path: "/sensor", Method: MethodRead, Handler: d.ReadByCategory},
		{Path: "/servo", Method: MethodRead, Handler: d.fixedCategory(saul.ActServo)},
		{Path: "/temp", Method: MethodRead, Handler: d.fixedCategory(saul.SenseTemp)},
		{Path: "/voltage", Method: MethodRead, Handler: d.fixedCategory(saul.SenseVoltage)},
	}
}

// fixedCategory binds a category literal over the shared read
// implementation. The resulting handler behaves identically to a generic
// read-by-category request carrying that code.
func (d *Dispatcher) fixedCategory(c saul.Category) Handler {
	return func(_ Request, buf []byte) (Status, int) {
		return d.resolveCategory(c, buf)
	}
}

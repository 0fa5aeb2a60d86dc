package models

// QueryName identifies one entry of the fixed query vocabulary
type QueryName string

const (
	QueryAssert        QueryName = "aiAssert"
	QueryAsk           QueryName = "aiAsk"
	QueryExtract       QueryName = "aiQuery"
	QueryBoolean       QueryName = "aiBoolean"
	QueryNumber        QueryName = "aiNumber"
	QueryString        QueryName = "aiString"
	QueryLocate        QueryName = "aiLocate"
	QueryLocation      QueryName = "location"
	QueryTabs          QueryName = "getTabs"
	QueryGetLogContent QueryName = "getLogContent"
)

// QueryNames lists every supported query in catalog order.
var QueryNames = []QueryName{
	QueryAssert,
	QueryAsk,
	QueryExtract,
	QueryBoolean,
	QueryNumber,
	QueryString,
	QueryLocate,
	QueryLocation,
	QueryTabs,
	QueryGetLogContent,
}

// AssertResult is returned by a passing aiAssert query
type AssertResult struct {
	Success   bool   `json:"success"`
	Assertion string `json:"assertion"`
}

// Rect is an element rectangle in viewport coordinates
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Location describes the page the session is currently on
type Location struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

// TabInfo describes one browser tab; ID is its index
type TabInfo struct {
	ID    int    `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

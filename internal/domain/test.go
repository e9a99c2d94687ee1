package domain

// Request describes the single HTTP request a test case issues
type Request struct {
	Method     string            `yaml:"method" json:"method"`
	Path       string            `yaml:"path" json:"path"`                                  // Path template, may contain {name} placeholders
	PathParams map[string]string `yaml:"path_params,omitempty" json:"path_params,omitempty"` // Values substituted into Path
	Query      map[string]string `yaml:"query,omitempty" json:"query,omitempty"`
	Headers    map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`
	Body       string            `yaml:"body,omitempty" json:"body,omitempty"`
}

// Expectation holds what a response must look like for the case to pass
type Expectation struct {
	Status   int      `yaml:"status" json:"status"`
	Fields   []string `yaml:"fields,omitempty" json:"fields,omitempty"`     // JSON keys that must appear as "key" in the body
	Contains []string `yaml:"contains,omitempty" json:"contains,omitempty"` // Raw substrings that must appear in the body
}

// TestCase is one named request/expectation pair
type TestCase struct {
	Name    string      `yaml:"name" json:"name"`
	Request Request     `yaml:"request" json:"request"`
	Expect  Expectation `yaml:"expect" json:"expect"`
}

// Markers returns every substring the response body has to contain,
// fields first (quoted) followed by raw substrings, in declaration order.
func (e Expectation) Markers() []string {
	markers := make([]string, 0, len(e.Fields)+len(e.Contains))
	for _, field := range e.Fields {
		markers = append(markers, `"`+field+`"`)
	}
	markers = append(markers, e.Contains...)
	return markers
}

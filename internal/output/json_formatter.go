package output

import (
	json "github.com/goccy/go-json"
)

// JSONFormatter serializes the projection as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *Report) ([]byte, error) {
	doc := struct {
		Name        string      `json:"name"`
		Cached      bool        `json:"cached"`
		Assumptions []string    `json:"assumptions"`
		Projection  interface{} `json:"projection"`
	}{report.Name, report.Cached, report.Assumptions, report.Projection}
	return json.MarshalIndent(doc, "", "  ")
}

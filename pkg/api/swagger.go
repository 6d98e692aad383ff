package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/swaggo/swag"
	"gopkg.in/yaml.v3"
)

// GetSwaggerSpecAsYAML renders the registered OpenAPI document as YAML.
func GetSwaggerSpecAsYAML() ([]byte, error) {
	doc, err := swag.ReadDoc()
	if err != nil {
		return nil, err
	}
	var spec interface{}
	if err := json.Unmarshal([]byte(doc), &spec); err != nil {
		return nil, err
	}
	return yaml.Marshal(spec)
}

// SwaggerHandler serves the registered OpenAPI document, JSON by default and YAML on request.
func SwaggerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Accept"), "yaml") {
			out, err := GetSwaggerSpecAsYAML()
			if err != nil {
				Error(w, http.StatusInternalServerError, "Failed to render swagger spec")
				return
			}
			w.Header().Set("Content-Type", "application/yaml")
			w.Write(out)
			return
		}

		doc, err := swag.ReadDoc()
		if err != nil {
			Error(w, http.StatusInternalServerError, "Swagger spec not registered")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(doc))
	}
}

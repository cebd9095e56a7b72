package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestDocIsValidJSON(t *testing.T) {
	raw, err := swag.ReadDoc()
	if err != nil {
		t.Fatal(err)
	}

	var doc struct {
		Info     struct{ Title string } `json:"info"`
		BasePath string                 `json:"basePath"`
		Paths    map[string]interface{} `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("doc is not JSON: %v", err)
	}
	if doc.Info.Title != "MindCare API" || doc.BasePath != "/v1" {
		t.Errorf("info = %+v, basePath = %q", doc.Info, doc.BasePath)
	}
	for _, path := range []string{"/assessments", "/chat/bot", "/dashboard", "/sessions/{id}/cancel"} {
		if _, ok := doc.Paths[path]; !ok {
			t.Errorf("missing path %s", path)
		}
	}
}

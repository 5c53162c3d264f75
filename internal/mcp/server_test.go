package mcp

import (
	"encoding/json"
	"strings"
	"testing"

	"dealrisk-mcp/internal/analysis"
	"dealrisk-mcp/internal/service"
	"dealrisk-mcp/internal/templates"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	svc := service.New(templates.NewStore(""), analysis.NewDefaults())
	s, err := NewServer(svc)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return s
}

func TestServer_ToolRegistry(t *testing.T) {
	s := newTestServer(t)

	want := []string{
		"list_property_templates",
		"run_tornado_analysis",
		"run_matrix_analysis",
		"run_monte_carlo",
		"compare_scenarios",
		"find_break_even",
	}
	if len(s.tools) != len(want) {
		t.Fatalf("Expected %d tools, got %d", len(want), len(s.tools))
	}
	for _, name := range want {
		tl, ok := s.byName[name]
		if !ok {
			t.Errorf("Tool %s not registered", name)
			continue
		}
		if tl.handle == nil {
			t.Errorf("Tool %s has no handler", name)
		}
		if tl.resolved == nil {
			t.Errorf("Tool %s schema not resolved", name)
		}
		if tl.Description == "" {
			t.Errorf("Tool %s has no description", name)
		}
	}
}

func callParams(t *testing.T, name, args string) json.RawMessage {
	t.Helper()
	params, err := json.Marshal(map[string]interface{}{
		"name":      name,
		"arguments": json.RawMessage(args),
	})
	if err != nil {
		t.Fatal(err)
	}
	return params
}

func TestServer_CallTool(t *testing.T) {
	s := newTestServer(t)

	t.Run("tornado with template hydration", func(t *testing.T) {
		result, errRes := s.callTool(callParams(t, "run_tornado_analysis", `{"property_type": "multifamily"}`))
		if errRes != nil {
			t.Fatalf("Unexpected error: %v", errRes)
		}

		content := result.(map[string]interface{})["content"].([]interface{})
		text := content[0].(map[string]interface{})["text"].(string)

		var resp service.Response
		if err := json.Unmarshal([]byte(text), &resp); err != nil {
			t.Fatalf("Tool response is not valid JSON: %v", err)
		}
		if resp.PropertyType != "multifamily" || resp.MetricType != "cash_on_cash" {
			t.Errorf("Unexpected response envelope: %+v", resp)
		}
	})

	t.Run("schema rejects missing required field", func(t *testing.T) {
		// property_type is required by the tornado schema.
		_, errRes := s.callTool(callParams(t, "run_tornado_analysis", `{}`))
		if errRes == nil {
			t.Fatal("Expected a validation error")
		}
		if code := errRes.(map[string]interface{})["code"]; code != -32602 {
			t.Errorf("Expected code -32602, got %v", code)
		}
	})

	t.Run("schema rejects wrong enum value", func(t *testing.T) {
		_, errRes := s.callTool(callParams(t, "run_tornado_analysis", `{"property_type": "castle"}`))
		if errRes == nil {
			t.Fatal("Expected a validation error for an out-of-enum property type")
		}
	})

	t.Run("unknown tool", func(t *testing.T) {
		_, errRes := s.callTool(callParams(t, "run_everything", `{}`))
		if errRes == nil {
			t.Fatal("Expected an error for an unknown tool")
		}
		if code := errRes.(map[string]interface{})["code"]; code != -32601 {
			t.Errorf("Expected code -32601, got %v", code)
		}
	})

	t.Run("handler error surfaces as -32000", func(t *testing.T) {
		// Valid per schema, but the handler rejects identical axes.
		_, errRes := s.callTool(callParams(t, "run_matrix_analysis",
			`{"property_type": "multifamily", "x_variable": "vacancy_rate", "y_variable": "vacancy_rate"}`))
		if errRes == nil {
			t.Fatal("Expected a handler error")
		}
		m := errRes.(map[string]interface{})
		if m["code"] != -32000 {
			t.Errorf("Expected code -32000, got %v", m["code"])
		}
		if !strings.Contains(m["message"].(string), "must differ") {
			t.Errorf("Unexpected message: %v", m["message"])
		}
	})

	t.Run("omitted arguments default to an empty object", func(t *testing.T) {
		result, errRes := s.callTool(json.RawMessage(`{"name": "list_property_templates"}`))
		if errRes != nil {
			t.Fatalf("Unexpected error: %v", errRes)
		}
		if result == nil {
			t.Fatal("Expected a result")
		}
	})
}

func TestServer_ListTools(t *testing.T) {
	s := newTestServer(t)

	listed := s.listTools().(map[string]interface{})["tools"].([]interface{})
	if len(listed) != 6 {
		t.Fatalf("Expected 6 tools listed, got %d", len(listed))
	}
	for _, entry := range listed {
		m := entry.(map[string]interface{})
		if m["name"] == "" || m["inputSchema"] == nil {
			t.Errorf("Tool entry incomplete: %v", m)
		}
	}
}

package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/rs/zerolog/log"

	"dealrisk-mcp/internal/service"
)

// JSONRPCRequest represents a standard MCP/JSON-RPC request.
type JSONRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// JSONRPCResponse represents a standard MCP/JSON-RPC response.
type JSONRPCResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// tool couples a registered tool's schema with its handler. The resolved
// schema validates arguments before dispatch.
type tool struct {
	Name        string
	Description string
	Schema      *jsonschema.Schema
	resolved    *jsonschema.Resolved
	handle      func(args json.RawMessage) (interface{}, error)
}

// Server holds the state for the MCP server.
type Server struct {
	svc    *service.Service
	tools  []*tool
	byName map[string]*tool
}

// NewServer creates a new MCP server and registers its tools.
func NewServer(svc *service.Service) (*Server, error) {
	s := &Server{
		svc:    svc,
		byName: make(map[string]*tool),
	}

	for _, t := range s.buildTools() {
		resolved, err := t.Schema.Resolve(nil)
		if err != nil {
			return nil, fmt.Errorf("resolve schema for tool %s: %w", t.Name, err)
		}
		t.resolved = resolved
		s.tools = append(s.tools, t)
		s.byName[t.Name] = t
	}

	return s, nil
}

// Serve starts the JSON-RPC loop over Stdio.
func (s *Server) Serve() error {
	reader := bufio.NewReader(os.Stdin)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		var req JSONRPCRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Error().Err(err).Msg("Failed to unmarshal request")
			continue
		}

		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req JSONRPCRequest) {
	var result interface{}
	var errRes interface{}

	switch req.Method {
	case "initialize":
		result = map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities":    map[string]interface{}{},
			"serverInfo": map[string]interface{}{
				"name":    "dealrisk-mcp",
				"version": "0.1.0",
			},
		}
	case "tools/list":
		result = s.listTools()
	case "tools/call":
		result, errRes = s.callTool(req.Params)
	default:
		errRes = map[string]interface{}{
			"code":    -32601,
			"message": fmt.Sprintf("Method %s not found", req.Method),
		}
	}

	resp := JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  result,
		Error:   errRes,
	}

	out, _ := json.Marshal(resp)
	fmt.Fprintf(os.Stdout, "%s\n", out)
}

func (s *Server) listTools() interface{} {
	list := make([]interface{}, 0, len(s.tools))
	for _, t := range s.tools {
		list = append(list, map[string]interface{}{
			"name":        t.Name,
			"description": t.Description,
			"inputSchema": t.Schema,
		})
	}
	return map[string]interface{}{"tools": list}
}

func (s *Server) callTool(params json.RawMessage) (interface{}, interface{}) {
	var call struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}
	if err := json.Unmarshal(params, &call); err != nil {
		return nil, map[string]interface{}{"code": -32602, "message": "Invalid params"}
	}

	t, ok := s.byName[call.Name]
	if !ok {
		return nil, map[string]interface{}{"code": -32601, "message": "Tool not found"}
	}

	args := call.Arguments
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	var decoded interface{}
	if err := json.Unmarshal(args, &decoded); err != nil {
		return nil, map[string]interface{}{"code": -32602, "message": "Arguments are not valid JSON"}
	}
	if err := t.resolved.Validate(decoded); err != nil {
		return nil, map[string]interface{}{"code": -32602, "message": err.Error()}
	}

	data, err := t.handle(args)
	if err != nil {
		log.Warn().Err(err).Str("tool", call.Name).Msg("Tool call failed")
		return nil, map[string]interface{}{"code": -32000, "message": err.Error()}
	}

	return map[string]interface{}{
		"content": []interface{}{
			map[string]interface{}{
				"type": "text",
				"text": s.formatResult(data),
			},
		},
	}, nil
}

func (s *Server) formatResult(data interface{}) string {
	out, _ := json.MarshalIndent(data, "", "  ")
	return string(out)
}

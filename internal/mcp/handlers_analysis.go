package mcp

import (
	"encoding/json"

	"dealrisk-mcp/internal/service"
)

func (s *Server) handleListTemplates(json.RawMessage) (interface{}, error) {
	return map[string]interface{}{"templates": s.svc.Templates()}, nil
}

func (s *Server) handleTornado(args json.RawMessage) (interface{}, error) {
	var req service.TornadoRequest
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, err
	}
	return s.svc.Tornado(req)
}

func (s *Server) handleMatrix(args json.RawMessage) (interface{}, error) {
	var req service.MatrixRequest
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, err
	}
	return s.svc.Matrix(req)
}

func (s *Server) handleMonteCarlo(args json.RawMessage) (interface{}, error) {
	var req service.MonteCarloRequest
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, err
	}
	return s.svc.MonteCarlo(req)
}

func (s *Server) handleCompareScenarios(args json.RawMessage) (interface{}, error) {
	var req service.ScenariosRequest
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, err
	}
	return s.svc.CompareScenarios(req)
}

func (s *Server) handleBreakEven(args json.RawMessage) (interface{}, error) {
	var req service.BreakEvenRequest
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, err
	}
	return s.svc.BreakEven(req)
}

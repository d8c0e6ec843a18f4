package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/winlist/internal/model"
	"github.com/mj1618/winlist/internal/platform"
)

// windowsResult is the list_windows response.
type windowsResult struct {
	Total   int            `yaml:"total"             json:"total"`
	Skipped int            `yaml:"skipped"           json:"skipped"`
	Windows []model.Window `yaml:"windows,omitempty" json:"windows,omitempty"`
	Apps    []model.App    `yaml:"apps,omitempty"    json:"apps,omitempty"`
}

// descriptionsResult is the list_window_descriptions response.
type descriptionsResult struct {
	Total        int      `yaml:"total"        json:"total"`
	Skipped      int      `yaml:"skipped"      json:"skipped"`
	Descriptions []string `yaml:"descriptions" json:"descriptions"`
}

func marshal(v interface{}, format string) (string, error) {
	switch format {
	case "", "yaml":
		b, err := yaml.Marshal(v)
		return string(b), err
	case "json":
		b, err := json.Marshal(v)
		return string(b), err
	default:
		return "", fmt.Errorf("unsupported format: %s (use yaml or json)", format)
	}
}

// enumerate runs one enumeration under the provider lock.
func (s *Server) enumerate(opts ...platform.Option) (*platform.Report, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()
	return platform.List(append(opts, platform.WithLogger(s.logger))...)
}

func (s *Server) handleListWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	opts := platform.ListOptions{
		Apps:  BoolParam(params, "apps", false),
		PID:   IntParam(params, "pid", 0),
		App:   StringParam(params, "app", ""),
		Layer: OptionalIntParam(params, "layer"),
	}
	if bbox := StringParam(params, "bbox", ""); bbox != "" {
		b, err := platform.ParseBBox(bbox)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		opts.BBox = b
	}
	format := StringParam(params, "format", "yaml")

	report, err := s.enumerate()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := windowsResult{Total: report.Total, Skipped: report.SkippedCount()}
	windows := model.FilterWindows(report.Windows, opts.Filter())
	if opts.Apps {
		result.Apps = model.Apps(windows)
	} else {
		result.Windows = windows
	}

	text, err := marshal(result, format)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleListDescriptions(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, err := s.enumerate(platform.RawDescriptions())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text, err := marshal(descriptionsResult{
		Total:        report.Total,
		Skipped:      report.SkippedCount(),
		Descriptions: report.Descriptions,
	}, "yaml")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

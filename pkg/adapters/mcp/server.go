package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/internal/validator"
	"github.com/aretw0/turing/pkg/definition"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RunsURI is the resource listing stored run ids.
const RunsURI = "turing://runs"

// RunArgs are the arguments of the run_machine tool.
type RunArgs struct {
	Definition string  `json:"definition"`
	Input      *string `json:"input,omitempty"`
	StepLimit  int     `json:"step_limit,omitempty"`
	Trace      bool    `json:"trace,omitempty"`
}

// DefinitionArgs are the arguments of tools taking only a definition.
type DefinitionArgs struct {
	Definition string `json:"definition"`
}

// RunIDArgs are the arguments of get_run.
type RunIDArgs struct {
	ID string `json:"id"`
}

// ValidateResult aligns with the HTTP ValidateResponse.
type ValidateResult struct {
	Valid  bool              `json:"valid" jsonschema_description:"False when any issue is an error"`
	Issues []validator.Issue `json:"issues" jsonschema_description:"Findings sorted by state"`
}

// RunList aligns with the HTTP RunList.
type RunList struct {
	Runs []string `json:"runs" jsonschema_description:"Stored run ids in lexical order"`
}

// Server exposes machine runs as MCP tools.
type Server struct {
	runs      *runner.Executor
	store     ports.ResultStore
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates the MCP server. Runs go through runs and are read back
// from store.
func NewServer(runs *runner.Executor, store ports.ResultStore, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	s := &Server{
		runs:   runs,
		store:  store,
		logger: logger,
		mcpServer: server.NewMCPServer("turing-mcp", strings.TrimSpace(turing.Version),
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
			server.WithRecovery(),
		),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves on Stdin/Stdout until the input closes.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// Handler serves the streamable HTTP transport.
func (s *Server) Handler() http.Handler {
	return server.NewStreamableHTTPServer(s.mcpServer)
}

func (s *Server) registerTools() {
	definitionArg := mcp.WithString("definition",
		mcp.Required(),
		mcp.Description("Machine definition as YAML or JSON"),
	)

	s.mcpServer.AddTool(mcp.NewTool("run_machine",
		mcp.WithDescription("Run a machine definition on an input tape and store the result."),
		definitionArg,
		mcp.WithString("input", mcp.Description("Initial tape; defaults to the definition's input")),
		mcp.WithNumber("step_limit", mcp.Description("Steps allowed; capped by the server limit"), mcp.Min(0)),
		mcp.WithBoolean("trace", mcp.Description("Record the visited states")),
		mcp.WithOutputSchema[domain.RunRecord](),
	), mcp.NewStructuredToolHandler(s.handleRun))

	s.mcpServer.AddTool(mcp.NewTool("validate_machine",
		mcp.WithDescription("Check a definition for dangling references, unreachable states and missing symbols."),
		definitionArg,
		mcp.WithOutputSchema[ValidateResult](),
	), mcp.NewStructuredToolHandler(s.handleValidate))

	s.mcpServer.AddTool(mcp.NewTool("render_graph",
		mcp.WithDescription("Render a definition as a Mermaid flowchart."),
		definitionArg,
	), s.handleGraph)

	s.mcpServer.AddTool(mcp.NewTool("get_run",
		mcp.WithDescription("Fetch a stored run record."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Run id")),
		mcp.WithOutputSchema[domain.RunRecord](),
	), mcp.NewStructuredToolHandler(s.handleGetRun))

	s.mcpServer.AddTool(mcp.NewTool("list_runs",
		mcp.WithDescription("List stored run ids."),
		mcp.WithOutputSchema[RunList](),
	), mcp.NewStructuredToolHandler(s.handleListRuns))
}

func (s *Server) handleRun(ctx context.Context, _ mcp.CallToolRequest, args RunArgs) (domain.RunRecord, error) {
	def, err := parse(args.Definition)
	if err != nil {
		return domain.RunRecord{}, err
	}
	rec, err := s.runs.Run(ctx, runner.Request{
		Definition: def,
		Input:      args.Input,
		StepLimit:  args.StepLimit,
		Trace:      args.Trace,
	})
	if err != nil {
		if errors.Is(err, runner.ErrStore) {
			s.logger.Error("MCP run_machine: save failed", "error", err)
		}
		return domain.RunRecord{}, err
	}
	return *rec, nil
}

func (s *Server) handleValidate(_ context.Context, _ mcp.CallToolRequest, args DefinitionArgs) (ValidateResult, error) {
	def, err := parse(args.Definition)
	if err != nil {
		return ValidateResult{}, err
	}
	report, err := validator.ValidateDefinition(def)
	if err != nil {
		return ValidateResult{}, err
	}
	if report == nil {
		report = validator.Report{}
	}
	return ValidateResult{Valid: report.Err() == nil, Issues: report}, nil
}

func (s *Server) handleGraph(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	def, err := parse(request.GetString("definition", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tables, err := def.Tables()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	accept, reject := def.Terminals()
	return mcp.NewToolResultText(graph.GenerateMermaid(tables, accept, reject, nil)), nil
}

func (s *Server) handleGetRun(ctx context.Context, _ mcp.CallToolRequest, args RunIDArgs) (domain.RunRecord, error) {
	rec, err := s.store.Load(ctx, args.ID)
	if err != nil {
		return domain.RunRecord{}, fmt.Errorf("run %s: %w", args.ID, err)
	}
	return *rec, nil
}

func (s *Server) handleListRuns(ctx context.Context, _ mcp.CallToolRequest, _ map[string]any) (RunList, error) {
	ids, err := s.store.List(ctx)
	if err != nil {
		return RunList{}, err
	}
	return RunList{Runs: ids}, nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(RunsURI, "Stored runs",
		mcp.WithResourceDescription("Ids of the stored run records"),
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		ids, err := s.store.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list runs: %w", err)
		}
		data, err := json.Marshal(RunList{Runs: ids})
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      RunsURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	})
}

func parse(doc string) (*definition.Definition, error) {
	if strings.TrimSpace(doc) == "" {
		return nil, errors.New("definition is required")
	}
	return definition.Parse([]byte(doc))
}

package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/telemetry"
)

const probeToolDescription = "Kubernetes tool: %s"

// probePaths are the conventional listing paths tried under the endpoint, in order.
var probePaths = []string{"/tools", "/list_tools", "/api/tools"}

// probeHTTP tries the conventional tool listing paths and returns the first non-empty set.
func (d Discoverer) probeHTTP(ctx context.Context, session domain.Session) ([]domain.Tool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	base := strings.TrimRight(session.BaseEndpoint, "/")
	var errs []error
	for _, path := range probePaths {
		tools, err := d.probe(spanCtx, session, base+path)
		if err == nil {
			return tools, nil
		}
		errs = append(errs, err)
	}

	err := errors.Join(errs...)
	telemetry.RecordErrorAndStatus(span, err)
	return nil, err
}

func (d Discoverer) probe(ctx context.Context, session domain.Session, url string) ([]domain.Tool, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeouts.Probe)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create probe request: %w", err)
	}
	setAuthorization(req, session)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", url, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("probe %s returned %s", url, resp.Status)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("probe %s: decode body: %w", url, err)
	}

	wire, err := decodeToolListing(raw)
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", url, err)
	}

	tools := toDomainTools(wire, probeToolDescription)
	if len(tools) == 0 {
		return nil, fmt.Errorf("probe %s: %w", url, domain.ErrNoToolsDiscovered)
	}
	return tools, nil
}

// decodeToolListing accepts either {"tools":[...]} or a bare array of tool objects.
// Elements that are not objects are skipped.
func decodeToolListing(raw json.RawMessage) ([]wireTool, error) {
	var items []json.RawMessage
	var envelope struct {
		Tools []json.RawMessage `json:"tools"`
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Tools == nil {
			return nil, errors.New("body is neither a tool list nor a tools envelope")
		}
		items = envelope.Tools
	}

	wire := make([]wireTool, 0, len(items))
	for _, item := range items {
		var w wireTool
		if err := json.Unmarshal(item, &w); err != nil {
			continue
		}
		wire = append(wire, w)
	}
	return wire, nil
}

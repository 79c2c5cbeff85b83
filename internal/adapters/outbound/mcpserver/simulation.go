package mcpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"sigs.k8s.io/yaml"
)

const SIMULATED_PREFIX = "[simulated] "

type simulatedTool func(args simulationArgs) (string, error)

// simulatedTools is the offline lookup table keyed by tool name.
var simulatedTools = map[string]simulatedTool{
	"configuration_view": func(simulationArgs) (string, error) {
		return "Current kubeconfig:\n- cluster: simulated-cluster (https://api.simulated.local:6443)\n- context: simulated-context\n- namespace: default", nil
	},
	"namespaces_list": func(simulationArgs) (string, error) {
		return "Namespaces:\n- default (Active)\n- kube-system (Active)\n- openshift-monitoring (Active)", nil
	},
	"events_list": func(a simulationArgs) (string, error) {
		return fmt.Sprintf("Events in namespace '%s':\n- Normal Scheduled pod/chatbot-deployment-abc123\n- Normal Pulled pod/mcp-server-xyz789\n- Warning BackOff pod/nginx-ingress-controller-def456", a.namespace()), nil
	},
	"pods_list": func(simulationArgs) (string, error) {
		return "Pods in all namespaces:\n- default/chatbot-deployment-abc123 (Running)\n- default/mcp-server-xyz789 (Running)\n- kube-system/nginx-ingress-controller-def456 (Running)", nil
	},
	"pods_list_in_namespace": func(a simulationArgs) (string, error) {
		return fmt.Sprintf("Pods in namespace '%s':\n- chatbot-deployment-abc123 (Running)\n- mcp-server-xyz789 (Running)\n- nginx-ingress-controller-def456 (Running)", a.namespace()), nil
	},
	"pods_get": func(a simulationArgs) (string, error) {
		return fmt.Sprintf("Pod '%s' in namespace '%s':\n- status: Running\n- node: worker-0\n- restarts: 0", a.str("name", "unknown"), a.namespace()), nil
	},
	"pods_log": func(a simulationArgs) (string, error) {
		return fmt.Sprintf("Last %s lines of logs from pod '%s' in namespace '%s':\n2025-10-03 11:25:01 INFO Starting application...\n2025-10-03 11:25:02 INFO Server listening on port 8080\n2025-10-03 11:25:03 INFO Health check endpoint ready",
			a.str("lines", "100"), a.str("name", "unknown"), a.namespace()), nil
	},
	"pods_run": func(a simulationArgs) (string, error) {
		return fmt.Sprintf("Pod '%s' created in namespace '%s' with image '%s'", a.str("name", "unknown"), a.namespace(), a.str("image", "unknown")), nil
	},
	"pods_exec": func(a simulationArgs) (string, error) {
		return fmt.Sprintf("Executed '%s' in pod '%s' (namespace '%s'): exit code 0", a.str("command", ""), a.str("name", "unknown"), a.namespace()), nil
	},
	"pods_delete": func(a simulationArgs) (string, error) {
		return fmt.Sprintf("Pod '%s' deleted from namespace '%s'", a.str("name", "unknown"), a.namespace()), nil
	},
	"resources_list": func(a simulationArgs) (string, error) {
		kind := a.str("kind", "Resource")
		return fmt.Sprintf("%s resources (%s) in namespace '%s':\n- %s-1\n- %s-2", kind, a.str("apiVersion", "v1"), a.namespace(), strings.ToLower(kind), strings.ToLower(kind)), nil
	},
	"resources_get": func(a simulationArgs) (string, error) {
		return fmt.Sprintf("%s '%s' (%s) in namespace '%s' exists", a.str("kind", "Resource"), a.str("name", "unknown"), a.str("apiVersion", "v1"), a.namespace()), nil
	},
	"resources_delete": func(a simulationArgs) (string, error) {
		return fmt.Sprintf("%s '%s' deleted from namespace '%s'", a.str("kind", "Resource"), a.str("name", "unknown"), a.namespace()), nil
	},
	"resources_create_or_update": simulateCreateOrUpdate,
}

// Simulate produces a deterministic, clearly labeled result without contacting any server.
func Simulate(name string, arguments map[string]any) domain.ToolResult {
	result := domain.ToolResult{ToolName: name, Arguments: arguments, Simulated: true}

	sim, ok := simulatedTools[name]
	if !ok {
		args, _ := json.Marshal(arguments)
		result.Content = fmt.Sprintf("%sMock result for Kubernetes tool '%s' with args: %s", SIMULATED_PREFIX, name, args)
		return result
	}

	content, err := sim(simulationArgs(arguments))
	if err != nil {
		result.Content = SIMULATED_PREFIX + "Error: " + err.Error()
		result.IsError = true
		return result
	}
	result.Content = SIMULATED_PREFIX + content
	return result
}

func simulateCreateOrUpdate(a simulationArgs) (string, error) {
	definition := a.str("yaml", "")
	if strings.TrimSpace(definition) == "" {
		return "", errors.New("invalid resource definition: yaml argument is required")
	}

	obj := map[string]any{}
	if err := yaml.Unmarshal([]byte(definition), &obj); err != nil {
		return "", fmt.Errorf("invalid resource definition: %w", err)
	}
	resource := &unstructured.Unstructured{Object: obj}
	if resource.GetKind() == "" || resource.GetName() == "" {
		return "", errors.New("invalid resource definition: kind and metadata.name are required")
	}

	namespace := resource.GetNamespace()
	if namespace == "" {
		namespace = a.namespace()
	}
	return fmt.Sprintf("%s '%s' (%s) configured in namespace '%s'", resource.GetKind(), resource.GetName(), resource.GetAPIVersion(), namespace), nil
}

type simulationArgs map[string]any

func (a simulationArgs) namespace() string {
	return a.str("namespace", domain.DEFAULT_NAMESPACE)
}

func (a simulationArgs) str(key, def string) string {
	v, ok := a[key]
	if !ok || v == nil {
		return def
	}
	s := fmt.Sprint(v)
	if s == "" {
		return def
	}
	return s
}

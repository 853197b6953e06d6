package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/neuron-cli/neuron/internal/domain"
	"github.com/neuron-cli/neuron/internal/infrastructure/ai"
)

type cliResult struct {
	stdout string
	stderr string
	err    error
}

// isolate points configuration at a temp dir and clears credential variables.
func isolate(t *testing.T, apiKey string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(domain.EnvConfig, path)
	t.Setenv(domain.EnvAPIKey, apiKey)
	t.Setenv(domain.EnvModel, "")
	return path
}

func completionServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":"nope"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, endpoint, stdin string, args ...string) cliResult {
	t.Helper()
	var opts Options
	if endpoint != "" {
		opts.InferenceOptions = []ai.Option{ai.WithEndpoint(endpoint)}
	}
	root, err := NewRootCmd(context.Background(), opts)
	if err != nil {
		t.Fatalf("NewRootCmd error: %v", err)
	}
	var stdout, stderr bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func exitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if err != nil {
		return -1
	}
	return 0
}

func TestJoinPrompt(t *testing.T) {
	tests := []struct {
		args    []string
		want    string
		wantYes bool
	}{
		{[]string{"find", "large", "files"}, "find large files", false},
		{[]string{"install", "docker", "--yes"}, "install docker", true},
		{[]string{"-y", "show", "disk usage"}, "show disk usage", true},
		{[]string{"--yes"}, "", true},
		{[]string{"what", "does", "ls", "-la", "do"}, "what does ls -la do", false},
	}
	for _, tt := range tests {
		got, yes := joinPrompt(tt.args)
		if got != tt.want || yes != tt.wantYes {
			t.Errorf("joinPrompt(%q) = (%q, %v), want (%q, %v)", tt.args, got, yes, tt.want, tt.wantYes)
		}
	}
}

func TestTellWordsMayStartWithDash(t *testing.T) {
	isolate(t, "sk-test")
	srv := completionServer(t, http.StatusOK, "It lists all files in long format.")

	res := execute(t, srv.URL, "", "tell", "what", "does", "ls", "-la", "do")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if !strings.Contains(res.stdout, "It lists all files in long format.") {
		t.Errorf("answer missing from output:\n%s", res.stdout)
	}
}

func TestRunKeepsDashWordsAndHonorsYes(t *testing.T) {
	isolate(t, "sk-test")
	srv := completionServer(t, http.StatusOK, "true")

	res := execute(t, srv.URL, "", "run", "list", "files", "-la", "--yes")
	if code := exitCode(res.err); code != 0 {
		t.Fatalf("exit code = %d (%v), want 0", code, res.err)
	}
	if strings.Contains(res.stdout, "Execute this command?") {
		t.Errorf("--yes should skip confirmation for a safe command:\n%s", res.stdout)
	}
	if !strings.Contains(res.stdout, "completed successfully") {
		t.Errorf("command not executed:\n%s", res.stdout)
	}
}

func TestRunWithOnlyYesShowsHelp(t *testing.T) {
	isolate(t, "sk-test")

	res := execute(t, "", "", "run", "-y")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if !strings.Contains(res.stdout, "Generate a shell command") {
		t.Errorf("help not shown:\n%s", res.stdout)
	}
}

func TestTellPrintsAnswer(t *testing.T) {
	isolate(t, "sk-test")
	srv := completionServer(t, http.StatusOK, "Docker packages applications into containers.")

	res := execute(t, srv.URL, "", "tell", "what", "is", "docker")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if !strings.Contains(res.stdout, "Docker packages applications into containers.") {
		t.Errorf("answer missing from output:\n%s", res.stdout)
	}
}

func TestRunDeclineExitsZero(t *testing.T) {
	isolate(t, "sk-test")
	srv := completionServer(t, http.StatusOK, "ls -la")

	res := execute(t, srv.URL, "n\n", "run", "list", "files")
	if code := exitCode(res.err); code != 0 {
		t.Fatalf("exit code = %d (%v), want 0", code, res.err)
	}
	for _, want := range []string{"ls -la", "Execute this command?", "cancelled"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("output missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestLegacyFlagsDangerousStillPrompts(t *testing.T) {
	isolate(t, "sk-test")
	srv := completionServer(t, http.StatusOK, "sudo dd if=/dev/zero of=/dev/disk0")

	res := execute(t, srv.URL, "n\n", "--mode", "run", "--prompt", "wipe disk", "--yes")
	if code := exitCode(res.err); code != 0 {
		t.Fatalf("exit code = %d (%v), want 0", code, res.err)
	}
	if !strings.Contains(res.stdout, "WARNING:") || !strings.Contains(res.stdout, "Execute this command?") {
		t.Errorf("expected warning and prompt:\n%s", res.stdout)
	}
}

func TestRunInferenceFailureExitsOne(t *testing.T) {
	isolate(t, "sk-test")
	srv := completionServer(t, http.StatusUnauthorized, "")

	res := execute(t, srv.URL, "", "run", "list", "files")
	if code := exitCode(res.err); code != 1 {
		t.Fatalf("exit code = %d (%v), want 1", code, res.err)
	}
	if !strings.Contains(res.stdout, "Failed to get response") {
		t.Errorf("failure not rendered:\n%s", res.stdout)
	}
}

func TestRunWithoutAPIKey(t *testing.T) {
	isolate(t, "")

	res := execute(t, "http://127.0.0.1:1", "", "run", "list", "files")
	if !errors.Is(res.err, domain.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", res.err)
	}
}

func TestInvalidModeExitsOne(t *testing.T) {
	isolate(t, "sk-test")

	res := execute(t, "", "", "--mode", "bogus", "--prompt", "anything")
	if code := exitCode(res.err); code != 1 {
		t.Fatalf("exit code = %d (%v), want 1", code, res.err)
	}
	if !strings.Contains(res.stderr, "Invalid mode: bogus") {
		t.Errorf("stderr = %q", res.stderr)
	}
}

func TestRootWithoutModeShowsHelp(t *testing.T) {
	isolate(t, "sk-test")

	res := execute(t, "", "", "--prompt", "anything")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if !strings.Contains(res.stdout, "Neuron AI") || !strings.Contains(res.stdout, "neuron tell") {
		t.Errorf("help not shown:\n%s", res.stdout)
	}
}

func TestConfigSetKeyShowMasks(t *testing.T) {
	path := isolate(t, "")

	res := execute(t, "", "", "config", "set-key", "sk-secret-9876")
	if res.err != nil {
		t.Fatalf("set-key error: %v", res.err)
	}
	if !strings.Contains(res.stdout, path) {
		t.Errorf("set-key output should name the file:\n%s", res.stdout)
	}

	res = execute(t, "", "", "config", "show")
	if res.err != nil {
		t.Fatalf("show error: %v", res.err)
	}
	if strings.Contains(res.stdout, "9876") {
		t.Fatalf("config show leaked the key:\n%s", res.stdout)
	}
	if !strings.Contains(res.stdout, "api_key:") || !strings.Contains(res.stdout, "****") {
		t.Errorf("masked key missing:\n%s", res.stdout)
	}
}

func TestModelsMarksActive(t *testing.T) {
	isolate(t, "")

	if res := execute(t, "", "", "config", "set-model", "openai/gpt-4.1"); res.err != nil {
		t.Fatalf("set-model error: %v", res.err)
	}
	res := execute(t, "", "", "models")
	if res.err != nil {
		t.Fatalf("models error: %v", res.err)
	}
	if !strings.Contains(res.stdout, "* openai/gpt-4.1") {
		t.Errorf("active model not marked:\n%s", res.stdout)
	}
}

func TestVersionCommand(t *testing.T) {
	res := execute(t, "", "", "version")
	if res.err != nil {
		t.Fatalf("version error: %v", res.err)
	}
	if !strings.HasPrefix(res.stdout, "Neuron version ") {
		t.Errorf("unexpected version output:\n%s", res.stdout)
	}
}

package behavior

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tacogips/depot/internal/shell"
	"github.com/tacogips/depot/internal/shell/shelltest"
	"github.com/tacogips/depot/internal/store"
)

func TestExecute(t *testing.T) {
	s := store.New(false)
	s.Set(store.KeyLocalPath, "/depot/github.com/a/b")

	tests := []struct {
		name     string
		behavior Behavior
		results  map[string]shelltest.Result
		wantCode int
		wantOut  string
		wantRun  []string
	}{
		{
			name:     "zero value is not supported",
			behavior: Behavior{},
			wantCode: NotSupportedCode,
			wantOut:  "not supported\n",
			wantRun:  []string{},
		},
		{
			name:     "template prints expansion",
			behavior: NewTemplate("cd ${DEPOT_LOCAL_PATH}"),
			wantCode: 0,
			wantOut:  "cd /depot/github.com/a/b\n",
			wantRun:  []string{},
		},
		{
			name:     "nop",
			behavior: NewNop(),
			wantCode: 0,
			wantRun:  []string{},
		},
		{
			name:     "chain runs all commands",
			behavior: NewShellChain("mkdir -p x", "git init"),
			wantCode: 0,
			wantRun:  []string{"mkdir -p x", "git init"},
		},
		{
			name:     "chain stops at first failure",
			behavior: NewShellChain("a", "b", "c"),
			results:  map[string]shelltest.Result{"b": {Code: 7}},
			wantCode: 7,
			wantRun:  []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := shelltest.New(tt.results)
			var out bytes.Buffer

			code, err := Execute(context.Background(), tt.behavior, shell.NewExecutor(nil, fake), s, &out)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantOut, out.String())
			assert.Equal(t, tt.wantRun, fake.Commands())
		})
	}
}

func TestExecuteExportsStore(t *testing.T) {
	s := store.New(false)
	s.Set(store.KeyRemoteURL, "https://github.com/a/b")
	fake := shelltest.New(nil)

	_, err := Execute(context.Background(), NewShellChain("git clone"), shell.NewExecutor(nil, fake), s, &bytes.Buffer{})
	require.NoError(t, err)
	require.Len(t, fake.Calls, 1)
	assert.Contains(t, fake.Calls[0].Env, "DEPOT_REMOTE_URL=https://github.com/a/b")
}

func TestExecuteStartFailure(t *testing.T) {
	fake := shelltest.New(map[string]shelltest.Result{"x": {Err: errors.New("no such file")}})

	code, err := Execute(context.Background(), NewShellChain("x", "y"), shell.NewExecutor(nil, fake), store.New(false), &bytes.Buffer{})
	assert.Error(t, err)
	assert.Equal(t, 1, code)
	assert.Equal(t, []string{"x"}, fake.Commands())
}

func TestChain(t *testing.T) {
	t.Run("pre failure skips main", func(t *testing.T) {
		fake := shelltest.New(map[string]shelltest.Result{"exit 3": {Code: 3}})
		code, err := Chain(context.Background(), NewShellChain("exit 3"), NewShellChain("mv a b"),
			shell.NewExecutor(nil, fake), store.New(false), &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, 3, code)
		assert.Equal(t, []string{"exit 3"}, fake.Commands())
	})

	t.Run("nop pre runs main", func(t *testing.T) {
		fake := shelltest.New(map[string]shelltest.Result{"mv a b": {Code: 2}})
		code, err := Chain(context.Background(), NewNop(), NewShellChain("mv a b"),
			shell.NewExecutor(nil, fake), store.New(false), &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, 2, code)
	})

	t.Run("unsupported pre", func(t *testing.T) {
		fake := shelltest.New(nil)
		var out bytes.Buffer
		code, err := Chain(context.Background(), Behavior{}, NewShellChain("mv a b"),
			shell.NewExecutor(nil, fake), store.New(false), &out)
		require.NoError(t, err)
		assert.Equal(t, NotSupportedCode, code)
		assert.Equal(t, "not supported\n", out.String())
		assert.Empty(t, fake.Calls)
	})
}

func TestChainRealShell(t *testing.T) {
	s := store.New(false)
	var out bytes.Buffer
	runner := &shell.ExecRunner{Stdout: &out}

	code, err := Execute(context.Background(),
		NewShellChain(`echo first`, `exit 4`, `echo never`),
		shell.NewExecutor(nil, runner), s, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 4, code)
	assert.Equal(t, "first\n", out.String())
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		want    Behavior
		wantErr string
	}{
		{name: "bare string", json: `"git clone ${DEPOT_REMOTE_URL}"`, want: NewShellChain("git clone ${DEPOT_REMOTE_URL}")},
		{name: "template", json: `["template", "${DEPOT_LOCAL_PATH}"]`, want: NewTemplate("${DEPOT_LOCAL_PATH}")},
		{name: "shell", json: `["shell", "a", "b"]`, want: NewShellChain("a", "b")},
		{name: "nop", json: `["nop"]`, want: NewNop()},
		{name: "not supported", json: `["not-supported"]`, want: Behavior{}},
		{name: "nop with args", json: `["nop", "x"]`, wantErr: "takes no arguments"},
		{name: "unknown", json: `["exec", "x"]`, wantErr: `unknown behavior type "exec"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Behavior
			err := json.Unmarshal([]byte(tt.json), &b)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, b)

			var y Behavior
			require.NoError(t, yaml.Unmarshal([]byte(tt.json), &y))
			assert.Equal(t, tt.want, y)
		})
	}
}

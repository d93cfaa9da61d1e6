// Package external adapts out-of-process theme plugins, speaking either the
// go-plugin RPC protocol or JSON over stdin/stdout, to the plugin manager.
package external

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	goplugin "github.com/hashicorp/go-plugin"

	"github.com/jmylchreest/themestudio/internal/plugin/protocol"
	"github.com/jmylchreest/themestudio/internal/theme"
	"github.com/jmylchreest/themestudio/pkg/plugin"
)

// Timeouts applied when the caller does not set one.
const (
	DefaultInfoTimeout  = 5 * time.Second
	DefaultApplyTimeout = 10 * time.Second
)

// transformer is the part of the RPC client Apply needs.
type transformer interface {
	Transform(ctx context.Context, req plugin.ThemeRequest) (plugin.ThemeResponse, error)
}

// Plugin is an external executable acting as a theme plugin.
type Plugin struct {
	path     string
	info     plugin.PluginInfo
	kind     plugin.PluginType
	name     string
	priority *int
	timeout  time.Duration
	runner   ProcessRunner
	logger   hclog.Logger

	mu     sync.Mutex
	client *goplugin.Client
	rpc    transformer
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithRunner replaces the process runner used for --plugin-info and
// json-stdio calls.
func WithRunner(r ProcessRunner) Option {
	return func(p *Plugin) { p.runner = r }
}

// WithLogger sets the logger. go-plugin client output goes to it too.
func WithLogger(l hclog.Logger) Option {
	return func(p *Plugin) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithName registers the plugin under name instead of the name it reports.
func WithName(name string) Option {
	return func(p *Plugin) { p.name = name }
}

// WithPriority overrides the priority the plugin reports.
func WithPriority(priority int) Option {
	return func(p *Plugin) { p.priority = &priority }
}

// WithTimeout bounds each Apply call.
func WithTimeout(d time.Duration) Option {
	return func(p *Plugin) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// Load queries the executable at path for its metadata and checks protocol
// compatibility. No long-lived process is started until the first Apply.
func Load(ctx context.Context, path string, opts ...Option) (*Plugin, error) {
	p := &Plugin{
		path:    path,
		timeout: DefaultApplyTimeout,
		runner:  ExecRunner{},
		logger:  hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}

	infoCtx, cancel := context.WithTimeout(ctx, DefaultInfoTimeout)
	defer cancel()

	stdout, stderr, err := p.runner.Run(infoCtx, path, []string{plugin.InfoFlag}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query plugin %s: %w%s", path, err, stderrSuffix(stderr))
	}

	result, err := protocol.Detect(stdout)
	if err != nil {
		return nil, fmt.Errorf("failed to detect plugin protocol: %w", err)
	}

	p.info = result.PluginInfo
	p.kind = result.Type
	if p.name == "" {
		p.name = p.info.Name
	}
	p.logger = p.logger.Named(p.name)
	p.logger.Debug("loaded external plugin", "path", path, "protocol", p.kind, "version", p.info.Version)

	return p, nil
}

// Name implements manager.ThemePlugin.
func (p *Plugin) Name() string { return p.name }

// Version implements manager.ThemePlugin.
func (p *Plugin) Version() string { return p.info.Version }

// Priority implements manager.ThemePlugin.
func (p *Plugin) Priority() int {
	if p.priority != nil {
		return *p.priority
	}
	return p.info.Priority
}

// Dependencies implements manager.ThemePlugin.
func (p *Plugin) Dependencies() []string { return p.info.Dependencies }

// Info returns the metadata the plugin reported.
func (p *Plugin) Info() plugin.PluginInfo { return p.info }

// Protocol returns the transport the plugin speaks.
func (p *Plugin) Protocol() plugin.PluginType { return p.kind }

// Path returns the executable path.
func (p *Plugin) Path() string { return p.path }

// Apply sends opts and options to the plugin and decodes the options it
// returns. Any failure returns opts unchanged with the error.
func (p *Plugin) Apply(opts theme.Options, options any) (theme.Options, error) {
	req, err := newRequest(opts, options)
	if err != nil {
		return opts, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	var resp plugin.ThemeResponse
	switch p.kind {
	case plugin.PluginTypeGoPlugin:
		resp, err = p.applyRPC(ctx, req)
	case plugin.PluginTypeJSON:
		resp, err = p.applyStdio(ctx, req)
	default:
		err = fmt.Errorf("unsupported protocol type: %s", p.kind)
	}
	if err != nil {
		return opts, fmt.Errorf("plugin %s: %w", p.name, err)
	}

	out, err := decodeResponse(resp)
	if err != nil {
		return opts, fmt.Errorf("plugin %s: %w", p.name, err)
	}
	return out, nil
}

// Close stops the plugin process if one is running.
func (p *Plugin) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client != nil {
		p.client.Kill()
		p.client = nil
	}
	p.rpc = nil
}

func (p *Plugin) applyRPC(ctx context.Context, req plugin.ThemeRequest) (plugin.ThemeResponse, error) {
	client, err := p.rpcClient()
	if err != nil {
		return plugin.ThemeResponse{}, err
	}

	type result struct {
		resp plugin.ThemeResponse
		err  error
	}
	done := make(chan result, 1)
	go func() {
		resp, err := client.Transform(ctx, req)
		done <- result{resp, err}
	}()

	select {
	case r := <-done:
		return r.resp, r.err
	case <-ctx.Done():
		// net/rpc calls cannot be cancelled; drop the process so the next
		// Apply starts clean.
		p.Close()
		return plugin.ThemeResponse{}, ctx.Err()
	}
}

func (p *Plugin) rpcClient() (transformer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.rpc != nil {
		return p.rpc, nil
	}

	p.client = goplugin.NewClient(&goplugin.ClientConfig{
		HandshakeConfig: plugin.Handshake,
		Plugins: map[string]goplugin.Plugin{
			plugin.PluginName: &plugin.ThemePluginRPC{},
		},
		Cmd:              exec.Command(p.path),
		AllowedProtocols: []goplugin.Protocol{goplugin.ProtocolNetRPC},
		Logger:           p.logger,
	})

	rpcClient, err := p.client.Client()
	if err != nil {
		p.client.Kill()
		p.client = nil
		return nil, fmt.Errorf("failed to get RPC client: %w", err)
	}

	raw, err := rpcClient.Dispense(plugin.PluginName)
	if err != nil {
		p.client.Kill()
		p.client = nil
		return nil, fmt.Errorf("failed to dispense plugin: %w", err)
	}

	client, ok := raw.(*plugin.ThemePluginRPCClient)
	if !ok {
		p.client.Kill()
		p.client = nil
		return nil, fmt.Errorf("unexpected plugin client type %T", raw)
	}
	p.rpc = client
	return client, nil
}

func (p *Plugin) applyStdio(ctx context.Context, req plugin.ThemeRequest) (plugin.ThemeResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return plugin.ThemeResponse{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	stdout, stderr, err := p.runner.Run(ctx, p.path, nil, bytes.NewReader(payload))
	if err != nil {
		return plugin.ThemeResponse{}, fmt.Errorf("plugin execution failed: %w%s", err, stderrSuffix(stderr))
	}
	if len(stderr) > 0 {
		p.logger.Debug("plugin stderr", "output", strings.TrimSpace(string(stderr)))
	}

	var resp plugin.ThemeResponse
	if err := json.Unmarshal(stdout, &resp); err != nil {
		return plugin.ThemeResponse{}, fmt.Errorf("failed to parse plugin output: %w", err)
	}
	return resp, nil
}

func newRequest(opts theme.Options, options any) (plugin.ThemeRequest, error) {
	data, err := json.Marshal(opts)
	if err != nil {
		return plugin.ThemeRequest{}, fmt.Errorf("failed to marshal theme options: %w", err)
	}
	req := plugin.ThemeRequest{Options: data}
	if options != nil {
		pluginOpts, err := json.Marshal(options)
		if err != nil {
			return plugin.ThemeRequest{}, fmt.Errorf("failed to marshal plugin options: %w", err)
		}
		req.PluginOptions = pluginOpts
	}
	return req, nil
}

func decodeResponse(resp plugin.ThemeResponse) (theme.Options, error) {
	if len(bytes.TrimSpace(resp.Options)) == 0 {
		return theme.Options{}, errors.New("plugin returned no options")
	}
	var out theme.Options
	if err := json.Unmarshal(resp.Options, &out); err != nil {
		return theme.Options{}, fmt.Errorf("failed to decode returned options: %w", err)
	}
	return out, nil
}

func stderrSuffix(stderr []byte) string {
	msg := strings.TrimSpace(string(stderr))
	if msg == "" {
		return ""
	}
	return "\nStderr: " + msg
}

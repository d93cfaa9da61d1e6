package plugin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-plugin"
)

// Serve runs impl as a go-plugin theme plugin. When the process was started
// with --plugin-info it prints the metadata instead and returns.
func Serve(impl ThemePlugin) {
	if len(os.Args) > 1 && os.Args[1] == InfoFlag {
		if err := WriteInfo(os.Stdout, impl, PluginTypeGoPlugin); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding plugin info: %v\n", err)
			os.Exit(1)
		}
		return
	}

	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins: map[string]plugin.Plugin{
			PluginName: &ThemePluginRPC{Impl: impl},
		},
	})
}

// ServeStdio runs impl with the json-stdio protocol: one request on stdin,
// one response on stdout.
func ServeStdio(impl ThemePlugin) {
	var err error
	if len(os.Args) > 1 && os.Args[1] == InfoFlag {
		err = WriteInfo(os.Stdout, impl, PluginTypeJSON)
	} else {
		err = HandleStdio(context.Background(), impl, os.Stdin, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Plugin error: %v\n", err)
		os.Exit(1)
	}
}

// WriteInfo writes impl's metadata as indented JSON. The protocol fields are
// filled in when the plugin leaves them empty.
func WriteInfo(w io.Writer, impl ThemePlugin, protocol PluginType) error {
	info := impl.GetMetadata()
	if info.ProtocolVersion == "" {
		info.ProtocolVersion = ProtocolVersion
	}
	if info.PluginProtocol == "" {
		info.PluginProtocol = string(protocol)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(info)
}

// HandleStdio decodes one ThemeRequest from r, transforms it and encodes the
// ThemeResponse to w.
func HandleStdio(ctx context.Context, impl ThemePlugin, r io.Reader, w io.Writer) error {
	var req ThemeRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return fmt.Errorf("decoding request: %w", err)
	}

	resp, err := impl.Transform(ctx, req)
	if err != nil {
		return err
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	return nil
}

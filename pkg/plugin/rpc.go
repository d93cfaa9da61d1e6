package plugin

import (
	"context"
	"net/rpc"

	"github.com/hashicorp/go-plugin"
)

// ThemePluginRPC implements the go-plugin Plugin interface for theme plugins.
type ThemePluginRPC struct {
	plugin.Plugin
	Impl ThemePlugin
}

// Server returns an RPC server for this plugin.
func (p *ThemePluginRPC) Server(*plugin.MuxBroker) (any, error) {
	return &ThemePluginRPCServer{Impl: p.Impl}, nil
}

// Client returns an RPC client for this plugin.
func (p *ThemePluginRPC) Client(_ *plugin.MuxBroker, c *rpc.Client) (any, error) {
	return &ThemePluginRPCClient{client: c}, nil
}

// ThemePluginRPCServer is the RPC server implementation for theme plugins.
type ThemePluginRPCServer struct {
	Impl ThemePlugin
}

// Transform implements the RPC method for theme transformation. Plugin
// errors travel in the response so the host can tell them from transport
// failures.
func (s *ThemePluginRPCServer) Transform(req ThemeRequest, resp *TransformReply) error {
	out, err := s.Impl.Transform(context.Background(), req)
	if err != nil {
		resp.Error = err.Error()
		return nil
	}
	resp.Response = out
	return nil
}

// GetMetadata implements the RPC method for fetching plugin metadata.
func (s *ThemePluginRPCServer) GetMetadata(_ any, resp *PluginInfo) error {
	*resp = s.Impl.GetMetadata()
	return nil
}

// TransformReply is the wire form of a Transform result. net/rpc requires
// it to be exported.
type TransformReply struct {
	Response ThemeResponse
	Error    string
}

// ThemePluginRPCClient is the RPC client implementation for theme plugins.
type ThemePluginRPCClient struct {
	client *rpc.Client
}

// Transform calls the remote Transform method.
func (c *ThemePluginRPCClient) Transform(_ context.Context, req ThemeRequest) (ThemeResponse, error) {
	var reply TransformReply
	if err := c.client.Call("Plugin.Transform", req, &reply); err != nil {
		return ThemeResponse{}, err
	}
	if reply.Error != "" {
		return ThemeResponse{}, &RPCError{Message: reply.Error}
	}
	return reply.Response, nil
}

// GetMetadata calls the remote GetMetadata method.
func (c *ThemePluginRPCClient) GetMetadata() (PluginInfo, error) {
	var info PluginInfo
	err := c.client.Call("Plugin.GetMetadata", new(any), &info)
	return info, err
}

// RPCError represents an error returned from an RPC call.
type RPCError struct {
	Message string
}

// Error implements the error interface.
func (e *RPCError) Error() string {
	return e.Message
}

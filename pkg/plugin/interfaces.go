package plugin

import "context"

// ThemePlugin is the interface external theme plugins implement.
type ThemePlugin interface {
	// Transform returns the transformed theme options.
	Transform(ctx context.Context, req ThemeRequest) (ThemeResponse, error)

	// GetMetadata returns plugin metadata.
	GetMetadata() PluginInfo
}

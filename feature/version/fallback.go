package version

import (
	"fmt"

	"h3sed/core/registry"

	"go.uber.org/zap"
)

// Select returns the detected version, or the configured fallback when detection
// found no match. The fallback must be a loaded version.
func Select(reg *registry.Registry, cfg Config, detected registry.Version, ok bool, logger *zap.Logger) (registry.Version, error) {
	if ok {
		return detected, nil
	}
	if cfg.FallbackVersion == "" {
		return registry.Version{}, fmt.Errorf("no version matched and no fallback configured")
	}
	v, found := reg.Version(cfg.FallbackVersion)
	if !found {
		return registry.Version{}, fmt.Errorf("fallback version %q is not loaded", cfg.FallbackVersion)
	}
	logger.Warn("Using fallback version", zap.String("version", v.Name))
	return v, nil
}

package datauri

import (
	"sync"

	"github.com/adamwojs/data-uri/pkg/config"
	"github.com/adamwojs/data-uri/pkg/fetch"
	"github.com/adamwojs/data-uri/pkg/logger"
	"github.com/adamwojs/data-uri/pkg/sniff"
)

var (
	defaultOnce    sync.Once
	defaultBuilder *Builder
)

// Default returns the process-wide builder, wired from the environment on
// first use: sniff-based detection and a resty transport, unless
// DATAURI_OFFLINE disables the latter.
func Default() *Builder {
	defaultOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			logger.WarnCF("datauri", "invalid environment, using built-in defaults", map[string]interface{}{
				"error": err.Error(),
			})
			cfg = config.Default()
		}
		opts := []BuilderOption{WithSniffer(sniff.New())}
		if !cfg.Offline {
			opts = append(opts, WithFetcher(fetch.NewClient(cfg)))
		}
		defaultBuilder = NewBuilder(opts...)
	})
	return defaultBuilder
}

// FromFile builds a Data value from a local file using the default
// builder.
func FromFile(path string, strict bool, mode LengthMode) (*Data, error) {
	return Default().FromFile(path, strict, mode)
}

// FromURL builds a Data value from a remote resource using the default
// builder.
func FromURL(url string, strict bool, mode LengthMode) (*Data, error) {
	return Default().FromURL(url, strict, mode)
}

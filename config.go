package docsync

import "github.com/goliatone/go-docsync/internal/runtimeconfig"

var (
	ErrSourceDirRequired       = runtimeconfig.ErrSourceDirRequired
	ErrDestinationDirRequired  = runtimeconfig.ErrDestinationDirRequired
	ErrPatternInvalid          = runtimeconfig.ErrPatternInvalid
	ErrCatalogFileUnsupported  = runtimeconfig.ErrCatalogFileUnsupported
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config        = runtimeconfig.Config
	ParserConfig  = runtimeconfig.ParserConfig
	LoggingConfig = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

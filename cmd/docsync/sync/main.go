package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-docsync/cmd/docsync/internal/bootstrap"
	docscmd "github.com/goliatone/go-docsync/internal/commands/docs"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runSync(os.Args[1:]); err != nil {
		log.Fatalf("docsync sync: %v", err)
	}
}

func runSync(args []string) error {
	fs := flag.NewFlagSet("docsync-sync", flag.ExitOnError)
	sourceDir := fs.String("source-dir", "docs/patterns", "Path to the markdown source root")
	destDir := fs.String("dest-dir", "content/patterns", "Path the composed documents are written to")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
	baseURL := fs.String("base-url", "", "Base URL prepended to generated page links")
	catalogFile := fs.String("catalog", "", "Optional JSON/YAML catalog overriding the builtin metadata table")
	logLevel := fs.String("log-level", "info", "Log level (trace, debug, info, warn, error, fatal)")
	logFormat := fs.String("log-format", "", "Log format (json, console, pretty)")
	dryRun := fs.Bool("dry-run", false, "Compose pages without writing to the destination")

	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := bootstrap.Options{
		SourceDir:      *sourceDir,
		DestinationDir: *destDir,
		Pattern:        *pattern,
		BaseURL:        *baseURL,
		CatalogFile:    *catalogFile,
		LogLevel:       *logLevel,
		LogFormat:      *logFormat,
	}

	module, err := moduleBuilder(opts)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Service == nil {
		return fmt.Errorf("sync service not configured")
	}

	handler := docscmd.NewSyncDirectoryHandler(module.Service, module.Logger)
	cmd := docscmd.SyncDirectoryCommand{
		DryRun: *dryRun,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute sync command: %w", err)
	}
	fmt.Fprintln(os.Stdout, "docsync sync command executed successfully")

	return nil
}

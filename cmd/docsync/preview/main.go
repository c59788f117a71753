package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-docsync/cmd/docsync/internal/bootstrap"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	var (
		sourceDir   = flag.String("source-dir", "docs/patterns", "Path to the markdown source root")
		baseURL     = flag.String("base-url", "", "Base URL prepended to generated page links")
		catalogFile = flag.String("catalog", "", "Optional JSON/YAML catalog overriding the builtin metadata table")
		slug        = flag.String("slug", "", "Slug of the document to preview (e.g. validation)")
		renderHTML  = flag.Bool("render-html", true, "Render the markdown body into HTML as part of the preview")
	)

	flag.Parse()

	if *slug == "" {
		log.Fatalf("--slug is required")
	}

	opts := bootstrap.Options{
		SourceDir:   *sourceDir,
		BaseURL:     *baseURL,
		CatalogFile: *catalogFile,
	}

	module, err := moduleBuilder(opts)
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}

	if module == nil || module.Service == nil {
		log.Fatalf("sync service not configured")
	}

	page, err := module.Service.LoadPage(context.Background(), *slug)
	if err != nil {
		log.Fatalf("load document: %v", err)
	}

	fmt.Fprintf(os.Stdout, "Slug: %s\nTitle: %s\nDescription: %s\nURL: %s\n\n", page.Slug, page.Title, page.Description, page.URL)

	if *renderHTML {
		fmt.Fprintf(os.Stdout, "Rendered HTML:\n%s\n", string(page.BodyHTML))
	} else {
		fmt.Fprintf(os.Stdout, "Composed Document:\n%s\n", string(page.Body))
	}
}

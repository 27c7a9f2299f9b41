package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/pthm/slotkit"
	"github.com/pthm/slotkit/lib/generator"
	"github.com/pthm/slotkit/ui"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "serve":
		if err := runServe(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "list":
		runList()
	case "tokens":
		if err := runTokens(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("slotkit version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

// runServe starts the catalog preview server.
func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":8642", "listen address")
	key := fs.String("key", "", "signing key for preview links (dev default used when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	signing := []byte(*key)
	if len(signing) == 0 {
		// Preview links only need to survive the current process.
		signing = []byte("slotkit-dev-preview")
	}

	reg := slotkit.NewRegistry(signing)
	reg.Add(ui.Definitions()...)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Info("preview", "method", r.Method, "path", r.URL.Path)
		reg.Handler().ServeHTTP(w, r)
	})

	slog.Info("catalog preview server listening", "addr", *addr, "components", reg.Names())
	return http.ListenAndServe(*addr, handler)
}

// runList prints the registered catalog components.
func runList() {
	reg := slotkit.NewRegistry([]byte("slotkit-dev-preview"))
	reg.Add(ui.Definitions()...)
	for _, name := range reg.Names() {
		fmt.Println(name)
	}
}

// runTokens generates Go token constants from a theme YAML.
func runTokens(args []string) error {
	fs := flag.NewFlagSet("tokens", flag.ExitOnError)
	in := fs.String("in", "theme.yaml", "theme YAML input path")
	out := fs.String("out", "tokens_gen.go", "generated file output path")
	pkg := fs.String("pkg", "tokens", "package name of the generated file")
	dryRun := fs.Bool("dry-run", false, "print what would be generated without writing")
	verbose := fs.Bool("v", false, "verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	gen := generator.New(generator.Options{
		DryRun:  *dryRun,
		Verbose: *verbose,
		Package: *pkg,
	})
	return gen.Generate(*in, *out)
}

func printUsage() {
	fmt.Println(`slotkit - design-system component toolkit

Usage:
  slotkit serve [-addr :8642] [-key SECRET]   Start the catalog preview server
  slotkit list                                List catalog components
  slotkit tokens [-in theme.yaml] [-out tokens_gen.go] [-pkg tokens]
                                              Generate token constants from a theme
  slotkit version                             Print version
  slotkit help                                Show this help`)
}

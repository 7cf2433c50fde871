// Package main provides the cubits CLI.
//
// Usage:
//
//	cubits version
//	cubits wgsl -rank 3 -kinds word8,float,int64 -group 1 > index.wgsl
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/born-ml/cubits/internal/codegen"
	"github.com/born-ml/cubits/internal/device"
	"github.com/born-ml/cubits/internal/shape"
	"github.com/born-ml/cubits/internal/texture"
)

const version = "v0.1.0-dev"

func main() {
	log.SetFlags(0)
	log.SetPrefix("cubits: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		usage(stdout)
		return nil
	}
	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "cubits %s\n", version)
		return nil
	case "wgsl":
		return runWGSL(args[1:], stdout)
	default:
		usage(stdout)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "cubits - shape algebra and typed element access")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  wgsl       Emit WGSL index helpers and fetch functions")
}

func runWGSL(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("wgsl", flag.ContinueOnError)
	rank := fs.Int("rank", shape.MaxRank, "Emit index helpers for ranks 1..rank")
	kinds := fs.String("kinds", "all", "Comma separated element kinds, \"all\" or \"none\"")
	double := fs.Bool("double", true, "Target supports double precision")
	group := fs.Uint("group", 0, "Bind group of the accessor bindings")
	out := fs.String("o", "", "Write to file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ks, err := parseKinds(*kinds)
	if err != nil {
		return err
	}
	opts := codegen.Options{
		MaxRank: *rank,
		Kinds:   ks,
		Group:   uint32(*group), //nolint:gosec // G115: bind groups are small
		Target:  texture.Config{DoublePrecision: *double},
	}
	if !*double && *kinds == "all" {
		opts.Kinds = dropKind(ks, device.Double)
	}

	src, err := codegen.Generate(opts)
	if err != nil {
		return err
	}
	if err := codegen.Validate(src); err != nil {
		return fmt.Errorf("generated source is invalid: %w", err)
	}

	if *out == "" {
		_, err = io.WriteString(stdout, src)
		return err
	}
	return os.WriteFile(*out, []byte(src), 0o600)
}

func parseKinds(list string) ([]device.Kind, error) {
	switch list {
	case "all":
		return device.Kinds(), nil
	case "none", "":
		return nil, nil
	}
	var ks []device.Kind
	var bad []string
	for _, name := range strings.Split(list, ",") {
		k, ok := device.ParseKind(strings.TrimSpace(name))
		if !ok {
			bad = append(bad, name)
			continue
		}
		ks = append(ks, k)
	}
	if len(bad) > 0 {
		return nil, errors.New("unknown kinds: " + strings.Join(bad, ", "))
	}
	return ks, nil
}

func dropKind(ks []device.Kind, drop device.Kind) []device.Kind {
	out := ks[:0:0]
	for _, k := range ks {
		if k != drop {
			out = append(out, k)
		}
	}
	return out
}

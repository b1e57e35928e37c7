// Command glot translates text from the command line.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/veznalabs/glot"
	"github.com/veznalabs/glot/backend"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("glot", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	source := fs.String("source", glot.SourceAuto, "Source language code (\"auto\" to detect)")
	target := fs.String("target", "en", "Target language code")
	backendKind := fs.String("backend", "gtx", "Backend to use: gtx or mobile")
	timeout := fs.Duration("timeout", 15*time.Second, "Request timeout")
	listLangs := fs.Bool("list-languages", false, "List supported languages and exit")
	locale := fs.String("locale", "", "Print the TTS locale for a language code and exit")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", glot.Name, glot.FullVersion())
		return nil
	}

	if *listLangs {
		for _, l := range glot.Languages() {
			fmt.Fprintf(stdout, "%-8s %s\n", l.Code, l.Name)
		}
		return nil
	}

	if *locale != "" {
		fmt.Fprintln(stdout, glot.LocaleFor(*locale))
		return nil
	}

	// Get input text from args or stdin
	var text string
	if fs.NArg() > 0 {
		text = strings.Join(fs.Args(), " ")
	} else {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	factory, err := backendFactory(*backendKind)
	if err != nil {
		return err
	}

	orch := glot.New(factory)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	res, err := orch.Translate(ctx, text, *source, *target)
	if err != nil {
		return fmt.Errorf("%s", glot.UserMessage(err))
	}

	if *jsonOutput {
		enc := json.NewEncoder(stdout)
		return enc.Encode(map[string]string{
			"text":            res.Text,
			"detected_source": res.DetectedSource,
		})
	}

	fmt.Fprintln(stdout, res.Text)
	if *source == glot.SourceAuto && res.DetectedSource != "" {
		fmt.Fprintf(stderr, "detected source: %s\n", res.DetectedSource)
	}
	return nil
}

func backendFactory(kind string) (glot.BackendFactory, error) {
	switch kind {
	case "gtx":
		return func() (glot.Backend, error) {
			return backend.NewGTXBackend(backend.GTXConfig{}), nil
		}, nil
	case "mobile":
		return func() (glot.Backend, error) {
			return backend.NewMobileBackend(backend.MobileConfig{}), nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want gtx or mobile)", kind)
	}
}

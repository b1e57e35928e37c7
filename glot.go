// Package glot orchestrates text translation against pluggable remote backends.
//
// Glot wraps a translation backend (Google's public endpoints, an LLM, or
// anything implementing Backend) with input short-circuits, silent-failure
// detection, and normalized user-facing error messages, plus a static
// registry of supported languages and their text-to-speech locales.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/veznalabs/glot"
//	    "github.com/veznalabs/glot/backend"
//	)
//
//	func main() {
//	    orch := glot.New(func() (glot.Backend, error) {
//	        return backend.NewGTXBackend(backend.GTXConfig{}), nil
//	    })
//
//	    res, err := orch.Translate(context.Background(), "hello", glot.SourceAuto, "tr")
//	    if err != nil {
//	        fmt.Println(glot.UserMessage(err))
//	        return
//	    }
//	    fmt.Println(res.Text) // merhaba
//	}
package glot

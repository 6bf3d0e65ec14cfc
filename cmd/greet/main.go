package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-greet/pkg/locale"
	"github.com/goliatone/go-greet/pkg/orchestrator"
	"github.com/goliatone/go-greet/pkg/text"
)

func main() {
	fullName := flag.String("name", "", "full name to greet (empty runs the built-in demo)")
	loc := flag.String("locale", "en", "catalog locale")
	key := flag.String("key", "greeting.hello", "catalog message key")
	template := flag.String("template", "", "explicit directive template, bypasses the catalog")
	rendererName := flag.String("renderer", "plain", "renderer to use")
	catalogPath := flag.String("catalog", "", "catalog YAML path (builtin catalog if empty)")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "prompt for name and locale")
	flag.Parse()

	ctx := context.Background()

	var options []orchestrator.Option
	catalog := locale.Builtin()
	if *catalogPath != "" {
		loaded, err := locale.LoadFile(ctx, *catalogPath)
		if err != nil {
			log.Fatalf("load catalog %s: %v", *catalogPath, err)
		}
		catalog = loaded
		options = append(options, orchestrator.WithTranslator(catalog))
	}

	greeter := orchestrator.New(options...)

	if *interactive {
		answers, err := promptGreeting(catalog)
		if err != nil {
			log.Fatalf("interactive prompt: %v", err)
		}
		*fullName = answers.Name
		*loc = answers.Locale
	}

	if *fullName == "" && !*interactive {
		runDemo(ctx, greeter)
		return
	}

	out, err := greeter.Greet(ctx, orchestrator.Request{
		Locale:   *loc,
		Key:      *key,
		Template: *template,
		FullName: text.ViewOf(*fullName),
		Renderer: *rendererName,
	})
	if err != nil {
		log.Fatalf("greet: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Greeting written to %s\n", *output)
		return
	}
	if _, err := os.Stdout.Write(out); err != nil {
		log.Fatalf("write stdout: %v", err)
	}
}

// runDemo performs the classic fixed two-call sequence.
func runDemo(ctx context.Context, greeter *orchestrator.Greeter) {
	calls := []orchestrator.Request{
		{Locale: "en", Key: "greeting.hello", FullName: text.NewCString("Eleanor Rigby")},
		{Locale: "fr", Key: "greeting.hello", FullName: text.ViewOf("Tom")},
	}
	for _, req := range calls {
		out, err := greeter.Greet(ctx, req)
		if err != nil {
			log.Fatalf("greet %s/%s: %v", req.Locale, req.Key, err)
		}
		if _, err := os.Stdout.Write(out); err != nil {
			log.Fatalf("write stdout: %v", err)
		}
	}
}

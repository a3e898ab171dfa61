package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/greeting_processor/pkg/validate"
)

// CLI-приложение для проверки приветствий перед отправкой в Kafka.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	ctx := context.Background()
	greetingValidator := validate.NewGreetingValidator()

	format := validate.InputFormat(*formatStr)

	path := *inputPath
	if path == "" {
		// stdin вариант: считаем, что jsonl
		path = "-"
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
	}

	summary, err := validate.ValidateFile(ctx, greetingValidator, path, format, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
}

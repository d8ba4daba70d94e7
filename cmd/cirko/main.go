// Command cirko converts Serbian text between the Cyrillic and Latin
// scripts, from files or standard input, and can serve the conversion
// over a REST API.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	cirkoerrors "github.com/cirko-dev/cirko/core/errors"
	"github.com/cirko-dev/cirko/core/translit"
	"github.com/cirko-dev/cirko/internal/api"
	"github.com/cirko-dev/cirko/internal/logging"
	"github.com/cirko-dev/cirko/internal/validation"
)

const version = "0.1.0"

// CLI defines the command-line interface for cirko.
var CLI struct {
	// Global flags
	LogLevel  string `help:"Log level (debug, info, warn, error)" default:"info" env:"CIRKO_LOG_LEVEL"`
	LogFormat string `help:"Log format (json, text)" default:"text" enum:"json,text" env:"CIRKO_LOG_FORMAT"`

	Convert ConvertCmd `cmd:"" default:"withargs" help:"Convert text between Cyrillic and Latin (default command)"`
	Serve   ServeCmd   `cmd:"" help:"Start the REST API server"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// ConvertCmd converts a file or standard input.
type ConvertCmd struct {
	In         string `short:"i" help:"Input file (stdin when omitted)" type:"existingfile"`
	Out        string `short:"o" help:"Output file (stdout when omitted)" type:"path"`
	ToLatin    bool   `name:"to-latin" short:"l" xor:"direction" help:"Force conversion to Latin"`
	ToCyrillic bool   `name:"to-cyrillic" short:"c" xor:"direction" help:"Force conversion to Cyrillic"`
}

// Run reads the whole input, converts it and writes the result. The
// conversion direction is auto-detected from the input script unless
// forced by a flag: any Cyrillic letter means convert to Latin.
func (c *ConvertCmd) Run() error {
	input, err := c.readInput()
	if err != nil {
		return err
	}

	if err := validation.ValidateInputSize(len(input)); err != nil {
		return cirkoerrors.Wrap(err, "refusing to convert")
	}

	var output string
	switch {
	case c.ToLatin:
		output = translit.ToLatin(input)
	case c.ToCyrillic:
		output = translit.ToCyrillic(input)
	case translit.ContainsCyrillic(input):
		output = translit.ToLatin(input)
	default:
		output = translit.ToCyrillic(input)
	}

	return c.writeOutput(output)
}

func (c *ConvertCmd) readInput() (string, error) {
	if c.In == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", cirkoerrors.NewIO("read", "stdin", err)
		}
		return string(data), nil
	}

	if err := validation.ValidatePath(c.In); err != nil {
		return "", cirkoerrors.Wrap(err, "invalid input path")
	}
	data, err := os.ReadFile(c.In)
	if err != nil {
		return "", cirkoerrors.NewIO("read", c.In, err)
	}
	return string(data), nil
}

func (c *ConvertCmd) writeOutput(output string) error {
	if c.Out == "" {
		fmt.Println(output)
		return nil
	}

	if err := validation.ValidatePath(c.Out); err != nil {
		return cirkoerrors.Wrap(err, "invalid output path")
	}
	if err := os.WriteFile(c.Out, []byte(output), 0644); err != nil {
		return cirkoerrors.NewIO("write", c.Out, err)
	}
	return nil
}

// ServeCmd starts the REST API server.
type ServeCmd struct {
	Port           int      `short:"p" default:"8080" env:"CIRKO_PORT" help:"Port to listen on"`
	AllowedOrigins []string `env:"CIRKO_ALLOWED_ORIGINS" help:"CORS allowed origins (all origins when empty)"`
	CacheMaxBytes  int64    `default:"33554432" env:"CIRKO_CACHE_BYTES" help:"Conversion cache budget in bytes"`
}

func (c *ServeCmd) Run() error {
	return api.Start(api.Config{
		Port:           c.Port,
		AllowedOrigins: c.AllowedOrigins,
		CacheMaxBytes:  c.CacheMaxBytes,
	})
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (v *VersionCmd) Run() error {
	fmt.Printf("cirko version %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("cirko"),
		kong.Description("Cirko - converts Serbian Latin to Cyrillic and back."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	format := logging.FormatText
	if CLI.LogFormat == "json" {
		format = logging.FormatJSON
	}
	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), format)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

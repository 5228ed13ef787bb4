package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/griffnb/core-openapify/internal/console"
	"github.com/griffnb/core-openapify/internal/gen"
	"github.com/griffnb/core-openapify/internal/loader"
)

const (
	modelFlag         = "model"
	outputFlag        = "output"
	outputTypesFlag   = "outputTypes"
	verboseFlag       = "verbose"
	parallelFlag      = "parallel"
	stripHTMLFlag     = "stripHTML"
	instanceNameFlag  = "instanceName"
	packageNameFlag   = "packageName"
	stateFlag         = "state"
	titleFlag         = "title"
	versionFlag       = "apiVersion"
	generatedTimeFlag = "generatedTime"
	extensionsFlag    = "extensions"
	pipeFlag          = "pipe"
	quietFlag         = "quiet"
	debugFlag         = "debug"
)

var modelFileFlag = &cli.StringFlag{
	Name:     modelFlag,
	Aliases:  []string{"m"},
	Required: true,
	Usage:    "Model documents or directories to read, comma separated",
}

var initFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    quietFlag,
		Aliases: []string{"q"},
		Usage:   "Make the logger quiet.",
	},
	modelFileFlag,
	&cli.StringFlag{
		Name:    outputFlag,
		Aliases: []string{"o"},
		Value:   "./docs",
		Usage:   "Output directory for all the generated files (swagger.json, swagger.yaml, openapi.json)",
	},
	&cli.StringFlag{
		Name:    outputTypesFlag,
		Aliases: []string{"ot"},
		Value:   "json,yaml",
		Usage:   "Output types of generated files like go,json,yaml,openapi3,annotations",
	},
	&cli.BoolFlag{
		Name:    verboseFlag,
		Aliases: []string{"v"},
		Usage:   "Append the restriction summary to property descriptions",
	},
	&cli.BoolFlag{
		Name:  parallelFlag,
		Usage: "Annotate classes concurrently",
	},
	&cli.BoolFlag{
		Name:  stripHTMLFlag,
		Usage: "Reduce model documentation to plain text",
	},
	&cli.StringFlag{
		Name:  instanceNameFlag,
		Value: "",
		Usage: "This parameter can be used to name different document instances. It is optional.",
	},
	&cli.StringFlag{
		Name:  packageNameFlag,
		Value: "",
		Usage: "Package name of the generated docs.go, defaults to the output directory name",
	},
	&cli.StringFlag{
		Name:  stateFlag,
		Value: "",
		Usage: "Prefix generated files and docs.go identifiers with a state",
	},
	&cli.StringFlag{
		Name:  titleFlag,
		Usage: "Title of the generated documents",
	},
	&cli.StringFlag{
		Name:  versionFlag,
		Usage: "Version of the generated documents",
	},
	&cli.StringFlag{
		Name:  extensionsFlag,
		Usage: "Model file extensions read from directories, comma separated (default .yaml,.yml,.json)",
	},
	&cli.BoolFlag{
		Name:  generatedTimeFlag,
		Usage: "Write the generation timestamp at the top of docs.go",
	},
	&cli.BoolFlag{
		Name:  debugFlag,
		Usage: "Enable debug mode, disabled by default",
	},
}

func initAction(ctx *cli.Context) error {
	if ctx.IsSet(debugFlag) {
		console.Logger.DebugLevel = 1
	}

	outputTypes := splitList(ctx.String(outputTypesFlag))
	if len(outputTypes) == 0 {
		return fmt.Errorf("no output types specified")
	}
	logger := log.New(os.Stdout, "", log.LstdFlags)
	if ctx.Bool(quietFlag) {
		logger = log.New(io.Discard, "", log.LstdFlags)
	}
	console.Logger.Quiet = ctx.Bool(quietFlag)

	return gen.New().Build(&gen.Config{
		Debugger:            logger,
		ModelFile:           ctx.String(modelFlag),
		OutputDir:           ctx.String(outputFlag),
		OutputTypes:         outputTypes,
		InstanceName:        ctx.String(instanceNameFlag),
		Title:               ctx.String(titleFlag),
		Version:             ctx.String(versionFlag),
		VerboseDescriptions: ctx.Bool(verboseFlag),
		Parallel:            ctx.Bool(parallelFlag),
		StripHTML:           ctx.Bool(stripHTMLFlag),
		Extensions:          splitList(ctx.String(extensionsFlag)),
		GeneratedTime:       ctx.Bool(generatedTimeFlag),
		PackageName:         ctx.String(packageNameFlag),
		State:               ctx.String(stateFlag),
	})
}

func validateAction(ctx *cli.Context) error {
	if ctx.Bool(pipeFlag) {
		console.Logger.SetOutput(ctx.App.ErrWriter)
		data, err := io.ReadAll(ctx.App.Reader)
		if err != nil {
			return err
		}
		m, err := loader.NewService().LoadBytes(data)
		if err != nil {
			return err
		}
		console.Logger.Info("$Green{%d classes and %d enums are valid}", len(m.Classes), len(m.Enums))
		return nil
	}

	paths := splitList(ctx.String(modelFlag))
	if len(paths) == 0 {
		return fmt.Errorf("no model document given")
	}

	res, err := loader.NewService().LoadPaths(paths)
	if err != nil {
		return err
	}

	console.Logger.Info("$Green{%d classes and %d enums in %d files are valid}",
		len(res.Model.Classes), len(res.Model.Enums), len(res.Files))
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Version = gen.Version
	app.Usage = "Generate OpenAPI schema annotations from XML schema derived object models."
	app.Commands = []*cli.Command{
		{
			Name:    "init",
			Aliases: []string{"i"},
			Usage:   "Generate schema documents",
			Action:  initAction,
			Flags:   initFlags,
		},
		{
			Name:    "validate",
			Aliases: []string{"check"},
			Usage:   "Check model documents without writing output",
			Action:  validateAction,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    modelFlag,
					Aliases: []string{"m"},
					Usage:   "Model documents or directories to read, comma separated",
				},
				&cli.BoolFlag{
					Name:    pipeFlag,
					Aliases: []string{"p"},
					Usage:   "Read one model document from stdin.",
				},
			},
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

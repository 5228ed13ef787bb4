package gen

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-openapi/spec"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
	"sigs.k8s.io/yaml"

	"github.com/griffnb/core-openapify/internal/console"
	"github.com/griffnb/core-openapify/internal/model"
	"github.com/griffnb/core-openapify/internal/orchestrator"
	"github.com/griffnb/core-openapify/internal/schema"
)

// Version of the generator.
const Version = "v0.1.0"

// DefaultInstanceName is the instance name that adds no file name prefix.
const DefaultInstanceName = "swagger"

const (
	defaultTitle   = "Schema annotations"
	defaultVersion = "1.0"
)

// documents holds every rendering of one run.
type documents struct {
	annotations *model.Document
	swagger     *spec.Swagger
	openapi     *openapi3.T
}

type genTypeWriter func(*Config, *documents) error

// Gen presents a generate tool for schema annotations.
type Gen struct {
	json          func(data interface{}) ([]byte, error)
	jsonIndent    func(data interface{}) ([]byte, error)
	jsonToYAML    func(data []byte) ([]byte, error)
	outputTypeMap map[string]genTypeWriter
	debug         Debugger
}

// Debugger is the interface that wraps the basic Printf method.
type Debugger interface {
	Printf(format string, v ...interface{})
}

// New creates a new Gen.
func New() *Gen {
	gen := Gen{
		json: json.Marshal,
		jsonIndent: func(data interface{}) ([]byte, error) {
			return json.MarshalIndent(data, "", "    ")
		},
		jsonToYAML: yaml.JSONToYAML,
		debug:      log.New(os.Stdout, "", log.LstdFlags),
	}

	gen.outputTypeMap = map[string]genTypeWriter{
		"go":          gen.writeDocSwagger,
		"json":        gen.writeJSONSwagger,
		"yaml":        gen.writeYAMLSwagger,
		"yml":         gen.writeYAMLSwagger,
		"openapi3":    gen.writeOpenAPI3,
		"annotations": gen.writeAnnotations,
	}

	return &gen
}

// Config presents Gen configurations.
type Config struct {
	Debugger Debugger

	// ModelFile is the model document or directory to read, comma separated if multiple
	ModelFile string

	// OutputDir represents the output directory for all the generated files
	OutputDir string

	// OutputTypes define types of files which should be generated
	OutputTypes []string

	// InstanceName is used to get distinct names for different documents in the
	// same project. The default value is "swagger".
	InstanceName string

	// Title and Version fill the info block of the generated documents
	Title   string
	Version string

	// VerboseDescriptions appends the restriction summary to property descriptions
	VerboseDescriptions bool

	// Parallel annotates classes concurrently
	Parallel bool

	// StripHTML reduces model documentation to plain text
	StripHTML bool

	// Extensions lists the model file extensions read from directories
	Extensions []string

	// GeneratedTime whether the timestamp is written at the top of docs.go
	GeneratedTime bool

	// PackageName defines package name of generated `docs.go`
	PackageName string

	// State prefixes the generated files and docs.go identifiers
	State string
}

// Build annotates the configured model and writes every requested output type.
func (g *Gen) Build(config *Config) error {
	if config.Debugger != nil {
		g.debug = config.Debugger
	}
	if config.InstanceName == "" {
		config.InstanceName = DefaultInstanceName
	}
	if config.Title == "" {
		config.Title = defaultTitle
	}
	if config.Version == "" {
		config.Version = defaultVersion
	}

	modelPaths := splitList(config.ModelFile)
	if len(modelPaths) == 0 {
		return errors.New("no model document given")
	}
	for _, p := range modelPaths {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return errors.Errorf("model: %s does not exist", p)
		}
	}

	console.Logger.Debug("Generate schema annotations....")

	orc := orchestrator.New(&orchestrator.Config{
		VerboseDescriptions: config.VerboseDescriptions,
		Parallel:            config.Parallel,
		StripHTML:           config.StripHTML,
		Extensions:          config.Extensions,
		Debug:               g.debug,
	})

	doc, err := orc.Parse(modelPaths)
	if err != nil {
		return err
	}
	g.debug.Printf("Referenced definitions: %d", len(orchestrator.CollectReferencedDefinitions(doc)))

	docs := &documents{
		annotations: doc,
		swagger:     buildSwagger(config, doc),
		openapi:     buildOpenAPI3(config, doc),
	}
	if err := schema.ResolveReferences(docs.swagger.Definitions); err != nil {
		console.Logger.Warn("%v", err)
	}

	if err := os.MkdirAll(config.OutputDir, os.ModePerm); err != nil {
		return errors.Wrapf(err, "failed to create output dir %s", config.OutputDir)
	}

	for _, outputType := range config.OutputTypes {
		outputType = strings.ToLower(strings.TrimSpace(outputType))
		if typeWriter, ok := g.outputTypeMap[outputType]; ok {
			if err := typeWriter(config, docs); err != nil {
				return err
			}
		} else {
			log.Printf("output type '%s' not supported", outputType)
		}
	}

	return nil
}

func buildSwagger(config *Config, doc *model.Document) *spec.Swagger {
	return &spec.Swagger{
		SwaggerProps: spec.SwaggerProps{
			Swagger: "2.0",
			Info: &spec.Info{
				InfoProps: spec.InfoProps{
					Title:   config.Title,
					Version: config.Version,
				},
			},
			Paths:       &spec.Paths{Paths: make(map[string]spec.PathItem)},
			Definitions: schema.BuildDefinitions(doc),
		},
	}
}

func buildOpenAPI3(config *Config, doc *model.Document) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   config.Title,
			Version: config.Version,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: schema.BuildComponents(doc),
		},
	}
}

// outputFileName prefixes name with the state and the instance name.
func outputFileName(config *Config, name string) string {
	if config.State != "" {
		name = config.State + "_" + name
	}

	if config.InstanceName != DefaultInstanceName {
		name = config.InstanceName + "_" + name
	}

	return path.Join(config.OutputDir, name)
}

func (g *Gen) writeDocSwagger(config *Config, docs *documents) error {
	docFileName := outputFileName(config, "docs.go")

	absOutputDir, err := filepath.Abs(config.OutputDir)
	if err != nil {
		return err
	}

	var packageName string
	if len(config.PackageName) > 0 {
		packageName = config.PackageName
	} else {
		packageName = filepath.Base(absOutputDir)
		packageName = strings.ReplaceAll(packageName, "-", "_")
	}

	code, err := g.renderGoDoc(packageName, docs.swagger, config)
	if err != nil {
		return err
	}

	if err := g.writeFile(code, docFileName); err != nil {
		return err
	}

	console.Logger.Debug("create docs.go at %+v", docFileName)

	return nil
}

func (g *Gen) writeJSONSwagger(config *Config, docs *documents) error {
	jsonFileName := outputFileName(config, "swagger.json")

	b, err := g.jsonIndent(docs.swagger)
	if err != nil {
		return errors.Wrap(err, "failed to marshal swagger document")
	}

	if err := g.writeFile(b, jsonFileName); err != nil {
		return err
	}

	console.Logger.Debug("create swagger.json at %+v", jsonFileName)

	return nil
}

func (g *Gen) writeYAMLSwagger(config *Config, docs *documents) error {
	yamlFileName := outputFileName(config, "swagger.yaml")

	b, err := g.json(docs.swagger)
	if err != nil {
		return errors.Wrap(err, "failed to marshal swagger document")
	}

	y, err := g.jsonToYAML(b)
	if err != nil {
		return errors.Wrap(err, "cannot convert json to yaml")
	}

	if err := g.writeFile(y, yamlFileName); err != nil {
		return err
	}

	console.Logger.Debug("create swagger.yaml at %+v", yamlFileName)

	return nil
}

func (g *Gen) writeOpenAPI3(config *Config, docs *documents) error {
	fileName := outputFileName(config, "openapi.json")

	if err := docs.openapi.Validate(context.Background()); err != nil {
		console.Logger.Warn("openapi document does not validate: %v", err)
	}

	b, err := g.jsonIndent(docs.openapi)
	if err != nil {
		return errors.Wrap(err, "failed to marshal openapi document")
	}

	if err := g.writeFile(b, fileName); err != nil {
		return err
	}

	console.Logger.Debug("create openapi.json at %+v", fileName)

	return nil
}

func (g *Gen) writeAnnotations(config *Config, docs *documents) error {
	fileName := outputFileName(config, "annotations.json")

	b, err := g.jsonIndent(docs.annotations)
	if err != nil {
		return errors.Wrap(err, "failed to marshal annotations")
	}

	if err := g.writeFile(b, fileName); err != nil {
		return err
	}

	console.Logger.Debug("create annotations.json at %+v", fileName)

	return nil
}

func (g *Gen) writeFile(b []byte, file string) error {
	f, err := os.Create(file)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", file)
	}

	defer f.Close()

	_, err = f.Write(b)

	return err
}

// formatSource formats src and fixes its imports. The unformatted source is
// kept when processing fails.
func (g *Gen) formatSource(filename string, src []byte) []byte {
	code, err := imports.Process(filename, src, nil)
	if err != nil {
		g.debug.Printf("failed to format %s: %v", filename, err)
		code = src
	}

	return code
}

func (g *Gen) renderGoDoc(packageName string, swagger *spec.Swagger, config *Config) ([]byte, error) {
	generator, err := template.New("schema_info").Funcs(template.FuncMap{
		"printDoc": func(v string) string {
			// Sanitize backticks
			return strings.Replace(v, "`", "`+\"`\"+`", -1)
		},
	}).Parse(packageTemplate)
	if err != nil {
		return nil, err
	}

	buf, err := g.jsonIndent(swagger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal swagger document")
	}

	state := ""
	if len(config.State) > 0 {
		state = cases.Title(language.English).String(strings.ToLower(config.State))
	}

	suffix := state
	if config.InstanceName != DefaultInstanceName {
		suffix = identifier(config.InstanceName) + suffix
	}

	buffer := &bytes.Buffer{}

	err = generator.Execute(buffer, struct {
		Timestamp     time.Time
		Doc           string
		PackageName   string
		Title         string
		Version       string
		Suffix        string
		InstanceName  string
		GeneratedTime bool
	}{
		Timestamp:     time.Now(),
		GeneratedTime: config.GeneratedTime,
		Doc:           string(buf),
		PackageName:   packageName,
		Title:         swagger.Info.Title,
		Version:       swagger.Info.Version,
		Suffix:        suffix,
		InstanceName:  config.InstanceName,
	})
	if err != nil {
		return nil, err
	}

	return g.formatSource("docs.go", buffer.Bytes()), nil
}

// identifier drops the characters of s that cannot appear in a Go identifier.
func identifier(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		}
		return -1
	}, s)
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

var packageTemplate = `// Package {{.PackageName}} Code generated by core-openapify{{ if .GeneratedTime }} at {{ .Timestamp }}{{ end }}. DO NOT EDIT
package {{.PackageName}}

import "encoding/json"

const docTemplate{{ .Suffix }} = ` + "`{{ printDoc .Doc }}`" + `

// SchemaInfo{{ .Suffix }} describes the generated document.
var SchemaInfo{{ .Suffix }} = struct {
	Title        string
	Version      string
	InstanceName string
}{
	Title:        {{ printf "%q" .Title }},
	Version:      {{ printf "%q" .Version }},
	InstanceName: {{ printf "%q" .InstanceName }},
}

// Definitions{{ .Suffix }} returns the generated schema definitions keyed by name.
func Definitions{{ .Suffix }}() (map[string]json.RawMessage, error) {
	var doc struct {
		Definitions map[string]json.RawMessage ` + "`json:\"definitions\"`" + `
	}
	if err := json.Unmarshal([]byte(docTemplate{{ .Suffix }}), &doc); err != nil {
		return nil, err
	}
	return doc.Definitions, nil
}
`

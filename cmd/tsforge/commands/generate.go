package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tsforge/tsforge/config"
	"github.com/tsforge/tsforge/dsl"
	"github.com/tsforge/tsforge/errors"
	"github.com/tsforge/tsforge/internal/util"
	"github.com/tsforge/tsforge/logger"
)

var (
	generateFile              string
	generateMode              string
	generateOut               string
	generateDryRun            bool
	generateWatch             bool
	generateOptionalByDefault bool
	generateStrict            bool
	generateNoInterface       bool
	generateNoZod             bool
	generateNoExample         bool
)

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:     "generate [dsl]",
	Aliases: []string{"gen"},
	Short:   "Transpile a DSL line into TypeScript artifacts",
	Long: `Transpile a one-line DSL type description into TypeScript artifacts.

The DSL comes from the arguments, from --file, or from stdin. Two
dialects are accepted: the space-delimited form ("User email:s name")
and the legacy compact form ("type:user-email:s/name:s").

Modes:
  type      - type alias only
  interface - interface only
  zod       - Zod schema only
  all       - every text artifact (default)
  json      - full result document as JSON

Examples:
  tsforge generate "User email:s isAdmin?:b createdAt tags"
  tsforge generate --file user.dsl --out src/types/
  tsforge generate --file user.dsl --out src/types/ --watch
  echo "User email:s" | tsforge generate --mode zod`,
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().StringVarP(&generateFile, "file", "f", "", "Read the DSL from a file")
	GenerateCmd.Flags().StringVarP(&generateMode, "mode", "m", "all", "Output mode: type, interface, zod, all, json")
	GenerateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Write artifacts to this directory instead of stdout")
	GenerateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Show what would be written without writing")
	GenerateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Regenerate when the --file changes")
	GenerateCmd.Flags().BoolVar(&generateOptionalByDefault, "optional-by-default", false, "Properties without ! or ? default to optional")
	GenerateCmd.Flags().BoolVar(&generateStrict, "strict", false, "Schemas reject undeclared keys")
	GenerateCmd.Flags().BoolVar(&generateNoInterface, "no-interface", false, "Skip the interface artifact")
	GenerateCmd.Flags().BoolVar(&generateNoZod, "no-zod", false, "Skip the Zod schema artifact")
	GenerateCmd.Flags().BoolVar(&generateNoExample, "no-example", false, "Skip the example object artifact")

	GenerateCmd.SilenceUsage = true
	GenerateCmd.SilenceErrors = true
}

// generatorConfig resolves the effective config from file config plus flags
func generatorConfig(cmd *cobra.Command) dsl.Config {
	dslCfg := dsl.DefaultConfig()
	if cfg, err := config.Load(); err == nil {
		dslCfg = cfg.DSLConfig()
	}

	if cmd.Flags().Changed("optional-by-default") {
		dslCfg.OptionalByDefault = generateOptionalByDefault
	}
	if cmd.Flags().Changed("strict") {
		dslCfg.StrictSchema = generateStrict
	}
	if generateNoInterface {
		dslCfg.EmitInterface = false
	}
	if generateNoZod {
		dslCfg.EmitSchema = false
	}
	if generateNoExample {
		dslCfg.EmitExample = false
	}

	// Single-artifact modes only need their own generator
	switch generateMode {
	case "type":
		dslCfg.EmitInterface = false
		dslCfg.EmitSchema = false
		dslCfg.EmitExample = false
	case "interface":
		dslCfg.EmitInterface = true
		dslCfg.EmitSchema = false
		dslCfg.EmitExample = false
	case "zod":
		dslCfg.EmitInterface = false
		dslCfg.EmitSchema = true
		dslCfg.EmitExample = false
	}

	return dslCfg
}

// readInput resolves the DSL source: arguments, --file, or stdin
func readInput(args []string) (string, error) {
	if generateFile != "" {
		data, err := os.ReadFile(generateFile)
		if err != nil {
			return "", errors.Wrapf(err, "failed to read %s", generateFile)
		}
		return string(data), nil
	}

	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "failed to read stdin")
		}
		return string(data), nil
	}

	return "", errors.WithHint(
		errors.ErrNoInput,
		`pass the DSL as an argument, with --file, or on stdin: tsforge generate "User email:s"`,
	)
}

// RunDefault lets the root command treat bare arguments as a generate
// invocation with default flags
func RunDefault(cmd *cobra.Command, args []string) error {
	return runGenerate(cmd, args)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	raw, err := readInput(args)
	if err != nil {
		return err
	}

	if generateWatch {
		if generateFile == "" {
			return errors.New("--watch requires --file")
		}
		return watchAndGenerate(cmd, raw)
	}

	return generateOnce(cmd, raw)
}

// generateOnce runs one transpilation and emits the output
func generateOnce(cmd *cobra.Command, raw string) error {
	result, err := dsl.Build(raw, generatorConfig(cmd))
	if err != nil {
		var parseErr *dsl.Error
		if errors.As(err, &parseErr) {
			fmt.Fprintln(cmd.ErrOrStderr(), parseErr.Format(dsl.ErrorContextTerminal))
			return errors.New("DSL parse failed")
		}
		return err
	}

	if generateOut != "" {
		return writeArtifactFiles(cmd, result)
	}
	return printArtifacts(cmd, result)
}

// printArtifacts writes the requested artifacts to stdout
func printArtifacts(cmd *cobra.Command, result *dsl.Result) error {
	out := cmd.OutOrStdout()

	if generateMode == "json" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to encode result")
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	sections := make([]string, 0, 4)
	if generateMode == "all" || generateMode == "type" {
		sections = append(sections, result.TypeText)
	}
	if result.InterfaceText != "" {
		sections = append(sections, result.InterfaceText)
	}
	if result.SchemaText != "" {
		sections = append(sections, result.SchemaText)
	}
	if result.Example != nil && generateMode == "all" {
		sections = append(sections, dsl.GenerateExampleJSON(result.Model.Properties))
	}

	fmt.Fprint(out, strings.Join(sections, "\n"))
	return nil
}

// artifactFiles maps output filenames to their content for --out
func artifactFiles(result *dsl.Result) map[string]string {
	base := util.ToKebabCase(result.TypeName)
	files := make(map[string]string)

	if generateMode == "all" || generateMode == "type" || generateMode == "json" {
		files[base+".type.ts"] = result.TypeText
	}
	if result.InterfaceText != "" {
		files[base+".interface.ts"] = result.InterfaceText
	}
	if result.SchemaText != "" {
		files[base+".schema.ts"] = result.SchemaText
	}
	if result.Example != nil && (generateMode == "all" || generateMode == "json") {
		files[base+".example.json"] = dsl.GenerateExampleJSON(result.Model.Properties)
	}

	return files
}

// writeArtifactFiles writes each artifact to the --out directory
func writeArtifactFiles(cmd *cobra.Command, result *dsl.Result) error {
	files := artifactFiles(result)

	if generateDryRun {
		for name := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "would write %s\n", filepath.Join(generateOut, name))
		}
		return nil
	}

	if err := os.MkdirAll(generateOut, 0755); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}

	for name, content := range files {
		path := filepath.Join(generateOut, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return errors.Wrapf(err, "failed to write %s", path)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", pterm.Green("✓"), path)
	}

	return nil
}

// watchAndGenerate regenerates whenever the input file changes,
// until interrupted
func watchAndGenerate(cmd *cobra.Command, initial string) error {
	if err := generateOnce(cmd, initial); err != nil {
		// Keep watching; a broken intermediate save shouldn't kill the loop
		logger.Warnw("Initial generation failed", "error", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create file watcher")
	}
	defer watcher.Close()

	// Watch the directory: editors replace files on save, which drops
	// a watch registered on the file itself
	dir := filepath.Dir(generateFile)
	if err := watcher.Add(dir); err != nil {
		return errors.Wrapf(err, "failed to watch %s", dir)
	}

	logger.Infow("Watching for changes", "file", generateFile)

	target, _ := filepath.Abs(generateFile)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	var debounce *time.Timer
	regenerate := func() {
		data, err := os.ReadFile(generateFile)
		if err != nil {
			logger.Errorw("Failed to re-read input file", "error", err)
			return
		}
		if err := generateOnce(cmd, string(data)); err != nil {
			logger.Warnw("Regeneration failed", "error", err)
			return
		}
		logger.Infow("Regenerated", "file", generateFile)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			changed, _ := filepath.Abs(event.Name)
			if changed != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(300*time.Millisecond, regenerate)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnw("File watcher error", "error", err)

		case <-sigCh:
			logger.Infow("Stopping watch")
			return nil
		}
	}
}

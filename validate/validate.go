// Command validate checks the game configurations in a directory. Every
// .json, .yaml and .yml file is checked for:
//   - a document matching the embedded configuration schema
//   - the game rules (player and pawn limits, a sinkable centre, spinner tokens)
//   - an island that can actually be built, with a boat for every player
package main

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/wricardo/sinking-island/game/config"
	"github.com/wricardo/sinking-island/game/engine"
)

//go:embed gameconfig.schema.json
var schemaJSON []byte

const schemaURL = "gameconfig.schema.json"

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

func (r *ValidationResult) fail(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) info(format string, args ...any) {
	r.Errors = append(r.Errors, "✓ "+fmt.Sprintf(format, args...))
}

// compileSchema compiles the embedded configuration schema
func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaURL)
}

// decodeDocument reads a config file into the generic form the schema
// validator expects. YAML documents are round-tripped through JSON.
func decodeDocument(data []byte, ext string) (any, error) {
	if ext == ".yaml" || ext == ".yml" {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return nil, err
		}
		data = converted
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// schemaErrors flattens a schema failure into one line per violation
func schemaErrors(err error) []string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}
	var lines []string
	for _, e := range ve.BasicOutput().Errors {
		if e.Error == "" || strings.HasPrefix(e.Error, "doesn't validate with") {
			continue
		}
		location := e.InstanceLocation
		if location == "" {
			location = "/"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", location, e.Error))
	}
	if len(lines) == 0 {
		lines = append(lines, ve.Error())
	}
	return lines
}

// validateConfig loads and validates a single configuration file. It runs
// the schema, the rule checks and finally builds the island.
func validateConfig(schema *jsonschema.Schema, filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}
	ext := strings.ToLower(filepath.Ext(filePath))

	doc, err := decodeDocument(data, ext)
	if err != nil {
		result.fail("Invalid document: %v", err)
		return result
	}

	if err := schema.Validate(doc); err != nil {
		for _, line := range schemaErrors(err) {
			result.fail("Schema: %s", line)
		}
		return result
	}
	result.info("Schema")

	cfg, err := config.DecodeConfig(data, ext)
	if err != nil {
		result.fail("Invalid document: %v", err)
		return result
	}
	if err := engine.ValidateGameConfig(cfg); err != nil {
		result.fail("Rules: %v", err)
		return result
	}
	result.info("Rules: %d players, %d pawns each", cfg.Players, cfg.PawnsPerPlayer)

	eng, err := engine.NewEngine(cfg, nil, engine.WithSeed(1))
	if err != nil {
		result.fail("Island: %v", err)
		return result
	}
	board := eng.Board()
	result.info("Island: %d hexes, %d sinkable rings, %d coral",
		board.HexCount(), eng.IslandRadius(), engine.CountPieceType(board, engine.Coral))

	if boats := len(board.TransportIDs()); boats < cfg.Players {
		result.fail("Island: %d boats placed for %d players", boats, cfg.Players)
		return result
	}
	result.info("Coast: %d boats", len(board.TransportIDs()))

	return result
}

// configFiles lists the config documents of dir in name order
func configFiles(dir string) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.json", "*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}

// main validates each config file of -dir, printing a concise report and
// exiting with non-zero status if any are invalid.
func main() {
	configDir := flag.String("dir", "../configs", "Directory containing game configurations")
	flag.Parse()

	schema, err := compileSchema()
	if err != nil {
		fmt.Printf("Error compiling schema: %v\n", err)
		os.Exit(1)
	}

	files, err := configFiles(*configDir)
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("No configuration files in %s\n", *configDir)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(schema, file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}

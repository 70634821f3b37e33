package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsforge/tsforge/dsl"
)

func resetGenerateFlags(t *testing.T) {
	t.Helper()
	generateFile = ""
	generateMode = "all"
	generateOut = ""
	generateDryRun = false
	generateWatch = false
	generateOptionalByDefault = false
	generateStrict = false
	generateNoInterface = false
	generateNoZod = false
	generateNoExample = false
	t.Cleanup(func() {
		generateFile = ""
		generateMode = "all"
		generateOut = ""
		generateDryRun = false
		generateWatch = false
	})
}

func TestGeneratorConfigModes(t *testing.T) {
	resetGenerateFlags(t)

	tests := []struct {
		mode          string
		emitInterface bool
		emitSchema    bool
		emitExample   bool
	}{
		{"type", false, false, false},
		{"interface", true, false, false},
		{"zod", false, true, false},
		{"all", true, true, true},
		{"json", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			generateMode = tt.mode
			cfg := generatorConfig(GenerateCmd)
			assert.Equal(t, tt.emitInterface, cfg.EmitInterface)
			assert.Equal(t, tt.emitSchema, cfg.EmitSchema)
			assert.Equal(t, tt.emitExample, cfg.EmitExample)
		})
	}
}

func TestPrintArtifactsAll(t *testing.T) {
	resetGenerateFlags(t)

	result, err := dsl.Build("User email:s", dsl.DefaultConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	GenerateCmd.SetOut(&buf)
	defer GenerateCmd.SetOut(nil)

	require.NoError(t, printArtifacts(GenerateCmd, result))

	out := buf.String()
	assert.Contains(t, out, "export type User = {")
	assert.Contains(t, out, "export interface User {")
	assert.Contains(t, out, "export const UserSchema = z.object({")
	assert.Contains(t, out, `"email": ""`)
}

func TestPrintArtifactsJSON(t *testing.T) {
	resetGenerateFlags(t)
	generateMode = "json"

	result, err := dsl.Build("User email:s", dsl.DefaultConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	GenerateCmd.SetOut(&buf)
	defer GenerateCmd.SetOut(nil)

	require.NoError(t, printArtifacts(GenerateCmd, result))

	var doc dsl.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "User", doc.TypeName)
	assert.NotEmpty(t, doc.TypeText)
}

func TestArtifactFilesNaming(t *testing.T) {
	resetGenerateFlags(t)

	result, err := dsl.Build("API2Response body:s", dsl.DefaultConfig())
	require.NoError(t, err)

	files := artifactFiles(result)

	assert.Contains(t, files, "api2-response.type.ts")
	assert.Contains(t, files, "api2-response.interface.ts")
	assert.Contains(t, files, "api2-response.schema.ts")
	assert.Contains(t, files, "api2-response.example.json")
}

func TestWriteArtifactFiles(t *testing.T) {
	resetGenerateFlags(t)
	generateOut = t.TempDir()

	result, err := dsl.Build("UserProfile email:s", dsl.DefaultConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	GenerateCmd.SetOut(&buf)
	defer GenerateCmd.SetOut(nil)

	require.NoError(t, writeArtifactFiles(GenerateCmd, result))

	data, err := os.ReadFile(filepath.Join(generateOut, "user-profile.type.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "export type UserProfile = {")

	_, err = os.Stat(filepath.Join(generateOut, "user-profile.schema.ts"))
	assert.NoError(t, err)
}

func TestWriteArtifactFilesDryRun(t *testing.T) {
	resetGenerateFlags(t)
	generateOut = t.TempDir()
	generateDryRun = true

	result, err := dsl.Build("User email:s", dsl.DefaultConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	GenerateCmd.SetOut(&buf)
	defer GenerateCmd.SetOut(nil)

	require.NoError(t, writeArtifactFiles(GenerateCmd, result))

	assert.Contains(t, buf.String(), "would write")

	entries, err := os.ReadDir(generateOut)
	require.NoError(t, err)
	assert.Empty(t, entries, "dry run must not write files")
}

func TestReadInputFromFile(t *testing.T) {
	resetGenerateFlags(t)

	path := filepath.Join(t.TempDir(), "user.dsl")
	require.NoError(t, os.WriteFile(path, []byte("User email:s"), 0644))
	generateFile = path

	raw, err := readInput(nil)
	require.NoError(t, err)
	assert.Equal(t, "User email:s", raw)
}

func TestReadInputFromArgs(t *testing.T) {
	resetGenerateFlags(t)

	raw, err := readInput([]string{"User", "email:s", "name:s"})
	require.NoError(t, err)
	assert.Equal(t, "User email:s name:s", raw)
}

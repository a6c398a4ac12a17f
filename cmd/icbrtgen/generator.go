// Copyright 2025 go-icbrt Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

// Kind describes one Go integer type a wrapper pair is generated for.
type Kind struct {
	// GoType is the Go spelling of the type, e.g. "uint16".
	GoType string

	// Signed reports whether negative values are representable.
	Signed bool

	// Bits is the width in bits, or 0 for platform-sized types.
	Bits int
}

// Suffix returns the exported name fragment for the kind: "uint16" -> "Uint16".
func (k Kind) Suffix() string {
	return strings.ToUpper(k.GoType[:1]) + k.GoType[1:]
}

// WidthDoc returns the width with its article, as used in doc comments:
// "an 8-bit", "a 16-bit", "a platform-sized".
func (k Kind) WidthDoc() string {
	switch k.Bits {
	case 0:
		return "a platform-sized"
	case 8:
		return "an 8-bit"
	}
	return fmt.Sprintf("a %d-bit", k.Bits)
}

// SignDoc returns "signed" or "unsigned".
func (k Kind) SignDoc() string {
	if k.Signed {
		return "signed"
	}
	return "unsigned"
}

// DefaultKinds returns every integer kind supported by icbrt.Integers, in
// the order they are emitted.
func DefaultKinds() []Kind {
	return []Kind{
		{GoType: "int", Signed: true},
		{GoType: "int8", Signed: true, Bits: 8},
		{GoType: "int16", Signed: true, Bits: 16},
		{GoType: "int32", Signed: true, Bits: 32},
		{GoType: "int64", Signed: true, Bits: 64},
		{GoType: "uint"},
		{GoType: "uint8", Bits: 8},
		{GoType: "uint16", Bits: 16},
		{GoType: "uint32", Bits: 32},
		{GoType: "uint64", Bits: 64},
		{GoType: "uintptr"},
	}
}

// Generator renders the wrapper file.
type Generator struct {
	OutputFile string
	PackageOut string
	Kinds      []Kind
}

// Run renders and writes the output file.
func (g *Generator) Run() error {
	src, err := g.Render()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(g.OutputFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(g.OutputFile, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", g.OutputFile, err)
	}
	return nil
}

// Render returns the formatted source of the wrapper file.
func (g *Generator) Render() ([]byte, error) {
	if g.PackageOut == "" {
		return nil, fmt.Errorf("package name is required")
	}
	if len(g.Kinds) == 0 {
		return nil, fmt.Errorf("no integer kinds to generate")
	}

	var buf bytes.Buffer
	if err := wrapperTemplate.Execute(&buf, g); err != nil {
		return nil, fmt.Errorf("failed to render template: %w", err)
	}

	out, err := imports.Process(filepath.Base(g.OutputFile), buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w\n%s", err, buf.Bytes())
	}
	return out, nil
}

var wrapperTemplate = template.Must(template.New("wrappers").Parse(`// Code generated by icbrtgen. DO NOT EDIT.

package {{.PackageOut}}
{{range .Kinds}}
// Cbrt{{.Suffix}} returns the integer cube root of v, {{.WidthDoc}} {{.SignDoc}} integer.
{{- if .Signed}}
// It panics if v is negative.
{{- end}}
func Cbrt{{.Suffix}}(v {{.GoType}}) {{.GoType}} {
	return Cbrt(v)
}

// Cbrt{{.Suffix}}Checked is the non-panicking form of Cbrt{{.Suffix}}.
func Cbrt{{.Suffix}}Checked(v {{.GoType}}) ({{.GoType}}, bool) {
	return CbrtChecked(v)
}
{{end}}`))

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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindNames(t *testing.T) {
	tests := []struct {
		kind   Kind
		suffix string
		width  string
		sign   string
	}{
		{Kind{GoType: "int", Signed: true}, "Int", "a platform-sized", "signed"},
		{Kind{GoType: "int8", Signed: true, Bits: 8}, "Int8", "an 8-bit", "signed"},
		{Kind{GoType: "uint16", Bits: 16}, "Uint16", "a 16-bit", "unsigned"},
		{Kind{GoType: "uintptr"}, "Uintptr", "a platform-sized", "unsigned"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.GoType, func(t *testing.T) {
			assert.Equal(t, tt.suffix, tt.kind.Suffix())
			assert.Equal(t, tt.width, tt.kind.WidthDoc())
			assert.Equal(t, tt.sign, tt.kind.SignDoc())
		})
	}
}

func TestRender(t *testing.T) {
	gen := &Generator{OutputFile: "zz_cbrt_types.go", PackageOut: "icbrt", Kinds: DefaultKinds()}
	src, err := gen.Render()
	require.NoError(t, err)

	out := string(src)
	assert.True(t, strings.HasPrefix(out, "// Code generated by icbrtgen. DO NOT EDIT.\n"))
	assert.Contains(t, out, "package icbrt\n")
	for _, k := range DefaultKinds() {
		assert.Contains(t, out, "func Cbrt"+k.Suffix()+"(v "+k.GoType+") "+k.GoType+" {")
		assert.Contains(t, out, "func Cbrt"+k.Suffix()+"Checked(v "+k.GoType+") ("+k.GoType+", bool) {")
	}
	assert.Equal(t, 5, strings.Count(out, "It panics if v is negative."))
}

// The checked-in wrapper file must match what the generator produces.
func TestRender_UpToDate(t *testing.T) {
	path := filepath.Join("..", "..", "icbrt", "zz_cbrt_types.go")
	want, err := os.ReadFile(path)
	require.NoError(t, err)

	gen := &Generator{OutputFile: path, PackageOut: "icbrt", Kinds: DefaultKinds()}
	got, err := gen.Render()
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got), "run go generate ./icbrt")
}

func TestRender_Errors(t *testing.T) {
	_, err := (&Generator{OutputFile: "x.go", Kinds: DefaultKinds()}).Render()
	require.Error(t, err)

	_, err = (&Generator{OutputFile: "x.go", PackageOut: "icbrt"}).Render()
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sub", "wrappers.go")
	gen := &Generator{
		OutputFile: out,
		PackageOut: "roots",
		Kinds:      []Kind{{GoType: "uint32", Bits: 32}},
	}
	require.NoError(t, gen.Run())

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package roots")
	assert.Contains(t, string(src), "func CbrtUint32(v uint32) uint32 {")
	assert.NotContains(t, string(src), "CbrtInt8")
}

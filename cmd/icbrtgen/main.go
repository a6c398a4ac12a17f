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

// Command icbrtgen generates the per-type integer cube root wrappers of package icbrt.
//
// Usage:
//
//	icbrtgen -output zz_cbrt_types.go -pkg icbrt
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/icbrtgen -output zz_cbrt_types.go
//
// For every Go integer kind (int, int8, ..., uint64, uintptr) the generator
// emits a CbrtX and CbrtXChecked pair bound to the generic implementation, so
// callers that cannot use type parameters still get one concrete function per
// width and signedness.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "zz_cbrt_types.go", "Output Go file")
	packageOut = flag.String("pkg", "icbrt", "Output package name")
)

func main() {
	flag.Parse()

	if *outputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -output flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		OutputFile: *outputFile,
		PackageOut: *packageOut,
		Kinds:      DefaultKinds(),
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %d wrappers in %s\n", 2*len(gen.Kinds), *outputFile)
}

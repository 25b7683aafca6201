// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package golden provides a mechanism for golden-file tests: table-driven
// tests where the "table" is in the filesystem.
package golden

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a test data corpus: a directory of test case files,
// each with golden output files next to it.
type Corpus struct {
	// The root of the test data directory, relative to the test's working
	// directory.
	Root string

	// An environment variable holding a glob; test cases matching it run
	// in "refresh" mode, regenerating their golden outputs instead of
	// comparing against them. Refreshed tests fail, so refresh mode cannot
	// accidentally pass CI.
	Refresh string

	// The file extension (without a dot) of files that define a test case,
	// e.g. "yaml".
	Extension string

	// The outputs of each test case, found at <case>.<output extension>.
	// A missing output file means the output is expected to be empty.
	Outputs []Output
}

// Output is one expected output of a test case.
type Output struct {
	// The extension of the golden file for this output, e.g. "txt".
	Extension string
}

// Run executes the corpus. test is called once per test case and returns
// one string per entry in [Corpus.Outputs].
func (c Corpus) Run(t *testing.T, test func(t *testing.T, path, text string) []string) {
	var cases []string
	err := filepath.WalkDir(c.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.TrimPrefix(path.Ext(p), ".") == c.Extension {
			cases = append(cases, p)
		}
		return nil
	})
	if err != nil {
		t.Fatal("golden: error while walking testdata:", err)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: invalid glob %q in $%s", refresh, c.Refresh)
		}
	}
	if refresh != "" {
		t.Logf("golden: refreshing goldens because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, casePath := range cases {
		name, _ := filepath.Rel(c.Root, casePath)
		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(casePath)
			if err != nil {
				t.Fatalf("golden: error while loading input %q: %v", casePath, err)
			}

			results := test(t, name, string(text))
			if len(results) != len(c.Outputs) {
				t.Fatalf("golden: test returned %d outputs, want %d", len(results), len(c.Outputs))
			}

			refreshThis, _ := doublestar.Match(refresh, name)
			for i, output := range c.Outputs {
				goldenPath := fmt.Sprint(casePath, ".", output.Extension)

				if refreshThis {
					if err := writeOrRemove(goldenPath, results[i]); err != nil {
						t.Errorf("golden: error while refreshing %q: %v", goldenPath, err)
					}
					continue
				}

				want, err := os.ReadFile(goldenPath)
				if err != nil && !errors.Is(err, fs.ErrNotExist) {
					t.Errorf("golden: error while loading output %q: %v", goldenPath, err)
					continue
				}

				if diff := diff(results[i], string(want)); diff != "" {
					t.Errorf("output mismatch for %q:\n%s", goldenPath, diff)
				}
			}
		})
	}
}

func writeOrRemove(path, text string) error {
	if text == "" {
		err := os.Remove(path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.WriteFile(path, []byte(text), 0o666)
}

func diff(got, want string) string {
	if got == want {
		return ""
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return text
}

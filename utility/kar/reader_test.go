// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package kar_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/exp/mmap"

	"github.com/devblok/trigl/utility/kar"
)

func writeArchiveFile(t *testing.T, files map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "opentest.kar")
	if err := ioutil.WriteFile(path, buildArchive(t, files), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpenFile(t *testing.T) {
	path := writeArchiveFile(t, map[string]string{
		"test/test1.txt": "this is a test",
		"test/test2.txt": "this is another test",
	})

	r, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	ar, err := kar.Open(r)
	if err != nil {
		t.Fatal(err)
	}

	if f, err := ar.ReadAll("test/test2.txt"); err != nil {
		t.Error(err)
	} else if string(f) != "this is another test" {
		t.Errorf("result is not expected value: %s", f)
	}
}

func TestOpenmmap(t *testing.T) {
	path := writeArchiveFile(t, map[string]string{
		"test/test1.txt": "this is a test",
		"test/test2.txt": strings.Repeat("this is another test", 1000),
	})

	r, err := mmap.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	ar, err := kar.Open(r)
	if err != nil {
		t.Fatal(err)
	}

	if f, err := ar.ReadAll("test/test1.txt"); err != nil {
		t.Error(err)
	} else if string(f) != "this is a test" {
		t.Errorf("result is not expected value: %s", f)
	}

	if f, err := ar.ReadAll("test/test2.txt"); err != nil {
		t.Error(err)
	} else if string(f) != strings.Repeat("this is another test", 1000) {
		t.Error("result is not expected value")
	}
}

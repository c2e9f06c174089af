// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/mmap"

	"github.com/devblok/trigl/utility/kar"
)

func init() {
	currentUserName = "unknown"
	if u, err := user.Current(); err == nil {
		currentUserName = u.Name
	}
}

var (
	currentUserName string
	author          = flag.String("author", "", "Set the author of the package when compressing")
	version         = flag.Int64("version", 1, "Archive version number to create it with")
	extract         = flag.String("e", "", "Extract the archive given")
	compress        = flag.String("c", "", "Compress the given file/folder")
	list            = flag.String("l", "", "List the contents of the archive given")
	dstFile         = flag.String("f", "out.kar", "Destination file when compressing")
	dstDir          = flag.String("o", ".", "Destination folder when extracting")
	silent          = flag.Bool("s", false, "Silent")
)

func main() {
	flag.Parse()
	if *silent {
		log.SetLevel(log.WarnLevel)
	}

	ops := 0
	for _, op := range []string{*extract, *compress, *list} {
		if op != "" {
			ops++
		}
	}
	if ops > 1 {
		log.Fatal("only one operation at a time")
	}

	var err error
	switch {
	case *compress != "":
		err = compressFiles(*compress, *dstFile)
	case *extract != "":
		err = extractFiles(*extract, *dstDir)
	case *list != "":
		err = listFiles(*list)
	default:
		flag.PrintDefaults()
	}
	if err != nil {
		log.WithError(err).Fatal("kar failed")
	}
}

func compressFiles(src, dst string) error {
	if _, err := os.Stat(dst); err == nil {
		return errors.New("destination file exists, will not overwrite")
	}

	var filesToCompress []string
	err := filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		filesToCompress = append(filesToCompress, path)
		return nil
	})
	if err != nil {
		return err
	}

	name := *author
	if name == "" {
		name = currentUserName
	}
	karBuilder, err := kar.NewBuilder(kar.Header{
		Author:      name,
		DateCreated: time.Now().Unix(),
		Version:     *version,
	})
	if err != nil {
		return err
	}
	defer karBuilder.Close()

	for _, ftc := range filesToCompress {
		entry, err := filepath.Rel(src, ftc)
		if err != nil || entry == "." {
			entry = filepath.Base(ftc)
		}
		if err := addFile(karBuilder, filepath.ToSlash(entry), ftc); err != nil {
			return err
		}
		log.WithField("file", entry).Info("Added")
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	n, err := karBuilder.WriteTo(out)
	if err != nil {
		out.Close()
		return err
	}
	log.WithField("file", dst).WithField("bytes", n).WithField("entries", karBuilder.Len()).Info("Archive written")
	return out.Close()
}

func addFile(b *kar.Builder, entry, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return b.Add(entry, f)
}

func openArchive(path string) (*kar.Archive, io.Closer, error) {
	ra, err := mmap.Open(path)
	if err != nil {
		return nil, nil, err
	}
	archive, err := kar.Open(ra)
	if err != nil {
		ra.Close()
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return archive, ra, nil
}

func extractFiles(src, dir string) error {
	archive, closer, err := openArchive(src)
	if err != nil {
		return err
	}
	defer closer.Close()

	for _, name := range archive.Names() {
		rel := filepath.Clean(filepath.FromSlash(name))
		if filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return fmt.Errorf("%s: entry escapes the destination folder", name)
		}
		dst := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return err
		}
		data, err := archive.ReadAll(name)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dst, data, 0644); err != nil {
			return err
		}
		log.WithField("file", dst).Info("Extracted")
	}
	return nil
}

func listFiles(src string) error {
	archive, closer, err := openArchive(src)
	if err != nil {
		return err
	}
	defer closer.Close()

	header := archive.Header()
	fmt.Printf("author: %s\ncreated: %s\nversion: %d\n",
		header.Author, time.Unix(header.DateCreated, 0).Format(time.RFC3339), header.Version)
	for _, e := range header.Index {
		fmt.Printf("%10d %10d %s\n", e.Size, e.CompressedSize, e.Name)
	}
	return nil
}

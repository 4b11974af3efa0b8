package lib

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
)

// OrganizeDirEntry counts the recordings moved into one directory.
type OrganizeDirEntry struct {
	RelativeDir string
	Count       int
}

type OrganizeResult struct {
	Dirs []OrganizeDirEntry
}

// OrganizeOptions configures Organize.
type OrganizeOptions struct {
	// Base is the recording output directory holding the loose recordings.
	Base       string
	// Name is the name token for every recording.
	Name       string
	Template   Template
	Extensions []string
	// Keep copies the recordings instead of moving them.
	Keep       bool
	// Progress receives the progress bar; nil means stderr.
	Progress   io.Writer
}

type recordingFile struct {
	path    string
	size    int64
	modTime time.Time
}

// Organize files finished recordings lying directly in opts.Base into the
// template's directories, dating each by its modification time.
// It must not be run while a recording into opts.Base is in progress.
func Organize(ctx context.Context, opts OrganizeOptions) (OrganizeResult, error) {
	files, totalSize, err := listRecordings(opts.Base, opts.Extensions)
	if err != nil {
		return OrganizeResult{}, fmt.Errorf("failed to list recordings: %w", err)
	}
	if len(files) == 0 {
		logger.Info("No recordings found", slog.String("base", opts.Base))
		return OrganizeResult{}, nil
	}

	progress := opts.Progress
	if progress == nil {
		progress = os.Stderr
	}
	bar := newOrganizeBar(progress, totalSize, opts.Keep)
	res, err := organizeFiles(ctx, opts, files, bar)
	if err != nil {
		return OrganizeResult{}, err
	}
	if err := bar.Close(); err != nil {
		logger.Warn("Failed to close progress bar", slog.String("error", err.Error()))
	}
	return res, nil
}

// listRecordings returns the files directly in dir whose extension is in
// exts, and the sum of their sizes.
func listRecordings(dir string, exts []string) ([]recordingFile, int64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, err
	}
	var files []recordingFile
	var totalSize int64
	for _, dirEnt := range entries {
		if dirEnt.IsDir() || !hasExtension(dirEnt.Name(), exts) {
			continue
		}
		info, err := dirEnt.Info()
		if err != nil {
			return nil, 0, fmt.Errorf("failed to Info() %s: %w", dirEnt.Name(), err)
		}
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, recordingFile{
			path:    filepath.Join(dir, dirEnt.Name()),
			size:    info.Size(),
			modTime: info.ModTime(),
		})
		totalSize += info.Size()
	}
	return files, totalSize, nil
}

func hasExtension(name string, exts []string) bool {
	ext := filepath.Ext(name)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

func organizeFiles(ctx context.Context, opts OrganizeOptions, files []recordingFile, bar *progressbar.ProgressBar) (OrganizeResult, error) {
	counts := make(map[string]int)
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return OrganizeResult{}, err
		}

		nc := NamingContext{Name: opts.Name, Date: DateToken(f.modTime)}
		rp, err := opts.Template.Resolve(opts.Base, nc)
		if err != nil {
			return OrganizeResult{}, fmt.Errorf("failed to resolve dir for %s: %w", f.path, err)
		}
		if err := EnsureDirectory(rp.Final); err != nil {
			return OrganizeResult{}, err
		}

		target := filepath.Join(rp.Final, filepath.Base(f.path))
		if _, err := os.Lstat(target); err == nil {
			return OrganizeResult{}, fmt.Errorf("refusing to overwrite %s", target)
		}

		if opts.Keep {
			if err := copyFile(f.path, target, f.modTime, bar); err != nil {
				return OrganizeResult{}, err
			}
		} else {
			// The target is below Base, so this never crosses filesystems.
			if err := os.Rename(f.path, target); err != nil {
				return OrganizeResult{}, fmt.Errorf("failed to move %s: %w", f.path, err)
			}
			if bar != nil {
				_ = bar.Add64(f.size)
			}
		}
		logger.Debug("Filed recording", slog.String("src", f.path), slog.String("dst", target))
		counts[rp.Suffix]++
	}

	var res OrganizeResult
	for dir, count := range counts {
		res.Dirs = append(res.Dirs, OrganizeDirEntry{RelativeDir: dir, Count: count})
	}
	sort.Slice(res.Dirs, func(i, j int) bool {
		return res.Dirs[i].RelativeDir < res.Dirs[j].RelativeDir
	})
	return res, nil
}

// copyFile creates a copy of src at dstFinal.
// It writes the copy to a temporary file first and then renames it to dstFinal.
// It shares its progress via bar.
func copyFile(src, dstFinal string, modTime time.Time, bar *progressbar.ProgressBar) error {
	dstTmp := dstFinal + ".tmp"

	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstTmpFile, err := os.Create(dstTmp)
	if err != nil {
		return err
	}
	defer func() {
		if dstTmpFile != nil {
			dstTmpFile.Close()
			os.Remove(dstTmp)
		}
	}()

	var w io.Writer = dstTmpFile
	if bar != nil {
		w = io.MultiWriter(dstTmpFile, bar)
	}
	if _, err := io.Copy(w, srcFile); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", src, dstTmp, err)
	}

	if err := dstTmpFile.Close(); err != nil {
		dstTmpFile = nil
		os.Remove(dstTmp)
		return fmt.Errorf("failed to close dst tmp file %s: %w", dstTmp, err)
	}
	dstTmpFile = nil

	if err := os.Rename(dstTmp, dstFinal); err != nil {
		return fmt.Errorf("failed to rename %s: %w", dstTmp, err)
	}
	return os.Chtimes(dstFinal, modTime, modTime)
}

package utils

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var sourceDir string

func init() {
	_, file, _, _ := runtime.Caller(0)
	// compatible solution to get the module source directory with various operating systems
	sourceDir = filepath.ToSlash(filepath.Dir(filepath.Dir(file))) + "/"
}

// FileWithLineNum return the file name and line number of the current file
func FileWithLineNum() string {
	// the second caller usually from module internal, so set i start from 2
	for i := 2; i < 15; i++ {
		_, file, line, ok := runtime.Caller(i)
		if ok && (!strings.HasPrefix(file, sourceDir) || strings.HasSuffix(file, "_test.go")) {
			return file + ":" + strconv.FormatInt(int64(line), 10)
		}
	}
	return ""
}

// CallerFrame returns the first caller frame outside the module, so log
// records can point at the caller instead of module internals.
func CallerFrame() runtime.Frame {
	pcs := make([]uintptr, 15)
	depth := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:depth])
	for frame, more := frames.Next(); ; frame, more = frames.Next() {
		if !strings.HasPrefix(frame.File, sourceDir) || strings.HasSuffix(frame.File, "_test.go") {
			return frame
		}
		if !more {
			return frame
		}
	}
}

// ToDBName converts a Go field name to its snake_case database form.
func ToDBName(name string) string {
	var builder strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				builder.WriteRune('_')
			}
			builder.WriteRune(unicode.ToLower(r))
		} else {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

var fieldCaser = cases.Title(language.Und, cases.NoLower)

// ToFieldName converts a snake_case database name back to a Go field name.
func ToFieldName(name string) string {
	parts := strings.Split(name, "_")
	for i, part := range parts {
		parts[i] = fieldCaser.String(part)
	}
	return strings.Join(parts, "")
}

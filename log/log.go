package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var (
	WarningLog = log.New(io.Discard, "", 0)
	InfoLog    = log.New(io.Discard, "", 0)
	ErrorLog   = log.New(io.Discard, "", 0)
)

var logFileName = filepath.Join(os.TempDir(), "color-palette.log")

var globalLogFile *os.File

// Initialize should be called once at the beginning of the program to set up
// logging. defer Close() after calling this function. Logs go to a file in the
// OS temp directory; with verbose set they are mirrored to stderr as well.
func Initialize(verbose bool) {
	f, err := os.OpenFile(logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o666)
	if err != nil {
		panic(fmt.Sprintf("could not open log file: %s", err))
	}

	var out io.Writer = f
	if verbose {
		out = io.MultiWriter(f, os.Stderr)
	}

	flags := log.Ldate | log.Ltime | log.Lshortfile
	InfoLog = log.New(out, "INFO: ", flags)
	WarningLog = log.New(out, "WARNING: ", flags)
	ErrorLog = log.New(out, "ERROR: ", flags)

	globalLogFile = f
}

// Close flushes the log file. Safe to call without Initialize.
func Close() {
	if globalLogFile == nil {
		return
	}
	_ = globalLogFile.Close()
	globalLogFile = nil
}

// FileName reports where Initialize writes.
func FileName() string {
	return logFileName
}

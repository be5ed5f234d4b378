package logutils

import (
	"strconv"
	"strings"
)

// ShortCallerFormatter trims the caller down to the file name and line,
// e.g. "/src/internal/rest/api/enigma.go:42" becomes "enigma.go:42".
func ShortCallerFormatter(_ uintptr, file string, line int) string {
	if idx := strings.LastIndexByte(file, '/'); idx >= 0 {
		file = file[idx+1:]
	}
	return file + ":" + strconv.Itoa(line)
}

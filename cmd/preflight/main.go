// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	addr := strings.TrimSpace(os.Getenv("ADDR"))
	dataFile := strings.TrimSpace(os.Getenv("DATA_FILE"))
	logDir := strings.TrimSpace(os.Getenv("LOG_DIR"))
	sweep := strings.TrimSpace(os.Getenv("SWEEP_INTERVAL_MS"))

	if addr == "" {
		warn("ADDR is empty; the API will bind its localhost default.")
	} else {
		ok("ADDR=" + addr)
	}

	if dataFile == "" {
		warn("DATA_FILE empty — registry will use the default data/links.json path.")
	} else {
		dir := filepath.Dir(dataFile)
		if st, err := os.Stat(dir); err == nil && st.IsDir() {
			ok("DATA_FILE dir exists: " + dir)
		} else {
			warn("DATA_FILE dir " + dir + " missing; it will be created on first save.")
		}
	}

	if logDir == "" {
		warn("LOG_DIR empty; logs default to ./logs.")
	} else {
		ok("LOG_DIR=" + logDir)
	}

	if sweep != "" {
		if ms, err := strconv.Atoi(sweep); err != nil || ms < 1000 {
			fail("SWEEP_INTERVAL_MS must be a number >= 1000 (got " + sweep + ").")
		} else {
			ok("SWEEP_INTERVAL_MS=" + sweep)
		}
	}

	ok("preflight passed")
}

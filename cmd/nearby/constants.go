package main

import "time"

// DefaultWait bounds how long `search` waits for enrichment before printing.
const DefaultWait = 30 * time.Second

// Valid output formats for `search`.
var validFormats = []string{"text", "json", "csv", "markdown"}

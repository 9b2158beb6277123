package db

import _ "embed"

// Schema holds the DDL applied at startup.
//
//go:embed schema.sql
var Schema string

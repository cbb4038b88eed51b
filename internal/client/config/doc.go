// Package config loads runtime configuration for the FlowGate CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. Environment: FLOWGATE_API_URL, FLOWGATE_PROXY_URL.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   backend base URL
//	-p string   proxy URL shown in usage hints
//	-d string   session database path
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (text, json)
//
// # File schema
//
//	{
//	  "server_url": "http://localhost:8000",
//	  "proxy_url": "http://localhost:8080/proxy",
//	  "session_db_path": "session.db",
//	  "log_level": "warn",
//	  "log_format": "text"
//	}
//
// The YAML form uses the same keys. Absent keys leave earlier values untouched.
package config

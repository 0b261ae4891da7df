// Package file persists edi settings as a TOML file (~/.edi/config.toml).
package file

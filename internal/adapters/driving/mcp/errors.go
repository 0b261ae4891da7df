// Package mcp provides an MCP (Model Context Protocol) server adapter for the edi CLI.
// It lets AI assistants classify EDI documents and convert them to and from
// their structured JSON form.
package mcp

import "errors"

var (
	// ErrMissingConversionService is returned when the conversion service is not provided.
	ErrMissingConversionService = errors.New("mcp: conversion service is required")

	// ErrMissingCatalog is returned when the capability catalog is not provided.
	ErrMissingCatalog = errors.New("mcp: capability catalog is required")
)

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build mage

// Package main provides build targets for the wardrobe project using Mage.
//
// Usage:
//
//	mage build          Compile wardrobe binary to bin/
//	mage test:all       Run all tests
//	mage test:unit      Run tests without the SQLite backend
//	mage test:sqlite    Run the SQLite backend tests
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install wardrobe to GOPATH/bin
//	mage demo           Build and run the demonstration
//	mage stats          Print Go LOC for production and test code
package main

const (
	binGo      = "go"
	binaryName = "wardrobe"
	binaryDir  = "bin"
	cmdDir     = "./cmd/wardrobe"
	modulePath = "github.com/mesh-intelligence/wardrobe"
)

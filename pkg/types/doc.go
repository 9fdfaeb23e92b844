// Package types defines the Wardrobe interface, the clothing entity types,
// backend configuration, and the standard errors shared by every backend.
package types

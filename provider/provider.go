// Package provider defines the machine-translation provider interface
// and implementations.
package provider

import "github.com/ZaguanLabs/goweft"

// Provider is the interface for machine-translation backends.
// This is an alias to the main package interface for convenience.
type Provider = goweft.Provider

// TranslateRequest is an alias to the main package type.
type TranslateRequest = goweft.TranslateRequest

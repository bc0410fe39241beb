package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidatePackageName validates a package name for safety and correctness.
// It rejects names that could never appear in a lock file:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - Maximum length of 256 characters
func ValidatePackageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "package name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "package name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "package name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidInput, "package name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// pythonPackageNameRegex matches valid Python package names (PEP 508).
var pythonPackageNameRegex = regexp.MustCompile(`^([A-Za-z0-9]|[A-Za-z0-9][A-Za-z0-9._-]*[A-Za-z0-9])$`)

// ValidatePythonPackageName validates a Python package name per PEP 508.
func ValidatePythonPackageName(name string) error {
	if err := ValidatePackageName(name); err != nil {
		return err
	}

	if !pythonPackageNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid Python package name: %q", name)
	}

	return nil
}

// ValidateWorkspacePattern validates a workspace member glob taken from a
// manifest before it is expanded against the filesystem.
//
// Validation rules:
//   - Pattern cannot be empty
//   - No null bytes or control characters
//   - No absolute paths (must be relative to the manifest directory)
//   - No backslashes (Windows-style paths)
func ValidateWorkspacePattern(pattern string) error {
	if pattern == "" {
		return New(ErrCodeInvalidManifest, "workspace pattern cannot be empty")
	}

	for _, r := range pattern {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidManifest, "workspace pattern contains invalid characters")
		}
	}

	if strings.HasPrefix(pattern, "/") {
		return New(ErrCodeInvalidManifest, "workspace pattern must be relative: %q", pattern)
	}

	if strings.Contains(pattern, "\\") {
		return New(ErrCodeInvalidManifest, "workspace pattern cannot contain backslashes: %q", pattern)
	}

	return nil
}

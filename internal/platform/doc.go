package platform

// Package platform contains OS integration glue: home and directory helpers, existence
// checks used by the overwrite prompt, and revealing saved files in the file manager.

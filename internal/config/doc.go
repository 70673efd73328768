package config

// Package config persists user settings (encoder backend, error correction, image size,
// language, initial save directory) in Fyne preferences.

package model

// Package model defines the transient state shared by the generator service and the UI:
// status severities and message keys, the color palette, and rendered snapshots.

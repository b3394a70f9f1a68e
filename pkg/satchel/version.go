// Package satchel holds project-wide metadata.
package satchel

// Version is the current satchel release.
const Version = "0.1.0"

// Package types defines the Task and Note entities, timestamp helpers, and
// standard errors for the satchel task/note manager.
package types

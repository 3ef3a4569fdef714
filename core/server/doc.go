// Package server holds configuration for the HTTP batch trigger.
//
// The trigger itself lives in the serve command; this package only
// defines its configuration section so it participates in the
// struct-tag default binding done by core/config.
package server

// Package api provides the HTTP handlers of the wellbeing API along with
// request/response models and error-to-status mapping.
package api

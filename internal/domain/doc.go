// Package domain defines the core business entities of the wellbeing API:
// users, mood check-ins, journals, and journal pages, along with their
// validation rules and common domain errors.
package domain

package domain

import "errors"

var (
	ErrRegulationNotFound  = errors.New("regulation not found")
	ErrUpdateNotFound      = errors.New("update not found")
	ErrSavedSearchNotFound = errors.New("saved search not found")
	ErrSavedSearchExists   = errors.New("a saved search with this name already exists")
	ErrReminderNotFound    = errors.New("reminder not found")
	ErrLocationNotAllowed  = errors.New("location is not valid for the jurisdiction level")
)

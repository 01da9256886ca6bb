package repository

import "notion-gcal-sync/internal/model"

type InsertEventOptions struct {
	Event model.CachedEvent
}

type UpdateEventOptions struct {
	ID             string
	Title          string
	StartDate      string
	EndDate        string
	TimeZone       string
	LastEditedTime string
}

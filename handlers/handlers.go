package handlers

import (
	"go.uber.org/zap"

	"hallboard/actions"
	"hallboard/calendar"
	"hallboard/tasks"
	"hallboard/timesync"
	"hallboard/types"
	"hallboard/weather"
)

type Handlers struct {
	Logger   *zap.Logger
	Calendar *calendar.Calendar
	Store    *actions.Store
	Weather  *weather.Client
	Time     *timesync.Client
	Tasks    *tasks.Client
	Sources  []types.Source
}

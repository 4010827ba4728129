package main

type calendarConfig struct {
	TodoistURL  string
	PersonalURL string
	HolidaysURL string
}

type weatherConfig struct {
	APIKey string
	Lat    string
	Lon    string
	Units  string
}

type timeConfig struct {
	Endpoints []string
}

type todoistConfig struct {
	Token string
}

var appConfig = struct {
	AppName   string
	Port      string
	Debug     bool
	StaticDir string

	Calendar calendarConfig
	Weather  weatherConfig
	Time     timeConfig
	Todoist  todoistConfig
}{
	AppName:   "Hallboard Dashboard Server",
	Port:      "8080",
	StaticDir: "./static",
	Weather:   weatherConfig{Units: "metric"},
}

package main

import "github.com/cleitonmarx/symbiont-query-context/internal/app"

func main() {
	err := app.NewQueryContextApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}

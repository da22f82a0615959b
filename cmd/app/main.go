package main

import (
	"github.com/humanbelnik/cineverse/internal/app"
	"github.com/humanbelnik/cineverse/internal/config"
)

// @title CineVerse API
// @version 1.0
// @description Movie discovery and social backend: watch parties, favorites, search history, notifications, recommendations and the TMDB catalog.
// @BasePath /api
func main() {
	app.Go(config.Load())
}

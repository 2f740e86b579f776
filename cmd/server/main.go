package main

import (
	"github.com/eleven-am/uxlens/internal/bootstrap"
)

// @title uxlens API
// @version 1.0.0
// @description Screenshot UX and localization review service

// @BasePath /v1

func main() {
	bootstrap.Run()
}

package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"

	"blockdrop/internal/app"
	"blockdrop/internal/config"
	"blockdrop/internal/input"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file (defaults apply if empty)")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("settings: %v", err)
	}
	if err := settings.Validate(); err != nil {
		log.Fatalf("settings: %v", err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw init: %v", err)
	}
	closer.Bind(glfw.Terminate)
	defer closer.Close()

	window, err := setupWindow(settings)
	if err != nil {
		closer.Fatalln("window:", err)
	}

	im := input.NewManager()
	session, err := app.NewSession(window, settings, im)
	if err != nil {
		closer.Fatalln("session:", err)
	}
	closer.Bind(session.Dispose)

	setupCallbacks(window, session, im)

	log.Printf("blockdrop: grid %v, window %dx%d", settings.GridSize, settings.WindowWidth, settings.WindowHeight)
	session.Run()
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/workbench/internal/config"
	"github.com/ytget/workbench/internal/logging"
	"github.com/ytget/workbench/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.workbench"
	LogFile = "workbench.log"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewDesktopTheme())
	myApp.SetIcon(ui.LoadAppIcon())

	settings := config.NewSettings(myApp)

	// Log to stderr and to a file in the app storage when it is writable
	var out io.Writer = os.Stderr
	logPath := filepath.Join(myApp.Storage().RootURI().Path(), LogFile)
	if f, err := logging.OpenFile(logPath); err != nil {
		fmt.Fprintf(os.Stderr, "log file unavailable: %v\n", err)
	} else {
		defer f.Close()
		out = io.MultiWriter(os.Stderr, f)
	}
	logger := logging.New(out, settings.GetLogLevel())
	log := logging.Component(logger, "main")
	log.WithField("version", version).Info("Workbench OS starting")

	myWindow := myApp.NewWindow(AppID)
	myWindow.Resize(fyne.NewSize(ui.DesktopWidth, ui.DesktopHeight))
	myWindow.SetMaster()

	// Create and setup the desktop
	desktop := ui.NewDesktop(myApp, myWindow, settings, logging.Component(logger, "ui"), version)
	desktop.Start()

	// Show and run
	myWindow.ShowAndRun()
	log.Info("Workbench OS stopped")
}

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"github.com/qrstudio/qr-studio/internal/config"
	"github.com/qrstudio/qr-studio/internal/export"
	"github.com/qrstudio/qr-studio/internal/generator"
	"github.com/qrstudio/qr-studio/internal/logging"
	"github.com/qrstudio/qr-studio/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID    = "com.qrstudio.qr-studio"
	AppName  = "QR Code Generator"
	LogLevel = "info"
)

func main() {
	logging.Setup(LogLevel, nil)
	logrus.WithField("version", version).Infof("%s starting", AppName)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewStudioTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	myWindow.CenterOnScreen()

	// A missing icon only costs the decoration
	if icon, err := ui.LoadIconResource(); err == nil {
		myWindow.SetIcon(icon)
	} else {
		logrus.WithError(err).Debug("window icon not loaded")
	}

	// Initialize services
	settings := config.NewSettings(myApp)
	generatorSvc := generator.NewService(settings.NewEncoder(), export.NewSystemClipboard(), generator.Options{
		Size:      settings.GetImageSize(),
		Directory: settings.GetSaveDirectory(),
	})

	// Create and setup UI
	ui.NewRootUI(myWindow, settings, generatorSvc, ui.NewNativeChooser())

	// Show and run
	myWindow.ShowAndRun()
}

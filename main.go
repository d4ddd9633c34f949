package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/zenchantlive/SpeedTake/internal/config"
	"github.com/zenchantlive/SpeedTake/internal/extract"
	"github.com/zenchantlive/SpeedTake/internal/resolve"
	"github.com/zenchantlive/SpeedTake/internal/transcode"
	"github.com/zenchantlive/SpeedTake/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.zenchantlive.speedtake"
	AppName = "SpeedTake Audio Extractor"

	WindowWidth  = 700
	WindowHeight = 650
)

func main() {
	fmt.Printf("SpeedTake v%s starting...\n", version)

	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	controller := extract.NewService(resolve.NewService(), transcode.NewService())
	settings := config.NewSettings(myApp)

	ui.NewRootUI(myWindow, controller, settings)

	myWindow.ShowAndRun()
}

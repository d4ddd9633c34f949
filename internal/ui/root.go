package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/zenchantlive/SpeedTake/internal/config"
	"github.com/zenchantlive/SpeedTake/internal/extract"
	"github.com/zenchantlive/SpeedTake/internal/model"
	"github.com/zenchantlive/SpeedTake/internal/platform"
)

// UI labels
const (
	LabelAddFiles    = "Add Files"
	LabelAddFolder   = "Add Folder"
	LabelAddURL      = "Add URL"
	LabelClearList   = "Clear List"
	LabelExtract     = "Extract Audio"
	LabelSameAsInput = "Same folder as source"
	StatusReady      = "Ready"
)

// RootUI represents the main UI structure
type RootUI struct {
	window     fyne.Window
	controller *extract.Service
	settings   *config.Settings

	items       []*model.QueueItem
	queueList   *widget.List
	urlEntry    *widget.Entry
	formatRadio *widget.RadioGroup
	folderLabel *widget.Label
	progressBar *widget.ProgressBar
	statusLabel *widget.Label

	addFilesBtn  *widget.Button
	addFolderBtn *widget.Button
	addURLBtn    *widget.Button
	clearBtn     *widget.Button
	extractBtn   *widget.Button
}

// NewRootUI creates the main UI over the given controller and restores the
// persisted settings into it.
func NewRootUI(window fyne.Window, controller *extract.Service, settings *config.Settings) *RootUI {
	ui := &RootUI{
		window:     window,
		controller: controller,
		settings:   settings,
	}

	if err := controller.SetOutputFormat(settings.GetOutputFormat().String()); err != nil {
		log.Printf("Failed to restore output format: %v", err)
	}
	controller.SetOutputFolder(settings.GetOutputFolder())

	ui.setupUI()
	ui.checkFFmpeg()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.queueList = widget.NewList(
		func() int {
			return len(ui.items)
		},
		func() fyne.CanvasObject {
			name := widget.NewLabel("file name")
			name.Truncation = fyne.TextTruncateEllipsis
			status := widget.NewLabel(model.ItemStatusQueued.String())
			return container.NewBorder(nil, nil, nil, status, name)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(ui.items) {
				return
			}
			item := ui.items[id]
			row := obj.(*fyne.Container)
			row.Objects[0].(*widget.Label).SetText(item.DisplayName())
			row.Objects[1].(*widget.Label).SetText(item.Status.String())
		},
	)

	ui.addFilesBtn = widget.NewButton(LabelAddFiles, ui.onAddFiles)
	ui.addFolderBtn = widget.NewButton(LabelAddFolder, ui.onAddFolder)
	ui.clearBtn = widget.NewButton(LabelClearList, ui.onClear)

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder("https://www.youtube.com/watch?v=...")
	ui.urlEntry.OnSubmitted = func(string) { ui.onAddURL() }
	ui.addURLBtn = widget.NewButton(LabelAddURL, ui.onAddURL)

	ui.formatRadio = widget.NewRadioGroup(formatNames(), ui.onFormatChanged)
	ui.formatRadio.Horizontal = true
	ui.formatRadio.SetSelected(ui.controller.OutputFormat().String())

	ui.folderLabel = widget.NewLabel(folderText(ui.controller.OutputFolder()))
	browseBtn := widget.NewButton("Browse...", ui.onBrowseFolder)
	resetBtn := widget.NewButton("Reset", func() { ui.setOutputFolder("") })

	ui.extractBtn = widget.NewButton(LabelExtract, ui.onExtract)
	ui.extractBtn.Importance = widget.HighImportance

	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Hide()
	ui.statusLabel = widget.NewLabel(StatusReady)

	queueButtons := container.NewHBox(ui.addFilesBtn, ui.addFolderBtn, ui.clearBtn)
	urlRow := container.NewBorder(nil, nil, nil, ui.addURLBtn, ui.urlEntry)
	folderRow := container.NewBorder(nil, nil, widget.NewLabel("Output folder:"), container.NewHBox(browseBtn, resetBtn), ui.folderLabel)

	top := container.NewVBox(queueButtons, urlRow)
	bottom := container.NewVBox(
		widget.NewSeparator(),
		ui.formatRadio,
		folderRow,
		ui.extractBtn,
		ui.progressBar,
		ui.statusLabel,
	)

	ui.window.SetContent(container.NewBorder(top, bottom, nil, nil, ui.queueList))
}

// refreshQueue re-reads the controller's queue and repaints the list.
func (ui *RootUI) refreshQueue() {
	ui.items = ui.controller.Items()
	ui.queueList.Refresh()
}

// checkFFmpeg probes for the transcoder once at startup so the user learns
// about a missing binary before queueing work.
func (ui *RootUI) checkFFmpeg() {
	go func() {
		if err := ui.controller.CheckTranscoderAvailable(context.Background()); err != nil {
			fyne.Do(func() {
				dialog.ShowError(fmt.Errorf("ffmpeg was not found next to the app or on PATH.\nInstall ffmpeg to extract audio."), ui.window)
				ui.statusLabel.SetText("ffmpeg not found")
			})
		}
	}()
}

func (ui *RootUI) onAddFiles() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()
		if _, err := ui.controller.AddLocalFiles(path); err != nil {
			ui.showError(err)
			return
		}
		ui.refreshQueue()
	}, ui.window)
	fileDialog.SetFilter(storage.NewExtensionFileFilter(extract.VideoExtensions()))
	fileDialog.Show()
}

func (ui *RootUI) onAddFolder() {
	dialog.ShowFolderOpen(func(list fyne.ListableURI, err error) {
		if err != nil || list == nil {
			return
		}
		added, discovered, err := ui.controller.AddFolder(list.Path())
		if err != nil {
			ui.showError(err)
			return
		}
		switch {
		case discovered == 0:
			dialog.ShowInformation("No Videos Found", "The folder contains no supported video files.", ui.window)
		case len(added) == 0:
			dialog.ShowInformation("Nothing To Add", "All videos in the folder are already queued.", ui.window)
		default:
			ui.statusLabel.SetText(fmt.Sprintf("Added %d of %d videos", len(added), discovered))
		}
		ui.refreshQueue()
	}, ui.window)
}

func (ui *RootUI) onAddURL() {
	urlText := strings.TrimSpace(ui.urlEntry.Text)
	if urlText == "" {
		return
	}

	_, err := ui.controller.AddRemoteRef(urlText)
	switch {
	case errors.Is(err, extract.ErrDuplicate):
		dialog.ShowInformation("Already Queued", "That video is already in the list.", ui.window)
		return
	case err != nil:
		ui.showError(err)
		return
	}

	ui.urlEntry.SetText("")
	ui.refreshQueue()
}

func (ui *RootUI) onClear() {
	if err := ui.controller.ClearFiles(); err != nil {
		ui.showError(err)
		return
	}
	ui.statusLabel.SetText(StatusReady)
	ui.refreshQueue()
}

func (ui *RootUI) onFormatChanged(name string) {
	if name == "" {
		return
	}
	if err := ui.controller.SetOutputFormat(name); err != nil {
		ui.showError(err)
		return
	}
	ui.settings.SetOutputFormat(ui.controller.OutputFormat())
}

func (ui *RootUI) onBrowseFolder() {
	dialog.ShowFolderOpen(func(list fyne.ListableURI, err error) {
		if err != nil || list == nil {
			return
		}
		ui.setOutputFolder(list.Path())
	}, ui.window)
}

func (ui *RootUI) setOutputFolder(dir string) {
	ui.controller.SetOutputFolder(dir)
	ui.settings.SetOutputFolder(dir)
	ui.folderLabel.SetText(folderText(dir))
}

// onExtract starts the batch on a worker goroutine. The controller's
// callbacks arrive on that worker and are redispatched with fyne.Do.
func (ui *RootUI) onExtract() {
	ui.setRunning(true)

	go func() {
		result, err := ui.controller.RunBatch(context.Background(), extract.Callbacks{
			Status: func(index, total int, name string) {
				fyne.Do(func() {
					ui.statusLabel.SetText(fmt.Sprintf("Processing %d/%d: %s", index, total, name))
					ui.refreshQueue()
				})
			},
			Progress: func(index, total int) {
				fyne.Do(func() {
					ui.progressBar.SetValue(float64(index) / float64(total))
					ui.refreshQueue()
				})
			},
			Error: func(name string, err error) {
				log.Printf("Error processing %s: %v", name, err)
			},
		})

		fyne.Do(func() {
			ui.setRunning(false)
			ui.onBatchDone(result, err)
		})
	}()
}

// setRunning toggles the controls around a batch run. Start and mutation
// controls stay disabled while the worker owns the queue.
func (ui *RootUI) setRunning(running bool) {
	buttons := []*widget.Button{ui.extractBtn, ui.addFilesBtn, ui.addFolderBtn, ui.addURLBtn, ui.clearBtn}
	if running {
		for _, b := range buttons {
			b.Disable()
		}
		ui.progressBar.SetValue(0)
		ui.progressBar.Show()
		ui.statusLabel.SetText("Extracting audio...")
	} else {
		for _, b := range buttons {
			b.Enable()
		}
		ui.progressBar.Hide()
	}
}

// onBatchDone renders the final ExtractionResult.
func (ui *RootUI) onBatchDone(result *model.ExtractionResult, err error) {
	ui.refreshQueue()

	if err != nil {
		switch {
		case errors.Is(err, extract.ErrNoInput):
			dialog.ShowInformation("No Files Selected", "Please add one or more videos first.", ui.window)
		case errors.Is(err, extract.ErrToolUnavailable):
			dialog.ShowError(fmt.Errorf("cannot extract audio: %w", err), ui.window)
		default:
			ui.showError(err)
		}
		ui.statusLabel.SetText(StatusReady)
		return
	}

	outputFolder := ""
	if result.LastOutputPath != "" {
		outputFolder = filepath.Dir(result.LastOutputPath)
	}

	switch result.Outcome() {
	case model.OutcomeFullSuccess:
		ui.statusLabel.SetText(fmt.Sprintf("Success! Extracted audio from all %d files.", result.TotalFiles))
		if ui.settings.GetAutoOpenOnComplete() {
			ui.openPath(outputFolder)
			return
		}
		ui.showCompletionDialog(result, outputFolder)
	case model.OutcomePartialSuccess:
		ui.statusLabel.SetText(fmt.Sprintf("Completed with issues: %d/%d successful.", result.SuccessCount, result.TotalFiles))
		ui.showCompletionDialog(result, outputFolder)
	default:
		ui.statusLabel.SetText(fmt.Sprintf("Failed to extract audio from any of the %d files.", result.TotalFiles))
		dialog.ShowError(fmt.Errorf("could not extract audio from any file:\n%s", strings.Join(result.Errors, "\n")), ui.window)
	}
}

// showCompletionDialog offers the follow-up actions: open the output
// folder, or play the file directly when the batch produced exactly one.
func (ui *RootUI) showCompletionDialog(result *model.ExtractionResult, outputFolder string) {
	message := fmt.Sprintf("Extracted %d/%d files.", result.SuccessCount, result.TotalFiles)
	if len(result.Errors) > 0 {
		message += "\n\nErrors:\n" + strings.Join(result.Errors, "\n")
	}

	if result.TotalFiles == 1 && result.LastOutputPath != "" {
		dialog.ShowCustomConfirm("Extraction Complete", "Play File", "Close",
			widget.NewLabel(message), func(play bool) {
				if play {
					ui.openPath(result.LastOutputPath)
				}
			}, ui.window)
		return
	}

	dialog.ShowCustomConfirm("Extraction Complete", "Open Folder", "Close",
		widget.NewLabel(message), func(open bool) {
			if open {
				ui.openPath(outputFolder)
			}
		}, ui.window)
}

func (ui *RootUI) openPath(path string) {
	if path == "" {
		return
	}
	if err := platform.OpenPath(path); err != nil {
		ui.showError(fmt.Errorf("could not open %s: %w", path, err))
	}
}

func (ui *RootUI) showError(err error) {
	dialog.ShowError(err, ui.window)
}

// folderText renders the output folder choice for display.
func folderText(dir string) string {
	if dir == "" {
		return LabelSameAsInput
	}
	return dir
}

// formatNames lists the selectable output formats for the radio group.
func formatNames() []string {
	formats := model.OutputFormats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.String()
	}
	return names
}

package main

import (
	"fmt"
	"log"
	"path"
	"time"

	"github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gdkpixbuf/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

var MainWindow *gtk.ApplicationWindow = nil
var PreviewFrame *gtk.Frame = nil
var PreviewPicture *gtk.Picture = nil
var StatusText *gtk.Label = nil
var InfoLabel *gtk.Label = nil
var CounterLabel *gtk.Label = nil
var ApplyButton *gtk.Button = nil

var Wallpapers []string
var CurrentIndex int = 0

var ThemeApplier *Applier = nil
var Watcher *dirWatcher = nil

// Main function to create the GTK application and set up the main window.
func activate(app *gtk.Application) {
	MainWindow = gtk.NewApplicationWindow(app)
	MainWindow.SetTitle("rswall - Wallpaper Theme Picker")

	//ANCHOR - Toolbar
	// Navigation, apply and refresh controls, with the status text on the right

	toolbar := gtk.NewBox(gtk.OrientationHorizontal, 0)
	toolbar.SetMarginTop(10)
	toolbar.SetMarginBottom(10)
	toolbar.SetMarginStart(10)
	toolbar.SetMarginEnd(10)
	toolbar.SetSpacing(4)

	prevButton := gtk.NewButtonWithLabel("Previous")
	prevButton.SetHAlign(gtk.AlignStart)
	prevButton.SetVAlign(gtk.AlignCenter)
	prevButton.Connect("clicked", func() {
		prevWallpaper()
	})
	toolbar.Append(prevButton)

	nextButton := gtk.NewButtonWithLabel("Next")
	nextButton.SetHAlign(gtk.AlignStart)
	nextButton.SetVAlign(gtk.AlignCenter)
	nextButton.Connect("clicked", func() {
		nextWallpaper()
	})
	toolbar.Append(nextButton)

	ApplyButton = gtk.NewButtonWithLabel("Apply Theme")
	ApplyButton.SetHAlign(gtk.AlignStart)
	ApplyButton.SetVAlign(gtk.AlignCenter)
	ApplyButton.SetMarginStart(20)
	ApplyButton.SetMarginEnd(20)
	ApplyButton.Connect("clicked", func() {
		applyCurrentTheme()
	})
	toolbar.Append(ApplyButton)

	refreshButton := gtk.NewButtonWithLabel("Refresh")
	refreshButton.SetHAlign(gtk.AlignStart)
	refreshButton.SetVAlign(gtk.AlignCenter)
	refreshButton.Connect("clicked", func() {
		log.Println("Refreshing wallpapers...")
		refreshWallpapers()
	})
	toolbar.Append(refreshButton)

	StatusText = gtk.NewLabel("Ready")
	StatusText.SetHExpand(true)
	StatusText.SetHAlign(gtk.AlignEnd)
	StatusText.SetVAlign(gtk.AlignCenter)
	StatusText.SetMarginEnd(10)
	toolbar.Append(StatusText)

	//ANCHOR - Preview area
	// Shows the current wallpaper scaled to fit the preview box

	PreviewPicture = gtk.NewPicture()
	PreviewPicture.SetCanShrink(true)
	PreviewPicture.SetHExpand(true)
	PreviewPicture.SetVExpand(true)
	PreviewPicture.SetSizeRequest(Config.Preview.BoxWidth, Config.Preview.BoxHeight)

	PreviewFrame = gtk.NewFrame("Preview")
	PreviewFrame.SetMarginStart(10)
	PreviewFrame.SetMarginEnd(10)
	PreviewFrame.SetHExpand(true)
	PreviewFrame.SetVExpand(true)
	PreviewFrame.SetChild(PreviewPicture)

	//ANCHOR - Info bar
	// Filename with dimensions on the left, position counter on the right

	infoBar := gtk.NewBox(gtk.OrientationHorizontal, 0)
	infoBar.SetMarginTop(10)
	infoBar.SetMarginBottom(10)
	infoBar.SetMarginStart(10)
	infoBar.SetMarginEnd(10)

	InfoLabel = gtk.NewLabel("No image selected")
	InfoLabel.SetHExpand(true)
	InfoLabel.SetHAlign(gtk.AlignStart)
	infoBar.Append(InfoLabel)

	CounterLabel = gtk.NewLabel("0/0")
	CounterLabel.SetHAlign(gtk.AlignEnd)
	infoBar.Append(CounterLabel)

	//ANCHOR - Keyboard shortcuts
	// left/right = previous/next, enter/space = apply, r = refresh, q = quit

	keyController := gtk.NewEventControllerKey()
	MainWindow.AddController(keyController)
	keyController.Connect("key-pressed", func(controller *gtk.EventControllerKey, keyval uint, keycode uint, state gdk.ModifierType) {
		switch keyval {
		case gdk.KEY_Left:
			prevWallpaper()
		case gdk.KEY_Right:
			nextWallpaper()
		case gdk.KEY_Return, gdk.KEY_space:
			applyCurrentTheme()
		case gdk.KEY_r:
			log.Println("Refreshing wallpapers...")
			refreshWallpapers()
		case gdk.KEY_q:
			MainWindow.Close()
		}
	})

	ThemeApplier = newApplier(Config, onApplyDone)
	ThemeApplier.Start()

	refreshWallpapers()
	startWatcher()

	app.ConnectShutdown(func() {
		if Watcher != nil {
			Watcher.Close()
			Watcher = nil
		}
	})

	vBox := gtk.NewBox(gtk.OrientationVertical, 0)
	vBox.Append(toolbar)
	vBox.Append(PreviewFrame)
	vBox.Append(infoBar)

	MainWindow.SetChild(vBox)
	MainWindow.SetDefaultSize(1200, 800)
	MainWindow.SetVisible(true)
}

// Starts the wallpaper directory watcher. Best-effort: when the directory is
// missing the program just runs without auto-refresh.
func startWatcher() {
	dir, err := resolvePath(Config.Constants.WallpaperDir)
	if err != nil {
		log.Printf("Cannot resolve wallpaper directory: %v", err)
		return
	}

	Watcher, err = watchWallpaperDir(dir, 500*time.Millisecond, func() {
		glib.IdleAdd(func() {
			log.Println("Wallpaper directory changed, refreshing...")
			refreshWallpapers()
		})
	})
	if err != nil {
		log.Printf("Running without directory watcher: %v", err)
	}
}

// Rescans the wallpaper directory and shows the first result.
//
// The list is rebuilt wholesale; an empty result replaces the preview with a
// warning label until the next successful scan.
func refreshWallpapers() {
	StatusText.SetText("Loading wallpapers...")

	dir, err := resolvePath(Config.Constants.WallpaperDir)
	if err != nil {
		log.Printf("Cannot resolve wallpaper directory: %v", err)
		StatusText.SetText("Error: " + truncateMessage(err.Error(), statusErrorLimit))
		return
	}

	Wallpapers = listWallpapers(dir)

	if len(Wallpapers) == 0 {
		log.Printf("No wallpapers found in %s", dir)
		CurrentIndex = 0
		StatusText.SetText("No wallpapers found")
		InfoLabel.SetText("No image selected")
		CounterLabel.SetText("0/0")
		showEmptyWarning(dir)
		return
	}

	hideEmptyWarning()
	CurrentIndex = 0
	showCurrentWallpaper()
	StatusText.SetText(fmt.Sprintf("Loaded %d wallpapers", len(Wallpapers)))
}

// Replaces the preview with a warning message about the empty scan.
func showEmptyWarning(dir string) {
	warningLabel := gtk.NewLabel("No wallpapers found in " + dir)
	warningLabel.SetHExpand(true)
	warningLabel.SetVExpand(true)
	warningLabel.SetHAlign(gtk.AlignCenter)
	warningLabel.SetVAlign(gtk.AlignCenter)
	PreviewFrame.SetChild(warningLabel)
}

// Puts the preview picture back after a successful scan.
func hideEmptyWarning() {
	if _, ok := PreviewFrame.Child().(*gtk.Picture); !ok {
		PreviewFrame.SetChild(PreviewPicture)
	}
}

// Renders the wallpaper at the current index into the preview area and
// updates the info labels.
//
// Runs synchronously on the UI thread. A decode failure keeps the previous
// preview and only updates the status text.
func showCurrentWallpaper() {
	if len(Wallpapers) == 0 {
		return
	}

	imagePath := Wallpapers[CurrentIndex]
	previewFile := path.Join(CacheDir, "preview.png")

	width, height, err := renderPreview(imagePath, previewFile, Config.Preview.BoxWidth, Config.Preview.BoxHeight)
	if err != nil {
		log.Printf("Error loading image %s: %v", imagePath, err)
		StatusText.SetText("Error loading image: " + truncateMessage(err.Error(), statusErrorLimit))
		return
	}

	pixbuf, err := gdkpixbuf.NewPixbufFromFile(previewFile)
	if err != nil {
		log.Printf("Error creating GdkPixbuf from file %s: %v", previewFile, err)
		StatusText.SetText("Error loading image: " + truncateMessage(err.Error(), statusErrorLimit))
		return
	}

	// convert to paintable as image.SetFromPixbuf is deprecated
	paintable := gdk.NewTextureForPixbuf(pixbuf)
	PreviewPicture.SetPaintable(paintable)

	InfoLabel.SetText(fmt.Sprintf("%s (%dx%d)", path.Base(imagePath), width, height))
	CounterLabel.SetText(fmt.Sprintf("%d/%d", CurrentIndex+1, len(Wallpapers)))
}

func prevWallpaper() {
	if len(Wallpapers) == 0 {
		return
	}
	if prev := clampPrev(CurrentIndex); prev != CurrentIndex {
		CurrentIndex = prev
		showCurrentWallpaper()
	}
}

func nextWallpaper() {
	if len(Wallpapers) == 0 {
		return
	}
	if next := clampNext(CurrentIndex, len(Wallpapers)); next != CurrentIndex {
		CurrentIndex = next
		showCurrentWallpaper()
	}
}

// Queues the current wallpaper for the theme pipeline and disables the apply
// button until the worker reports back.
func applyCurrentTheme() {
	if len(Wallpapers) == 0 {
		return
	}

	imagePath := Wallpapers[CurrentIndex]
	if !ThemeApplier.TryEnqueue(imagePath) {
		log.Printf("Apply already in progress, ignoring request for %s", imagePath)
		StatusText.SetText("Apply already in progress")
		return
	}

	log.Printf("Applying theme for %s", imagePath)
	StatusText.SetText("Applying theme...")
	ApplyButton.SetSensitive(false)
}

// Called by the apply worker when it finishes. Marshals the result onto the
// GTK main thread; the apply button always comes back, success or not.
//
// The saved last-applied path is recorded here rather than in the worker, so
// only the UI thread ever touches Config.
func onApplyDone(result applyResult) {
	glib.IdleAdd(func() {
		if result.Err != nil {
			StatusText.SetText("Error: " + truncateMessage(result.Err.Error(), statusErrorLimit))
		} else {
			Config.SavedUIState.LastApplied = result.Path
			StatusText.SetText("Theme applied successfully")
		}
		ApplyButton.SetSensitive(true)
	})
}

// cubeversi is a terminal application for two-player 3D Reversi on an
// N×N×N cube.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"cubeversi/config"
	"cubeversi/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagBoardSize  = flag.Int("size", 0, "Cube size (4, 6, or 8)")
	flagHints      = flag.Bool("hints", true, "Highlight valid moves")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (fullscreen board)")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
	flagUpdate     = flag.Bool("update", false, "Update to the latest version")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.CubeBoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var historyUI *ui.HistoryBrowserUI
var cfg *config.Config

func main() {
	flag.Parse()

	// Handle --version
	if *flagVersion {
		latest, err := getLatestVersion()
		if err != nil {
			fmt.Printf("cubeversi %s\n", Version)
		} else if latest != Version && Version != "dev" {
			fmt.Printf("cubeversi %s (update available: %s)\n", Version, latest)
			fmt.Println("Run 'cubeversi --update' to update")
		} else {
			fmt.Printf("cubeversi %s (latest)\n", Version)
		}
		return
	}

	// Handle --update
	if *flagUpdate {
		if err := selfUpdate(); err != nil {
			fmt.Printf("Update failed: %s\n", err)
			os.Exit(1)
		}
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		panic(err)
	}

	// Check if quick start requested
	quickStart := *flagQuickStart || *flagBoardSize > 0 || *flagFocus

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ⬢ cubeversi ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewCubeBoard(cfg, gameHint)

	// Create game layout with board and side panel
	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	// History browser screen
	historyUI = ui.NewHistoryBrowser(func() {
		gameBoard.Resync()
		rootPage.SwitchToPage("gameview")
	})

	// Game board input handling
	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			if gameBoard.SelectedCell() != nil {
				gameBoard.ResetSelection()
			} else {
				rootPage.SwitchToPage("setup")
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveSelection(0, -1)
		case tcell.KeyDown:
			gameBoard.MoveSelection(0, 1)
		case tcell.KeyLeft:
			gameBoard.MoveSelection(-1, 0)
		case tcell.KeyRight:
			gameBoard.MoveSelection(1, 0)
		case tcell.KeyPgUp:
			gameBoard.MoveLayer(1)
		case tcell.KeyPgDn:
			gameBoard.MoveLayer(-1)
		case tcell.KeyEnter:
			gameBoard.PlayMove()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveSelection(-1, 0)
			case 'j':
				gameBoard.MoveSelection(0, 1)
			case 'k':
				gameBoard.MoveSelection(0, -1)
			case 'l':
				gameBoard.MoveSelection(1, 0)
			case '[':
				gameBoard.MoveLayer(-1)
			case ']':
				gameBoard.MoveLayer(1)
			case 'u':
				gameBoard.Undo()
			case 'r':
				gameBoard.Redo()
			case 'v':
				gameBoard.ToggleHints()
			case 'b':
				historyUI.SetGame(gameBoard.Game)
				rootPage.SwitchToPage("history")
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard, gameHint)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			}
		}
		return event
	})

	// Game setup screen
	setupUI := ui.NewGameSetup(
		cfg,
		func(size int, showHints bool) {
			startGame(size, showHints)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	// Color configuration screen
	colorConfig := ui.NewColorConfig(cfg, func() {
		// Refresh the game board with new colors
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	// Add pages - start on setup by default, or gameview if quick start
	rootPage.AddPage("setup", setupUI.Form(), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("history", historyUI.Flex(), true, false)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	// Quick start if flags provided
	if quickStart {
		size := cfg.Game.DefaultBoardSize
		if *flagBoardSize == 4 || *flagBoardSize == 6 || *flagBoardSize == 8 {
			size = *flagBoardSize
		}
		startGame(size, *flagHints)
		// Enter focus mode if requested
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard, gameHint)
		}
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		panic(err)
	}
}

// startGame resets the board onto a fresh engine instance.
func startGame(size int, showHints bool) {
	if size < 2 {
		size = 8
	}
	cfg.Game.DefaultBoardSize = size
	cfg.Game.ShowHints = showHints

	gameBoard.StartGame(size)
	rootPage.SwitchToPage("gameview")
}

// getLatestVersion fetches the latest release version from GitHub.
func getLatestVersion() (string, error) {
	resp, err := http.Get("https://api.github.com/repos/cubeversi/cubeversi/releases/latest")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}
	return release.TagName, nil
}

// selfUpdate downloads and installs the latest version.
func selfUpdate() error {
	fmt.Println("Checking for updates...")

	latest, err := getLatestVersion()
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}

	if latest == Version {
		fmt.Printf("Already at latest version (%s)\n", Version)
		return nil
	}

	fmt.Printf("Updating from %s to %s...\n", Version, latest)

	// Determine OS and arch
	goos := runtime.GOOS
	goarch := runtime.GOARCH

	ext := ""
	if goos == "windows" {
		ext = ".exe"
	}

	// Download URL
	filename := fmt.Sprintf("cubeversi_%s_%s%s", goos, goarch, ext)
	url := fmt.Sprintf("https://github.com/cubeversi/cubeversi/releases/download/%s/%s", latest, filename)

	// Download to temp file
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return fmt.Errorf("download failed: HTTP %d", resp.StatusCode)
	}

	// Get current executable path
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}

	// Resolve symlinks
	execPath, err = resolveSymlinks(execPath)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	// Write to temp file
	tmpFile, err := os.CreateTemp("", "cubeversi-update-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, err = io.Copy(tmpFile, resp.Body)
	tmpFile.Close()
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write update: %w", err)
	}

	// Make executable
	if err := os.Chmod(tmpPath, 0755); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	// Replace old binary
	if err := os.Rename(tmpPath, execPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace binary: %w", err)
	}

	fmt.Printf("Updated to %s\n", latest)
	return nil
}

// resolveSymlinks resolves the final path of the executable.
func resolveSymlinks(path string) (string, error) {
	for {
		info, err := os.Lstat(path)
		if err != nil {
			return path, err
		}
		if info.Mode()&os.ModeSymlink == 0 {
			return path, nil
		}
		link, err := os.Readlink(path)
		if err != nil {
			return path, err
		}
		if !strings.HasPrefix(link, "/") {
			// Relative symlink
			path = path[:strings.LastIndex(path, "/")+1] + link
		} else {
			path = link
		}
	}
}

// Package app is the terminal application around the tree list: it loads an
// outline file, shows it as a multi-column tree and keeps it in sync with
// the file, the socket and the keyboard.
package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/pstuifzand/tui-treelist/internal/config"
	"github.com/pstuifzand/tui-treelist/internal/model"
	"github.com/pstuifzand/tui-treelist/internal/observable"
	"github.com/pstuifzand/tui-treelist/internal/socket"
	"github.com/pstuifzand/tui-treelist/internal/storage"
	"github.com/pstuifzand/tui-treelist/internal/treelist"
	"github.com/pstuifzand/tui-treelist/internal/ui"
	"github.com/pstuifzand/tui-treelist/internal/watcher"
)

const (
	renderInterval  = 50 * time.Millisecond
	statusDuration  = 5 * time.Second
	ownSaveInterval = time.Second
)

// App represents the main application
type App struct {
	screen  *ui.Screen
	cfg     *config.Config
	store   *storage.Store
	outline *model.Outline
	tree    *treelist.Tree[*model.Item]
	find    *findPrompt

	keys       map[rune]KeyBinding
	pending    map[rune]PendingKeyBinding
	pendingKey rune
	selection  *observable.Subscription
	server     *socket.Server
	watcher    *watcher.Watcher
	watchErrs  chan error
	backups    *storage.BackupManager
	sessionID  string
	// backup shown after restoring, empty when showing the file
	currentBackupPath string

	statusMsg  string
	statusTime time.Time
	dirty      bool
	quit       bool
	lastSave   time.Time
	debugMode  bool
	closed     bool
}

// NewApp creates a new application instance showing the outline at filePath
func NewApp(filePath string, cfg *config.Config) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	screen, err := ui.NewScreen(cfg)
	if err != nil {
		return nil, err
	}
	a, err := newApp(screen, filePath, cfg)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return a, nil
}

func newApp(screen *ui.Screen, filePath string, cfg *config.Config) (*App, error) {
	mode, err := treelist.ParseRowStorage(cfg.RowStorage)
	if err != nil {
		return nil, fmt.Errorf("invalid row_storage: %w", err)
	}
	tagStyle := screen.GlyphStyle()
	columns, err := buildColumns(cfg.Columns, cfg.DateFormat, &tagStyle)
	if err != nil {
		return nil, fmt.Errorf("invalid columns: %w", err)
	}

	store := storage.NewStore(filePath)
	outline, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filePath, err)
	}

	styles := stylesFor(screen)
	tree := treelist.New[*model.Item](treelist.Options{
		ChildProperty:  cfg.ChildrenProperty,
		RowStorage:     mode,
		MinColumnWidth: cfg.MinColumnWidth,
		ResizeMargin:   cfg.ResizeMargin,
		Styles:         &styles,
	})
	tree.SetChildrenFunc(model.ChildrenOf)
	tree.SetColumns(columns)
	tree.SetDataSource(outline.Items)

	a := &App{
		screen:    screen,
		cfg:       cfg,
		store:     store,
		outline:   outline,
		tree:      tree,
		find:      &findPrompt{},
		watchErrs: make(chan error, 1),
		sessionID: fmt.Sprintf("%d", time.Now().UnixNano()),
	}
	a.keys, a.pending = a.initializeKeybindings()
	a.selection = tree.SubscribeSelection(a.onSelectionChanged)

	if filePath != "" {
		a.SetStatus(fmt.Sprintf("Loaded %s", filePath))
	}
	return a, nil
}

func stylesFor(s *ui.Screen) treelist.Styles {
	return treelist.Styles{
		Header:   s.HeaderStyle(),
		Row:      s.RowStyle(),
		Hover:    s.HoverStyle(),
		Selected: s.SelectedStyle(),
		Border:   s.BorderStyle(),
		Glyph:    s.GlyphStyle(),
		Ghost:    s.GhostStyle(),
		Resize:   s.ResizeStyle(),
	}
}

// SetDebugMode shows key and mouse events in the status line
func (a *App) SetDebugMode(debug bool) {
	a.debugMode = debug
}

// EnableSocket starts the socket server other processes use to add,
// remove and select nodes
func (a *App) EnableSocket() error {
	server, err := socket.NewServer(os.Getpid())
	if err != nil {
		return err
	}
	server.Start()
	a.server = server
	log.Printf("Socket server listening on %s", server.SocketPath())
	return nil
}

// EnableWatch reloads the outline when its file changes on disk
func (a *App) EnableWatch() error {
	if a.store.FilePath == "" {
		return nil
	}
	w, err := watcher.New(a.store.FilePath, watcher.WithOnError(func(err error) {
		select {
		case a.watchErrs <- err:
		default:
		}
	}))
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	a.watcher = w
	return nil
}

// EnableBackups makes every save write a backup of the outline first
func (a *App) EnableBackups() error {
	bm, err := storage.NewBackupManager(storage.GetBackupDir())
	if err != nil {
		return err
	}
	a.backups = bm
	return nil
}

// Run runs the event loop until the user quits. The outline is saved on the
// way out when it has unsaved changes.
func (a *App) Run() error {
	defer a.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event)

	g.Go(func() error {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})
	g.Go(func() error {
		// Closing the screen makes PollEvent return nil
		defer a.screen.Close()
		defer cancel()
		return a.loop(ctx, events)
	})
	return g.Wait()
}

func (a *App) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(renderInterval)
	defer ticker.Stop()

	var messages <-chan socket.Message
	if a.server != nil {
		messages = a.server.Messages()
	}
	var changes <-chan struct{}
	if a.watcher != nil {
		changes = a.watcher.Changed()
	}

	a.render()
	for !a.quit {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			a.handleEvent(ev)
		case msg := <-messages:
			a.handleSocketMessage(msg)
		case <-changes:
			a.onFileChanged()
		case err := <-a.watchErrs:
			log.Printf("Watch error: %v", err)
			a.SetStatus(fmt.Sprintf("Watch error: %v", err))
		case <-ticker.C:
			a.render()
		}
	}
	if a.dirty {
		return a.Save()
	}
	return nil
}

// Close stops the socket server and watcher and releases the screen
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.selection.Unsubscribe()
	if a.server != nil {
		a.server.Stop()
	}
	if a.watcher != nil {
		a.watcher.Stop()
	}
	a.screen.Close()
}

// Quit ends the event loop
func (a *App) Quit() {
	a.quit = true
}

// SetStatus shows msg in the status line for a while
func (a *App) SetStatus(msg string) {
	a.statusMsg = msg
	a.statusTime = time.Now()
}

func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if a.debugMode {
			a.SetStatus(fmt.Sprintf("key=%v rune=%q mod=%v", ev.Key(), ev.Rune(), ev.Modifiers()))
		}
		a.handleKey(ev)
	case *tcell.EventMouse:
		if a.debugMode {
			x, y := ev.Position()
			a.SetStatus(fmt.Sprintf("mouse x=%d y=%d buttons=%v", x, y, ev.Buttons()))
		}
		if a.tree.HandleMouse(ev) {
			a.render()
		}
	case *tcell.EventResize:
		a.screen.Sync()
		a.render()
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	if a.find.active {
		a.handleFindKey(ev)
		return
	}

	switch ev.Key() {
	case tcell.KeyCtrlC:
		a.Quit()
		return
	case tcell.KeyEscape:
		a.pendingKey = 0
		a.tree.ClearSelection()
		return
	case tcell.KeyEnter:
		if n := a.tree.SelectedNode(); n != nil {
			n.Toggle()
		}
		return
	case tcell.KeyPgDn:
		a.tree.ScrollBy(0, a.tree.Bounds().H-1)
		return
	case tcell.KeyPgUp:
		a.tree.ScrollBy(0, -(a.tree.Bounds().H - 1))
		return
	case tcell.KeyRune:
	default:
		return
	}

	r := ev.Rune()
	if a.pendingKey != 0 {
		prefix := a.pendingKey
		a.pendingKey = 0
		if kb, ok := a.pending[prefix].Sequences[r]; ok {
			kb.Handler(a)
		}
		return
	}
	if _, ok := a.pending[r]; ok {
		a.pendingKey = r
		return
	}
	if kb, ok := a.keys[r]; ok {
		kb.Handler(a)
	}
}

func (a *App) onSelectionChanged(item *model.Item, ok bool) {
	if ok {
		log.Printf("Selected %s", item.ID)
	}
}

// Save writes the outline to its file, backing up the previous version
// when backups are enabled
func (a *App) Save() error {
	if a.store.FilePath == "" {
		a.SetStatus("No file to save to")
		return nil
	}
	if a.backups != nil {
		if _, err := a.backups.CreateBackup(a.outline, a.store.FilePath, a.sessionID); err != nil {
			log.Printf("Failed to create backup: %v", err)
		}
	}
	if err := a.store.Save(a.outline); err != nil {
		a.SetStatus(fmt.Sprintf("Save failed: %v", err))
		return err
	}
	a.dirty = false
	a.lastSave = time.Now()
	a.SetStatus(fmt.Sprintf("Saved %s", a.store.FilePath))
	return nil
}

// Reload replaces the outline with the contents of its file. The tree is
// rebound to the new item list.
func (a *App) Reload() error {
	outline, err := a.store.Load()
	if err != nil {
		a.SetStatus(fmt.Sprintf("Reload failed: %v", err))
		return err
	}
	a.setOutline(outline)
	a.SetStatus(fmt.Sprintf("Reloaded %d items", len(outline.GetAllItems())))
	return nil
}

func (a *App) setOutline(outline *model.Outline) {
	a.outline = outline
	a.tree.SetDataSource(outline.Items)
	a.find.reset()
	a.dirty = false
	a.currentBackupPath = ""
}

func (a *App) onFileChanged() {
	if time.Since(a.lastSave) < ownSaveInterval {
		return
	}
	if a.dirty {
		a.SetStatus("File changed on disk, press r to reload and lose changes")
		return
	}
	if err := a.Reload(); err != nil {
		log.Printf("Failed to reload after change: %v", err)
	}
}

// selectItem reveals item in the tree and selects it
func (a *App) selectItem(item *model.Item) bool {
	if a.tree.Reveal(item.Path()...) == nil {
		return false
	}
	a.tree.SetSelectedItem(item)
	return true
}

func (a *App) render() {
	w, h := a.screen.Size()
	a.screen.Clear()
	if h <= 0 {
		a.screen.Show()
		return
	}
	a.tree.Layout(ui.Rect{X: 0, Y: 0, W: w, H: h - 1})
	a.tree.Render(a.screen)
	a.renderStatus(ui.Rect{X: 0, Y: h - 1, W: w, H: 1})
	a.screen.Show()
}

func (a *App) renderStatus(r ui.Rect) {
	style := a.screen.StatusStyle()
	ui.Fill(a.screen, r, ' ', style)

	if a.find.active {
		prompt := "/" + string(a.find.query)
		ui.DrawText(a.screen, r.X, r.Y, prompt, r.W, a.screen.PromptStyle())
		info := fmt.Sprintf(" %d matches", len(a.find.matches))
		ui.DrawText(a.screen, r.X+ui.StringWidth(prompt), r.Y, info, r.W-ui.StringWidth(prompt), style)
		return
	}

	right := fmt.Sprintf(" %d rows ", len(a.tree.VisibleRows()))
	if a.tree.Cursor() == treelist.CursorResize {
		right = " ↔" + right
	}
	if a.dirty {
		right = " [+]" + right
	}
	rightWidth := ui.StringWidth(right)
	leftWidth := max(0, r.W-rightWidth)

	if a.statusMsg != "" && time.Since(a.statusTime) < statusDuration {
		ui.DrawText(a.screen, r.X, r.Y, a.statusMsg, leftWidth, a.screen.MessageStyle())
	} else if item, ok := a.tree.SelectedItem(); ok {
		ui.DrawText(a.screen, r.X, r.Y, ui.TruncateToWidthWithEllipsis(item.Text, leftWidth), leftWidth, style)
	} else if a.store.FilePath != "" {
		ui.DrawText(a.screen, r.X, r.Y, a.store.FilePath, leftWidth, style)
	}
	ui.DrawText(a.screen, r.X+leftWidth, r.Y, right, rightWidth, style)
}

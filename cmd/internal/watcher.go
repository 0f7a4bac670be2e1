package internal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/olimci/fuhen/pkg/set"
)

type FileWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	paths    []string
	watched  *set.Set[string]
}

type WatcherConfig struct {
	Paths    []string
	Debounce time.Duration
}

type WatchEvent struct {
	Reason string
	Paths  []string
}

func NewFileWatcher(config WatcherConfig) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &FileWatcher{
		watcher:  w,
		debounce: config.Debounce,
		paths:    config.Paths,
		watched:  set.New[string](),
	}, nil
}

func (fw *FileWatcher) Start(ctx context.Context) (<-chan WatchEvent, <-chan error, error) {
	eventCh := make(chan WatchEvent, 10)
	errorCh := make(chan error, 10)

	for _, path := range fw.paths {
		path = filepath.Clean(path)
		if err := fw.addRecursive(path); err != nil {
			select {
			case errorCh <- fmt.Errorf("watch warn: %s: %w", path, err):
			default:
			}
		}
	}

	go fw.watchLoop(ctx, eventCh, errorCh)

	return eventCh, errorCh, nil
}

func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}

// Watched returns the paths currently under watch.
func (fw *FileWatcher) Watched() []string {
	paths := fw.watched.Values()
	sort.Strings(paths)
	return paths
}

func (fw *FileWatcher) watchLoop(ctx context.Context, eventCh chan<- WatchEvent, errorCh chan<- error) {
	var (
		timer     *time.Timer
		timerC    <-chan time.Time
		pending   = set.New[string]()
		lastEvent time.Time
	)

	resetTimer := func() {
		if timer == nil {
			timer = time.NewTimer(fw.debounce)
			timerC = timer.C
			return
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(fw.debounce)
		timerC = timer.C
	}

	flush := func(reason string) {
		if pending.Len() == 0 {
			return
		}
		paths := pending.Values()
		sort.Strings(paths)
		pending.Clear()

		select {
		case eventCh <- WatchEvent{Reason: reason, Paths: paths}:
		default:
		}
	}

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-fw.watcher.Events:
			if ev.Op&fsnotify.Chmod == fsnotify.Chmod {
				continue
			}
			lastEvent = time.Now()
			pending.Add(ev.Name)
			resetTimer()

		case <-timerC:
			timerC = nil
			reason := "file change"
			if !lastEvent.IsZero() {
				reason = fmt.Sprintf("file change (%s quiet)", fw.debounce)
			}
			flush(reason)

		case err := <-fw.watcher.Errors:
			select {
			case errorCh <- fmt.Errorf("watch error: %w", err):
			default:
			}
		}
	}
}

func (fw *FileWatcher) addRecursive(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fw.addWatch(root)
	}

	return filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if filepath.Base(path) == ".git" {
				return filepath.SkipDir
			}
			return fw.addWatch(path)
		}
		return nil
	})
}

func (fw *FileWatcher) addWatch(path string) error {
	normalized := filepath.Clean(path)
	if fw.watched.Has(normalized) {
		return nil
	}
	if err := fw.watcher.Add(normalized); err != nil {
		return err
	}
	fw.watched.Add(normalized)
	return nil
}

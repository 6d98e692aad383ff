package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const debounceDelay = 500 * time.Millisecond

// ConfigWatcher reloads the YAML config file when it changes. It is only active in
// development; elsewhere it just holds the initial configuration.
type ConfigWatcher struct {
	loader    *Loader
	config    *Config
	callbacks []func(*Config)
	mu        sync.RWMutex
	logger    *zap.Logger
	watcher   *fsnotify.Watcher
	stopCh    chan struct{}
	stopOnce  sync.Once
}

// NewConfigWatcher starts watching loader's file when initial is a development config.
func NewConfigWatcher(loader *Loader, initial *Config, logger *zap.Logger) (*ConfigWatcher, error) {
	w := &ConfigWatcher{
		loader: loader,
		config: initial,
		logger: logger,
		stopCh: make(chan struct{}),
	}

	if !initial.IsDevelopment() || loader.Path() == "" {
		logger.Info("Configuration hot reloading disabled",
			zap.String("environment", string(initial.Environment)),
		)
		return w, nil
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	// Watch the directory so editors that replace the file via rename are still seen.
	if err := fsWatcher.Add(filepath.Dir(loader.Path())); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch config dir: %w", err)
	}
	w.watcher = fsWatcher
	go w.watchLoop()

	logger.Info("Configuration hot reloading enabled", zap.String("file", loader.Path()))
	return w, nil
}

func (w *ConfigWatcher) watchLoop() {
	defer w.watcher.Close()

	target := filepath.Clean(w.loader.Path())
	var debounceTimer *time.Timer

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("Configuration file changed",
				zap.String("file", event.Name),
				zap.String("operation", event.Op.String()),
			)
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, w.reloadConfig)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("File watcher error", zap.Error(err))

		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return
		}
	}
}

func (w *ConfigWatcher) reloadConfig() {
	newConfig, err := w.loader.Load()
	if err != nil {
		w.logger.Error("Invalid configuration after reload, keeping previous", zap.Error(err))
		return
	}

	w.mu.Lock()
	old := w.config
	w.config = newConfig
	callbacks := make([]func(*Config), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	if old.LogLevel != newConfig.LogLevel {
		w.logger.Info("Log level changed",
			zap.String("from", old.LogLevel),
			zap.String("to", newConfig.LogLevel),
		)
	}

	for i, cb := range callbacks {
		func() {
			defer func() {
				if r := recover(); r != nil {
					w.logger.Error("Config callback panicked", zap.Int("callback_index", i), zap.Any("panic", r))
				}
			}()
			cb(newConfig)
		}()
	}
	w.logger.Info("Configuration reloaded", zap.Int("callbacks_notified", len(callbacks)))
}

// OnChange registers a callback to be called when configuration changes.
func (w *ConfigWatcher) OnChange(callback func(*Config)) {
	w.mu.Lock()
	w.callbacks = append(w.callbacks, callback)
	w.mu.Unlock()
}

// GetConfig returns the current configuration.
func (w *ConfigWatcher) GetConfig() *Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.config
}

// Stop stops the configuration watcher.
func (w *ConfigWatcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

package catalog

import (
	"context"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the catalog whenever a template descriptor changes on
// disk and signals each successful reload on the returned channel.
// Watching stops when ctx is cancelled; the channel is closed on exit.
func (c *Catalog) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(c.dir); err != nil {
		watcher.Close()
		return nil, err
	}

	reloaded := make(chan struct{}, 1)

	go func() {
		defer watcher.Close()
		defer close(reloaded)

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Op.Has(fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename) {
					continue
				}
				if !isTemplateFile(event.Name) {
					continue
				}
				if err := c.Reload(); err != nil {
					// A half-saved file is expected during editing;
					// keep serving the previous catalog.
					if c.logger != nil {
						c.logger.Error(err, "catalog reload failed")
					}
					continue
				}
				select {
				case reloaded <- struct{}{}:
				default:
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				if c.logger != nil {
					c.logger.Error(err, "catalog watcher error")
				}
			}
		}
	}()

	return reloaded, nil
}

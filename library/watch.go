package library

import (
	"context"
	"maps"
	"os"
	"time"

	"github.com/grindlemire/layerkit/internal/debug"
	"github.com/sirupsen/logrus"
)

// stamp identifies one version of a layout file.
type stamp struct {
	size    int64
	modTime time.Time
}

func (s stamp) equal(o stamp) bool {
	return s.size == o.size && s.modTime.Equal(o.modTime)
}

// snapshot returns the size and modification time of every layout file.
func (m *Manager) snapshot() (map[string]stamp, error) {
	files, err := m.files()
	if err != nil {
		return nil, err
	}
	out := make(map[string]stamp, len(files))
	for _, f := range files {
		fi, err := os.Stat(m.Path(f))
		if err != nil {
			continue
		}
		out[f] = stamp{size: fi.Size(), modTime: fi.ModTime()}
	}
	return out, nil
}

// Watch polls the directory every interval and refreshes when a layout file
// was added, removed or rewritten. onChange, if set, runs after each such
// refresh with the new entries. Watch blocks until ctx is done.
func (m *Manager) Watch(ctx context.Context, interval time.Duration, onChange func([]Entry)) error {
	last, err := m.snapshot()
	if err != nil {
		return err
	}
	debug.Log("library: watching %s every %s", m.dir, interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			cur, err := m.snapshot()
			if err != nil {
				m.log.WithFields(logrus.Fields{"err": err}).Warn("watch scan failed")
				continue
			}
			if maps.EqualFunc(cur, last, stamp.equal) {
				continue
			}
			last = cur
			if err := m.Refresh(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				m.log.WithFields(logrus.Fields{"err": err}).Warn("watch refresh failed")
				continue
			}
			if onChange != nil {
				onChange(m.Entries())
			}
		}
	}
}

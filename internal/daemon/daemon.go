package daemon

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/farmergreg/rfsnotify"
	godaemon "github.com/sevlyar/go-daemon"
	log "github.com/sirupsen/logrus"
	"gopkg.in/fsnotify.v1"

	"github.com/mahyarmirrashed/filelist/internal/config"
	"github.com/mahyarmirrashed/filelist/internal/utils"
	"github.com/mahyarmirrashed/filelist/pkg/filelist"
)

const (
	pidFile = "fl.pid"
	logFile = "fl.log"
)

// BuildFunc returns a fresh, unresolved file list.
type BuildFunc func() (*filelist.FileList, error)

// Daemonize re-executes the process in the background. It reports whether
// the caller is the parent, which should exit, and returns a release func the
// child calls on shutdown.
func Daemonize() (bool, func(), error) {
	ctx := &godaemon.Context{
		PidFileName: pidFile,
		PidFilePerm: 0644,
		LogFileName: logFile,
		LogFilePerm: 0640,
		WorkDir:     "./",
		Umask:       027,
		Args:        append([]string{"[fl-watch]"}, os.Args[1:]...),
	}

	d, err := ctx.Reborn()
	if err != nil {
		return false, nil, fmt.Errorf("unable to daemonize: %w", err)
	}
	if d != nil {
		return true, func() {}, nil
	}
	return false, func() {
		if err := ctx.Release(); err != nil {
			log.Warnf("Error releasing PID file: %v", err)
		}
	}, nil
}

// lister re-resolves a list and reports when its contents change.
type lister struct {
	build  BuildFunc
	out    io.Writer
	cfg    *config.Config
	last   []string
	primed bool
}

// refresh resolves a new list and writes it if it differs from the last one.
func (l *lister) refresh() (bool, error) {
	fl, err := l.build()
	if err != nil {
		return false, err
	}
	files, err := fl.ToArray()
	if err != nil {
		return false, err
	}
	if l.primed && slices.Equal(files, l.last) {
		return false, nil
	}

	if l.primed {
		added, removed := diff(l.last, files)
		msg := fmt.Sprintf("%d files (+%d -%d)", len(files), added, removed)
		log.Info(msg)
		utils.SendNotification(l.cfg.Notifications, "fl", msg)
	}
	l.last = files
	l.primed = true
	return true, utils.WriteList(l.out, files, l.cfg.Format)
}

func diff(before, after []string) (added, removed int) {
	old := make(map[string]struct{}, len(before))
	for _, p := range before {
		old[p] = struct{}{}
	}
	for _, p := range after {
		if _, ok := old[p]; ok {
			delete(old, p)
			continue
		}
		added++
	}
	return added, len(old)
}

// Run watches cfg.Root and writes the resolved list to out whenever it
// changes. It blocks until a signal arrives or ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, build BuildFunc, out io.Writer) error {
	dir := utils.ExpandTilde(cfg.Root)

	watcher, err := rfsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.AddRecursive(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	l := &lister{build: build, out: out, cfg: cfg}
	if _, err := l.refresh(); err != nil {
		return err
	}
	log.Infof("Watching %s", dir)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	// Events are coalesced: a refresh runs once delay has passed without
	// further changes.
	var settle <-chan time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			log.Debugf("Change: %s", event)
			settle = time.After(cfg.Delay)
		case <-settle:
			settle = nil
			if _, err := l.refresh(); err != nil {
				log.Errorf("Resolve failed: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("error:", err)
		case sig := <-signals:
			log.Infof("Received signal: %s, shutting down...", sig)
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
